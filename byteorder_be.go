// +build mips mips64 ppc64 s390x

package auxv

import "encoding/binary"

// nativeEndian is the byte order of the running process, which is also the
// byte order the kernel uses to write the auxiliary vector.
var nativeEndian binary.ByteOrder = binary.BigEndian
