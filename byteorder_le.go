// +build 386 amd64 arm arm64 mipsle mips64le ppc64le riscv64 wasm

package auxv

import "encoding/binary"

// nativeEndian is the byte order of the running process, which is also the
// byte order the kernel uses to write the auxiliary vector.
var nativeEndian binary.ByteOrder = binary.LittleEndian
