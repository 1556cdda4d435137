// +build amd64 arm64 mips64 mips64le ppc64 ppc64le riscv64 s390x wasm

package auxv

// Word is the type used by the auxiliary vector for both the keys and values
// of the vector's pairs. The kernel writes the entries using the native word
// of the process, so the width is selected at build time by the target
// architecture.
type Word uint64

// wordSize is the width of a Word in bytes.
const wordSize = 8

// decodeWord reads a single word from the start of b, in the byte order of
// the running process.
func decodeWord(b []byte) Word {
	return Word(nativeEndian.Uint64(b))
}
