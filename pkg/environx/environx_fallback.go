// +build !cgo windows

package environx

// Address returns 0: without cgo there is no C environ to read, and on
// Windows the environment isn't on an ELF stack to begin with. auxv.Stack
// rejects the 0 address.
func Address() uintptr {
	return 0
}
