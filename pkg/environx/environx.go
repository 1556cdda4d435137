// +build cgo,!windows

// Package environx captures the address of the C environ pointer, which is
// the anchor auxv.Stack needs to locate the auxiliary vector in memory.
//
// It lives outside the auxv package on purpose: the core only consumes a
// caller-supplied address, and capturing one is startup glue. Call Address
// before anything manipulates the environment; setenv and friends can move
// the array off the initial stack and the crawl would then read garbage.
package environx

/*
#include <stddef.h>

extern char **environ;

static size_t environ_address(void) {
	return (size_t)environ;
}
*/
import "C"

// Address returns the current value of the C environ pointer.
func Address() uintptr {
	return uintptr(C.environ_address())
}
