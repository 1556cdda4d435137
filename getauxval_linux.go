// +build linux,cgo

package auxv

/*
#include <errno.h>
#include <stddef.h>
#include <stdint.h>

// getauxval appeared in glibc 2.16 and in Bionic with API level 18.
// Declaring it weak lets the binary link and load against older libcs; the
// symbol is then NULL at runtime instead of being a hard requirement.
unsigned long getauxval(unsigned long type) __attribute__((weak));

static int has_getauxval(void) {
	return getauxval != NULL;
}

// Returns 1 and writes to result if the key was found, 0 if the key has no
// entry, and -1 on any other errno, which is then written to err. The return
// value of getauxval alone can't distinguish a found 0 from a missing key,
// hence the errno dance. errno itself is left clean in every branch so that
// the stale value can't corrupt whatever the process does next.
static int32_t getauxval_wrapper(unsigned long type, unsigned long *result, int *err) {
	errno = 0;
	unsigned long val = getauxval(type);
	if (errno == ENOENT) {
		// As of glibc 2.19, errno is ENOENT when the key is not found.
		errno = 0;
		return 0;
	}
	if (errno != 0) {
		// As of glibc 2.23 ENOENT is the only documented error, but
		// more may be added.
		*err = errno;
		errno = 0;
		return -1;
	}
	*result = val;
	return 1;
}
*/
import "C"

import (
	"fmt"
	"sync"
	"syscall"
)

// Native calls through to the libc getauxval(3). The function being weakly
// linked, its presence is probed on first use; when the libc doesn't have it,
// every call returns ErrUnavailable without attempting an invocation, so it
// is always safe to try Native first and fall back on something else.
//
// NOTE Before glibc 2.19 a missing key was reported as a plain 0 return with
// no errno, indistinguishable from a found 0. This package doesn't try to
// disambiguate; see the note on Get.
type Native struct{}

var (
	linkedOnce sync.Once
	linked     bool
)

// hasGetauxval reports whether the getauxval symbol resolved in the running
// binary. The probe runs at most once; concurrent first uses all get the same
// answer.
func hasGetauxval() bool {
	linkedOnce.Do(func() {
		linked = C.has_getauxval() != 0
	})
	return linked
}

// Getauxval implements Lookup.
func (Native) Getauxval(t Type) (Word, error) {
	if !hasGetauxval() {
		return 0, ErrUnavailable
	}

	var result C.ulong
	var errno C.int
	switch C.getauxval_wrapper(C.ulong(t), &result, &errno) {
	case 1:
		return Word(result), nil
	case 0:
		return 0, ErrNotFound
	default:
		return 0, errnoError(t, syscall.Errno(errno))
	}
}

// errnoError reports an errno getauxval is not documented to set. The errno
// is wrapped so callers can match it with errors.Is against the unix
// constants.
func errnoError(t Type, errno syscall.Errno) error {
	return fmt.Errorf(`getauxval(%d): unexpected errno: %w`, Word(t), errno)
}
