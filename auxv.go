// Package auxv reads the ELF auxiliary vector of the current process, i.e
// the list of key-value pairs the kernel leaves on the stack of a freshly
// executed program to describe the environment it runs in: hardware
// capabilities, page size, real and effective IDs, etc. See
// https://www.gnu.org/software/libc/manual/html_node/Auxiliary-Vector.html.
//
// Three independent mechanisms are exposed, because no single one works
// everywhere:
//   - the getauxval(3) libc function, which may or may not be linked into
//     the binary (see Lookup and Native),
//   - the /proc/self/auxv file, which needs a mounted procfs and read
//     permissions (see Iterate and Search),
//   - crawling the stack from the environ pointer, which needs no file I/O
//     at all but is unsafe by construction (see Stack).
//
// Get and SearchSelf pick between the first two automatically; stack
// crawling is never chained in silently and must be asked for explicitly.
package auxv

import (
	"errors"
)

// Type is the key of the auxiliary vector entries. See
// https://github.com/torvalds/linux/blob/master/include/uapi/linux/auxvec.h
// for the complete list of accepted values.
type Type Word

// Keys defined by the ELF ABI and by Linux. The values are opaque words:
// some are integers, some are bitmasks, some are pointers into the process
// memory. This package doesn't interpret them.
const (
	// TypeNull terminates the vector. It is consumed internally and never
	// yielded as an entry.
	TypeNull        Type = 0
	TypePHDR        Type = 3
	TypePHEnt       Type = 4
	TypePHNum       Type = 5
	TypePageSize    Type = 6
	TypeBase        Type = 7
	TypeFlags       Type = 8
	TypeEntry       Type = 9
	TypeUID         Type = 11
	TypeEUID        Type = 12
	TypeGID         Type = 13
	TypeEGID        Type = 14
	TypePlatform    Type = 15
	TypeHwCap       Type = 16
	TypeClockTick   Type = 17
	TypeSecure      Type = 23
	TypeRandom      Type = 25
	TypeHwCap2      Type = 26
	TypeExecFn      Type = 31
	TypeSysinfo     Type = 32
	TypeSysinfoEhdr Type = 33
)

// Pair is a single entry of the auxiliary vector.
type Pair struct {
	Type  Type `json:"type"`
	Value Word `json:"value"`
}

// Vector is the result of a filtered read: the values for the keys that were
// both requested and present. Requested keys without an entry are simply
// missing from the map.
type Vector map[Type]Word

var (
	// ErrNotFound is returned when the mechanism worked but the requested
	// key has no entry in the vector.
	ErrNotFound = errors.New(`key not found in auxiliary vector`)

	// ErrUnavailable is returned when the mechanism itself doesn't exist
	// on this build or runtime. This is a capability fact, not a failure:
	// getauxval appeared in glibc 2.16 and doesn't exist outside Linux.
	ErrUnavailable = errors.New(`getauxval not available`)

	// ErrMalformed is returned when the vector's bytes don't parse: a
	// size that isn't a whole number of pairs, or no terminator before
	// the end of the data.
	ErrMalformed = errors.New(`malformed auxiliary vector`)
)

// Get returns the value for a single key using the best mechanism available:
// getauxval when it is linked into the binary, /proc/self/auxv otherwise.
//
// A getauxval failure other than ErrUnavailable is returned as-is instead of
// triggering the procfs fallback: an unexpected error could hide a real
// capability-detection problem, and papering over it with another mechanism
// is the caller's decision to make, not ours.
//
// NOTE Before glibc 2.19 getauxval had no way to signal a missing key and
// returned 0 instead. A 0 value for a key that may legitimately be absent is
// therefore ambiguous on old systems; cross-check with SearchSelf if it
// matters.
func Get(t Type) (Word, error) {
	return get(Native{}, t)
}

func get(l Lookup, t Type) (Word, error) {
	v, err := l.Getauxval(t)
	if !errors.Is(err, ErrUnavailable) {
		return v, err
	}

	vector, err := SearchSelf(t)
	if err != nil {
		return 0, err
	}

	v, ok := vector[t]
	if !ok {
		return 0, ErrNotFound
	}

	return v, nil
}
