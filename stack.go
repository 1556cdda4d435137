package auxv

import (
	"errors"
	"unsafe"
)

// Stack locates the auxiliary vector by crawling the stack layout the kernel
// sets up at execve time: the argument and environment pointer arrays, each
// closed by a NULL, with the vector right after the second NULL. environ must
// be the address the C environ pointer had at the very start of execution;
// the navigation is not checked by anything, so a guessed or reconstructed
// address produces garbage at best and a segfault at worst.
//
// Capturing that address is the program's job, not this package's: the usual
// source is the C environ symbol, read before anything touches the
// environment (setenv and friends can reallocate the array and leave environ
// pointing away from the stack).
//
// The returned iterator owns no memory. The region it walks lives as long as
// the process's initial stack, so fresh iterators can be derived from the
// same address at any time.
func Stack(environ uintptr) (*StackIterator, error) {
	if environ == 0 {
		return nil, errors.New(`nil environ pointer`)
	}

	// Skip the environment string pointers. We don't care that they point
	// to strings, only that they are non-null words.
	p := environ
	for *(*uintptr)(unsafe.Pointer(p)) != 0 {
		p += ptrSize
	}

	// p is on the NULL closing the environment array; the first pair of
	// the vector is one pointer further.
	return &StackIterator{addr: p + ptrSize}, nil
}

const ptrSize = unsafe.Sizeof(uintptr(0))

// StackIterator walks the auxiliary vector in place, in the live memory of
// the process. Same contract as Iterator, except there is no Err method: the
// in-memory table is terminated by the kernel itself, so there is no
// truncated capture to detect.
type StackIterator struct {
	addr uintptr
	pair Pair
}

// Next advances the iterator to the next pair, and returns false once the
// terminator is reached.
func (i *StackIterator) Next() bool {
	t := Type(*(*Word)(unsafe.Pointer(i.addr)))
	if t == TypeNull {
		return false
	}

	i.pair = Pair{
		Type:  t,
		Value: *(*Word)(unsafe.Pointer(i.addr + wordSize)),
	}
	i.addr += 2 * wordSize
	return true
}

// Pair returns the entry the iterator is currently positioned on. It is only
// valid after a call to Next returned true.
func (i *StackIterator) Pair() Pair {
	return i.pair
}

// ReadString interprets the word as a pointer to a NUL-terminated string in
// the memory of the current process and returns a copy of it. Several entries
// hold such pointers, e.g. TypePlatform and TypeExecFn. Only
// meaningful for a vector read from the process itself, never for one
// captured from a file.
func (w Word) ReadString() string {
	var buf []byte
	for p := uintptr(w); ; p++ {
		c := *(*byte)(unsafe.Pointer(p))
		if c == 0 {
			return string(buf)
		}
		buf = append(buf, c)
	}
}
