package auxv

import (
	"errors"
	"fmt"
	"io/ioutil"

	"golang.org/x/sys/unix"
)

// ProcPath is the procfs file exposing the auxiliary vector of the current
// process as raw bytes, in the native byte order and word width.
const ProcPath = `/proc/self/auxv`

// Iterate reads the auxiliary vector file at path and returns an iterator
// over its pairs.
//
// There are two layers of errors here: Iterate itself fails when the file
// can't be read at all or its size isn't a whole number of pairs, and
// Iterator.Err reports a vector that ends without a terminator. That's just
// the way I/O is; the split lets a caller know which prefix of the table was
// trustworthy.
//
// The file is slurped whole before parsing: procfs files are not seekable
// and don't report a size in advance.
func Iterate(path string) (*Iterator, error) {
	raw, err := ioutil.ReadFile(path)
	if errors.Is(err, unix.EACCES) {
		// Happens on hardened systems when the process is not
		// dumpable, e.g. because of file capabilities or a setuid
		// bit.
		return nil, fmt.Errorf(`reading %s: %w (is the process dumpable?)`, path, err)
	}
	if err != nil {
		return nil, fmt.Errorf(`reading %s: %w`, path, err)
	}

	return Decode(raw)
}

// IterateSelf iterates over the auxiliary vector of the current process. See
// Iterate.
func IterateSelf() (*Iterator, error) {
	return Iterate(ProcPath)
}

// Decode returns an iterator over the pairs of an auxiliary vector captured
// as raw bytes, e.g. by reading ProcPath or the NT_AUXV note of a core dump
// of the same machine. The bytes are interpreted using the word width and
// byte order of the running process.
func Decode(raw []byte) (*Iterator, error) {
	if len(raw)%(2*wordSize) != 0 {
		return nil, fmt.Errorf(`%w: %d bytes is not a whole number of pairs`, ErrMalformed, len(raw))
	}

	return &Iterator{raw: raw}, nil
}

// Iterator walks an auxiliary vector two words at a time, stopping at the
// null terminator, which is never yielded. It is finite and not restartable:
// get a fresh one to walk the vector again. Like the vector itself, it is
// meant to be consumed by a single goroutine.
type Iterator struct {
	raw  []byte
	pair Pair
	err  error
	done bool
}

// Next advances the iterator to the next pair, and returns false when the
// terminator is reached or the vector can't be decoded further. Once Next
// returned false, check Err.
func (i *Iterator) Next() bool {
	if i.done {
		return false
	}

	// The vector must end on an explicit terminator; running out of bytes
	// first means the capture was truncated, and reporting a clean end
	// would hide it.
	if len(i.raw) == 0 {
		i.err = fmt.Errorf(`%w: no terminator before end of data`, ErrMalformed)
		i.done = true
		return false
	}

	t := Type(decodeWord(i.raw))
	v := decodeWord(i.raw[wordSize:])
	i.raw = i.raw[2*wordSize:]

	if t == TypeNull {
		i.done = true
		return false
	}

	i.pair = Pair{Type: t, Value: v}
	return true
}

// Pair returns the entry the iterator is currently positioned on. It is only
// valid after a call to Next returned true.
func (i *Iterator) Pair() Pair {
	return i.pair
}

// Err returns the error that interrupted the iteration, if any. It is only
// meaningful once Next returned false.
func (i *Iterator) Err() error {
	return i.err
}

// Search reads the auxiliary vector file at path and returns the values for
// the requested keys. Keys without an entry are missing from the result, and
// each key appears at most once.
func Search(path string, types ...Type) (Vector, error) {
	it, err := Iterate(path)
	if err != nil {
		return nil, err
	}

	return collect(it, types)
}

// SearchSelf searches the auxiliary vector of the current process. See
// Search.
func SearchSelf(types ...Type) (Vector, error) {
	return Search(ProcPath, types...)
}

func collect(it *Iterator, types []Type) (Vector, error) {
	vector := Vector{}
	for it.Next() {
		pair := it.Pair()
		for _, t := range types {
			if pair.Type == t {
				vector[pair.Type] = pair.Value
				break
			}
		}
	}

	if err := it.Err(); err != nil {
		return nil, err
	}

	return vector, nil
}
