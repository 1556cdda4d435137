package auxv

import (
	"errors"
	"runtime"
	"testing"

	"golang.org/x/sys/unix"
)

// stubLookup returns a fixed outcome for every key.
type stubLookup struct {
	value Word
	err   error
}

func (l stubLookup) Getauxval(Type) (Word, error) {
	return l.value, l.err
}

func TestGet_LookupOutcomes(t *testing.T) {
	boom := errors.New(`boom`)

	type testcase struct {
		lookup  Lookup
		want    Word
		wantErr error
	}

	for n, c := range map[string]testcase{
		"found": {
			lookup: stubLookup{value: 42},
			want:   42,
		},
		// A key the mechanism looked for and didn't find is a final
		// answer, not a reason to try procfs.
		"not found": {
			lookup:  stubLookup{err: ErrNotFound},
			wantErr: ErrNotFound,
		},
		// An unexpected failure is surfaced as-is; masking it with
		// another mechanism could hide a real detection bug.
		"error": {
			lookup:  stubLookup{err: boom},
			wantErr: boom,
		},
	} {
		t.Run(n, func(t *testing.T) {
			v, err := get(c.lookup, TypeHwCap)
			if !errors.Is(err, c.wantErr) {
				t.Errorf(`get(): wanted error %v, got %v`, c.wantErr, err)
			}
			if v != c.want {
				t.Errorf(`get(): wanted %d, got %d`, c.want, v)
			}
		})
	}
}

func TestGet_FallsBackToProcfs(t *testing.T) {
	if runtime.GOOS != `linux` {
		t.Skip(`procfs only exists on linux`)
	}

	v, err := get(stubLookup{err: ErrUnavailable}, TypeUID)
	if err != nil {
		t.Fatalf(`get(): unexpected error: %s`, err)
	}
	if int(v) != unix.Getuid() {
		t.Errorf(`get(): wanted uid %d, got %d`, unix.Getuid(), v)
	}

	_, err = get(stubLookup{err: ErrUnavailable}, 12345)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf(`get(): wanted ErrNotFound, got %v`, err)
	}
}

func TestSearchSelf_UIDMatchesSyscall(t *testing.T) {
	if runtime.GOOS != `linux` {
		t.Skip(`procfs only exists on linux`)
	}

	vector, err := SearchSelf(TypeUID)
	if err != nil {
		t.Fatalf(`SearchSelf(uid): unexpected error: %s`, err)
	}

	uid, ok := vector[TypeUID]
	if !ok {
		t.Fatalf(`SearchSelf(uid): entry missing from the vector`)
	}
	if int(uid) != unix.Getuid() {
		t.Errorf(`SearchSelf(uid): wanted %d, got %d`, unix.Getuid(), uid)
	}
}
