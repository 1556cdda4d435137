package auxv

import (
	"errors"
	"testing"
)

func TestNotAvailable(t *testing.T) {
	for _, k := range []Type{TypeNull, TypeHwCap, TypeUID, 12345} {
		v, err := NotAvailable{}.Getauxval(k)
		if !errors.Is(err, ErrNotFound) {
			t.Errorf(`NotAvailable.Getauxval(%d): wanted ErrNotFound, got %v`, Word(k), err)
		}
		if v != 0 {
			t.Errorf(`NotAvailable.Getauxval(%d): wanted 0, got %d`, Word(k), v)
		}
	}
}
