package auxv

// Lookup queries the auxiliary vector for a single key, the way getauxval(3)
// does. The error is ErrUnavailable if the mechanism itself doesn't exist on
// this build or runtime, ErrNotFound if it does but the key has no entry, and
// anything else for an unexpected failure. A nil error means the key was
// found and the returned word is its value.
//
// Implementations hold no state between calls and are safe for concurrent
// use.
type Lookup interface {
	Getauxval(t Type) (Word, error)
}

// NotAvailable is a Lookup that finds nothing: every call returns
// ErrNotFound. It exists so that fallback logic can be exercised
// deterministically, on any OS, without depending on what the libc in place
// does or doesn't provide.
type NotAvailable struct{}

// Getauxval implements Lookup.
func (NotAvailable) Getauxval(Type) (Word, error) {
	return 0, ErrNotFound
}
