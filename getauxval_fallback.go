// +build !linux !cgo

package auxv

// Native is the Lookup backed by the libc getauxval(3). On this build there
// is no libc entry point to call through to, either because the target OS
// doesn't have one or because cgo is disabled, so every call reports
// ErrUnavailable.
type Native struct{}

// Getauxval implements Lookup.
func (Native) Getauxval(Type) (Word, error) {
	return 0, ErrUnavailable
}
