package langtour

import (
	"fmt"
	"io"
)

// Trial dispatches on a raw optional string: nil is absent.
func Trial(w io.Writer, v *string) {
	switch {
	case v != nil:
		fmt.Fprintf(w, "Is String %s\n", *v)
	default:
		fmt.Fprintln(w, "Is none")
	}
}

// MaybeStr names the optional string type.
type MaybeStr = *string

// Trial2 is Trial spelled with the MaybeStr alias.
func Trial2(w io.Writer, v MaybeStr) {
	switch {
	case v != nil:
		fmt.Fprintf(w, "Is String %s\n", *v)
	default:
		fmt.Fprintln(w, "Is none")
	}
}

// Maybe holds either a value of type T or nothing.
// The zero value is absent.
type Maybe[T any] struct {
	value T
	ok    bool
}

// Just wraps v as a present value.
func Just[T any](v T) Maybe[T] {
	return Maybe[T]{value: v, ok: true}
}

// None returns an absent value.
func None[T any]() Maybe[T] {
	return Maybe[T]{}
}

// Get returns the payload and whether it is present.
func (m Maybe[T]) Get() (T, bool) {
	return m.value, m.ok
}

// IsNone reports whether m is absent.
func (m Maybe[T]) IsNone() bool {
	return !m.ok
}

// FromJust returns the payload of m, or base when m is absent.
func FromJust[T any](base T, m Maybe[T]) T {
	if v, ok := m.Get(); ok {
		return v
	}
	return base
}

// Trial3 is Trial over the generic wrapper.
func Trial3(w io.Writer, m Maybe[string]) {
	if v, ok := m.Get(); ok {
		fmt.Fprintf(w, "Is String %s\n", v)
		return
	}
	fmt.Fprintln(w, "Is none")
}
