// File: patchopt/value.go
package patchopt

// Value is an optional value of type T. Some(v) holds a present value, None
// is absence. Absence is modeled explicitly instead of with pointers or nil
// slices so that an empty slice remains a concrete, present value.
type Value[T any] struct {
	v  T
	ok bool
}

// Some constructs a present Value.
func Some[T any](v T) Value[T] { return Value[T]{v: v, ok: true} }

// None constructs an absent Value.
func None[T any]() Value[T] { return Value[T]{} }

// IsSome reports whether the value is present.
func (o Value[T]) IsSome() bool { return o.ok }

// IsNone reports whether the value is absent.
func (o Value[T]) IsNone() bool { return !o.ok }

// Unwrap returns the value and whether it was present.
func (o Value[T]) Unwrap() (T, bool) { return o.v, o.ok }

// Or returns the value if present, otherwise fallback.
func (o Value[T]) Or(fallback T) T {
	if o.ok {
		return o.v
	}
	return fallback
}

// erased returns the value as an untyped any, nil when absent.
func (o Value[T]) erased() any {
	if !o.ok {
		return nil
	}
	return o.v
}
