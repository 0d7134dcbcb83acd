// File: patchopt/typed.go
package patchopt

// Typed constructors, one pair per supported value shape. The New* form
// builds an option without registering it, keeping construction and
// registration composable. The short form builds the option and registers
// it into the given registry in one step, so a patch declaration cannot
// produce an orphaned option; it returns the typed option for later Get
// and Set calls in the patch's own logic.
//
// Defaults are never validated at construction time. An empty, non-nil
// slice default is a present value and satisfies Required.

// NewString builds an unregistered string option.
func NewString(key string, d Decl[string]) *Option[string] {
	return newOption(key, KindString, d)
}

// String builds a string option and registers it into r.
func String(r *Registry, key string, d Decl[string]) (*Option[string], error) {
	return register(r, NewString(key, d))
}

// NewBool builds an unregistered boolean option.
func NewBool(key string, d Decl[bool]) *Option[bool] {
	return newOption(key, KindBool, d)
}

// Bool builds a boolean option and registers it into r.
func Bool(r *Registry, key string, d Decl[bool]) (*Option[bool], error) {
	return register(r, NewBool(key, d))
}

// NewInt builds an unregistered integer option.
func NewInt(key string, d Decl[int]) *Option[int] {
	return newOption(key, KindInt, d)
}

// Int builds an integer option and registers it into r.
func Int(r *Registry, key string, d Decl[int]) (*Option[int], error) {
	return register(r, NewInt(key, d))
}

// NewInt64 builds an unregistered 64-bit integer option.
func NewInt64(key string, d Decl[int64]) *Option[int64] {
	return newOption(key, KindInt64, d)
}

// Int64 builds a 64-bit integer option and registers it into r.
func Int64(r *Registry, key string, d Decl[int64]) (*Option[int64], error) {
	return register(r, NewInt64(key, d))
}

// NewFloat builds an unregistered floating-point option.
func NewFloat(key string, d Decl[float64]) *Option[float64] {
	return newOption(key, KindFloat, d)
}

// Float builds a floating-point option and registers it into r.
func Float(r *Registry, key string, d Decl[float64]) (*Option[float64], error) {
	return register(r, NewFloat(key, d))
}

// NewStrings builds an unregistered string-slice option.
func NewStrings(key string, d Decl[[]string]) *Option[[]string] {
	return sliceOption(key, KindStrings, d)
}

// Strings builds a string-slice option and registers it into r.
func Strings(r *Registry, key string, d Decl[[]string]) (*Option[[]string], error) {
	return register(r, NewStrings(key, d))
}

// NewBools builds an unregistered boolean-slice option.
func NewBools(key string, d Decl[[]bool]) *Option[[]bool] {
	return sliceOption(key, KindBools, d)
}

// Bools builds a boolean-slice option and registers it into r.
func Bools(r *Registry, key string, d Decl[[]bool]) (*Option[[]bool], error) {
	return register(r, NewBools(key, d))
}

// NewInts builds an unregistered integer-slice option.
func NewInts(key string, d Decl[[]int]) *Option[[]int] {
	return sliceOption(key, KindInts, d)
}

// Ints builds an integer-slice option and registers it into r.
func Ints(r *Registry, key string, d Decl[[]int]) (*Option[[]int], error) {
	return register(r, NewInts(key, d))
}

// NewInt64s builds an unregistered 64-bit-integer-slice option.
func NewInt64s(key string, d Decl[[]int64]) *Option[[]int64] {
	return sliceOption(key, KindInt64s, d)
}

// Int64s builds a 64-bit-integer-slice option and registers it into r.
func Int64s(r *Registry, key string, d Decl[[]int64]) (*Option[[]int64], error) {
	return register(r, NewInt64s(key, d))
}

// NewFloats builds an unregistered float-slice option.
func NewFloats(key string, d Decl[[]float64]) *Option[[]float64] {
	return sliceOption(key, KindFloats, d)
}

// Floats builds a float-slice option and registers it into r.
func Floats(r *Registry, key string, d Decl[[]float64]) (*Option[[]float64], error) {
	return register(r, NewFloats(key, d))
}

// sliceOption builds a slice-kind option, installing the append merge when
// the declaration asks for accumulate mode.
func sliceOption[E any](key string, kind Kind, d Decl[[]E]) *Option[[]E] {
	o := newOption(key, kind, d)
	if d.Accumulate {
		o.merge = appendMerge[E]
	}
	return o
}

// appendMerge combines the current slice with an incoming one into a fresh
// slice. Setting the absent value clears rather than resurrects.
func appendMerge[E any](cur, in Value[[]E]) Value[[]E] {
	next, ok := in.Unwrap()
	if !ok {
		return in
	}
	prev, _ := cur.Unwrap()
	merged := make([]E, 0, len(prev)+len(next))
	merged = append(merged, prev...)
	merged = append(merged, next...)
	return Some(merged)
}

// register adds the option to the registry, preserving the typed reference
// for the caller.
func register[T any](r *Registry, o *Option[T]) (*Option[T], error) {
	if err := r.Register(o); err != nil {
		return nil, err
	}
	return o, nil
}
