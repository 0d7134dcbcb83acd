// File: patchopt/boundary.go
package patchopt

import (
	"strings"

	"github.com/mitchellh/mapstructure"
)

// Opt is the erased view of an Option used where static type information is
// unavailable: the Registry itself, and CLI or UI consumers that discover
// metadata by enumeration and branch on Kind. Every *Option[T] implements
// it.
type Opt interface {
	Key() string
	Kind() Kind
	Title() string
	Description() string
	Required() bool

	// IsSet reports whether the current value is present.
	IsSet() bool

	// ValueAny returns the validated current value as an untyped any, nil
	// when absent. It performs the same re-validation as the typed Get.
	ValueAny() (any, error)

	// DefaultAny returns the declared default as an untyped any, nil when
	// absent.
	DefaultAny() any

	// Raw returns the current value without validation and whether it is
	// present. Debug helpers use it; consumers should use ValueAny.
	Raw() (any, bool)

	// SetAny coerces the candidate into the option's value type and then
	// applies the normal validate-then-commit Set. A nil candidate is the
	// absent value. Coercion failure is reported as a ValueValidationError
	// carrying the original candidate.
	SetAny(v any) error

	// ReadInput parses a textual value, as typed by a user or found on a
	// command line, and applies SetAny. Comma-separated input coerces into
	// the slice kinds. Empty input is the absent value.
	ReadInput(input string) error

	// Hints returns the declared allowed-value hints in declaration order.
	Hints() []Hint

	// Reset unconditionally restores the declared default.
	Reset()
}

// Hint is the erased form of a Choice: a display label and the value it
// stands for, nil when the choice carries no value.
type Hint struct {
	Label string
	Value any
}

// IsSet reports whether the current value is present.
func (o *Option[T]) IsSet() bool { return o.current.IsSome() }

// ValueAny returns the validated current value as an untyped any.
func (o *Option[T]) ValueAny() (any, error) {
	v, err := o.Get()
	if err != nil {
		return nil, err
	}
	return v.erased(), nil
}

// DefaultAny returns the declared default as an untyped any.
func (o *Option[T]) DefaultAny() any { return o.def.erased() }

// Raw returns the current value without validation.
func (o *Option[T]) Raw() (any, bool) {
	return o.current.erased(), o.current.IsSome()
}

// SetAny coerces v into T and applies Set.
func (o *Option[T]) SetAny(v any) error {
	if v == nil {
		return o.Set(None[T]())
	}
	var t T
	if err := weakDecode(v, &t); err != nil {
		return &ValueValidationError{Opt: o, Value: v}
	}
	return o.Set(Some(t))
}

// ReadInput parses textual input and applies SetAny. Slice kinds are split
// on commas here, before decoding: the weak decoder converts the elements
// of a []string but does not split a bare string destined for a non-string
// slice. Scalar conversion is left to the weak decoding layer.
func (o *Option[T]) ReadInput(input string) error {
	if input == "" {
		return o.Set(None[T]())
	}
	if o.kind.IsSlice() {
		return o.SetAny(strings.Split(input, ","))
	}
	return o.SetAny(input)
}

// Hints returns the choice metadata in erased form.
func (o *Option[T]) Hints() []Hint {
	if len(o.choices) == 0 {
		return nil
	}
	hints := make([]Hint, len(o.choices))
	for i, c := range o.choices {
		hints[i] = Hint{Label: c.Label, Value: c.Value.erased()}
	}
	return hints
}

// weakDecode coerces loosely typed input into target using weakly-typed
// mapstructure decoding: string forms of numbers and booleans convert to
// their types, and a comma-separated string converts to a string slice.
func weakDecode(input, target any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		WeaklyTypedInput: true,
		DecodeHook:       mapstructure.StringToSliceHookFunc(","),
	})
	if err != nil {
		return err
	}
	return decoder.Decode(input)
}
