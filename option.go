// File: patchopt/option.go
package patchopt

// Validator decides whether a candidate value is acceptable for an option.
// The option itself is passed alongside the candidate so validators can
// consult its metadata, for example to cross-check against Choices. A nil
// Validator accepts everything.
type Validator[T any] func(v Value[T], o *Option[T]) bool

// Choice pairs a display label with an optional value. Choices are
// informational hints for UIs and CLIs; Set and Get never enforce them.
// An option that must reject values outside its choices does so through
// its validator.
type Choice[T any] struct {
	Label string
	Value Value[T]
}

// Decl declares everything about an option except its key and kind.
// The zero Decl is a valid declaration: optional, no default, no hints,
// accept-anything validator.
type Decl[T any] struct {
	// Default is the initial value and the value Reset restores. It is
	// never validated at construction time.
	Default Value[T]

	// Choices are UI hints for plausible values. Not enforced.
	Choices []Choice[T]

	// Title and Description are display strings for forms and prompts.
	Title       string
	Description string

	// Required demands a present effective value at every Get and Set.
	Required bool

	// Validate is consulted before any value is committed or returned.
	Validate Validator[T]

	// Accumulate applies to slice kinds only: Set appends the candidate to
	// the current value instead of replacing it. Scalar constructors
	// ignore it. Reset still restores the declared Default.
	Accumulate bool
}

// Option is a single named, typed configuration cell with a default,
// required-ness and a validator. Its key is immutable after construction
// and unique within the owning Registry. Options are not safe for
// concurrent use.
type Option[T any] struct {
	key         string
	kind        Kind
	title       string
	description string
	required    bool
	def         Value[T]
	choices     []Choice[T]
	validate    Validator[T]

	// merge, when non-nil, combines the current value with an incoming
	// candidate before validation. Installed by slice constructors in
	// accumulate mode.
	merge func(cur, in Value[T]) Value[T]

	current Value[T]
}

// newOption builds an option from a declaration. The default becomes the
// current value without validation; defaults are assumed valid by
// construction.
func newOption[T any](key string, kind Kind, d Decl[T]) *Option[T] {
	return &Option[T]{
		key:         key,
		kind:        kind,
		title:       d.Title,
		description: d.Description,
		required:    d.Required,
		def:         d.Default,
		choices:     d.Choices,
		validate:    d.Validate,
		current:     d.Default,
	}
}

// Key returns the option's registry key.
func (o *Option[T]) Key() string { return o.key }

// Kind returns the option's runtime type discriminator.
func (o *Option[T]) Kind() Kind { return o.kind }

// Title returns the display title, possibly empty.
func (o *Option[T]) Title() string { return o.title }

// Description returns the display description, possibly empty.
func (o *Option[T]) Description() string { return o.description }

// Required reports whether the effective value must be present at every
// Get and Set.
func (o *Option[T]) Required() bool { return o.required }

// Default returns the declared default value.
func (o *Option[T]) Default() Value[T] { return o.def }

// Choices returns the declared allowed-value hints in declaration order.
func (o *Option[T]) Choices() []Choice[T] { return o.choices }

// Get returns the current value after re-validating it. Re-validation on
// read, not just on write, catches defaults that were never acceptable and
// validators whose outcome depends on external state. On failure the
// current value is left untouched and an absent Value is returned with a
// ValueRequiredError or ValueValidationError.
func (o *Option[T]) Get() (Value[T], error) {
	if err := o.check(o.current); err != nil {
		return None[T](), err
	}
	return o.current, nil
}

// Set validates the candidate and only then commits it. On failure the
// current value is untouched and the corresponding error is returned. In
// accumulate mode the candidate is first merged with the current value and
// the merged result is what gets validated and committed.
func (o *Option[T]) Set(v Value[T]) error {
	if o.merge != nil {
		v = o.merge(o.current, v)
	}
	if err := o.check(v); err != nil {
		return err
	}
	o.current = v
	return nil
}

// Reset unconditionally restores the declared default, bypassing
// validation.
func (o *Option[T]) Reset() {
	o.current = o.def
}

// check applies the two invariant checks, required-presence first.
func (o *Option[T]) check(v Value[T]) error {
	if o.required && v.IsNone() {
		return &ValueRequiredError{Opt: o}
	}
	if o.validate != nil && !o.validate(v, o) {
		return &ValueValidationError{Opt: o, Value: v.erased()}
	}
	return nil
}
