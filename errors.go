// File: patchopt/errors.go
package patchopt

import (
	"errors"
	"fmt"
)

// Sentinel errors for matching with errors.Is. The concrete error types
// below carry the failing option, key or candidate value and unwrap to
// these.
var (
	ErrValueRequired   = errors.New("required value is absent")
	ErrValueValidation = errors.New("value rejected by validator")
	ErrDuplicateKey    = errors.New("option key already registered")
	ErrNotFound        = errors.New("option key not registered")
)

// ValueRequiredError reports a Get or Set that found a required option's
// effective value absent.
type ValueRequiredError struct {
	Opt Opt
}

func (e *ValueRequiredError) Error() string {
	return fmt.Sprintf("option %q: required value is absent", e.Opt.Key())
}

func (e *ValueRequiredError) Unwrap() error { return ErrValueRequired }

// ValueValidationError reports a candidate value rejected by an option's
// validator, or input that could not be coerced into the option's type.
// Value holds the rejected candidate; nil means the candidate was absent.
type ValueValidationError struct {
	Opt   Opt
	Value any
}

func (e *ValueValidationError) Error() string {
	return fmt.Sprintf("option %q: value %v rejected by validator", e.Opt.Key(), e.Value)
}

func (e *ValueValidationError) Unwrap() error { return ErrValueValidation }

// DuplicateKeyError reports a Register call whose key is already present in
// the registry. Existing is the option that holds the key.
type DuplicateKeyError struct {
	Key      string
	Existing Opt
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("option key %q already registered", e.Key)
}

func (e *DuplicateKeyError) Unwrap() error { return ErrDuplicateKey }

// NotFoundError reports a Lookup for a key with no registered option.
type NotFoundError struct {
	Key string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("option key %q not registered", e.Key)
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }
