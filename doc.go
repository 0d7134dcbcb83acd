// File: patchopt/doc.go

// Package patchopt provides typed, validated option registration for patches.
// A patch is a unit of modification inside a larger patch-application
// framework; before it runs it declares named, typed configuration values
// with defaults, allowed-value hints and validation rules, and external
// callers (the execution engine, a CLI, a UI) read and write those values
// safely through the patch's option registry.
//
// Features:
//   - Generic Option[T] cells with explicit present/absent values
//   - Validate-then-commit semantics on every Set, re-validation on Get
//   - Insertion-ordered, key-unique Registry per patch
//   - Typed constructors for scalar and slice shapes that build and
//     register in one step
//   - Runtime Kind discriminator for consumers outside the typed boundary
//   - Weakly-typed coercion (SetAny, ReadInput) for CLI and UI input
//   - Typed errors with sentinel matching via errors.Is
//
// Quick Start:
//
//	reg := patchopt.NewRegistry()
//
//	retries, err := patchopt.Int(reg, "retries", patchopt.Decl[int]{
//	    Title:   "Retry count",
//	    Default: patchopt.Some(3),
//	    Validate: func(v patchopt.Value[int], _ *patchopt.Option[int]) bool {
//	        n, ok := v.Unwrap()
//	        return !ok || (n >= 0 && n <= 10)
//	    },
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	if err := retries.Set(patchopt.Some(5)); err != nil {
//	    log.Fatal(err)
//	}
//	v, _ := retries.Get()
//	n, _ := v.Unwrap() // 5
//
// A CLI or UI enumerates reg.All() for metadata and applies user input
// through the erased Opt interface:
//
//	for _, o := range reg.All() {
//	    fmt.Printf("%s (%s): %s\n", o.Key(), o.Kind(), o.Description())
//	}
//	if err := reg.Set("retries", "7"); err != nil {
//	    log.Fatal(err)
//	}
//
// Allowed-value hints (Choices) are informational only; they are never
// enforced automatically. An option that should reject values outside its
// choices does so through its own validator, which receives the option and
// can consult its metadata.
//
// Thread Safety:
// None. Registration and value mutation are assumed to happen on the single
// logical thread that configures and runs a patch. Hosts that expose options
// to concurrent readers and writers must synchronize externally.
package patchopt
