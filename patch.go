// File: patchopt/patch.go
package patchopt

// Patch is the hook this package needs from a unit of modification: a name
// for diagnostics and the registry its options live in. How a patch
// performs its transformation is the framework's concern, not this
// package's.
type Patch interface {
	Name() string
	Options() *Registry
}

// Base is a ready-made Patch core. Patch implementations embed it and
// declare their options against Options() during construction:
//
//	type timeoutPatch struct {
//	    *patchopt.Base
//	    limit *patchopt.Option[int]
//	}
//
//	func newTimeoutPatch() (*timeoutPatch, error) {
//	    p := &timeoutPatch{Base: patchopt.NewBase("timeout")}
//	    var err error
//	    p.limit, err = patchopt.Int(p.Options(), "limit", patchopt.Decl[int]{
//	        Default: patchopt.Some(30),
//	    })
//	    return p, err
//	}
type Base struct {
	name string
	opts *Registry
}

// NewBase creates a patch core with an empty registry.
func NewBase(name string) *Base {
	return &Base{
		name: name,
		opts: NewRegistry(),
	}
}

// Name returns the patch name.
func (b *Base) Name() string { return b.name }

// Options returns the registry owning this patch's options. The registry
// belongs to exactly one patch for its whole lifetime.
func (b *Base) Options() *Registry { return b.opts }
