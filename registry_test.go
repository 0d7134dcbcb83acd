// File: patchopt/registry_test.go
package patchopt

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRegisterAndLookup tests the basic register/lookup cycle
func TestRegisterAndLookup(t *testing.T) {
	reg := NewRegistry()
	o := NewString("host", Decl[string]{Default: Some("localhost")})

	require.NoError(t, reg.Register(o))
	assert.Equal(t, 1, reg.Len())

	got, err := reg.Lookup("host")
	require.NoError(t, err)
	assert.Same(t, o, got)
}

// TestDuplicateKey tests that a second Register with the same key fails and
// the registry retains only the first option
func TestDuplicateKey(t *testing.T) {
	reg := NewRegistry()
	first := NewInt("port", Decl[int]{Default: Some(8080)})
	second := NewInt("port", Decl[int]{Default: Some(9090)})

	require.NoError(t, reg.Register(first))
	err := reg.Register(second)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDuplicateKey)

	var dErr *DuplicateKeyError
	require.True(t, errors.As(err, &dErr))
	assert.Equal(t, "port", dErr.Key)
	assert.Same(t, first, dErr.Existing)

	assert.Equal(t, 1, reg.Len())
	got, err := reg.Lookup("port")
	require.NoError(t, err)
	assert.Same(t, first, got)
}

// TestLookupNotFound tests the missing-key error
func TestLookupNotFound(t *testing.T) {
	reg := NewRegistry()

	_, err := reg.Lookup("nope")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)

	var nErr *NotFoundError
	require.True(t, errors.As(err, &nErr))
	assert.Equal(t, "nope", nErr.Key)
}

// TestEnumerationOrder tests that All preserves insertion order
func TestEnumerationOrder(t *testing.T) {
	reg := NewRegistry()
	keys := []string{"zeta", "alpha", "mid", "omega"}
	for _, k := range keys {
		require.NoError(t, reg.Register(NewBool(k, Decl[bool]{})))
	}

	var got []string
	for _, o := range reg.All() {
		got = append(got, o.Key())
	}
	assert.Equal(t, keys, got)
}

// TestResetAll tests that every option returns to its declared default
// regardless of prior sets
func TestResetAll(t *testing.T) {
	reg := NewRegistry()

	a, err := String(reg, "a", Decl[string]{Default: Some("one")})
	require.NoError(t, err)
	b, err := Int(reg, "b", Decl[int]{Default: Some(1)})
	require.NoError(t, err)

	require.NoError(t, a.Set(Some("changed")))
	require.NoError(t, b.Set(Some(42)))

	reg.ResetAll()

	av, err := a.Get()
	require.NoError(t, err)
	assert.Equal(t, "one", av.Or(""))

	bv, err := b.Get()
	require.NoError(t, err)
	assert.Equal(t, 1, bv.Or(-1))
}

// TestRegistrySetAndValue tests the key-addressed convenience accessors
func TestRegistrySetAndValue(t *testing.T) {
	reg := NewRegistry()
	_, err := Int(reg, "level", Decl[int]{Default: Some(1)})
	require.NoError(t, err)

	t.Run("SetKnownKey", func(t *testing.T) {
		require.NoError(t, reg.Set("level", 2))
		v, err := reg.Value("level")
		require.NoError(t, err)
		assert.Equal(t, 2, v)
	})

	t.Run("SetCoercesInput", func(t *testing.T) {
		require.NoError(t, reg.Set("level", "3"))
		v, err := reg.Value("level")
		require.NoError(t, err)
		assert.Equal(t, 3, v)
	})

	t.Run("SetUnknownKey", func(t *testing.T) {
		err := reg.Set("missing", 1)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("ValueUnknownKey", func(t *testing.T) {
		_, err := reg.Value("missing")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

// TestPatchBase tests that an embedded Base gives a patch its own registry
func TestPatchBase(t *testing.T) {
	base := NewBase("strip-debug")
	assert.Equal(t, "strip-debug", base.Name())
	require.NotNil(t, base.Options())

	_, err := Bool(base.Options(), "dry-run", Decl[bool]{Default: Some(false)})
	require.NoError(t, err)
	assert.Equal(t, 1, base.Options().Len())

	// Two patches never share a registry.
	other := NewBase("other")
	assert.NotSame(t, base.Options(), other.Options())
	assert.Equal(t, 0, other.Options().Len())
}
