package anchor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_ForReturnsSameController(t *testing.T) {
	r := NewRegistry(Policy{})
	a := r.For("song-1")
	b := r.For("song-1")
	require.Same(t, a, b)
	assert.Equal(t, 1, r.Len())
}

func TestRegistry_IndependentRows(t *testing.T) {
	r := NewRegistry(Policy{ExclusiveAcrossRows: false})

	r.RightClick("a", 1, 1)
	r.RightClick("b", 2, 2)

	assert.Equal(t, []string{"a", "b"}, r.Open())
}

func TestRegistry_ExclusiveRows(t *testing.T) {
	r := NewRegistry(Policy{ExclusiveAcrossRows: true})

	r.RightClick("a", 1, 1)
	r.RightClick("b", 2, 2)

	assert.Equal(t, []string{"b"}, r.Open())
	assert.False(t, r.For("a").IsOpen())
	_, ok := r.For("a").Anchor()
	assert.False(t, ok)
}

func TestRegistry_ExclusiveAppliesToDirectControllerUse(t *testing.T) {
	r := NewRegistry(Policy{ExclusiveAcrossRows: true})
	a := r.For("a")
	b := r.For("b")

	a.OpenAt(1, 1)
	a.Toggle()
	b.OpenAt(4, 4)
	b.Toggle()

	assert.False(t, a.IsOpen())
	assert.True(t, b.IsOpen())
}

func TestRegistry_CloseAndCloseAll(t *testing.T) {
	r := NewRegistry(Policy{})
	r.RightClick("a", 1, 1)
	r.RightClick("b", 1, 2)
	r.RightClick("c", 1, 3)

	r.Close("a")
	r.Close("missing")
	assert.Equal(t, []string{"b", "c"}, r.Open())

	r.CloseAll()
	assert.Empty(t, r.Open())
}

func TestRegistry_RetainForgetsRemovedRows(t *testing.T) {
	r := NewRegistry(Policy{})
	removed := r.For("gone")
	removed.RightClick(1, 1)
	r.RightClick("kept", 2, 2)

	r.Retain([]string{"kept"})

	assert.Equal(t, 1, r.Len())
	assert.False(t, removed.IsOpen(), "removed row popup must be closed")
	assert.Equal(t, []string{"kept"}, r.Open())
}
