package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStepAndWall(t *testing.T) {
	s := NewStep(CellAt(3, 3, 9))
	assert.Equal(t, Step, s.Kind)
	assert.Equal(t, CellAt(3, 3, 9), s.To)

	w := NewWall(CellAt(2, 2, 9), Vertical)
	assert.Equal(t, Wall, w.Kind)
	assert.Equal(t, CellAt(2, 2, 9), w.Anchor)
	assert.Equal(t, Vertical, w.Orientation)
}

func TestNewWallFromEdgesCanonicalises(t *testing.T) {
	n := 9
	m, ok := NewWallFromEdges(n, CellAt(3, 4, n), CellAt(3, 5, n), CellAt(4, 4, n), CellAt(4, 5, n))
	require.True(t, ok)
	assert.Equal(t, NewWall(CellAt(3, 4, n), Vertical), m)

	_, ok2 := NewWallFromEdges(n, CellAt(3, 4, n), CellAt(3, 5, n), CellAt(3, 5, n), CellAt(3, 6, n))
	assert.False(t, ok2)
}

func TestMoveStringers(t *testing.T) {
	assert.Equal(t, "none", Move{}.String())
	assert.Contains(t, NewStep(CellAt(0, 0, 9)).String(), "step")
	assert.Contains(t, NewWall(CellAt(0, 0, 9), Horizontal).String(), "wall")
}
