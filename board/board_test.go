package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBoardAllEdgesOpen(t *testing.T) {
	b := New(5)
	for c := 0; c < 25; c++ {
		for _, d := range Directions {
			nb, ok := neighbourCell(Cell(c), d, 5)
			if !ok {
				continue
			}
			assert.True(t, b.IsOpen(Cell(c), nb), "cell %d -> %s should start open", c, d)
		}
	}
}

func TestNeighboursCompassOrder(t *testing.T) {
	b := New(5)
	center := CellAt(2, 2, 5)
	got := b.Neighbours(center)
	require.Len(t, got, 4)
	assert.Equal(t, []Cell{CellAt(1, 2, 5), CellAt(3, 2, 5), CellAt(2, 1, 5), CellAt(2, 3, 5)}, got)
}

func TestNeighboursAtCorner(t *testing.T) {
	b := New(5)
	corner := CellAt(0, 0, 5)
	got := b.Neighbours(corner)
	assert.Equal(t, []Cell{CellAt(1, 0, 5), CellAt(0, 1, 5)}, got)
}

func TestPlaceWallBlocksFourEdges(t *testing.T) {
	b := New(5)
	anchor := CellAt(1, 1, 5)
	require.True(t, b.CanPlaceWall(anchor, Vertical))
	require.NoError(t, b.PlaceWall(anchor, Vertical))

	tl, tr, bl, br := wallCells(anchor, 5)
	assert.False(t, b.IsOpen(tl, tr))
	assert.False(t, b.IsOpen(bl, br))
	// Perpendicular edges at the same corners stay open.
	assert.True(t, b.IsOpen(tl, bl))
	assert.True(t, b.IsOpen(tr, br))
}

func TestPlaceWallRejectsOverlap(t *testing.T) {
	b := New(5)
	anchor := CellAt(1, 1, 5)
	require.NoError(t, b.PlaceWall(anchor, Vertical))
	assert.ErrorIs(t, b.PlaceWall(anchor, Vertical), ErrWallNotOpen)
}

func TestPlaceWallRejectsCrossing(t *testing.T) {
	b := New(5)
	anchor := CellAt(1, 1, 5)
	require.NoError(t, b.PlaceWall(anchor, Vertical))
	assert.ErrorIs(t, b.PlaceWall(anchor, Horizontal), ErrWallCrosses)
}

func TestPlaceWallOutOfBounds(t *testing.T) {
	b := New(5)
	assert.ErrorIs(t, b.PlaceWall(CellAt(4, 4, 5), Vertical), ErrWallOutOfBounds)
}

func TestRemoveWallRestoresEdges(t *testing.T) {
	b := New(5)
	anchor := CellAt(1, 1, 5)
	require.NoError(t, b.PlaceWall(anchor, Horizontal))
	require.NoError(t, b.RemoveWall(anchor, Horizontal))

	tl, tr, bl, br := wallCells(anchor, 5)
	assert.True(t, b.IsOpen(tl, bl))
	assert.True(t, b.IsOpen(tr, br))

	// A removed wall frees the intersection for either orientation again.
	assert.True(t, b.CanPlaceWall(anchor, Vertical))
	assert.True(t, b.CanPlaceWall(anchor, Horizontal))
}

func TestRemoveWallNoMatch(t *testing.T) {
	b := New(5)
	anchor := CellAt(1, 1, 5)
	assert.ErrorIs(t, b.RemoveWall(anchor, Vertical), ErrNoWallHere)

	require.NoError(t, b.PlaceWall(anchor, Vertical))
	assert.ErrorIs(t, b.RemoveWall(anchor, Horizontal), ErrNoWallHere)
}

func TestStartAndTargetRows(t *testing.T) {
	b := New(9)
	assert.Equal(t, 0, b.StartRow(Black))
	assert.Equal(t, 8, b.StartRow(White))
	assert.Equal(t, 8, b.TargetRow(Black))
	assert.Equal(t, 0, b.TargetRow(White))
	assert.True(t, b.IsTargetCell(Black, CellAt(8, 3, 9)))
	assert.False(t, b.IsTargetCell(Black, CellAt(0, 3, 9)))
}

func TestCanonicalAnchor(t *testing.T) {
	n := 5
	a, o, ok := CanonicalAnchor(n, CellAt(1, 1, n), CellAt(1, 2, n), CellAt(2, 1, n), CellAt(2, 2, n))
	require.True(t, ok)
	assert.Equal(t, CellAt(1, 1, n), a)
	assert.Equal(t, Vertical, o)

	// Order of the two edges, and direction within each edge, must not matter.
	a2, o2, ok2 := CanonicalAnchor(n, CellAt(2, 2, n), CellAt(2, 1, n), CellAt(1, 2, n), CellAt(1, 1, n))
	require.True(t, ok2)
	assert.Equal(t, a, a2)
	assert.Equal(t, o, o2)

	a3, o3, ok3 := CanonicalAnchor(n, CellAt(1, 1, n), CellAt(2, 1, n), CellAt(1, 2, n), CellAt(2, 2, n))
	require.True(t, ok3)
	assert.Equal(t, CellAt(1, 1, n), a3)
	assert.Equal(t, Horizontal, o3)

	_, _, ok4 := CanonicalAnchor(n, CellAt(1, 1, n), CellAt(1, 2, n), CellAt(1, 3, n), CellAt(1, 4, n))
	assert.False(t, ok4)
}
