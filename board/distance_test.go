package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDistanceOnEmptyBoard(t *testing.T) {
	b := New(5)
	// Dead centre of a 5x5 board is 2 rows from either edge row.
	assert.Equal(t, 2, Distance(b, CellAt(2, 2, 5), 0))
	assert.Equal(t, 2, Distance(b, CellAt(2, 2, 5), 4))
	assert.Equal(t, 0, Distance(b, CellAt(0, 0, 5), 0))
}

func TestDistanceIncreasesBehindAWall(t *testing.T) {
	b := New(5)
	from := CellAt(4, 2, 5)
	before := Distance(b, from, 0)

	require.NoError(t, b.PlaceWall(CellAt(3, 1, 5), Horizontal))
	require.NoError(t, b.PlaceWall(CellAt(3, 3, 5), Horizontal))

	after := Distance(b, from, 0)
	assert.GreaterOrEqual(t, after, before)
}

func TestDistanceNoPathWhenFullyWalledOff(t *testing.T) {
	n := 4
	b := New(n)
	// Two non-overlapping horizontal walls along row boundary 0/1 cover
	// all four columns, sealing row 0 away from the rest of the board.
	require.NoError(t, b.PlaceWall(CellAt(0, 0, n), Horizontal))
	require.NoError(t, b.PlaceWall(CellAt(0, 2, n), Horizontal))
	assert.Equal(t, NoPath, Distance(b, CellAt(3, 2, n), 0))
}

func TestDistanceToGoal(t *testing.T) {
	b := New(9)
	assert.Equal(t, 8, DistanceToGoal(b, Black, CellAt(0, 4, 9)))
	assert.Equal(t, 8, DistanceToGoal(b, White, CellAt(8, 4, 9)))
}
