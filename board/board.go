package board

import "errors"

// Errors returned by wall placement/removal. Legality (including the
// no-blockade rule) is the legality checker's job, not the board's — the
// board only enforces the geometry invariants described in its own
// preconditions.
var (
	ErrWallOutOfBounds = errors.New("board: wall anchor out of bounds")
	ErrWallNotOpen     = errors.New("board: wall would cut an already-blocked edge")
	ErrWallCrosses     = errors.New("board: wall crosses a perpendicular wall at the same intersection")
	ErrNoWallHere      = errors.New("board: no matching wall to remove")
)

// wallMark records which orientation (if any) occupies a grid
// intersection, so a newly proposed wall can be checked against a
// perpendicular wall sharing the same anchor even though the two walls
// block entirely different edges.
type wallMark struct {
	present     bool
	orientation Orientation
}

// Board is the N*N Quoridor grid: a direction-labelled edge for every pair
// of geometrically adjacent cells, plus which row belongs to which color.
//
// Edges are stored as a flat, direction-indexed array (edgeIndex(c, d))
// rather than a sparse map keyed by cell pairs: with at most four
// directions per cell the array is both simpler and a better fit for the
// search strategy, which mutates the very same layout directly (see
// strategy/search).
type Board struct {
	n        int
	edges    []edgeLabel
	crossing []wallMark
}

// New builds an empty N*N board: every edge between geometrically adjacent
// cells is open, no walls are placed.
func New(n int) *Board {
	if n < 2 {
		panic("board: n must be at least 2")
	}
	b := &Board{
		n:        n,
		edges:    make([]edgeLabel, n*n*numDirections),
		crossing: make([]wallMark, n*n),
	}
	for c := 0; c < n*n; c++ {
		for _, d := range Directions {
			if _, ok := neighbourCell(Cell(c), d, n); ok {
				b.edges[edgeIndex(Cell(c), d)] = openLabel(d)
			}
		}
	}
	return b
}

// N returns the board's side length.
func (b *Board) N() int { return b.n }

// Clone returns an independent copy of b: the edge and wall-crossing
// arrays are copied, never shared, so mutating the clone (placing or
// removing walls) never touches b.
func (b *Board) Clone() *Board {
	edges := make([]edgeLabel, len(b.edges))
	copy(edges, b.edges)
	crossing := make([]wallMark, len(b.crossing))
	copy(crossing, b.crossing)
	return &Board{n: b.n, edges: edges, crossing: crossing}
}

func edgeIndex(c Cell, d Direction) int { return int(c)*numDirections + int(d) }

// neighbourCell computes the cell geometrically adjacent to c in direction
// d, if any (off-board directions return ok == false).
func neighbourCell(c Cell, d Direction, n int) (Cell, bool) {
	row, col := c.Row(n), c.Col(n)
	switch d {
	case North:
		if row == 0 {
			return 0, false
		}
		return c - Cell(n), true
	case South:
		if row == n-1 {
			return 0, false
		}
		return c + Cell(n), true
	case West:
		if col == 0 {
			return 0, false
		}
		return c - 1, true
	default: // East
		if col == n-1 {
			return 0, false
		}
		return c + 1, true
	}
}

// directionTo returns the direction from u to v, assuming the two cells are
// geometrically adjacent (Manhattan distance 1); ok is false otherwise.
func directionTo(u, v Cell, n int) (Direction, bool) {
	ur, uc := u.Row(n), u.Col(n)
	vr, vc := v.Row(n), v.Col(n)
	switch {
	case vr == ur-1 && vc == uc:
		return North, true
	case vr == ur+1 && vc == uc:
		return South, true
	case vc == uc-1 && vr == ur:
		return West, true
	case vc == uc+1 && vr == ur:
		return East, true
	default:
		return 0, false
	}
}

// Neighbour returns the cell adjacent to c in direction d if an Open* edge
// connects them; ok is false if there is no cell there or the edge is
// blocked by a wall.
func (b *Board) Neighbour(c Cell, d Direction) (Cell, bool) {
	n, ok := neighbourCell(c, d, b.n)
	if !ok {
		return 0, false
	}
	if !b.edges[edgeIndex(c, d)].isOpen() {
		return 0, false
	}
	return n, true
}

// Neighbours returns the cells reachable from c by a single open edge,
// ordered by compass direction (North, South, West, East).
func (b *Board) Neighbours(c Cell) []Cell {
	var out []Cell
	for _, d := range Directions {
		if nb, ok := b.Neighbour(c, d); ok {
			out = append(out, nb)
		}
	}
	return out
}

// IsOpen reports whether u and v are geometrically adjacent and connected
// by an unblocked edge.
func (b *Board) IsOpen(u, v Cell) bool {
	d, ok := directionTo(u, v, b.n)
	if !ok {
		return false
	}
	return b.edges[edgeIndex(u, d)].isOpen()
}

// StartRow returns the row color starts on.
func (b *Board) StartRow(color Color) int {
	if color == Black {
		return 0
	}
	return b.n - 1
}

// TargetRow returns the row color must reach to win.
func (b *Board) TargetRow(color Color) int {
	return b.StartRow(color.Opposite())
}

// IsStartCell reports whether c belongs to color's starting row.
func (b *Board) IsStartCell(color Color, c Cell) bool {
	return c.Row(b.n) == b.StartRow(color)
}

// IsTargetCell reports whether c belongs to color's target row.
func (b *Board) IsTargetCell(color Color, c Cell) bool {
	return c.Row(b.n) == b.TargetRow(color)
}

// StartRowCells returns every cell of color's starting row, ordered left
// to right.
func (b *Board) StartRowCells(color Color) []Cell {
	row := b.StartRow(color)
	cells := make([]Cell, b.n)
	for col := 0; col < b.n; col++ {
		cells[col] = CellAt(row, col, b.n)
	}
	return cells
}

// wallCells returns the four cells of the 2x2 block anchored at a.
func wallCells(a Cell, n int) (topLeft, topRight, bottomLeft, bottomRight Cell) {
	return a, a + 1, a + Cell(n), a + Cell(n) + 1
}

// validAnchor reports whether a is a valid wall intersection: the interior
// grid point with row and column both in [0, n-2].
func (b *Board) validAnchor(a Cell) bool {
	row, col := a.Row(b.n), a.Col(b.n)
	return row >= 0 && row <= b.n-2 && col >= 0 && col <= b.n-2
}

// wallEdges returns the primary and secondary directed edges a wall of the
// given orientation anchored at a would occupy.
func wallEdges(a Cell, o Orientation, n int) (p1, p2, s1, s2 Cell, dir Direction) {
	tl, tr, bl, br := wallCells(a, n)
	if o == Vertical {
		return tl, tr, bl, br, East
	}
	return tl, bl, tr, br, South
}

// CanPlaceWall reports whether a wall of orientation o anchored at a could
// be placed: in bounds, both edges currently open, and not crossing a
// perpendicular wall at the same intersection. It does not check the
// no-blockade rule, which needs the distance oracle and lives in the
// legality checker.
func (b *Board) CanPlaceWall(a Cell, o Orientation) bool {
	if !b.validAnchor(a) {
		return false
	}
	if mark := b.crossing[a]; mark.present && mark.orientation != o {
		return false
	}
	p1, p2, s1, s2, dir := wallEdges(a, o, b.n)
	return b.edges[edgeIndex(p1, dir)].isOpen() && b.edges[edgeIndex(s1, dir)].isOpen() &&
		b.edges[edgeIndex(p2, dir.Opposite())].isOpen() && b.edges[edgeIndex(s2, dir.Opposite())].isOpen()
}

// PlaceWall atomically relabels the four directed edges a wall of
// orientation o anchored at a implicates. a is the smaller-index corner of
// the wall (top-left of the 2x2 block it straddles); see CanonicalAnchor
// for turning an arbitrary pair of edges into this form.
func (b *Board) PlaceWall(a Cell, o Orientation) error {
	if !b.validAnchor(a) {
		return ErrWallOutOfBounds
	}
	if mark := b.crossing[a]; mark.present && mark.orientation != o {
		return ErrWallCrosses
	}
	if !b.CanPlaceWall(a, o) {
		return ErrWallNotOpen
	}

	p1, p2, s1, s2, dir := wallEdges(a, o, b.n)
	var primary, secondary edgeLabel
	if o == Vertical {
		primary, secondary = wallVPrimary, wallVSecondary
	} else {
		primary, secondary = wallHPrimary, wallHSecondary
	}
	b.edges[edgeIndex(p1, dir)] = primary
	b.edges[edgeIndex(p2, dir.Opposite())] = primary
	b.edges[edgeIndex(s1, dir)] = secondary
	b.edges[edgeIndex(s2, dir.Opposite())] = secondary
	b.crossing[a] = wallMark{present: true, orientation: o}
	return nil
}

// RemoveWall reverses a previous PlaceWall(a, o), restoring direction-tagged
// Open* labels on all four edges.
func (b *Board) RemoveWall(a Cell, o Orientation) error {
	if !b.validAnchor(a) {
		return ErrWallOutOfBounds
	}
	mark := b.crossing[a]
	if !mark.present || mark.orientation != o {
		return ErrNoWallHere
	}
	p1, p2, s1, s2, dir := wallEdges(a, o, b.n)
	b.edges[edgeIndex(p1, dir)] = openLabel(dir)
	b.edges[edgeIndex(p2, dir.Opposite())] = openLabel(dir.Opposite())
	b.edges[edgeIndex(s1, dir)] = openLabel(dir)
	b.edges[edgeIndex(s2, dir.Opposite())] = openLabel(dir.Opposite())
	b.crossing[a] = wallMark{}
	return nil
}

// CanonicalAnchor sorts an arbitrary pair of edges describing a wall into
// its canonical (anchor cell, orientation) form: the anchor is the
// smaller-index cell among the four corners the wall straddles (top for
// horizontal walls, left for vertical walls). ok is false if the two edges
// do not describe a valid wall geometry (two parallel east-west edges
// stacked vertically, or two parallel north-south edges side by side).
func CanonicalAnchor(n int, e1u, e1v, e2u, e2v Cell) (anchor Cell, o Orientation, ok bool) {
	// Normalize each edge so its smaller endpoint comes first.
	if e1u > e1v {
		e1u, e1v = e1v, e1u
	}
	if e2u > e2v {
		e2u, e2v = e2v, e2u
	}
	// Order the two edges by their smaller endpoint.
	if e1u > e2u {
		e1u, e1v, e2u, e2v = e2u, e2v, e1u, e1v
	}
	// The anchor must be an interior intersection, so no edge wraps past
	// the end of a row or runs off the board.
	if e1u < 0 || e1u.Row(n) > n-2 || e1u.Col(n) > n-2 {
		return 0, 0, false
	}

	if e1v == e1u+1 && e2v == e2u+1 && e2u == e1u+Cell(n) {
		return e1u, Vertical, true
	}
	if e1v == e1u+Cell(n) && e2v == e2u+Cell(n) && e2u == e1u+1 {
		return e1u, Horizontal, true
	}
	return 0, 0, false
}
