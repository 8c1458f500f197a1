package grid

import (
	"slices"

	"github.com/deitrix/brickfall/cell"
	"github.com/deitrix/brickfall/piece"
)

// ClearResult is the outcome of one ClearFullRows pass.
type ClearResult struct {
	// Grid is the field after the full rows were removed
	Grid Grid
	// Removed is the number of rows that were removed
	Removed int
	// Rows are the indices of the removed rows in the field before clearing, top to bottom
	Rows []int
	// Bonus is the score earned by this pass
	Bonus int
}

// Overlaps reports whether piece p placed with its top-left corner at (x, y) collides: some
// occupied cell of p is outside the grid or on an occupied grid cell. Empty cells of p are never
// checked, so a piece may hang over the edge with its empty border.
func Overlaps(g Grid, p piece.Piece, x, y int) bool {
	for _, c := range p.Cells() {
		gx, gy := x+c.X, y+c.Y
		if !g.In(gx, gy) || g.At(gx, gy) != cell.Empty {
			return true
		}
	}
	return false
}

// Stamp returns a copy of g with the occupied cells of p written at (x, y). It does not check
// for collisions; cells of p that fall outside the grid are dropped.
func Stamp(g Grid, p piece.Piece, x, y int) Grid {
	out := g.Copy()
	for _, c := range p.Cells() {
		gx, gy := x+c.X, y+c.Y
		if out.In(gx, gy) {
			out.Set(gx, gy, c.Material)
		}
	}
	return out
}

// ClearFullRows removes every full row of g. Rows above a removed row move down by one and an
// empty row is inserted at the top for each row removed. When nothing is full the returned grid
// is an unchanged copy of g.
func ClearFullRows(g Grid) ClearResult {
	out := New(g.Width, g.Height)
	var rows []int
	dst := g.Height - 1
	for y := g.Height - 1; y >= 0; y-- {
		if g.Full(y) {
			rows = append(rows, y)
			continue
		}
		copy(out.Cells[dst*g.Width:(dst+1)*g.Width], g.Cells[y*g.Width:(y+1)*g.Width])
		dst--
	}
	slices.Reverse(rows)
	return ClearResult{
		Grid:    out,
		Removed: len(rows),
		Rows:    rows,
		Bonus:   Bonus(len(rows)),
	}
}

// Bonus is the score for clearing n rows in a single pass. It grows with the square of n, so
// clearing rows together is worth more than clearing them one by one.
func Bonus(n int) int {
	if n <= 0 {
		return 0
	}
	return 50 * n * n
}
