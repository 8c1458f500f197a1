// Package grid holds the playing field and the pure operations over it: collision testing,
// stamping a piece into the field and clearing full rows.
//
// A Grid is row-major. The top HiddenRows rows are the spawn buffer: they take part in
// collisions and clearing exactly like any other row but are never drawn.
package grid

import (
	"slices"
	"strings"

	"github.com/deitrix/brickfall/cell"
)

// HiddenRows is the number of spawn-buffer rows at the top of every grid.
const HiddenRows = 2

type Grid struct {
	Width, Height int
	Cells         []int
}

// New returns an empty grid of the given size.
func New(width, height int) Grid {
	return Grid{
		Width:  width,
		Height: height,
		Cells:  make([]int, width*height),
	}
}

// In reports whether (x, y) is a coordinate of the grid.
func (g Grid) In(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.Width && y < g.Height
}

// At returns the cell at column x, row y. The coordinate must be in bounds.
func (g Grid) At(x, y int) int {
	return g.Cells[y*g.Width+x]
}

// Set writes the cell at column x, row y. The coordinate must be in bounds.
func (g Grid) Set(x, y, v int) {
	g.Cells[y*g.Width+x] = v
}

// Row returns a copy of row y.
func (g Grid) Row(y int) []int {
	return slices.Clone(g.Cells[y*g.Width : (y+1)*g.Width])
}

// Copy returns a deep copy of the grid.
func (g Grid) Copy() Grid {
	g.Cells = slices.Clone(g.Cells)
	return g
}

func (g Grid) Equal(o Grid) bool {
	return g.Width == o.Width && g.Height == o.Height && slices.Equal(g.Cells, o.Cells)
}

// Empty reports whether no cell is occupied.
func (g Grid) Empty() bool {
	for _, v := range g.Cells {
		if v != cell.Empty {
			return false
		}
	}
	return true
}

// Full reports whether every cell of row y is occupied.
func (g Grid) Full(y int) bool {
	for x := range g.Width {
		if g.At(x, y) == cell.Empty {
			return false
		}
	}
	return true
}

// String renders the grid one row per line, '.' for empty cells and the material id otherwise.
// The spawn buffer is separated from the visible field by a line of dashes.
func (g Grid) String() string {
	var sb strings.Builder
	for y := range g.Height {
		if y == HiddenRows && g.Height > HiddenRows {
			sb.WriteString(strings.Repeat("-", g.Width))
			sb.WriteByte('\n')
		}
		for x := range g.Width {
			v := g.At(x, y)
			switch {
			case v == cell.Empty:
				sb.WriteByte('.')
			case v < 10:
				sb.WriteByte(byte('0' + v))
			default:
				sb.WriteByte('#')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
