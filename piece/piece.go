package piece

import (
	"slices"

	"github.com/deitrix/brickfall/cell"
)

// Piece is a single rotation state of a brick: a small row-major mask where 0 is empty and any
// other value is the brick's material id.
type Piece struct {
	Mask          []int
	Width, Height int
}

// At returns the mask value at local column x, row y. Coordinates outside the mask are empty.
func (p Piece) At(x, y int) int {
	if x < 0 || y < 0 || x >= p.Width || y >= p.Height {
		return cell.Empty
	}
	return p.Mask[y*p.Width+x]
}

// Cell is an occupied cell of a piece at local column X, row Y.
type Cell struct {
	X, Y     int
	Material int
}

// Cells returns the occupied cells of the piece in row-major order.
func (p Piece) Cells() []Cell {
	cells := make([]Cell, 0, len(p.Mask))
	for i, v := range p.Mask {
		if v == cell.Empty {
			continue
		}
		cells = append(cells, Cell{X: i % p.Width, Y: i / p.Width, Material: v})
	}
	return cells
}

// TrimSpace removes empty rows and columns from the piece
func (p Piece) TrimSpace() Piece {
	minX, minY, maxX, maxY := p.Width, p.Height, -1, -1
	for _, c := range p.Cells() {
		minX = min(minX, c.X)
		minY = min(minY, c.Y)
		maxX = max(maxX, c.X)
		maxY = max(maxY, c.Y)
	}
	if maxX < 0 {
		return Piece{}
	}
	newWidth := maxX - minX + 1
	newMask := make([]int, newWidth*(maxY-minY+1))
	for i := range len(newMask) {
		x := i % newWidth
		y := i / newWidth
		newMask[i] = p.Mask[(y+minY)*p.Width+x+minX]
	}
	return Piece{
		Mask:   newMask,
		Width:  newWidth,
		Height: maxY - minY + 1,
	}
}

func (p Piece) Clone() Piece {
	p.Mask = slices.Clone(p.Mask)
	return p
}

// rotated returns the piece turned a quarter clockwise. A cell at (x, y) lands on
// (Height-1-y, x), so the result is Height wide and Width tall.
func (p Piece) rotated() Piece {
	newMask := make([]int, len(p.Mask))
	for i := range p.Mask {
		x := i % p.Width
		y := i / p.Width
		newMask[x*p.Height+p.Height-1-y] = p.Mask[i]
	}
	return Piece{
		Mask:   newMask,
		Width:  p.Height,
		Height: p.Width,
	}
}
