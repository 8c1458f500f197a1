package piece

import "fmt"

// Kind identifies a brick. A Kind is all a brick is: the shape and material are catalog data
// looked up through it, so kinds can be copied and compared freely.
type Kind int

const (
	I Kind = iota + 1
	J
	L
	O
	S
	T
	Z
)

// Rotations is the number of rotation states every shape has.
const Rotations = 4

// Shape holds the four rotation states of a kind, each a quarter turn clockwise from the last.
type Shape [Rotations]Piece

var (
	// All is every kind in the catalog, drawn from by the random supply.
	All = []Kind{I, J, L, O, S, T, Z}
	// Relaxed is the long bar and the square, drawn from by the restricted supply.
	Relaxed = []Kind{I, O}
)

var base = map[Kind]Piece{
	I: {
		Mask: []int{
			0, 0, 0, 0,
			0, 0, 0, 0,
			1, 1, 1, 1,
			0, 0, 0, 0,
		},
		Width:  4,
		Height: 4,
	},
	J: {
		Mask: []int{
			2, 0, 0,
			2, 2, 2,
			0, 0, 0,
		},
		Width:  3,
		Height: 3,
	},
	L: {
		Mask: []int{
			0, 0, 3,
			3, 3, 3,
			0, 0, 0,
		},
		Width:  3,
		Height: 3,
	},
	O: {
		Mask: []int{
			4, 4,
			4, 4,
		},
		Width:  2,
		Height: 2,
	},
	S: {
		Mask: []int{
			0, 5, 5,
			5, 5, 0,
			0, 0, 0,
		},
		Width:  3,
		Height: 3,
	},
	T: {
		Mask: []int{
			0, 6, 0,
			6, 6, 6,
			0, 0, 0,
		},
		Width:  3,
		Height: 3,
	},
	Z: {
		Mask: []int{
			7, 7, 0,
			0, 7, 7,
			0, 0, 0,
		},
		Width:  3,
		Height: 3,
	},
}

var shapes = make(map[Kind]*Shape, len(base))

func init() {
	for k, p := range base {
		var s Shape
		s[0] = p
		for r := 1; r < Rotations; r++ {
			s[r] = s[r-1].rotated()
		}
		shapes[k] = &s
	}
}

// Valid reports whether k is a catalog kind.
func (k Kind) Valid() bool {
	_, ok := shapes[k]
	return ok
}

// Rotation returns a copy of rotation state r (taken modulo 4) of the kind.
func (k Kind) Rotation(r int) Piece {
	return k.shape()[((r%Rotations)+Rotations)%Rotations].Clone()
}

// Base returns a copy of the un-rotated state of the kind.
func (k Kind) Base() Piece {
	return k.Rotation(0)
}

// Shape returns a copy of all four rotation states of the kind.
func (k Kind) Shape() Shape {
	var s Shape
	for r, p := range k.shape() {
		s[r] = p.Clone()
	}
	return s
}

// Material is the cell value the kind's occupied cells carry.
func (k Kind) Material() int {
	return int(k)
}

func (k Kind) shape() *Shape {
	s, ok := shapes[k]
	if !ok {
		panic(fmt.Sprintf("piece: unknown kind %d", int(k)))
	}
	return s
}

func (k Kind) String() string {
	switch k {
	case I:
		return "I"
	case J:
		return "J"
	case L:
		return "L"
	case O:
		return "O"
	case S:
		return "S"
	case T:
		return "T"
	case Z:
		return "Z"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}
