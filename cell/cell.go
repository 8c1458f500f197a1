package cell

import "image/color"

// Empty is the value of an unoccupied grid or mask cell. Any other value is a material id.
const Empty = 0

// Tint is the colour a material id is drawn with. The engine never looks at tints; they only
// exist so that the front-end can turn a cell value into a colour.
type Tint int

const (
	None Tint = iota
	Cyan
	Blue
	Orange
	Yellow
	Green
	Purple
	Red
	// Wall is used for the frame around the playing field
	Wall
	// Ghost is used for the landing preview of the falling piece
	Ghost
)

var palette = map[Tint]color.NRGBA{
	None:   {0, 0, 0, 0},
	Cyan:   {0x00, 0xf0, 0xf0, 0xff},
	Blue:   {0x00, 0x40, 0xf0, 0xff},
	Orange: {0xf0, 0xa0, 0x00, 0xff},
	Yellow: {0xf0, 0xf0, 0x00, 0xff},
	Green:  {0x00, 0xf0, 0x40, 0xff},
	Purple: {0xa0, 0x00, 0xf0, 0xff},
	Red:    {0xf0, 0x00, 0x20, 0xff},
	Wall:   {0x50, 0x50, 0x58, 0xff},
	Ghost:  {0xff, 0xff, 0xff, 0x60},
}

// Of returns the tint for a material id. Unknown ids are drawn white.
func Of(material int) Tint {
	if material < int(None) || material > int(Red) {
		return -1
	}
	return Tint(material)
}

func (t Tint) NRGBA() color.NRGBA {
	if c, ok := palette[t]; ok {
		return c
	}
	return color.NRGBA{0xff, 0xff, 0xff, 0xff}
}
