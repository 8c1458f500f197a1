package sprite

import (
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// cellPixels is the size of the generated cell images. They are scaled to the configured cell
// size when drawn.
const cellPixels = 32

var Cell, Ghost *ebiten.Image

var spriteMap = map[string]struct {
	img   **ebiten.Image
	solid bool
}{
	"cell":  {&Cell, true},
	"ghost": {&Ghost, false},
}

// Load builds the cell sprites and parses the fonts. It must be called before the game runs.
func Load() error {
	for _, s := range spriteMap {
		*s.img = ebiten.NewImageFromImage(cellImage(s.solid))
	}
	if err := loadFonts(); err != nil {
		return fmt.Errorf("loading fonts: %w", err)
	}
	return nil
}

// cellImage draws a white bevelled square; tints are applied with a colour scale at draw time.
// A hollow cell only has its border.
func cellImage(solid bool) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, cellPixels, cellPixels))
	const border = 3
	for y := range cellPixels {
		for x := range cellPixels {
			edge := x < border || y < border || x >= cellPixels-border || y >= cellPixels-border
			switch {
			case edge && (x < border || y < border):
				img.SetNRGBA(x, y, color.NRGBA{0xff, 0xff, 0xff, 0xff})
			case edge:
				img.SetNRGBA(x, y, color.NRGBA{0xa0, 0xa0, 0xa0, 0xff})
			case solid:
				img.SetNRGBA(x, y, color.NRGBA{0xdc, 0xdc, 0xdc, 0xff})
			}
		}
	}
	return img
}
