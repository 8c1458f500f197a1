package sprite

import (
	"fmt"

	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

var (
	Regular   *opentype.Font
	Monospace *opentype.Font
)

var fontMap = map[string]struct {
	font **opentype.Font
	ttf  []byte
}{
	"regular":   {&Regular, goregular.TTF},
	"monospace": {&Monospace, gomono.TTF},
}

func loadFonts() (err error) {
	for name, f := range fontMap {
		*f.font, err = opentype.Parse(f.ttf)
		if err != nil {
			return fmt.Errorf("parsing %s: %w", name, err)
		}
	}
	return nil
}
