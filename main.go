package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"os"
	"strings"
	"time"

	"github.com/deitrix/brickfall/board"
	"github.com/deitrix/brickfall/cell"
	"github.com/deitrix/brickfall/config"
	"github.com/deitrix/brickfall/game"
	"github.com/deitrix/brickfall/grid"
	"github.com/deitrix/brickfall/piece"
	"github.com/deitrix/brickfall/sprite"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
)

const (
	// wallThickness is the thickness of the frame drawn around the field, in cells
	wallThickness = 1
	// sideCells is the width of the panels left and right of the field, in cells
	sideCells = 6
	// repeatDelay is the number of ticks a sideways key must be held before it repeats
	repeatDelay = 10
)

type Game struct {
	ctl *game.Controller
	cfg config.Config
	// ShowDebug is a flag that indicates whether debug information should be shown
	ShowDebug bool
	// ScreenWidth is the width of the screen in pixels
	ScreenWidth int
	// ScreenHeight is the height of the screen in pixels
	ScreenHeight int
}

func NewGame(cfg config.Config) *Game {
	b := board.New(cfg.GameMode().Supply(), cfg.BoardOptions()...)
	return &Game{
		ctl: game.New(b, cfg.GameMode(),
			game.WithBaseTick(cfg.Tick),
			game.WithSeed(cfg.Seed),
		),
		cfg:       cfg,
		ShowDebug: cfg.Debug,
	}
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.ctl.NewGame()
		return nil
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		g.ctl.CycleMode()
		return nil
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyI) {
		g.ShowDebug = !g.ShowDebug
		return nil
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.ctl.TogglePause()
		return nil
	}

	if justPressed(ebiten.KeySpace) {
		g.ctl.Drop()
		return nil
	}

	if pressedOrRepeating(ebiten.KeyLeft, ebiten.KeyA) {
		g.ctl.Left()
	}

	if pressedOrRepeating(ebiten.KeyRight, ebiten.KeyD) {
		g.ctl.Right()
	}

	if justPressed(ebiten.KeyUp, ebiten.KeyW) {
		g.ctl.Rotate()
	}

	if pressedOrRepeating(ebiten.KeyDown, ebiten.KeyS) {
		g.ctl.Down()
	}

	g.ctl.Update(time.Second / time.Duration(ebiten.TPS()))
	return nil
}

func justPressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}

func pressedOrRepeating(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) || inpututil.KeyPressDuration(k) > repeatDelay {
			return true
		}
	}
	return false
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.drawFrame(screen)
	g.drawCells(screen)
	v := g.ctl.View()
	if !g.ctl.Over() {
		g.renderPiece(screen, sprite.Ghost, v.Shape, v.X, g.ctl.Ghost(), true)
		g.renderPiece(screen, sprite.Cell, v.Shape, v.X, v.Y, false)
	}
	g.drawNext(screen, v.Next)
	g.drawScore(screen)
	g.drawNotices(screen)
	g.drawState(screen)
	g.drawDebug(screen)
}

func (g *Game) Layout(_, _ int) (screenWidth, screenHeight int) {
	w, h := g.ctl.Board().Size()
	cs := g.cfg.CellSize
	g.ScreenWidth = (2*sideCells + w + 2*wallThickness) * cs
	g.ScreenHeight = (h - grid.HiddenRows + wallThickness) * cs
	return g.ScreenWidth, g.ScreenHeight
}

// fieldOrigin returns the pixel position of the top-left visible cell of the field.
func (g *Game) fieldOrigin() (x, y int) {
	return (sideCells + wallThickness) * g.cfg.CellSize, 0
}

func (g *Game) drawFrame(screen *ebiten.Image) {
	w, h := g.ctl.Board().Size()
	cs := float32(g.cfg.CellSize)
	ox, _ := g.fieldOrigin()
	wall := cell.Wall.NRGBA()
	visible := float32(h - grid.HiddenRows)
	left := float32(ox) - cs
	right := float32(ox) + float32(w)*cs
	vector.DrawFilledRect(screen, left, 0, cs, visible*cs, wall, false)
	vector.DrawFilledRect(screen, right, 0, cs, visible*cs, wall, false)
	vector.DrawFilledRect(screen, left, visible*cs, float32(w+2)*cs, cs, wall, false)
}

func (g *Game) drawCells(screen *ebiten.Image) {
	field := g.ctl.Grid()
	ox, oy := g.fieldOrigin()
	cs := g.cfg.CellSize
	for y := grid.HiddenRows; y < field.Height; y++ {
		for x, v := range field.Row(y) {
			if v == cell.Empty {
				continue
			}
			drawCell(screen, sprite.Cell, ox+x*cs, oy+(y-grid.HiddenRows)*cs, cs, cs, cell.Of(v), 255)
		}
	}
}

// renderPiece draws p with its top-left corner at field coordinates (px, py). Cells in the spawn
// buffer are not drawn.
func (g *Game) renderPiece(screen, img *ebiten.Image, p piece.Piece, px, py int, ghost bool) {
	ox, oy := g.fieldOrigin()
	cs := g.cfg.CellSize
	for _, c := range p.Cells() {
		x, y := px+c.X, py+c.Y
		if y < grid.HiddenRows {
			continue
		}
		tint, opacity := cell.Of(c.Material), uint8(255)
		if ghost {
			opacity = 96
		}
		drawCell(screen, img, ox+x*cs, oy+(y-grid.HiddenRows)*cs, cs, cs, tint, opacity)
	}
}

func (g *Game) drawNext(screen *ebiten.Image, next piece.Piece) {
	w, _ := g.ctl.Board().Size()
	cs := g.cfg.CellSize
	p := next.TrimSpace()
	panelX := (sideCells + w + 2*wallThickness) * cs
	drawText(screen, sprite.Regular, "Next", float64(cs), panelX+cs/2, cs, color.White)
	xoff := panelX + sideCells*cs/2 - p.Width*cs/2
	yoff := 3*cs - p.Height*cs/2
	for _, c := range p.Cells() {
		drawCell(screen, sprite.Cell, xoff+c.X*cs, yoff+c.Y*cs, cs, cs, cell.Of(c.Material), 255)
	}
}

func (g *Game) drawScore(screen *ebiten.Image) {
	cs := g.cfg.CellSize
	size := float64(cs) * 0.75
	rows := []struct {
		label, value string
	}{
		{"Mode", g.ctl.Mode().String()},
		{"Score", fmt.Sprintf("%d", g.ctl.Score())},
		{"Level", fmt.Sprintf("%d", g.ctl.Level())},
		{"Speed", fmt.Sprintf("%.0f%%", g.ctl.SpeedMultiplier()*100)},
		{"Lines", fmt.Sprintf("%d", g.ctl.Lines())},
	}
	for i, r := range rows {
		y := g.ScreenHeight - (len(rows)-i)*cs - cs/2
		drawText(screen, sprite.Regular, r.label, size, cs/2, y, color.White)
		drawText(screen, sprite.Regular, r.value, size, 3*cs, y, color.White)
	}
}

func (g *Game) drawNotices(screen *ebiten.Image) {
	w, h := g.ctl.Board().Size()
	cs := g.cfg.CellSize
	ox, _ := g.fieldOrigin()
	for i, n := range g.ctl.Notices() {
		alpha := uint8(255 * min(1, float64(n.Left)/float64(game.NoticeTTL/2)))
		y := (h-grid.HiddenRows)*cs/3 - i*cs
		drawText(screen, sprite.Regular, n.Text, float64(cs), ox+w*cs/2-cs, y, color.NRGBA{0xff, 0xff, 0xff, alpha})
	}
}

func (g *Game) drawState(screen *ebiten.Image) {
	var msg string
	switch {
	case g.ctl.Over():
		msg = "GAME OVER\nN to restart"
	case g.ctl.Paused():
		msg = "PAUSED"
	default:
		return
	}
	_, h := g.ctl.Board().Size()
	cs := g.cfg.CellSize
	ox, _ := g.fieldOrigin()
	drawText(screen, sprite.Regular, msg, float64(cs), ox+cs/2, (h-grid.HiddenRows)*cs/2, color.NRGBA{0xff, 0x40, 0x40, 0xff})
}

func (g *Game) drawDebug(screen *ebiten.Image) {
	if !g.ShowDebug {
		return
	}
	b := g.ctl.Board()
	kind, rotation := b.Brick()
	v := g.ctl.View()
	tally := b.Tally()
	counts := make([]string, 0, len(piece.All))
	for _, k := range piece.All {
		counts = append(counts, fmt.Sprintf("%s:%d", k, tally.Count(k)))
	}
	drawText(screen, sprite.Monospace, strings.Join([]string{
		fmt.Sprintf("FPS: %0.2f", ebiten.ActualFPS()),
		fmt.Sprintf("TPS: %0.2f", ebiten.ActualTPS()),
		fmt.Sprintf("State: %s", b.State()),
		fmt.Sprintf("Brick: %s r%d at %d,%d", kind, rotation, v.X, v.Y),
		fmt.Sprintf("Ghost: %d", g.ctl.Ghost()),
		fmt.Sprintf("Interval: %s", g.ctl.Interval()),
		fmt.Sprintf("Spawned: %d (%d kinds)", tally.Total(), tally.Kinds()),
		strings.Join(counts, " "),
	}, "\n"), float64(g.cfg.CellSize)/2, g.cfg.CellSize/4, g.cfg.CellSize, color.White)
}

var fontFaceCache = make(map[*opentype.Font]map[float64]font.Face)

func drawText(img *ebiten.Image, f *opentype.Font, t string, size float64, x, y int, c color.Color) {
	if _, ok := fontFaceCache[f]; !ok {
		fontFaceCache[f] = make(map[float64]font.Face)
	}
	if _, ok := fontFaceCache[f][size]; !ok {
		var err error
		fontFaceCache[f][size], err = opentype.NewFace(f, &opentype.FaceOptions{
			Size:    size,
			DPI:     72,
			Hinting: font.HintingNone,
		})
		if err != nil {
			log.Fatalf("failed to create face: %v", err)
		}
	}
	text.Draw(img, t, fontFaceCache[f][size], x, y, c)
}

func drawCell(screen *ebiten.Image, img *ebiten.Image, x, y, width, height int, tint cell.Tint, opacity uint8) {
	var op ebiten.DrawImageOptions
	op.ColorScale.ScaleWithColor(tint.NRGBA())
	op.ColorScale.ScaleAlpha(float32(opacity) / 255)
	op.GeoM.Scale(float64(width)/float64(img.Bounds().Dx()), float64(height)/float64(img.Bounds().Dy()))
	op.GeoM.Translate(float64(x), float64(y))
	screen.DrawImage(img, &op)
}

func main() {
	log.SetFlags(0)
	cfg, err := config.Parse(flag.NewFlagSet(os.Args[0], flag.ExitOnError), os.Args[1:])
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if err := sprite.Load(); err != nil {
		log.Fatalf("failed to load sprites: %v", err)
	}

	g := NewGame(cfg)
	w, h := g.Layout(0, 0)
	ebiten.SetWindowTitle("brickfall")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w, h)
	if err := ebiten.RunGame(g); err != nil {
		log.Fatalf("failed to run game: %v", err)
	}
}
