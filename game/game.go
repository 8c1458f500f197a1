// Package game drives a board the way a player sees it: gravity on a timer, pause, game modes,
// a game-over latch and short "+N" notices for cleared rows. It knows nothing about rendering or
// input devices; the front-end calls its methods and draws what it reports.
package game

import (
	"fmt"
	"log"
	"time"

	"github.com/deitrix/brickfall/board"
	"github.com/deitrix/brickfall/grid"
	"github.com/deitrix/brickfall/mode"
	"github.com/deitrix/brickfall/piece"
	"github.com/deitrix/brickfall/score"
)

// NoticeTTL is how long a notice stays visible.
const NoticeTTL = 1500 * time.Millisecond

// Notice is a short message shown over the field, such as the bonus of a clear.
type Notice struct {
	Text string
	// Left is the time until the notice disappears
	Left time.Duration
}

// Supplier returns the brick supply for the n-th game of a controller, played in mode m.
type Supplier func(m mode.Mode, n int) piece.Supply

type Controller struct {
	board    *board.Board
	mode     mode.Mode
	base     time.Duration
	supplier Supplier
	logger   *log.Logger

	games    int
	view     board.View
	elapsed  time.Duration
	interval time.Duration
	level    int
	paused   bool
	over     bool
	notices  []Notice
}

type Option func(*Controller)

// WithBaseTick sets the interval between automatic moves at normal speed.
func WithBaseTick(d time.Duration) Option {
	return func(c *Controller) {
		c.base = d
	}
}

// WithSeed fixes the bricks dealt. Game n of the controller uses seed+n, so restarts still
// differ from each other. A zero seed means random.
func WithSeed(seed uint64) Option {
	return func(c *Controller) {
		if seed == 0 {
			c.supplier = randomSupply
			return
		}
		c.supplier = func(m mode.Mode, n int) piece.Supply {
			return m.SupplyWithSeed(seed + uint64(n))
		}
	}
}

// WithSupplier replaces how new games get their brick supply.
func WithSupplier(fn Supplier) Option {
	return func(c *Controller) {
		c.supplier = fn
	}
}

func WithLogger(l *log.Logger) Option {
	return func(c *Controller) {
		c.logger = l
	}
}

// New returns a controller for b and starts the first game in mode m.
func New(b *board.Board, m mode.Mode, opts ...Option) *Controller {
	c := &Controller{
		board:    b,
		mode:     m,
		base:     mode.BaseTick,
		supplier: randomSupply,
		logger:   log.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	b.Subscribe(c.scoreChanged)
	c.NewGame()
	return c
}

// NewGame starts a new game in the current mode.
func (c *Controller) NewGame() {
	c.games++
	supply := c.supplier(c.mode, c.games)
	c.over = false
	c.paused = false
	c.elapsed = 0
	c.notices = nil
	c.level = c.mode.Level(0)
	c.interval = c.mode.TickInterval(c.base, 0)
	if c.board.NewGame(supply) {
		c.gameOver()
	}
	c.view = c.board.View()
}

// SetMode switches to mode m and starts a new game.
func (c *Controller) SetMode(m mode.Mode) {
	c.mode = m
	c.logger.Printf("mode: %s", m)
	c.NewGame()
}

// CycleMode switches to the next mode and starts a new game.
func (c *Controller) CycleMode() {
	c.SetMode(c.mode.Next())
}

// TogglePause pauses or resumes the game. A finished game can't be paused.
func (c *Controller) TogglePause() {
	if c.over {
		return
	}
	c.paused = !c.paused
}

// Update advances the clock by dt, moving the brick down once for every interval that passed and
// ageing the notices. Nothing moves while paused or after the game is over.
func (c *Controller) Update(dt time.Duration) {
	c.ageNotices(dt)
	if !c.playing() {
		return
	}
	c.elapsed += dt
	for c.playing() && c.elapsed >= c.interval {
		c.elapsed -= c.interval
		c.Down()
	}
}

// Left moves the brick one column left.
func (c *Controller) Left() bool {
	return c.command(c.board.MoveLeft)
}

// Right moves the brick one column right.
func (c *Controller) Right() bool {
	return c.command(c.board.MoveRight)
}

// Rotate turns the brick a quarter clockwise.
func (c *Controller) Rotate() bool {
	return c.command(c.board.Rotate)
}

// Down moves the brick one row down, locking it when it can't move.
func (c *Controller) Down() (locked bool) {
	if !c.playing() {
		return false
	}
	if c.board.MoveDown() {
		c.view = c.board.View()
		return false
	}
	c.lock()
	return true
}

// Drop moves the brick all the way down and locks it.
func (c *Controller) Drop() {
	if !c.playing() {
		return
	}
	c.board.DropToBottom()
	c.lock()
}

func (c *Controller) command(fn func() bool) bool {
	if !c.playing() || !fn() {
		return false
	}
	c.view = c.board.View()
	return true
}

func (c *Controller) lock() {
	adv := c.board.LockAndAdvance()
	c.view = adv.View
	if adv.Clear.Removed > 0 {
		c.notices = append(c.notices, Notice{Text: fmt.Sprintf("+%d", adv.Clear.Bonus), Left: NoticeTTL})
	}
	if adv.GameOver {
		c.gameOver()
	}
}

func (c *Controller) gameOver() {
	if c.over {
		return
	}
	c.over = true
	if c.mode.RecordsScore() {
		c.logger.Printf("game over: %s score %d, %d lines", c.mode, c.board.Score(), c.board.Lines())
	} else {
		c.logger.Printf("game over: %s game, score not recorded", c.mode)
	}
}

func (c *Controller) scoreChanged(ch score.Change) {
	c.interval = c.mode.TickInterval(c.base, ch.New)
	if level := c.mode.Level(ch.New); level != c.level {
		c.level = level
		if ch.Delta > 0 {
			c.logger.Printf("level %d", level)
		}
	}
}

func (c *Controller) ageNotices(dt time.Duration) {
	kept := c.notices[:0]
	for _, n := range c.notices {
		n.Left -= dt
		if n.Left > 0 {
			kept = append(kept, n)
		}
	}
	c.notices = kept
}

func randomSupply(m mode.Mode, _ int) piece.Supply {
	return m.Supply()
}

func (c *Controller) playing() bool {
	return !c.paused && !c.over
}

// View returns the snapshot of the falling brick and preview from the last command.
func (c *Controller) View() board.View {
	return c.view
}

// Grid returns a copy of the field.
func (c *Controller) Grid() grid.Grid {
	return c.board.Grid()
}

// Ghost returns the row the falling brick would land on.
func (c *Controller) Ghost() int {
	return c.board.Ghost()
}

func (c *Controller) Board() *board.Board      { return c.board }
func (c *Controller) Mode() mode.Mode          { return c.mode }
func (c *Controller) Score() int               { return c.board.Score() }
func (c *Controller) Lines() int               { return c.board.Lines() }
func (c *Controller) Level() int               { return c.level }
func (c *Controller) Interval() time.Duration  { return c.interval }
func (c *Controller) Paused() bool             { return c.paused }
func (c *Controller) Over() bool               { return c.over }
func (c *Controller) Notices() []Notice        { return append([]Notice(nil), c.notices...) }
func (c *Controller) SpeedMultiplier() float64 { return c.mode.SpeedMultiplier(c.board.Score()) }
