// Package board runs a single game: it owns the field, the falling brick, the brick supply and
// the score, and exposes the commands a driver issues (move, rotate, drop, lock) and the
// snapshots a renderer draws from.
//
// A Board is not safe for concurrent use. Callers that drive it from a timer and from input
// handlers must serialize those calls.
package board

import (
	"fmt"

	"github.com/deitrix/brickfall/grid"
	"github.com/deitrix/brickfall/piece"
	"github.com/deitrix/brickfall/score"
)

const (
	// DefaultWidth is the number of columns of the field
	DefaultWidth = 10
	// DefaultHeight is the number of rows of the field, including the hidden spawn rows
	DefaultHeight = 25
	// DefaultSpawnX is the column new bricks appear at
	DefaultSpawnX = 3
	// DefaultSpawnY is the row new bricks appear at, inside the spawn buffer
	DefaultSpawnY = 0

	minSize = 4
)

// State is the lifecycle stage of a Board.
type State int

const (
	// Empty means no brick has been spawned yet
	Empty State = iota
	// Active means a brick is falling
	Active
	// GameOver means the last spawn collided
	GameOver
)

func (s State) String() string {
	switch s {
	case Empty:
		return "empty"
	case Active:
		return "active"
	case GameOver:
		return "game over"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Direction is a single-step movement of the falling brick.
type Direction int

const (
	Down Direction = iota
	Left
	Right
)

func (d Direction) delta() (dx, dy int) {
	switch d {
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	}
	return 0, 1
}

func (d Direction) String() string {
	switch d {
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// View is what a renderer needs to draw the falling brick and the preview. Every View is an
// independent copy.
type View struct {
	// Shape is the falling brick in its current rotation
	Shape piece.Piece
	// X and Y are the field coordinates of the top-left corner of Shape
	X, Y int
	// Next is the un-rotated preview brick
	Next piece.Piece
	// NextKind is the kind shown as the preview
	NextKind piece.Kind
}

// Advance is the outcome of locking the falling brick.
type Advance struct {
	Clear    grid.ClearResult
	View     View
	GameOver bool
}

type Board struct {
	width, height  int
	spawnX, spawnY int

	supply  piece.Supply
	rotator piece.Rotator
	field   grid.Grid
	x, y    int
	state   State
	score   score.Ledger
	lines   int
	tally   *piece.Tally
}

type Option func(*Board)

// WithSize sets the field to width columns and height rows, hidden spawn rows included.
func WithSize(width, height int) Option {
	if width < minSize || height < minSize+grid.HiddenRows {
		panic(fmt.Errorf("board: minimal size is %dx%d, got %dx%d", minSize, minSize+grid.HiddenRows, width, height))
	}
	return func(b *Board) {
		b.width = width
		b.height = height
	}
}

// WithSpawn sets the field coordinates new bricks appear at.
func WithSpawn(x, y int) Option {
	return func(b *Board) {
		b.spawnX = x
		b.spawnY = y
	}
}

// New returns an empty board that draws bricks from supply. No brick is spawned until NewGame or
// SpawnNext is called.
func New(supply piece.Supply, opts ...Option) *Board {
	if supply == nil {
		panic("board: nil supply")
	}
	b := &Board{
		width:  DefaultWidth,
		height: DefaultHeight,
		spawnX: DefaultSpawnX,
		spawnY: DefaultSpawnY,
		supply: supply,
		tally:  piece.NewTally(),
	}
	for _, opt := range opts {
		opt(b)
	}
	b.field = grid.New(b.width, b.height)
	return b
}

// NewGame clears the field and the score, switches to supply if it is not nil, and spawns the
// first brick. It returns true if that spawn already collides.
func (b *Board) NewGame(supply piece.Supply) (gameOver bool) {
	if supply != nil {
		b.supply = supply
	}
	b.field = grid.New(b.width, b.height)
	b.lines = 0
	b.tally = piece.NewTally()
	b.score.Reset()
	return b.SpawnNext()
}

// SpawnNext takes the next brick from the supply and places it at the spawn point in its base
// rotation. It returns true if the brick collides there, which ends the game. The brick is left
// where it is either way.
func (b *Board) SpawnNext() (gameOver bool) {
	k := b.supply.Current()
	b.rotator.SetBrick(k)
	b.tally.Record(k)
	b.x, b.y = b.spawnX, b.spawnY
	if grid.Overlaps(b.field, b.rotator.Current(), b.x, b.y) {
		b.state = GameOver
		return true
	}
	b.state = Active
	return false
}

// Move shifts the falling brick one cell in direction d. It returns false and leaves the brick
// alone if the new position collides.
func (b *Board) Move(d Direction) bool {
	if b.state == Empty {
		return false
	}
	dx, dy := d.delta()
	if grid.Overlaps(b.field, b.rotator.Current(), b.x+dx, b.y+dy) {
		return false
	}
	b.x += dx
	b.y += dy
	return true
}

func (b *Board) MoveDown() bool  { return b.Move(Down) }
func (b *Board) MoveLeft() bool  { return b.Move(Left) }
func (b *Board) MoveRight() bool { return b.Move(Right) }

// Rotate turns the falling brick a quarter clockwise in place. There are no wall kicks: if the
// rotated brick collides at the current position the rotation is rejected.
func (b *Board) Rotate() bool {
	if b.state == Empty {
		return false
	}
	next, index := b.rotator.PeekNext()
	if grid.Overlaps(b.field, next, b.x, b.y) {
		return false
	}
	b.rotator.Commit(index)
	return true
}

// DropToBottom moves the falling brick down until it can't move any further. It returns true if
// the brick moved at least one row. The brick is not locked.
func (b *Board) DropToBottom() bool {
	var moved bool
	for b.MoveDown() {
		moved = true
	}
	return moved
}

// MergeAndClear writes the falling brick into the field, removes full rows and adds the bonus
// to the score.
func (b *Board) MergeAndClear() grid.ClearResult {
	if b.state == Empty {
		return grid.ClearResult{Grid: b.field.Copy()}
	}
	b.field = grid.Stamp(b.field, b.rotator.Current(), b.x, b.y)
	res := grid.ClearFullRows(b.field)
	b.field = res.Grid
	res.Grid = b.field.Copy()
	if res.Removed > 0 {
		b.lines += res.Removed
		b.score.Add(res.Bonus)
	}
	return res
}

// LockAndAdvance merges the falling brick, clears rows and spawns the next brick. Drivers call it
// when MoveDown is rejected or right after DropToBottom.
func (b *Board) LockAndAdvance() Advance {
	res := b.MergeAndClear()
	over := b.SpawnNext()
	return Advance{
		Clear:    res,
		View:     b.View(),
		GameOver: over,
	}
}

// Grid returns a copy of the field without the falling brick.
func (b *Board) Grid() grid.Grid {
	return b.field.Copy()
}

// View returns a snapshot of the falling brick and a preview drawn from the supply. Every call
// draws a fresh preview, so renderers should keep the View they got with a command rather than
// asking again each frame.
func (b *Board) View() View {
	next := b.supply.PeekNext()
	v := View{
		X:        b.x,
		Y:        b.y,
		Next:     next.Base(),
		NextKind: next,
	}
	if b.state != Empty {
		v.Shape = b.rotator.Current()
	}
	return v
}

// Brick returns the kind of the falling brick and its rotation index.
func (b *Board) Brick() (piece.Kind, int) {
	return b.rotator.Brick(), b.rotator.Index()
}

// Ghost returns the row the falling brick would land on if dropped.
func (b *Board) Ghost() int {
	if b.state == Empty {
		return b.y
	}
	p := b.rotator.Current()
	y := b.y
	for !grid.Overlaps(b.field, p, b.x, y+1) {
		y++
	}
	return y
}

func (b *Board) State() State {
	return b.state
}

func (b *Board) Score() int {
	return b.score.Value()
}

// Subscribe registers fn for every score change. See score.Ledger.Subscribe.
func (b *Board) Subscribe(fn score.Listener) (unsubscribe func()) {
	return b.score.Subscribe(fn)
}

// Lines returns the number of rows cleared since the game started.
func (b *Board) Lines() int {
	return b.lines
}

// Tally returns a copy of the count of bricks spawned since the game started.
func (b *Board) Tally() *piece.Tally {
	return b.tally.Clone()
}

func (b *Board) Supply() piece.Supply {
	return b.supply
}

func (b *Board) Size() (width, height int) {
	return b.width, b.height
}
