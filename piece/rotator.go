package piece

// Rotator tracks the active brick and which of its rotation states is in play. The zero value
// holds no brick; SetBrick must be called before Current or PeekNext.
type Rotator struct {
	brick Kind
	shape Shape
	index int
}

// SetBrick makes k the active brick in its base rotation.
func (r *Rotator) SetBrick(k Kind) {
	r.brick = k
	r.shape = k.Shape()
	r.index = 0
}

func (r *Rotator) Brick() Kind {
	return r.brick
}

func (r *Rotator) Index() int {
	return r.index
}

// Current returns the active rotation state.
func (r *Rotator) Current() Piece {
	return r.shape[r.index].Clone()
}

// PeekNext returns the next rotation state and its index without changing the rotator, so the
// caller can test it for collisions before calling Commit.
func (r *Rotator) PeekNext() (Piece, int) {
	next := (r.index + 1) % Rotations
	return r.shape[next].Clone(), next
}

// Commit makes rotation state index the active one.
func (r *Rotator) Commit(index int) {
	r.index = ((index % Rotations) + Rotations) % Rotations
}
