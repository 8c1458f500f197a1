package piece

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTally(t *testing.T) {
	tally := NewTally()
	assert.Zero(t, tally.Total())
	assert.Zero(t, tally.Kinds())

	tally.Record(I)
	tally.Record(I)
	tally.Record(Z)

	assert.Equal(t, 2, tally.Count(I))
	assert.Equal(t, 1, tally.Count(Z))
	assert.Zero(t, tally.Count(T))
	assert.Equal(t, 3, tally.Total())
	assert.Equal(t, 2, tally.Kinds())

	c := tally.Clone()
	tally.Record(T)
	assert.Zero(t, c.Count(T))
	assert.Equal(t, 3, c.Total())
	assert.Equal(t, 2, c.Count(I))
}
