package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// parse builds a grid from rows of '.' (empty) and digits (material ids).
func parse(t *testing.T, rows ...string) Grid {
	t.Helper()
	require.NotEmpty(t, rows)
	g := New(len(rows[0]), len(rows))
	for y, row := range rows {
		require.Len(t, row, g.Width, "row %d", y)
		for x, c := range row {
			if c != '.' {
				g.Set(x, y, int(c-'0'))
			}
		}
	}
	return g
}

func TestNew(t *testing.T) {
	g := New(10, 25)
	assert.Equal(t, 10, g.Width)
	assert.Equal(t, 25, g.Height)
	assert.Len(t, g.Cells, 250)
	assert.True(t, g.Empty())
}

func TestGrid_Copy(t *testing.T) {
	g := New(4, 4)
	c := g.Copy()
	g.Set(1, 1, 3)
	assert.Zero(t, c.At(1, 1), "copy must not observe later writes")
	assert.False(t, g.Equal(c))
	c.Set(1, 1, 3)
	assert.True(t, g.Equal(c))
}

func TestGrid_Row(t *testing.T) {
	g := parse(t,
		"....",
		"12..",
	)
	row := g.Row(1)
	assert.Equal(t, []int{1, 2, 0, 0}, row)
	row[0] = 9
	assert.Equal(t, 1, g.At(0, 1))
}

func TestGrid_Full(t *testing.T) {
	g := parse(t,
		"1.1",
		"123",
	)
	assert.False(t, g.Full(0))
	assert.True(t, g.Full(1))
}

func TestGrid_String(t *testing.T) {
	g := parse(t,
		"...",
		".1.",
		"2.3",
	)
	assert.Equal(t, "...\n.1.\n---\n2.3\n", g.String())
}
