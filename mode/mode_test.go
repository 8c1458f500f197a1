package mode

import (
	"testing"
	"time"

	"github.com/deitrix/brickfall/piece"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	for _, m := range All {
		got, err := Parse(m.String())
		require.NoError(t, err)
		assert.Equal(t, m, got)
	}
	got, err := Parse("RELAX")
	require.NoError(t, err)
	assert.Equal(t, Relax, got)

	_, err = Parse("marathon")
	assert.EqualError(t, err, `unknown mode "marathon"`)
}

func TestMode_Next(t *testing.T) {
	assert.Equal(t, Challenge, Classic.Next())
	assert.Equal(t, Relax, Challenge.Next())
	assert.Equal(t, Classic, Relax.Next())
}

func TestMode_Supply(t *testing.T) {
	assert.IsType(t, &piece.Random{}, Classic.Supply())
	assert.IsType(t, &piece.Random{}, Challenge.Supply())
	assert.IsType(t, &piece.Restricted{}, Relax.Supply())

	s := Relax.SupplyWithSeed(1)
	for range 200 {
		assert.Contains(t, piece.Relaxed, s.Current())
	}
}

func TestMode_Level(t *testing.T) {
	tests := []struct {
		mode  Mode
		score int
		level int
	}{
		{Challenge, 0, 1},
		{Challenge, 199, 1},
		{Challenge, 200, 2},
		{Challenge, 1050, 6},
		{Classic, 1050, 1},
		{Relax, 5000, 1},
	}
	for _, test := range tests {
		assert.Equal(t, test.level, test.mode.Level(test.score), "%s at %d", test.mode, test.score)
	}
}

func TestMode_SpeedMultiplier(t *testing.T) {
	tests := []struct {
		mode  Mode
		score int
		speed float64
	}{
		{Classic, 0, 1.0},
		{Classic, 499, 1.0},
		{Classic, 500, 1.5},
		{Classic, 999, 1.5},
		{Classic, 1000, 2.0},
		{Classic, 1999, 2.0},
		{Classic, 2000, 2.5},
		{Classic, 90000, 2.5},
		{Challenge, 0, 1.0},
		{Challenge, 400, 1.2},
		{Relax, 400, 1.0},
	}
	for _, test := range tests {
		assert.InDelta(t, test.speed, test.mode.SpeedMultiplier(test.score), 1e-9, "%s at %d", test.mode, test.score)
	}
}

func TestMode_TickInterval(t *testing.T) {
	assert.Equal(t, BaseTick, Classic.TickInterval(BaseTick, 0))
	assert.Equal(t, 200*time.Millisecond, Classic.TickInterval(BaseTick, 1500))
	assert.Equal(t, 160*time.Millisecond, Classic.TickInterval(BaseTick, 2500))
	assert.InDelta(t, float64(BaseTick)/1.2, float64(Challenge.TickInterval(BaseTick, 400)), float64(time.Microsecond))

	t.Run("clamped", func(t *testing.T) {
		assert.Equal(t, MinInterval, Classic.TickInterval(time.Nanosecond, 0))
		assert.Equal(t, MinInterval, Challenge.TickInterval(time.Nanosecond, 200))
		assert.Equal(t, MinInterval, Classic.TickInterval(MinInterval, 5000))
		assert.Equal(t, MinInterval, Relax.TickInterval(0, 0))
	})
}

func TestMode_RecordsScore(t *testing.T) {
	assert.True(t, Classic.RecordsScore())
	assert.True(t, Challenge.RecordsScore())
	assert.False(t, Relax.RecordsScore())
}
