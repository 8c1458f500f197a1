// Package mode selects how a game is played: which brick supply a new game gets and how fast the
// driver should tick as the score grows.
package mode

import (
	"fmt"
	"strings"
	"time"

	"github.com/deitrix/brickfall/piece"
)

type Mode int

const (
	// Classic speeds up in tiers as the score grows
	Classic Mode = iota
	// Challenge levels up every ScorePerLevel points, each level 10% faster
	Challenge
	// Relax only deals the long bar and the square, and its scores are not recorded
	Relax
)

const (
	// BaseTick is the interval between automatic moves at normal speed
	BaseTick = 400 * time.Millisecond
	// ScorePerLevel is the score needed to advance one level in Challenge mode
	ScorePerLevel = 200
	// SpeedPerLevel is the speed-up added by every level after the first
	SpeedPerLevel = 0.10
	// MinInterval is the shortest interval TickInterval returns
	MinInterval = time.Millisecond
)

// All lists the modes in the order Next cycles through them.
var All = []Mode{Classic, Challenge, Relax}

// Parse returns the mode named s, case-insensitively.
func Parse(s string) (Mode, error) {
	for _, m := range All {
		if strings.EqualFold(s, m.String()) {
			return m, nil
		}
	}
	return Classic, fmt.Errorf("unknown mode %q", s)
}

func (m Mode) String() string {
	switch m {
	case Classic:
		return "classic"
	case Challenge:
		return "challenge"
	case Relax:
		return "relax"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// Next returns the mode after m, wrapping around.
func (m Mode) Next() Mode {
	return All[(int(m)+1)%len(All)]
}

// Supply returns a fresh brick supply for a new game in mode m.
func (m Mode) Supply() piece.Supply {
	if m == Relax {
		return piece.NewRestrictedSupply()
	}
	return piece.NewRandomSupply()
}

// SupplyWithSeed is like Supply but the bricks dealt are fixed by seed.
func (m Mode) SupplyWithSeed(seed uint64) piece.Supply {
	if m == Relax {
		return piece.NewRestrictedSupplyWithSeed(seed)
	}
	return piece.NewRandomSupplyWithSeed(seed)
}

// Level returns the level reached with score. Only Challenge has levels beyond the first.
func (m Mode) Level(score int) int {
	if m != Challenge || score < 0 {
		return 1
	}
	return score/ScorePerLevel + 1
}

// SpeedMultiplier returns how much faster than BaseTick the game runs at score.
func (m Mode) SpeedMultiplier(score int) float64 {
	if m == Classic {
		switch {
		case score < 500:
			return 1.0
		case score < 1000:
			return 1.5
		case score < 2000:
			return 2.0
		default:
			return 2.5
		}
	}
	return 1 + float64(m.Level(score)-1)*SpeedPerLevel
}

// TickInterval returns the interval between automatic moves at score, starting from base. It is
// never shorter than MinInterval.
func (m Mode) TickInterval(base time.Duration, score int) time.Duration {
	return max(time.Duration(float64(base)/m.SpeedMultiplier(score)), MinInterval)
}

// RecordsScore reports whether scores in this mode count. Relax games do not.
func (m Mode) RecordsScore() bool {
	return m != Relax
}
