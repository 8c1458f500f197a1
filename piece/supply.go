package piece

import (
	"math/rand/v2"
)

// Supply hands out bricks. Current is the brick to spawn now; PeekNext is a brick to show as
// the upcoming one. The two are drawn independently: the preview is not reserved and the next
// Current may differ from it.
type Supply interface {
	Current() Kind
	PeekNext() Kind
}

// Random draws uniformly from every kind in the catalog.
type Random struct {
	rng *rand.Rand
}

// Restricted draws uniformly from the long bar and the square only.
type Restricted struct {
	rng *rand.Rand
}

var (
	_ Supply = (*Random)(nil)
	_ Supply = (*Restricted)(nil)
)

// NewRandomSupply returns a Random supply seeded from the runtime's random source.
func NewRandomSupply() *Random {
	return NewRandomSupplyWithSeed(rand.Uint64())
}

// NewRandomSupplyWithSeed returns a Random supply whose sequence is fixed by seed.
func NewRandomSupplyWithSeed(seed uint64) *Random {
	return &Random{rng: newRand(seed)}
}

// NewRestrictedSupply returns a Restricted supply seeded from the runtime's random source.
func NewRestrictedSupply() *Restricted {
	return NewRestrictedSupplyWithSeed(rand.Uint64())
}

// NewRestrictedSupplyWithSeed returns a Restricted supply whose sequence is fixed by seed.
func NewRestrictedSupplyWithSeed(seed uint64) *Restricted {
	return &Restricted{rng: newRand(seed)}
}

func (s *Random) Current() Kind  { return pick(s.rng, All) }
func (s *Random) PeekNext() Kind { return pick(s.rng, All) }

func (s *Restricted) Current() Kind  { return pick(s.rng, Relaxed) }
func (s *Restricted) PeekNext() Kind { return pick(s.rng, Relaxed) }

func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func pick(rng *rand.Rand, kinds []Kind) Kind {
	return kinds[rng.IntN(len(kinds))]
}
