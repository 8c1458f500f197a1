package piece

import (
	"github.com/kamstrup/intmap"
)

// Tally counts how many times each kind has been drawn.
type Tally struct {
	counts *intmap.Map[Kind, int]
	total  int
}

func NewTally() *Tally {
	return &Tally{counts: intmap.New[Kind, int](len(All))}
}

// Record counts one draw of k.
func (t *Tally) Record(k Kind) {
	n, _ := t.counts.Get(k)
	t.counts.Put(k, n+1)
	t.total++
}

// Count returns how many times k was drawn.
func (t *Tally) Count(k Kind) int {
	n, _ := t.counts.Get(k)
	return n
}

// Total returns the number of draws recorded.
func (t *Tally) Total() int {
	return t.total
}

// Kinds returns the number of distinct kinds drawn at least once.
func (t *Tally) Kinds() int {
	return t.counts.Len()
}

// Clone returns an independent copy of the tally.
func (t *Tally) Clone() *Tally {
	c := NewTally()
	for _, k := range All {
		if n := t.Count(k); n > 0 {
			c.counts.Put(k, n)
		}
	}
	c.total = t.total
	return c
}
