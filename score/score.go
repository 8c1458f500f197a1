// Package score keeps the running score of a game and tells subscribers about every change.
package score

// Change describes one update of a Ledger.
type Change struct {
	Old, New int
	// Delta is New - Old; negative only for a Reset
	Delta int
}

// Listener is called synchronously with every change of a Ledger.
type Listener func(Change)

// Ledger is a score counter that only grows until it is reset. The zero value is a ledger at 0
// with no subscribers. It is not safe for concurrent use.
type Ledger struct {
	value     int
	nextID    int
	listeners []subscription
}

type subscription struct {
	id int
	fn Listener
}

// Value returns the current score.
func (l *Ledger) Value() int {
	return l.value
}

// Add increases the score by amount. Negative amounts are ignored and notify nobody.
func (l *Ledger) Add(amount int) {
	if amount < 0 {
		return
	}
	l.set(l.value + amount)
}

// Reset sets the score back to 0.
func (l *Ledger) Reset() {
	l.set(0)
}

// Subscribe registers fn to be called after every Add and Reset, in subscription order. The
// returned function removes the subscription; calling it more than once is harmless.
func (l *Ledger) Subscribe(fn Listener) (unsubscribe func()) {
	l.nextID++
	id := l.nextID
	l.listeners = append(l.listeners, subscription{id: id, fn: fn})
	return func() {
		for i, s := range l.listeners {
			if s.id == id {
				l.listeners = append(l.listeners[:i:i], l.listeners[i+1:]...)
				return
			}
		}
	}
}

func (l *Ledger) set(v int) {
	c := Change{Old: l.value, New: v, Delta: v - l.value}
	l.value = v
	for _, s := range l.listeners {
		s.fn(c)
	}
}
