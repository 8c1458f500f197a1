package score

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLedger(t *testing.T) {
	var l Ledger
	assert.Zero(t, l.Value())

	l.Add(50)
	l.Add(200)
	assert.Equal(t, 250, l.Value())

	l.Add(-10)
	assert.Equal(t, 250, l.Value(), "negative amounts are ignored")

	l.Add(0)
	assert.Equal(t, 250, l.Value())

	l.Reset()
	assert.Zero(t, l.Value())
}

func TestLedger_Subscribe(t *testing.T) {
	var l Ledger
	var got []Change
	var order []string

	l.Subscribe(func(c Change) {
		got = append(got, c)
		order = append(order, "first")
	})
	l.Subscribe(func(Change) {
		order = append(order, "second")
	})

	l.Add(50)
	l.Add(0)
	l.Add(-5)
	l.Reset()

	assert.Equal(t, []Change{
		{Old: 0, New: 50, Delta: 50},
		{Old: 50, New: 50, Delta: 0},
		{Old: 50, New: 0, Delta: -50},
	}, got)
	assert.Equal(t, []string{"first", "second", "first", "second", "first", "second"}, order)
}

func TestLedger_Unsubscribe(t *testing.T) {
	var l Ledger
	var a, b, c int
	l.Subscribe(func(Change) { a++ })
	unsubscribe := l.Subscribe(func(Change) { b++ })
	l.Subscribe(func(Change) { c++ })

	l.Add(1)
	unsubscribe()
	unsubscribe()
	l.Add(1)

	assert.Equal(t, 2, a)
	assert.Equal(t, 1, b)
	assert.Equal(t, 2, c)
}
