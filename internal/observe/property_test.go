package observe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPropertyRoundTrip(t *testing.T) {
	p := NewProperty(100.0)
	assert.Equal(t, 100.0, p.Value())

	p.Set(440.0)
	assert.Equal(t, 440.0, p.Value())
}

func TestPropertyNotifiesObserverWithNewValue(t *testing.T) {
	p := NewProperty(1)

	var got []int
	conn := p.Observe(func(v int) { got = append(got, v) })
	defer conn.Release()

	p.Set(2)
	p.Set(3)

	assert.Equal(t, []int{2, 3}, got)
}

func TestPropertySetIsForced(t *testing.T) {
	// Writing a value equal to the current one must still notify.
	p := NewProperty(5)

	notifications := 0
	conn := p.Observe(func(int) { notifications++ })
	defer conn.Release()

	p.Set(5)
	p.Set(5)

	assert.Equal(t, 2, notifications)
}

func TestReleasedConnectionReceivesNoNotifications(t *testing.T) {
	p := NewProperty("a")

	notifications := 0
	conn := p.Observe(func(string) { notifications++ })

	p.Set("b")
	require.Equal(t, 1, notifications)

	conn.Release()
	p.Set("c")
	assert.Equal(t, 1, notifications, "observer must not fire after release")
}

func TestConnectionReleaseIsIdempotent(t *testing.T) {
	p := NewProperty(0)
	conn := p.Observe(func(int) {})

	conn.Release()
	assert.NotPanics(t, func() { conn.Release() })
}

func TestNilConnectionReleaseIsSafe(t *testing.T) {
	var conn *Connection
	assert.NotPanics(t, func() { conn.Release() })
}

func TestConnectionBagReleasesAll(t *testing.T) {
	p := NewProperty(0)

	first, second := 0, 0
	var bag ConnectionBag
	bag.Add(p.Observe(func(int) { first++ }))
	bag.Add(p.Observe(func(int) { second++ }))

	p.Set(1)
	require.Equal(t, 1, first)
	require.Equal(t, 1, second)

	bag.ReleaseAll()
	p.Set(2)
	assert.Equal(t, 1, first)
	assert.Equal(t, 1, second)
}

func TestMultipleObserversAllNotified(t *testing.T) {
	p := NewProperty(0.0)

	a, b := 0, 0
	connA := p.Observe(func(float64) { a++ })
	connB := p.Observe(func(float64) { b++ })
	defer connA.Release()
	defer connB.Release()

	p.Set(1.5)

	assert.Equal(t, 1, a)
	assert.Equal(t, 1, b)
}
