package sim

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sat0ken/tinygo-manchester"
)

var pins = manchester.PinConfig{
	Strobe: 1, Up: 2, Down: 3, Left: 4, Right: 5, BA: 6, CStart: 7, Data: 8,
	PotX: 9, HalfX: 10, PotY: 11, HalfY: 12, Fire1: 13, Fire2: 14, Pause: 15, Start: 16,
}

// fixed drives a single pin to a fixed level and records edges.
type fixed struct {
	pin   manchester.Pin
	high  bool
	edges []bool
}

func (f *fixed) Edge(pin manchester.Pin, high bool, at time.Duration) {
	f.edges = append(f.edges, high)
}

func (f *fixed) Drive(pin manchester.Pin, at time.Duration) (bool, bool) {
	return f.high, pin == f.pin
}

func TestPortFloat(t *testing.T) {
	p := New()
	assert.True(t, p.Get(3))
	p.Float = false
	assert.False(t, p.Get(3))
}

func TestPortWiredAnd(t *testing.T) {
	a := &fixed{pin: 3, high: true}
	b := &fixed{pin: 3, high: true}
	p := New(a, b)
	assert.True(t, p.Get(3))

	b.high = false
	assert.False(t, p.Get(3))

	p.Float = false
	assert.False(t, p.Get(4), "undriven pin reads Float")
}

func TestPortOutputReadsLatch(t *testing.T) {
	d := &fixed{pin: 3, high: false}
	p := New(d)
	p.Configure(3, manchester.ModeOutput)
	p.Set(3, true)
	assert.True(t, p.Get(3), "output ignores devices")
}

func TestPortEdges(t *testing.T) {
	d := &fixed{pin: 99}
	p := New(d)

	p.Set(1, false) // input: latch only
	assert.Empty(t, d.edges)

	p.Configure(1, manchester.ModeOutput) // float high -> latch low
	p.Set(1, false)
	p.Set(1, true)
	p.Set(1, true)
	p.Configure(1, manchester.ModeInput) // latch high -> float high
	assert.Equal(t, []bool{false, true}, d.edges)
}

func TestPortClockAndTrace(t *testing.T) {
	p := New()
	p.DelayMicroseconds(7)
	assert.Equal(t, 7*time.Microsecond, p.Now())

	p.Tracing = true
	p.Configure(2, manchester.ModeOutput)
	p.DelayMilliseconds(2)
	p.Set(2, true)
	p.Get(2)

	want := []Event{
		{At: 7 * time.Microsecond, Op: OpConfigure, Pin: 2, Mode: manchester.ModeOutput},
		{At: 2007 * time.Microsecond, Op: OpSet, Pin: 2, High: true},
		{At: 2007 * time.Microsecond, Op: OpGet, Pin: 2, High: true},
	}
	assert.Equal(t, want, p.Trace())
	assert.Equal(t, "7µs configure pin 2 out", want[0].String())
	assert.Equal(t, "2.007ms get pin 2 true", want[2].String())

	p.ClearTrace()
	assert.Empty(t, p.Trace())
}

func TestPortAxis(t *testing.T) {
	for _, c := range []struct {
		name      string
		potMode   manchester.Mode
		potHigh   bool
		halfMode  manchester.Mode
		halfHigh  bool
		want      manchester.Position
		wantError bool
	}{
		{"center", manchester.ModeInput, false, manchester.ModeOutput, true, manchester.PositionCenter, false},
		{"min", manchester.ModeOutput, true, manchester.ModeInput, false, manchester.PositionMin, false},
		{"max", manchester.ModeInput, false, manchester.ModeInput, false, manchester.PositionMax, false},
		{"both driven", manchester.ModeOutput, true, manchester.ModeOutput, true, 0, true},
		{"pot low", manchester.ModeOutput, false, manchester.ModeInput, false, 0, true},
		{"half low", manchester.ModeInput, false, manchester.ModeOutput, false, 0, true},
	} {
		t.Run(c.name, func(t *testing.T) {
			p := New()
			p.Configure(pins.PotX, c.potMode)
			p.Set(pins.PotX, c.potHigh)
			p.Configure(pins.HalfX, c.halfMode)
			p.Set(pins.HalfX, c.halfHigh)

			got, err := p.Axis(pins.PotX, pins.HalfX)
			if c.wantError {
				require.ErrorIs(t, err, ErrInvalidAxis)
				_, err = p.Snapshot(pins)
				require.ErrorIs(t, err, ErrInvalidAxis)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.want, got)
		})
	}
}

func TestGenesisPadMultiplex(t *testing.T) {
	g := NewGenesisPad(pins)
	g.Up, g.A, g.B = true, true, true

	read := func(pin manchester.Pin) bool {
		high, ok := g.Drive(pin, 0)
		require.True(t, ok)
		return high
	}

	// select high
	assert.False(t, read(pins.Up))
	assert.True(t, read(pins.Left))
	assert.True(t, read(pins.Right))
	assert.False(t, read(pins.BA), "B")
	assert.True(t, read(pins.CStart), "C")

	g.Edge(pins.Strobe, false, 0)
	assert.False(t, read(pins.Up))
	assert.False(t, read(pins.Left), "forced low")
	assert.False(t, read(pins.Right), "forced low")
	assert.False(t, read(pins.BA), "A")
	assert.True(t, read(pins.CStart), "Start")

	_, ok := g.Drive(pins.Data, 0)
	assert.False(t, ok)
}

func TestGenesisPadSettle(t *testing.T) {
	g := NewGenesisPad(pins)
	g.Settle = 100 * time.Microsecond

	g.Edge(pins.Strobe, false, 0)
	g.Edge(pins.Strobe, true, 10*time.Microsecond)

	high, _ := g.Drive(pins.Left, 50*time.Microsecond)
	assert.False(t, high, "still presenting select low")
	high, _ = g.Drive(pins.Left, 110*time.Microsecond)
	assert.True(t, high)
}

func TestNESPadShift(t *testing.T) {
	n := NewNESPad(pins)
	n.Press(NESB | NESRight)

	data := func(at time.Duration) bool {
		high, ok := n.Drive(pins.Data, at)
		require.True(t, ok)
		return high
	}

	n.Edge(pins.Strobe, false, 0)
	at := DefaultLatchTime
	var got []bool
	for i := 0; i < 17; i++ {
		got = append(got, data(at))
		n.Edge(pins.Strobe, true, at)
		at += time.Microsecond
		n.Edge(pins.Strobe, false, at)
	}

	want := []bool{true, false, true, true, true, true, true, false}
	for i := 8; i < 16; i++ {
		want = append(want, true)
	}
	want = append(want, false)
	assert.Equal(t, want, got)
}

func TestNESPadShortLowDoesNotLatch(t *testing.T) {
	n := NewNESPad(pins)
	n.Press(NESA)

	n.Edge(pins.Strobe, false, 0)
	n.Edge(pins.Strobe, true, DefaultLatchTime-time.Microsecond)
	high, _ := n.Drive(pins.Data, DefaultLatchTime)
	assert.True(t, high, "shifted past A instead of latching")

	n.Edge(pins.Strobe, false, time.Millisecond)
	high, _ = n.Drive(pins.Data, time.Millisecond+DefaultLatchTime)
	assert.False(t, high, "latched, A presented")

	n.Release(NESA)
	high, _ = n.Drive(pins.Data, time.Millisecond+DefaultLatchTime)
	assert.True(t, high)
}

func TestPortDetach(t *testing.T) {
	a := &fixed{pin: 3, high: false}
	b := &fixed{pin: 4, high: false}
	p := New(a, b)
	require.False(t, p.Get(3))

	p.Detach(a)
	assert.True(t, p.Get(3), "floats once detached")
	assert.False(t, p.Get(4))

	p.Detach(a)
	p.Attach(a)
	assert.False(t, p.Get(3))
}

func TestGenesisPadSettleBeforeFirstEdge(t *testing.T) {
	g := NewGenesisPad(pins)
	g.Settle = 100 * time.Microsecond
	g.B = true

	high, _ := g.Drive(pins.Left, 0)
	assert.True(t, high, "select idles high")
	high, _ = g.Drive(pins.BA, 0)
	assert.False(t, high, "B, not A")
}
