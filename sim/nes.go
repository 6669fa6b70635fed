package sim

import (
	"time"

	"github.com/sat0ken/tinygo-manchester"
)

// NESButton is a bit of the serial stream of a NES or SNES pad, in the
// order the pad shifts them out.
type NESButton uint16

// NES buttons.
const (
	NESA NESButton = 1 << iota
	NESB
	NESSelect
	NESStart
	NESUp
	NESDown
	NESLeft
	NESRight
)

// SNES buttons.
const (
	SNESB NESButton = 1 << iota
	SNESY
	SNESSelect
	SNESStart
	SNESUp
	SNESDown
	SNESLeft
	SNESRight
	SNESA
	SNESX
	SNESL
	SNESR
)

// DefaultLatchTime is how long the shared line must stay low before the
// RC trap in front of the LATCH input fires.
const DefaultLatchTime = 50 * time.Microsecond

// NESPad is a NES or SNES pad behind the adapter's RC trap. LATCH and
// CLOCK share one line: holding it low for LatchTime loads the shift
// register, every rising edge shifts it by one bit.
type NESPad struct {
	Pins      manchester.PinConfig
	Buttons   NESButton
	LatchTime time.Duration

	low      bool
	lowSince time.Duration
	index    int
}

// NewNESPad returns a pad with nothing pressed, wired to pins.
func NewNESPad(pins manchester.PinConfig) *NESPad {
	return &NESPad{
		Pins:      pins,
		LatchTime: DefaultLatchTime,
	}
}

// Press marks buttons as held.
func (n *NESPad) Press(b NESButton) {
	n.Buttons |= b
}

// Release marks buttons as not held.
func (n *NESPad) Release(b NESButton) {
	n.Buttons &^= b
}

func (n *NESPad) latched(at time.Duration) bool {
	return n.low && at-n.lowSince >= n.LatchTime
}

// Edge implements Device.
func (n *NESPad) Edge(pin manchester.Pin, high bool, at time.Duration) {
	if pin != n.Pins.Strobe {
		return
	}
	if !high {
		n.low = true
		n.lowSince = at
		return
	}
	if n.latched(at) {
		n.index = 0
	}
	n.index++
	n.low = false
}

// Drive implements Device. A held button pulls DATA low; after the 16
// bits of the register DATA stays low.
func (n *NESPad) Drive(pin manchester.Pin, at time.Duration) (high, ok bool) {
	if pin != n.Pins.Data {
		return false, false
	}
	if n.latched(at) {
		n.index = 0
	}
	if n.index >= 16 {
		return false, true
	}
	return n.Buttons&(1<<n.index) == 0, true
}
