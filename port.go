package manchester

import "time"

// Pin is a hardware pin number. Board packages convert their own pin type,
// e.g. manchester.Pin(machine.D2).
type Pin uint8

// Mode is the direction of a pin.
type Mode uint8

const (
	// ModeInput leaves the pin floating (high impedance, no pull-up).
	ModeInput Mode = iota
	// ModeOutput drives the pin at its latched level.
	ModeOutput
)

// String returns "in" or "out".
func (m Mode) String() string {
	if m == ModeOutput {
		return "out"
	}
	return "in"
}

// Port is the set of pin operations the adapter needs. Implementations
// exist for TinyGo (machineport), Raspberry Pi (rpioport) and the
// simulator (sim).
type Port interface {
	// Configure sets the pin direction.
	Configure(pin Pin, mode Mode)
	// Set latches the output level of the pin.
	Set(pin Pin, high bool)
	// Get samples the level present on the pin.
	Get(pin Pin) bool
}

// Delay provides the busy-wait timing between pin transitions.
type Delay interface {
	DelayMicroseconds(n uint32)
	DelayMilliseconds(n uint32)
}

// SpinDelay busy-waits on the runtime clock. It never yields, so pin
// timings are not stretched by the scheduler.
type SpinDelay struct{}

// DelayMicroseconds spins for n microseconds.
func (SpinDelay) DelayMicroseconds(n uint32) {
	spin(time.Duration(n) * time.Microsecond)
}

// DelayMilliseconds spins for n milliseconds.
func (SpinDelay) DelayMilliseconds(n uint32) {
	spin(time.Duration(n) * time.Millisecond)
}

func spin(d time.Duration) {
	deadline := time.Now().Add(d)
	for time.Now().Before(deadline) {
	}
}
