package manchester

import "time"

// strobe is the shared control line. The Genesis pad sees it as SELECT,
// the NES/SNES pad as LATCH (through an RC trap that only fires on a long
// low period) and as CLOCK (on every rising edge).
type strobe struct {
	port Port
	pin  Pin
}

// assert pulls the line low.
func (s strobe) assert() {
	s.port.Set(s.pin, false)
}

// release returns the line to its idle high level.
func (s strobe) release() {
	s.port.Set(s.pin, true)
}

// pulse raises the line for width, then pulls it low again.
func (s strobe) pulse(width time.Duration, wait func(time.Duration)) {
	s.port.Set(s.pin, true)
	wait(width)
	s.port.Set(s.pin, false)
}

// pressed samples an active low input.
func (a *Adapter) pressed(pin Pin) bool {
	return !a.port.Get(pin)
}

// ScanGenesis reads the DB9 port.
//
// With SELECT low a Genesis pad grounds both Left and Right, which a plain
// joystick cannot do, and multiplexes A and Start onto pins 6 and 9. Those
// are reported as Select and Start. With SELECT high the pad presents the
// directions plus B and C, reported as TriggerA and TriggerB. A 2-button
// Master System or Atari stick ignores SELECT and only shows up in the
// second phase.
func (a *Adapter) ScanGenesis() State {
	var s State

	// Select low
	a.strobe.assert()
	a.wait(a.timing.GenesisSelect)

	// Left and Right both low: 3-button pad, read A and Start
	if a.pressed(a.pins.Left) && a.pressed(a.pins.Right) {
		if a.pressed(a.pins.BA) {
			s = s.With(Select)
		}
		if a.pressed(a.pins.CStart) {
			s = s.With(Start)
		}
	}

	// Select high, wait for the pad to switch back
	a.strobe.release()
	a.wait(a.timing.GenesisSettle)

	// Directions, B and C

	if a.pressed(a.pins.Up) {
		s = s.With(Up)
	}
	if a.pressed(a.pins.Down) {
		s = s.With(Down)
	}
	if a.pressed(a.pins.Left) {
		s = s.With(Left)
	}
	if a.pressed(a.pins.Right) {
		s = s.With(Right)
	}
	if a.pressed(a.pins.BA) {
		s = s.With(TriggerA)
	}
	if a.pressed(a.pins.CStart) {
		s = s.With(TriggerB)
	}

	return s
}

// ScanNES reads 8 bits from a NES or SNES pad.
//
// Each sample is shifted in at bit 7 and the accumulator moves right
// before the next one, so the first bit clocked out (NES A, SNES B) ends
// in bit 0 and the eighth (Right) in bit 7. SNES A, X, L and R follow in
// bits 8-11 of the stream and are never clocked.
func (a *Adapter) ScanNES() State {
	var s State

	// Latch
	a.strobe.assert()
	a.wait(a.timing.NESLatch)

	// Sample, then clock the next bit out
	for i := 0; i < 8; i++ {
		s >>= 1
		if a.pressed(a.pins.Data) {
			s |= 1 << 7
		}
		a.strobe.pulse(a.timing.NESClock, a.wait)
	}

	// Leave the line idle high
	a.strobe.release()

	return s
}
