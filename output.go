package manchester

// Position is the deflection presented on one axis of the 5200 port. The
// port reads a potentiometer, which the adapter emulates by switching a
// resistor network with two pins, so only three values exist.
type Position uint8

const (
	PositionCenter Position = iota
	PositionMin             // left or up, minimum resistance
	PositionMax             // right or down
)

// String returns "center", "min" or "max".
func (p Position) String() string {
	switch p {
	case PositionMin:
		return "min"
	case PositionMax:
		return "max"
	}
	return "center"
}

// Outputs is the level of every channel of the 5200 port.
type Outputs struct {
	X     Position
	Y     Position
	Fire1 bool // top trigger pulled low
	Fire2 bool // bottom trigger pulled low
	Pause bool // keypad Pause asserted
	Start bool // keypad Start asserted
}

// Decide maps a controller state to the port outputs. Opposite directions
// pressed together center the axis.
func Decide(s State) Outputs {
	return Outputs{
		X:     axis(s, Left, Right),
		Y:     axis(s, Up, Down),
		Fire1: s.IsDown(TriggerA),
		Fire2: s.IsDown(TriggerB),
		Pause: s.IsDown(Select),
		Start: s.IsDown(Start),
	}
}

func axis(s State, neg, pos Button) Position {
	switch {
	case s.IsDown(neg) && s.IsDown(pos):
		return PositionCenter
	case s.IsDown(neg):
		return PositionMin
	case s.IsDown(pos):
		return PositionMax
	}
	return PositionCenter
}

// Drive sets every output of the port from s and returns what was set.
// Earlier calls have no effect on the result.
func (a *Adapter) Drive(s State) Outputs {
	out := Decide(s)

	// Axes
	a.setAxis(a.pins.PotY, a.pins.HalfY, out.Y)
	a.setAxis(a.pins.PotX, a.pins.HalfX, out.X)

	// Triggers
	a.setFire(a.pins.Fire1, out.Fire1)
	a.setFire(a.pins.Fire2, out.Fire2)

	// Keypad
	a.port.Set(a.pins.Pause, out.Pause)
	a.port.Set(a.pins.Start, out.Start)

	return out
}

// setAxis switches the resistor network of one axis.
//
//	position  half        pot
//	min       open        high
//	center    high        open
//	max       open        open
func (a *Adapter) setAxis(pot, half Pin, p Position) {
	// Release the pin being switched off before driving the other one
	switch p {
	case PositionMin:
		a.port.Configure(half, ModeInput)
		a.port.Configure(pot, ModeOutput)
		a.port.Set(pot, true)
	case PositionMax:
		a.port.Configure(half, ModeInput)
		a.port.Configure(pot, ModeInput)
	default:
		a.port.Configure(pot, ModeInput)
		a.port.Configure(half, ModeOutput)
		a.port.Set(half, true)
	}
}

// setFire sinks a trigger line or leaves it open.
func (a *Adapter) setFire(pin Pin, active bool) {
	if active {
		a.port.Configure(pin, ModeOutput)
		a.port.Set(pin, false)
		return
	}
	a.port.Configure(pin, ModeInput)
}
