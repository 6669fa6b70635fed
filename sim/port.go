// Package sim provides a simulated manchester.Port with a logical clock and
// models of the controllers that can be plugged into the adapter.
//
// The Port doubles as the adapter's Delay: waiting advances the clock
// instead of spinning, so whole loop iterations run instantly and every
// pin transition carries an exact timestamp.
package sim

import (
	"errors"
	"fmt"
	"time"

	"github.com/sat0ken/tinygo-manchester"
)

// ErrInvalidAxis is returned by Snapshot when an axis is in a pin
// combination that matches none of the three positions.
var ErrInvalidAxis = errors.New("sim: invalid axis pin combination")

// Device is something attached to the pins: a controller on the input
// side. Pins it does not drive must report ok == false.
type Device interface {
	// Edge is called when the level of an adapter output changes.
	Edge(pin manchester.Pin, high bool, at time.Duration)
	// Drive returns the level the device puts on pin.
	Drive(pin manchester.Pin, at time.Duration) (high, ok bool)
}

// Op is the kind of a traced pin operation.
type Op uint8

const (
	OpConfigure Op = iota
	OpSet
	OpGet
)

// String returns the lower case name of the operation.
func (o Op) String() string {
	switch o {
	case OpConfigure:
		return "configure"
	case OpSet:
		return "set"
	}
	return "get"
}

// Event is one traced pin operation.
type Event struct {
	At   time.Duration
	Op   Op
	Pin  manchester.Pin
	Mode manchester.Mode // OpConfigure
	High bool            // OpSet: level written, OpGet: level read
}

// String formats e as "<time> <op> pin <n> <mode or level>".
func (e Event) String() string {
	if e.Op == OpConfigure {
		return fmt.Sprintf("%v %v pin %d %v", e.At, e.Op, e.Pin, e.Mode)
	}
	return fmt.Sprintf("%v %v pin %d %t", e.At, e.Op, e.Pin, e.High)
}

type pinState struct {
	mode  manchester.Mode
	latch bool
}

// Port is a simulated set of 256 pins.
type Port struct {
	// Float is the level read from an input no device drives.
	Float bool
	// Tracing enables recording of pin operations.
	Tracing bool

	now     time.Duration
	pins    [256]pinState
	devices []Device
	trace   []Event
}

// New returns a Port with all pins as inputs, undriven inputs reading
// high, and the given devices attached.
func New(devices ...Device) *Port {
	return &Port{
		Float:   true,
		devices: devices,
	}
}

// Attach connects another device.
func (p *Port) Attach(d Device) {
	p.devices = append(p.devices, d)
}

// Detach disconnects d. Its pins float from now on.
func (p *Port) Detach(d Device) {
	for i, have := range p.devices {
		if have == d {
			p.devices = append(p.devices[:i], p.devices[i+1:]...)
			return
		}
	}
}

// Configure implements manchester.Port.
func (p *Port) Configure(pin manchester.Pin, mode manchester.Mode) {
	before := p.line(pin)
	p.pins[pin].mode = mode
	p.record(Event{Op: OpConfigure, Pin: pin, Mode: mode})
	p.notify(pin, before)
}

// Set implements manchester.Port.
func (p *Port) Set(pin manchester.Pin, high bool) {
	before := p.line(pin)
	p.pins[pin].latch = high
	p.record(Event{Op: OpSet, Pin: pin, High: high})
	p.notify(pin, before)
}

// Get implements manchester.Port. Outputs read back their latch. Inputs
// read the wired-AND of every device driving them, or Float.
func (p *Port) Get(pin manchester.Pin) bool {
	high := p.level(pin)
	p.record(Event{Op: OpGet, Pin: pin, High: high})
	return high
}

// DelayMicroseconds implements manchester.Delay by advancing the clock.
func (p *Port) DelayMicroseconds(n uint32) {
	p.Advance(time.Duration(n) * time.Microsecond)
}

// DelayMilliseconds implements manchester.Delay by advancing the clock.
func (p *Port) DelayMilliseconds(n uint32) {
	p.Advance(time.Duration(n) * time.Millisecond)
}

// Advance moves the clock forward by d.
func (p *Port) Advance(d time.Duration) {
	p.now += d
}

// Now returns the logical time since the Port was created.
func (p *Port) Now() time.Duration {
	return p.now
}

// Mode returns the direction of pin.
func (p *Port) Mode(pin manchester.Pin) manchester.Mode {
	return p.pins[pin].mode
}

// Latch returns the output latch of pin, whatever its direction.
func (p *Port) Latch(pin manchester.Pin) bool {
	return p.pins[pin].latch
}

// Trace returns a copy of the recorded events.
func (p *Port) Trace() []Event {
	return append([]Event(nil), p.trace...)
}

// ClearTrace drops the recorded events.
func (p *Port) ClearTrace() {
	p.trace = p.trace[:0]
}

func (p *Port) record(e Event) {
	if !p.Tracing {
		return
	}
	e.At = p.now
	p.trace = append(p.trace, e)
}

// line is the level the adapter presents on pin as seen by the devices.
func (p *Port) line(pin manchester.Pin) bool {
	st := p.pins[pin]
	if st.mode == manchester.ModeOutput {
		return st.latch
	}
	return p.Float
}

func (p *Port) notify(pin manchester.Pin, before bool) {
	after := p.line(pin)
	if after == before {
		return
	}
	for _, d := range p.devices {
		d.Edge(pin, after, p.now)
	}
}

func (p *Port) level(pin manchester.Pin) bool {
	st := p.pins[pin]
	if st.mode == manchester.ModeOutput {
		return st.latch
	}
	high, driven := true, false
	for _, d := range p.devices {
		h, ok := d.Drive(pin, p.now)
		if !ok {
			continue
		}
		driven = true
		high = high && h
	}
	if !driven {
		return p.Float
	}
	return high
}

// Axis decodes the position presented by a pot/half pin pair.
func (p *Port) Axis(pot, half manchester.Pin) (manchester.Position, error) {
	potOut := p.Mode(pot) == manchester.ModeOutput
	halfOut := p.Mode(half) == manchester.ModeOutput

	switch {
	case !potOut && halfOut && p.Latch(half):
		return manchester.PositionCenter, nil
	case potOut && p.Latch(pot) && !halfOut:
		return manchester.PositionMin, nil
	case !potOut && !halfOut:
		return manchester.PositionMax, nil
	}
	return manchester.PositionCenter, fmt.Errorf("%w: pot %v/%t half %v/%t", ErrInvalidAxis,
		p.Mode(pot), p.Latch(pot), p.Mode(half), p.Latch(half))
}

// Snapshot decodes every channel of the 5200 port from the pin levels.
func (p *Port) Snapshot(pins manchester.PinConfig) (manchester.Outputs, error) {
	var out manchester.Outputs
	var err error

	if out.X, err = p.Axis(pins.PotX, pins.HalfX); err != nil {
		return out, fmt.Errorf("x axis: %w", err)
	}
	if out.Y, err = p.Axis(pins.PotY, pins.HalfY); err != nil {
		return out, fmt.Errorf("y axis: %w", err)
	}

	out.Fire1 = p.sinking(pins.Fire1)
	out.Fire2 = p.sinking(pins.Fire2)
	out.Pause = p.asserted(pins.Pause)
	out.Start = p.asserted(pins.Start)

	return out, nil
}

func (p *Port) sinking(pin manchester.Pin) bool {
	return p.Mode(pin) == manchester.ModeOutput && !p.Latch(pin)
}

func (p *Port) asserted(pin manchester.Pin) bool {
	return p.Mode(pin) == manchester.ModeOutput && p.Latch(pin)
}
