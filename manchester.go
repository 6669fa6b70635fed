package manchester

import (
	"errors"
	"fmt"
	"time"
)

// ErrTiming is returned when a Timing value is below what the controllers
// and the 5200 port need.
var ErrTiming = errors.New("manchester: timing below hardware minimum")

// PinConfig holds the pin assignment of the adapter.
type PinConfig struct {
	Strobe Pin // Genesis SELECT / NES LATCH and CLOCK, output

	// Genesis DB9 inputs, active low, no pull-ups
	Up     Pin
	Down   Pin
	Left   Pin
	Right  Pin
	BA     Pin // DB9 pin 6: B with select high, A with select low
	CStart Pin // DB9 pin 9: C with select high, Start with select low

	Data Pin // NES/SNES serial data, active low

	// 5200 port
	PotX  Pin
	HalfX Pin
	PotY  Pin
	HalfY Pin
	Fire1 Pin // top trigger, open drain
	Fire2 Pin // bottom trigger, open drain
	Pause Pin // keypad Pause, active high
	Start Pin // keypad Start, active high
}

// Timing holds the busy-wait durations of one loop iteration.
type Timing struct {
	GenesisSelect time.Duration // select low until pin 6/9 are sampled
	GenesisSettle time.Duration // select high until directions are sampled
	NESLatch      time.Duration // latch low before the first data bit
	NESClock      time.Duration // width of each clock pulse
	Idle          time.Duration // wait after driving outputs
}

// DefaultTiming returns the timing of the reference hardware.
func DefaultTiming() Timing {
	return Timing{
		GenesisSelect: 5 * time.Microsecond,
		GenesisSettle: 100 * time.Microsecond,
		NESLatch:      100 * time.Microsecond,
		NESClock:      5 * time.Microsecond,
		Idle:          time.Millisecond,
	}
}

var minTiming = Timing{
	GenesisSelect: 5 * time.Microsecond,
	GenesisSettle: 100 * time.Microsecond,
	NESLatch:      100 * time.Microsecond,
	NESClock:      time.Microsecond,
	Idle:          time.Millisecond,
}

// Validate checks t against the hardware minimums.
func (t Timing) Validate() error {
	check := []struct {
		name       string
		got, floor time.Duration
	}{
		{"genesis select", t.GenesisSelect, minTiming.GenesisSelect},
		{"genesis settle", t.GenesisSettle, minTiming.GenesisSettle},
		{"nes latch", t.NESLatch, minTiming.NESLatch},
		{"nes clock", t.NESClock, minTiming.NESClock},
		{"idle", t.Idle, minTiming.Idle},
	}
	for _, c := range check {
		if c.got < c.floor {
			return fmt.Errorf("%w: %s %v < %v", ErrTiming, c.name, c.got, c.floor)
		}
	}
	return nil
}

// Adapter reads a Genesis and a NES/SNES controller and drives a 5200
// joystick port.
type Adapter struct {
	port   Port
	delay  Delay
	pins   PinConfig
	timing Timing
	strobe strobe
}

// New creates an adapter with DefaultTiming and configures its pins.
func New(port Port, delay Delay, pins PinConfig) *Adapter {
	a := &Adapter{
		port:   port,
		delay:  delay,
		pins:   pins,
		timing: DefaultTiming(),
	}
	a.init()
	return a
}

// NewWithTiming is New with custom timing. t must pass Validate.
func NewWithTiming(port Port, delay Delay, pins PinConfig, t Timing) (*Adapter, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	a := &Adapter{
		port:   port,
		delay:  delay,
		pins:   pins,
		timing: t,
	}
	a.init()
	return a, nil
}

// Timing returns the timing in use.
func (a *Adapter) Timing() Timing {
	return a.timing
}

// init configures the pins and sets their idle states: keys released,
// triggers open, strobe high and both axes centered.
func (a *Adapter) init() {
	a.strobe = strobe{port: a.port, pin: a.pins.Strobe}

	for _, pin := range []Pin{a.pins.Pause, a.pins.Start} {
		a.port.Configure(pin, ModeOutput)
		a.port.Set(pin, false)
	}

	for _, pin := range []Pin{
		a.pins.Data,
		a.pins.Up, a.pins.Down, a.pins.Left, a.pins.Right,
		a.pins.BA, a.pins.CStart,
		a.pins.Fire1, a.pins.Fire2,
	} {
		a.port.Configure(pin, ModeInput)
	}

	a.port.Configure(a.pins.Strobe, ModeOutput)
	a.strobe.release()

	a.setAxis(a.pins.PotX, a.pins.HalfX, PositionCenter)
	a.setAxis(a.pins.PotY, a.pins.HalfY, PositionCenter)
}

// Scan reads both controllers and merges the result.
func (a *Adapter) Scan() State {
	return Merge(a.ScanGenesis(), a.ScanNES())
}

// Update performs one loop iteration: scan, drive the port, then wait for
// the SNES RC trap to recharge. It returns the merged state.
func (a *Adapter) Update() State {
	s := a.Scan()
	a.Drive(s)
	a.wait(a.timing.Idle)
	return s
}

// Run calls Update forever.
func (a *Adapter) Run() {
	for {
		a.Update()
	}
}

// wait hands d to the delay provider in the coarsest unit that is exact.
// Fractions of a microsecond round up.
func (a *Adapter) wait(d time.Duration) {
	if d >= time.Millisecond && d%time.Millisecond == 0 {
		a.delay.DelayMilliseconds(uint32(d / time.Millisecond))
		return
	}
	a.delay.DelayMicroseconds(uint32((d + time.Microsecond - 1) / time.Microsecond))
}
