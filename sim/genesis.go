package sim

import (
	"time"

	"github.com/sat0ken/tinygo-manchester"
)

// GenesisPad is a controller on the DB9 port.
//
// As a 3-button Genesis pad it multiplexes on the select line:
//
//	select  pin1 pin2 pin3 pin4  pin6  pin9
//	low     Up   Down low  low   A     Start
//	high    Up   Down Left Right B     C
//
// With Simple set it is a 2-button Master System or Atari stick that
// ignores select; B and C are then buttons 1 and 2.
type GenesisPad struct {
	Pins manchester.PinConfig

	Up, Down, Left, Right bool
	A, B, C, Start        bool

	Simple bool

	// Settle is how long the pad keeps presenting the select low levels
	// after select rises.
	Settle time.Duration

	selectHigh bool
	rose       time.Duration
}

// neverRose puts the last rising edge of select further back than any
// Settle, so a pad that has not seen the line fall presents select high.
const neverRose = -1 << 62

// NewGenesisPad returns a 3-button pad with nothing pressed, wired to pins.
func NewGenesisPad(pins manchester.PinConfig) *GenesisPad {
	return &GenesisPad{
		Pins:       pins,
		selectHigh: true,
		rose:       neverRose,
	}
}

// Edge implements Device.
func (g *GenesisPad) Edge(pin manchester.Pin, high bool, at time.Duration) {
	if pin != g.Pins.Strobe {
		return
	}
	if high && !g.selectHigh {
		g.rose = at
	}
	g.selectHigh = high
}

// Drive implements Device. Pressed buttons pull their pin low.
func (g *GenesisPad) Drive(pin manchester.Pin, at time.Duration) (high, ok bool) {
	selected := g.Simple || g.selectHigh && at-g.rose >= g.Settle

	switch pin {
	case g.Pins.Up:
		return !g.Up, true
	case g.Pins.Down:
		return !g.Down, true
	case g.Pins.Left:
		return selected && !g.Left, true
	case g.Pins.Right:
		return selected && !g.Right, true
	case g.Pins.BA:
		if selected {
			return !g.B, true
		}
		return !g.A, true
	case g.Pins.CStart:
		if selected {
			return !g.C, true
		}
		return !g.Start, true
	}
	return false, false
}
