//go:build tinygo

// Package machineport implements manchester.Port on top of TinyGo's
// machine package.
package machineport

import (
	"machine"

	"github.com/sat0ken/tinygo-manchester"
)

// Port drives pins through machine.Pin.
type Port struct{}

// New returns a Port for the board the program is built for.
func New() Port {
	return Port{}
}

// Configure sets the pin direction. Inputs are left floating.
func (Port) Configure(pin manchester.Pin, mode manchester.Mode) {
	cfg := machine.PinConfig{Mode: machine.PinInput}
	if mode == manchester.ModeOutput {
		cfg.Mode = machine.PinOutput
	}
	machine.Pin(pin).Configure(cfg)
}

// Set writes the output latch of the pin.
func (Port) Set(pin manchester.Pin, high bool) {
	machine.Pin(pin).Set(high)
}

// Get reads the pin.
func (Port) Get(pin manchester.Pin) bool {
	return machine.Pin(pin).Get()
}
