//go:build linux && !tinygo

// Package rpioport implements manchester.Port on a Raspberry Pi GPIO header
// using go-rpio. Pins are BCM numbers.
package rpioport

import (
	"fmt"

	"github.com/stianeikeland/go-rpio/v4"

	"github.com/sat0ken/tinygo-manchester"
)

// Port drives the BCM GPIO pins through /dev/gpiomem.
type Port struct{}

// Open maps the GPIO registers. Call Close when done.
func Open() (*Port, error) {
	if err := rpio.Open(); err != nil {
		return nil, fmt.Errorf("rpioport: open gpio: %w", err)
	}
	return &Port{}, nil
}

// Close unmaps the GPIO registers.
func (p *Port) Close() error {
	if err := rpio.Close(); err != nil {
		return fmt.Errorf("rpioport: close gpio: %w", err)
	}
	return nil
}

// Configure sets the pin direction. Inputs get no pull resistor.
func (p *Port) Configure(pin manchester.Pin, mode manchester.Mode) {
	rp := rpio.Pin(pin)
	if mode == manchester.ModeOutput {
		rp.Output()
		return
	}
	rp.Input()
	rp.PullOff()
}

// Set writes the pin level.
func (p *Port) Set(pin manchester.Pin, high bool) {
	if high {
		rpio.Pin(pin).High()
	} else {
		rpio.Pin(pin).Low()
	}
}

// Get reads the pin level.
func (p *Port) Get(pin manchester.Pin) bool {
	return rpio.Pin(pin).Read() == rpio.High
}
