// Package manchester turns a Sega Genesis / Master System pad and a NES or
// SNES pad into an Atari 5200 joystick.
//
// Both controllers are polled in one loop over a single shared control
// line, their states are merged and the result is presented on the 5200
// port: each axis through a switched resistor network that emulates a
// self-centering potentiometer, the two triggers as open drain lines and
// Pause/Start as keypad lines.
//
// # Features
//
//   - 3-button Genesis pads detected through the SELECT multiplexing
//   - 2-button Master System and Atari sticks on the same DB9 port
//   - NES and SNES pads on one serial data line
//   - Both controllers merged, a button counts if either pad holds it
//   - Three position axes (min, center, max) through switched resistors
//   - Open drain triggers and active high Pause/Start keypad lines
//
// # Hardware Connection
//
// No pull-up resistors are used on the controller inputs.
//
//	Role     | Connects to              | Direction
//	---------|--------------------------|---------------------------
//	Strobe   | DB9 pin 7, NES LATCH+CLK | Output (LATCH via RC trap)
//	Up       | DB9 pin 1                | Input
//	Down     | DB9 pin 2                | Input
//	Left     | DB9 pin 3                | Input
//	Right    | DB9 pin 4                | Input
//	BA       | DB9 pin 6                | Input
//	CStart   | DB9 pin 9                | Input
//	Data     | NES/SNES DATA            | Input
//	PotX     | 5200 X pot, full range   | Output / open
//	HalfX    | 5200 X pot, half range   | Output / open
//	PotY     | 5200 Y pot, full range   | Output / open
//	HalfY    | 5200 Y pot, half range   | Output / open
//	Fire1    | 5200 top trigger         | Open drain
//	Fire2    | 5200 bottom trigger      | Open drain
//	Pause    | 5200 keypad Pause        | Output
//	Start    | 5200 keypad Start        | Output
//
// # Timing
//
// The loop has no timers or interrupts. Every wait is a busy-wait through
// the Delay given to New, and the durations in DefaultTiming are minimums
// of the controllers and of the RC networks around them.
//
// # Example Usage
//
//	package main
//
//	import (
//	    "machine"
//
//	    "github.com/sat0ken/tinygo-manchester"
//	    "github.com/sat0ken/tinygo-manchester/machineport"
//	)
//
//	func main() {
//	    pins := manchester.PinConfig{
//	        Strobe: manchester.Pin(machine.D2),
//	        Data:   manchester.Pin(machine.D3),
//	        // ...
//	    }
//
//	    adapter := manchester.New(machineport.New(), manchester.SpinDelay{}, pins)
//	    adapter.Run()
//	}
//
// For tests and experiments without hardware, package sim provides a Port
// on a logical clock with Genesis and NES/SNES controller models.
package manchester
