//go:build bugst

package serialport

import (
	"fmt"

	"go.bug.st/serial"
)

// Driver names the serial implementation compiled into this binary.
const Driver = "go.bug.st/serial"

// Open opens the port without a read timeout so reads block until data arrives.
func Open(opts Options) (Port, error) {
	mode := &serial.Mode{
		BaudRate: opts.BaudRate,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	}

	port, err := serial.Open(opts.PortName, mode)
	if err != nil {
		return nil, fmt.Errorf("open serial %s: %w", opts.PortName, err)
	}
	return port, nil
}
