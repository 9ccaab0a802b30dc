//go:build !bugst

package serialport

import (
	"fmt"

	serial "github.com/jacobsa/go-serial/serial"
)

// Driver names the serial implementation compiled into this binary.
const Driver = "jacobsa/go-serial"

// Open opens the port in blocking mode: reads return once at least one byte
// has arrived and never time out.
func Open(opts Options) (Port, error) {
	serialOpts := serial.OpenOptions{
		PortName:              opts.PortName,
		BaudRate:              uint(opts.BaudRate),
		DataBits:              8,
		StopBits:              1,
		MinimumReadSize:       1,
		ParityMode:            serial.PARITY_NONE,
		InterCharacterTimeout: 0,
	}

	port, err := serial.Open(serialOpts)
	if err != nil {
		return nil, fmt.Errorf("open serial %s: %w", opts.PortName, err)
	}
	return port, nil
}
