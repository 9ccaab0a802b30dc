// Package serialport opens the console UART. The driver is chosen at build
// time: jacobsa/go-serial by default, go.bug.st/serial with the bugst tag.
package serialport

import "io"

// Options describes the console line. Framing is always 8N1.
type Options struct {
	PortName string
	BaudRate int
}

// Port is a blocking byte stream to the console.
type Port interface {
	io.Reader
	io.Writer
	io.Closer
}
