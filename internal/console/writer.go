package console

import (
	"fmt"
	"io"

	"github.com/relabs-tech/sensor_console/internal/imu"
)

// Prompt is sent at the start of every command cycle.
const Prompt = "Command: accelerometer/magnetometer?"

const lineEnding = "\r\n"

// ResponseWriter formats console output lines and terminates them with CRLF.
type ResponseWriter struct {
	w io.Writer
}

// NewResponseWriter writes lines to w.
func NewResponseWriter(w io.Writer) *ResponseWriter {
	return &ResponseWriter{w: w}
}

// Emit writes text followed by CRLF.
func (rw *ResponseWriter) Emit(text string) error {
	if _, err := io.WriteString(rw.w, text+lineEnding); err != nil {
		return fmt.Errorf("serial write: %w", err)
	}
	return nil
}

// Prompt asks for the next command.
func (rw *ResponseWriter) Prompt() error {
	return rw.Emit(Prompt)
}

// ChipIDs reports the identification registers in binary, e.g. 0b110011.
func (rw *ResponseWriter) ChipIDs(accel, mag byte) error {
	if err := rw.Emit(fmt.Sprintf("Accelerometer chip id: %#b", accel)); err != nil {
		return err
	}
	return rw.Emit(fmt.Sprintf("Magnetometer chip id: %#b", mag))
}

// Reading reports one sample as "<group>: x <x> y <y> z <z>".
func (rw *ResponseWriter) Reading(group imu.AxisGroup, r imu.AxisReading) error {
	return rw.Emit(fmt.Sprintf("%s: x %d y %d z %d", group, r.X, r.Y, r.Z))
}

// BufferFull reports a discarded overlong line.
func (rw *ResponseWriter) BufferFull() error {
	return rw.Emit("error: buffer full")
}

// Unsupported echoes text verbatim between single quotes.
func (rw *ResponseWriter) Unsupported(text string) error {
	return rw.Emit(fmt.Sprintf("error: unsupported command '%s'", text))
}
