package console

import (
	"strings"
	"unicode/utf8"

	"github.com/relabs-tech/sensor_console/internal/imu"
)

// CommandKind tags a parsed Command.
type CommandKind int

const (
	Unsupported CommandKind = iota
	ReadAccelerometer
	ReadMagnetometer
)

// Command is one classified console line. Text holds the trimmed input and
// is what gets echoed back for unsupported commands.
type Command struct {
	Kind CommandKind
	Text string
}

// Group returns the axis group a read command targets.
func (c Command) Group() (imu.AxisGroup, bool) {
	switch c.Kind {
	case ReadAccelerometer:
		return imu.Accelerometer, true
	case ReadMagnetometer:
		return imu.Magnetometer, true
	default:
		return 0, false
	}
}

// Parse classifies line. Invalid UTF-8 is treated as an empty line; keywords
// match exactly and case-sensitively after trimming surrounding whitespace.
func Parse(line []byte) Command {
	text := ""
	if utf8.Valid(line) {
		text = strings.TrimSpace(string(line))
	}

	switch text {
	case "accelerometer":
		return Command{Kind: ReadAccelerometer, Text: text}
	case "magnetometer":
		return Command{Kind: ReadMagnetometer, Text: text}
	default:
		return Command{Kind: Unsupported, Text: text}
	}
}
