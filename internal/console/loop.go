package console

import (
	"errors"
	"io"

	"github.com/relabs-tech/sensor_console/internal/imu"
	"go.uber.org/zap"
)

// ReadingSink receives every reading reported on the console.
type ReadingSink interface {
	Publish(group imu.AxisGroup, r imu.AxisReading) error
}

// Options tunes a Loop.
type Options struct {
	LineCapacity int         // bytes per line, DefaultCapacity when zero
	PollLimit    int         // status reads per fetch, unbounded when zero
	Sink         ReadingSink // optional
}

// Loop is the interactive command loop. It owns its byte source, byte sink
// and sensor for its whole lifetime and is not safe for concurrent use.
type Loop struct {
	lines  *LineReader
	poller *Poller
	out    *ResponseWriter
	sink   ReadingSink
	log    *zap.Logger
}

// NewLoop wires a loop reading commands from src and answering on dst.
func NewLoop(src io.ByteReader, dst io.Writer, sensor imu.AxisSource, opts Options, log *zap.Logger) *Loop {
	if log == nil {
		log = zap.NewNop()
	}
	return &Loop{
		lines:  NewLineReader(src, opts.LineCapacity),
		poller: NewPoller(sensor, opts.PollLimit),
		out:    NewResponseWriter(dst),
		sink:   opts.Sink,
		log:    log,
	}
}

// Run executes command cycles until a fatal error occurs. It never returns nil.
func (l *Loop) Run() error {
	for {
		if err := l.Step(); err != nil {
			l.log.Error("command loop halted", zap.Error(err))
			return err
		}
	}
}

// Step runs one cycle: prompt, read a line, dispatch it and report.
// Buffer overflow and unknown commands are answered on the console and
// yield nil; serial and sensor failures are returned.
func (l *Loop) Step() error {
	l.lines.Reset()
	if err := l.out.Prompt(); err != nil {
		return err
	}

	line, err := l.lines.ReadLine()
	if errors.Is(err, ErrBufferFull) {
		l.log.Info("line discarded", zap.Int("capacity", l.lines.capacity))
		return l.out.BufferFull()
	}
	if err != nil {
		return err
	}

	cmd := Parse(line)
	group, ok := cmd.Group()
	if !ok {
		l.log.Info("unsupported command", zap.String("text", cmd.Text))
		return l.out.Unsupported(cmd.Text)
	}

	l.log.Debug("polling sensor", zap.Stringer("group", group))
	reading, err := l.poller.PollAndRead(group)
	if err != nil {
		return err
	}
	l.log.Debug("sensor reading",
		zap.Stringer("group", group),
		zap.Int32("x", reading.X),
		zap.Int32("y", reading.Y),
		zap.Int32("z", reading.Z),
	)

	if err := l.out.Reading(group, reading); err != nil {
		return err
	}

	if l.sink != nil {
		if err := l.sink.Publish(group, reading); err != nil {
			l.log.Warn("telemetry publish failed", zap.Error(err))
		}
	}
	return nil
}
