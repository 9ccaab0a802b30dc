package console

import (
	"errors"
	"fmt"

	"github.com/relabs-tech/sensor_console/internal/imu"
)

// ErrSensorTimeout is returned when a poll limit is set and the readiness
// flag stays clear for that many status reads.
var ErrSensorTimeout = errors.New("sensor timeout")

// Poller busy-waits on a group's readiness flag and then fetches one reading.
//
// With a zero limit the wait is unbounded and does not yield: a sensor that
// never reports new data stalls the caller forever.
type Poller struct {
	src   imu.AxisSource
	limit int
}

// NewPoller polls src, giving up after limit status reads when limit > 0.
func NewPoller(src imu.AxisSource, limit int) *Poller {
	return &Poller{src: src, limit: limit}
}

// PollAndRead returns a reading taken after the readiness flag was observed set.
func (p *Poller) PollAndRead(group imu.AxisGroup) (imu.AxisReading, error) {
	for polls := 1; ; polls++ {
		ready, err := p.src.Ready(group)
		if err != nil {
			return imu.AxisReading{}, fmt.Errorf("%s status: %w", group, err)
		}
		if ready {
			break
		}
		if p.limit > 0 && polls >= p.limit {
			return imu.AxisReading{}, fmt.Errorf("%w: %s not ready after %d status reads", ErrSensorTimeout, group, polls)
		}
	}

	reading, err := p.src.Read(group)
	if err != nil {
		return imu.AxisReading{}, fmt.Errorf("%s data: %w", group, err)
	}
	return reading, nil
}
