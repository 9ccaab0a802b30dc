package sensors

import (
	"errors"
	"testing"

	"github.com/relabs-tech/sensor_console/internal/imu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"periph.io/x/conn/v3/i2c/i2ctest"
	"periph.io/x/conn/v3/physic"
)

type brokenBus struct{}

func (brokenBus) String() string                    { return "broken" }
func (brokenBus) Tx(addr uint16, w, r []byte) error { return errors.New("nack") }
func (brokenBus) SetSpeed(f physic.Frequency) error { return nil }

func TestChipIDs(t *testing.T) {
	bus := &i2ctest.Playback{
		Ops: []i2ctest.IO{
			{Addr: 0x19, W: []byte{0x0F}, R: []byte{0x33}},
			{Addr: 0x1E, W: []byte{0x4F}, R: []byte{0x40}},
		},
		DontPanic: true,
	}
	dev := NewLSM303AGR(bus)

	accel, mag, err := dev.ChipIDs()
	require.NoError(t, err)
	assert.Equal(t, AccelChipID, accel)
	assert.Equal(t, MagChipID, mag)
	require.NoError(t, bus.Close())
}

func TestInitWritesConfiguration(t *testing.T) {
	bus := &i2ctest.Playback{
		Ops: []i2ctest.IO{
			{Addr: 0x19, W: []byte{0x23, 0x80}},
			{Addr: 0x1E, W: []byte{0x62, 0x10}},
			{Addr: 0x19, W: []byte{0x20, 0x27}},
			{Addr: 0x1E, W: []byte{0x60, 0x00}},
		},
		DontPanic: true,
	}
	dev := NewLSM303AGR(bus)

	require.NoError(t, dev.Init(DefaultOpts))
	require.NoError(t, bus.Close())
}

func TestInitFastRates(t *testing.T) {
	bus := &i2ctest.Playback{
		Ops: []i2ctest.IO{
			{Addr: 0x19, W: []byte{0x23, 0x80}},
			{Addr: 0x1E, W: []byte{0x62, 0x10}},
			{Addr: 0x19, W: []byte{0x20, 0x57}},
			{Addr: 0x1E, W: []byte{0x60, 0x0C}},
		},
		DontPanic: true,
	}
	dev := NewLSM303AGR(bus)

	require.NoError(t, dev.Init(Opts{AccelODRHz: 100, MagODRHz: 100}))
	require.NoError(t, bus.Close())
}

func TestInitRejectsRate(t *testing.T) {
	dev := NewLSM303AGR(&i2ctest.Playback{DontPanic: true})
	require.Error(t, dev.Init(Opts{AccelODRHz: 3, MagODRHz: 10}))
	require.Error(t, dev.Init(Opts{AccelODRHz: 10, MagODRHz: 5}))
}

func TestReady(t *testing.T) {
	bus := &i2ctest.Playback{
		Ops: []i2ctest.IO{
			{Addr: 0x19, W: []byte{0x27}, R: []byte{0x00}},
			{Addr: 0x19, W: []byte{0x27}, R: []byte{0x0F}},
			{Addr: 0x1E, W: []byte{0x67}, R: []byte{0x07}},
			{Addr: 0x1E, W: []byte{0x67}, R: []byte{0x08}},
		},
		DontPanic: true,
	}
	dev := NewLSM303AGR(bus)

	for _, want := range []struct {
		group imu.AxisGroup
		ready bool
	}{
		{imu.Accelerometer, false},
		{imu.Accelerometer, true},
		{imu.Magnetometer, false},
		{imu.Magnetometer, true},
	} {
		got, err := dev.Ready(want.group)
		require.NoError(t, err)
		assert.Equal(t, want.ready, got, want.group.String())
	}
	require.NoError(t, bus.Close())
}

func TestReadDecodesLittleEndian(t *testing.T) {
	bus := &i2ctest.Playback{
		Ops: []i2ctest.IO{
			{Addr: 0x19, W: []byte{0xA8}, R: []byte{0x40, 0x01, 0xC0, 0xFE, 0x00, 0x40}},
			{Addr: 0x1E, W: []byte{0x68}, R: []byte{0xFF, 0xFF, 0x00, 0x80, 0xFF, 0x7F}},
		},
		DontPanic: true,
	}
	dev := NewLSM303AGR(bus)

	accel, err := dev.Read(imu.Accelerometer)
	require.NoError(t, err)
	assert.Equal(t, imu.AxisReading{X: 320, Y: -320, Z: 16384}, accel)

	mag, err := dev.Read(imu.Magnetometer)
	require.NoError(t, err)
	assert.Equal(t, imu.AxisReading{X: -1, Y: -32768, Z: 32767}, mag)
	require.NoError(t, bus.Close())
}

func TestBusErrors(t *testing.T) {
	dev := NewLSM303AGR(brokenBus{})

	_, _, err := dev.ChipIDs()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrBus))

	_, err = dev.Ready(imu.Magnetometer)
	assert.True(t, errors.Is(err, ErrBus))

	_, err = dev.Read(imu.Accelerometer)
	assert.True(t, errors.Is(err, ErrBus))

	var busErr *BusError
	require.True(t, errors.As(err, &busErr))
	assert.Equal(t, AccelAddr, busErr.Addr)
	assert.Equal(t, byte(0xA8), busErr.Reg)

	assert.True(t, errors.Is(dev.Init(DefaultOpts), ErrBus))
}

func TestUnknownGroup(t *testing.T) {
	dev := NewLSM303AGR(brokenBus{})
	_, err := dev.Ready(imu.AxisGroup(7))
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrBus))
}
