// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package sensors

import (
	"errors"
	"fmt"

	"github.com/relabs-tech/sensor_console/internal/imu"
	"periph.io/x/conn/v3/i2c"
)

// 7-bit I2C addresses of the two LSM303AGR dies.
const (
	AccelAddr uint16 = 0b0011001
	MagAddr   uint16 = 0b0011110
)

// Accelerometer registers.
const (
	regWhoAmIA   byte = 0x0F
	regCtrlReg1A byte = 0x20
	regCtrlReg4A byte = 0x23
	regStatusA   byte = 0x27
	regOutXLA    byte = 0x28
)

// Magnetometer registers.
const (
	regWhoAmIM  byte = 0x4F
	regCfgRegAM byte = 0x60
	regCfgRegCM byte = 0x62
	regStatusM  byte = 0x67
	regOutXLM   byte = 0x68
)

const (
	// Expected WHO_AM_I values.
	AccelChipID byte = 0x33
	MagChipID   byte = 0x40

	autoIncrement byte = 0x80 // accelerometer multi-byte reads
	statusZYXDA   byte = 0x08 // new X, Y and Z data available
	ctrl1XYZEn    byte = 0x07
	ctrl4BDU      byte = 0x80
	cfgCBDU       byte = 0x10
	cfgAMDCont    byte = 0x00 // MD = 00, continuous conversion
)

// ErrBus matches every error caused by a failed bus transaction.
var ErrBus = errors.New("i2c bus error")

// BusError describes a failed transaction with one of the sensor dies.
type BusError struct {
	Op   string
	Addr uint16
	Reg  byte
	Err  error
}

func (e *BusError) Error() string {
	return fmt.Sprintf("%s (addr=0x%02X reg=0x%02X): %v", e.Op, e.Addr, e.Reg, e.Err)
}

func (e *BusError) Unwrap() error { return e.Err }

// Is reports ErrBus as matching any BusError.
func (e *BusError) Is(target error) bool { return target == ErrBus }

// Opts configures the output data rates of both axis groups.
type Opts struct {
	AccelODRHz int
	MagODRHz   int
}

// DefaultOpts samples both groups at 10 Hz.
var DefaultOpts = Opts{AccelODRHz: 10, MagODRHz: 10}

// LSM303AGR is the sensor gateway. It owns both device handles on the bus
// and must not be used from more than one goroutine.
type LSM303AGR struct {
	accel i2c.Dev
	mag   i2c.Dev
}

// NewLSM303AGR binds the gateway to bus. No traffic is generated.
func NewLSM303AGR(bus i2c.Bus) *LSM303AGR {
	return &LSM303AGR{
		accel: i2c.Dev{Bus: bus, Addr: AccelAddr},
		mag:   i2c.Dev{Bus: bus, Addr: MagAddr},
	}
}

// ChipIDs reads the identification register of each die.
func (d *LSM303AGR) ChipIDs() (accel, mag byte, err error) {
	if accel, err = d.readReg(&d.accel, regWhoAmIA); err != nil {
		return 0, 0, err
	}
	if mag, err = d.readReg(&d.mag, regWhoAmIM); err != nil {
		return 0, 0, err
	}
	return accel, mag, nil
}

// Init enables block data update on both groups, sets the output data rates,
// enables all accelerometer axes and puts the magnetometer in continuous mode.
func (d *LSM303AGR) Init(opts Opts) error {
	accelODR, err := accelODRBits(opts.AccelODRHz)
	if err != nil {
		return err
	}
	magODR, err := magODRBits(opts.MagODRHz)
	if err != nil {
		return err
	}

	if err := d.writeReg(&d.accel, regCtrlReg4A, ctrl4BDU); err != nil {
		return err
	}
	if err := d.writeReg(&d.mag, regCfgRegCM, cfgCBDU); err != nil {
		return err
	}
	if err := d.writeReg(&d.accel, regCtrlReg1A, accelODR<<4|ctrl1XYZEn); err != nil {
		return err
	}
	return d.writeReg(&d.mag, regCfgRegAM, magODR<<2|cfgAMDCont)
}

// Ready reports the new-XYZ-data flag of the group's status register.
func (d *LSM303AGR) Ready(group imu.AxisGroup) (bool, error) {
	dev, reg, err := d.route(group, regStatusA, regStatusM)
	if err != nil {
		return false, err
	}
	status, err := d.readReg(dev, reg)
	if err != nil {
		return false, err
	}
	return status&statusZYXDA != 0, nil
}

// Read fetches the six output registers of the group in one transaction.
func (d *LSM303AGR) Read(group imu.AxisGroup) (imu.AxisReading, error) {
	dev, reg, err := d.route(group, regOutXLA|autoIncrement, regOutXLM)
	if err != nil {
		return imu.AxisReading{}, err
	}

	var buf [6]byte
	if err := dev.Tx([]byte{reg}, buf[:]); err != nil {
		return imu.AxisReading{}, &BusError{Op: group.String() + " data", Addr: dev.Addr, Reg: reg, Err: err}
	}

	return imu.AxisReading{
		X: int32(int16(uint16(buf[0]) | uint16(buf[1])<<8)),
		Y: int32(int16(uint16(buf[2]) | uint16(buf[3])<<8)),
		Z: int32(int16(uint16(buf[4]) | uint16(buf[5])<<8)),
	}, nil
}

// ReadRegister reads a single register of the given group's die.
func (d *LSM303AGR) ReadRegister(group imu.AxisGroup, reg byte) (byte, error) {
	dev, _, err := d.route(group, 0, 0)
	if err != nil {
		return 0, err
	}
	return d.readReg(dev, reg)
}

func (d *LSM303AGR) route(group imu.AxisGroup, accelReg, magReg byte) (*i2c.Dev, byte, error) {
	switch group {
	case imu.Accelerometer:
		return &d.accel, accelReg, nil
	case imu.Magnetometer:
		return &d.mag, magReg, nil
	default:
		return nil, 0, fmt.Errorf("unknown axis group %d", group)
	}
}

func (d *LSM303AGR) readReg(dev *i2c.Dev, reg byte) (byte, error) {
	var r [1]byte
	if err := dev.Tx([]byte{reg}, r[:]); err != nil {
		return 0, &BusError{Op: "read", Addr: dev.Addr, Reg: reg, Err: err}
	}
	return r[0], nil
}

func (d *LSM303AGR) writeReg(dev *i2c.Dev, reg, value byte) error {
	if err := dev.Tx([]byte{reg, value}, nil); err != nil {
		return &BusError{Op: "write", Addr: dev.Addr, Reg: reg, Err: err}
	}
	return nil
}

func accelODRBits(hz int) (byte, error) {
	switch hz {
	case 1:
		return 0b0001, nil
	case 10:
		return 0b0010, nil
	case 25:
		return 0b0011, nil
	case 50:
		return 0b0100, nil
	case 100:
		return 0b0101, nil
	case 200:
		return 0b0110, nil
	case 400:
		return 0b0111, nil
	}
	return 0, fmt.Errorf("unsupported accelerometer data rate %d Hz", hz)
}

func magODRBits(hz int) (byte, error) {
	switch hz {
	case 10:
		return 0b00, nil
	case 20:
		return 0b01, nil
	case 50:
		return 0b10, nil
	case 100:
		return 0b11, nil
	}
	return 0, fmt.Errorf("unsupported magnetometer data rate %d Hz", hz)
}
