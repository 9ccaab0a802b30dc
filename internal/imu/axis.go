// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package imu

// AxisGroup selects one of the two sensor blocks of the LSM303AGR.
type AxisGroup int

const (
	Accelerometer AxisGroup = iota
	Magnetometer
)

// String returns the lowercase name used on the serial console.
func (g AxisGroup) String() string {
	switch g {
	case Accelerometer:
		return "accelerometer"
	case Magnetometer:
		return "magnetometer"
	default:
		return "unknown"
	}
}

// AxisReading is one raw x/y/z sample of an axis group.
type AxisReading struct {
	X int32 `json:"x"`
	Y int32 `json:"y"`
	Z int32 `json:"z"`
}

// AxisSource is anything that can report readiness and deliver readings
// for an axis group.
type AxisSource interface {
	Ready(group AxisGroup) (bool, error)
	Read(group AxisGroup) (AxisReading, error)
}
