// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package sensors

import "github.com/relabs-tech/sensor_console/internal/imu"

// RegisterInfo describes one register of a sensor die.
type RegisterInfo struct {
	Address     byte
	Name        string
	Description string
	Access      string // "R", "W", "RW"
	Default     string
	BitFields   []BitField
}

// BitField describes a named bit range inside a register.
type BitField struct {
	Bits        string
	Name        string
	Description string
	Values      string
}

// Readable reports whether the register may be read without side effects.
func (r RegisterInfo) Readable() bool {
	return r.Access == "R" || r.Access == "RW"
}

// RegisterMap returns register metadata for the die serving group.
func RegisterMap(group imu.AxisGroup) []RegisterInfo {
	if group == imu.Magnetometer {
		return magRegisterMap()
	}
	return accelRegisterMap()
}

// accelRegisterMap covers the accelerometer die at 0x19.
func accelRegisterMap() []RegisterInfo {
	return []RegisterInfo{
		{Address: 0x07, Name: "STATUS_REG_AUX_A", Description: "Temperature status", Access: "R"},
		{Address: 0x0C, Name: "OUT_TEMP_L_A", Description: "Temperature low byte", Access: "R"},
		{Address: 0x0D, Name: "OUT_TEMP_H_A", Description: "Temperature high byte", Access: "R"},
		{Address: 0x0F, Name: "WHO_AM_I_A", Description: "Device ID (should be 0x33)", Access: "R", Default: "0x33"},
		{Address: 0x1F, Name: "TEMP_CFG_REG_A", Description: "Temperature sensor enable", Access: "RW", Default: "0x00",
			BitFields: []BitField{
				{Bits: "7:6", Name: "TEMP_EN", Description: "Temperature sensor", Values: "00=Disabled, 11=Enabled"},
			}},
		{Address: 0x20, Name: "CTRL_REG1_A", Description: "Data rate and axis enable", Access: "RW", Default: "0x07",
			BitFields: []BitField{
				{Bits: "7:4", Name: "ODR", Description: "Output data rate", Values: "0=PowerDown, 1=1Hz, 2=10Hz, 3=25Hz, 4=50Hz, 5=100Hz, 6=200Hz, 7=400Hz"},
				{Bits: "3", Name: "LPen", Description: "Low power mode", Values: "0=Normal, 1=Low power"},
				{Bits: "2", Name: "Zen", Description: "Z axis enable", Values: "0=Disabled, 1=Enabled"},
				{Bits: "1", Name: "Yen", Description: "Y axis enable", Values: "0=Disabled, 1=Enabled"},
				{Bits: "0", Name: "Xen", Description: "X axis enable", Values: "0=Disabled, 1=Enabled"},
			}},
		{Address: 0x21, Name: "CTRL_REG2_A", Description: "High-pass filter", Access: "RW", Default: "0x00"},
		{Address: 0x22, Name: "CTRL_REG3_A", Description: "INT1 routing", Access: "RW", Default: "0x00"},
		{Address: 0x23, Name: "CTRL_REG4_A", Description: "Scale and resolution", Access: "RW", Default: "0x00",
			BitFields: []BitField{
				{Bits: "7", Name: "BDU", Description: "Block data update", Values: "0=Continuous, 1=Hold until read"},
				{Bits: "6", Name: "BLE", Description: "Endianness", Values: "0=LSB first, 1=MSB first"},
				{Bits: "5:4", Name: "FS", Description: "Full scale", Values: "0=±2g, 1=±4g, 2=±8g, 3=±16g"},
				{Bits: "3", Name: "HR", Description: "High resolution", Values: "0=Disabled, 1=Enabled"},
			}},
		{Address: 0x24, Name: "CTRL_REG5_A", Description: "FIFO and reboot", Access: "RW", Default: "0x00"},
		{Address: 0x27, Name: "STATUS_REG_A", Description: "Data status", Access: "R", Default: "0x00",
			BitFields: []BitField{
				{Bits: "7", Name: "ZYXOR", Description: "X, Y, Z overrun", Values: ""},
				{Bits: "3", Name: "ZYXDA", Description: "New X, Y, Z data available", Values: "0=Not ready, 1=Ready"},
			}},
		{Address: 0x28, Name: "OUT_X_L_A", Description: "X axis low byte", Access: "R"},
		{Address: 0x29, Name: "OUT_X_H_A", Description: "X axis high byte", Access: "R"},
		{Address: 0x2A, Name: "OUT_Y_L_A", Description: "Y axis low byte", Access: "R"},
		{Address: 0x2B, Name: "OUT_Y_H_A", Description: "Y axis high byte", Access: "R"},
		{Address: 0x2C, Name: "OUT_Z_L_A", Description: "Z axis low byte", Access: "R"},
		{Address: 0x2D, Name: "OUT_Z_H_A", Description: "Z axis high byte", Access: "R"},
		{Address: 0x2E, Name: "FIFO_CTRL_REG_A", Description: "FIFO mode", Access: "RW", Default: "0x00"},
		{Address: 0x2F, Name: "FIFO_SRC_REG_A", Description: "FIFO status", Access: "R"},
	}
}

// magRegisterMap covers the magnetometer die at 0x1E.
func magRegisterMap() []RegisterInfo {
	return []RegisterInfo{
		{Address: 0x45, Name: "OFFSET_X_REG_L_M", Description: "Hard-iron X offset low byte", Access: "RW", Default: "0x00"},
		{Address: 0x46, Name: "OFFSET_X_REG_H_M", Description: "Hard-iron X offset high byte", Access: "RW", Default: "0x00"},
		{Address: 0x47, Name: "OFFSET_Y_REG_L_M", Description: "Hard-iron Y offset low byte", Access: "RW", Default: "0x00"},
		{Address: 0x48, Name: "OFFSET_Y_REG_H_M", Description: "Hard-iron Y offset high byte", Access: "RW", Default: "0x00"},
		{Address: 0x49, Name: "OFFSET_Z_REG_L_M", Description: "Hard-iron Z offset low byte", Access: "RW", Default: "0x00"},
		{Address: 0x4A, Name: "OFFSET_Z_REG_H_M", Description: "Hard-iron Z offset high byte", Access: "RW", Default: "0x00"},
		{Address: 0x4F, Name: "WHO_AM_I_M", Description: "Device ID (should be 0x40)", Access: "R", Default: "0x40"},
		{Address: 0x60, Name: "CFG_REG_A_M", Description: "Mode and data rate", Access: "RW", Default: "0x03",
			BitFields: []BitField{
				{Bits: "7", Name: "COMP_TEMP_EN", Description: "Temperature compensation", Values: "0=Disabled, 1=Enabled"},
				{Bits: "4", Name: "LP", Description: "Low power mode", Values: "0=High resolution, 1=Low power"},
				{Bits: "3:2", Name: "ODR", Description: "Output data rate", Values: "0=10Hz, 1=20Hz, 2=50Hz, 3=100Hz"},
				{Bits: "1:0", Name: "MD", Description: "Mode", Values: "0=Continuous, 1=Single, 2/3=Idle"},
			}},
		{Address: 0x61, Name: "CFG_REG_B_M", Description: "Filtering and offset cancellation", Access: "RW", Default: "0x00"},
		{Address: 0x62, Name: "CFG_REG_C_M", Description: "Interface and block data update", Access: "RW", Default: "0x00",
			BitFields: []BitField{
				{Bits: "4", Name: "BDU", Description: "Block data update", Values: "0=Continuous, 1=Hold until read"},
				{Bits: "3", Name: "BLE", Description: "Endianness", Values: "0=LSB first, 1=MSB first"},
			}},
		{Address: 0x67, Name: "STATUS_REG_M", Description: "Data status", Access: "R", Default: "0x00",
			BitFields: []BitField{
				{Bits: "7", Name: "Zyxor", Description: "X, Y, Z overrun", Values: ""},
				{Bits: "3", Name: "Zyxda", Description: "New X, Y, Z data available", Values: "0=Not ready, 1=Ready"},
			}},
		{Address: 0x68, Name: "OUTX_L_REG_M", Description: "X axis low byte", Access: "R"},
		{Address: 0x69, Name: "OUTX_H_REG_M", Description: "X axis high byte", Access: "R"},
		{Address: 0x6A, Name: "OUTY_L_REG_M", Description: "Y axis low byte", Access: "R"},
		{Address: 0x6B, Name: "OUTY_H_REG_M", Description: "Y axis high byte", Access: "R"},
		{Address: 0x6C, Name: "OUTZ_L_REG_M", Description: "Z axis low byte", Access: "R"},
		{Address: 0x6D, Name: "OUTZ_H_REG_M", Description: "Z axis high byte", Access: "R"},
	}
}
