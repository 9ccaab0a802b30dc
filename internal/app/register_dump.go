package app

import (
	"fmt"
	"io"

	"github.com/relabs-tech/sensor_console/internal/imu"
	"github.com/relabs-tech/sensor_console/internal/sensors"
)

// RegisterReader reads one register of a sensor die.
type RegisterReader interface {
	ReadRegister(group imu.AxisGroup, reg byte) (byte, error)
}

// RegisterValue is one register with its live value.
type RegisterValue struct {
	Group       string `json:"group"`
	Address     string `json:"addr"`  // hex, e.g. "0x0F"
	Value       string `json:"value"` // hex, e.g. "0x33"
	Name        string `json:"name"`
	Access      string `json:"access"`
	Description string `json:"description"`

	raw byte
}

// ReadRegisters reads every readable register of both dies.
func ReadRegisters(dev RegisterReader) ([]RegisterValue, error) {
	var out []RegisterValue
	for _, group := range []imu.AxisGroup{imu.Accelerometer, imu.Magnetometer} {
		for _, reg := range sensors.RegisterMap(group) {
			if !reg.Readable() {
				continue
			}
			v, err := dev.ReadRegister(group, reg.Address)
			if err != nil {
				return nil, fmt.Errorf("%s %s: %w", group, reg.Name, err)
			}
			out = append(out, RegisterValue{
				Group:       group.String(),
				Address:     fmt.Sprintf("0x%02X", reg.Address),
				Value:       fmt.Sprintf("0x%02X", v),
				Name:        reg.Name,
				Access:      reg.Access,
				Description: reg.Description,
				raw:         v,
			})
		}
	}
	return out, nil
}

// DumpRegisters prints every readable register of both dies with its live value.
func DumpRegisters(w io.Writer, dev RegisterReader) error {
	regs, err := ReadRegisters(dev)
	if err != nil {
		return err
	}

	group := ""
	for _, r := range regs {
		if r.Group != group {
			group = r.Group
			fmt.Fprintf(w, "== %s ==\n", group)
		}
		fmt.Fprintf(w, "%s %-18s %s %08b  %s\n", r.Address, r.Name, r.Value, r.raw, r.Description)
	}
	return nil
}
