// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package app

import (
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/physic"

	"github.com/relabs-tech/sensor_console/internal/config"
	"github.com/relabs-tech/sensor_console/internal/sensors"
	"github.com/relabs-tech/sensor_console/internal/serialport"
	"github.com/relabs-tech/sensor_console/internal/telemetry"
)

// Board holds the peripheral handles of the device. It is built once at
// startup and handed to the components that use each handle.
type Board struct {
	Port      serialport.Port
	Bus       i2c.BusCloser
	Telemetry *telemetry.Publisher // nil when MQTT is not configured
}

// OpenBoard opens the console UART, the I2C bus and, if configured, the
// MQTT telemetry connection.
func OpenBoard(cfg *config.Config, log *zap.Logger) (*Board, error) {
	port, err := serialport.Open(serialport.Options{
		PortName: cfg.SerialPort,
		BaudRate: cfg.SerialBaudRate,
	})
	if err != nil {
		return nil, err
	}
	log.Info("serial port opened",
		zap.String("port", cfg.SerialPort),
		zap.Int("baud", cfg.SerialBaudRate),
		zap.String("driver", serialport.Driver),
	)

	bus, err := sensors.OpenBus(cfg.I2CBus)
	if err != nil {
		return nil, multierr.Append(err, port.Close())
	}
	speed := physic.Frequency(cfg.I2CSpeedKHz) * physic.KiloHertz
	if err := bus.SetSpeed(speed); err != nil {
		log.Warn("i2c bus speed not applied", zap.Stringer("speed", speed), zap.Error(err))
	}
	log.Info("i2c bus opened", zap.String("bus", bus.String()))

	b := &Board{Port: port, Bus: bus}

	if cfg.MQTTBroker != "" {
		pub, err := telemetry.Connect(telemetry.Options{
			Broker:     cfg.MQTTBroker,
			ClientID:   cfg.MQTTClientID,
			TopicAccel: cfg.TopicAccel,
			TopicMag:   cfg.TopicMag,
		})
		if err != nil {
			log.Warn("telemetry disabled", zap.Error(err))
		} else {
			log.Info("telemetry connected", zap.String("broker", cfg.MQTTBroker))
			b.Telemetry = pub
		}
	}

	return b, nil
}

// Close releases every handle and reports all failures.
func (b *Board) Close() error {
	var err error
	if b.Telemetry != nil {
		err = multierr.Append(err, b.Telemetry.Close())
	}
	err = multierr.Append(err, b.Bus.Close())
	return multierr.Append(err, b.Port.Close())
}
