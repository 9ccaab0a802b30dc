// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package app

import (
	"bufio"
	"fmt"

	"go.uber.org/zap"

	"github.com/relabs-tech/sensor_console/internal/config"
	"github.com/relabs-tech/sensor_console/internal/console"
	"github.com/relabs-tech/sensor_console/internal/sensors"
)

// RunConsole reports the chip ids on the console, configures the sensor and
// then serves commands. It only returns on a fatal serial or bus error.
func RunConsole(b *Board, cfg *config.Config, log *zap.Logger) error {
	gw := sensors.NewLSM303AGR(b.Bus)
	out := console.NewResponseWriter(b.Port)

	accelID, magID, err := gw.ChipIDs()
	if err != nil {
		return fmt.Errorf("read chip ids: %w", err)
	}
	if err := out.ChipIDs(accelID, magID); err != nil {
		return err
	}
	if accelID != sensors.AccelChipID || magID != sensors.MagChipID {
		log.Warn("unexpected chip ids",
			zap.Uint8("accel", accelID),
			zap.Uint8("mag", magID),
		)
	}

	opts := sensors.Opts{AccelODRHz: cfg.AccelODRHz, MagODRHz: cfg.MagODRHz}
	if err := gw.Init(opts); err != nil {
		return fmt.Errorf("sensor init: %w", err)
	}
	log.Info("sensor configured",
		zap.Int("accel_odr_hz", opts.AccelODRHz),
		zap.Int("mag_odr_hz", opts.MagODRHz),
	)

	loopOpts := console.Options{
		LineCapacity: cfg.LineCapacity,
		PollLimit:    cfg.PollLimit,
	}
	if b.Telemetry != nil {
		loopOpts.Sink = b.Telemetry
	}

	loop := console.NewLoop(bufio.NewReader(b.Port), b.Port, gw, loopOpts, log)
	return loop.Run()
}
