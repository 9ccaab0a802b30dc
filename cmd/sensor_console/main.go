// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

// ./cmd/sensor_console/main.go
//
// Serial command console for an LSM303AGR accelerometer/magnetometer.
// Prints the chip ids, then answers "accelerometer" and "magnetometer"
// commands typed on the UART with a fresh x/y/z reading.
//
// Any bus or serial failure halts the process with a non-zero exit status.
//
// Run:
//
//	go run ./cmd/sensor_console -config ./sensor_config.txt
package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/relabs-tech/sensor_console/internal/app"
	"github.com/relabs-tech/sensor_console/internal/config"
	"github.com/relabs-tech/sensor_console/internal/logger"
)

func main() {
	configPath := flag.String("config", "./sensor_config.txt", "path to configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: failed to load config from %s: %v\n", *configPath, err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: logger init failed: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	log.Info("starting sensor console", zap.String("config", *configPath))

	board, err := app.OpenBoard(cfg, log)
	if err != nil {
		log.Fatal("board init failed", zap.Error(err))
	}

	err = app.RunConsole(board, cfg, log)
	if cerr := board.Close(); cerr != nil {
		log.Warn("board close", zap.Error(cerr))
	}
	log.Fatal("halted", zap.Error(err))
}
