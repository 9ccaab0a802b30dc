// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

// ./cmd/register_debug/main.go
//
// Dumps every readable LSM303AGR register once to stdout, or with -http
// serves a websocket at /ws that pushes a fresh dump every -interval.
//
// Run:
//
//	go run ./cmd/register_debug -config ./sensor_config.txt
//	go run ./cmd/register_debug -http :8081 -interval 500ms
package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/relabs-tech/sensor_console/internal/app"
	"github.com/relabs-tech/sensor_console/internal/config"
	"github.com/relabs-tech/sensor_console/internal/logger"
	"github.com/relabs-tech/sensor_console/internal/sensors"
)

func main() {
	configPath := flag.String("config", "./sensor_config.txt", "path to configuration file")
	httpAddr := flag.String("http", "", "serve the live register view on this address instead of printing once")
	interval := flag.Duration("interval", time.Second, "refresh interval of the live register view")
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

	log.Info("register_debug: starting", zap.String("bus", cfg.I2CBus))

	bus, err := sensors.OpenBus(cfg.I2CBus)
	if err != nil {
		log.Fatal("register_debug: open bus", zap.Error(err))
	}
	defer bus.Close()

	dev := sensors.NewLSM303AGR(bus)

	if *httpAddr == "" {
		if err := app.DumpRegisters(os.Stdout, dev); err != nil {
			log.Fatal("register_debug: dump", zap.Error(err))
		}
		return
	}

	http.Handle("/ws", app.NewRegisterDumpHandler(dev, *interval, log))
	log.Info("register_debug: serving live view",
		zap.String("addr", *httpAddr),
		zap.String("path", "/ws"),
		zap.Duration("interval", *interval),
	)
	if err := http.ListenAndServe(*httpAddr, nil); err != nil {
		log.Fatal("register_debug: http server", zap.Error(err))
	}
}
