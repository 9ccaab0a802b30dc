// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package app

import (
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// RegisterSnapshot is one websocket message of the register view.
type RegisterSnapshot struct {
	Type      string          `json:"type"` // "register_data" or "error"
	Timestamp string          `json:"timestamp"`
	Registers []RegisterValue `json:"registers,omitempty"`
	Message   string          `json:"message,omitempty"`
}

// RegisterDumpHandler pushes a fresh register snapshot to each websocket
// client every interval until the client goes away.
type RegisterDumpHandler struct {
	mu       sync.Mutex // one bus transaction sequence at a time
	dev      RegisterReader
	interval time.Duration
	log      *zap.Logger
}

// NewRegisterDumpHandler serves snapshots of dev.
func NewRegisterDumpHandler(dev RegisterReader, interval time.Duration, log *zap.Logger) *RegisterDumpHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &RegisterDumpHandler{dev: dev, interval: interval, log: log}
}

func (h *RegisterDumpHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warn("register_debug: websocket upgrade error", zap.Error(err))
		return
	}
	defer conn.Close()

	// Drain client frames so a close is noticed.
	gone := make(chan struct{})
	go func() {
		defer close(gone)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()

	for {
		if err := conn.WriteJSON(h.snapshot()); err != nil {
			h.log.Debug("register_debug: client write failed", zap.Error(err))
			return
		}
		select {
		case <-gone:
			return
		case <-ticker.C:
		}
	}
}

func (h *RegisterDumpHandler) snapshot() RegisterSnapshot {
	h.mu.Lock()
	defer h.mu.Unlock()

	now := time.Now().UTC().Format(time.RFC3339)
	regs, err := ReadRegisters(h.dev)
	if err != nil {
		h.log.Warn("register_debug: read failed", zap.Error(err))
		return RegisterSnapshot{Type: "error", Timestamp: now, Message: err.Error()}
	}
	return RegisterSnapshot{Type: "register_data", Timestamp: now, Registers: regs}
}
