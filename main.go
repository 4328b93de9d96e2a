// Copyright (c) 2026 Peter Kral.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/ptkral/luxmon/cliparse"
	"github.com/ptkral/luxmon/nodes"
	"github.com/ptkral/luxmon/router"
	"github.com/ptkral/luxmon/status"
	"github.com/ptkral/luxmon/storage"
)

func main() {
	// Optional .env file for local development
	_ = godotenv.Load()

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Load the node descriptor table (markers on the map page)
	fleet, err := nodes.Load(cfg.NodesFile)
	if err != nil {
		slog.Error("node descriptor load failed", "path", cfg.NodesFile, "error", err)
		os.Exit(1)
	}
	slog.Info("Node descriptors loaded", "count", len(fleet))

	// Per-node store manager; stores are created lazily on first ingest
	stores := storage.NewManager(cfg.DataDir)
	defer stores.Close()
	slog.Info("Store manager ready", "dir", cfg.DataDir)

	// Latest-health-by-node cache, lives for the process only
	cache := status.NewCache()

	// Create router
	mux := router.NewRouter(stores, cache, fleet)

	// Create server
	server := http.Server{
		Handler: mux,
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}
