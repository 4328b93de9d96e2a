// Copyright (c) 2026 Peter Kral.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/ptkral/luxmon/handlers"
	"github.com/ptkral/luxmon/middleware"
	"github.com/ptkral/luxmon/nodes"
	"github.com/ptkral/luxmon/status"
	"github.com/ptkral/luxmon/storage"
)

func NewRouter(stores *storage.Manager, cache *status.Cache, fleet []nodes.Node) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	ingestHandler := handlers.NewIngestHandler(stores, cache)
	queryHandler := handlers.NewQueryHandler(stores, cache)
	timeHandler := handlers.NewTimeHandler()
	pageHandler := handlers.NewPageHandler(fleet)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Node-facing endpoints; deployed firmware uses both GET and POST,
	// so these two patterns stay method-agnostic
	mux.HandleFunc("/time", middleware.WithLogging(timeHandler.Now))
	mux.HandleFunc("/receive_data", middleware.WithLogging(ingestHandler.ReceiveData))

	// Viewer endpoints
	mux.HandleFunc("GET /data/{node}", middleware.WithLogging(queryHandler.NodeData))
	mux.HandleFunc("GET /historical/{node}", middleware.WithLogging(queryHandler.NodeData))

	// HTML views
	mux.HandleFunc("GET /graph/{node}", middleware.WithLogging(pageHandler.Graph))
	mux.HandleFunc("GET /{$}", middleware.WithLogging(pageHandler.Index))

	return mux
}
