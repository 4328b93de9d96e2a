// Copyright (c) 2026 Peter Kral.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/ptkral/luxmon/middleware"
	"github.com/ptkral/luxmon/models"
	"github.com/ptkral/luxmon/status"
	"github.com/ptkral/luxmon/storage"
)

type QueryHandler struct {
	stores *storage.Manager
	cache  *status.Cache
}

func NewQueryHandler(stores *storage.Manager, cache *status.Cache) *QueryHandler {
	return &QueryHandler{stores: stores, cache: cache}
}

// NodeData handles GET /data/{node} and GET /historical/{node}
//
// The two paths are separate so the live map and the historical view can be
// cached and evolved independently; the behavior is identical. The endpoint
// always answers 200: a node that has never reported, or a date with no
// rows, yields the empty-result sentinel rather than an error, so the
// polling front end never has to handle failures.
func (h *QueryHandler) NodeData(w http.ResponseWriter, r *http.Request) {
	nodeID := r.PathValue("node")

	date := r.URL.Query().Get("date")
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	middleware.JSONResponse(w, http.StatusOK, h.query(r.Context(), nodeID, date))
}

func (h *QueryHandler) query(ctx context.Context, nodeID, date string) models.QueryResult {
	store, ok, err := h.stores.Lookup(nodeID)
	if err != nil {
		slog.Error("store lookup failed", "node", nodeID, "error", err)
		return models.EmptyQueryResult()
	}
	if !ok {
		return models.EmptyQueryResult()
	}

	readings, err := store.ReadingsOn(ctx, date)
	if err != nil {
		slog.Error("readings query failed", "node", nodeID, "date", date, "error", err)
		return models.EmptyQueryResult()
	}
	if len(readings) == 0 {
		return models.EmptyQueryResult()
	}

	timestamps := make([]int64, len(readings))
	light := make([]float64, len(readings))
	loudness := make([]float64, len(readings))
	for i, r := range readings {
		timestamps[i] = r.Timestamp
		light[i] = r.Lux
		loudness[i] = r.Sound
	}

	// Rows arrive timestamp-ascending, so the last one is "current"
	last := readings[len(readings)-1]

	result := models.QueryResult{
		CurrentLight:    &last.Lux,
		CurrentLoudness: &last.Sound,
		Timestamps:      timestamps,
		LightIntensity:  light,
		Loudness:        loudness,
	}

	if st, ok := h.cache.Get(nodeID); ok {
		result.Battery = &st.Battery
		result.Voltage = &st.Voltage
		result.LastUpdate = &st.LastUpdate
	}

	return result
}
