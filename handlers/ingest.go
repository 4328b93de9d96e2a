// Copyright (c) 2026 Peter Kral.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/ptkral/luxmon/middleware"
	"github.com/ptkral/luxmon/models"
	"github.com/ptkral/luxmon/status"
	"github.com/ptkral/luxmon/storage"
)

type IngestHandler struct {
	stores *storage.Manager
	cache  *status.Cache
}

func NewIngestHandler(stores *storage.Manager, cache *status.Cache) *IngestHandler {
	return &IngestHandler{stores: stores, cache: cache}
}

// ReceiveData handles /receive_data
//
// A batch carries parallel timestamp/sound/lux arrays plus the node's device
// health. All rows of a batch are written in one transaction; on success the
// status cache picks up the health fields. Any failure, validation or
// storage, answers 400 with the uniform error body — a misbehaving node must
// never take the server down.
func (h *IngestHandler) ReceiveData(w http.ResponseWriter, r *http.Request) {
	var req models.IngestRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if err := validateIngest(&req); err != nil {
		slog.Warn("ingest rejected", "error", err)
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	nodeName := *req.NodeName

	// Arrays are consumed in lockstep; unequal lengths truncate to the
	// shortest prefix. Explicit policy, not an accident: nodes flushing a
	// partially written sample buffer still get the aligned part stored.
	n := min(len(req.Timestamp), len(req.Sound), len(req.Lux))
	readings := make([]storage.Reading, 0, n)
	for i := 0; i < n; i++ {
		readings = append(readings, storage.Reading{
			// Nodes report seconds since the fleet epoch, not Unix time
			Timestamp: int64(req.Timestamp[i]) + models.EpochBase,
			Lux:       req.Lux[i],
			Sound:     req.Sound[i],
		})
	}

	store, err := h.stores.Open(nodeName)
	if err != nil {
		slog.Error("failed to open store", "node", nodeName, "error", err)
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := store.InsertBatch(r.Context(), readings); err != nil {
		slog.Error("failed to insert batch", "node", nodeName, "rows", n, "error", err)
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	// Health metadata is observed at completion time, not node-supplied
	h.cache.Set(nodeName, *req.Battery, *req.Voltage, time.Now().Unix())

	slog.Info("batch ingested", "node", nodeName, "rows", n,
		"battery", *req.Battery, "voltage", *req.Voltage)

	middleware.JSONResponse(w, http.StatusOK, models.IngestResponse{
		Status:       "success",
		InsertedRows: n,
	})
}

// validateIngest enforces the required-fields contract: every field present
// and non-null, before any storage work happens.
func validateIngest(req *models.IngestRequest) error {
	if req.NodeName == nil || req.Voltage == nil || req.Battery == nil ||
		req.Timestamp == nil || req.Sound == nil || req.Lux == nil {
		return &models.ValidationError{Reason: "missing required fields"}
	}
	if !storage.ValidNodeID(*req.NodeName) {
		return &models.ValidationError{Reason: "invalid node name"}
	}
	return nil
}
