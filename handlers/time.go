// Copyright (c) 2026 Peter Kral.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"time"

	"github.com/ptkral/luxmon/middleware"
	"github.com/ptkral/luxmon/models"
)

type TimeHandler struct{}

func NewTimeHandler() *TimeHandler {
	return &TimeHandler{}
}

// Now handles /time
// Nodes have no RTC; they fetch server time once and report offsets from
// the fleet epoch afterwards.
func (h *TimeHandler) Now(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, models.TimeResponse{
		Time: time.Now().Unix(),
	})
}
