// Copyright (c) 2026 Peter Kral.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ptkral/luxmon/models"
	"github.com/ptkral/luxmon/testutil"
)

func TestTimeReturnsCurrentEpoch(t *testing.T) {
	h := NewTimeHandler()

	before := time.Now().Unix()
	w := httptest.NewRecorder()
	h.Now(w, httptest.NewRequest("GET", "/time", nil))
	after := time.Now().Unix()

	testutil.AssertStatus(t, w, 200)

	var resp models.TimeResponse
	testutil.AssertJSON(t, w, &resp)

	if resp.Time < before || resp.Time > after {
		t.Errorf("Expected time in [%d, %d], got %d", before, after, resp.Time)
	}
}

func TestTimeAcceptsPost(t *testing.T) {
	h := NewTimeHandler()

	w := httptest.NewRecorder()
	h.Now(w, httptest.NewRequest("POST", "/time", nil))

	testutil.AssertStatus(t, w, 200)
}
