// Copyright (c) 2026 Peter Kral.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package router wires the HTTP surface using Go 1.22+ ServeMux patterns.
// The node-facing routes (/time, /receive_data) accept any method because
// fielded firmware mixes GET and POST; the viewer routes are GET only.
package router
