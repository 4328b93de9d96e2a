// Copyright (c) 2026 Peter Kral.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package middleware provides request logging and the JSON request/response
// helpers shared by all handlers.
package middleware
