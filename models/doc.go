// Copyright (c) 2026 Peter Kral.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package models contains the wire types shared by the luxmon handlers:
// the ingest request/response pair, the query result, and the uniform
// error body. It also pins the two protocol constants every component
// agrees on, the epoch base offset and the no-data sentinel.
package models
