// Copyright (c) 2026 Peter Kral.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package status keeps the latest device health reported by each node in
// process memory. The cache is updated on every successful ingest and read
// by the query path; it is deliberately not durable, a restart simply means
// no health fields until nodes report again.
package status
