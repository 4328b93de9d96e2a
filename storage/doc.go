// Copyright (c) 2026 Peter Kral.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package storage persists sensor readings, one SQLite database file per node.

# Layout

Every node gets its own store under the configured data directory, named
<node>.db. Stores hold a single append-only readings table; nothing in this
package ever updates or deletes a row. Isolation between nodes is structural:
two nodes never share a file, so concurrent ingestion into different nodes
cannot contend.

# Manager

The Manager owns the mapping from node identifier to open store handle:

	stores := storage.NewManager("databases")
	store, err := stores.Open("kosice")        // write path, creates lazily
	store, ok, err := stores.Lookup("kosice")  // read path, never creates

Node identifiers double as filenames and are validated against a restricted
alphabet before any filesystem work.

# Concurrency

The manager's handle map is mutex-guarded. Within one store, SQLite's own
locking (WAL journal, busy timeout) serializes writers, and InsertBatch wraps
each batch in a transaction so batches remain atomic under contention.
*/
package storage
