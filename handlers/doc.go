// Copyright (c) 2026 Peter Kral.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains the HTTP request handlers for the luxmon API.

# Handler Types

Each handler is a struct holding its dependencies, created via constructor:

	ingest := handlers.NewIngestHandler(stores, cache)

  - IngestHandler: batch ingestion from sensor nodes (/receive_data)
  - QueryHandler: per-node, per-date time series (/data, /historical)
  - TimeHandler: server clock for node time sync (/time)
  - PageHandler: HTML map and graph views (/, /graph)

# Ingestion Flow

Nodes push JSON batches with parallel timestamp/sound/lux arrays plus
voltage and battery. Raw timestamps are offsets from the fleet epoch and are
shifted to absolute Unix seconds before storage. A batch is written as one
transaction into the node's own store; the node's status cache entry is
refreshed on success.

Responses are always JSON:

	{"status":"success","inserted_rows":N}
	{"status":"error","message":"missing required fields"}

# Query Flow

Viewers poll /data/{node}?date=YYYY-MM-DD. The response carries the full
day's series, the last reading as the current value, and — when the node has
reported since process start — its battery, voltage, and last-update fields.
Unknown nodes and empty dates return a fixed sentinel shape with status 200;
the query surface never errors.
*/
package handlers
