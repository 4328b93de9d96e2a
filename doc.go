// Copyright (c) 2026 Peter Kral.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the luxmon telemetry server.

Luxmon collects light (lux) and sound readings from a small fleet of remote
sensor nodes and serves them back per node and per calendar date, together
with the latest device health (battery percentage, voltage) each node
reported.

# Starting the Server

The server runs with defaults out of the box:

	go run .

Or with flags:

	go run . -p 5000 -d databases -n nodes.yaml

A .env file in the working directory is loaded if present.

# Configuration

Optional settings:

  - PORT (-p): Server port (default: 5000)
  - DATA_DIR (-d): Directory holding the per-node store files (default: databases)
  - NODES_FILE (-n): YAML node descriptor list; compiled-in fleet when unset

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (ingest, query, time, HTML pages)
  - router: Route definitions using Go 1.22+ routing
  - middleware: Logging, JSON helpers
  - models: Request/response types
  - storage: Per-node SQLite stores and their manager
  - status: In-memory latest-device-health cache
  - nodes: Static node descriptor table
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
