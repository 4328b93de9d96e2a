// Copyright (c) 2026 Peter Kral.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package status

import "sync"

// Status is the most recent device health a node reported: battery
// percentage, supply voltage, and the server time the report arrived.
type Status struct {
	Battery    float64
	Voltage    float64
	LastUpdate int64
}

// Cache holds the latest Status per node. It is process-scoped shared state:
// empty at startup, entries only ever overwritten, nothing persisted and
// nothing evicted. Safe for concurrent use.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]Status
}

func NewCache() *Cache {
	return &Cache{entries: make(map[string]Status)}
}

// Set replaces the node's entry as a whole; readers never observe a
// half-updated tuple.
func (c *Cache) Set(nodeID string, battery, voltage float64, lastUpdate int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[nodeID] = Status{
		Battery:    battery,
		Voltage:    voltage,
		LastUpdate: lastUpdate,
	}
}

// Get returns the node's latest status and whether one exists.
func (c *Cache) Get(nodeID string) (Status, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	st, ok := c.entries[nodeID]
	return st, ok
}
