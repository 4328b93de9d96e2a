// Copyright (c) 2026 Peter Kral.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sync"
)

// Node identifiers become store filenames, so the allowed alphabet is locked
// down; anything else is rejected before it reaches the filesystem.
var nodeIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)

// ValidNodeID reports whether id is acceptable as a store name.
func ValidNodeID(id string) bool {
	return nodeIDPattern.MatchString(id)
}

// Manager maps node identifiers to their dedicated store, one SQLite file
// per node under dir. Stores are created lazily on first write and handles
// are cached for the life of the manager. Safe for concurrent use.
type Manager struct {
	dir string

	mu     sync.Mutex
	stores map[string]*Store
}

func NewManager(dir string) *Manager {
	return &Manager{
		dir:    dir,
		stores: make(map[string]*Store),
	}
}

func (m *Manager) path(nodeID string) string {
	return filepath.Join(m.dir, nodeID+".db")
}

// Open returns the store for nodeID, creating the file and its schema if
// this is the first time the node is seen. Calling it again for an existing
// node just returns the cached handle.
func (m *Manager) Open(nodeID string) (*Store, error) {
	if !ValidNodeID(nodeID) {
		return nil, &StoreError{Op: "open", Node: nodeID, Err: errors.New("invalid node identifier")}
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if store, ok := m.stores[nodeID]; ok {
		return store, nil
	}

	if err := os.MkdirAll(m.dir, 0o755); err != nil {
		return nil, &StoreError{Op: "open", Node: nodeID, Err: fmt.Errorf("create data dir: %w", err)}
	}

	store, err := openStore(m.path(nodeID))
	if err != nil {
		return nil, &StoreError{Op: "open", Node: nodeID, Err: err}
	}

	m.stores[nodeID] = store
	return store, nil
}

// Lookup is the read-path counterpart of Open: it never creates a store.
// The boolean reports whether a store exists for nodeID at all; querying a
// node that has never ingested is not an error.
func (m *Manager) Lookup(nodeID string) (*Store, bool, error) {
	if !ValidNodeID(nodeID) {
		return nil, false, nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if store, ok := m.stores[nodeID]; ok {
		return store, true, nil
	}

	if _, err := os.Stat(m.path(nodeID)); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, &StoreError{Op: "lookup", Node: nodeID, Err: err}
	}

	store, err := openStore(m.path(nodeID))
	if err != nil {
		return nil, false, &StoreError{Op: "lookup", Node: nodeID, Err: err}
	}

	m.stores[nodeID] = store
	return store, true, nil
}

// Close closes every cached store handle.
func (m *Manager) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	var firstErr error
	for id, store := range m.stores {
		if err := store.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
		delete(m.stores, id)
	}
	return firstErr
}
