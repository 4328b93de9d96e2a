// Copyright (c) 2026 Peter Kral.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 1760000000 is 2025-10-09 08:53:20 UTC
const (
	dayStart = int64(1760000000)
	day      = "2025-10-09"
	nextDay  = "2025-10-10"
)

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	m := NewManager(t.TempDir())
	t.Cleanup(func() { _ = m.Close() })
	return m
}

func TestOpenCreatesStoreFile(t *testing.T) {
	dir := t.TempDir()
	m := NewManager(dir)
	defer m.Close()

	_, err := m.Open("kosice")
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(dir, "kosice.db"))
	assert.NoError(t, err)
}

func TestInsertAndReadBack(t *testing.T) {
	m := newTestManager(t)
	ctx := context.Background()

	store, err := m.Open("kosice")
	require.NoError(t, err)

	batch := []Reading{
		{Timestamp: dayStart + 10, Lux: 120.5, Sound: 33.1},
		{Timestamp: dayStart + 20, Lux: 98.0, Sound: 35.7},
		{Timestamp: dayStart + 30, Lux: 64.2, Sound: 31.9},
	}
	require.NoError(t, store.InsertBatch(ctx, batch))

	got, err := store.ReadingsOn(ctx, day)
	require.NoError(t, err)
	assert.Equal(t, batch, got)
}

func TestReadingsOnFiltersByDate(t *testing.T) {
	m := newTestManager(t)
	ctx := context.Background()

	store, err := m.Open("kosice")
	require.NoError(t, err)

	require.NoError(t, store.InsertBatch(ctx, []Reading{
		{Timestamp: dayStart, Lux: 1, Sound: 1},
		{Timestamp: dayStart + 86400, Lux: 2, Sound: 2},
		{Timestamp: dayStart + 86400 + 1, Lux: 3, Sound: 3},
	}))

	today, err := store.ReadingsOn(ctx, day)
	require.NoError(t, err)
	assert.Len(t, today, 1)

	tomorrow, err := store.ReadingsOn(ctx, nextDay)
	require.NoError(t, err)
	assert.Len(t, tomorrow, 2)

	none, err := store.ReadingsOn(ctx, "2025-10-11")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestReadingsOnOrdersByTimestampThenInsertion(t *testing.T) {
	m := newTestManager(t)
	ctx := context.Background()

	store, err := m.Open("kosice")
	require.NoError(t, err)

	// Out-of-order timestamps plus a tie: the tie must come back in
	// insertion order
	require.NoError(t, store.InsertBatch(ctx, []Reading{
		{Timestamp: dayStart + 30, Lux: 3, Sound: 3},
		{Timestamp: dayStart + 10, Lux: 1, Sound: 1},
		{Timestamp: dayStart + 30, Lux: 4, Sound: 4},
		{Timestamp: dayStart + 20, Lux: 2, Sound: 2},
	}))

	got, err := store.ReadingsOn(ctx, day)
	require.NoError(t, err)
	require.Len(t, got, 4)

	assert.Equal(t, []Reading{
		{Timestamp: dayStart + 10, Lux: 1, Sound: 1},
		{Timestamp: dayStart + 20, Lux: 2, Sound: 2},
		{Timestamp: dayStart + 30, Lux: 3, Sound: 3},
		{Timestamp: dayStart + 30, Lux: 4, Sound: 4},
	}, got)
}

func TestInsertBatchEmpty(t *testing.T) {
	m := newTestManager(t)
	ctx := context.Background()

	store, err := m.Open("kosice")
	require.NoError(t, err)

	require.NoError(t, store.InsertBatch(ctx, nil))

	n, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestCount(t *testing.T) {
	m := newTestManager(t)
	ctx := context.Background()

	store, err := m.Open("kosice")
	require.NoError(t, err)

	require.NoError(t, store.InsertBatch(ctx, []Reading{
		{Timestamp: dayStart, Lux: 1, Sound: 1},
		{Timestamp: dayStart + 86400*3, Lux: 2, Sound: 2},
	}))

	n, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestBatchesAppend(t *testing.T) {
	m := newTestManager(t)
	ctx := context.Background()

	store, err := m.Open("kosice")
	require.NoError(t, err)

	require.NoError(t, store.InsertBatch(ctx, []Reading{{Timestamp: dayStart + 1, Lux: 1, Sound: 1}}))
	require.NoError(t, store.InsertBatch(ctx, []Reading{{Timestamp: dayStart + 2, Lux: 2, Sound: 2}}))

	got, err := store.ReadingsOn(ctx, day)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}
