// Package testutil provides testing utilities.
package testutil

import (
	"context"
	"sync"

	"taskbot/internal/storage"
	"taskbot/internal/task"
)

// FakeStore is an in-memory implementation of storage.Store for testing.
// Saved tasks are snapshotted as records so later mutations of the live
// list don't leak into the snapshot.
type FakeStore struct {
	mu      sync.Mutex
	records []storage.Record
	saves   int

	// Error injection for testing
	SaveErr  error
	LoadErr  error
	CloseErr error
}

// NewFakeStore creates an empty fake store.
func NewFakeStore() *FakeStore {
	return &FakeStore{}
}

// Seed replaces the stored snapshot with the given tasks.
func (f *FakeStore) Seed(tasks ...task.Task) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.records = storage.Encode(tasks)
}

// Save implements storage.Store.
func (f *FakeStore) Save(ctx context.Context, tasks []task.Task) error {
	if f.SaveErr != nil {
		return f.SaveErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.records = storage.Encode(tasks)
	f.saves++
	return nil
}

// Load implements storage.Store.
func (f *FakeStore) Load(ctx context.Context) ([]task.Task, error) {
	if f.LoadErr != nil {
		return nil, f.LoadErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return storage.Decode(f.records)
}

// Close implements storage.Store.
func (f *FakeStore) Close() error {
	return f.CloseErr
}

// Saves returns how many times Save succeeded.
func (f *FakeStore) Saves() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.saves
}

// Saved returns the records from the most recent successful Save.
func (f *FakeStore) Saved() []storage.Record {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]storage.Record, len(f.records))
	copy(out, f.records)
	return out
}
