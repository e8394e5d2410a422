// Package store implements the JSON-file backed proverb store for go-matal.
// The whole collection is the unit of read and write: every mutation
// loads the full file, transforms the in-memory slice and rewrites the
// file. A single mutex serializes these cycles so two concurrent
// mutations can not overwrite each other's effect.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/go-while/go-matal/internal/models"
)

// ErrNotFound is returned by mutation callbacks when the requested
// proverb id does not exist. Mutate passes it through without writing.
var ErrNotFound = errors.New("proverb not found")

// Store owns the backing JSON file
type Store struct {
	FilePath string
	mux      sync.Mutex
}

// NewStore creates a store for the given backing file. The file itself
// is created lazily on the first read or write.
func NewStore(filePath string) *Store {
	return &Store{FilePath: filePath}
}

// ReadAll loads and parses the backing file. A missing file is not an
// error: it is created containing an empty collection and an empty
// slice is returned. A file that exists but does not parse propagates
// the error to the caller.
func (st *Store) ReadAll() ([]models.Proverb, error) {
	st.mux.Lock()
	defer st.mux.Unlock()
	return st.readAll()
}

// WriteAll serializes the full collection and overwrites the backing file
func (st *Store) WriteAll(proverbs []models.Proverb) error {
	st.mux.Lock()
	defer st.mux.Unlock()
	return st.writeAll(proverbs)
}

// Mutate runs a full read-transform-write cycle under the store mutex.
// If fn returns an error nothing is written and the error is returned
// unchanged, so callers can signal ErrNotFound without touching the file.
func (st *Store) Mutate(fn func(proverbs []models.Proverb) ([]models.Proverb, error)) error {
	st.mux.Lock()
	defer st.mux.Unlock()
	proverbs, err := st.readAll()
	if err != nil {
		return err
	}
	updated, err := fn(proverbs)
	if err != nil {
		return err
	}
	return st.writeAll(updated)
}

// Initialize seeds an empty store with the example records and persists
// them. Called once at process start. A store that already holds records
// is left untouched.
func (st *Store) Initialize() error {
	st.mux.Lock()
	defer st.mux.Unlock()
	proverbs, err := st.readAll()
	if err != nil {
		return err
	}
	if len(proverbs) > 0 {
		return nil
	}
	return st.writeAll(SeedProverbs())
}

// readAll must be called with st.mux held
func (st *Store) readAll() ([]models.Proverb, error) {
	data, err := os.ReadFile(st.FilePath)
	if err != nil {
		if os.IsNotExist(err) {
			// self-healing bootstrap: create the file with an empty collection
			if werr := st.writeAll(nil); werr != nil {
				return nil, werr
			}
			return []models.Proverb{}, nil
		}
		return nil, fmt.Errorf("failed to read proverbs file %s: %w", st.FilePath, err)
	}
	if len(data) == 0 {
		return []models.Proverb{}, nil
	}
	var proverbs []models.Proverb
	if err := json.Unmarshal(data, &proverbs); err != nil {
		return nil, fmt.Errorf("failed to parse proverbs file %s: %w", st.FilePath, err)
	}
	return proverbs, nil
}

// writeAll must be called with st.mux held
func (st *Store) writeAll(proverbs []models.Proverb) error {
	if proverbs == nil {
		// keep the file as "[]" instead of "null"
		proverbs = []models.Proverb{}
	}
	data, err := json.MarshalIndent(proverbs, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize proverbs: %w", err)
	}
	if dir := filepath.Dir(st.FilePath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create data dir %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(st.FilePath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write proverbs file %s: %w", st.FilePath, err)
	}
	return nil
}

// FindProverb returns a pointer to the first proverb with the given id,
// or nil if no proverb matches
func FindProverb(proverbs []models.Proverb, id int) *models.Proverb {
	for i := range proverbs {
		if proverbs[i].ID == id {
			return &proverbs[i]
		}
	}
	return nil
}

// NextProverbID returns max(existing ids)+1, or 1 for an empty
// collection. Gaps left by deleted records are never reused.
func NextProverbID(proverbs []models.Proverb) int {
	maxID := 0
	for i := range proverbs {
		if proverbs[i].ID > maxID {
			maxID = proverbs[i].ID
		}
	}
	return maxID + 1
}
