// Package flatstore is a file-backed document store used when no embedded
// SQL engine can be opened. It keeps named JSON lists in a single snapshot
// file, rewritten after every mutation, and hands out timestamp-derived
// ids that stay unique and insertion-ordered.
package flatstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"pixelpantry/domain"
)

const (
	ListPantryItems = "pantry_items"
	ListRecipes     = "recipes"
	ListMealPlans   = "meal_plans"
)

// snapshot is the on-disk layout. LastID survives restarts so ids never
// repeat even when several are handed out within the same millisecond.
type snapshot struct {
	Lists  map[string]json.RawMessage `json:"lists"`
	LastID int64                      `json:"last_id"`
}

type Store struct {
	mu          sync.Mutex
	path        string
	lists       map[string]json.RawMessage
	lastID      int64
	initialized bool
}

func New(path string) *Store {
	return &Store{path: path}
}

// Init loads the snapshot file, creating it with three empty lists when
// absent. It is idempotent; calling it again on a ready store is a no-op.
func (s *Store) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("flatstore: create data directory: %w", err)
	}

	data, err := os.ReadFile(s.path)
	switch {
	case os.IsNotExist(err):
		s.lists = map[string]json.RawMessage{}
	case err != nil:
		return fmt.Errorf("flatstore: open snapshot: %w", err)
	default:
		var snap snapshot
		if err := json.Unmarshal(data, &snap); err != nil {
			return fmt.Errorf("flatstore: corrupt snapshot: %w", err)
		}
		s.lists = snap.Lists
		s.lastID = snap.LastID
		if s.lists == nil {
			s.lists = map[string]json.RawMessage{}
		}
	}

	for _, name := range []string{ListPantryItems, ListRecipes, ListMealPlans} {
		if _, ok := s.lists[name]; !ok {
			s.lists[name] = json.RawMessage("[]")
		}
	}

	if err := s.persistLocked(); err != nil {
		return err
	}
	s.initialized = true
	return nil
}

// NextID returns a unique, monotonically increasing identifier derived
// from the current wall clock.
func (s *Store) NextID() (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return 0, domain.ErrStoreNotInitialized
	}
	id := time.Now().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return id, nil
}

// Read unmarshals the named list into out, which must be a pointer to a
// slice.
func (s *Store) Read(name string, out interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return domain.ErrStoreNotInitialized
	}
	raw, ok := s.lists[name]
	if !ok {
		return fmt.Errorf("flatstore: unknown list %q", name)
	}
	return json.Unmarshal(raw, out)
}

// Write replaces the named list and persists the snapshot.
func (s *Store) Write(name string, v interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return domain.ErrStoreNotInitialized
	}
	if _, ok := s.lists[name]; !ok {
		return fmt.Errorf("flatstore: unknown list %q", name)
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("flatstore: encode list %q: %w", name, err)
	}
	s.lists[name] = raw
	return s.persistLocked()
}

func (s *Store) persistLocked() error {
	snap := snapshot{Lists: s.lists, LastID: s.lastID}
	data, err := json.Marshal(&snap)
	if err != nil {
		return fmt.Errorf("flatstore: encode snapshot: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("flatstore: write snapshot: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("flatstore: replace snapshot: %w", err)
	}
	return nil
}
