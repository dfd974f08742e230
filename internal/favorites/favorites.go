// Package favorites keeps the user's favorited titles, persisted
// wholesale through a storage.Store on every mutation.
package favorites

import (
	"sort"

	"github.com/GJFR71/cinebusca/internal/storage"
)

// StorageKey is the entry the mapping is persisted under.
const StorageKey = "favorites"

// Record is the minimal persisted representation of a favorited title.
type Record struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Year   string `json:"year"`
	Poster string `json:"poster"`
	Type   string `json:"type"`
}

// Store owns the id → Record mapping. Inserting an existing id
// overwrites, so uniqueness comes from the mapping itself.
type Store struct {
	kv    storage.Store
	items map[string]Record
}

// NewStore loads any persisted mapping from kv.
func NewStore(kv storage.Store) *Store {
	s := &Store{kv: kv, items: make(map[string]Record)}
	s.kv.Get(StorageKey, &s.items)
	if s.items == nil {
		s.items = make(map[string]Record)
	}
	// Discard entries whose key disagrees with the record, e.g. after
	// a hand-edited data file.
	for id, rec := range s.items {
		if rec.ID != id {
			delete(s.items, id)
		}
	}
	return s
}

// Toggle flips membership for rec and reports whether it is now a
// favorite. Calling it twice with the same record restores the
// original state.
func (s *Store) Toggle(rec Record) bool {
	if _, ok := s.items[rec.ID]; ok {
		delete(s.items, rec.ID)
		s.persist()
		return false
	}
	s.items[rec.ID] = rec
	s.persist()
	return true
}

// Remove deletes id from the mapping if present.
func (s *Store) Remove(id string) {
	if _, ok := s.items[id]; !ok {
		return
	}
	delete(s.items, id)
	s.persist()
}

// Has reports membership.
func (s *Store) Has(id string) bool {
	_, ok := s.items[id]
	return ok
}

// Len is the number of favorited titles.
func (s *Store) Len() int {
	return len(s.items)
}

// All returns the records sorted by title for stable rendering.
func (s *Store) All() []Record {
	out := make([]Record, 0, len(s.items))
	for _, rec := range s.items {
		out = append(out, rec)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Title != out[j].Title {
			return out[i].Title < out[j].Title
		}
		return out[i].ID < out[j].ID
	})
	return out
}

func (s *Store) persist() {
	s.kv.Set(StorageKey, s.items)
}
