// ABOUTME: Record store for the four journal record kinds over a KV backend
// ABOUTME: Reads fail open to fresh defaults; writes are last-write-wins
package store

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/oniromante/oniromante/internal/models"
)

// Store owns the serialized representation of all records. Reads return
// in-memory copies; every mutation is a full read-modify-write of the
// record. Single-process by design: writes are last-write-wins with no
// concurrent-writer detection.
type Store struct {
	kv KV
	mu sync.Mutex // serializes read-modify-write of the dream collection
}

// New creates a record store over the given backend.
func New(kv KV) *Store {
	return &Store{kv: kv}
}

// getJSON decodes the value at key into dest. Returns false when the key is
// absent or the stored text is malformed; corrupt records are deliberately
// indistinguishable from missing ones.
func (s *Store) getJSON(key string, dest interface{}) bool {
	data, err := s.kv.Get(key)
	if err != nil || data == nil {
		return false
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return false
	}
	return true
}

func (s *Store) putJSON(key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal record: %w", err)
	}
	if err := s.kv.Set(key, data); err != nil {
		return fmt.Errorf("failed to write record: %w", err)
	}
	return nil
}

// GetStatus returns the UserStatus for a date, creating the default record
// in memory when none is stored.
func (s *Store) GetStatus(date string) *models.UserStatus {
	var status models.UserStatus
	if !s.getJSON(StatusKey(date), &status) || status.Date != date {
		return models.NewUserStatus(date)
	}
	return &status
}

// PutStatus persists a UserStatus under its date key.
func (s *Store) PutStatus(status *models.UserStatus) error {
	return s.putJSON(StatusKey(status.Date), status)
}

// GetInsights returns the cached DailyInsights for a date, or nil when none
// has been recorded for that day.
func (s *Store) GetInsights(date string) *models.DailyInsights {
	var insights models.DailyInsights
	if !s.getJSON(InsightsKey(date), &insights) {
		return nil
	}
	return &insights
}

// PutInsights records the DailyInsights for a date.
func (s *Store) PutInsights(date string, insights *models.DailyInsights) error {
	return s.putJSON(InsightsKey(date), insights)
}

// GetLucid returns the LucidProgress for a date, creating the zeroed record
// in memory when none is stored.
func (s *Store) GetLucid(date string) *models.LucidProgress {
	var progress models.LucidProgress
	if !s.getJSON(LucidKey(date), &progress) || progress.Date != date {
		return models.NewLucidProgress(date)
	}
	return &progress
}

// PutLucid persists a LucidProgress under its date key.
func (s *Store) PutLucid(progress *models.LucidProgress) error {
	return s.putJSON(LucidKey(progress.Date), progress)
}

// ListDreams returns the full dream collection, newest first. A missing or
// corrupt collection reads as empty.
func (s *Store) ListDreams() []models.DreamEntry {
	var dreams []models.DreamEntry
	if !s.getJSON(DreamsKey(), &dreams) {
		return []models.DreamEntry{}
	}
	return dreams
}

// SaveDream prepends an entry to the collection so iteration order stays
// newest-first.
func (s *Store) SaveDream(entry *models.DreamEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	dreams := s.ListDreams()
	updated := make([]models.DreamEntry, 0, len(dreams)+1)
	updated = append(updated, *entry)
	updated = append(updated, dreams...)
	return s.putJSON(DreamsKey(), updated)
}

// DeleteDream removes the entry with the given id. Unknown ids are a no-op.
func (s *Store) DeleteDream(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	dreams := s.ListDreams()
	updated := dreams[:0]
	for _, d := range dreams {
		if d.ID != id {
			updated = append(updated, d)
		}
	}
	return s.putJSON(DreamsKey(), updated)
}

// FindDream returns the entry with the given id, or nil.
func (s *Store) FindDream(id string) *models.DreamEntry {
	for _, d := range s.ListDreams() {
		if d.ID == id {
			entry := d
			return &entry
		}
	}
	return nil
}
