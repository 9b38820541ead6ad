package memory

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Store owns the on-disk profile records: one indented JSON file per user
// identity under a fixed directory. Load never fails; missing or corrupt
// records fall back to defaults.
type Store struct {
	dir      string
	nickname string
	mu       sync.Mutex
}

func NewStore(dir, nickname string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("ensure memory dir: %w", err)
	}
	return &Store{dir: dir, nickname: nickname}, nil
}

func (s *Store) path(userID string) string {
	return filepath.Join(s.dir, userID+".json")
}

// Load returns the stored profile for the user, or a fresh default when no
// record exists. A corrupt record is logged and replaced by defaults.
func (s *Store) Load(userID string) Profile {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path(userID))
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("failed to read profile for %s: %v", userID, err)
		}
		return NewProfile(s.nickname)
	}

	var p Profile
	if err := json.Unmarshal(data, &p); err != nil {
		log.Printf("corrupt profile record for %s, starting fresh: %v", userID, err)
		return NewProfile(s.nickname)
	}

	// Merge defaults for keys absent at save time.
	if p.RelationshipStatus == "" {
		p.RelationshipStatus = "in a loving relationship with " + s.nickname
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now()
	}
	return p
}

// Save atomically replaces the whole record. The caller decides whether a
// failure is worth more than a log line.
func (s *Store) Save(userID string, p Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("ensure memory dir: %w", err)
	}
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal profile: %w", err)
	}
	tmp := s.path(userID) + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write profile: %w", err)
	}
	if err := os.Rename(tmp, s.path(userID)); err != nil {
		return fmt.Errorf("replace profile: %w", err)
	}
	return nil
}

// Delete removes the record entirely (explicit user-initiated reset).
// Deleting an absent record is not an error.
func (s *Store) Delete(userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path(userID)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("delete profile: %w", err)
	}
	return nil
}
