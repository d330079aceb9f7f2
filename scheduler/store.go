// Package scheduler implements daily country-fact subscriptions: the
// /subscribe and /unsubscribe chat commands, a JSON file subscription store,
// and a ticker that delivers the daily summary through the webhook notifier.
package scheduler

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/Fritz-nvm/Telex-AI-agent/a2a"
)

// Subscription is one conversation's daily-fact subscription.
type Subscription struct {
	ContextID string                     `json:"contextId"`
	Time      string                     `json:"time"` // "HH:MM", UTC
	Country   string                     `json:"country,omitempty"`
	Push      a2a.PushNotificationConfig `json:"pushNotificationConfig"`
}

// storeFile is the on-disk shape of the subscription store.
type storeFile struct {
	Subscriptions []Subscription `json:"subscriptions"`
}

// Store persists subscriptions to a JSON file. One subscription per
// contextId; writes replace the whole file atomically.
type Store struct {
	mu   sync.Mutex
	path string
}

// NewStore creates a Store over the given file path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Load reads all subscriptions. A missing file is an empty store.
func (s *Store) Load() ([]Subscription, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadLocked()
}

// Upsert adds or replaces the subscription for its contextId.
func (s *Store) Upsert(sub Subscription) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	subs, err := s.loadLocked()
	if err != nil {
		return err
	}

	out := subs[:0]
	for _, existing := range subs {
		if existing.ContextID != sub.ContextID {
			out = append(out, existing)
		}
	}
	out = append(out, sub)

	return s.saveLocked(out)
}

// Remove deletes the subscription for contextID, reporting whether one
// existed.
func (s *Store) Remove(contextID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	subs, err := s.loadLocked()
	if err != nil {
		return false, err
	}

	out := subs[:0]
	removed := false
	for _, existing := range subs {
		if existing.ContextID == contextID {
			removed = true
			continue
		}
		out = append(out, existing)
	}

	if !removed {
		return false, nil
	}
	return true, s.saveLocked(out)
}

func (s *Store) loadLocked() ([]Subscription, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read subscription store: %w", err)
	}

	var file storeFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse subscription store: %w", err)
	}
	return file.Subscriptions, nil
}

// saveLocked rewrites the store file via a temp file + rename so readers
// never observe a partial write.
func (s *Store) saveLocked(subs []Subscription) error {
	if subs == nil {
		subs = []Subscription{}
	}

	data, err := json.MarshalIndent(storeFile{Subscriptions: subs}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal subscription store: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("failed to create subscription store directory: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write subscription store: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace subscription store: %w", err)
	}
	return nil
}
