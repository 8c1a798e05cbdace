// Package favorites persists the user's pinned entries. Pinned titles and
// shortcuts sort first in the overlay; the file is rewritten wholesale on
// every mutation so state survives crashes.
package favorites

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
)

type fileFormat struct {
	Knowledge []string `json:"knowledge"`
	Shortcuts []string `json:"shortcuts"`
}

// Store keeps two ordered sets, most-recently-pinned first. Each value
// appears at most once; toggling removes it if present, else inserts at the
// front. All mutations originate from the presentation loop, but the store
// is mutex-guarded so reads from the core goroutine are safe.
type Store struct {
	mu        sync.RWMutex
	path      string
	log       *zap.Logger
	knowledge []string
	shortcuts []string
}

func NewStore(path string, log *zap.Logger) *Store {
	return &Store{path: path, log: log}
}

// Load reads the favorites file. A missing or malformed file resolves to
// empty favorites, logged, never fatal.
func (s *Store) Load() error {
	data, err := os.ReadFile(s.path)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.knowledge = nil
	s.shortcuts = nil

	if err != nil {
		if !os.IsNotExist(err) {
			s.log.Warn("favorites file unreadable, starting empty",
				zap.String("path", s.path), zap.Error(err))
		}
		return err
	}

	var ff fileFormat
	if err := json.Unmarshal(data, &ff); err != nil {
		s.log.Warn("favorites file malformed, starting empty",
			zap.String("path", s.path), zap.Error(err))
		return err
	}

	s.knowledge = dedupe(ff.Knowledge)
	s.shortcuts = dedupe(ff.Shortcuts)
	return nil
}

// ToggleKnowledge pins or unpins a knowledge title and persists the change.
// Returns the new pinned state.
func (s *Store) ToggleKnowledge(title string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var pinned bool
	s.knowledge, pinned = toggle(s.knowledge, title)
	return pinned, s.persistLocked()
}

// ToggleShortcut pins or unpins a shortcut string and persists the change.
func (s *Store) ToggleShortcut(shortcut string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var pinned bool
	s.shortcuts, pinned = toggle(s.shortcuts, shortcut)
	return pinned, s.persistLocked()
}

// IsKnowledgePinned reports whether the title is currently pinned.
func (s *Store) IsKnowledgePinned(title string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return contains(s.knowledge, title)
}

// IsShortcutPinned reports whether the shortcut is currently pinned.
func (s *Store) IsShortcutPinned(shortcut string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return contains(s.shortcuts, shortcut)
}

// Knowledge returns pinned knowledge titles, most recent first.
func (s *Store) Knowledge() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, len(s.knowledge))
	copy(out, s.knowledge)
	return out
}

// Shortcuts returns pinned shortcut strings, most recent first.
func (s *Store) Shortcuts() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, len(s.shortcuts))
	copy(out, s.shortcuts)
	return out
}

// persistLocked rewrites the favorites file. Write goes through a temp file
// plus rename so a crash mid-write never leaves a truncated file.
func (s *Store) persistLocked() error {
	ff := fileFormat{Knowledge: s.knowledge, Shortcuts: s.shortcuts}
	// JSON must always carry arrays, not null
	if ff.Knowledge == nil {
		ff.Knowledge = []string{}
	}
	if ff.Shortcuts == nil {
		ff.Shortcuts = []string{}
	}

	data, err := json.MarshalIndent(ff, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding favorites: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("creating favorites directory: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0600); err != nil {
		return fmt.Errorf("writing favorites: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replacing favorites: %w", err)
	}
	return nil
}

func toggle(set []string, value string) ([]string, bool) {
	for i, v := range set {
		if v == value {
			return append(set[:i:i], set[i+1:]...), false
		}
	}
	return append([]string{value}, set...), true
}

func contains(set []string, value string) bool {
	for _, v := range set {
		if v == value {
			return true
		}
	}
	return false
}

func dedupe(in []string) []string {
	seen := make(map[string]bool, len(in))
	var out []string
	for _, v := range in {
		if seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}
