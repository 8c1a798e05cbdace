// Package knowledge loads and indexes the static reference corpus: knowledge
// entries keyed by language or app name, and keyboard shortcuts keyed by app
// name. Both stores are read-mostly; a missing or malformed file resolves to
// an empty store and is logged, never fatal.
package knowledge

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/Jacquart08/ultimate-overlay/internal/models"
)

// Store holds knowledge entries keyed by language or app name. Key order from
// the JSON file is preserved so substring fallback scans are deterministic.
type Store struct {
	mu      sync.RWMutex
	path    string
	log     *zap.Logger
	keys    []string
	entries map[string][]models.KnowledgeEntry
}

func NewStore(path string, log *zap.Logger) *Store {
	return &Store{
		path:    path,
		log:     log,
		entries: make(map[string][]models.KnowledgeEntry),
	}
}

// Load reads the knowledge file. Errors leave the store empty and are
// returned so callers like `overlay validate` can surface them; the overlay
// itself just logs and continues.
func (s *Store) Load() error {
	keys, raw, err := readOrderedObject(s.path)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.keys = nil
	s.entries = make(map[string][]models.KnowledgeEntry)

	if err != nil {
		s.log.Warn("knowledge file unavailable, using empty store",
			zap.String("path", s.path), zap.Error(err))
		return err
	}

	for _, key := range keys {
		var list []models.KnowledgeEntry
		if err := json.Unmarshal(raw[key], &list); err != nil {
			s.log.Warn("skipping malformed knowledge section",
				zap.String("key", key), zap.Error(err))
			continue
		}
		s.keys = append(s.keys, key)
		s.entries[key] = list
	}

	s.log.Info("knowledge loaded",
		zap.String("path", s.path), zap.Int("sections", len(s.keys)))
	return nil
}

// EntriesFor returns the entries recorded for the given language or app key.
func (s *Store) EntriesFor(key string) ([]models.KnowledgeEntry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	list, ok := s.entries[key]
	if !ok {
		return nil, false
	}
	out := make([]models.KnowledgeEntry, len(list))
	copy(out, list)
	return out, true
}

// MatchTitle scans the store keys in file order for the first key that is a
// case-insensitive substring of the window title.
func (s *Store) MatchTitle(title string) (string, []models.KnowledgeEntry, bool) {
	lower := strings.ToLower(title)

	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, key := range s.keys {
		if strings.Contains(lower, strings.ToLower(key)) {
			list := s.entries[key]
			out := make([]models.KnowledgeEntry, len(list))
			copy(out, list)
			return key, out, true
		}
	}
	return "", nil, false
}

// Keys returns the section keys in file order.
func (s *Store) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, len(s.keys))
	copy(out, s.keys)
	return out
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.keys)
}

// readOrderedObject decodes a top-level JSON object preserving key order,
// which encoding/json maps discard.
func readOrderedObject(path string) ([]string, map[string]json.RawMessage, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return nil, nil, fmt.Errorf("reading object start: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, nil, fmt.Errorf("expected top-level JSON object, got %v", tok)
	}

	var keys []string
	raw := make(map[string]json.RawMessage)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, nil, fmt.Errorf("reading object key: %w", err)
		}
		key, ok := tok.(string)
		if !ok {
			return nil, nil, fmt.Errorf("expected string key, got %v", tok)
		}
		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return nil, nil, fmt.Errorf("reading value for %q: %w", key, err)
		}
		if _, seen := raw[key]; !seen {
			keys = append(keys, key)
		}
		raw[key] = value
	}

	return keys, raw, nil
}
