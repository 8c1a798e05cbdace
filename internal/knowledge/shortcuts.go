package knowledge

import (
	"encoding/json"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/Jacquart08/ultimate-overlay/internal/models"
)

// ShortcutStore holds keyboard-shortcut references keyed by app name. App
// matching is substring-based against the window title, case-insensitive,
// in file-declaration order.
type ShortcutStore struct {
	mu        sync.RWMutex
	path      string
	log       *zap.Logger
	keys      []string
	shortcuts map[string][]models.ShortcutEntry
}

func NewShortcutStore(path string, log *zap.Logger) *ShortcutStore {
	return &ShortcutStore{
		path:      path,
		log:       log,
		shortcuts: make(map[string][]models.ShortcutEntry),
	}
}

// Load reads the shortcuts file, resolving any error to an empty store.
func (s *ShortcutStore) Load() error {
	keys, raw, err := readOrderedObject(s.path)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.keys = nil
	s.shortcuts = make(map[string][]models.ShortcutEntry)

	if err != nil {
		s.log.Warn("shortcuts file unavailable, using empty store",
			zap.String("path", s.path), zap.Error(err))
		return err
	}

	for _, key := range keys {
		var list []models.ShortcutEntry
		if err := json.Unmarshal(raw[key], &list); err != nil {
			s.log.Warn("skipping malformed shortcuts section",
				zap.String("key", key), zap.Error(err))
			continue
		}
		s.keys = append(s.keys, key)
		s.shortcuts[key] = list
	}

	s.log.Info("shortcuts loaded",
		zap.String("path", s.path), zap.Int("apps", len(s.keys)))
	return nil
}

// ForApp returns the shortcuts recorded under the given app name,
// case-insensitively.
func (s *ShortcutStore) ForApp(app string) ([]models.ShortcutEntry, bool) {
	lower := strings.ToLower(app)

	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, key := range s.keys {
		if strings.ToLower(key) == lower {
			list := s.shortcuts[key]
			out := make([]models.ShortcutEntry, len(list))
			copy(out, list)
			return out, true
		}
	}
	return nil, false
}

// MatchTitle returns the shortcuts of the first app name (in file order)
// that appears in the window title.
func (s *ShortcutStore) MatchTitle(title string) (string, []models.ShortcutEntry, bool) {
	lower := strings.ToLower(title)

	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, key := range s.keys {
		if strings.Contains(lower, strings.ToLower(key)) {
			list := s.shortcuts[key]
			out := make([]models.ShortcutEntry, len(list))
			copy(out, list)
			return key, out, true
		}
	}
	return "", nil, false
}

func (s *ShortcutStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.keys)
}
