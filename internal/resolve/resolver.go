// Package resolve turns a classified context, a display mode and a search
// filter into the ordered content the overlay renders. All precedence and
// fallback rules live here so they stay testable without a UI.
package resolve

import (
	"strings"

	"github.com/Jacquart08/ultimate-overlay/internal/docs"
	"github.com/Jacquart08/ultimate-overlay/internal/favorites"
	"github.com/Jacquart08/ultimate-overlay/internal/knowledge"
	"github.com/Jacquart08/ultimate-overlay/internal/models"
)

const (
	noShortcutsText = "No shortcuts found for this app."
	noKnowledgeText = "No basic knowledge found for this language or app."
)

// Resolution is one resolved view. Exactly one of Entries, Home or Menu is
// populated, matching the mode.
type Resolution struct {
	Mode    models.Mode
	Entries []models.DisplayEntry
	Home    *models.HomePage
	Menu    []models.MenuItem
}

// Resolver queries the stores and applies the display precedence rules.
type Resolver struct {
	knowledge *knowledge.Store
	shortcuts *knowledge.ShortcutStore
	favorites *favorites.Store
}

func New(ks *knowledge.Store, ss *knowledge.ShortcutStore, fav *favorites.Store) *Resolver {
	return &Resolver{knowledge: ks, shortcuts: ss, favorites: fav}
}

// Resolve produces the ordered, search-filtered content for the context.
// Output is deterministic for identical inputs and a favorites snapshot.
func (r *Resolver) Resolve(ctx models.Context, mode models.Mode, search string) Resolution {
	switch mode {
	case models.ModeMenu:
		// Home-locked state ignores context entirely.
		return Resolution{Mode: models.ModeMenu, Menu: systemMenu()}
	case models.ModeShortcuts:
		return Resolution{Mode: models.ModeShortcuts, Entries: r.resolveShortcuts(ctx, search)}
	case models.ModeHome:
		return r.resolveHome(ctx, search)
	default:
		return Resolution{Mode: models.ModeKnowledge, Entries: r.resolveKnowledge(ctx, search)}
	}
}

// resolveShortcuts looks up shortcut entries by app only; the language
// detector never selects shortcuts.
func (r *Resolver) resolveShortcuts(ctx models.Context, search string) []models.DisplayEntry {
	var (
		app  = ctx.AppCategory
		list []models.ShortcutEntry
		ok   bool
	)
	if app != "" {
		list, ok = r.shortcuts.ForApp(app)
	}
	if !ok {
		app, list, ok = r.shortcuts.MatchTitle(ctx.WindowTitle)
	}
	if !ok || len(list) == 0 {
		return []models.DisplayEntry{notFound(noShortcutsText)}
	}

	entries := make([]models.DisplayEntry, 0, len(list))
	for _, s := range list {
		entries = append(entries, models.DisplayEntry{
			Kind:        models.EntryShortcut,
			Title:       s.Shortcut,
			Description: s.Description,
			Code:        s.Code,
			Summary:     s.Summary,
			Pinned:      r.favorites.IsShortcutPinned(s.Shortcut),
			PinKey:      s.Shortcut,
			DocURL:      docs.Resolve(app, ""),
		})
	}
	return filter(partition(entries), search)
}

// resolveKnowledge prefers the detected language, falls back to scanning
// knowledge keys against the window title, then to a synthetic entry.
func (r *Resolver) resolveKnowledge(ctx models.Context, search string) []models.DisplayEntry {
	key := ctx.Language
	list, ok := []models.KnowledgeEntry(nil), false
	if key != "" {
		list, ok = r.knowledge.EntriesFor(key)
	}
	if !ok {
		key, list, ok = r.knowledge.MatchTitle(ctx.WindowTitle)
	}
	if !ok || len(list) == 0 {
		return []models.DisplayEntry{notFound(noKnowledgeText)}
	}

	entries := make([]models.DisplayEntry, 0, len(list))
	for _, k := range list {
		entries = append(entries, models.DisplayEntry{
			Kind:        models.EntryKnowledge,
			Title:       k.Title,
			Description: k.Description,
			Code:        k.Code,
			Summary:     k.Summary,
			Pinned:      r.favorites.IsKnowledgePinned(k.Title),
			PinKey:      k.Title,
			DocURL:      docs.Resolve(key, k.Title),
		})
	}
	return filter(partition(entries), search)
}

// resolveHome shows an app-specific home page unless a language knowledge
// match pre-empts it. Earlier revisions let the home page win; the current
// rule is that a language match always takes precedence.
func (r *Resolver) resolveHome(ctx models.Context, search string) Resolution {
	if ctx.HasLanguage() {
		if _, ok := r.knowledge.EntriesFor(ctx.Language); ok {
			return Resolution{Mode: models.ModeKnowledge, Entries: r.resolveKnowledge(ctx, search)}
		}
	}

	if page, ok := homePageFor(ctx.AppCategory); ok {
		return Resolution{Mode: models.ModeHome, Home: page}
	}

	return Resolution{Mode: models.ModeKnowledge, Entries: r.resolveKnowledge(ctx, search)}
}

func systemMenu() []models.MenuItem {
	return []models.MenuItem{
		{Label: "Settings", Description: "Edit overlay configuration"},
		{Label: "Reload", Description: "Reload knowledge and shortcuts"},
		{Label: "About", Description: "About Ultimate Overlay"},
	}
}

func notFound(text string) models.DisplayEntry {
	return models.DisplayEntry{Kind: models.EntryNotFound, Title: text}
}

// partition splits pinned entries to the front, preserving each partition's
// original relative order.
func partition(entries []models.DisplayEntry) []models.DisplayEntry {
	pinned := make([]models.DisplayEntry, 0, len(entries))
	unpinned := make([]models.DisplayEntry, 0, len(entries))
	for _, e := range entries {
		if e.Pinned {
			pinned = append(pinned, e)
		} else {
			unpinned = append(unpinned, e)
		}
	}
	return append(pinned, unpinned...)
}

// filter applies the prefix search after partitioning, so order within each
// partition is preserved. An entry passes when its title or summary starts
// with the lowercased search string; empty search passes everything.
func filter(entries []models.DisplayEntry, search string) []models.DisplayEntry {
	search = strings.ToLower(strings.TrimSpace(search))
	if search == "" {
		return entries
	}
	out := make([]models.DisplayEntry, 0, len(entries))
	for _, e := range entries {
		title := strings.ToLower(e.Title)
		summary := strings.ToLower(e.Summary)
		if strings.HasPrefix(title, search) || strings.HasPrefix(summary, search) {
			out = append(out, e)
		}
	}
	return out
}
