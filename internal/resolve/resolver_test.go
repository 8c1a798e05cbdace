package resolve

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/Jacquart08/ultimate-overlay/internal/classify"
	"github.com/Jacquart08/ultimate-overlay/internal/favorites"
	"github.com/Jacquart08/ultimate-overlay/internal/knowledge"
	"github.com/Jacquart08/ultimate-overlay/internal/logging"
	"github.com/Jacquart08/ultimate-overlay/internal/models"
)

const testKnowledge = `{
  "Python": [
    {"title": "List comprehension", "description": "Build lists inline", "code": "[x*x for x in xs]", "summary": "lists"},
    {"title": "Virtualenv", "description": "Isolated environment", "code": "python -m venv .venv", "summary": "env"},
    {"title": "Lambda", "description": "Anonymous function", "code": "f = lambda x: x + 1", "summary": "functions"}
  ],
  "SQL": [
    {"title": "JOIN", "description": "Combine tables", "code": "SELECT * FROM a JOIN b ON a.id = b.id", "summary": "joins"}
  ],
  "excel": [
    {"title": "VLOOKUP", "description": "Lookup by key", "code": "=VLOOKUP(A1, B:C, 2, FALSE)", "summary": "lookup"}
  ]
}`

const testShortcuts = `{
  "notepad": [
    {"shortcut": "Ctrl+S", "description": "Save", "summary": "save"},
    {"shortcut": "Ctrl+F", "description": "Find", "summary": "find"},
    {"shortcut": "Ctrl+H", "description": "Replace", "summary": "replace"}
  ],
  "visual studio code": [
    {"shortcut": "Ctrl+Shift+P", "description": "Command palette", "summary": "palette"}
  ]
}`

func newTestResolver(t *testing.T) (*Resolver, *favorites.Store) {
	t.Helper()
	dir := t.TempDir()

	kPath := filepath.Join(dir, "knowledge.json")
	require.NoError(t, os.WriteFile(kPath, []byte(testKnowledge), 0600))
	sPath := filepath.Join(dir, "shortcuts.json")
	require.NoError(t, os.WriteFile(sPath, []byte(testShortcuts), 0600))

	log := logging.NewNop()
	ks := knowledge.NewStore(kPath, log)
	require.NoError(t, ks.Load())
	ss := knowledge.NewShortcutStore(sPath, log)
	require.NoError(t, ss.Load())
	fav := favorites.NewStore(filepath.Join(dir, "favorites.json"), log)

	return New(ks, ss, fav), fav
}

func titles(entries []models.DisplayEntry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Title
	}
	return out
}

func TestResolveKnowledgeByLanguage(t *testing.T) {
	r, _ := newTestResolver(t)

	ctx := classify.Classify("main.py - Visual Studio Code")
	res := r.Resolve(ctx, models.ModeKnowledge, "")

	assert.Equal(t, models.ModeKnowledge, res.Mode)
	assert.Equal(t, []string{"List comprehension", "Virtualenv", "Lambda"}, titles(res.Entries))
	assert.Equal(t, models.EntryKnowledge, res.Entries[0].Kind)
	assert.NotEmpty(t, res.Entries[0].DocURL)
}

func TestResolveKnowledgeTitleFallback(t *testing.T) {
	r, _ := newTestResolver(t)

	// No recognized extension, but "excel" appears in the store keys and the
	// title carries it.
	ctx := models.Context{WindowTitle: "Workbook1 - Excel", AppCategory: "excel"}
	res := r.Resolve(ctx, models.ModeKnowledge, "")

	assert.Equal(t, []string{"VLOOKUP"}, titles(res.Entries))
}

func TestResolveKnowledgeNotFound(t *testing.T) {
	r, _ := newTestResolver(t)

	ctx := models.Context{WindowTitle: "something unrecognizable"}
	res := r.Resolve(ctx, models.ModeKnowledge, "")

	require.Len(t, res.Entries, 1)
	assert.Equal(t, models.EntryNotFound, res.Entries[0].Kind)
	assert.Equal(t, "No basic knowledge found for this language or app.", res.Entries[0].Title)
}

func TestResolveShortcutsByApp(t *testing.T) {
	r, _ := newTestResolver(t)

	ctx := classify.Classify("Untitled - Notepad")
	res := r.Resolve(ctx, models.ModeShortcuts, "")

	assert.Equal(t, models.ModeShortcuts, res.Mode)
	assert.Equal(t, []string{"Ctrl+S", "Ctrl+F", "Ctrl+H"}, titles(res.Entries))
	assert.Equal(t, models.EntryShortcut, res.Entries[0].Kind)
}

func TestResolveShortcutsTitleFallback(t *testing.T) {
	r, _ := newTestResolver(t)

	// App detector yields nothing, but the store key appears in the title.
	ctx := models.Context{WindowTitle: "settings - visual studio code fork"}
	res := r.Resolve(ctx, models.ModeShortcuts, "")

	assert.Equal(t, []string{"Ctrl+Shift+P"}, titles(res.Entries))
}

func TestResolveShortcutsNotFound(t *testing.T) {
	r, _ := newTestResolver(t)

	ctx := classify.Classify("Mozilla Firefox - GitHub")
	res := r.Resolve(ctx, models.ModeShortcuts, "")

	require.Len(t, res.Entries, 1)
	assert.Equal(t, models.EntryNotFound, res.Entries[0].Kind)
	assert.Equal(t, "No shortcuts found for this app.", res.Entries[0].Title)
}

func TestResolveShortcutsIgnoresLanguage(t *testing.T) {
	r, _ := newTestResolver(t)

	// Python is detected but shortcuts only resolve by app.
	ctx := classify.Classify("main.py - some unknown editor")
	res := r.Resolve(ctx, models.ModeShortcuts, "")

	require.Len(t, res.Entries, 1)
	assert.Equal(t, models.EntryNotFound, res.Entries[0].Kind)
}

func TestResolveHomeForBrowser(t *testing.T) {
	r, _ := newTestResolver(t)

	ctx := classify.Classify("Mozilla Firefox - GitHub")
	res := r.Resolve(ctx, models.ModeHome, "")

	assert.Equal(t, models.ModeHome, res.Mode)
	require.NotNil(t, res.Home)
	assert.Equal(t, "Firefox", res.Home.AppName)
	require.NotEmpty(t, res.Home.Sections)
}

func TestResolveHomeLanguagePreempts(t *testing.T) {
	r, _ := newTestResolver(t)

	// excel is home-capable, but the detected language has knowledge entries,
	// so knowledge wins.
	ctx := models.Context{WindowTitle: "report.py - Excel", Language: "Python", AppCategory: "excel"}
	res := r.Resolve(ctx, models.ModeHome, "")

	assert.Equal(t, models.ModeKnowledge, res.Mode)
	assert.Nil(t, res.Home)
	assert.Equal(t, []string{"List comprehension", "Virtualenv", "Lambda"}, titles(res.Entries))
}

func TestResolveHomeUnknownLanguageDoesNotPreempt(t *testing.T) {
	r, _ := newTestResolver(t)

	// Rust is detected but the knowledge store has no Rust section, so the
	// home page still shows.
	ctx := models.Context{WindowTitle: "main.rs - Firefox", Language: "Rust", AppCategory: "firefox"}
	res := r.Resolve(ctx, models.ModeHome, "")

	assert.Equal(t, models.ModeHome, res.Mode)
	require.NotNil(t, res.Home)
}

func TestResolveHomeFallsBackToKnowledge(t *testing.T) {
	r, _ := newTestResolver(t)

	// Not home-capable and no language: knowledge resolution takes over.
	ctx := classify.Classify("Untitled - Notepad")
	res := r.Resolve(ctx, models.ModeHome, "")

	assert.Equal(t, models.ModeKnowledge, res.Mode)
	require.Len(t, res.Entries, 1)
	assert.Equal(t, models.EntryNotFound, res.Entries[0].Kind)
}

func TestResolveMenuIgnoresContext(t *testing.T) {
	r, _ := newTestResolver(t)

	a := r.Resolve(classify.Classify("main.py - Visual Studio Code"), models.ModeMenu, "")
	b := r.Resolve(models.Context{}, models.ModeMenu, "ignored")

	assert.Equal(t, models.ModeMenu, a.Mode)
	require.Len(t, a.Menu, 3)
	assert.Equal(t, "Settings", a.Menu[0].Label)
	assert.Equal(t, "Reload", a.Menu[1].Label)
	assert.Equal(t, "About", a.Menu[2].Label)
	assert.Equal(t, a.Menu, b.Menu)
}

func TestResolvePinnedEntriesSortFirst(t *testing.T) {
	r, fav := newTestResolver(t)

	_, err := fav.ToggleKnowledge("Lambda")
	require.NoError(t, err)

	ctx := classify.Classify("main.py - editor")
	res := r.Resolve(ctx, models.ModeKnowledge, "")

	assert.Equal(t, []string{"Lambda", "List comprehension", "Virtualenv"}, titles(res.Entries))
	assert.True(t, res.Entries[0].Pinned)
	assert.False(t, res.Entries[1].Pinned)
}

func TestResolvePinnedPartitionPreservesRelativeOrder(t *testing.T) {
	r, fav := newTestResolver(t)

	// Pin in reverse store order; pinned partition is most-recent-first only
	// in the favorites file, display keeps store order within the partition.
	_, err := fav.ToggleKnowledge("List comprehension")
	require.NoError(t, err)
	_, err = fav.ToggleKnowledge("Lambda")
	require.NoError(t, err)

	ctx := classify.Classify("main.py - editor")
	res := r.Resolve(ctx, models.ModeKnowledge, "")

	assert.Equal(t, []string{"List comprehension", "Lambda", "Virtualenv"}, titles(res.Entries))
}

func TestResolveSearchPrefixFilter(t *testing.T) {
	r, _ := newTestResolver(t)
	ctx := classify.Classify("main.py - editor")

	res := r.Resolve(ctx, models.ModeKnowledge, "l")
	assert.Equal(t, []string{"List comprehension", "Lambda"}, titles(res.Entries))

	res = r.Resolve(ctx, models.ModeKnowledge, "lam")
	assert.Equal(t, []string{"Lambda"}, titles(res.Entries))

	// Summary prefix also matches: "env" is the Virtualenv summary.
	res = r.Resolve(ctx, models.ModeKnowledge, "env")
	assert.Equal(t, []string{"Virtualenv"}, titles(res.Entries))

	// No match leaves an empty list, not a synthetic entry.
	res = r.Resolve(ctx, models.ModeKnowledge, "zzz")
	assert.Empty(t, res.Entries)
}

func TestResolveSearchAppliesAfterPinning(t *testing.T) {
	r, fav := newTestResolver(t)

	_, err := fav.ToggleKnowledge("Lambda")
	require.NoError(t, err)

	ctx := classify.Classify("main.py - editor")
	res := r.Resolve(ctx, models.ModeKnowledge, "l")

	// Pinned Lambda first, then List comprehension.
	assert.Equal(t, []string{"Lambda", "List comprehension"}, titles(res.Entries))
}

// Extending the search string never adds results.
func TestResolveSearchNarrowsMonotonically(t *testing.T) {
	r, _ := newTestResolver(t)
	ctx := classify.Classify("main.py - editor")

	rapid.Check(t, func(rt *rapid.T) {
		base := rapid.StringMatching(`[a-z]{0,4}`).Draw(rt, "base")
		ext := rapid.StringMatching(`[a-z]{1,3}`).Draw(rt, "ext")

		wide := r.Resolve(ctx, models.ModeKnowledge, base)
		narrow := r.Resolve(ctx, models.ModeKnowledge, base+ext)

		if len(narrow.Entries) > len(wide.Entries) {
			rt.Fatalf("search %q returned %d entries, prefix %q returned %d",
				base+ext, len(narrow.Entries), base, len(wide.Entries))
		}
		wideTitles := make(map[string]bool, len(wide.Entries))
		for _, e := range wide.Entries {
			wideTitles[e.Title] = true
		}
		for _, e := range narrow.Entries {
			if !wideTitles[e.Title] {
				rt.Fatalf("entry %q appears for %q but not for prefix %q", e.Title, base+ext, base)
			}
		}
	})
}

func TestResolveIsDeterministic(t *testing.T) {
	r, _ := newTestResolver(t)
	ctx := classify.Classify("main.py - Visual Studio Code")

	first := r.Resolve(ctx, models.ModeKnowledge, "l")
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, r.Resolve(ctx, models.ModeKnowledge, "l"))
	}
}
