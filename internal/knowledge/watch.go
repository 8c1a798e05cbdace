package knowledge

import (
	"context"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Watcher reloads the stores when their backing files change on disk, so
// edits to knowledge.json or shortcuts.json show up without a restart.
type Watcher struct {
	log      *zap.Logger
	paths    map[string]func() error
	onReload func()
}

// NewWatcher maps each file path to its reload function. onReload fires
// after any successful reload so the core can re-resolve content.
func NewWatcher(log *zap.Logger, onReload func()) *Watcher {
	return &Watcher{
		log:      log,
		paths:    make(map[string]func() error),
		onReload: onReload,
	}
}

// Add registers a file to watch and the reload to run when it changes.
func (w *Watcher) Add(path string, reload func() error) {
	w.paths[filepath.Clean(path)] = reload
}

// Run watches until the context is cancelled. The fsnotify watcher observes
// the parent directories because editors replace files on save, which drops
// watches on the file itself.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer fw.Close()

	dirs := make(map[string]bool)
	for path := range w.paths {
		dir := filepath.Dir(path)
		if dirs[dir] {
			continue
		}
		dirs[dir] = true
		if err := fw.Add(dir); err != nil {
			w.log.Warn("cannot watch directory", zap.String("dir", dir), zap.Error(err))
		}
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			reload, watched := w.paths[filepath.Clean(event.Name)]
			if !watched {
				continue
			}
			w.log.Info("store file changed, reloading", zap.String("path", event.Name))
			if err := reload(); err != nil {
				// Reload already resolved to an empty store; nothing else to do.
				continue
			}
			if w.onReload != nil {
				w.onReload()
			}
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.log.Warn("file watcher error", zap.Error(err))
		}
	}
}
