package workspace

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"tidy-notepad/internal/logger"
)

// DebounceInterval coalesces bursts of file events into one refresh.
const DebounceInterval = 200 * time.Millisecond

// Watch starts an fsnotify watcher on root and calls onChange after each
// burst of create/write/remove/rename events until ctx is cancelled.
// New directories created at runtime are added to the watch list.
func Watch(ctx context.Context, root string, log logger.Logger, onChange func()) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	if err := addDirsRecursive(w, root); err != nil {
		return err
	}

	log.Info("Workspace", "watcher started", map[string]interface{}{"root": root})

	var debounce *time.Timer
	var debounceCh <-chan time.Time

	schedule := func() {
		if debounce == nil {
			debounce = time.NewTimer(DebounceInterval)
			debounceCh = debounce.C
		} else {
			debounce.Reset(DebounceInterval)
		}
	}

	for {
		select {
		case <-ctx.Done():
			if debounce != nil {
				debounce.Stop()
			}
			log.Info("Workspace", "watcher stopped", nil)
			return nil

		case <-debounceCh:
			debounce = nil
			debounceCh = nil
			onChange()

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if ev.Op&fsnotify.Chmod == ev.Op {
				continue
			}
			if isHidden(filepath.Base(ev.Name)) {
				continue
			}

			if ev.Op&fsnotify.Create != 0 {
				if info, statErr := os.Stat(ev.Name); statErr == nil && info.IsDir() {
					if addErr := addDirsRecursive(w, ev.Name); addErr != nil {
						log.Warning("Workspace", "watch new directory failed", map[string]interface{}{
							"path":  ev.Name,
							"error": addErr.Error(),
						})
					}
				}
			}

			log.Debug("Workspace", "file event", map[string]interface{}{
				"path": ev.Name,
				"op":   ev.Op.String(),
			})
			schedule()

		case watchErr, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.Error("Workspace", watchErr, nil)
		}
	}
}

func addDirsRecursive(w *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		if path != root && isHidden(d.Name()) {
			return filepath.SkipDir
		}
		return w.Add(path)
	})
}
