package definition

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/dbmrq/strategycanvas/internal/canvas"
	"github.com/dbmrq/strategycanvas/internal/logging"
)

// DefaultDebounce is how long Watch waits after the last change before
// reloading. Editors often write a file in several steps.
const DefaultDebounce = 200 * time.Millisecond

// Watch calls fn with a freshly loaded canvas every time the definition at
// path changes, until ctx is done. Load errors are passed to fn as well so
// the caller can report them and keep watching.
//
// The parent directory is watched rather than the file itself, so editors
// that save by renaming a temporary file are handled.
func Watch(ctx context.Context, path string, debounce time.Duration, fn func(*canvas.State, error)) error {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve %s: %w", path, err)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer w.Close()

	if err := w.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}
	logging.Debug("watching definition", "path", abs)

	timer := time.NewTimer(debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			logging.Debug("stopped watching definition", "path", abs)
			return nil

		case event, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != abs {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			timer.Reset(debounce)

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logging.Warn("definition watcher error", "error", err)

		case <-timer.C:
			s, err := Load(abs)
			if err != nil {
				logging.Warn("definition reload failed", "path", abs, "error", err)
			}
			fn(s, err)
		}
	}
}
