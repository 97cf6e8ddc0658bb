package storage

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watcher reports external modification of the record file while the
// application runs. The core is single-writer, so a change made by anything
// else is worth surfacing; the callback typically just logs a warning.
type Watcher struct {
	fw       *fsnotify.Watcher
	path     string
	logger   *slog.Logger
	onChange func()
	done     chan struct{}
}

// NewWatcher starts watching the record file's directory. onChange fires for
// writes, creations and renames touching the record file itself.
func NewWatcher(path string, logger *slog.Logger, onChange func()) (*Watcher, error) {
	if logger == nil {
		logger = slog.Default()
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}
	// Watch the directory, not the file: rename-into-place replaces the
	// inode, which would silently drop a direct file watch.
	if err := fw.Add(filepath.Dir(path)); err != nil {
		_ = fw.Close()
		return nil, fmt.Errorf("failed to watch record directory: %w", err)
	}

	w := &Watcher{
		fw:       fw,
		path:     filepath.Clean(path),
		logger:   logger,
		onChange: onChange,
		done:     make(chan struct{}),
	}
	go w.loop()
	return w, nil
}

func (w *Watcher) loop() {
	for {
		select {
		case event, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			w.logger.Debug("record file changed on disk", slog.String("op", event.Op.String()))
			if w.onChange != nil {
				w.onChange()
			}
		case err, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			w.logger.Warn("file watcher error", slog.String("error", err.Error()))
		case <-w.done:
			return
		}
	}
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	close(w.done)
	return w.fw.Close()
}
