package server

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

const debounce = 200 * time.Millisecond

// Resetter drops whatever it has cached from the files being watched.
// *site.Site is one.
type Resetter interface {
	Reset(context.Context)
}

// Watcher resets a Resetter whenever the files under a directory change,
// so templates edited on disk show up on the next request.
type Watcher struct {
	watcher *fsnotify.Watcher
	target  Resetter
	logger  *slog.Logger
}

// NewWatcher starts watching dir and every directory under it. Events are
// only acted on once Run is called.
func NewWatcher(dir string, target Resetter, logger *slog.Logger) (*Watcher, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create file watcher: %w", err)
	}
	err = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		return watcher.Add(path)
	})
	if err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("watch %s: %w", dir, err)
	}
	return &Watcher{
		watcher: watcher,
		target:  target,
		logger:  logger,
	}, nil
}

// Run resets the target after each burst of changes until ctx is done, then
// stops watching.
func (w *Watcher) Run(ctx context.Context) {
	defer func() {
		if err := w.watcher.Close(); err != nil {
			w.logger.ErrorContext(ctx, "error closing file watcher", "error", err)
		}
	}()

	var timer *time.Timer
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
				continue
			}
			w.logger.DebugContext(ctx, "template change detected", "path", event.Name, "op", event.Op.String())
			if event.Has(fsnotify.Create) && isDir(event.Name) {
				if err := w.watcher.Add(event.Name); err != nil {
					w.logger.ErrorContext(ctx, "error watching new directory", "path", event.Name, "error", err)
				}
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(debounce, func() {
				w.target.Reset(ctx)
				w.logger.InfoContext(ctx, "templates reloaded")
			})
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.ErrorContext(ctx, "file watcher error", "error", err)
		}
	}
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
