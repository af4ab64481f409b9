// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package watch re-runs work when a file on disk changes.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/pdiddy/specnav/internal/debounce"
)

// File calls fn after path is written, created or replaced, once changes
// have been quiet for wait. It watches the parent directory so editors that
// replace the file are seen. File blocks until ctx is done.
func File(ctx context.Context, path string, wait time.Duration, fn func(), log *zap.Logger) error {
	if log == nil {
		log = zap.NewNop()
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolving %s: %w", path, err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("watching %s: %w", filepath.Dir(abs), err)
	}

	d := debounce.New(wait)
	defer d.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != abs {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			log.Debug("watched file changed", zap.String("path", abs), zap.Stringer("op", event.Op))
			d.Trigger(fn)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Warn("watcher error", zap.Error(err))
		}
	}
}
