package internal

import (
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	tt "github.com/runelabs/realias/internal/types"
)

// Watcher previews rewrites on files as they change. It never writes:
// watch mode is a review aid, applying changes stays an explicit batch
// operation.
type Watcher struct {
	preview  *Engine
	logger   *zap.Logger
	watcher  *fsnotify.Watcher
	dirs     []string
	ext      string
	watching atomic.Bool
}

// NewWatcher builds a watcher over dirs for files with the given
// extension. The engine's rule set is reused in a dry-run engine, so the
// watcher cannot modify files regardless of how engine was configured.
func NewWatcher(engine *Engine, logger *zap.Logger, dirs []string, ext string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("error creating watcher: %w", err)
	}
	return &Watcher{
		preview: NewEngine(engine.Rules(), true),
		logger:  logger,
		watcher: fw,
		dirs:    dirs,
		ext:     ext,
	}, nil
}

func (w *Watcher) Start() error {
	if w.watching.Load() {
		return fmt.Errorf("already watching")
	}

	for _, dir := range w.dirs {
		err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if info.IsDir() {
				return w.watcher.Add(path)
			}
			return nil
		})
		if err != nil {
			return fmt.Errorf("error adding directory to watcher: %w", err)
		}
	}

	w.watching.Store(true)
	go w.loop()
	return nil
}

func (w *Watcher) Stop() error {
	if !w.watching.Load() {
		w.logger.Warn("not watching")
	}
	w.watching.Store(false)
	return w.watcher.Close()
}

func (w *Watcher) loop() {
	for w.watching.Load() {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Error("watch error", zap.Error(err))
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	if event.Op&fsnotify.Write != fsnotify.Write {
		return
	}
	if filepath.Ext(event.Name) != w.ext {
		return
	}

	// editors fire several writes in quick succession; treat them as one
	time.Sleep(100 * time.Millisecond)

	w.reportResult(w.preview.RewriteFile(event.Name))
}

func (w *Watcher) reportResult(result tt.FileResult) {
	if result.Err != "" {
		w.logger.Error("error processing file",
			zap.String("file", result.Path), zap.String("error", result.Err))
		return
	}
	if !result.Modified {
		w.logger.Info("no rewrites needed", zap.String("file", result.Path))
		return
	}

	w.logger.Info("would rewrite file",
		zap.String("file", result.Path),
		zap.Int("replacements", result.TotalChanges()),
		zap.Int("imports", len(result.ImportsAdded)))
	for _, change := range result.Changes {
		w.logger.Info("rule fired",
			zap.String("rule", change.Description), zap.Int("count", change.Count))
	}
}
