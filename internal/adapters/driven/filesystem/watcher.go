package filesystem

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/makechair/text-analyzer/internal/core/domain"
	"github.com/makechair/text-analyzer/internal/core/ports/driven"
	"github.com/makechair/text-analyzer/internal/logger"
)

// Ensure Watcher implements the interface.
var _ driven.FileWatcher = (*Watcher)(nil)

// Watcher reports changes to a file or to the files of a directory.
type Watcher struct{}

// NewWatcher creates a watcher.
func NewWatcher() *Watcher {
	return &Watcher{}
}

// Watch starts watching path. For a file, the parent directory is watched
// so that editors which replace the file on save are still seen. For a
// directory, changes to any non-hidden file directly inside it are reported.
func (w *Watcher) Watch(ctx context.Context, path string) (<-chan domain.FileChange, <-chan error, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve %s: %w", path, err)
	}

	info, err := os.Stat(abs)
	if err != nil {
		return nil, nil, fmt.Errorf("watch %s: %w", path, domain.ErrNotFound)
	}

	scope := watchScope{dir: abs}
	if !info.IsDir() {
		scope = watchScope{dir: filepath.Dir(abs), file: abs}
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := fsw.Add(scope.dir); err != nil {
		fsw.Close()
		return nil, nil, fmt.Errorf("watch %s: %w", scope.dir, err)
	}

	changes := make(chan domain.FileChange)
	errs := make(chan error, 1)

	go func() {
		defer close(changes)
		defer close(errs)
		defer fsw.Close()

		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-fsw.Events:
				if !ok {
					return
				}
				change := scope.handleFsEvent(event)
				if change == nil {
					continue
				}
				logger.Debug("watch: %s %s", change.Type, change.Path)
				select {
				case changes <- *change:
				case <-ctx.Done():
					return
				}
			case err, ok := <-fsw.Errors:
				if !ok {
					return
				}
				select {
				case errs <- err:
				default:
					logger.Warn("watch: dropped error: %v", err)
				}
			}
		}
	}()

	return changes, errs, nil
}

type watchScope struct {
	dir  string
	file string
}

// handleFsEvent converts an fsnotify event to a change, or nil when the
// event is outside the scope or carries nothing to re-read.
func (s watchScope) handleFsEvent(event fsnotify.Event) *domain.FileChange {
	name := filepath.Clean(event.Name)

	if s.file != "" && name != s.file {
		return nil
	}
	if s.file == "" {
		if filepath.Dir(name) != s.dir || isHidden(filepath.Base(name)) {
			return nil
		}
	}

	switch {
	case event.Has(fsnotify.Remove), event.Has(fsnotify.Rename):
		return &domain.FileChange{Type: domain.ChangeDeleted, Path: name}
	case event.Has(fsnotify.Create):
		if isDir(name) {
			return nil
		}
		return &domain.FileChange{Type: domain.ChangeCreated, Path: name}
	case event.Has(fsnotify.Write):
		if isDir(name) {
			return nil
		}
		return &domain.FileChange{Type: domain.ChangeUpdated, Path: name}
	default:
		return nil
	}
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
