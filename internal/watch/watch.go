// Package watch re-runs a callback whenever a watched document changes on
// disk.
package watch

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"

	"github.com/dshills/prosecheck/internal/logger"
)

// Watcher watches files directly named or matched by glob patterns.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	patterns  []string
	debounce  time.Duration
}

// New creates a watcher. Patterns use doublestar syntax ("docs/**/*.md") and
// are matched against cleaned absolute paths.
func New(patterns []string, debounce time.Duration) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch: %w", err)
	}
	abs := make([]string, 0, len(patterns))
	for _, p := range patterns {
		a, err := filepath.Abs(p)
		if err != nil {
			fw.Close()
			return nil, fmt.Errorf("watch: %s: %w", p, err)
		}
		abs = append(abs, filepath.ToSlash(a))
	}
	return &Watcher{fsWatcher: fw, patterns: abs, debounce: debounce}, nil
}

// Matches reports whether path is covered by one of the watcher's patterns.
func (w *Watcher) Matches(path string) bool {
	a, err := filepath.Abs(path)
	if err != nil {
		return false
	}
	a = filepath.ToSlash(a)
	for _, p := range w.patterns {
		if ok, _ := doublestar.Match(p, a); ok {
			return true
		}
	}
	return false
}

// dirs returns the directories to register with fsnotify: the static prefix
// of each pattern, plus every subdirectory when the pattern contains "**".
// Editors often replace files by rename, so directories are watched rather
// than the files themselves.
func (w *Watcher) dirs() []string {
	seen := make(map[string]bool)
	var out []string
	add := func(dir string) {
		if !seen[dir] {
			seen[dir] = true
			out = append(out, dir)
		}
	}
	for _, p := range w.patterns {
		base, _ := doublestar.SplitPattern(p)
		dir := filepath.FromSlash(base)
		add(dir)
		if !strings.Contains(p, "**") {
			continue
		}
		err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				if path == dir {
					return err
				}
				return nil
			}
			if d.IsDir() {
				if path != dir && strings.HasPrefix(d.Name(), ".") {
					return filepath.SkipDir
				}
				add(path)
			}
			return nil
		})
		if err != nil {
			logger.ForComponent("watch").Warn("walk failed", "path", dir, "error", err)
		}
	}
	return out
}

// recursive reports whether dir lies under the base of a "**" pattern.
func (w *Watcher) recursive(dir string) bool {
	a := filepath.ToSlash(dir)
	for _, p := range w.patterns {
		if !strings.Contains(p, "**") {
			continue
		}
		base, _ := doublestar.SplitPattern(p)
		if a == base || strings.HasPrefix(a, strings.TrimSuffix(base, "/")+"/") {
			return true
		}
	}
	return false
}

// watchTree registers a directory created after Run started, with its
// subdirectories, and queues matching files already written inside it.
func (w *Watcher) watchTree(root string, deb *debouncer, log *slog.Logger) {
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			return nil
		}
		if !d.IsDir() {
			if w.Matches(path) {
				deb.add(path)
			}
			return nil
		}
		if strings.HasPrefix(d.Name(), ".") {
			return filepath.SkipDir
		}
		if err := w.fsWatcher.Add(path); err != nil {
			log.Warn("watch directory", "path", path, "error", err)
			return nil
		}
		log.Debug("watching directory", "path", path)
		return nil
	})
	if err != nil {
		log.Warn("walk failed", "path", root, "error", err)
	}
}

// Run blocks until ctx is cancelled, calling onChange with the path of each
// matching file after it has been quiet for the debounce window. onChange is
// always called from the goroutine running Run.
func (w *Watcher) Run(ctx context.Context, onChange func(path string)) error {
	defer w.fsWatcher.Close()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	log := logger.ForComponent("watch")

	for _, dir := range w.dirs() {
		if err := w.fsWatcher.Add(dir); err != nil {
			return fmt.Errorf("watch: add %s: %w", dir, err)
		}
		log.Debug("watching directory", "path", dir)
	}

	ready := make(chan string, 16)
	deb := newDebouncer(w.debounce, func(path string) {
		select {
		case ready <- path:
		case <-ctx.Done():
		}
	})
	defer deb.stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case path := <-ready:
			onChange(path)
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return nil
			}
			if !event.Op.Has(fsnotify.Write) && !event.Op.Has(fsnotify.Create) {
				continue
			}
			if event.Op.Has(fsnotify.Create) && w.recursive(event.Name) {
				if fi, err := os.Stat(event.Name); err == nil && fi.IsDir() {
					w.watchTree(event.Name, deb, log)
					continue
				}
			}
			if !w.Matches(event.Name) {
				continue
			}
			log.Debug("change detected", "path", event.Name, "op", event.Op.String())
			deb.add(event.Name)
		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return nil
			}
			log.Warn("watcher error", "error", err)
		}
	}
}
