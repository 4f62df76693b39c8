package watcher

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// StartFsNotify triggers detect() when fsnotify reports changes to
// tracked files. The root and its subdirectories are watched; fsnotify
// is not recursive, so directories created while watching are added as
// their create events arrive.
func (w *Watcher) StartFsNotify(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer fw.Close()

	w.mu.RLock()
	root := w.root
	storeName := w.storeName
	debounce := w.debounce
	exts := append([]string(nil), w.exts...)
	w.mu.RUnlock()

	if err := w.addDirs(fw, root, storeName); err != nil {
		return err
	}

	extSet := make(map[string]bool, len(exts))
	for _, e := range exts {
		extSet[e] = true
	}

	// Channel to request debounce resets
	resetCh := make(chan struct{}, 1)

	// Debounce goroutine
	go func() {
		var t *time.Timer
		for range resetCh {
			if t != nil {
				t.Stop()
			}
			t = time.AfterFunc(debounce, func() {
				defer func() {
					if r := recover(); r != nil {
						w.log.Error("detect panic: %v", r)
					}
				}()
				w.detect()
			})
		}
	}()
	defer close(resetCh)

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-fw.Events:
			if !ok {
				w.log.Error("events channel closed")
				return nil
			}

			w.log.Debug("event: %s %s", ev.Op, ev.Name)

			if w.insideStore(ev.Name, root, storeName) {
				continue
			}

			if ev.Op&fsnotify.Create != 0 {
				if info, err := os.Stat(ev.Name); err == nil && info.IsDir() {
					if err := fw.Add(ev.Name); err != nil {
						w.log.Warn("cannot watch new dir %s: %v", ev.Name, err)
					}
					continue
				}
			}

			if !extSet[filepath.Ext(ev.Name)] {
				continue
			}

			// Non-blocking send to reset debounce
			select {
			case resetCh <- struct{}{}:
			default:
			}

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.log.Error("fsnotify error: %v", err)
		}
	}
}

// addDirs registers the root and every existing subdirectory except the
// store subtree.
func (w *Watcher) addDirs(fw *fsnotify.Watcher, root, storeName string) error {
	return filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() {
			return nil
		}
		if w.insideStore(path, root, storeName) {
			return filepath.SkipDir
		}
		if name := info.Name(); name != "." && strings.HasPrefix(name, ".") && path != root {
			return filepath.SkipDir
		}
		return fw.Add(path)
	})
}

func (w *Watcher) insideStore(path, root, storeName string) bool {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return false
	}
	rel = filepath.ToSlash(rel)
	return rel == storeName || strings.HasPrefix(rel, storeName+"/")
}
