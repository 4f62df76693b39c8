package watcher

import (
	"os"
	"path/filepath"
	"time"

	"github.com/rporley/vecta-snapshot/internal/scan"
	"github.com/rporley/vecta-snapshot/internal/worker"
)

// detect enqueues a snapshot request if any tracked file changed since
// the last one.
func (w *Watcher) detect() {
	w.mu.RLock()
	root := w.root
	storeName := w.storeName
	exts := append([]string(nil), w.exts...)
	ignoreFile := w.ignoreFile
	last := w.lastModTime
	w.mu.RUnlock()

	files, err := scan.Tracked(root, storeName, exts, ignoreFile)
	if err != nil {
		w.log.Error("watcher: scan failed: %v", err)
		return
	}

	var latest time.Time
	for _, rel := range files {
		info, err := os.Stat(filepath.Join(root, rel))
		if err != nil {
			continue
		}
		if info.ModTime().After(latest) {
			latest = info.ModTime()
		}
	}

	if !latest.After(last) {
		return
	}

	if !w.isTreeStable() {
		w.log.Debug("watcher: tree still changing, skipping")
		return
	}

	w.mu.Lock()
	w.lastModTime = latest
	w.mu.Unlock()

	w.log.Info("watcher: tracked files changed, requesting snapshot")
	w.mb.Put(worker.Request{
		Reason:    "auto: tracked files changed",
		Timestamp: latest,
	})
}
