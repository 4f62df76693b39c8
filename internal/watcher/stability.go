package watcher

import (
	"os"
	"path/filepath"
	"time"

	"github.com/rporley/vecta-snapshot/internal/scan"
)

// isTreeStable samples the total size of tracked files twice across the
// stability window. A snapshot taken while files are being written would
// capture a torn copy.
func (w *Watcher) isTreeStable() bool {
	w.mu.RLock()
	root := w.root
	storeName := w.storeName
	exts := append([]string(nil), w.exts...)
	ignoreFile := w.ignoreFile
	stability := w.stability
	w.mu.RUnlock()

	size1, ok := w.treeSize(root, storeName, exts, ignoreFile)
	if !ok {
		return false
	}

	time.Sleep(stability)

	size2, ok := w.treeSize(root, storeName, exts, ignoreFile)
	if !ok {
		return false
	}

	return size1 == size2
}

func (w *Watcher) treeSize(root, storeName string, exts []string, ignoreFile string) (int64, bool) {
	files, err := scan.Tracked(root, storeName, exts, ignoreFile)
	if err != nil {
		return 0, false
	}

	var total int64
	for _, rel := range files {
		info, err := os.Stat(filepath.Join(root, rel))
		if err != nil {
			continue
		}
		total += info.Size()
	}
	return total, true
}
