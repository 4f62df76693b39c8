package watcher

import (
	"time"

	"github.com/rporley/vecta-snapshot/internal/config"
)

// UpdateConfig updates watcher fields atomically for hot-reload.
func (w *Watcher) UpdateConfig(src config.SourceConfig, st config.StoreConfig, wc config.WatchConfig) {
	w.mu.Lock()
	defer w.mu.Unlock()

	rootChanged := src.Root != w.root

	w.root = src.Root
	w.storeName = st.Dir
	w.exts = src.TrackedExtensions
	w.ignoreFile = src.IgnoreFile
	w.interval = wc.PollInterval
	w.mode = wc.Mode
	w.debounce = wc.DebounceWindow
	w.stability = wc.StabilityWindow

	if rootChanged {
		w.lastModTime = time.Time{}
	}
}
