// Package watcher monitors the project root and emits snapshot requests
// when tracked files change.
package watcher

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rporley/vecta-snapshot/internal/config"
	"github.com/rporley/vecta-snapshot/internal/fsprobe"
	"github.com/rporley/vecta-snapshot/internal/logging"
	"github.com/rporley/vecta-snapshot/internal/mailbox"
	"github.com/rporley/vecta-snapshot/internal/worker"
)

// Watcher observes tracked files and enqueues a snapshot request when
// they change and settle.
type Watcher struct {
	mu sync.RWMutex

	root       string
	storeName  string
	exts       []string
	ignoreFile string
	interval   time.Duration
	mode       string
	debounce   time.Duration
	stability  time.Duration

	log logging.Logger

	lastModTime time.Time

	mb *mailbox.Mailbox[worker.Request]
}

// New creates a watcher from the source, store and watch configuration.
func New(src config.SourceConfig, st config.StoreConfig, wc config.WatchConfig, log logging.Logger, mb *mailbox.Mailbox[worker.Request]) *Watcher {
	return &Watcher{
		root:       src.Root,
		storeName:  st.Dir,
		exts:       src.TrackedExtensions,
		ignoreFile: src.IgnoreFile,
		interval:   wc.PollInterval,
		mode:       wc.Mode,
		debounce:   wc.DebounceWindow,
		stability:  wc.StabilityWindow,
		log:        log,
		mb:         mb,
	}
}

// Start chooses the correct watching strategy based on config.
func (w *Watcher) Start(ctx context.Context) error {
	switch w.mode {
	case "fsnotify":
		return w.StartFsNotify(ctx)

	case "poll":
		w.StartPolling(ctx)
		return nil

	case "auto":
		res := fsprobe.Probe(w.root)
		if res.FsnotifySupported {
			return w.StartFsNotify(ctx)
		}
		w.log.Warn("fsnotify disabled: %s", res.Reason)
		w.StartPolling(ctx)
		return nil

	default:
		return fmt.Errorf("unknown mode %q", w.mode)
	}
}
