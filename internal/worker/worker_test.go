package worker

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rporley/vecta-snapshot/internal/config"
	"github.com/rporley/vecta-snapshot/internal/logging"
	"github.com/rporley/vecta-snapshot/internal/mailbox"
	"github.com/rporley/vecta-snapshot/internal/snapshot"
)

func TestWorkerCreatesSnapshotFromRequest(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "a.py"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	src := config.SourceConfig{Root: root, TrackedExtensions: []string{".py"}}
	st := config.StoreConfig{Dir: ".vecta_snapshots", MaxSnapshots: 3}
	store := snapshot.New(src, st, logging.StdLogger{}, nil)

	mb := mailbox.New[Request]()
	w := New(store, logging.StdLogger{}, mb)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Start(ctx)

	mb.Put(Request{Reason: "auto: test", Timestamp: time.Now()})

	deadline := time.After(3 * time.Second)
	for {
		if snaps := store.List(); len(snaps) == 1 {
			if snaps[0].Reason != "auto: test" {
				t.Errorf("Reason = %q, want %q", snaps[0].Reason, "auto: test")
			}
			return
		}
		select {
		case <-deadline:
			t.Fatal("worker never created the snapshot")
		case <-time.After(10 * time.Millisecond):
		}
	}
}
