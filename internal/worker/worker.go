// Package worker drains snapshot requests from the mailbox and runs them
// against the store, one at a time.
package worker

import (
	"context"

	"github.com/rporley/vecta-snapshot/internal/logging"
	"github.com/rporley/vecta-snapshot/internal/mailbox"
	"github.com/rporley/vecta-snapshot/internal/snapshot"
)

type Worker struct {
	store *snapshot.Store
	log   logging.Logger
	mb    *mailbox.Mailbox[Request]
}

func New(store *snapshot.Store, log logging.Logger, mb *mailbox.Mailbox[Request]) *Worker {
	return &Worker{
		store: store,
		log:   log,
		mb:    mb,
	}
}

// Start runs the worker loop until the context is canceled.
func (w *Worker) Start(ctx context.Context) {
	w.log.Info("starting worker")
	for {
		req, ok := w.mb.Take(ctx)
		if !ok {
			return
		}

		id, err := w.store.Create(ctx, req.Reason)
		if err != nil {
			w.log.Error("worker: snapshot failed: %v", err)
			continue
		}
		w.log.Debug("worker: snapshot %s done", id)
	}
}
