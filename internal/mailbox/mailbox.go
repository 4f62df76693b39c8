// Package mailbox provides a single-slot buffer where the latest job
// always wins. It is NOT a queue: it holds at most one pending job, and
// Put overwrites any job that has not been taken yet. Back-to-back file
// changes therefore collapse into one snapshot request.
package mailbox

import "context"

type Mailbox[T any] struct {
	ch chan T
}

// New creates an empty mailbox.
func New[T any]() *Mailbox[T] {
	return &Mailbox[T]{ch: make(chan T, 1)}
}

// Put stores a job, replacing any pending one. It never blocks.
func (m *Mailbox[T]) Put(j T) {
	for {
		select {
		case m.ch <- j:
			return
		default:
		}
		// slot full: drain the stale job and try again
		select {
		case <-m.ch:
		default:
		}
	}
}

// Take blocks until a job is available or the context is canceled.
func (m *Mailbox[T]) Take(ctx context.Context) (T, bool) {
	select {
	case j := <-m.ch:
		return j, true
	case <-ctx.Done():
		var zero T
		return zero, false
	}
}
