// Package sched emits periodic snapshot requests on a cron schedule.
package sched

import (
	"fmt"
	"time"

	cron "github.com/robfig/cron/v3"

	"github.com/rporley/vecta-snapshot/internal/logging"
	"github.com/rporley/vecta-snapshot/internal/mailbox"
	"github.com/rporley/vecta-snapshot/internal/worker"
)

type Scheduler struct {
	c   *cron.Cron
	log logging.Logger
}

// New validates the cron expression and wires it to the mailbox. The
// request goes through the same latest-wins slot as watcher requests, so
// a scheduled snapshot that coincides with a change-triggered one
// collapses into a single run.
func New(spec string, mb *mailbox.Mailbox[worker.Request], log logging.Logger) (*Scheduler, error) {
	c := cron.New()

	_, err := c.AddFunc(spec, func() {
		log.Info("scheduler: requesting snapshot")
		mb.Put(worker.Request{
			Reason:    "auto: scheduled",
			Timestamp: time.Now(),
		})
	})
	if err != nil {
		return nil, fmt.Errorf("invalid schedule %q: %w", spec, err)
	}

	return &Scheduler{c: c, log: log}, nil
}

func (s *Scheduler) Start() {
	s.log.Info("scheduler started")
	s.c.Start()
}

func (s *Scheduler) Stop() {
	s.c.Stop()
}
