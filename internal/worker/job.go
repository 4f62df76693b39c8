package worker

import "time"

// Request asks the worker to create one snapshot.
type Request struct {
	Reason    string
	Timestamp time.Time
}
