// Package registry persists the snapshot store's metadata record: one
// ordered list of retained snapshots plus the tracked extension set.
package registry

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

const Version = "1.0"

// Snapshot is the metadata record for one retained snapshot. Records are
// immutable once created and removed wholesale on eviction.
type Snapshot struct {
	ID          string    `json:"id"`
	Created     time.Time `json:"created"`
	Reason      string    `json:"reason"`
	FilesCopied int       `json:"files_copied"`
}

// Registry is the single persisted record describing the store. Active is
// ordered oldest first.
type Registry struct {
	Version           string     `json:"version"`
	Created           time.Time  `json:"created"`
	TotalSnapshots    int        `json:"total_snapshots"`
	Active            []Snapshot `json:"active_snapshots"`
	TrackedExtensions []string   `json:"tracked_extensions"`
}

// New returns an empty registry tracking the given extensions.
func New(tracked []string) *Registry {
	return &Registry{
		Version:           Version,
		Created:           time.Now(),
		Active:            []Snapshot{},
		TrackedExtensions: append([]string(nil), tracked...),
	}
}

// Append adds a snapshot record and evicts oldest-first until the registry
// holds at most max entries. It returns the evicted records so the caller
// can remove their directories.
func (r *Registry) Append(s Snapshot, max int) []Snapshot {
	r.Active = append(r.Active, s)

	var evicted []Snapshot
	for max > 0 && len(r.Active) > max {
		evicted = append(evicted, r.Active[0])
		r.Active = r.Active[1:]
	}

	r.TotalSnapshots = len(r.Active)
	return evicted
}

// Load reads the registry file. A missing file yields a fresh empty
// registry; an unreadable or unparsable file is reported as an error so
// the caller can log it and reset.
func Load(path string, tracked []string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return New(tracked), nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading registry: %w", err)
	}

	var r Registry
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("parsing registry: %w", err)
	}

	if r.Active == nil {
		r.Active = []Snapshot{}
	}
	if len(r.TrackedExtensions) == 0 {
		r.TrackedExtensions = append([]string(nil), tracked...)
	}
	r.TotalSnapshots = len(r.Active)

	return &r, nil
}

// Save writes the registry record. Last writer wins; concurrent
// invocations are not guarded.
func (r *Registry) Save(path string) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding registry: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing registry: %w", err)
	}

	return nil
}
