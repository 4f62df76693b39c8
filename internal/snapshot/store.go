// Package snapshot implements the snapshot store: timestamped copies of
// tracked project files with oldest-first retention.
package snapshot

import (
	"errors"
	"path/filepath"
	"sync"
	"time"

	"github.com/rporley/vecta-snapshot/internal/config"
	"github.com/rporley/vecta-snapshot/internal/fs"
	"github.com/rporley/vecta-snapshot/internal/logging"
	"github.com/rporley/vecta-snapshot/internal/registry"
)

const (
	registryFile = "registry.json"
	metadataFile = "metadata.json"
	idPrefix     = "snap_"
	idTimeLayout = "20060102_150405"
)

// ErrNotFound reports a restore target that does not exist.
var ErrNotFound = errors.New("snapshot not found")

// Store owns one project root and its snapshot subtree. All state lives
// on disk; there are no globals. Concurrent processes are not guarded
// (single operator, one-shot invocations); the mutex only covers
// hot-reload in watch mode.
type Store struct {
	mu  sync.RWMutex
	src config.SourceConfig
	st  config.StoreConfig

	fs  fs.FS
	log logging.Logger
	now func() time.Time
}

// New builds a store from the source and store configuration.
func New(src config.SourceConfig, st config.StoreConfig, log logging.Logger, filesystem fs.FS) *Store {
	if filesystem == nil {
		filesystem = fs.New()
	}
	return &Store{
		src: src,
		st:  st,
		fs:  filesystem,
		log: log,
		now: time.Now,
	}
}

// UpdateConfig hot-reloads source and store settings.
func (s *Store) UpdateConfig(src config.SourceConfig, st config.StoreConfig) {
	s.mu.Lock()
	s.src = src
	s.st = st
	s.mu.Unlock()
}

// view is a consistent copy of the settings one operation runs with.
type view struct {
	root       string
	storeName  string
	dir        string
	ignoreFile string
	tracked    []string
	max        int
}

func (s *Store) view() view {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return view{
		root:       s.src.Root,
		storeName:  s.st.Dir,
		dir:        filepath.Join(s.src.Root, s.st.Dir),
		ignoreFile: s.src.IgnoreFile,
		tracked:    append([]string(nil), s.src.TrackedExtensions...),
		max:        s.st.MaxSnapshots,
	}
}

func (v view) registryPath() string {
	return filepath.Join(v.dir, registryFile)
}

// Dir returns the resolved store subtree path.
func (s *Store) Dir() string {
	return s.view().dir
}

// loadRegistry reads the registry, treating an unreadable file as empty.
func (s *Store) loadRegistry(v view) *registry.Registry {
	reg, err := registry.Load(v.registryPath(), v.tracked)
	if err != nil {
		s.log.Warn("registry unreadable, resetting: %v", err)
		return registry.New(v.tracked)
	}
	return reg
}

// List returns the retained snapshot records, oldest first.
func (s *Store) List() []registry.Snapshot {
	return s.loadRegistry(s.view()).Active
}
