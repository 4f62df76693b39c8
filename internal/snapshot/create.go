package snapshot

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rporley/vecta-snapshot/internal/registry"
	"github.com/rporley/vecta-snapshot/internal/scan"
)

// Create copies every tracked file into a new timestamped snapshot
// directory, records its metadata and applies retention. Creation is not
// atomic: a failure mid-copy removes the partial directory best-effort
// and returns the error.
func (s *Store) Create(ctx context.Context, reason string) (string, error) {
	v := s.view()

	if err := s.fs.MkdirAll(v.dir); err != nil {
		return "", fmt.Errorf("creating store dir: %w", err)
	}

	reg := s.loadRegistry(v)

	id := idPrefix + s.now().Format(idTimeLayout)
	snapDir := filepath.Join(v.dir, id)

	files, err := scan.Tracked(v.root, v.storeName, reg.TrackedExtensions, v.ignoreFile)
	if err != nil {
		return "", fmt.Errorf("scanning tracked files: %w", err)
	}

	if err := s.fs.MkdirAll(snapDir); err != nil {
		return "", fmt.Errorf("creating snapshot dir: %w", err)
	}

	s.log.Info("creating snapshot %s (%s)", id, reason)

	copied := 0
	for _, rel := range files {
		dst := filepath.Join(snapDir, rel)
		if err := s.fs.MkdirAll(filepath.Dir(dst)); err != nil {
			_ = s.fs.RemoveAll(snapDir)
			return "", fmt.Errorf("creating dir for %s: %w", rel, err)
		}
		if err := s.fs.CopyFile(ctx, filepath.Join(v.root, rel), dst); err != nil {
			_ = s.fs.RemoveAll(snapDir)
			return "", fmt.Errorf("copying %s: %w", rel, err)
		}
		copied++
	}

	meta := registry.Snapshot{
		ID:          id,
		Created:     s.now(),
		Reason:      reason,
		FilesCopied: copied,
	}

	if err := writeMetadata(snapDir, meta); err != nil {
		_ = s.fs.RemoveAll(snapDir)
		return "", err
	}

	evicted := reg.Append(meta, v.max)
	for _, old := range evicted {
		s.log.Info("evicting snapshot %s", old.ID)
		if err := s.fs.RemoveAll(filepath.Join(v.dir, old.ID)); err != nil {
			s.log.Error("removing evicted snapshot %s: %v", old.ID, err)
		}
	}

	if err := reg.Save(v.registryPath()); err != nil {
		return "", err
	}

	s.log.Info("snapshot %s created, %d files", id, copied)
	return id, nil
}

// writeMetadata stores the snapshot's own metadata record inside its
// directory, mirroring the registry entry.
func writeMetadata(snapDir string, meta registry.Snapshot) error {
	data, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding metadata: %w", err)
	}
	path := filepath.Join(snapDir, metadataFile)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing metadata: %w", err)
	}
	return nil
}
