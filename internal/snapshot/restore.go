package snapshot

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// Restore copies every file from the snapshot directory back to its
// relative path under the root, overwriting existing files. The registry
// is not touched. A missing snapshot is reported as ErrNotFound before
// anything is written.
func (s *Store) Restore(ctx context.Context, id string) error {
	v := s.view()
	snapDir := filepath.Join(v.dir, id)

	st, err := os.Stat(snapDir)
	if err != nil || !st.IsDir() {
		return fmt.Errorf("%s: %w", id, ErrNotFound)
	}

	s.log.Info("restoring snapshot %s", id)

	restored := 0
	err = filepath.Walk(snapDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(snapDir, path)
		if err != nil {
			return err
		}
		if rel == metadataFile {
			return nil
		}

		target := filepath.Join(v.root, rel)
		if err := s.fs.MkdirAll(filepath.Dir(target)); err != nil {
			return fmt.Errorf("creating dir for %s: %w", rel, err)
		}
		if err := s.fs.CopyFile(ctx, path, target); err != nil {
			return fmt.Errorf("restoring %s: %w", rel, err)
		}

		restored++
		return nil
	})
	if err != nil {
		return err
	}

	s.log.Info("snapshot %s restored, %d files", id, restored)
	return nil
}
