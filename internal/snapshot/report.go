package snapshot

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/rporley/vecta-snapshot/internal/scan"
)

// Report returns a human-readable summary of the store state, suitable
// for pasting into a chat or issue.
func (s *Store) Report() string {
	v := s.view()
	reg := s.loadRegistry(v)

	lines := []string{
		"VECTA 12D - SYSTEM STATUS",
		strings.Repeat("=", 50),
		fmt.Sprintf("Date: %s", s.now().Format("2006-01-02 15:04:05")),
		fmt.Sprintf("Root: %s", v.root),
		fmt.Sprintf("Store: %s", v.dir),
		"",
		fmt.Sprintf("Snapshots retained: %d (max %d)", len(reg.Active), v.max),
	}

	for _, snap := range reg.Active {
		lines = append(lines, fmt.Sprintf("- %s: %s (%d files)", snap.ID, snap.Reason, snap.FilesCopied))
	}

	lines = append(lines, "", fmt.Sprintf("Tracked extensions: %s", strings.Join(reg.TrackedExtensions, " ")))

	files, err := scan.Tracked(v.root, v.storeName, reg.TrackedExtensions, v.ignoreFile)
	if err != nil {
		lines = append(lines, fmt.Sprintf("Tracked files: scan failed: %v", err))
	} else {
		var total int64
		for _, rel := range files {
			info, err := s.fs.Stat(filepath.Join(v.root, rel))
			if err != nil {
				continue
			}
			total += info.Size
		}
		lines = append(lines, fmt.Sprintf("Tracked files: %d (%.1f KB)", len(files), float64(total)/1024))
	}

	lines = append(lines,
		"",
		"To restore: vecta-snapshot restore SNAPSHOT_ID",
		"To create a new snapshot: vecta-snapshot snapshot \"reason\"",
	)

	return strings.Join(lines, "\n")
}

// age formats how long ago a snapshot was taken, for list output.
func age(created, now time.Time) string {
	d := now.Sub(created)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	default:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	}
}

// FormatList renders the registry entries for the list command.
func (s *Store) FormatList() string {
	snaps := s.List()
	if len(snaps) == 0 {
		return "No snapshots available."
	}

	now := s.now()
	lines := []string{"Available snapshots:"}
	for _, snap := range snaps {
		lines = append(lines, fmt.Sprintf("- %s: %s (%d files, %s)",
			snap.ID, snap.Reason, snap.FilesCopied, age(snap.Created, now)))
	}
	return strings.Join(lines, "\n")
}
