package registry

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestAppendWithinBound(t *testing.T) {
	r := New([]string{".py"})

	for i := 0; i < 3; i++ {
		evicted := r.Append(Snapshot{ID: string(rune('A' + i))}, 3)
		if evicted != nil {
			t.Errorf("Append #%d evicted %v, want none", i, evicted)
		}
	}

	if len(r.Active) != 3 {
		t.Fatalf("len(Active) = %d, want 3", len(r.Active))
	}
	if r.TotalSnapshots != 3 {
		t.Errorf("TotalSnapshots = %d, want 3", r.TotalSnapshots)
	}
}

func TestAppendEvictsOldestFirst(t *testing.T) {
	r := New(nil)

	r.Append(Snapshot{ID: "A"}, 3)
	r.Append(Snapshot{ID: "B"}, 3)
	r.Append(Snapshot{ID: "C"}, 3)
	evicted := r.Append(Snapshot{ID: "D"}, 3)

	if len(evicted) != 1 || evicted[0].ID != "A" {
		t.Fatalf("evicted = %v, want [A]", evicted)
	}

	want := []string{"B", "C", "D"}
	if len(r.Active) != len(want) {
		t.Fatalf("len(Active) = %d, want %d", len(r.Active), len(want))
	}
	for i, id := range want {
		if r.Active[i].ID != id {
			t.Errorf("Active[%d].ID = %q, want %q", i, r.Active[i].ID, id)
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "registry.json")

	r, err := Load(path, []string{".py", ".md"})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(r.Active) != 0 {
		t.Errorf("len(Active) = %d, want 0", len(r.Active))
	}
	if len(r.TrackedExtensions) != 2 {
		t.Errorf("TrackedExtensions = %v, want 2 entries", r.TrackedExtensions)
	}
	if r.Version != Version {
		t.Errorf("Version = %q, want %q", r.Version, Version)
	}
}

func TestLoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "registry.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path, nil); err == nil {
		t.Error("Load() on corrupt file should report an error")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "registry.json")

	r := New([]string{".py"})
	r.Append(Snapshot{
		ID:          "snap_20251226_033004",
		Created:     time.Date(2025, 12, 26, 3, 30, 4, 0, time.UTC),
		Reason:      "before refactor",
		FilesCopied: 7,
	}, 3)

	if err := r.Save(path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	got, err := Load(path, nil)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(got.Active) != 1 {
		t.Fatalf("len(Active) = %d, want 1", len(got.Active))
	}
	if got.Active[0] != r.Active[0] {
		t.Errorf("Active[0] = %+v, want %+v", got.Active[0], r.Active[0])
	}
	if got.TotalSnapshots != 1 {
		t.Errorf("TotalSnapshots = %d, want 1", got.TotalSnapshots)
	}
}
