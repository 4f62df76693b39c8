package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Store.Dir != DefaultStoreDir {
		t.Errorf("Store.Dir = %q, want %q", cfg.Store.Dir, DefaultStoreDir)
	}
	if cfg.Store.MaxSnapshots != DefaultMaxSnapshots {
		t.Errorf("Store.MaxSnapshots = %d, want %d", cfg.Store.MaxSnapshots, DefaultMaxSnapshots)
	}
	if len(cfg.Source.TrackedExtensions) == 0 {
		t.Error("TrackedExtensions should have defaults")
	}
}

func TestLoadExpandsEnvVars(t *testing.T) {
	t.Setenv("VECTA_TEST_ROOT", "/data/project")

	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := "source:\n  root: $(VECTA_TEST_ROOT)\n"
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Source.Root != "/data/project" {
		t.Errorf("Source.Root = %q, want /data/project", cfg.Source.Root)
	}
}

func TestLoadFillsDefaultsForOmittedFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := "store:\n  maxSnapshots: 5\n"
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Store.MaxSnapshots != 5 {
		t.Errorf("Store.MaxSnapshots = %d, want 5", cfg.Store.MaxSnapshots)
	}
	if cfg.Store.Dir != DefaultStoreDir {
		t.Errorf("Store.Dir = %q, want default", cfg.Store.Dir)
	}
	if cfg.Watch.PollInterval != DefaultPollInterval {
		t.Errorf("Watch.PollInterval = %v, want %v", cfg.Watch.PollInterval, DefaultPollInterval)
	}
}

func TestLoadParsesDurations(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := "watch:\n  mode: poll\n  pollInterval: 10s\n  debounceWindow: 250ms\n"
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Watch.Mode != "poll" {
		t.Errorf("Watch.Mode = %q, want poll", cfg.Watch.Mode)
	}
	if cfg.Watch.PollInterval != 10*time.Second {
		t.Errorf("Watch.PollInterval = %v, want 10s", cfg.Watch.PollInterval)
	}
	if cfg.Watch.DebounceWindow != 250*time.Millisecond {
		t.Errorf("Watch.DebounceWindow = %v, want 250ms", cfg.Watch.DebounceWindow)
	}
}

func TestLoadRejectsBadYaml(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(":\n  - ["), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Load() should fail on invalid yaml")
	}
}
