package config

import "time"

const (
	DefaultStoreDir        = ".vecta_snapshots"
	DefaultMaxSnapshots    = 3
	DefaultIgnoreFile      = ".snapshotignore"
	DefaultWatchMode       = "auto"
	DefaultPollInterval    = 5 * time.Second
	DefaultDebounceWindow  = 500 * time.Millisecond
	DefaultStabilityWindow = 300 * time.Millisecond
	DefaultLogLevel        = "info"
)

// Extensions tracked when the config does not name any. Matches the
// file types the project has always archived.
func DefaultTrackedExtensions() []string {
	return []string{".py", ".json", ".txt", ".md", ".bat"}
}

// Default returns a configuration usable without any config file.
func Default() *Config {
	return &Config{
		Source: SourceConfig{
			Root:              ".",
			TrackedExtensions: DefaultTrackedExtensions(),
			IgnoreFile:        DefaultIgnoreFile,
		},
		Store: StoreConfig{
			Dir:          DefaultStoreDir,
			MaxSnapshots: DefaultMaxSnapshots,
		},
		Watch: WatchConfig{
			Mode:            DefaultWatchMode,
			PollInterval:    DefaultPollInterval,
			DebounceWindow:  DefaultDebounceWindow,
			StabilityWindow: DefaultStabilityWindow,
		},
		Logging: LoggingConfig{
			Level: DefaultLogLevel,
		},
	}
}

// applyDefaults fills zero-valued fields after unmarshalling.
func applyDefaults(cfg *Config) {
	if cfg.Source.Root == "" {
		cfg.Source.Root = "."
	}
	if len(cfg.Source.TrackedExtensions) == 0 {
		cfg.Source.TrackedExtensions = DefaultTrackedExtensions()
	}
	if cfg.Source.IgnoreFile == "" {
		cfg.Source.IgnoreFile = DefaultIgnoreFile
	}
	if cfg.Store.Dir == "" {
		cfg.Store.Dir = DefaultStoreDir
	}
	if cfg.Store.MaxSnapshots <= 0 {
		cfg.Store.MaxSnapshots = DefaultMaxSnapshots
	}
	if cfg.Watch.Mode == "" {
		cfg.Watch.Mode = DefaultWatchMode
	}
	if cfg.Watch.PollInterval <= 0 {
		cfg.Watch.PollInterval = DefaultPollInterval
	}
	if cfg.Watch.DebounceWindow <= 0 {
		cfg.Watch.DebounceWindow = DefaultDebounceWindow
	}
	if cfg.Watch.StabilityWindow <= 0 {
		cfg.Watch.StabilityWindow = DefaultStabilityWindow
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = DefaultLogLevel
	}
}
