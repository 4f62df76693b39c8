package config

import "time"

type Config struct {
	Source  SourceConfig  `yaml:"source"`
	Store   StoreConfig   `yaml:"store"`
	Watch   WatchConfig   `yaml:"watch"`
	Logging LoggingConfig `yaml:"logging"`
}

type SourceConfig struct {
	Root              string   `yaml:"root"`
	TrackedExtensions []string `yaml:"trackedExtensions"`
	IgnoreFile        string   `yaml:"ignoreFile"`
}

type StoreConfig struct {
	Dir          string `yaml:"dir"`          // store subtree name, relative to root
	MaxSnapshots int    `yaml:"maxSnapshots"` // FIFO retention bound
}

type WatchConfig struct {
	Mode            string        `yaml:"mode"`           // "auto", "poll", "fsnotify"
	PollInterval    time.Duration `yaml:"pollInterval"`   // e.g. 5s
	DebounceWindow  time.Duration `yaml:"debounceWindow"` // e.g. 500ms
	StabilityWindow time.Duration `yaml:"stabilityWindow"`
	Schedule        string        `yaml:"schedule"` // cron expression, empty disables
}

type LoggingConfig struct {
	Level string `yaml:"level"` // "info", "debug"
}
