package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/rporley/vecta-snapshot/internal/config"
	"github.com/rporley/vecta-snapshot/internal/dimension"
	"github.com/rporley/vecta-snapshot/internal/logging"
	"github.com/rporley/vecta-snapshot/internal/mailbox"
	"github.com/rporley/vecta-snapshot/internal/sched"
	"github.com/rporley/vecta-snapshot/internal/snapshot"
	"github.com/rporley/vecta-snapshot/internal/watcher"
	"github.com/rporley/vecta-snapshot/internal/worker"
)

const defaultConfigPath = "config.yaml"

func configPath() string {
	if p := os.Getenv("VECTA_SNAPSHOT_CONFIG"); p != "" {
		return p
	}
	return defaultConfigPath
}

func usage() {
	fmt.Println("Usage: vecta-snapshot [command]")
	fmt.Println("Commands:")
	fmt.Println("  snapshot [reason]  - create a new snapshot")
	fmt.Println("  restore [id]       - restore a snapshot")
	fmt.Println("  list               - list retained snapshots")
	fmt.Println("  report             - print system status report")
	fmt.Println("  watch              - run continuously, snapshotting on change")
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	cfg, err := config.Load(configPath())
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logg := logging.StdLogger{Verbose: cfg.Logging.Level == "debug"}
	store := snapshot.New(cfg.Source, cfg.Store, logg, nil)

	ctx := context.Background()

	switch cmd := os.Args[1]; cmd {
	case "snapshot":
		reason := "Manual snapshot"
		if len(os.Args) > 2 {
			reason = strings.Join(os.Args[2:], " ")
		}
		id, err := store.Create(ctx, reason)
		if err != nil {
			logg.Error("snapshot failed: %v", err)
			os.Exit(1)
		}
		fmt.Printf("Snapshot created: %s\n", id)

	case "restore":
		if len(os.Args) < 3 {
			fmt.Println("A snapshot id is required")
			os.Exit(2)
		}
		id := os.Args[2]
		err := store.Restore(ctx, id)
		switch {
		case errors.Is(err, snapshot.ErrNotFound):
			fmt.Printf("Snapshot not found: %s\n", id)
			os.Exit(1)
		case err != nil:
			logg.Error("restore failed: %v", err)
			os.Exit(1)
		}
		fmt.Printf("Snapshot restored: %s\n", id)

	case "list":
		fmt.Println(store.FormatList())

	case "report":
		fmt.Println(store.Report())
		fmt.Println()
		fmt.Println(dimensionProfile())

	case "watch":
		runWatch(cfg, logg, store)

	default:
		fmt.Printf("Unknown command: %s\n", cmd)
		usage()
		os.Exit(2)
	}
}

// dimensionProfile renders the static 12-D profile for the report.
func dimensionProfile() string {
	v := dimension.Current()

	lines := []string{fmt.Sprintf("Dimension profile (magnitude %.3f):", v.Magnitude())}
	for _, d := range dimension.All() {
		lines = append(lines, fmt.Sprintf("%3d. %-24s %.2f", d.Number, d.Name, d.Value))
	}
	return strings.Join(lines, "\n")
}

// runWatch runs the long-lived mode: watcher + worker + optional cron
// schedule, with graceful shutdown and SIGHUP config reload.
func runWatch(cfg *config.Config, logg logging.Logger, store *snapshot.Store) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Println("shutting down...")
		cancel()
	}()

	// Mailbox for snapshot requests
	mb := mailbox.New[worker.Request]()

	// Worker (snapshot writer)
	w := worker.New(store, logg, mb)

	// Watcher (detects tracked-file changes and fills the mailbox)
	watch := watcher.New(cfg.Source, cfg.Store, cfg.Watch, logg, mb)

	// Optional cron schedule
	if cfg.Watch.Schedule != "" {
		s, err := sched.New(cfg.Watch.Schedule, mb, logg)
		if err != nil {
			log.Fatalf("failed to start scheduler: %v", err)
		}
		s.Start()
		defer s.Stop()
	}

	// Start worker loop
	go w.Start(ctx)

	// Start watcher loop
	go func() {
		if err := watch.Start(ctx); err != nil {
			log.Fatalf("failed to start watcher: %v", err)
		}
	}()

	// Hot reload on SIGHUP
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGHUP)

		for range sigCh {
			newCfg, err := config.Load(configPath())
			if err != nil {
				logg.Error("config reload failed: %v", err)
				continue
			}

			store.UpdateConfig(newCfg.Source, newCfg.Store)
			watch.UpdateConfig(newCfg.Source, newCfg.Store, newCfg.Watch)

			logg.Info("config reloaded")
		}
	}()

	<-ctx.Done()
	log.Println("exit complete")
}
