// Package main is the entry point for the taskbot assistant.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"taskbot/internal/backend/googletasks"
	"taskbot/internal/commands"
	"taskbot/internal/config"
	"taskbot/internal/exitcode"
	"taskbot/internal/logging"
	"taskbot/internal/repl"
	"taskbot/internal/storage"
	"taskbot/internal/task"
	"taskbot/internal/ui"
)

func main() {
	os.Exit(run())
}

func run() int {
	var (
		configDir string
		dataPath  string
		backend   string
		quiet     bool
		debug     bool
	)
	flag.StringVar(&configDir, "config", "", "override config directory")
	flag.StringVar(&dataPath, "data", "", "override task data path")
	flag.StringVar(&backend, "backend", "", "storage backend: file, sqlite or googletasks")
	flag.BoolVar(&quiet, "quiet", false, "suppress confirmations")
	flag.BoolVar(&debug, "debug", false, "write debug logs to the log file")
	flag.Parse()

	// Optional .env for the TASKBOT_* variables.
	godotenv.Load()

	cfg, err := config.Load(config.Options{
		Dir:      configDir,
		DataPath: dataPath,
		Backend:  backend,
		Quiet:    quiet,
		Debug:    debug,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return exitcode.ConfigError
	}
	if err := cfg.EnsureDir(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return exitcode.ConfigError
	}

	logger, logCloser, err := logging.New(cfg.LogPath(), cfg.Debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return exitcode.ConfigError
	}
	defer logCloser.Close()

	// Cancel on interrupt so the loop winds down with a final save.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	store, err := openStore(ctx, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return exitcode.StorageError
	}
	defer store.Close()

	loaded, err := store.Load(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return exitcode.StorageError
	}
	logger.Info("loaded tasks", "backend", cfg.Backend, "count", len(loaded))

	env := &commands.Env{
		Tasks:  task.NewList(loaded...),
		Store:  store,
		Out:    ui.NewConsole(os.Stdout, cfg.Quiet),
		Config: cfg,
		Log:    logger,
	}

	return repl.New(commands.DefaultRegistry, env).Run(ctx, os.Stdin)
}

// openStore selects the storage backend from config.
func openStore(ctx context.Context, cfg *config.Config) (storage.Store, error) {
	switch cfg.Backend {
	case config.BackendFile:
		return storage.NewFileStore(cfg.DataPath), nil
	case config.BackendSQLite:
		return storage.NewSQLiteStore(cfg.DataPath)
	case config.BackendGoogleTasks:
		return googletasks.New(ctx, cfg)
	default:
		return nil, fmt.Errorf("unknown backend: %q", cfg.Backend)
	}
}
