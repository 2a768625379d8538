package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"taskbot/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	dir := t.TempDir()
	cfg, err := config.Load(config.Options{Dir: dir})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Backend != config.BackendFile {
		t.Errorf("expected file backend by default, got %q", cfg.Backend)
	}
	if cfg.DataPath != filepath.Join(dir, config.DataFile) {
		t.Errorf("unexpected default data path: %q", cfg.DataPath)
	}
	if cfg.Quiet || cfg.Debug {
		t.Error("quiet and debug must default to off")
	}
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	content := "backend = \"sqlite\"\nquiet = true\n"
	if err := os.WriteFile(filepath.Join(dir, config.ConfigFile), []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := config.Load(config.Options{Dir: dir})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Backend != config.BackendSQLite {
		t.Errorf("expected sqlite backend from config file, got %q", cfg.Backend)
	}
	if !cfg.Quiet {
		t.Error("expected quiet from config file")
	}
	if cfg.DataPath != filepath.Join(dir, config.DBFile) {
		t.Errorf("expected sqlite default data path, got %q", cfg.DataPath)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, config.ConfigFile), []byte("backend = \"sqlite\"\n"), 0600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("TASKBOT_BACKEND", config.BackendFile)
	t.Setenv("TASKBOT_DATA", "/tmp/elsewhere.yaml")

	cfg, err := config.Load(config.Options{Dir: dir})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Backend != config.BackendFile {
		t.Errorf("expected env to override config file, got %q", cfg.Backend)
	}
	if cfg.DataPath != "/tmp/elsewhere.yaml" {
		t.Errorf("expected env data path, got %q", cfg.DataPath)
	}
}

func TestLoad_FlagsOverrideEnv(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("TASKBOT_BACKEND", config.BackendSQLite)

	cfg, err := config.Load(config.Options{Dir: dir, Backend: config.BackendFile, Debug: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Backend != config.BackendFile {
		t.Errorf("expected flag to override env, got %q", cfg.Backend)
	}
	if !cfg.Debug {
		t.Error("expected debug from flags")
	}
}

func TestLoad_UnknownBackend(t *testing.T) {
	if _, err := config.Load(config.Options{Dir: t.TempDir(), Backend: "carrier-pigeon"}); err == nil {
		t.Fatal("expected error for unknown backend")
	}
}

func TestPaths(t *testing.T) {
	dir := t.TempDir()
	cfg, err := config.Load(config.Options{Dir: dir})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.TokenPath() != filepath.Join(dir, config.TokenFile) {
		t.Errorf("unexpected token path: %q", cfg.TokenPath())
	}
	if cfg.OAuthClientPath() != filepath.Join(dir, config.OAuthClientFile) {
		t.Errorf("unexpected oauth client path: %q", cfg.OAuthClientPath())
	}
	if cfg.LogPath() != filepath.Join(dir, config.LogFile) {
		t.Errorf("unexpected log path: %q", cfg.LogPath())
	}
}
