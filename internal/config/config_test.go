package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, path, exists, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if exists {
		t.Fatalf("no file should exist at %s", path)
	}
	if cfg.Paths.Bind != defaultBind {
		t.Fatalf("bind = %q", cfg.Paths.Bind)
	}
	if cfg.Production.SchedulingMode != "fixed" || !cfg.Production.StageWorkflow {
		t.Fatalf("production defaults wrong: %+v", cfg.Production)
	}
}

func TestLoadExplicitMissingPathFails(t *testing.T) {
	_, _, _, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err == nil {
		t.Fatal("explicitly requested missing config must fail")
	}
}

func TestLoadParsesAndNormalizes(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
[paths]
data_dir = "` + filepath.Join(dir, "data") + `"
log_dir = "` + filepath.Join(dir, "logs") + `"

[webhook]
secret = "  hunter2  "

[production]
theater_roles = true
scheduling_mode = "OPEN_MIC"

[logging]
level = "DEBUG"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, _, exists, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !exists {
		t.Fatal("expected file to exist")
	}
	if cfg.Webhook.Secret != "hunter2" {
		t.Fatalf("secret not trimmed: %q", cfg.Webhook.Secret)
	}
	if cfg.Production.SchedulingMode != "open_mic" {
		t.Fatalf("scheduling mode not lowered: %q", cfg.Production.SchedulingMode)
	}
	if !cfg.Production.TheaterRoles {
		t.Fatal("theater_roles lost")
	}
	if cfg.Logging.Level != "debug" {
		t.Fatalf("level not lowered: %q", cfg.Logging.Level)
	}
	if cfg.Paths.Bind != defaultBind {
		t.Fatalf("missing bind should default, got %q", cfg.Paths.Bind)
	}
}

func TestLoadRejectsBadSchedulingMode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[production]\nscheduling_mode = \"weekly\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, _, _, err := Load(path); err == nil {
		t.Fatal("expected validation error")
	}
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Paths.DataDir = "/tmp/stagehand-test/data"
	cfg.Paths.LogDir = "/tmp/stagehand-test/logs"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("valid config rejected: %v", err)
	}

	cfg.Paths.DataDir = " "
	if err := cfg.Validate(); err == nil {
		t.Fatal("empty data_dir must fail validation")
	}
}

func TestEnsureDirectories(t *testing.T) {
	base := t.TempDir()
	cfg := Default()
	cfg.Paths.DataDir = filepath.Join(base, "a", "data")
	cfg.Paths.LogDir = filepath.Join(base, "b", "logs")

	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("ensure: %v", err)
	}
	for _, dir := range []string{cfg.Paths.DataDir, cfg.Paths.LogDir} {
		info, err := os.Stat(dir)
		if err != nil || !info.IsDir() {
			t.Fatalf("directory %s missing: %v", dir, err)
		}
	}
}

func TestWriteSample(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	if err := WriteSample(path); err != nil {
		t.Fatalf("write sample: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}
	if !strings.Contains(string(data), "[webhook]") {
		t.Fatal("sample config missing webhook section")
	}

	if err := WriteSample(path); err == nil {
		t.Fatal("second write must refuse to overwrite")
	}
}

func TestExpandPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := expandPath("~/stagehand/config.toml")
	if err != nil {
		t.Fatalf("expand: %v", err)
	}
	if got != filepath.Join(home, "stagehand", "config.toml") {
		t.Fatalf("expanded = %q", got)
	}

	if got, err := expandPath(""); err != nil || got != "" {
		t.Fatalf("empty path: %q, %v", got, err)
	}
}
