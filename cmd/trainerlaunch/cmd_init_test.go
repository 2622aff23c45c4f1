package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/icpctrainer/trainerlaunch/internal/config"
)

func mkdirAll(t *testing.T, ws string, rel string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Join(ws, filepath.FromSlash(rel)), 0755); err != nil {
		t.Fatal(err)
	}
}

func TestRunInit_fromFlags(t *testing.T) {
	ws := t.TempDir()

	out, _, err := execute(t, "--root", ws, "init", "--module", "trainer.app", "--venv", ".env")
	if err != nil {
		t.Fatalf("init failed: %v", err)
	}
	if !strings.Contains(out, "Config written to") {
		t.Errorf("unexpected output:\n%s", out)
	}

	cfg, err := config.Load(filepath.Join(ws, config.FileName))
	if err != nil {
		t.Fatalf("written config does not load: %v", err)
	}
	if cfg.Module != "trainer.app" || cfg.VenvDir != ".env" {
		t.Errorf("config contents: %+v", cfg)
	}
	if cfg.EffectiveInterpreter() != config.DefaultInterpreter {
		t.Errorf("unset fields should fall back to defaults: %+v", cfg)
	}
}

func TestRunInit_refusesOverwrite(t *testing.T) {
	ws := t.TempDir()

	if _, _, err := execute(t, "--root", ws, "init", "--module", "trainer.app"); err != nil {
		t.Fatal(err)
	}
	_, _, err := execute(t, "--root", ws, "init", "--module", "other.app")
	if err == nil || !strings.Contains(err.Error(), "--force") {
		t.Errorf("expected overwrite refusal, got %v", err)
	}

	if _, _, err := execute(t, "--root", ws, "init", "--module", "other.app", "--force"); err != nil {
		t.Fatalf("init --force failed: %v", err)
	}
	cfg, err := config.Load(filepath.Join(ws, config.FileName))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Module != "other.app" {
		t.Errorf("config not overwritten: %+v", cfg)
	}
}

func TestRunInit_validatesModule(t *testing.T) {
	ws := t.TempDir()
	_, _, err := execute(t, "--root", ws, "init", "--module", "not a module")
	if err == nil {
		t.Error("invalid module should be rejected")
	}
}

func TestRunInit_interactiveRequiresTTY(t *testing.T) {
	ws := t.TempDir()
	_, _, err := execute(t, "--root", ws, "init")
	if err == nil || !strings.Contains(err.Error(), "TTY") {
		t.Errorf("expected TTY error, got %v", err)
	}
}
