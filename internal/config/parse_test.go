package config

import (
	"errors"
	"io/fs"
	"path/filepath"
	"strings"
	"testing"
)

func TestParse_full(t *testing.T) {
	data := []byte(`
version: 1
interpreter: python3.12
venv_dir: .env
src_dir: lib
module: trainer.app
env:
  TRAINER_DB: trainer.db
`)
	l, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if l.EffectiveInterpreter() != "python3.12" {
		t.Errorf("interpreter: %s", l.EffectiveInterpreter())
	}
	if l.EffectiveVenvDir() != ".env" {
		t.Errorf("venv_dir: %s", l.EffectiveVenvDir())
	}
	if l.EffectiveSrcDir() != "lib" {
		t.Errorf("src_dir: %s", l.EffectiveSrcDir())
	}
	if l.EffectiveModule() != "trainer.app" {
		t.Errorf("module: %s", l.EffectiveModule())
	}
	if l.Env["TRAINER_DB"] != "trainer.db" {
		t.Errorf("env: %v", l.Env)
	}
}

func TestParse_defaultsApply(t *testing.T) {
	l, err := Parse([]byte("version: 1\n"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if l.EffectiveInterpreter() != DefaultInterpreter {
		t.Errorf("interpreter default: %s", l.EffectiveInterpreter())
	}
	if l.EffectiveVenvDir() != DefaultVenvDir {
		t.Errorf("venv default: %s", l.EffectiveVenvDir())
	}
	if l.EffectiveSrcDir() != DefaultSrcDir {
		t.Errorf("src default: %s", l.EffectiveSrcDir())
	}
	if l.EffectiveModule() != DefaultModule {
		t.Errorf("module default: %s", l.EffectiveModule())
	}
}

func TestParse_rejectsBadVersion(t *testing.T) {
	if _, err := Parse([]byte("version: 2\n")); err == nil {
		t.Error("expected version error")
	}
}

func TestParse_rejectsAbsolutePaths(t *testing.T) {
	_, err := Parse([]byte("version: 1\nvenv_dir: /tmp/venv\n"))
	if err == nil || !strings.Contains(err.Error(), "absolute path") {
		t.Errorf("expected absolute-path error, got %v", err)
	}
}

func TestParse_rejectsEscapingPaths(t *testing.T) {
	_, err := Parse([]byte("version: 1\nsrc_dir: ../elsewhere\n"))
	if err == nil || !strings.Contains(err.Error(), "escape") {
		t.Errorf("expected escape error, got %v", err)
	}
}

func TestParse_rejectsBadModule(t *testing.T) {
	for _, m := range []string{".tui", "trainer..tui", "trainer.tui.", "trainer/tui", "1trainer"} {
		if _, err := Parse([]byte("version: 1\nmodule: " + m + "\n")); err == nil {
			t.Errorf("module %q should be rejected", m)
		}
	}
}

func TestParse_rejectsBadEnvName(t *testing.T) {
	if _, err := Parse([]byte("version: 1\nenv:\n  \"A=B\": x\n")); err == nil {
		t.Error("env name containing = should be rejected")
	}
}

func TestSaveLoad_roundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	in := Default()
	in.Module = "trainer.app"

	if err := Save(path, in); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	out, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if out.Module != "trainer.app" || out.Version != 1 {
		t.Errorf("round trip mismatch: %+v", out)
	}
}

func TestLoad_missingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), FileName))
	if err == nil || !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected not-exist error, got %v", err)
	}
}
