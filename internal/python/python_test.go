package python

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/icpctrainer/trainerlaunch/internal/testutil"
)

func TestVenvPython_pathLayout(t *testing.T) {
	got := VenvPython(filepath.Join("ws", ".venv"))
	var want string
	if runtime.GOOS == "windows" {
		want = filepath.Join("ws", ".venv", "Scripts", "python.exe")
	} else {
		want = filepath.Join("ws", ".venv", "bin", "python")
	}
	if got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestIsInstalled(t *testing.T) {
	testutil.FakePython(t)
	if !IsInstalled("python3") {
		t.Error("fake python3 should be found on PATH")
	}
	if IsInstalled("definitely-not-an-interpreter") {
		t.Error("nonexistent interpreter should not be found")
	}
}

func TestVersion(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("fake interpreter is a shell script")
	}
	testutil.FakePython(t)
	ver, err := Version("python3")
	if err != nil {
		t.Fatalf("Version failed: %v", err)
	}
	if ver != "Python 3.12.1" {
		t.Errorf("unexpected version: %q", ver)
	}
}

func TestCreateVenv_producesInterpreter(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("fake interpreter is a shell script")
	}
	testutil.FakePython(t)
	venv := filepath.Join(t.TempDir(), ".venv")

	if err := CreateVenv("python3", venv); err != nil {
		t.Fatalf("CreateVenv failed: %v", err)
	}
	if !IsExecutable(VenvPython(venv)) {
		t.Error("venv python should exist and be executable")
	}
}

func TestIsExecutable(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("permission bits are unix-specific")
	}
	dir := t.TempDir()

	plain := filepath.Join(dir, "plain")
	if err := os.WriteFile(plain, []byte("data"), 0644); err != nil {
		t.Fatal(err)
	}
	if IsExecutable(plain) {
		t.Error("non-executable file reported executable")
	}

	script := filepath.Join(dir, "script")
	if err := os.WriteFile(script, []byte("#!/bin/sh\n"), 0755); err != nil { //nolint:gosec // test fixture
		t.Fatal(err)
	}
	if !IsExecutable(script) {
		t.Error("executable file not reported executable")
	}

	if IsExecutable(filepath.Join(dir, "missing")) {
		t.Error("missing file reported executable")
	}
	if IsExecutable(dir) {
		t.Error("directory reported executable")
	}
}

func TestHasPip_andEnsurePip(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("fake interpreter is a shell script")
	}
	testutil.FakePython(t)
	venv := filepath.Join(t.TempDir(), ".venv")
	if err := CreateVenv("python3", venv); err != nil {
		t.Fatal(err)
	}

	vp := VenvPython(venv)
	if !HasPip(vp) {
		t.Error("fake interpreter should report pip present")
	}
	if err := EnsurePip(vp); err != nil {
		t.Errorf("EnsurePip failed: %v", err)
	}
}

func TestInstallRequirements_failurePropagates(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("fake interpreter is a shell script")
	}
	testutil.FakePython(t)
	venv := filepath.Join(t.TempDir(), ".venv")
	if err := CreateVenv("python3", venv); err != nil {
		t.Fatal(err)
	}

	t.Setenv("FAKE_PIP_FAIL", "1")
	err := InstallRequirements(VenvPython(venv), "requirements.txt")
	if err == nil {
		t.Fatal("expected install failure to propagate")
	}
}
