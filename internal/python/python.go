package python

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
)

// DefaultInterpreter is the base interpreter looked up on PATH when the
// workspace config does not name one.
const DefaultInterpreter = "python3"

// LookPath resolves the base interpreter on the system PATH.
func LookPath(interpreter string) (string, error) {
	path, err := exec.LookPath(interpreter)
	if err != nil {
		return "", fmt.Errorf("locating %s: %w", interpreter, err)
	}
	return path, nil
}

// IsInstalled returns true if the interpreter is available on PATH.
func IsInstalled(interpreter string) bool {
	_, err := exec.LookPath(interpreter)
	return err == nil
}

// Version returns the interpreter's version string, e.g. "Python 3.12.1".
func Version(interpreter string) (string, error) {
	out, err := output(interpreter, "--version")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// CreateVenv creates a virtual environment at dir using the base interpreter.
func CreateVenv(interpreter, dir string) error {
	if err := run(interpreter, "-m", "venv", dir); err != nil {
		return fmt.Errorf("creating virtual environment at %s: %w", dir, err)
	}
	return nil
}

// VenvPython returns the path of the interpreter binary inside a venv.
func VenvPython(venvDir string) string {
	if runtime.GOOS == "windows" {
		return filepath.Join(venvDir, "Scripts", "python.exe")
	}
	return filepath.Join(venvDir, "bin", "python")
}

// IsExecutable reports whether path exists as a regular executable file.
func IsExecutable(path string) bool {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return false
	}
	if runtime.GOOS == "windows" {
		return true
	}
	return info.Mode().Perm()&0111 != 0
}

// HasPip returns true if pip is importable inside the given interpreter.
func HasPip(venvPython string) bool {
	return runQuiet(venvPython, "-m", "pip", "--version") == nil
}

// EnsurePip bootstraps pip inside the venv via the interpreter's built-in
// ensurepip mechanism.
func EnsurePip(venvPython string) error {
	if err := run(venvPython, "-m", "ensurepip", "--upgrade"); err != nil {
		return fmt.Errorf("bootstrapping pip: %w", err)
	}
	return nil
}

// UpgradePip upgrades pip itself inside the venv.
func UpgradePip(venvPython string) error {
	if err := run(venvPython, "-m", "pip", "install", "--upgrade", "pip"); err != nil {
		return fmt.Errorf("upgrading pip: %w", err)
	}
	return nil
}

// InstallRequirements runs a full list-install from a requirements file.
func InstallRequirements(venvPython, requirementsPath string) error {
	if err := run(venvPython, "-m", "pip", "install", "-r", requirementsPath); err != nil {
		return fmt.Errorf("installing from %s: %w", filepath.Base(requirementsPath), err)
	}
	return nil
}

// InstallEditable runs an editable/development install of the project at dir.
func InstallEditable(venvPython, dir string) error {
	if err := run(venvPython, "-m", "pip", "install", "-e", dir); err != nil {
		return fmt.Errorf("installing project in editable mode: %w", err)
	}
	return nil
}

// run executes the interpreter with args, streaming output to the console.
func run(interpreter string, args ...string) error {
	cmd := exec.Command(interpreter, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

// runQuiet executes the interpreter discarding stdout. Stderr is captured
// and included in the error message on failure.
func runQuiet(interpreter string, args ...string) error {
	cmd := exec.Command(interpreter, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s %s: %w: %s", interpreter, strings.Join(args, " "), err, stderr.String())
	}
	return nil
}

// output executes the interpreter and returns its combined stdout+stderr.
// Python historically printed --version to stderr, so both are collected.
func output(interpreter string, args ...string) (string, error) {
	cmd := exec.Command(interpreter, args...)
	var buf bytes.Buffer
	cmd.Stdout = &buf
	cmd.Stderr = &buf
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("%s %s: %w: %s", interpreter, strings.Join(args, " "), err, buf.String())
	}
	return buf.String(), nil
}
