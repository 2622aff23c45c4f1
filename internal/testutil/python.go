package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// FakePython installs a stub python3 interpreter on PATH for the duration of
// the test and returns the path of a log file that records every invocation.
//
// The stub understands the subset of the toolchain the bootstrapper uses:
// --version, -m venv <dir> (creates <dir>/bin/python as a wrapper that
// re-execs the stub), -m ensurepip, and -m pip. Setting FAKE_PIP_FAIL=1 in
// the environment makes pip install invocations exit non-zero.
func FakePython(t *testing.T) (logPath string) {
	t.Helper()
	binDir := t.TempDir()
	logPath = filepath.Join(binDir, "invocations.log")

	script := fmt.Sprintf(`#!/bin/sh
echo "python $*" >> %q
case "$1" in
  --version)
    echo "Python 3.12.1"
    exit 0
    ;;
  -m)
    case "$2" in
      venv)
        mkdir -p "$3/bin" || exit 1
        printf '#!/bin/sh\nexec python3 "$@"\n' > "$3/bin/python" || exit 1
        chmod +x "$3/bin/python" || exit 1
        exit 0
        ;;
      ensurepip)
        exit 0
        ;;
      pip)
        if [ "$3" = "install" ] && [ -n "$FAKE_PIP_FAIL" ]; then
          echo "fake pip: install forced to fail" >&2
          exit 1
        fi
        exit 0
        ;;
    esac
    exit 0
    ;;
esac
exit 0
`, logPath)

	path := filepath.Join(binDir, "python3")
	if err := os.WriteFile(path, []byte(script), 0755); err != nil { //nolint:gosec // test stub must be executable
		t.Fatal(err)
	}

	t.Setenv("PATH", binDir+string(os.PathListSeparator)+os.Getenv("PATH"))
	return logPath
}

// PipInstallCount returns how many pip install invocations the fake
// interpreter has recorded. A missing log means zero invocations.
func PipInstallCount(t *testing.T, logPath string) int {
	t.Helper()
	data, err := os.ReadFile(logPath)
	if os.IsNotExist(err) {
		return 0
	}
	if err != nil {
		t.Fatal(err)
	}
	n := 0
	for _, line := range strings.Split(string(data), "\n") {
		if strings.Contains(line, "-m pip install") && !strings.Contains(line, "--upgrade pip") {
			n++
		}
	}
	return n
}

// VenvCreateCount returns how many venv creations the fake interpreter has
// recorded.
func VenvCreateCount(t *testing.T, logPath string) int {
	t.Helper()
	data, err := os.ReadFile(logPath)
	if os.IsNotExist(err) {
		return 0
	}
	if err != nil {
		t.Fatal(err)
	}
	n := 0
	for _, line := range strings.Split(string(data), "\n") {
		if strings.Contains(line, "-m venv") {
			n++
		}
	}
	return n
}
