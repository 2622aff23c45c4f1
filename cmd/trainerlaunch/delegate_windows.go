//go:build windows

package main

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
)

// execReplace approximates process-image replacement on windows: spawn the
// child, wait for it, and exit with its code so nothing runs afterwards.
func execReplace(argv, env []string) error {
	cmd := exec.Command(argv[0], argv[1:]...) //nolint:gosec // argv is the prepared venv interpreter
	cmd.Env = env
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.ExitCode())
		}
		return fmt.Errorf("launching %s: %w", argv[0], err)
	}
	os.Exit(0)
	return nil
}
