//go:build !windows

package main

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// execReplace replaces the current process image with argv. On success it
// never returns; the new program's exit code is the invocation's exit code.
func execReplace(argv, env []string) error {
	if err := unix.Exec(argv[0], argv, env); err != nil {
		return fmt.Errorf("launching %s: %w", argv[0], err)
	}
	return nil
}
