package stamp

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Write records a successful dependency install by writing the given time
// (normalized to UTC) to the stamp file. The file's own modification time is
// what staleness checks compare against; the content is for humans.
func Write(path string, at time.Time) error {
	data := at.UTC().Format(time.RFC3339) + "\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		return fmt.Errorf("writing stamp: %w", err)
	}
	return nil
}

// Read returns the install time recorded in a stamp file.
func Read(path string) (time.Time, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return time.Time{}, fmt.Errorf("reading stamp: %w", err)
	}
	at, err := time.Parse(time.RFC3339, strings.TrimSpace(string(data)))
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing stamp: %w", err)
	}
	return at, nil
}

// NeedsInstall reports whether an install must run: true when the stamp is
// absent or the manifest was modified strictly after the stamp was written.
func NeedsInstall(path string, manifestModTime time.Time) (bool, error) {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return true, nil
	}
	if err != nil {
		return false, fmt.Errorf("reading stamp metadata: %w", err)
	}
	return manifestModTime.After(info.ModTime()), nil
}

// Remove deletes a stamp file. Missing files are not an error.
func Remove(path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing stamp: %w", err)
	}
	return nil
}
