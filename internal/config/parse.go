package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load reads and validates a launch.yaml file.
func Load(path string) (*Launch, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is the workspace config path
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	return Parse(data)
}

// Parse parses and validates launch.yaml content.
func Parse(data []byte) (*Launch, error) {
	var l Launch
	if err := yaml.Unmarshal(data, &l); err != nil {
		return nil, fmt.Errorf("parsing config YAML: %w", err)
	}
	if err := validate(&l); err != nil {
		return nil, err
	}
	return &l, nil
}

// Validate checks a launch config for errors.
func Validate(l *Launch) error { return validate(l) }

// Save validates and writes a launch config to disk.
func Save(path string, l *Launch) error {
	if err := validate(l); err != nil {
		return err
	}
	data, err := yaml.Marshal(l)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil { //nolint:gosec // config file needs to be readable
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

func validate(l *Launch) error {
	if l.Version != 1 {
		return fmt.Errorf("unsupported config version: %d (expected 1)", l.Version)
	}
	if err := validatePath(l.VenvDir, "venv_dir"); err != nil {
		return err
	}
	if err := validatePath(l.SrcDir, "src_dir"); err != nil {
		return err
	}
	if err := validateModule(l.EffectiveModule()); err != nil {
		return err
	}
	for k := range l.Env {
		if k == "" || strings.Contains(k, "=") {
			return fmt.Errorf("config: invalid env variable name %q", k)
		}
	}
	return nil
}

// validateModule ensures the target looks like a dotted Python module path.
func validateModule(m string) error {
	for _, part := range strings.Split(m, ".") {
		if part == "" {
			return fmt.Errorf("config: module must be a dotted module path: %q", m)
		}
		for i, r := range part {
			ok := r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (i > 0 && r >= '0' && r <= '9')
			if !ok {
				return fmt.Errorf("config: module must be a dotted module path: %q", m)
			}
		}
	}
	return nil
}

// validatePath ensures a path is relative and does not escape the workspace.
func validatePath(p, label string) error {
	if p == "" {
		return nil
	}
	if filepath.IsAbs(p) {
		return fmt.Errorf("config: %s: absolute path is not allowed: %s", label, p)
	}
	cleaned := filepath.Clean(p)
	if cleaned == ".." || strings.HasPrefix(cleaned, ".."+string(filepath.Separator)) {
		return fmt.Errorf("config: %s: path must not escape workspace (contains ..): %s", label, p)
	}
	return nil
}
