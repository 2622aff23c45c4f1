package manifest

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Fixed manifest file names, checked in priority order.
const (
	RequirementsFile = "requirements.txt"
	PyprojectFile    = "pyproject.toml"
)

// Kind identifies which dependency manifest form was found.
type Kind string

const (
	// KindRequirements is a flat list-of-packages file (requirements.txt).
	KindRequirements Kind = "requirements"
	// KindPyproject is a project-descriptor file (pyproject.toml), installed
	// as an editable/development install.
	KindPyproject Kind = "pyproject"
	// KindNone means neither manifest form exists in the workspace.
	KindNone Kind = "none"
)

// Source is a resolved dependency manifest within a workspace.
type Source struct {
	Kind Kind
	Path string // absolute path; empty when Kind is KindNone
}

// Detect selects the dependency source for a workspace root.
// requirements.txt takes priority over pyproject.toml when both exist;
// this ordering is deliberate and the two are never reconciled.
func Detect(root string) Source {
	req := filepath.Join(root, RequirementsFile)
	if isRegular(req) {
		return Source{Kind: KindRequirements, Path: req}
	}
	proj := filepath.Join(root, PyprojectFile)
	if isRegular(proj) {
		return Source{Kind: KindPyproject, Path: proj}
	}
	return Source{Kind: KindNone}
}

// ModTime returns the manifest file's modification time.
func (s Source) ModTime() (time.Time, error) {
	if s.Kind == KindNone {
		return time.Time{}, fmt.Errorf("no manifest to stat")
	}
	info, err := os.Stat(s.Path)
	if err != nil {
		return time.Time{}, fmt.Errorf("reading manifest metadata: %w", err)
	}
	return info.ModTime(), nil
}

// StampName returns the freshness-stamp file name paired with this
// manifest form. Each form keeps its own stamp; they are independent.
func (s Source) StampName() string {
	switch s.Kind {
	case KindRequirements:
		return ".requirements.stamp"
	case KindPyproject:
		return ".pyproject.stamp"
	default:
		return ""
	}
}

func isRegular(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
