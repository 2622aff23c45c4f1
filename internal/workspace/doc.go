// Package workspace integrates config loading with path resolution.
// It provides the Context type that holds the resolved workspace root and
// the derived venv, source, and stamp paths.
package workspace
