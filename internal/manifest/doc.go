// Package manifest locates the workspace's Python dependency manifest.
// Two forms are recognized: a flat requirements.txt and a pyproject.toml
// project descriptor. requirements.txt always wins when both are present.
package manifest
