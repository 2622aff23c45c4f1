// Package python wraps the Python toolchain subprocesses used by the
// bootstrapper: interpreter discovery, virtual environment creation, and
// pip bootstrap/upgrade/install operations.
package python
