package bootstrap

import (
	"errors"
	"fmt"
)

// Kind classifies a bootstrap failure. Every kind is fatal; the bootstrapper
// never retries.
type Kind string

const (
	KindUnresolvableWorkspace     Kind = "UnresolvableWorkspace"
	KindMissingDependency         Kind = "MissingDependency"
	KindEnvironmentCreationError  Kind = "EnvironmentCreationError"
	KindCorruptEnvironment        Kind = "CorruptEnvironment"
	KindPackageManagerUnavailable Kind = "PackageManagerUnavailable"
	KindInstallationError         Kind = "InstallationError"
)

// Error is a bootstrap-stage failure carrying its classification and the
// name of the stage that failed.
type Error struct {
	Kind  Kind
	Stage string
	Err   error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Kind, e.Stage)
	}
	return fmt.Sprintf("%s: %s: %v", e.Kind, e.Stage, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

func fail(kind Kind, stage string, err error) *Error {
	return &Error{Kind: kind, Stage: stage, Err: err}
}

// KindOf returns the classification of a bootstrap error, or empty for
// other errors.
func KindOf(err error) Kind {
	var be *Error
	if errors.As(err, &be) {
		return be.Kind
	}
	return ""
}
