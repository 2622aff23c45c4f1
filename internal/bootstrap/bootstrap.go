package bootstrap

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/icpctrainer/trainerlaunch/internal/manifest"
	"github.com/icpctrainer/trainerlaunch/internal/python"
	"github.com/icpctrainer/trainerlaunch/internal/stamp"
	"github.com/icpctrainer/trainerlaunch/internal/ui"
	"github.com/icpctrainer/trainerlaunch/internal/workspace"
)

// stageCount is the number of stages reported by Prepare.
const stageCount = 6

// Result describes a prepared environment, ready for delegation.
type Result struct {
	// Python is the venv interpreter to delegate to.
	Python string
	// Module is the target module to invoke with -m.
	Module string
	// PythonPath is the value for the PYTHONPATH variable: the workspace's
	// source directory, followed by any pre-existing entries.
	PythonPath string
	// ExtraEnv holds additional variables from launch.yaml.
	ExtraEnv map[string]string
	// Installed reports whether a dependency install ran.
	Installed bool
	// Source is the dependency manifest that was consulted.
	Source manifest.Source
}

// Prepare runs the bootstrap sequence against a loaded workspace: verify the
// base interpreter, ensure the venv and pip, install dependencies when the
// manifest is newer than its stamp, and compute the child environment.
// The sequence is strictly ordered and fails fast; every failure is an
// *Error naming the stage and its classification.
func Prepare(ctx *workspace.Context, steps *ui.Steps) (*Result, error) {
	interpreter := ctx.Config.EffectiveInterpreter()

	steps.Next("Checking for %s", interpreter)
	if _, err := python.LookPath(interpreter); err != nil {
		return nil, fail(KindMissingDependency, "interpreter lookup",
			fmt.Errorf("%s is not installed or not on PATH", interpreter))
	}

	venvDir := ctx.VenvDir()
	steps.Next("Ensuring virtual environment at %s", ctx.Config.EffectiveVenvDir())
	if _, err := os.Stat(venvDir); os.IsNotExist(err) {
		if err := python.CreateVenv(interpreter, venvDir); err != nil {
			return nil, fail(KindEnvironmentCreationError, "venv creation", err)
		}
	}

	venvPython := python.VenvPython(venvDir)
	if !python.IsExecutable(venvPython) {
		return nil, fail(KindCorruptEnvironment, "venv verification",
			fmt.Errorf("%s is missing or not executable; remove the environment and rerun", venvPython))
	}

	steps.Next("Ensuring pip is available")
	if !python.HasPip(venvPython) {
		if err := python.EnsurePip(venvPython); err != nil {
			steps.Log("ensurepip: %v", err)
		}
		if !python.HasPip(venvPython) {
			return nil, fail(KindPackageManagerUnavailable, "pip bootstrap",
				fmt.Errorf("pip is unavailable inside %s", venvDir))
		}
	}

	steps.Next("Selecting dependency manifest")
	src := manifest.Detect(ctx.Root)

	installed := false
	steps.Next("Installing dependencies")
	switch src.Kind {
	case manifest.KindNone:
		steps.Warn("no %s or %s found; skipping dependency installation",
			manifest.RequirementsFile, manifest.PyprojectFile)
	default:
		var err error
		installed, err = installIfStale(ctx, src, venvPython, steps)
		if err != nil {
			return nil, err
		}
	}

	steps.Next("Configuring module search path")
	res := &Result{
		Python:     venvPython,
		Module:     ctx.Config.EffectiveModule(),
		PythonPath: prependPath(ctx.SrcDir(), os.Getenv("PYTHONPATH")),
		ExtraEnv:   ctx.Config.Env,
		Installed:  installed,
		Source:     src,
	}
	return res, nil
}

// NewSteps creates a step printer sized for the Prepare sequence.
func NewSteps(out io.Writer) *ui.Steps {
	return ui.NewSteps(out, stageCount)
}

// installIfStale compares the manifest against its freshness stamp and runs
// the install path for the chosen manifest form when needed. The stamp is
// written only after the whole install succeeds.
func installIfStale(ctx *workspace.Context, src manifest.Source, venvPython string, steps *ui.Steps) (bool, error) {
	stampPath := ctx.StampPath(src.StampName())

	modTime, err := src.ModTime()
	if err != nil {
		return false, fail(KindInstallationError, "manifest inspection", err)
	}
	need, err := stamp.NeedsInstall(stampPath, modTime)
	if err != nil {
		return false, fail(KindInstallationError, "stamp inspection", err)
	}
	if !need {
		steps.Log("Dependencies already up to date")
		return false, nil
	}

	if err := python.UpgradePip(venvPython); err != nil {
		return false, fail(KindInstallationError, "pip upgrade", err)
	}

	switch src.Kind {
	case manifest.KindRequirements:
		if err := python.InstallRequirements(venvPython, src.Path); err != nil {
			return false, fail(KindInstallationError, "requirements install", err)
		}
	case manifest.KindPyproject:
		if err := python.InstallEditable(venvPython, ctx.Root); err != nil {
			return false, fail(KindInstallationError, "editable install", err)
		}
	}

	if err := stamp.Write(stampPath, time.Now()); err != nil {
		return false, fail(KindInstallationError, "stamp write", err)
	}
	return true, nil
}

// prependPath puts dir in front of an existing search-path value, keeping
// any pre-existing entries after it.
func prependPath(dir, existing string) string {
	if existing == "" {
		return dir
	}
	return dir + string(os.PathListSeparator) + existing
}

// Env merges the prepared environment into base, overriding PYTHONPATH and
// applying launch.yaml extras. Other entries pass through unchanged.
func (r *Result) Env(base []string) []string {
	overrides := map[string]string{"PYTHONPATH": r.PythonPath}
	for k, v := range r.ExtraEnv {
		overrides[k] = v
	}

	env := make([]string, 0, len(base)+len(overrides))
	for _, kv := range base {
		name, _, ok := strings.Cut(kv, "=")
		if ok {
			if _, replaced := overrides[name]; replaced {
				continue
			}
		}
		env = append(env, kv)
	}
	for k, v := range overrides {
		env = append(env, k+"="+v)
	}
	return env
}

// Argv returns the delegated argument vector: the venv interpreter invoking
// the target module with the forwarded arguments appended unchanged.
func (r *Result) Argv(forwarded []string) []string {
	argv := []string{r.Python, "-m", r.Module}
	return append(argv, forwarded...)
}
