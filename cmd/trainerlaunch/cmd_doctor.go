package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/icpctrainer/trainerlaunch/internal/manifest"
	"github.com/icpctrainer/trainerlaunch/internal/python"
	"github.com/icpctrainer/trainerlaunch/internal/workspace"
	"github.com/spf13/cobra"
)

func newDoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Diagnose environment for common issues",
		RunE:  runDoctor,
	}
}

func runDoctor(cmd *cobra.Command, _ []string) error {
	root, _ := cmd.Flags().GetString("root")
	out := cmd.OutOrStdout()
	ok := true

	ctx, err := workspace.Load(root)
	if err != nil {
		return err
	}

	interpreter := ctx.Config.EffectiveInterpreter()
	fmt.Fprintf(out, "Checking %s... ", interpreter)
	path, lookErr := python.LookPath(interpreter)
	if lookErr != nil {
		fmt.Fprintln(out, "NOT FOUND")
		fmt.Fprintf(out, "  %s is required. Install it from https://www.python.org/\n", interpreter)
		ok = false
	} else {
		fmt.Fprintf(out, "found at %s\n", path)
	}

	if lookErr == nil {
		fmt.Fprintf(out, "Checking %s version... ", interpreter)
		if ver, verr := python.Version(interpreter); verr != nil {
			fmt.Fprintln(out, "ERROR")
			ok = false
		} else {
			fmt.Fprintln(out, ver)
		}
	}

	fmt.Fprint(out, "Checking virtual environment... ")
	venvDir := ctx.VenvDir()
	venvPython := python.VenvPython(venvDir)
	switch {
	case !dirExists(venvDir):
		fmt.Fprintln(out, "not created (run will create it)")
	case !python.IsExecutable(venvPython):
		fmt.Fprintln(out, "CORRUPT")
		fmt.Fprintf(out, "  %s is missing or not executable; remove %s and rerun\n", venvPython, venvDir)
		ok = false
	case !python.HasPip(venvPython):
		fmt.Fprintln(out, "pip missing (run will bootstrap it)")
	default:
		fmt.Fprintln(out, "ok")
	}

	fmt.Fprint(out, "Checking dependency manifest... ")
	src := manifest.Detect(ctx.Root)
	if src.Kind == manifest.KindNone {
		fmt.Fprintln(out, "none found (dependency installation will be skipped)")
	} else {
		fmt.Fprintln(out, filepath.Base(src.Path))
	}

	fmt.Fprint(out, "Checking workspace is writable... ")
	if isWritable(ctx.Root) {
		fmt.Fprintln(out, "ok")
	} else {
		fmt.Fprintln(out, "FAILED")
		ok = false
	}

	if ok {
		fmt.Fprintln(out, "\nAll checks passed.")
		return nil
	}
	fmt.Fprintln(out, "\nSome checks failed. See above for details.")
	return fmt.Errorf("doctor checks failed")
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// isWritable probes a directory by creating and removing a temp file.
func isWritable(dir string) bool {
	f, err := os.CreateTemp(dir, ".trainerlaunch-probe-*")
	if err != nil {
		return false
	}
	name := f.Name()
	_ = f.Close()
	_ = os.Remove(name)
	return true
}
