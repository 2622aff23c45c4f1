package main

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/icpctrainer/trainerlaunch/internal/manifest"
	"github.com/icpctrainer/trainerlaunch/internal/python"
	"github.com/icpctrainer/trainerlaunch/internal/stamp"
	"github.com/icpctrainer/trainerlaunch/internal/ui"
	"github.com/icpctrainer/trainerlaunch/internal/workspace"
	"github.com/spf13/cobra"
)

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show environment status",
		RunE:  runStatus,
	}
	cmd.Flags().Bool("json", false, "Output as JSON")
	return cmd
}

type envStatus struct {
	Root             string `json:"root"`
	Interpreter      string `json:"interpreter"`
	InterpreterFound bool   `json:"interpreter_found"`
	VenvPresent      bool   `json:"venv_present"`
	VenvHealthy      bool   `json:"venv_healthy"`
	PipAvailable     bool   `json:"pip_available"`
	Manifest         string `json:"manifest,omitempty"`
	ManifestKind     string `json:"manifest_kind"`
	Dependencies     string `json:"dependencies"`
	Module           string `json:"module"`
}

func runStatus(cmd *cobra.Command, _ []string) error {
	root, _ := cmd.Flags().GetString("root")
	asJSON, _ := cmd.Flags().GetBool("json")

	ctx, err := workspace.Load(root)
	if err != nil {
		return err
	}

	s := collectStatus(ctx)
	out := cmd.OutOrStdout()

	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(s)
	}

	tbl := ui.NewTable(out, "ITEM", "STATE")
	tbl.Row("workspace", s.Root)
	tbl.Row("interpreter", boolState(s.InterpreterFound, s.Interpreter, "not found ("+s.Interpreter+")"))
	tbl.Row("venv", venvState(s))
	tbl.Row("pip", boolState(s.PipAvailable, "available", "unavailable"))
	tbl.Row("manifest", manifestState(s))
	tbl.Row("dependencies", s.Dependencies)
	tbl.Row("module", s.Module)
	return tbl.Flush()
}

func collectStatus(ctx *workspace.Context) envStatus {
	s := envStatus{
		Root:        ctx.Root,
		Interpreter: ctx.Config.EffectiveInterpreter(),
		Module:      ctx.Config.EffectiveModule(),
	}
	s.InterpreterFound = python.IsInstalled(s.Interpreter)

	venvDir := ctx.VenvDir()
	if info, err := os.Stat(venvDir); err == nil && info.IsDir() {
		s.VenvPresent = true
	}
	venvPython := python.VenvPython(venvDir)
	if s.VenvPresent && python.IsExecutable(venvPython) {
		s.VenvHealthy = true
		s.PipAvailable = python.HasPip(venvPython)
	}

	src := manifest.Detect(ctx.Root)
	s.ManifestKind = string(src.Kind)
	if src.Kind != manifest.KindNone {
		s.Manifest = filepath.Base(src.Path)
	}

	s.Dependencies = dependencyState(ctx, src)
	return s
}

// dependencyState classifies the install state as missing, stale, fresh,
// or n/a (no manifest to compare against).
func dependencyState(ctx *workspace.Context, src manifest.Source) string {
	if src.Kind == manifest.KindNone {
		return "n/a"
	}
	stampPath := ctx.StampPath(src.StampName())
	if _, err := os.Stat(stampPath); err != nil {
		return "missing"
	}
	modTime, err := src.ModTime()
	if err != nil {
		return "unknown"
	}
	need, err := stamp.NeedsInstall(stampPath, modTime)
	if err != nil || need {
		return "stale"
	}
	return "fresh"
}

func boolState(ok bool, yes, no string) string {
	if ok {
		return yes
	}
	return no
}

func venvState(s envStatus) string {
	switch {
	case !s.VenvPresent:
		return "not created"
	case !s.VenvHealthy:
		return "corrupt (interpreter missing)"
	default:
		return "ok"
	}
}

func manifestState(s envStatus) string {
	if s.ManifestKind == string(manifest.KindNone) {
		return "none"
	}
	return s.Manifest
}
