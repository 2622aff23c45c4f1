package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/icpctrainer/trainerlaunch/internal/stamp"
	"github.com/icpctrainer/trainerlaunch/internal/workspace"
	"github.com/spf13/cobra"
)

func newCleanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Remove freshness stamps to force a reinstall",
		RunE:  runClean,
	}
	cmd.Flags().Bool("venv", false, "Remove the whole virtual environment (destructive, requires --force)")
	cmd.Flags().Bool("force", false, "Required to confirm venv removal")
	return cmd
}

func runClean(cmd *cobra.Command, _ []string) error {
	root, _ := cmd.Flags().GetString("root")
	removeVenv, _ := cmd.Flags().GetBool("venv")
	force, _ := cmd.Flags().GetBool("force")

	ctx, err := workspace.Load(root)
	if err != nil {
		return err
	}

	venvDir := ctx.VenvDir()
	if !dirExists(venvDir) {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Nothing to clean: no virtual environment found.")
		return nil
	}

	out := cmd.OutOrStdout()

	if removeVenv {
		if !force {
			return fmt.Errorf("removing the virtual environment is destructive; pass --force to confirm")
		}
		if venvDir == string(filepath.Separator) || venvDir == ctx.Root {
			return fmt.Errorf("refusing to remove %s", venvDir)
		}
		if err := os.RemoveAll(venvDir); err != nil {
			return fmt.Errorf("removing virtual environment: %w", err)
		}
		_, _ = fmt.Fprintf(out, "Virtual environment removed: %s\n", venvDir)
		return nil
	}

	for _, name := range []string{".requirements.stamp", ".pyproject.stamp"} {
		if err := stamp.Remove(ctx.StampPath(name)); err != nil {
			return err
		}
	}
	_, _ = fmt.Fprintln(out, "Freshness stamps removed; the next run will reinstall dependencies.")
	return nil
}
