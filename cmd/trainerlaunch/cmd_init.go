package main

import (
	"fmt"
	"os"

	"github.com/icpctrainer/trainerlaunch/internal/config"
	"github.com/icpctrainer/trainerlaunch/internal/workspace"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func newInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a launch.yaml config interactively or from flags",
		RunE:  runInit,
	}
	cmd.Flags().String("module", "", "Target module to launch (e.g. icpc_trainer.tui)")
	cmd.Flags().String("interpreter", "", "Base interpreter to use (e.g. python3.12)")
	cmd.Flags().String("venv", "", "Virtual environment directory name")
	cmd.Flags().String("src", "", "Source directory prepended to PYTHONPATH")
	cmd.Flags().Bool("force", false, "Overwrite an existing launch.yaml")
	return cmd
}

func runInit(cmd *cobra.Command, _ []string) error {
	root, _ := cmd.Flags().GetString("root")
	module, _ := cmd.Flags().GetString("module")
	interpreter, _ := cmd.Flags().GetString("interpreter")
	venv, _ := cmd.Flags().GetString("venv")
	src, _ := cmd.Flags().GetString("src")
	force, _ := cmd.Flags().GetBool("force")

	ctx, err := workspace.Load(root)
	if err != nil {
		return err
	}

	if _, statErr := os.Stat(ctx.ConfigPath); statErr == nil && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", config.FileName)
	}

	var cfg *config.Launch
	if module == "" && interpreter == "" && venv == "" && src == "" {
		if !term.IsTerminal(int(os.Stdin.Fd())) {
			return fmt.Errorf("interactive init requires a TTY; pass --module and friends instead")
		}
		cfg, err = interactiveConfig()
		if err != nil {
			return fmt.Errorf("interactive setup: %w", err)
		}
	} else {
		cfg = config.Default()
		cfg.Module = module
		cfg.Interpreter = interpreter
		cfg.VenvDir = venv
		cfg.SrcDir = src
	}

	if err := config.Save(ctx.ConfigPath, cfg); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Config written to %s\n", ctx.ConfigPath)
	return nil
}
