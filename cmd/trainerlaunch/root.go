package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "trainerlaunch",
		Short:   "Bootstrap the Python environment and launch the trainer TUI",
		Version: version,
	}

	cmd.PersistentFlags().String("root", ".", "Workspace root directory")

	cmd.AddCommand(
		newRunCmd(),
		newStatusCmd(),
		newDoctorCmd(),
		newCleanCmd(),
		newInitCmd(),
	)

	return cmd
}
