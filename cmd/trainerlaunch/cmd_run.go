package main

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/icpctrainer/trainerlaunch/internal/bootstrap"
	"github.com/icpctrainer/trainerlaunch/internal/workspace"
	"github.com/spf13/cobra"
)

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [-- <args...>]",
		Short: "Prepare the environment and launch the trainer",
		Long: `Run verifies the base interpreter, creates the virtual environment if
absent, installs dependencies when the manifest changed since the last
install, and then replaces this process with the trainer's entry point.
Arguments after -- are forwarded to the trainer unchanged.`,
		RunE: runRun,
	}
	cmd.Flags().Bool("dry-run", false, "Print the launch command instead of executing it")
	return cmd
}

func runRun(cmd *cobra.Command, args []string) error {
	root, _ := cmd.Flags().GetString("root")
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	ctx, err := workspace.Load(root)
	if err != nil {
		return err
	}

	res, err := bootstrap.Prepare(ctx, bootstrap.NewSteps(cmd.ErrOrStderr()))
	if err != nil {
		return err
	}

	if dryRun {
		printLaunch(cmd.OutOrStdout(), res, args)
		return nil
	}

	// One-way transfer: nothing below delegate runs on success.
	return delegate(res, args)
}

// printLaunch writes the command and environment delta that delegation
// would apply.
func printLaunch(out io.Writer, res *bootstrap.Result, forwarded []string) {
	_, _ = fmt.Fprintf(out, "exec %s\n", strings.Join(res.Argv(forwarded), " "))
	_, _ = fmt.Fprintf(out, "PYTHONPATH=%s\n", res.PythonPath)

	extras := make([]string, 0, len(res.ExtraEnv))
	for k, v := range res.ExtraEnv {
		extras = append(extras, k+"="+v)
	}
	sort.Strings(extras)
	for _, kv := range extras {
		_, _ = fmt.Fprintln(out, kv)
	}
}
