package cli

import (
	"context"
	"os"
	"os/signal"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/jsfr/advent-of-code-2023/internal/infra/fsworkspace"
	"github.com/jsfr/advent-of-code-2023/internal/infra/logger"
	"github.com/jsfr/advent-of-code-2023/internal/infra/workspacefinder"
	"github.com/jsfr/advent-of-code-2023/internal/ui/tui"
)

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cmd, closeLog := newRootCmd()
	err := cmd.ExecuteContext(ctx)
	_ = closeLog()
	if err != nil {
		stop()
		os.Exit(1)
	}
}

// globalFlags are shared by every subcommand.
type globalFlags struct {
	workspace string
	debug     bool
}

// newRootCmd builds the command tree. The returned func closes the log file
// opened by --debug, if any.
func newRootCmd() (*cobra.Command, func() error) {
	var g globalFlags
	var solve solveFlags
	cleanup := func() error { return nil }

	cmd := &cobra.Command{
		Use:   "aoc [day] [part]",
		Short: "Advent of Code 2023 solutions",
		Long: "Solve a day's puzzle from its input file.\n\n" +
			"  aoc 01 02    solve day 1 part 2 from input/01\n" +
			"  aoc          open the interactive picker",
		SilenceUsage: true,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) == 0 || len(args) == 2 {
				return nil
			}
			return errors.Newf("expected <day> <part> or no arguments, got %d argument(s)", len(args))
		},
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			if !g.debug {
				return nil
			}
			root, err := resolveStartDir(g.workspace)
			if err != nil {
				return err
			}
			if found, ferr := workspacefinder.NewFinder().FindRoot(root); ferr == nil {
				root = found
			}
			c, err := logger.Setup(logger.Config{Root: root, Debug: true})
			if err != nil {
				return err
			}
			cleanup = c
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 2 {
				return runSolve(cmd, g, solve, args[0], args[1])
			}

			ws, err := loadWorkspace(g.workspace)
			if err != nil {
				return err
			}
			return tui.Run(tui.Deps{
				Catalog:              ws.catalog,
				Inputs:               ws.inputs,
				WorkspaceRoot:        ws.root,
				WorkspaceFound:       ws.found,
				WorkspaceInitializer: fsworkspace.NewInitializer(),
				Logger:               logger.L(),
				Debug:                g.debug,
			})
		},
	}

	cmd.PersistentFlags().StringVarP(&g.workspace, "workspace", "w", "", "Workspace root (optional; autodetected from aoc.yaml if omitted)")
	cmd.PersistentFlags().BoolVar(&g.debug, "debug", false, "enable verbose logging to .aoc/logs/aoc.log")
	bindSolveFlags(cmd, &solve)

	cmd.AddCommand(
		solveCmd(&g),
		daysCmd(&g),
		verifyCmd(&g),
		fetchCmd(&g),
		initCmd(),
		versionCmd(),
	)

	return cmd, func() error { return cleanup() }
}
