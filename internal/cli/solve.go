package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/jsfr/advent-of-code-2023/internal/domain"
	"github.com/jsfr/advent-of-code-2023/internal/infra/logger"
	"github.com/jsfr/advent-of-code-2023/internal/usecase"
)

type solveFlags struct {
	input  string
	format string
	save   bool
}

func bindSolveFlags(c *cobra.Command, f *solveFlags) {
	c.Flags().StringVarP(&f.input, "input", "i", "", "Input file (defaults to <input_dir>/<day> in the workspace)")
	c.Flags().StringVar(&f.format, "format", "pretty", "Output format: pretty|json")
	c.Flags().BoolVar(&f.save, "save", false, "Save the run as a JSON artifact under runs/")
}

func solveCmd(g *globalFlags) *cobra.Command {
	var f solveFlags

	c := &cobra.Command{
		Use:   "solve <day> <part>",
		Short: "Solve one part of one day",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(cmd, *g, f, args[0], args[1])
		},
	}
	bindSolveFlags(c, &f)
	return c
}

func runSolve(cmd *cobra.Command, g globalFlags, f solveFlags, dayArg, partArg string) error {
	if err := checkFormat(f.format); err != nil {
		return err
	}

	day, err := domain.ParseDay(dayArg)
	if err != nil {
		return err
	}
	part, err := domain.ParsePart(partArg)
	if err != nil {
		return err
	}

	ws, err := loadWorkspace(g.workspace)
	if err != nil {
		return err
	}

	inputPath, err := resolveInputPath(f.input)
	if err != nil {
		return err
	}

	opts := []usecase.SolveOption{usecase.WithSolveLogger(logger.L())}
	if f.save || ws.cfg.Runs.Save {
		opts = append(opts, usecase.WithArtifactStore(ws.store(), ws.cfg.Year))
	}

	uc := usecase.NewSolvePuzzle(ws.catalog, ws.inputs, opts...)
	run, err := uc.Execute(cmd.Context(), day, part, inputPath)
	if err != nil {
		if f.format == "json" && run.Error != nil {
			_ = printRun(cmd.OutOrStdout(), run, f.format)
		}
		return err
	}

	return printRun(cmd.OutOrStdout(), run, f.format)
}

func checkFormat(format string) error {
	switch format {
	case "pretty", "", "json":
		return nil
	default:
		return errors.Newf("unsupported format %q (expected pretty|json)", format)
	}
}

func printRun(w io.Writer, run domain.RunResult, format string) error {
	if format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(run)
	}

	fmt.Fprintf(w, "The answer is:\n%s\n", run.Answer)
	if run.RunID != "" {
		fmt.Fprintf(w, "Run ID: %s\n", run.RunID)
	}
	return nil
}
