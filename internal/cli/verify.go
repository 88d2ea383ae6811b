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

func verifyCmd(g *globalFlags) *cobra.Command {
	var format string

	c := &cobra.Command{
		Use:   "verify [day...]",
		Short: "Re-solve every pinned answer in answers.yaml and compare",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}

			days := make([]domain.DayID, 0, len(args))
			for _, a := range args {
				d, err := domain.ParseDay(a)
				if err != nil {
					return err
				}
				days = append(days, d)
			}

			ws, err := loadWorkspace(g.workspace)
			if err != nil {
				return err
			}

			uc := usecase.NewVerifyAnswers(ws.catalog, ws.inputs, ws.answers, logger.L())
			results, err := uc.Execute(cmd.Context(), days)
			if err != nil {
				return err
			}

			if err := printVerifications(cmd.OutOrStdout(), results, format); err != nil {
				return err
			}

			if n := usecase.Failed(results); n > 0 {
				return errors.Newf("%d of %d answer(s) failed verification", n, len(results))
			}
			return nil
		},
	}

	c.Flags().StringVar(&format, "format", "pretty", "Output format: pretty|json")
	return c
}

func printVerifications(w io.Writer, vs []domain.Verification, format string) error {
	if format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(vs)
	}

	if len(vs) == 0 {
		fmt.Fprintln(w, "No pinned answers.")
		return nil
	}

	for _, v := range vs {
		switch {
		case v.Passed:
			fmt.Fprintf(w, "ok    day %s %s: %s\n", v.Day, v.Part, v.Got)
		case v.Error != nil:
			fmt.Fprintf(w, "FAIL  day %s %s: %s (%s)\n", v.Day, v.Part, v.Error.Message, v.Error.Kind)
		default:
			fmt.Fprintf(w, "FAIL  day %s %s: want %s, got %s\n", v.Day, v.Part, v.Want, v.Got)
		}
	}
	fmt.Fprintf(w, "\n%d passed, %d failed\n", len(vs)-usecase.Failed(vs), usecase.Failed(vs))
	return nil
}
