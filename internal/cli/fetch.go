package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jsfr/advent-of-code-2023/internal/domain"
	"github.com/jsfr/advent-of-code-2023/internal/infra/logger"
	"github.com/jsfr/advent-of-code-2023/internal/usecase"
)

func fetchCmd(g *globalFlags) *cobra.Command {
	var force bool

	c := &cobra.Command{
		Use:   "fetch <day>",
		Short: "Download a day's puzzle input using your session cookie",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := domain.ParseDay(args[0])
			if err != nil {
				return err
			}

			ws, err := loadWorkspace(g.workspace)
			if err != nil {
				return err
			}

			uc := usecase.NewFetchInput(ws.fetcher(), ws.inputs, ws.cfg.Year, logger.L())
			res, err := uc.Execute(cmd.Context(), day, force)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if res.Skipped {
				fmt.Fprintf(out, "Input for day %s already at %s (use --force to download again)\n", res.Day, res.Path)
				return nil
			}
			fmt.Fprintf(out, "Wrote %s (%d bytes)\n", res.Path, res.Bytes)
			return nil
		},
	}

	c.Flags().BoolVar(&force, "force", false, "Overwrite an existing input file")
	return c
}
