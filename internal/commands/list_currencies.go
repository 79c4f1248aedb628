package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ahmethakanbesel/fxhist/internal/config"
	"github.com/ahmethakanbesel/fxhist/internal/rate"
)

func newListCurrenciesCommand(cfg config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "list-currencies DBNAME",
		Short: "Print every stored currency name as a quoted string",
		Args:  usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			return withRates(ctx, cfg, args[0], func(svc *rate.Service) error {
				names, err := svc.Currencies(ctx)
				if err != nil {
					return err
				}
				for _, name := range names {
					if _, err := fmt.Fprintln(cmd.OutOrStdout(), strconv.Quote(name)); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}
}
