package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ahmethakanbesel/fxhist/internal/calendar"
	"github.com/ahmethakanbesel/fxhist/internal/config"
	"github.com/ahmethakanbesel/fxhist/internal/rate"
)

func newMissingDatesCommand(cfg config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "missing-dates DBNAME [START [STOP]]",
		Short: "List weekdays in [START, STOP) with no stored rate",
		Long: "List weekdays in [START, STOP) with no stored rate. START and STOP are YYYY-MM-DD and\n" +
			"default to the first and last stored dates.",
		Args: usageArgs(cobra.RangeArgs(1, 3)),
		RunE: func(cmd *cobra.Command, args []string) error {
			var bounds [2]*time.Time
			for i, arg := range args[1:] {
				d, err := calendar.ParseDate(arg)
				if err != nil {
					return err
				}
				bounds[i] = &d
			}

			ctx := cmd.Context()
			return withRates(ctx, cfg, args[0], func(svc *rate.Service) error {
				days, err := svc.MissingDates(ctx, bounds[0], bounds[1])
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				for d := range days {
					if _, err := fmt.Fprintln(out, d.Format(rate.DateFormat)); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}
}
