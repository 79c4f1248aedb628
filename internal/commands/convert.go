package commands

import (
	"context"
	"fmt"
	"io"
	"math"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/ahmethakanbesel/fxhist/internal/apperror"
	"github.com/ahmethakanbesel/fxhist/internal/config"
	"github.com/ahmethakanbesel/fxhist/internal/rate"
)

func newConvertCommand(cfg config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "convert DBNAME DATE FROM TO AMOUNT",
		Short: "Convert AMOUNT of FROM into TO using the rates stored for DATE",
		Args:  usageArgs(cobra.ExactArgs(5)),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := decimal.NewFromString(args[4])
			if err != nil {
				return apperror.Wrap(apperror.Usage, fmt.Errorf("invalid amount %q", args[4]))
			}
			return runConvert(cmd.Context(), cfg, cmd.OutOrStdout(), args[0], args[1], args[2], args[3], amount)
		},
	}
}

func runConvert(ctx context.Context, cfg config.Config, out io.Writer, dbName, date, from, to string, amount decimal.Decimal) error {
	return withRates(ctx, cfg, dbName, func(svc *rate.Service) error {
		ratio, err := svc.Ratio(ctx, date, from, to)
		if err != nil {
			return err
		}
		if math.IsInf(ratio, 0) || math.IsNaN(ratio) {
			return fmt.Errorf("rate of %s to %s on %s is not a finite number", from, to, date)
		}
		_, err = fmt.Fprintln(out, amount.Mul(decimal.NewFromFloat(ratio)).String())
		return err
	})
}
