package commands

import (
	"context"
	"database/sql"

	"github.com/spf13/cobra"

	"github.com/ahmethakanbesel/fxhist/internal/config"
	"github.com/ahmethakanbesel/fxhist/internal/ingest"
	"github.com/ahmethakanbesel/fxhist/internal/platform/sqlite"
	raterepo "github.com/ahmethakanbesel/fxhist/internal/repository/rate"
)

func newCreateCommand(cfg config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "create DBNAME [TSV]...",
		Short: "Create the rate table if needed, then load TSV sources",
		Args:  usageArgs(cobra.MinimumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runIngest(cmd.Context(), cfg, args[0], args[1:], true)
		},
	}
}

func newUpdateCommand(cfg config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "update DBNAME [TSV]...",
		Short: "Load TSV sources into an existing database",
		Args:  usageArgs(cobra.MinimumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runIngest(cmd.Context(), cfg, args[0], args[1:], false)
		},
	}
}

// runIngest loads every source inside one transaction.
func runIngest(ctx context.Context, cfg config.Config, dbName string, sources []string, migrate bool) error {
	return withStore(ctx, cfg, dbName, func(db *sqlite.DB) error {
		if migrate {
			if err := db.Migrate(ctx); err != nil {
				return err
			}
		}

		return db.WithTx(ctx, func(tx *sql.Tx) error {
			repo := raterepo.NewRepository(tx).WithBatchSize(cfg.BatchSize)
			svc := ingest.NewService(repo, ingest.WithBatchSize(cfg.BatchSize))
			_, err := svc.Files(ctx, sources...)
			return err
		})
	})
}
