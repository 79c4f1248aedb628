package commands

import (
	"context"
	"fmt"

	"github.com/ahmethakanbesel/fxhist/internal/config"
	"github.com/ahmethakanbesel/fxhist/internal/platform/sqlite"
	raterepo "github.com/ahmethakanbesel/fxhist/internal/repository/rate"
	"github.com/ahmethakanbesel/fxhist/internal/rate"
)

// withStore opens the database at path for the duration of fn and closes it
// on every return path.
func withStore(ctx context.Context, cfg config.Config, path string, fn func(db *sqlite.DB) error) (err error) {
	db, err := sqlite.Open(path, sqlite.WithBusyTimeout(cfg.BusyTimeout))
	if err != nil {
		return err
	}
	defer func() {
		if cerr := db.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close database: %w", cerr)
		}
	}()

	if err := ctx.Err(); err != nil {
		return err
	}
	return fn(db)
}

// withRates opens the database and hands fn a rate service reading from it.
func withRates(ctx context.Context, cfg config.Config, path string, fn func(svc *rate.Service) error) error {
	return withStore(ctx, cfg, path, func(db *sqlite.DB) error {
		repo := raterepo.NewRepository(db.DB).WithBatchSize(cfg.BatchSize)
		return fn(rate.NewService(repo))
	})
}
