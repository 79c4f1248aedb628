package rate

import "context"

type Repository interface {
	SaveRates(ctx context.Context, rates []Rate) (int64, error)
	Lookup(ctx context.Context, date, currency string) ([]float64, error)
	Dates(ctx context.Context) (map[string]bool, error)
	Currencies(ctx context.Context) ([]string, error)
}
