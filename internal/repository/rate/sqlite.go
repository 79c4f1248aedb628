package rate

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	domain "github.com/ahmethakanbesel/fxhist/internal/rate"
)

const (
	defaultBatchSize = 500
	// Three bound parameters per row; SQLite allows at most 32766.
	maxBatchSize = 5000
)

// DBTX is satisfied by both *sql.DB and *sql.Tx.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

type Repository struct {
	db        DBTX
	batchSize int
}

func NewRepository(db DBTX) *Repository {
	return &Repository{db: db, batchSize: defaultBatchSize}
}

// WithBatchSize sets how many rows go into one INSERT statement, capped at
// maxBatchSize.
func (r *Repository) WithBatchSize(n int) *Repository {
	if n > 0 {
		r.batchSize = min(n, maxBatchSize)
	}
	return r
}

// SaveRates appends rates. Nothing is deduplicated.
func (r *Repository) SaveRates(ctx context.Context, rates []domain.Rate) (int64, error) {
	if len(rates) == 0 {
		return 0, nil
	}

	var total int64

	for i := 0; i < len(rates); i += r.batchSize {
		end := min(i+r.batchSize, len(rates))
		batch := rates[i:end]

		placeholders := make([]string, len(batch))
		args := make([]any, 0, len(batch)*3)
		for j, rate := range batch {
			placeholders[j] = "(?, ?, ?)"
			args = append(args, rate.Date, rate.Currency, rate.Value)
		}

		query := fmt.Sprintf( //nolint:gosec // placeholders are not user input
			"INSERT INTO exchange_rates (date, currency, value) VALUES %s",
			strings.Join(placeholders, ", "),
		)

		res, err := r.db.ExecContext(ctx, query, args...)
		if err != nil {
			return total, fmt.Errorf("save rates: %w", err)
		}

		n, _ := res.RowsAffected()
		total += n
	}

	return total, nil
}

// Lookup returns every stored value for the pair, in insertion order.
func (r *Repository) Lookup(ctx context.Context, date, currency string) ([]float64, error) {
	const query = `SELECT value FROM exchange_rates
		WHERE date = ? AND currency = ?
		ORDER BY rowid ASC`

	rows, err := r.db.QueryContext(ctx, query, date, currency)
	if err != nil {
		return nil, fmt.Errorf("lookup rate: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var values []float64
	for rows.Next() {
		var v float64
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("scan value: %w", err)
		}
		values = append(values, v)
	}

	return values, rows.Err()
}

func (r *Repository) Dates(ctx context.Context) (map[string]bool, error) {
	const query = `SELECT DISTINCT date FROM exchange_rates`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("distinct dates: %w", err)
	}
	defer func() { _ = rows.Close() }()

	dates := make(map[string]bool)
	for rows.Next() {
		var dateStr string
		if err := rows.Scan(&dateStr); err != nil {
			return nil, fmt.Errorf("scan date: %w", err)
		}
		dates[dateStr] = true
	}

	return dates, rows.Err()
}

func (r *Repository) Currencies(ctx context.Context) ([]string, error) {
	const query = `SELECT DISTINCT currency FROM exchange_rates ORDER BY currency ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("distinct currencies: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan currency: %w", err)
		}
		names = append(names, name)
	}

	return names, rows.Err()
}
