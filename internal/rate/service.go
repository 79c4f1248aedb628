package rate

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"time"

	"github.com/ahmethakanbesel/fxhist/internal/apperror"
	"github.com/ahmethakanbesel/fxhist/internal/calendar"
)

// ErrNoDates is returned by MissingDates when the store holds no rows.
var ErrNoDates = apperror.New(apperror.NoData, "No dates!")

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Ratio returns value(to) / value(from) on date. Both currencies are always
// looked up; when either one lacks exactly one value the returned error joins
// a diagnostic for every currency that failed.
func (s *Service) Ratio(ctx context.Context, date, from, to string) (float64, error) {
	quotes := [2]struct {
		currency string
		value    float64
	}{{currency: from}, {currency: to}}

	var diags []error
	for i := range quotes {
		values, err := s.repo.Lookup(ctx, date, quotes[i].currency)
		if err != nil {
			return 0, fmt.Errorf("lookup %s on %s: %w", quotes[i].currency, date, err)
		}

		switch l := Classify(values).(type) {
		case Empty:
			diags = append(diags, apperror.New(apperror.Missing,
				fmt.Sprintf("%s does not have a value on %s", quotes[i].currency, date)))
		case Ambiguous:
			diags = append(diags, apperror.New(apperror.Ambiguous,
				fmt.Sprintf("%s has ambiguous value on %s (%d rows)", quotes[i].currency, date, len(l.Values))))
		case Single:
			quotes[i].value = l.Value
		}
	}

	if len(diags) > 0 {
		return 0, errors.Join(diags...)
	}
	if quotes[0].value == 0 {
		return 0, fmt.Errorf("%s has a zero value on %s", from, date)
	}
	return quotes[1].value / quotes[0].value, nil
}

// MissingDates returns the weekdays in [from, to) that have no stored rate.
// A nil bound defaults to the earliest (from) or latest (to) stored date.
func (s *Service) MissingDates(ctx context.Context, from, to *time.Time) (iter.Seq[time.Time], error) {
	known, err := s.repo.Dates(ctx)
	if err != nil {
		return nil, fmt.Errorf("list dates: %w", err)
	}
	if len(known) == 0 {
		return nil, ErrNoDates
	}

	if from == nil || to == nil {
		first, last, err := calendar.Bounds(known)
		if err != nil {
			return nil, err
		}
		if from == nil {
			from = &first
		}
		if to == nil {
			to = &last
		}
	}

	return calendar.MissingWeekdays(*from, *to, known), nil
}

// Currencies lists every distinct stored currency name.
func (s *Service) Currencies(ctx context.Context) ([]string, error) {
	names, err := s.repo.Currencies(ctx)
	if err != nil {
		return nil, fmt.Errorf("list currencies: %w", err)
	}
	return names, nil
}
