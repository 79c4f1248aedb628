// Package calendar enumerates business days (Monday to Friday, holidays
// ignored) and finds the ones absent from a set of ISO dates.
package calendar

import (
	"fmt"
	"iter"
	"time"

	"github.com/ahmethakanbesel/fxhist/internal/apperror"
)

const dateFormat = "2006-01-02"

// ParseDate parses an ISO-8601 calendar date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(dateFormat, s)
	if err != nil {
		return time.Time{}, apperror.Wrap(apperror.Usage, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", s))
	}
	return t, nil
}

// Weekdays yields every Monday to Friday in [from, to), ascending.
func Weekdays(from, to time.Time) iter.Seq[time.Time] {
	return func(yield func(time.Time) bool) {
		for d := from; d.Before(to); d = d.AddDate(0, 0, 1) {
			wd := d.Weekday()
			if wd == time.Saturday || wd == time.Sunday {
				continue
			}
			if !yield(d) {
				return
			}
		}
	}
}

// MissingWeekdays yields the weekdays in [from, to) whose ISO form is not in
// known. The sequence can be ranged over any number of times.
func MissingWeekdays(from, to time.Time, known map[string]bool) iter.Seq[time.Time] {
	return func(yield func(time.Time) bool) {
		for d := range Weekdays(from, to) {
			if known[d.Format(dateFormat)] {
				continue
			}
			if !yield(d) {
				return
			}
		}
	}
}

// Bounds returns the earliest and latest dates in known, compared as dates.
func Bounds(known map[string]bool) (first, last time.Time, err error) {
	if len(known) == 0 {
		return first, last, apperror.New(apperror.NoData, "No dates!")
	}

	seen := false
	for s := range known {
		d, perr := time.Parse(dateFormat, s)
		if perr != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("stored date %q: %w", s, perr)
		}
		if !seen || d.Before(first) {
			first = d
		}
		if !seen || d.After(last) {
			last = d
		}
		seen = true
	}
	return first, last, nil
}
