// Package tsv reads wide-format exchange rate tables: a "Currency" header row
// of dates followed by one row per currency, tab separated.
package tsv

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"strconv"
	"strings"

	"github.com/ahmethakanbesel/fxhist/internal/apperror"
	"github.com/ahmethakanbesel/fxhist/internal/rate"
)

const (
	headerToken = "Currency"
	missing     = "NA"
)

type column struct {
	date string
	err  error
}

// Reader yields rates one at a time. It consumes the underlying source as it
// goes and cannot be rewound.
type Reader struct {
	sc      *bufio.Scanner
	line    int
	columns []column
	queue   []rate.Rate
	cur     rate.Rate
	err     error
}

func NewReader(r io.Reader) *Reader {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	return &Reader{sc: sc}
}

// Next advances to the next rate. It returns false at the end of the source
// or on the first error; check Err afterwards.
func (r *Reader) Next() bool {
	for len(r.queue) == 0 {
		if r.err != nil || !r.sc.Scan() {
			if r.err == nil {
				r.err = r.sc.Err()
			}
			return false
		}
		r.line++
		if err := r.parseLine(r.sc.Text()); err != nil {
			r.err = fmt.Errorf("line %d: %w", r.line, err)
			r.queue = nil
			return false
		}
	}

	r.cur, r.queue = r.queue[0], r.queue[1:]
	return true
}

// Rate returns the rate produced by the last successful call to Next.
func (r *Reader) Rate() rate.Rate { return r.cur }

func (r *Reader) Err() error { return r.err }

// All adapts the reader to a range-over-func sequence. A parse error is
// yielded once as the last element.
func (r *Reader) All() iter.Seq2[rate.Rate, error] {
	return func(yield func(rate.Rate, error) bool) {
		for r.Next() {
			if !yield(r.Rate(), nil) {
				return
			}
		}
		if err := r.Err(); err != nil {
			yield(rate.Rate{}, err)
		}
	}
}

// parseLine stages every rate found on line into the queue.
func (r *Reader) parseLine(line string) error {
	fields := strings.Split(line, "\t")
	if len(fields) == 1 {
		return nil
	}

	if fields[0] == headerToken {
		r.columns = make([]column, len(fields)-1)
		for i, raw := range fields[1:] {
			date, err := NormalizeDate(raw)
			r.columns[i] = column{date: date, err: err}
		}
		return nil
	}

	currency := CanonicalCurrency(fields[0])
	cells := fields[1:]
	n := min(len(cells), len(r.columns))

	for i := 0; i < n; i++ {
		col := r.columns[i]
		if col.err != nil {
			return col.err
		}
		if cells[i] == missing {
			continue
		}
		value, err := ParseValue(cells[i])
		if err != nil {
			return err
		}
		r.queue = append(r.queue, rate.Rate{Date: col.date, Currency: currency, Value: value})
	}
	return nil
}

// NormalizeDate turns a header date such as "January 2, 2020" into
// "2020-01-02". Single-digit days are zero-padded so stored dates are ISO;
// older databases built by copying the day verbatim hold "2020-01-2" instead.
func NormalizeDate(s string) (string, error) {
	parts := strings.Split(s, " ")
	if len(parts) != 3 {
		return "", apperror.New(apperror.Parse, fmt.Sprintf("malformed date %q", s))
	}

	month, ok := months[parts[0]]
	if !ok {
		return "", apperror.New(apperror.Parse, fmt.Sprintf("unknown month %q in date %q", parts[0], s))
	}

	day := strings.TrimRight(parts[1], ",")
	if len(day) == 1 {
		day = "0" + day
	}

	return parts[2] + "-" + month + "-" + day, nil
}

// ParseValue parses a cell, ignoring thousands separators.
func ParseValue(s string) (float64, error) {
	cleaned := strings.TrimSpace(strings.ReplaceAll(s, ",", ""))
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, apperror.Wrap(apperror.Parse, fmt.Errorf("malformed value %q: %w", s, err))
	}
	return v, nil
}
