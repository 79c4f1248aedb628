package calendar

import (
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahmethakanbesel/fxhist/internal/apperror"
)

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func TestWeekdays(t *testing.T) {
	// Fri 2021-01-01 .. Fri 2021-01-08 (exclusive)
	got := slices.Collect(Weekdays(date(2021, 1, 1), date(2021, 1, 8)))
	want := []time.Time{
		date(2021, 1, 1),
		date(2021, 1, 4),
		date(2021, 1, 5),
		date(2021, 1, 6),
		date(2021, 1, 7),
	}
	assert.Equal(t, want, got)
}

func TestWeekdays_EmptyRange(t *testing.T) {
	assert.Empty(t, slices.Collect(Weekdays(date(2021, 1, 4), date(2021, 1, 4))))
	assert.Empty(t, slices.Collect(Weekdays(date(2021, 1, 8), date(2021, 1, 4))))
}

func TestMissingWeekdays_DefaultBounds(t *testing.T) {
	known := map[string]bool{"2021-01-04": true, "2021-01-06": true}

	first, last, err := Bounds(known)
	require.NoError(t, err)
	assert.Equal(t, date(2021, 1, 4), first)
	assert.Equal(t, date(2021, 1, 6), last)

	got := slices.Collect(MissingWeekdays(first, last, known))
	assert.Equal(t, []time.Time{date(2021, 1, 5)}, got)
}

func TestMissingWeekdays_NeverYieldsStopDate(t *testing.T) {
	known := map[string]bool{"2021-01-04": true}
	got := slices.Collect(MissingWeekdays(date(2021, 1, 4), date(2021, 1, 11), known))

	assert.Equal(t, []time.Time{
		date(2021, 1, 5), date(2021, 1, 6), date(2021, 1, 7), date(2021, 1, 8),
	}, got)
}

func TestMissingWeekdays_Restartable(t *testing.T) {
	seq := MissingWeekdays(date(2021, 1, 4), date(2021, 1, 6), map[string]bool{})
	assert.Equal(t, slices.Collect(seq), slices.Collect(seq))
	assert.Len(t, slices.Collect(seq), 2)
}

func TestBounds_ComparesAsDates(t *testing.T) {
	known := map[string]bool{"2020-12-31": true, "2021-01-04": true, "2020-02-29": true}
	first, last, err := Bounds(known)
	require.NoError(t, err)
	assert.Equal(t, date(2020, 2, 29), first)
	assert.Equal(t, date(2021, 1, 4), last)
}

func TestBounds_Errors(t *testing.T) {
	_, _, err := Bounds(nil)
	assert.True(t, apperror.Is(err, apperror.NoData))

	_, _, err = Bounds(map[string]bool{"2021-1-4x": true})
	assert.Error(t, err)
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2021-01-05")
	require.NoError(t, err)
	assert.Equal(t, date(2021, 1, 5), d)

	_, err = ParseDate("January 5, 2021")
	assert.True(t, apperror.Is(err, apperror.Usage))
}
