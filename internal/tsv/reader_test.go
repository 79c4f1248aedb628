package tsv

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahmethakanbesel/fxhist/internal/apperror"
	"github.com/ahmethakanbesel/fxhist/internal/rate"
)

func readAll(t *testing.T, src string) ([]rate.Rate, error) {
	t.Helper()
	r := NewReader(strings.NewReader(src))
	var got []rate.Rate
	for r.Next() {
		got = append(got, r.Rate())
	}
	return got, r.Err()
}

func TestReader_HeaderOnly(t *testing.T) {
	got, err := readAll(t, "Currency\tJanuary 2, 2020\tJanuary 3, 2020\n")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestReader_EmptySource(t *testing.T) {
	got, err := readAll(t, "")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestReader_NormalizesAndSkipsNA(t *testing.T) {
	src := "Currency\tJanuary 2, 2020\tJanuary 3, 2020\n" +
		"U.S. Dollar\t1.1\tNA\n"

	got, err := readAll(t, src)
	require.NoError(t, err)
	assert.Equal(t, []rate.Rate{{Date: "2020-01-02", Currency: "U.S. dollar", Value: 1.1}}, got)
}

func TestReader_WideTable(t *testing.T) {
	src := strings.Join([]string{
		"Exchange rates",
		"",
		"Currency\tDecember 30, 2019\tDecember 31, 2019",
		"Euro\t0.8933\t0.8913",
		"Japanese yen\t108.87\tNA",
		"Korean won\t1,156.4\t1,157.8",
		"U.K. Pound Sterling\t0.7608",
		"Footnote only",
		"Currency\tJanuary 2, 2020",
		"Euro\t0.8929\t99",
	}, "\n")

	got, err := readAll(t, src)
	require.NoError(t, err)
	assert.Equal(t, []rate.Rate{
		{Date: "2019-12-30", Currency: "Euro", Value: 0.8933},
		{Date: "2019-12-31", Currency: "Euro", Value: 0.8913},
		{Date: "2019-12-30", Currency: "Japanese yen", Value: 108.87},
		{Date: "2019-12-30", Currency: "Korean won", Value: 1156.4},
		{Date: "2019-12-31", Currency: "Korean won", Value: 1157.8},
		{Date: "2019-12-30", Currency: "U.K. pound", Value: 0.7608},
		{Date: "2020-01-02", Currency: "Euro", Value: 0.8929},
	}, got)
}

func TestReader_DataBeforeHeaderIsIgnored(t *testing.T) {
	got, err := readAll(t, "Euro\t1.0\t2.0\n")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestReader_MalformedValue(t *testing.T) {
	src := "Currency\tJanuary 2, 2020\nEuro\t0.9\nYen\tabc\nWon\t1.0\n"
	r := NewReader(strings.NewReader(src))

	require.True(t, r.Next())
	assert.Equal(t, "Euro", r.Rate().Currency)
	assert.False(t, r.Next())
	assert.False(t, r.Next())

	err := r.Err()
	require.Error(t, err)
	assert.True(t, apperror.Is(err, apperror.Parse))
	assert.Contains(t, err.Error(), "line 3")
}

func TestReader_UnknownMonth(t *testing.T) {
	_, err := readAll(t, "Currency\tJanvier 2, 2020\nEuro\tNA\n")
	require.Error(t, err)
	assert.True(t, apperror.Is(err, apperror.Parse))
	assert.Contains(t, err.Error(), "Janvier")
}

func TestReader_UnknownMonthInHeaderOnlySource(t *testing.T) {
	got, err := readAll(t, "Currency\tJanvier 2, 2020\n")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestReader_All(t *testing.T) {
	r := NewReader(strings.NewReader("Currency\tMay 5, 2021\tMay 6, 2021\nEuro\t1\tbad\n"))

	var rates []rate.Rate
	var errs []error
	for rt, err := range r.All() {
		if err != nil {
			errs = append(errs, err)
			continue
		}
		rates = append(rates, rt)
	}
	assert.Empty(t, rates)
	require.Len(t, errs, 1)
}

func TestNormalizeDate(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"January 2, 2020", "2020-01-02", false},
		{"December 31, 2019", "2019-12-31", false},
		{"March 09 2021", "2021-03-09", false},
		{"Smarch 1, 2020", "", true},
		{"January 2,2020", "", true},
		{"2020-01-02", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := NormalizeDate(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseValue(t *testing.T) {
	v, err := ParseValue("1,234.5")
	require.NoError(t, err)
	assert.Equal(t, 1234.5, v)

	v, err = ParseValue(" 0.75 ")
	require.NoError(t, err)
	assert.Equal(t, 0.75, v)

	_, err = ParseValue("1.2.3")
	assert.True(t, apperror.Is(err, apperror.Parse))
}

func TestCanonicalCurrency(t *testing.T) {
	assert.Equal(t, "U.K. pound", CanonicalCurrency("U.K. Pound Sterling"))
	assert.Equal(t, "U.S. dollar", CanonicalCurrency("U.S. Dollar"))
	assert.Equal(t, "Euro", CanonicalCurrency("Euro"))
}
