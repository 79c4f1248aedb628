package tsv

var months = map[string]string{
	"January":   "01",
	"February":  "02",
	"March":     "03",
	"April":     "04",
	"May":       "05",
	"June":      "06",
	"July":      "07",
	"August":    "08",
	"September": "09",
	"October":   "10",
	"November":  "11",
	"December":  "12",
}

// currencyOverrides maps labels used by older exports to the current ones.
var currencyOverrides = map[string]string{
	"U.K. Pound Sterling": "U.K. pound",
	"U.S. Dollar":         "U.S. dollar",
}

// CanonicalCurrency returns the current display name for name.
func CanonicalCurrency(name string) string {
	if canonical, ok := currencyOverrides[name]; ok {
		return canonical
	}
	return name
}
