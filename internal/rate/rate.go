package rate

// DateFormat is the ISO-8601 layout dates are stored in.
const DateFormat = "2006-01-02"

// Rate is one observation: the value of Currency on Date.
type Rate struct {
	Date     string
	Currency string
	Value    float64
}

// Lookup is the outcome of fetching every stored value for one
// (date, currency) pair. It is one of Empty, Single or Ambiguous.
type Lookup interface {
	lookup()
}

type Empty struct{}

type Single struct {
	Value float64
}

type Ambiguous struct {
	Values []float64
}

func (Empty) lookup()     {}
func (Single) lookup()    {}
func (Ambiguous) lookup() {}

// Classify turns raw lookup rows into a Lookup.
func Classify(values []float64) Lookup {
	switch len(values) {
	case 0:
		return Empty{}
	case 1:
		return Single{Value: values[0]}
	default:
		return Ambiguous{Values: values}
	}
}
