package salary

const (
	lowerOnlyFactor = 1.2
	upperOnlyFactor = 0.8
)

// Bound is the salary range stated on a vacancy, in a single currency.
// A nil or zero side means the platform did not state it.
type Bound struct {
	From *float64
	To   *float64
}

// NewBound builds a Bound from raw integer fields where 0 means "not stated".
func NewBound(from, to int) Bound {
	return Bound{From: optional(from), To: optional(to)}
}

// Predict returns the estimated monthly salary for the range.
func (b Bound) Predict() (float64, bool) {
	return Predict(b.From, b.To)
}

// Predict turns a salary range into one representative figure.
// The result is not meaningful across currencies, callers filter first.
func Predict(from, to *float64) (float64, bool) {
	lower, hasLower := present(from)
	upper, hasUpper := present(to)

	switch {
	case hasLower && hasUpper:
		return (lower + upper) / 2, true
	case hasLower:
		return lower * lowerOnlyFactor, true
	case hasUpper:
		return upper * upperOnlyFactor, true
	default:
		return 0, false
	}
}

func present(v *float64) (float64, bool) {
	if v == nil || *v == 0 {
		return 0, false
	}
	return *v, true
}

func optional(v int) *float64 {
	if v == 0 {
		return nil
	}
	f := float64(v)
	return &f
}
