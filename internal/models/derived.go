package models

// CategoryPoint is one slice of a category distribution chart.
type CategoryPoint struct {
	Name  string
	Value int
}

// TimeSeriesPoint is one x/y pair of a time series chart.
type TimeSeriesPoint struct {
	Name  string
	Value int
}

// TwoValueRatio drives a partial-vs-remainder radial card.
// ValueB is whatever the producer computed; it can be negative.
type TwoValueRatio struct {
	LabelA string
	LabelB string
	ValueA int
	ValueB int
}

// Total returns the sum of both segments.
func (r TwoValueRatio) Total() int {
	return r.ValueA + r.ValueB
}

// Share returns ValueA as a percentage of Total, or 0 when Total is not positive.
func (r TwoValueRatio) Share() float64 {
	total := r.Total()
	if total <= 0 {
		return 0
	}
	return float64(r.ValueA) / float64(total) * 100
}
