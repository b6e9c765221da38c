package output

import (
	"strconv"

	"github.com/crimson-sun/skylog/internal/engine/report"
)

// FormatValue renders v with up to two decimals and an optional unit.
func FormatValue(v float64, unit string) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)
	if unit == "" {
		return s
	}
	return s + " " + unit
}

// Mean returns the mean of a value-bearing row. Derived values live in the
// presentation layer; reports carry only sums and counts.
func Mean(r report.Row) (float64, bool) {
	if !r.HasValues() {
		return 0, false
	}
	return r.Sum / float64(r.Count), true
}
