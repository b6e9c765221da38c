package model

// Stats accumulates the observations of one event kind.
// Counters and text-bearing kinds only use Count.
type Stats struct {
	Count int     `json:"count"`
	Sum   float64 `json:"sum"`
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
}

// ExposureSummary counts raw exposures sharing one signature.
type ExposureSummary struct {
	Exposure Exposure `json:"exposure"`
	Count    int      `json:"count"`
}

// Report is the result of one analysis pass.
type Report struct {
	Exposures []ExposureSummary `json:"exposures"` // first-seen order
	Stats     map[Kind]Stats    `json:"stats"`     // kinds observed at least once
	Unknown   int               `json:"unknown"`   // unrecognized or malformed lines
	Lines     int               `json:"lines"`     // classified lines, blank lines excluded
}
