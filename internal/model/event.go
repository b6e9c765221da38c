package model

import "fmt"

// Exposure is the signature of one image exposure. Two exposures with equal
// fields are the same signature.
type Exposure struct {
	Duration float64 `json:"duration"` // seconds
	Filter   string  `json:"filter"`   // display name, may be empty
	Bin      int     `json:"bin"`      // pixel binning factor, >= 1
}

func (e Exposure) String() string {
	filter := e.Filter
	if filter == "" {
		filter = "-"
	}
	return fmt.Sprintf("%s %gs bin%d", filter, e.Duration, e.Bin)
}

// Event is one classified log line.
// Value is set for duration and measurement kinds, Exposure for KindExposure,
// and Text for the remaining structured kinds.
type Event struct {
	Kind     Kind
	Value    float64
	Exposure Exposure
	Text     string
}
