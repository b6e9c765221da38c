package skylog

import (
	"github.com/crimson-sun/skylog/internal/model"
	"github.com/crimson-sun/skylog/internal/source"
)

// Report, Stats, ExposureSummary, Exposure and Kind are the engine's own
// types. Their JSON encoding is stable.
type (
	Report          = model.Report
	Stats           = model.Stats
	ExposureSummary = model.ExposureSummary
	Exposure        = model.Exposure
	Kind            = model.Kind
)

// Event is one classified log line.
type Event struct {
	Kind     string    `json:"kind"`               // e.g. SlewTarget, Exposure, Unknown
	Family   string    `json:"family"`             // counter, duration, measurement, structured, fallback
	Value    float64   `json:"value,omitempty"`    // durations and measurements
	Exposure *Exposure `json:"exposure,omitempty"` // Exposure lines only
	Text     string    `json:"text,omitempty"`     // FilterChange, Target and other text payloads
}

func eventFromModel(ev model.Event) Event {
	out := Event{
		Kind:   ev.Kind.String(),
		Family: ev.Kind.Family().String(),
		Text:   ev.Text,
	}
	switch ev.Kind.Family() {
	case model.FamilyDuration, model.FamilyMeasurement:
		out.Value = ev.Value
	}
	if ev.Kind == model.KindExposure {
		e := ev.Exposure
		out.Exposure = &e
	}
	return out
}

// ErrIOFailure matches every log read failure.
var ErrIOFailure = source.ErrIOFailure
