package aggregator

import (
	"github.com/crimson-sun/skylog/internal/model"
)

// Aggregator folds classified events into per-signature and per-kind
// totals. One Aggregator belongs to one pass and is not safe for
// concurrent use.
type Aggregator struct {
	exposures []model.ExposureSummary // first-seen order
	index     map[model.Exposure]int  // signature -> position in exposures
	stats     map[model.Kind]*model.Stats
	unknown   int
	lines     int
}

// New creates an empty Aggregator.
func New() *Aggregator {
	return &Aggregator{
		index: make(map[model.Exposure]int),
		stats: make(map[model.Kind]*model.Stats),
	}
}

// Add folds one event into the running totals. KindNone is ignored.
func (a *Aggregator) Add(ev model.Event) {
	if ev.Kind == model.KindNone {
		return
	}
	a.lines++

	switch ev.Kind.Family() {
	case model.FamilyCounter:
		a.stat(ev.Kind).Count++
	case model.FamilyDuration, model.FamilyMeasurement:
		s := a.stat(ev.Kind)
		if s.Count == 0 || ev.Value < s.Min {
			s.Min = ev.Value
		}
		if s.Count == 0 || ev.Value > s.Max {
			s.Max = ev.Value
		}
		s.Count++
		s.Sum += ev.Value
	case model.FamilyStructured:
		if ev.Kind == model.KindExposure {
			a.addExposure(ev.Exposure)
			return
		}
		a.stat(ev.Kind).Count++
	default:
		a.unknown++
	}
}

// AddAll folds events in order.
func (a *Aggregator) AddAll(events []model.Event) {
	for _, ev := range events {
		a.Add(ev)
	}
}

func (a *Aggregator) addExposure(exp model.Exposure) {
	i, ok := a.index[exp]
	if !ok {
		i = len(a.exposures)
		a.index[exp] = i
		a.exposures = append(a.exposures, model.ExposureSummary{Exposure: exp})
	}
	a.exposures[i].Count++
}

func (a *Aggregator) stat(k model.Kind) *model.Stats {
	s, ok := a.stats[k]
	if !ok {
		s = &model.Stats{}
		a.stats[k] = s
	}
	return s
}

// Snapshot is a copy of an Aggregator's state, safe to read after the
// Aggregator moves on.
type Snapshot struct {
	Exposures []model.ExposureSummary
	Stats     map[model.Kind]model.Stats
	Unknown   int
	Lines     int
}

// Snapshot copies the current totals.
func (a *Aggregator) Snapshot() Snapshot {
	exposures := make([]model.ExposureSummary, len(a.exposures))
	copy(exposures, a.exposures)

	stats := make(map[model.Kind]model.Stats, len(a.stats))
	for k, s := range a.stats {
		stats[k] = *s
	}

	return Snapshot{
		Exposures: exposures,
		Stats:     stats,
		Unknown:   a.unknown,
		Lines:     a.lines,
	}
}
