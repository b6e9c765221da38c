// Package report turns aggregation state into the ordered, read-only
// structure handed to outputs, and combines reports from separate passes.
package report

import (
	"github.com/crimson-sun/skylog/internal/engine/aggregator"
	"github.com/crimson-sun/skylog/internal/model"
)

// Assemble builds a Report from an aggregator snapshot. Only kinds observed
// at least once get a Stats entry, counters included. No derived values are
// computed.
func Assemble(s aggregator.Snapshot) model.Report {
	exposures := make([]model.ExposureSummary, len(s.Exposures))
	copy(exposures, s.Exposures)

	stats := make(map[model.Kind]model.Stats, len(s.Stats))
	for k, st := range s.Stats {
		if st.Count > 0 {
			stats[k] = st
		}
	}

	return model.Report{
		Exposures: exposures,
		Stats:     stats,
		Unknown:   s.Unknown,
		Lines:     s.Lines,
	}
}

// Empty returns the report of a pass that saw no lines. It is the identity
// for Merge.
func Empty() model.Report {
	return Assemble(aggregator.New().Snapshot())
}

// Merge combines the reports of two independent passes. Counts, sums and
// line totals add; min and max take the extremes of observed entries;
// exposure buckets are unioned keeping a's order followed by b's new
// signatures. Neither input is modified.
func Merge(a, b model.Report) model.Report {
	out := model.Report{
		Exposures: make([]model.ExposureSummary, 0, len(a.Exposures)+len(b.Exposures)),
		Stats:     make(map[model.Kind]model.Stats, len(a.Stats)+len(b.Stats)),
		Unknown:   a.Unknown + b.Unknown,
		Lines:     a.Lines + b.Lines,
	}

	index := make(map[model.Exposure]int)
	for _, src := range [][]model.ExposureSummary{a.Exposures, b.Exposures} {
		for _, es := range src {
			if i, ok := index[es.Exposure]; ok {
				out.Exposures[i].Count += es.Count
				continue
			}
			index[es.Exposure] = len(out.Exposures)
			out.Exposures = append(out.Exposures, es)
		}
	}

	for k, s := range a.Stats {
		out.Stats[k] = s
	}
	for k, s := range b.Stats {
		out.Stats[k] = mergeStats(out.Stats[k], s)
	}
	return out
}

// MergeAll folds reports left to right starting from Empty.
func MergeAll(reports ...model.Report) model.Report {
	out := Empty()
	for _, r := range reports {
		out = Merge(out, r)
	}
	return out
}

func mergeStats(x, y model.Stats) model.Stats {
	if x.Count == 0 {
		return y
	}
	if y.Count == 0 {
		return x
	}
	out := model.Stats{
		Count: x.Count + y.Count,
		Sum:   x.Sum + y.Sum,
		Min:   x.Min,
		Max:   x.Max,
	}
	if y.Min < out.Min {
		out.Min = y.Min
	}
	if y.Max > out.Max {
		out.Max = y.Max
	}
	return out
}
