package report

import "github.com/crimson-sun/skylog/internal/model"

// Row is one flattened line of a report, ready for tabular export.
type Row struct {
	Family model.Family
	Kind   model.Kind
	Label  string
	Count  int
	Sum    float64
	Min    float64
	Max    float64
}

// HasValues reports whether Sum, Min and Max carry data.
func (r Row) HasValues() bool {
	return r.Count > 0 && (r.Family == model.FamilyDuration || r.Family == model.FamilyMeasurement)
}

// Rows flattens r: exposure signatures in first-seen order, then kind
// statistics in priority order, then the unknown-line count.
func Rows(r model.Report) []Row {
	return rows(r, false)
}

// CoverageRows is Rows with a zero row for every counter kind that r did
// not observe.
func CoverageRows(r model.Report) []Row {
	return rows(r, true)
}

func rows(r model.Report, allCounters bool) []Row {
	out := make([]Row, 0, len(r.Exposures)+len(r.Stats)+1)
	for _, es := range r.Exposures {
		out = append(out, Row{
			Family: model.FamilyStructured,
			Kind:   model.KindExposure,
			Label:  es.Exposure.String(),
			Count:  es.Count,
		})
	}
	for _, k := range model.Kinds() {
		s, ok := r.Stats[k]
		if !ok && !(allCounters && k.Family() == model.FamilyCounter) {
			continue
		}
		out = append(out, Row{
			Family: k.Family(),
			Kind:   k,
			Label:  k.String(),
			Count:  s.Count,
			Sum:    s.Sum,
			Min:    s.Min,
			Max:    s.Max,
		})
	}
	out = append(out, Row{
		Family: model.FamilyFallback,
		Kind:   model.KindUnknown,
		Label:  model.KindUnknown.String(),
		Count:  r.Unknown,
	})
	return out
}
