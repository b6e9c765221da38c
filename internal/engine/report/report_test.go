package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crimson-sun/skylog/internal/engine/aggregator"
	"github.com/crimson-sun/skylog/internal/model"
)

func exp(filter string, dur float64, bin int) model.Exposure {
	return model.Exposure{Duration: dur, Filter: filter, Bin: bin}
}

func build(events ...model.Event) model.Report {
	a := aggregator.New()
	a.AddAll(events)
	return Assemble(a.Snapshot())
}

func TestAssembleEmpty(t *testing.T) {
	r := Assemble(aggregator.New().Snapshot())

	assert.NotNil(t, r.Exposures)
	assert.Empty(t, r.Exposures)
	assert.Empty(t, r.Stats)
	assert.Zero(t, r.Unknown)
	assert.Zero(t, r.Lines)
	assert.Equal(t, r, Empty())
}

func TestAssembleOmitsUnobservedKinds(t *testing.T) {
	r := build(
		model.Event{Kind: model.KindAutoFocusSuccess},
		model.Event{Kind: model.KindSlewTarget, Value: 5},
	)

	assert.Len(t, r.Stats, 2)
	assert.Contains(t, r.Stats, model.KindAutoFocusSuccess)
	assert.Contains(t, r.Stats, model.KindSlewTarget)
	assert.NotContains(t, r.Stats, model.KindAutoFocusFail)
}

func TestAssembleDoesNotAliasSnapshot(t *testing.T) {
	a := aggregator.New()
	a.Add(model.Event{Kind: model.KindExposure, Exposure: exp("R", 30, 2)})
	snap := a.Snapshot()
	r := Assemble(snap)

	snap.Exposures[0].Count = 99
	assert.Equal(t, 1, r.Exposures[0].Count)
}

func TestMergeSumsAndExtremes(t *testing.T) {
	a := build(
		model.Event{Kind: model.KindExposure, Exposure: exp("R", 30, 2)},
		model.Event{Kind: model.KindSlewTarget, Value: 12.5},
		model.Event{Kind: model.KindPlateSolveSuccess},
		model.Event{Kind: model.KindUnknown},
	)
	b := build(
		model.Event{Kind: model.KindExposure, Exposure: exp("V", 10, 1)},
		model.Event{Kind: model.KindExposure, Exposure: exp("R", 30, 2)},
		model.Event{Kind: model.KindSlewTarget, Value: 3},
		model.Event{Kind: model.KindSlewTarget, Value: 40},
		model.Event{Kind: model.KindHfd, Value: 2.2},
	)

	m := Merge(a, b)

	assert.Equal(t, []model.ExposureSummary{
		{Exposure: exp("R", 30, 2), Count: 2},
		{Exposure: exp("V", 10, 1), Count: 1},
	}, m.Exposures)
	assert.Equal(t, model.Stats{Count: 3, Sum: 55.5, Min: 3, Max: 40}, m.Stats[model.KindSlewTarget])
	assert.Equal(t, model.Stats{Count: 1, Sum: 2.2, Min: 2.2, Max: 2.2}, m.Stats[model.KindHfd])
	assert.Equal(t, 1, m.Stats[model.KindPlateSolveSuccess].Count)
	assert.Equal(t, 1, m.Unknown)
	assert.Equal(t, 9, m.Lines)
}

func TestMergeDoesNotModifyInputs(t *testing.T) {
	a := build(model.Event{Kind: model.KindExposure, Exposure: exp("R", 30, 2)})
	b := build(model.Event{Kind: model.KindExposure, Exposure: exp("R", 30, 2)})

	_ = Merge(a, b)
	assert.Equal(t, 1, a.Exposures[0].Count)
	assert.Equal(t, 1, b.Exposures[0].Count)
}

func TestMergeEmptyIsIdentity(t *testing.T) {
	r := build(
		model.Event{Kind: model.KindExposure, Exposure: exp("B", 60, 1)},
		model.Event{Kind: model.KindFwhm, Value: -0.5},
		model.Event{Kind: model.KindTarget, Text: "M 42"},
	)

	assert.Equal(t, r, Merge(Empty(), r))
	assert.Equal(t, r, Merge(r, Empty()))
	assert.Equal(t, r, MergeAll(r))
	assert.Equal(t, Empty(), MergeAll())
}

func TestMergeMatchesSinglePass(t *testing.T) {
	first := []model.Event{
		{Kind: model.KindExposure, Exposure: exp("R", 30, 2)},
		{Kind: model.KindGuiderSettle, Value: 8},
		{Kind: model.KindAutoFocusFail},
	}
	second := []model.Event{
		{Kind: model.KindGuiderSettle, Value: 2},
		{Kind: model.KindExposure, Exposure: exp("L", 300, 1)},
		{Kind: model.KindUnknown},
	}

	whole := build(append(append([]model.Event(nil), first...), second...)...)
	assert.Equal(t, whole, MergeAll(build(first...), build(second...)))
}

func TestRowsOrder(t *testing.T) {
	r := build(
		model.Event{Kind: model.KindHfd, Value: 2},
		model.Event{Kind: model.KindExposure, Exposure: exp("V", 10, 1)},
		model.Event{Kind: model.KindAutoFocusSuccess},
		model.Event{Kind: model.KindExposure, Exposure: exp("R", 30, 2)},
		model.Event{Kind: model.KindUnknown},
	)

	rows := Rows(r)
	require.Len(t, rows, 5)
	assert.Equal(t, "V 10s bin1", rows[0].Label)
	assert.Equal(t, "R 30s bin2", rows[1].Label)
	assert.Equal(t, model.KindAutoFocusSuccess, rows[2].Kind)
	assert.Equal(t, model.KindHfd, rows[3].Kind)
	assert.True(t, rows[3].HasValues())
	assert.False(t, rows[2].HasValues())
	assert.Equal(t, model.KindUnknown, rows[4].Kind)
	assert.Equal(t, 1, rows[4].Count)
}

func TestCoverageRowsListsAllCounters(t *testing.T) {
	r := build(model.Event{Kind: model.KindPlateSolveFail})

	var counters int
	for _, row := range CoverageRows(r) {
		if row.Family == model.FamilyCounter {
			counters++
			if row.Kind == model.KindPlateSolveFail {
				assert.Equal(t, 1, row.Count)
			} else {
				assert.Zero(t, row.Count)
			}
		}
	}
	assert.Equal(t, 9, counters)
	assert.Len(t, Rows(r), 2)
}
