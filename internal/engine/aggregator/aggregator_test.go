package aggregator

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crimson-sun/skylog/internal/model"
)

func exposure(filter string, dur float64, bin int) model.Event {
	return model.Event{Kind: model.KindExposure, Exposure: model.Exposure{Duration: dur, Filter: filter, Bin: bin}}
}

func value(k model.Kind, v float64) model.Event {
	return model.Event{Kind: k, Value: v}
}

func TestExposureBucketsFirstSeenOrder(t *testing.T) {
	a := New()
	a.AddAll([]model.Event{
		exposure("R", 30, 2),
		exposure("R", 30, 2),
		exposure("V", 10, 1),
	})

	snap := a.Snapshot()
	require.Len(t, snap.Exposures, 2)
	assert.Equal(t, model.ExposureSummary{Exposure: model.Exposure{Duration: 30, Filter: "R", Bin: 2}, Count: 2}, snap.Exposures[0])
	assert.Equal(t, model.ExposureSummary{Exposure: model.Exposure{Duration: 10, Filter: "V", Bin: 1}, Count: 1}, snap.Exposures[1])
}

func TestSignatureIsStructural(t *testing.T) {
	a := New()
	a.AddAll([]model.Event{
		exposure("R", 30, 2),
		exposure("R", 30, 1),
		exposure("R", 60, 2),
		exposure("", 30, 2),
	})
	assert.Len(t, a.Snapshot().Exposures, 4)
}

func TestCountersAndUnknown(t *testing.T) {
	a := New()
	a.AddAll([]model.Event{
		{Kind: model.KindAutoFocusSuccess},
		{Kind: model.KindAutoFocusFail},
		{Kind: model.KindAutoFocusSuccess},
		{Kind: model.KindUnknown},
	})

	snap := a.Snapshot()
	assert.Equal(t, 2, snap.Stats[model.KindAutoFocusSuccess].Count)
	assert.Equal(t, 1, snap.Stats[model.KindAutoFocusFail].Count)
	assert.Equal(t, 1, snap.Unknown)
	assert.Equal(t, 4, snap.Lines)
	assert.NotContains(t, snap.Stats, model.KindUnknown)
}

func TestDurationStats(t *testing.T) {
	a := New()
	a.Add(value(model.KindSlewTarget, 12.5))
	a.Add(value(model.KindSlewTarget, 7.5))

	assert.Equal(t, model.Stats{Count: 2, Sum: 20, Min: 7.5, Max: 12.5}, a.Snapshot().Stats[model.KindSlewTarget])
}

func TestMeasurementMinMaxFromFirstValue(t *testing.T) {
	a := New()
	a.Add(value(model.KindFwhm, 3.5))

	assert.Equal(t, model.Stats{Count: 1, Sum: 3.5, Min: 3.5, Max: 3.5}, a.Snapshot().Stats[model.KindFwhm])

	// The aggregator takes values as given; a zero min must not clamp them.
	a.Add(value(model.KindFwhm, -1))
	s := a.Snapshot().Stats[model.KindFwhm]
	assert.Equal(t, -1.0, s.Min)
	assert.Equal(t, 3.5, s.Max)
}

func TestStructuredKindsCounted(t *testing.T) {
	a := New()
	a.AddAll([]model.Event{
		{Kind: model.KindTarget, Text: "M 51"},
		{Kind: model.KindTarget, Text: "M 101"},
		{Kind: model.KindWait},
	})

	snap := a.Snapshot()
	assert.Equal(t, 2, snap.Stats[model.KindTarget].Count)
	assert.Equal(t, 1, snap.Stats[model.KindWait].Count)
	assert.Empty(t, snap.Exposures)
}

func TestNoneIgnored(t *testing.T) {
	a := New()
	a.Add(model.Event{Kind: model.KindNone})

	snap := a.Snapshot()
	assert.Zero(t, snap.Lines)
	assert.Zero(t, snap.Unknown)
	assert.Empty(t, snap.Stats)
}

func TestSnapshotIsACopy(t *testing.T) {
	a := New()
	a.Add(exposure("R", 30, 2))
	a.Add(value(model.KindHfd, 2))
	snap := a.Snapshot()

	a.Add(exposure("R", 30, 2))
	a.Add(value(model.KindHfd, 4))

	assert.Equal(t, 1, snap.Exposures[0].Count)
	assert.Equal(t, 1, snap.Stats[model.KindHfd].Count)
}

func TestOrderIndependence(t *testing.T) {
	events := []model.Event{
		exposure("R", 30, 2), exposure("V", 10, 1), exposure("R", 30, 2), exposure("B", 60, 1),
		value(model.KindSlewTarget, 4), value(model.KindSlewTarget, 16), value(model.KindSlewTarget, 8),
		value(model.KindHfd, 2.5), value(model.KindHfd, 1.5),
		{Kind: model.KindPlateSolveSuccess}, {Kind: model.KindPlateSolveFail}, {Kind: model.KindPlateSolveSuccess},
		{Kind: model.KindUnknown}, {Kind: model.KindTarget, Text: "M 42"},
	}

	base := New()
	base.AddAll(events)
	want := base.Snapshot()

	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 20; i++ {
		shuffled := append([]model.Event(nil), events...)
		rng.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })

		a := New()
		a.AddAll(shuffled)
		got := a.Snapshot()

		assert.Equal(t, want.Stats, got.Stats)
		assert.Equal(t, want.Unknown, got.Unknown)
		assert.Equal(t, want.Lines, got.Lines)
		assert.ElementsMatch(t, want.Exposures, got.Exposures)
	}
}
