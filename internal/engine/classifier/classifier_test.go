package classifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crimson-sun/skylog/internal/engine/testdata"
	"github.com/crimson-sun/skylog/internal/model"
)

func TestClassifyCorpus(t *testing.T) {
	entries, err := testdata.LoadCorpus()
	require.NoError(t, err)

	c := New()
	for _, e := range entries {
		ev := c.Classify(e.Raw)
		if !assert.Equal(t, e.ExpectedKind, ev.Kind.String(), "%s: %q", e.Description, e.Raw) {
			continue
		}
		if e.ExpectedValue != nil {
			assert.InDelta(t, *e.ExpectedValue, ev.Value, 1e-9, "%s: %q", e.Description, e.Raw)
		}
	}
}

func TestClassifyExposurePayload(t *testing.T) {
	tests := []struct {
		line string
		want model.Exposure
	}{
		{"Exposure filter=R dur=30 bin=2", model.Exposure{Duration: 30, Filter: "R", Bin: 2}},
		{"Exposure bin=1 dur=120s filter=\"Clear 2\"", model.Exposure{Duration: 120, Filter: "Clear 2", Bin: 1}},
		{"Exposure dur=0,5 bin=4", model.Exposure{Duration: 0.5, Bin: 4}},
		{"Exposure filter= dur=10 bin=1", model.Exposure{Duration: 10, Bin: 1}},
		{"Exposure FILTER=V DUR=10 BIN=1", model.Exposure{Duration: 10, Filter: "V", Bin: 1}},
	}
	for _, tt := range tests {
		ev := Classify(tt.line)
		require.Equal(t, model.KindExposure, ev.Kind, tt.line)
		assert.Equal(t, tt.want, ev.Exposure, tt.line)
	}
}

func TestClassifyMalformedFallsBackToUnknown(t *testing.T) {
	lines := []string{
		"SlewTarget",
		"SlewTarget 1 2",
		"SlewTarget 12.5 furlongs",
		"GuiderSettle Inf",
		"Hfd abc",
		"Exposure",
		"Exposure dur=30 bin=2 filter=R filter=V",
		"Exposure dur=30 bin=2 gain=100",
		"Exposure dur=-1 bin=2",
		"Exposure dur=30 bin=1.5",
		"Exposure dur=30 bin=2 stray",
		"FilterChange",
	}
	for _, line := range lines {
		assert.Equal(t, model.KindUnknown, Classify(line).Kind, line)
	}
}

func TestClassifyRejectsOutOfRangeValues(t *testing.T) {
	lines := []string{
		"SlewTarget 1e308",
		"GuiderSettle 2e12",
		"Fwhm 1e13\"",
		"Exposure dur=1e300 bin=1",
	}
	for _, line := range lines {
		assert.Equal(t, model.KindUnknown, Classify(line).Kind, line)
	}

	ev := Classify("SlewTarget 1e12")
	assert.Equal(t, model.KindSlewTarget, ev.Kind)
	assert.Equal(t, 1e12, ev.Value)
}

func TestClassifyUnitsPerKind(t *testing.T) {
	tests := []struct {
		line string
		kind model.Kind
	}{
		{"SlewTarget 12 s", model.KindSlewTarget},
		{"SlewTarget 12 px", model.KindUnknown},
		{"SlewTarget 12arcsec", model.KindUnknown},
		{"Fwhm 2.4 arcsec", model.KindFwhm},
		{"Fwhm 2.4\"", model.KindFwhm},
		{"Fwhm 2.4 px", model.KindUnknown},
		{"Fwhm 2.4s", model.KindUnknown},
		{"Hfd 3.1px", model.KindHfd},
		{"Hfd 3.1 arcsec", model.KindUnknown},
		{"Exposure dur=30px bin=1", model.KindUnknown},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.kind, Classify(tt.line).Kind, tt.line)
	}
}

func TestClassifyNegativeMeasurement(t *testing.T) {
	assert.Equal(t, model.KindUnknown, Classify("Fwhm -0.5").Kind)
	assert.Equal(t, model.KindUnknown, Classify("Hfd -3 px").Kind)
	assert.Equal(t, model.KindHfd, Classify("Hfd 0").Kind)
}

func TestClassifyTextPayload(t *testing.T) {
	tests := []struct {
		line string
		kind model.Kind
		text string
	}{
		{"Target M 51", model.KindTarget, "M 51"},
		{"21:00:01 FilterChange:   Luminance", model.KindFilterChange, "Luminance"},
		{"AutoFocus", model.KindAutoFocus, ""},
		{"Wait 300 sec for dawn", model.KindWait, "300 sec for dawn"},
	}
	for _, tt := range tests {
		ev := Classify(tt.line)
		assert.Equal(t, tt.kind, ev.Kind, tt.line)
		assert.Equal(t, tt.text, ev.Text, tt.line)
	}
}

func TestClassifyPriorityPrefersFirstRule(t *testing.T) {
	// AutoFocusSuccess precedes AutoFocus in the table and both markers are
	// prefixes of this line.
	require.Equal(t, model.KindAutoFocusSuccess, Classify("AutoFocusSuccess").Kind)

	rules := New().Rules()
	for i := 1; i < len(rules); i++ {
		require.Greater(t, rules[i], rules[i-1], "rules out of priority order at %d", i)
	}
}

func TestClassifyDeterministic(t *testing.T) {
	entries, err := testdata.LoadCorpus()
	require.NoError(t, err)
	for _, e := range entries {
		assert.Equal(t, Classify(e.Raw), Classify(e.Raw), e.Raw)
	}
}

func TestRulesCoverEveryNonFallbackKind(t *testing.T) {
	covered := map[model.Kind]bool{}
	for _, k := range New().Rules() {
		covered[k] = true
	}
	for _, k := range model.Kinds() {
		want := k.Family() != model.FamilyFallback
		assert.Equal(t, want, covered[k], "kind %s", k)
	}
}

func TestClassifyAllDropsNone(t *testing.T) {
	events := New().ClassifyAll([]string{"AutoFocusSuccess", "", "  ", "garbage line", "SlewTarget 3"})
	require.Len(t, events, 3)

	want := []model.Kind{model.KindAutoFocusSuccess, model.KindUnknown, model.KindSlewTarget}
	for i, k := range want {
		assert.Equal(t, k, events[i].Kind, "events[%d]", i)
	}
}

func TestParseReal(t *testing.T) {
	tests := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"12.5", 12.5, true},
		{"+3", 3, true},
		{"7,25", 7.25, true},
		{"1,000.5", 0, false},
		{"2.5sec", 2.5, true},
		{"2.5px", 0, false},
		{"s", 0, false},
		{"", 0, false},
		{"nan", 0, false},
		{"-inf", 0, false},
		{"-1e12", -1e12, true},
		{"1.0000001e12", 0, false},
	}
	for _, tt := range tests {
		got, ok := parseReal(tt.in, durationUnits)
		assert.Equal(t, tt.ok, ok, tt.in)
		if tt.ok {
			assert.Equal(t, tt.want, got, tt.in)
		}
	}
}
