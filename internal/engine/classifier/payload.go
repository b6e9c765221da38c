package classifier

import (
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/crimson-sun/skylog/internal/model"
)

// Unit suffixes accepted after a numeric field, per kind, longest first.
var (
	durationUnits = []string{"seconds", "secs", "sec", "s"}
	fwhmUnits     = []string{"arcsec", `"`}
	hfdUnits      = []string{"px"}
)

// maxMagnitude bounds every accepted value so that sums over any realistic
// log stay finite.
const maxMagnitude = 1e12

func parseCounter(kind model.Kind, _ string) (model.Event, bool) {
	return model.Event{Kind: kind}, true
}

func parseDuration(kind model.Kind, rest string) (model.Event, bool) {
	v, ok := parseValueField(rest, durationUnits)
	if !ok || v < 0 {
		return model.Event{}, false
	}
	return model.Event{Kind: kind, Value: v}, true
}

// parseMeasurement reads a star size. Sizes are never negative.
func parseMeasurement(kind model.Kind, rest string) (model.Event, bool) {
	units := fwhmUnits
	if kind == model.KindHfd {
		units = hfdUnits
	}
	v, ok := parseValueField(rest, units)
	if !ok || v < 0 {
		return model.Event{}, false
	}
	return model.Event{Kind: kind, Value: v}, true
}

func parseRequiredText(kind model.Kind, rest string) (model.Event, bool) {
	if rest == "" {
		return model.Event{}, false
	}
	return model.Event{Kind: kind, Text: rest}, true
}

func parseOptionalText(kind model.Kind, rest string) (model.Event, bool) {
	return model.Event{Kind: kind, Text: rest}, true
}

// parseExposure reads dur=, bin= and optional filter= fields in any order.
func parseExposure(kind model.Kind, rest string) (model.Event, bool) {
	fields, ok := splitFields(rest)
	if !ok || len(fields) == 0 {
		return model.Event{}, false
	}

	var exp model.Exposure
	seen := map[string]bool{}
	for _, f := range fields {
		key, val, found := strings.Cut(f, "=")
		if !found {
			return model.Event{}, false
		}
		key = strings.ToLower(key)
		if seen[key] {
			return model.Event{}, false
		}
		seen[key] = true

		switch key {
		case "dur":
			d, ok := parseReal(val, durationUnits)
			if !ok || d < 0 {
				return model.Event{}, false
			}
			exp.Duration = d
		case "bin":
			b, err := strconv.Atoi(val)
			if err != nil || b < 1 {
				return model.Event{}, false
			}
			exp.Bin = b
		case "filter":
			exp.Filter = val
		default:
			return model.Event{}, false
		}
	}
	if !seen["dur"] || !seen["bin"] {
		return model.Event{}, false
	}
	return model.Event{Kind: kind, Exposure: exp}, true
}

// parseValueField accepts exactly one number, optionally followed by a
// separate token from units.
func parseValueField(rest string, units []string) (float64, bool) {
	fields := strings.Fields(rest)
	switch len(fields) {
	case 1:
		return parseReal(fields[0], units)
	case 2:
		if !isUnit(fields[1], units) {
			return 0, false
		}
		return parseReal(fields[0], units)
	default:
		return 0, false
	}
}

// parseReal is a lenient float parser: it allows a leading '+', a decimal
// comma, and one of units glued to the digits. NaN, infinities and values
// beyond maxMagnitude are rejected.
func parseReal(s string, units []string) (float64, bool) {
	s = strings.TrimSpace(s)
	lower := strings.ToLower(s)
	for _, u := range units {
		if strings.HasSuffix(lower, u) && len(s) > len(u) {
			s = strings.TrimSpace(s[:len(s)-len(u)])
			break
		}
	}
	if strings.Count(s, ",") == 1 && !strings.Contains(s, ".") {
		s = strings.Replace(s, ",", ".", 1)
	}
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.Abs(v) > maxMagnitude {
		return 0, false
	}
	return v, true
}

func isUnit(s string, units []string) bool {
	lower := strings.ToLower(s)
	for _, u := range units {
		if lower == u {
			return true
		}
	}
	return false
}

// splitFields splits on whitespace, keeping double-quoted runs together and
// dropping the quotes. An unterminated quote fails.
func splitFields(s string) ([]string, bool) {
	var (
		fields  []string
		b       strings.Builder
		quoted  bool
		pending bool
	)
	for _, r := range s {
		switch {
		case r == '"':
			quoted = !quoted
			pending = true
		case !quoted && unicode.IsSpace(r):
			if pending {
				fields = append(fields, b.String())
				b.Reset()
				pending = false
			}
		default:
			b.WriteRune(r)
			pending = true
		}
	}
	if quoted {
		return nil, false
	}
	if pending {
		fields = append(fields, b.String())
	}
	return fields, true
}
