package classifier

import (
	"regexp"
	"strings"

	"github.com/crimson-sun/skylog/internal/model"
)

// leadingClock matches the wall-clock stamp the controller prefixes to most lines.
var leadingClock = regexp.MustCompile(`^\d{1,2}:\d{2}:\d{2}(?:\.\d+)?(?:\s+|$)`)

// parseFunc extracts the payload for kind from the text following its marker.
// It returns false when the payload is malformed.
type parseFunc func(kind model.Kind, rest string) (model.Event, bool)

type rule struct {
	kind   model.Kind
	marker string
	parse  parseFunc
}

// Classifier maps raw log lines to events using an ordered rule table.
// It holds no mutable state and is safe for concurrent use.
type Classifier struct {
	rules []rule
}

// New creates a Classifier covering every non-fallback kind, tried in
// model.Kinds() order.
func New() *Classifier {
	var rules []rule
	for _, k := range model.Kinds() {
		p := parserFor(k)
		if p == nil {
			continue
		}
		rules = append(rules, rule{kind: k, marker: k.String(), parse: p})
	}
	return &Classifier{rules: rules}
}

var defaultClassifier = New()

// Classify classifies line with the default rule table.
func Classify(line string) model.Event {
	return defaultClassifier.Classify(line)
}

// Classify returns exactly one event for line. Blank lines are KindNone;
// lines no rule recognizes, or whose payload fails to parse, are KindUnknown.
func (c *Classifier) Classify(line string) model.Event {
	text := strings.TrimSpace(line)
	if loc := leadingClock.FindStringIndex(text); loc != nil {
		text = strings.TrimSpace(text[loc[1]:])
	}
	if text == "" {
		return model.Event{Kind: model.KindNone}
	}

	for _, r := range c.rules {
		rest, ok := matchMarker(text, r.marker)
		if !ok {
			continue
		}
		// The first matching marker decides; a bad payload is not retried
		// against lower-priority rules.
		ev, ok := r.parse(r.kind, rest)
		if !ok {
			return model.Event{Kind: model.KindUnknown}
		}
		return ev
	}
	return model.Event{Kind: model.KindUnknown}
}

// ClassifyAll classifies lines in order, dropping KindNone.
func (c *Classifier) ClassifyAll(lines []string) []model.Event {
	events := make([]model.Event, 0, len(lines))
	for _, line := range lines {
		ev := c.Classify(line)
		if ev.Kind == model.KindNone {
			continue
		}
		events = append(events, ev)
	}
	return events
}

// Rules returns the kinds of the rule table in match order.
func (c *Classifier) Rules() []model.Kind {
	kinds := make([]model.Kind, len(c.rules))
	for i, r := range c.rules {
		kinds[i] = r.kind
	}
	return kinds
}

// matchMarker reports whether text starts with marker as a whole token and
// returns the trimmed remainder.
func matchMarker(text, marker string) (string, bool) {
	if !strings.HasPrefix(text, marker) {
		return "", false
	}
	rest := text[len(marker):]
	if rest == "" {
		return "", true
	}
	switch rest[0] {
	case ' ', '\t':
	case ':':
		rest = rest[1:]
	default:
		return "", false
	}
	return strings.TrimSpace(rest), true
}

func parserFor(k model.Kind) parseFunc {
	switch k.Family() {
	case model.FamilyCounter:
		return parseCounter
	case model.FamilyDuration:
		return parseDuration
	case model.FamilyMeasurement:
		return parseMeasurement
	case model.FamilyStructured:
		switch k {
		case model.KindExposure:
			return parseExposure
		case model.KindFilterChange, model.KindTarget:
			return parseRequiredText
		default:
			return parseOptionalText
		}
	default:
		return nil
	}
}
