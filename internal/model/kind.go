package model

import "fmt"

// Kind identifies what a single controller log line reports.
// The declaration order is the classifier's match priority.
type Kind int

const (
	// Counters: binary outcomes with no payload.
	KindAllSkySolveSuccess Kind = iota
	KindAllSkySolveFail
	KindAutoFocusSuccess
	KindAutoFocusFail
	KindGuiderFail
	KindPlateSolveSuccess
	KindPlateSolveFail
	KindScriptAbort
	KindScriptError

	// Durations: non-negative seconds.
	KindAllSkySolveTime
	KindGuiderSettle
	KindGuiderStartUp
	KindSlewTarget
	KindPointingErrorCenterSlew
	KindPointingErrorObjectSlew

	// Measurements: unit depends on the kind.
	KindFwhm
	KindHfd

	// Structured: exposure or text payload.
	KindExposure
	KindFilterChange
	KindTarget
	KindPointingExpAndPlateSolve
	KindAutoFocus
	KindWait

	// Fallback.
	KindUnknown
	KindNone

	kindCount
)

// Family groups kinds by the shape of their payload.
type Family int

const (
	FamilyCounter Family = iota
	FamilyDuration
	FamilyMeasurement
	FamilyStructured
	FamilyFallback
)

var kindNames = [kindCount]string{
	KindAllSkySolveSuccess:       "AllSkySolveSuccess",
	KindAllSkySolveFail:          "AllSkySolveFail",
	KindAutoFocusSuccess:         "AutoFocusSuccess",
	KindAutoFocusFail:            "AutoFocusFail",
	KindGuiderFail:               "GuiderFail",
	KindPlateSolveSuccess:        "PlateSolveSuccess",
	KindPlateSolveFail:           "PlateSolveFail",
	KindScriptAbort:              "ScriptAbort",
	KindScriptError:              "ScriptError",
	KindAllSkySolveTime:          "AllSkySolveTime",
	KindGuiderSettle:             "GuiderSettle",
	KindGuiderStartUp:            "GuiderStartUp",
	KindSlewTarget:               "SlewTarget",
	KindPointingErrorCenterSlew:  "PointingErrorCenterSlew",
	KindPointingErrorObjectSlew:  "PointingErrorObjectSlew",
	KindFwhm:                     "Fwhm",
	KindHfd:                      "Hfd",
	KindExposure:                 "Exposure",
	KindFilterChange:             "FilterChange",
	KindTarget:                   "Target",
	KindPointingExpAndPlateSolve: "PointingExpAndPlateSolve",
	KindAutoFocus:                "AutoFocus",
	KindWait:                     "Wait",
	KindUnknown:                  "Unknown",
	KindNone:                     "None",
}

// Kinds returns every kind in priority order, fallbacks last.
func Kinds() []Kind {
	kinds := make([]Kind, 0, kindCount)
	for k := Kind(0); k < kindCount; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}

// Valid reports whether k is a declared kind.
func (k Kind) Valid() bool {
	return k >= 0 && k < kindCount
}

func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Family returns the payload family of k.
func (k Kind) Family() Family {
	switch {
	case k <= KindScriptError:
		return FamilyCounter
	case k <= KindPointingErrorObjectSlew:
		return FamilyDuration
	case k <= KindHfd:
		return FamilyMeasurement
	case k <= KindWait:
		return FamilyStructured
	default:
		return FamilyFallback
	}
}

// ParseKind returns the kind with the given name.
func ParseKind(name string) (Kind, error) {
	for k, n := range kindNames {
		if n == name {
			return Kind(k), nil
		}
	}
	return KindUnknown, fmt.Errorf("unknown event kind %q", name)
}

// MarshalText encodes k by name so maps keyed by Kind serialize readably.
func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("invalid event kind %d", int(k))
	}
	return []byte(kindNames[k]), nil
}

func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

func (f Family) String() string {
	switch f {
	case FamilyCounter:
		return "counter"
	case FamilyDuration:
		return "duration"
	case FamilyMeasurement:
		return "measurement"
	case FamilyStructured:
		return "structured"
	case FamilyFallback:
		return "fallback"
	default:
		return fmt.Sprintf("Family(%d)", int(f))
	}
}
