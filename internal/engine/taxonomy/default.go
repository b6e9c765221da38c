package taxonomy

import "github.com/crimson-sun/skylog/internal/model"

// DefaultRoots returns the built-in catalogue of controller events, grouped
// by payload family.
func DefaultRoots() []*Node {
	return []*Node{
		{
			Name: "counter",
			Desc: "Outcomes of automated operations",
			Children: []*Node{
				leaf(model.KindAllSkySolveSuccess, "All-sky plate solve succeeded", ""),
				leaf(model.KindAllSkySolveFail, "All-sky plate solve failed", ""),
				leaf(model.KindAutoFocusSuccess, "Auto-focus run succeeded", ""),
				leaf(model.KindAutoFocusFail, "Auto-focus run failed", ""),
				leaf(model.KindGuiderFail, "Guider failed to start or lost the guide star", ""),
				leaf(model.KindPlateSolveSuccess, "Plate solve succeeded", ""),
				leaf(model.KindPlateSolveFail, "Plate solve failed", ""),
				leaf(model.KindScriptAbort, "Observing script aborted", ""),
				leaf(model.KindScriptError, "Observing script raised an error", ""),
			},
		},
		{
			Name: "duration",
			Desc: "Timed operations",
			Children: []*Node{
				leaf(model.KindAllSkySolveTime, "All-sky solve time", "s"),
				leaf(model.KindGuiderSettle, "Guider settle time", "s"),
				leaf(model.KindGuiderStartUp, "Guider start-up time", "s"),
				leaf(model.KindSlewTarget, "Slew to target", "s"),
				leaf(model.KindPointingErrorCenterSlew, "Pointing correction slew (center)", "s"),
				leaf(model.KindPointingErrorObjectSlew, "Pointing correction slew (object)", "s"),
			},
		},
		{
			Name: "measurement",
			Desc: "Image quality metrics",
			Children: []*Node{
				leaf(model.KindFwhm, "Star FWHM", "arcsec"),
				leaf(model.KindHfd, "Half-flux diameter", "px"),
			},
		},
		{
			Name: "structured",
			Desc: "Exposures and context markers",
			Children: []*Node{
				leaf(model.KindExposure, "Image exposure", ""),
				leaf(model.KindFilterChange, "Filter wheel change", ""),
				leaf(model.KindTarget, "New target", ""),
				leaf(model.KindPointingExpAndPlateSolve, "Pointing exposure and plate solve", ""),
				leaf(model.KindAutoFocus, "Auto-focus run started", ""),
				leaf(model.KindWait, "Wait", ""),
			},
		},
		{
			Name: "fallback",
			Desc: "Lines without a recognized event",
			Children: []*Node{
				leaf(model.KindUnknown, "Unrecognized line", ""),
			},
		},
	}
}

func leaf(k model.Kind, desc, unit string) *Node {
	return &Node{Name: k.String(), Desc: desc, Unit: unit, Kind: k}
}
