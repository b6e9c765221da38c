package output

import (
	"context"

	"github.com/crimson-sun/skylog/internal/model"
)

// Output defines the interface for report destinations.
type Output interface {
	Write(ctx context.Context, report model.Report) error
	Close() error
}

// Discard is an Output that drops every report. Library callers that only
// want the returned report use it.
var Discard Output = discard{}

type discard struct{}

func (discard) Write(context.Context, model.Report) error { return nil }
func (discard) Close() error                              { return nil }
