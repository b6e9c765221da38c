package engine

import (
	"context"

	"github.com/crimson-sun/skylog/internal/engine/aggregator"
	"github.com/crimson-sun/skylog/internal/engine/classifier"
	"github.com/crimson-sun/skylog/internal/engine/report"
	"github.com/crimson-sun/skylog/internal/model"
)

const ctxCheckEvery = 4096

// Engine orchestrates the classify → aggregate → assemble pass.
type Engine struct {
	classifier *classifier.Classifier
}

// New creates an Engine with the provided classifier.
func New(cls *classifier.Classifier) *Engine {
	return &Engine{classifier: cls}
}

// Classify classifies a single raw line.
func (e *Engine) Classify(line string) model.Event {
	return e.classifier.Classify(line)
}

// Process runs one pass over lines with a fresh aggregator. If ctx is
// cancelled midway the partial state is discarded and ctx.Err() returned.
func (e *Engine) Process(ctx context.Context, lines []string) (model.Report, error) {
	agg := aggregator.New()
	for i, line := range lines {
		if i%ctxCheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				return model.Report{}, err
			}
		}
		ev := e.classifier.Classify(line)
		if ev.Kind == model.KindNone {
			continue
		}
		agg.Add(ev)
	}
	return report.Assemble(agg.Snapshot()), nil
}
