package multi

import (
	"context"
	"errors"
	"fmt"

	"github.com/crimson-sun/skylog/internal/model"
	"github.com/crimson-sun/skylog/internal/output"
)

// Multi fans out reports to multiple output.Output implementations.
// Each Write call delivers the report to every wrapped output sequentially.
// If one output fails, the remaining outputs still receive the report.
type Multi struct {
	outputs []output.Output
}

// New creates a Multi that fans out to the given outputs. Nil outputs are
// skipped.
func New(outputs ...output.Output) *Multi {
	m := &Multi{outputs: make([]output.Output, 0, len(outputs))}
	for _, o := range outputs {
		if o != nil {
			m.outputs = append(m.outputs, o)
		}
	}
	return m
}

// Write delivers the report to every wrapped output. Errors are collected
// but do not prevent delivery to subsequent outputs.
func (m *Multi) Write(ctx context.Context, report model.Report) error {
	var errs []error
	for i, o := range m.outputs {
		if err := o.Write(ctx, report); err != nil {
			errs = append(errs, fmt.Errorf("output %d: %w", i, err))
		}
	}
	return errors.Join(errs...)
}

// Close calls Close on every wrapped output, collecting errors.
func (m *Multi) Close() error {
	var errs []error
	for i, o := range m.outputs {
		if err := o.Close(); err != nil {
			errs = append(errs, fmt.Errorf("output %d: %w", i, err))
		}
	}
	return errors.Join(errs...)
}
