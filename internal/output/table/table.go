package table

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/crimson-sun/skylog/internal/engine/report"
	"github.com/crimson-sun/skylog/internal/engine/taxonomy"
	"github.com/crimson-sun/skylog/internal/model"
	"github.com/crimson-sun/skylog/internal/output"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	numberStyle = cellStyle.Align(lipgloss.Right)
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
)

var headers = []string{"FAMILY", "EVENT", "DESCRIPTION", "COUNT", "MEAN", "MIN", "MAX"}

// numeric columns are right-aligned.
const firstNumericCol = 3

// Output renders each report as a bordered terminal table.
// Every counter kind is listed, zero or not.
type Output struct {
	mu  sync.Mutex
	w   io.Writer
	tax *taxonomy.Taxonomy
}

// New creates a table Output writing to w.
func New(w io.Writer, tax *taxonomy.Taxonomy) *Output {
	return &Output{w: w, tax: tax}
}

func (o *Output) Write(_ context.Context, r model.Report) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col >= firstNumericCol:
				return numberStyle
			default:
				return cellStyle
			}
		}).
		Headers(headers...)

	for _, row := range report.CoverageRows(r) {
		t.Row(o.cells(row)...)
	}

	title := titleStyle.Render(fmt.Sprintf("%d lines, %d unrecognized, %d exposure signatures",
		r.Lines, r.Unknown, len(r.Exposures)))
	if _, err := fmt.Fprintf(o.w, "%s\n%s\n", title, t.Render()); err != nil {
		return fmt.Errorf("table output: %w", err)
	}
	return nil
}

func (o *Output) Close() error {
	return nil
}

func (o *Output) cells(row report.Row) []string {
	desc := o.tax.Describe(row.Kind)
	if row.Kind == model.KindExposure {
		desc = row.Label
	}
	cells := []string{row.Family.String(), row.Kind.String(), desc, strconv.Itoa(row.Count), "", "", ""}

	if mean, ok := output.Mean(row); ok {
		unit := o.tax.Unit(row.Kind)
		cells[4] = output.FormatValue(mean, unit)
		cells[5] = output.FormatValue(row.Min, unit)
		cells[6] = output.FormatValue(row.Max, unit)
	}
	return cells
}
