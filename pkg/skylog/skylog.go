package skylog

import (
	"context"
	"fmt"

	"github.com/crimson-sun/skylog/internal/engine"
	"github.com/crimson-sun/skylog/internal/engine/classifier"
	"github.com/crimson-sun/skylog/internal/engine/report"
	"github.com/crimson-sun/skylog/internal/engine/taxonomy"
	"github.com/crimson-sun/skylog/internal/model"
	"github.com/crimson-sun/skylog/internal/output"
	"github.com/crimson-sun/skylog/internal/pipeline"
)

// Skylog analyses observatory controller logs.
// Safe for concurrent use.
type Skylog struct {
	engine   *engine.Engine
	pipeline *pipeline.Pipeline
	taxonomy *taxonomy.Taxonomy
}

// New creates a Skylog instance. Construction is cheap.
func New(opts ...Option) *Skylog {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	eng := engine.New(classifier.New())
	p := pipeline.New(eng, output.Discard,
		pipeline.WithCharset(o.charset),
		pipeline.WithPattern(o.pattern),
		pipeline.WithWorkers(o.workers),
		pipeline.WithMaxLineSize(o.maxLineSize),
	)
	return &Skylog{engine: eng, pipeline: p, taxonomy: taxonomy.Default()}
}

// Classify classifies a single log line. Blank lines classify as "None",
// lines without a recognised event or with a malformed payload as "Unknown".
func (s *Skylog) Classify(line string) Event {
	return eventFromModel(s.engine.Classify(line))
}

// ClassifyAll classifies lines in order. Blank lines are dropped.
func (s *Skylog) ClassifyAll(lines []string) []Event {
	events := make([]Event, 0, len(lines))
	for _, line := range lines {
		ev := s.engine.Classify(line)
		if ev.Kind == model.KindNone {
			continue
		}
		events = append(events, eventFromModel(ev))
	}
	return events
}

// Analyze aggregates lines that are already in memory.
func (s *Skylog) Analyze(ctx context.Context, lines []string) (Report, error) {
	r, err := s.engine.Process(ctx, lines)
	if err != nil {
		return Report{}, fmt.Errorf("skylog: %w", err)
	}
	return r, nil
}

// AnalyzeFile reads the log at path and aggregates it in a single pass.
// Read failures match ErrIOFailure with errors.Is.
func (s *Skylog) AnalyzeFile(ctx context.Context, path string) (Report, error) {
	r, err := s.pipeline.AnalyzeFile(ctx, path)
	if err != nil {
		return Report{}, fmt.Errorf("skylog: %w", err)
	}
	return r, nil
}

// FileResult is the outcome for one file of AnalyzeDir.
type FileResult struct {
	Path   string
	Report Report
	Err    error
}

// DirResult holds per-file outcomes in file-name order and the merged
// report of every file that could be read.
type DirResult struct {
	Files  []FileResult
	Merged Report
}

// AnalyzeDir analyses every matching file in dir. Unreadable files are
// reported in the result and left out of the merge. If no file could be
// read, the error wraps ErrIOFailure.
func (s *Skylog) AnalyzeDir(ctx context.Context, dir string) (DirResult, error) {
	res, err := s.pipeline.AnalyzeDir(ctx, dir)
	if err != nil {
		return DirResult{}, fmt.Errorf("skylog: %w", err)
	}
	files := make([]FileResult, len(res.Files))
	for i, f := range res.Files {
		files[i] = FileResult{Path: f.Path, Report: f.Report, Err: f.Err}
	}
	return DirResult{Files: files, Merged: res.Merged}, nil
}

// Merge combines reports as if their lines had been analysed in one pass.
// Merge() with no arguments returns the empty report.
func Merge(reports ...Report) Report {
	return report.MergeAll(reports...)
}
