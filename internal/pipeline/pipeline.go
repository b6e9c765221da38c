package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/crimson-sun/skylog/internal/engine"
	"github.com/crimson-sun/skylog/internal/engine/report"
	"github.com/crimson-sun/skylog/internal/model"
	"github.com/crimson-sun/skylog/internal/output"
	"github.com/crimson-sun/skylog/internal/source"
)

// Pipeline connects a line source, engine, and output into an analysis pass.
type Pipeline struct {
	engine  *engine.Engine
	output  output.Output
	pattern string
	workers int
	source  []source.Option
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithCharset sets the character set log files are decoded from.
func WithCharset(name string) Option {
	return func(p *Pipeline) {
		p.source = append(p.source, source.WithCharset(name))
	}
}

// WithMaxLineSize caps the length of a single log line in bytes.
func WithMaxLineSize(n int) Option {
	return func(p *Pipeline) {
		p.source = append(p.source, source.WithMaxLineSize(n))
	}
}

// WithPattern sets the glob used to select files in directory mode.
// Default: "*.log".
func WithPattern(pattern string) Option {
	return func(p *Pipeline) {
		p.pattern = pattern
	}
}

// WithWorkers bounds how many files are analysed concurrently in directory
// mode. Values below 1 are ignored.
func WithWorkers(n int) Option {
	return func(p *Pipeline) {
		if n >= 1 {
			p.workers = n
		}
	}
}

// New creates a Pipeline from the given components.
func New(eng *engine.Engine, out output.Output, opts ...Option) *Pipeline {
	p := &Pipeline{
		engine:  eng,
		output:  out,
		pattern: "*.log",
		workers: 4,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// FileResult is the outcome of analysing one file in directory mode.
// Exactly one of Report or Err is meaningful.
type FileResult struct {
	Path   string
	Report model.Report
	Err    error
}

// DirResult holds per-file outcomes in file-name order and the merge of
// every successful report.
type DirResult struct {
	Files  []FileResult
	Merged model.Report
}

// Failed returns the results that could not be read.
func (d DirResult) Failed() []FileResult {
	var out []FileResult
	for _, f := range d.Files {
		if f.Err != nil {
			out = append(out, f)
		}
	}
	return out
}

// AnalyzeFile reads one log file and writes its report to the output.
// If the file cannot be read nothing is classified and nothing is written.
func (p *Pipeline) AnalyzeFile(ctx context.Context, path string) (model.Report, error) {
	r, err := p.analyze(ctx, path)
	if err != nil {
		return model.Report{}, err
	}
	if err := p.output.Write(ctx, r); err != nil {
		return model.Report{}, fmt.Errorf("pipeline output: %w", err)
	}
	return r, nil
}

// AnalyzeDir analyses every matching file in dir with its own pass and
// writes the merged report. A file that fails to read is recorded and
// skipped. The call fails when the directory cannot be listed, when every
// matching file fails to read (nothing is written then), on a cancelled
// context, or on an output failure.
func (p *Pipeline) AnalyzeDir(ctx context.Context, dir string) (DirResult, error) {
	paths, err := source.List(dir, p.pattern)
	if err != nil {
		return DirResult{}, fmt.Errorf("pipeline list: %w", err)
	}

	results := make([]FileResult, len(paths))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.workers)
	for i, path := range paths {
		g.Go(func() error {
			r, err := p.analyze(gctx, path)
			if err != nil {
				if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
					return err
				}
				slog.Warn("log file skipped", "path", path, "error", err)
			}
			results[i] = FileResult{Path: path, Report: r, Err: err}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return DirResult{}, err
	}

	merged := report.Empty()
	var readErrs []error
	for _, res := range results {
		if res.Err != nil {
			readErrs = append(readErrs, res.Err)
			continue
		}
		merged = report.Merge(merged, res.Report)
	}
	if len(readErrs) > 0 && len(readErrs) == len(results) {
		// Nothing was read. An empty report here would pass for an empty log.
		return DirResult{Files: results}, fmt.Errorf("pipeline read %s: no readable files: %w", dir, errors.Join(readErrs...))
	}
	slog.Info("directory analysed", "dir", dir, "files", len(paths), "lines", merged.Lines)

	if err := p.output.Write(ctx, merged); err != nil {
		return DirResult{}, fmt.Errorf("pipeline output: %w", err)
	}
	return DirResult{Files: results, Merged: merged}, nil
}

// analyze runs one read → classify → aggregate pass without touching the output.
func (p *Pipeline) analyze(ctx context.Context, path string) (model.Report, error) {
	lines, err := source.ReadLines(ctx, path, p.source...)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return model.Report{}, ctxErr
		}
		return model.Report{}, fmt.Errorf("pipeline read: %w", err)
	}
	r, err := p.engine.Process(ctx, lines)
	if err != nil {
		return model.Report{}, err
	}
	slog.Debug("log analysed", "path", path, "lines", r.Lines, "unknown", r.Unknown)
	return r, nil
}

// Close shuts down the output.
func (p *Pipeline) Close() error {
	return p.output.Close()
}
