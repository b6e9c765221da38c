package source

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

const (
	defaultCharset     = "utf-8"
	defaultMaxLineSize = 1024 * 1024 // 1MiB
	ctxCheckEvery      = 4096
)

// ErrIOFailure matches every error returned by the read functions in this package.
var ErrIOFailure = errors.New("log file could not be read")

// ReadError reports a failed read of one log file.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("read %s: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

// Is makes errors.Is(err, ErrIOFailure) hold for every ReadError.
func (e *ReadError) Is(target error) bool { return target == ErrIOFailure }

// Option configures how a log file is read.
type Option func(*options)

type options struct {
	charset     string
	maxLineSize int
}

// WithCharset sets the IANA charset name used to decode files without a BOM.
// Default: utf-8, passed through undecoded.
func WithCharset(name string) Option {
	return func(o *options) { o.charset = name }
}

// WithMaxLineSize sets the longest line accepted, in bytes. Default: 1MiB.
func WithMaxLineSize(n int) Option {
	return func(o *options) { o.maxLineSize = n }
}

func buildOptions(opts []Option) options {
	o := options{charset: defaultCharset, maxLineSize: defaultMaxLineSize}
	for _, opt := range opts {
		opt(&o)
	}
	if o.maxLineSize <= 0 {
		o.maxLineSize = defaultMaxLineSize
	}
	return o
}

// ReadLines reads the whole file at path and returns its lines in order.
// An empty file yields an empty, non-nil slice. Any failure, including a
// cancelled context, is a *ReadError and no lines are returned.
func ReadLines(ctx context.Context, path string, opts ...Option) ([]string, error) {
	o := buildOptions(opts)

	enc, err := lookupCharset(o.charset)
	if err != nil {
		return nil, &ReadError{Path: path, Err: err}
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, &ReadError{Path: path, Err: err}
	}
	defer f.Close()

	// A BOM always wins over the configured charset.
	r := transform.NewReader(f, unicode.BOMOverride(enc.NewDecoder()))

	scanner := bufio.NewScanner(r)
	bufSize := 64 * 1024
	if bufSize > o.maxLineSize {
		bufSize = o.maxLineSize
	}
	scanner.Buffer(make([]byte, 0, bufSize), o.maxLineSize)

	lines := []string{}
	for scanner.Scan() {
		if len(lines)%ctxCheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				return nil, &ReadError{Path: path, Err: err}
			}
		}
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, &ReadError{Path: path, Err: err}
	}

	slog.Debug("log file read", "path", path, "lines", len(lines), "charset", o.charset)
	return lines, nil
}

// File holds the lines of the most recently read log file.
// Each Read replaces the previous contents.
type File struct {
	opts  []Option
	path  string
	lines []string
}

// NewFile creates an empty File that reads with the given options.
func NewFile(opts ...Option) *File {
	return &File{opts: opts}
}

// Read loads path, replacing any previously held lines. On failure the
// held lines are cleared so stale content is never mistaken for the new file.
func (f *File) Read(ctx context.Context, path string) error {
	f.path = path
	lines, err := ReadLines(ctx, path, f.opts...)
	if err != nil {
		f.lines = nil
		return err
	}
	f.lines = lines
	return nil
}

// Path returns the path passed to the last Read.
func (f *File) Path() string { return f.path }

// Lines returns the lines held from the last successful Read.
func (f *File) Lines() []string { return f.lines }
