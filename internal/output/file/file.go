package file

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sync"

	"github.com/crimson-sun/skylog/internal/model"
)

const (
	defaultBufSize = 64 * 1024
	defaultKeep    = 10
)

// ErrClosed is returned by Write after Close.
var ErrClosed = errors.New("file output: closed")

// Option configures a file Output.
type Option func(*Output)

// WithMaxSize rotates the file once appending the next report would take it
// past bytes. 0 (default) disables rotation.
func WithMaxSize(bytes int64) Option {
	return func(o *Output) { o.maxSize = bytes }
}

// WithKeep sets how many rotated archives ({path}.1 newest) are kept.
// Default: 10.
func WithKeep(n int) Option {
	return func(o *Output) {
		if n >= 1 {
			o.keep = n
		}
	}
}

// WithBufSize sets the write buffer size. Default: 64KB.
func WithBufSize(bytes int) Option {
	return func(o *Output) { o.bufSize = bytes }
}

// segment is the file currently being appended to.
type segment struct {
	f    *os.File
	w    *bufio.Writer
	size int64
}

func openSegment(path string, bufSize int) (*segment, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}
	return &segment{f: f, w: bufio.NewWriterSize(f, bufSize), size: info.Size()}, nil
}

func (s *segment) close() error {
	return errors.Join(s.w.Flush(), s.f.Close())
}

// Output appends one JSON report per line to a file (NDJSON). A report is
// never split across a rotation boundary.
type Output struct {
	mu      sync.Mutex
	path    string
	maxSize int64
	keep    int
	bufSize int
	cur     *segment // nil after Close
}

// New opens path for appending, creating it if needed.
func New(path string, opts ...Option) (*Output, error) {
	o := &Output{path: path, keep: defaultKeep, bufSize: defaultBufSize}
	for _, opt := range opts {
		opt(o)
	}
	seg, err := openSegment(path, o.bufSize)
	if err != nil {
		return nil, fmt.Errorf("file output: open %s: %w", path, err)
	}
	o.cur = seg
	return o, nil
}

func (o *Output) Write(_ context.Context, report model.Report) error {
	line, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("file output: marshal: %w", err)
	}
	line = append(line, '\n')

	o.mu.Lock()
	defer o.mu.Unlock()
	if o.cur == nil {
		return ErrClosed
	}

	// An oversized report still goes into a fresh file rather than an empty archive.
	if o.maxSize > 0 && o.cur.size > 0 && o.cur.size+int64(len(line)) > o.maxSize {
		if err := o.rotate(); err != nil {
			return fmt.Errorf("file output: rotate: %w", err)
		}
	}

	n, err := o.cur.w.Write(line)
	o.cur.size += int64(n)
	if err != nil {
		return fmt.Errorf("file output: write: %w", err)
	}
	return nil
}

// Close flushes buffered reports and closes the file. Further calls are no-ops.
func (o *Output) Close() error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.cur == nil {
		return nil
	}
	err := o.cur.close()
	o.cur = nil
	if err != nil {
		return fmt.Errorf("file output: close: %w", err)
	}
	return nil
}

func (o *Output) archive(i int) string {
	return fmt.Sprintf("%s.%d", o.path, i)
}

// rotate closes the current file, shifts archives up by one (dropping the
// oldest beyond keep), moves the current file to .1 and reopens path.
func (o *Output) rotate() error {
	if err := o.cur.close(); err != nil {
		return err
	}
	o.cur = nil

	if err := os.Remove(o.archive(o.keep)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	for i := o.keep - 1; i >= 1; i-- {
		if err := os.Rename(o.archive(i), o.archive(i+1)); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}
	if err := os.Rename(o.path, o.archive(1)); err != nil {
		return err
	}

	seg, err := openSegment(o.path, o.bufSize)
	if err != nil {
		return err
	}
	o.cur = seg
	return nil
}
