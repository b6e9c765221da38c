package stdout

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/crimson-sun/skylog/internal/model"
)

// Output writes one JSON document per report. Stats are keyed by kind name.
type Output struct {
	mu  sync.Mutex
	enc *json.Encoder
}

// New creates an Output on os.Stdout with optional pretty-printed JSON.
func New(pretty bool) *Output {
	return NewWriter(os.Stdout, pretty)
}

// NewWriter creates an Output on w.
func NewWriter(w io.Writer, pretty bool) *Output {
	enc := json.NewEncoder(w)
	if pretty {
		enc.SetIndent("", "  ")
	}
	return &Output{enc: enc}
}

func (o *Output) Write(_ context.Context, report model.Report) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if err := o.enc.Encode(report); err != nil {
		return fmt.Errorf("stdout output: %w", err)
	}
	return nil
}

func (o *Output) Close() error {
	return nil
}
