package testdata

import (
	_ "embed"
	"encoding/json"
	"fmt"
)

//go:embed corpus.json
var corpusJSON []byte

// CorpusEntry is a labelled controller log line.
type CorpusEntry struct {
	Raw           string   `json:"raw"`
	ExpectedKind  string   `json:"expected_kind"`
	ExpectedValue *float64 `json:"expected_value,omitempty"`
	Description   string   `json:"description"`
}

// LoadCorpus parses the embedded corpus.json and returns all entries.
func LoadCorpus() ([]CorpusEntry, error) {
	var entries []CorpusEntry
	if err := json.Unmarshal(corpusJSON, &entries); err != nil {
		return nil, fmt.Errorf("parse corpus.json: %w", err)
	}
	return entries, nil
}
