// Package corpus handles the document corpus: canonical JSONL records
// and an ephemeral SQLite cache for queries.
package corpus

import "errors"

// Record is one document in the corpus. Countries preserves the order
// and duplicates of the source extraction; aggregation deduplicates.
type Record struct {
	ID           string   `json:"id"`
	Title        string   `json:"title,omitempty"`
	Countries    []string `json:"countries_mentioned_list"`
	SubjectAreas string   `json:"subjareas,omitempty"`
}

// Validation errors.
var (
	ErrEmptyID = errors.New("record id is required")
)

// Validate checks a record before it enters the corpus.
func (r *Record) Validate() error {
	if r.ID == "" {
		return ErrEmptyID
	}
	return nil
}
