package corpus

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// FieldMap names the fields of an external corpus file. External
// datasets rarely agree on column names, so both are caller
// configurable; the zero value is filled in from DefaultFieldMap.
type FieldMap struct {
	List    string // field holding the list of country codes
	Subject string // field holding the comma-separated subject areas
}

// DefaultFieldMap matches the field names this tool's own exports use.
func DefaultFieldMap() FieldMap {
	return FieldMap{
		List:    "countries_mentioned_list",
		Subject: "subjareas",
	}
}

// ErrMissingField marks a schema mismatch between the declared field
// map and an imported line.
var ErrMissingField = errors.New("required field missing")

// ImportJSONL reads an external JSONL corpus, mapping fields per fm.
//
// Every line must carry the list field: a line without it is a schema
// mismatch and fails the whole import rather than being skipped. The
// subject field is optional per line. Lines without an "id" field get
// a sequential one.
func ImportJSONL(r io.Reader, fm FieldMap) ([]Record, error) {
	if fm.List == "" {
		fm.List = DefaultFieldMap().List
	}
	if fm.Subject == "" {
		fm.Subject = DefaultFieldMap().Subject
	}

	scanner := bufio.NewScanner(r)
	buf := make([]byte, MaxJSONLLineCapacity)
	scanner.Buffer(buf, MaxJSONLLineCapacity)

	var records []Record
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var raw map[string]json.RawMessage
		if err := json.Unmarshal(line, &raw); err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum, err)
		}

		listRaw, ok := raw[fm.List]
		if !ok {
			return nil, fmt.Errorf("line %d: %w: %q", lineNum, ErrMissingField, fm.List)
		}

		var countries []string
		if err := json.Unmarshal(listRaw, &countries); err != nil {
			return nil, fmt.Errorf("line %d: field %q is not a list of codes: %w", lineNum, fm.List, err)
		}

		rec := Record{
			ID:        stringField(raw, "id"),
			Title:     stringField(raw, "title"),
			Countries: countries,
		}
		if subjRaw, ok := raw[fm.Subject]; ok {
			if err := json.Unmarshal(subjRaw, &rec.SubjectAreas); err != nil {
				return nil, fmt.Errorf("line %d: field %q is not a string: %w", lineNum, fm.Subject, err)
			}
		}
		if rec.ID == "" {
			rec.ID = fmt.Sprintf("rec-%06d", lineNum)
		}

		records = append(records, rec)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading corpus: %w", err)
	}
	return records, nil
}

// stringField decodes an optional string field from a raw JSON object.
func stringField(raw map[string]json.RawMessage, name string) string {
	data, ok := raw[name]
	if !ok {
		return ""
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return ""
	}
	return s
}
