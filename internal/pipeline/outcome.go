// SPDX-License-Identifier: Apache-2.0

package pipeline

import (
	"encoding/json"

	"github.com/goccy/go-yaml"

	"github.com/cvparseproj/cvparse-mcp/internal/record"
)

// Outcome holds either a record or an error message, never both.
type Outcome struct {
	Record *record.Record
	Error  string
}

// Success wraps a record.
func Success(rec *record.Record) Outcome {
	return Outcome{Record: rec}
}

// Failure wraps a classified error.
func Failure(err error) Outcome {
	return Outcome{Error: Classify(err)}
}

// Failed reports whether the outcome carries an error.
func (o Outcome) Failed() bool {
	return o.Error != ""
}

type errorEnvelope struct {
	Error string `json:"error" yaml:"error"`
}

// MarshalJSON writes the record object or {"error": message}.
func (o Outcome) MarshalJSON() ([]byte, error) {
	if o.Failed() {
		return json.Marshal(errorEnvelope{Error: o.Error})
	}
	if o.Record == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(o.Record)
}

// MarshalYAML mirrors MarshalJSON.
func (o Outcome) MarshalYAML() (interface{}, error) {
	if o.Failed() {
		return errorEnvelope{Error: o.Error}, nil
	}
	if o.Record == nil {
		return yaml.MapSlice{}, nil
	}
	return o.Record.MarshalYAML()
}
