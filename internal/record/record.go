// SPDX-License-Identifier: Apache-2.0

// Package record assembles segmented sections into the structured CV record.
package record

import (
	"bytes"
	"encoding/json"

	"github.com/goccy/go-yaml"

	"github.com/cvparseproj/cvparse-mcp/internal/extract"
)

// Output keys for sections with a dedicated extractor.
const (
	KeyContact    = "contact"
	KeySkills     = "skills"
	KeyExperience = "experience"
	KeyEducation  = "education"
	KeyLanguages  = "languages"
)

// Record is the structured result for one document. A key is present only
// when a section producing it was found; Keys reports them in document order.
type Record struct {
	Contact     *extract.ContactInfo
	Skills      []string
	Experience  []extract.ExperienceEntry
	Education   []extract.EducationEntry
	Languages   []string
	Passthrough map[string]string

	keys []string
}

// Keys returns the output keys in the order their sections first appeared.
func (r *Record) Keys() []string {
	out := make([]string, len(r.keys))
	copy(out, r.keys)
	return out
}

// Has reports whether key is present.
func (r *Record) Has(key string) bool {
	for _, k := range r.keys {
		if k == key {
			return true
		}
	}
	return false
}

// Value returns the value stored under key.
func (r *Record) Value(key string) (any, bool) {
	if !r.Has(key) {
		return nil, false
	}
	switch key {
	case KeyContact:
		return r.Contact, true
	case KeySkills:
		return r.Skills, true
	case KeyExperience:
		return r.Experience, true
	case KeyEducation:
		return r.Education, true
	case KeyLanguages:
		return r.Languages, true
	}
	return r.Passthrough[key], true
}

// Map returns the record as a plain key/value map.
func (r *Record) Map() map[string]any {
	m := make(map[string]any, len(r.keys))
	for _, k := range r.keys {
		m[k], _ = r.Value(k)
	}
	return m
}

func (r *Record) set(key string, value any) {
	switch key {
	case KeyContact:
		contact := value.(extract.ContactInfo)
		r.Contact = &contact
	case KeySkills:
		r.Skills = value.([]string)
	case KeyExperience:
		r.Experience = value.([]extract.ExperienceEntry)
	case KeyEducation:
		r.Education = value.([]extract.EducationEntry)
	case KeyLanguages:
		r.Languages = value.([]string)
	default:
		if r.Passthrough == nil {
			r.Passthrough = make(map[string]string)
		}
		r.Passthrough[key] = value.(string)
	}
	if !r.Has(key) {
		r.keys = append(r.keys, key)
	}
}

// MarshalJSON writes the keys in document order.
func (r *Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range r.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		v, _ := r.Value(k)
		val, err := json.Marshal(v)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalYAML keeps the document order of the keys.
func (r *Record) MarshalYAML() (interface{}, error) {
	out := make(yaml.MapSlice, 0, len(r.keys))
	for _, k := range r.keys {
		v, _ := r.Value(k)
		out = append(out, yaml.MapItem{Key: k, Value: v})
	}
	return out, nil
}
