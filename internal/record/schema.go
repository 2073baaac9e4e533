// SPDX-License-Identifier: Apache-2.0

package record

import (
	"encoding/json"
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

// recordSchema describes the output contract of a Record.
const recordSchema = `
#Contact: {
	name?:     string
	email?:    =~"@"
	phone:     [...string]
	linkedin?: =~"(?i)^https?://"
	address?:  string
	website?:  string
}

#Education: {
	degree?:      string
	institution?: string
	date?:        string
}

#Experience: {
	title?:            string
	company?:          string
	date?:             string
	responsibilities?: [...string]
}

#Record: {
	contact?:    #Contact
	skills?:     [...string]
	experience?: [...#Experience]
	education?:  [...#Education]
	languages?:  [...string]

	[!~"^(contact|skills|experience|education|languages)$"]: string
}
`

// Validate checks rec against the record schema.
func Validate(rec *Record) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to marshal record: %w", err)
	}

	ctx := cuecontext.New()
	schema := ctx.CompileString(recordSchema)
	if err := schema.Err(); err != nil {
		return fmt.Errorf("failed to compile record schema: %w", err)
	}

	value := ctx.CompileBytes(data)
	if err := value.Err(); err != nil {
		return fmt.Errorf("failed to load record: %w", err)
	}

	unified := schema.LookupPath(cue.ParsePath("#Record")).Unify(value)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return fmt.Errorf("record does not match schema: %w", err)
	}
	return nil
}
