// SPDX-License-Identifier: Apache-2.0

package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuilder_FlushEmitsEachStartedEntryOnce(t *testing.T) {
	var b builder[EducationEntry]

	b.flush()
	assert.Empty(t, b.entries, "flushing an empty entry emits nothing")

	b.current.Degree = "BSc"
	b.flush()
	b.flush()
	assert.Equal(t, []EducationEntry{{Degree: "BSc"}}, b.entries)

	b.current.Date = "2020 - 2021"
	assert.Equal(t, []EducationEntry{{Degree: "BSc"}, {Date: "2020 - 2021"}}, b.result())
}

func TestBuilder_ResultNeverNil(t *testing.T) {
	var b builder[ExperienceEntry]
	got := b.result()
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
