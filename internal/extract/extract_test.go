// SPDX-License-Identifier: Apache-2.0

package extract_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cvparseproj/cvparse-mcp/internal/extract"
)

// ---------------------------------------------------------------------------
// Contact
// ---------------------------------------------------------------------------

func TestContact(t *testing.T) {
	tests := []struct {
		name           string
		text           string
		validateOutput func(t *testing.T, info extract.ContactInfo)
	}{
		{
			name: "name, email and phone",
			text: "Jane Doe\njane.doe@example.com\n+1 (555) 123-4567",
			validateOutput: func(t *testing.T, info extract.ContactInfo) {
				assert.Equal(t, "Jane Doe", info.Name)
				assert.Equal(t, "jane.doe@example.com", info.Email)
				assert.Equal(t, []string{"+1 (555) 123-4567"}, info.Phone)
				assert.Empty(t, info.LinkedIn)
				assert.Empty(t, info.Address)
				assert.Empty(t, info.Website)
			},
		},
		{
			name: "all-caps name after a non-name line",
			text: "curriculum vitae\nJOHN QUINCY PUBLIC\njohn@public.org",
			validateOutput: func(t *testing.T, info extract.ContactInfo) {
				assert.Equal(t, "JOHN QUINCY PUBLIC", info.Name)
			},
		},
		{
			name: "single word or long lines are not names",
			text: "Jane\nThe Quick Brown Fox Jumps\njane@example.com",
			validateOutput: func(t *testing.T, info extract.ContactInfo) {
				assert.Empty(t, info.Name)
			},
		},
		{
			name: "name search stops after five lines",
			text: "a\nb\nc\nd\ne\nJane Doe",
			validateOutput: func(t *testing.T, info extract.ContactInfo) {
				assert.Empty(t, info.Name)
			},
		},
		{
			name: "several phones kept in order with duplicates",
			text: "Tel: 555-123-4567\nMobile: +44 20 7946 0958\nHome: 555-123-4567",
			validateOutput: func(t *testing.T, info extract.ContactInfo) {
				assert.Equal(t, []string{"555-123-4567", "+44 20 7946 0958", "555-123-4567"}, info.Phone)
			},
		},
		{
			name: "short digit runs are not phones",
			text: "Room 42\nZip 1234",
			validateOutput: func(t *testing.T, info extract.ContactInfo) {
				assert.NotNil(t, info.Phone)
				assert.Empty(t, info.Phone)
			},
		},
		{
			name: "bare linkedin path gets a scheme",
			text: "Profile: LinkedIn.com/in/janedoe",
			validateOutput: func(t *testing.T, info extract.ContactInfo) {
				assert.Equal(t, "https://LinkedIn.com/in/janedoe", info.LinkedIn)
			},
		},
		{
			name: "full linkedin URL kept as is",
			text: "https://www.linkedin.com/in/janedoe/",
			validateOutput: func(t *testing.T, info extract.ContactInfo) {
				assert.Equal(t, "https://www.linkedin.com/in/janedoe/", info.LinkedIn)
				assert.Empty(t, info.Website, "linkedin is not the website")
			},
		},
		{
			name: "website and address",
			text: "Portfolio: https://janedoe.dev.\n742 Evergreen Terrace, Springfield, IL 62704",
			validateOutput: func(t *testing.T, info extract.ContactInfo) {
				assert.Equal(t, "https://janedoe.dev", info.Website)
				assert.Equal(t, "742 Evergreen Terrace, Springfield, IL 62704", info.Address)
			},
		},
		{
			name: "empty text leaves everything unset",
			text: "",
			validateOutput: func(t *testing.T, info extract.ContactInfo) {
				assert.Equal(t, extract.ContactInfo{Phone: []string{}}, info)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validateOutput(t, extract.Contact(tt.text))
		})
	}
}

// ---------------------------------------------------------------------------
// Skills and Languages
// ---------------------------------------------------------------------------

func TestSkills(t *testing.T) {
	text := "Python, Project Management, Public Speaking\nThis is a long sentence that should be filtered out because it has too many words"
	assert.Equal(t, []string{"Python", "Project Management", "Public Speaking"}, extract.Skills(text))
}

func TestSkills_BulletsAndDuplicates(t *testing.T) {
	text := "• Go • Rust\n  , Go,\n\nDistributed Systems Design At Scale"
	assert.Equal(t, []string{"Go", "Rust", "Go", "Distributed Systems Design At Scale"}, extract.Skills(text))
}

func TestSkills_Empty(t *testing.T) {
	skills := extract.Skills(" \n , ")
	assert.NotNil(t, skills)
	assert.Empty(t, skills)
}

func TestLanguages(t *testing.T) {
	text := "English (native), French\n• Spanish - conversational but improving every single day"
	assert.Equal(t, []string{
		"English (native)",
		"French",
		"Spanish - conversational but improving every single day",
	}, extract.Languages(text))
}

// ---------------------------------------------------------------------------
// Education
// ---------------------------------------------------------------------------

func TestEducation(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []extract.EducationEntry
	}{
		{
			name: "single complete entry",
			text: "Bachelor of Science\nMIT University\n2018 - 2022",
			want: []extract.EducationEntry{
				{Degree: "Bachelor of Science", Institution: "MIT University", Date: "2018 - 2022"},
			},
		},
		{
			name: "new degree flushes the previous entry",
			text: "Master of Engineering\nStanford University\n2022 – Present\nBachelor of Arts\nLincoln High School\n2014-2018",
			want: []extract.EducationEntry{
				{Degree: "Master of Engineering", Institution: "Stanford University", Date: "2022 – Present"},
				{Degree: "Bachelor of Arts", Institution: "Lincoln High School", Date: "2014-2018"},
			},
		},
		{
			name: "institution before any degree",
			text: "Institute of Technology\n2010 - 2014\nphd in physics",
			want: []extract.EducationEntry{
				{Institution: "Institute of Technology", Date: "2010 - 2014"},
				{Degree: "phd in physics"},
			},
		},
		{
			name: "later institution overwrites",
			text: "Diploma in Design\nArt College\nState University",
			want: []extract.EducationEntry{
				{Degree: "Diploma in Design", Institution: "State University"},
			},
		},
		{
			name: "free text is ignored",
			text: "Graduated with honours\nGPA 3.9",
			want: []extract.EducationEntry{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extract.Education(tt.text))
		})
	}
}

// ---------------------------------------------------------------------------
// Experience
// ---------------------------------------------------------------------------

func TestExperience(t *testing.T) {
	text := "Software Engineer\nAcme Corp, Jan 2020 - Present\n- Built the billing pipeline\n• Mentored two engineers\nSome unrelated remark.\nData Analyst\nGlobex, Mar 2018 – Dec 2019\n- Automated weekly reports"

	got := extract.Experience(text)
	require.Len(t, got, 2)

	assert.Equal(t, extract.ExperienceEntry{
		Title:            "Software Engineer",
		Company:          "Acme Corp",
		Date:             "Jan 2020 Present",
		Responsibilities: []string{"Built the billing pipeline", "Mentored two engineers"},
	}, got[0])

	assert.Equal(t, extract.ExperienceEntry{
		Title:            "Data Analyst",
		Company:          "Globex",
		Date:             "Mar 2018 Dec 2019",
		Responsibilities: []string{"Automated weekly reports"},
	}, got[1])
}

func TestExperience_EdgeCases(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []extract.ExperienceEntry
	}{
		{
			name: "bullets before any title form their own entry",
			text: "- Volunteered on weekends\nSite Lead",
			want: []extract.ExperienceEntry{
				{Responsibilities: []string{"Volunteered on weekends"}},
				{Title: "Site Lead"},
			},
		},
		{
			name: "consecutive titles each become an entry",
			text: "Intern\nJunior Developer",
			want: []extract.ExperienceEntry{
				{Title: "Intern"},
				{Title: "Junior Developer"},
			},
		},
		{
			name: "long title-case line is not a title",
			text: "Head Of The Platform Engineering Group",
			want: []extract.ExperienceEntry{},
		},
		{
			name: "compact date range without spaces is ignored",
			text: "Engineer\nAcme, Jan 2020-Present",
			want: []extract.ExperienceEntry{
				{Title: "Engineer"},
			},
		},
		{
			name: "empty input",
			text: "",
			want: []extract.ExperienceEntry{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extract.Experience(tt.text))
		})
	}
}

func TestExtractors_Deterministic(t *testing.T) {
	text := "Jane Doe\njane@example.com\nSoftware Engineer\nAcme, Jan 2020 - Present\n- Did work"
	assert.Equal(t, extract.Contact(text), extract.Contact(text))
	assert.Equal(t, extract.Experience(text), extract.Experience(text))
	assert.Equal(t, extract.Skills(text), extract.Skills(text))
}
