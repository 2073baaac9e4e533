// SPDX-License-Identifier: Apache-2.0

// Package section discovers section boundaries in plain CV text.
package section

// Canonical section names. Only the names the record router and the keyword
// fallbacks refer to are declared as constants; Taxonomy is the full table.
const (
	GeneralInformation = "GENERAL INFORMATION"

	Experience         = "EXPERIENCE"
	WorkExperience     = "WORK EXPERIENCE"
	Education          = "EDUCATION"
	Skills             = "SKILLS"
	TechnicalSkills    = "TECHNICAL SKILLS"
	SoftSkills         = "SOFT SKILLS"
	Languages          = "LANGUAGES"
	Contact            = "CONTACT"
	ContactInformation = "CONTACT INFORMATION"
)

// Taxonomy is the closed set of canonical section names, in the order used to
// break similarity ties.
var Taxonomy = []string{
	"ABOUT ME", "SUMMARY", "PROFILE", "OBJECTIVE",
	Experience, WorkExperience, "PROFESSIONAL EXPERIENCE", "EMPLOYMENT HISTORY",
	Education, "ACADEMIC BACKGROUND", "QUALIFICATIONS",
	Skills, TechnicalSkills, SoftSkills, "LANGUAGE SKILLS",
	"PROJECTS", "RESEARCH PROJECTS",
	"CERTIFICATIONS", "TRAINING", "COURSES",
	Languages, "LANGUAGE PROFICIENCY",
	Contact, ContactInformation, "PERSONAL DETAILS",
	"INTERESTS", "HOBBIES", "ADDITIONAL ACTIVITIES",
	"VOLUNTEERING", "VOLUNTEER WORK",
	"AWARDS", "ACHIEVEMENTS", "HONORS",
	"PUBLICATIONS", "RESEARCH PAPERS",
	"REFERENCES",
}

var taxonomySet = func() map[string]struct{} {
	set := make(map[string]struct{}, len(Taxonomy))
	for _, name := range Taxonomy {
		set[name] = struct{}{}
	}
	return set
}()

// IsCanonical reports whether name is a taxonomy entry.
func IsCanonical(name string) bool {
	_, ok := taxonomySet[name]
	return ok
}
