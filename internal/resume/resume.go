// Package resume defines the resume data model shared by all analysis
// engines, together with the tokenization boundaries for the string-encoded
// collection fields (comma-delimited skills, newline-delimited bullet
// descriptions). Engines never mutate a ResumeData value.
package resume

import "strings"

// ResumeData is the input snapshot consumed by every engine. All fields may
// be empty; engines treat an empty string the same as an absent field.
type ResumeData struct {
	PersonalInfo   PersonalInfo    `json:"personalInfo"`
	Experiences    []Experience    `json:"experiences"`
	Education      []Education     `json:"education"`
	Skills         string          `json:"skills"`
	Projects       []Project       `json:"projects"`
	Certifications []Certification `json:"certifications"`
}

// PersonalInfo holds the contact block of a resume.
type PersonalInfo struct {
	FullName string `json:"fullName"`
	Title    string `json:"title"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	Website  string `json:"website"`
	LinkedIn string `json:"linkedin"`
	Summary  string `json:"summary"`
}

// Experience is a single work history entry. Dates are "YYYY-MM" strings or
// free text; Description is free text with optional bullet prefixes.
type Experience struct {
	Company     string `json:"company"`
	Position    string `json:"position"`
	Location    string `json:"location"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Current     bool   `json:"current"`
	Description string `json:"description"`
}

// Education is a single education entry.
type Education struct {
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	Field       string `json:"field"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	GPA         string `json:"gpa"`
	Description string `json:"description"`
}

// Project is a portfolio project entry.
type Project struct {
	Name         string `json:"name"`
	Description  string `json:"description"`
	Technologies string `json:"technologies"`
	Link         string `json:"link"`
}

// Certification is a professional certification entry.
type Certification struct {
	Name   string `json:"name"`
	Issuer string `json:"issuer"`
	Date   string `json:"date"`
	Link   string `json:"link"`
}

// SplitDelimited splits a comma-delimited field into trimmed, non-empty
// items. It is the single tokenization rule for skills and technologies so
// the score engine, simulator and matcher all agree on what a "skill" is.
func SplitDelimited(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	items := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			items = append(items, trimmed)
		}
	}
	return items
}

// JoinDelimited is the serialize side of the boundary: render items with an
// explicit separator.
func JoinDelimited(items []string, sep string) string {
	return strings.Join(items, sep)
}

// SplitBullets splits a newline-delimited description into bullet lines,
// stripping leading "-", "•" and "*" markers.
func SplitBullets(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	var bullets []string
	for line := range strings.SplitSeq(s, "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimLeft(line, "-•* ")
		if line != "" {
			bullets = append(bullets, line)
		}
	}
	return bullets
}

// FlattenText concatenates every free-text field of the resume into one
// searchable blob. The keyword matcher and the skill cross-reference check
// both run against this text.
func (r ResumeData) FlattenText() string {
	var b strings.Builder

	appendPart := func(s string) {
		if s != "" {
			b.WriteString(s)
			b.WriteString(" ")
		}
	}

	appendPart(r.PersonalInfo.FullName)
	appendPart(r.PersonalInfo.Title)
	appendPart(r.PersonalInfo.Summary)
	appendPart(r.PersonalInfo.Location)

	for _, exp := range r.Experiences {
		appendPart(exp.Position)
		appendPart(exp.Company)
		appendPart(exp.Location)
		appendPart(exp.Description)
	}

	for _, edu := range r.Education {
		appendPart(edu.Institution)
		appendPart(edu.Degree)
		appendPart(edu.Field)
		appendPart(edu.Description)
	}

	appendPart(r.Skills)

	for _, proj := range r.Projects {
		appendPart(proj.Name)
		appendPart(proj.Description)
		appendPart(proj.Technologies)
	}

	for _, cert := range r.Certifications {
		appendPart(cert.Name)
		appendPart(cert.Issuer)
	}

	return strings.TrimSpace(b.String())
}

// WordCount returns the number of whitespace-separated words in the
// flattened resume text.
func (r ResumeData) WordCount() int {
	return len(strings.Fields(r.FlattenText()))
}

// ExperienceText concatenates all experience descriptions, positions and
// companies. Several score checks scan only this portion of the resume.
func (r ResumeData) ExperienceText() string {
	var b strings.Builder
	for _, exp := range r.Experiences {
		b.WriteString(exp.Position)
		b.WriteString(" ")
		b.WriteString(exp.Company)
		b.WriteString(" ")
		b.WriteString(exp.Description)
		b.WriteString(" ")
	}
	return strings.TrimSpace(b.String())
}
