// Package simulator predicts how individual ATS vendors will parse a
// resume. Each vendor is described by a declarative profile; Simulate walks
// the resume section by section applying the profile's tolerances and
// produces field-level diagnostics plus vendor-specific warnings and tips.
package simulator

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	apperrors "resumelens/internal/errors"
	"resumelens/internal/resume"
)

// FieldStatus describes how well a field or section survived parsing.
type FieldStatus string

const (
	StatusParsed  FieldStatus = "parsed"
	StatusPartial FieldStatus = "partial"
	StatusWarning FieldStatus = "warning"
	StatusMissing FieldStatus = "missing"
)

// ParsedField is one extracted field as the vendor would store it.
type ParsedField struct {
	Name   string      `json:"name"`
	Value  string      `json:"value"`
	Status FieldStatus `json:"status"`
	Note   string      `json:"note,omitempty"`
}

// ParsedEntry groups the fields of one list item (a job, a degree).
type ParsedEntry struct {
	Title  string        `json:"title"`
	Status FieldStatus   `json:"status"`
	Fields []ParsedField `json:"fields"`
}

// ParsedSection is one resume section under the vendor's own label.
type ParsedSection struct {
	Key     string        `json:"key"`
	Label   string        `json:"label"`
	Status  FieldStatus   `json:"status"`
	Fields  []ParsedField `json:"fields,omitempty"`
	Entries []ParsedEntry `json:"entries,omitempty"`
}

// Result is the outcome of simulating one platform's ingestion.
type Result struct {
	Platform     string          `json:"platform"`
	PlatformName string          `json:"platformName"`
	OverallScore int             `json:"overallScore"`
	Sections     []ParsedSection `json:"sections"`
	Warnings     []string        `json:"warnings"`
	Tips         []string        `json:"tips"`
}

const bulletGlyphs = "•◦▪►→✓★●"

// Simulate runs the resume through the named platform's parsing profile.
// The only error condition is an unknown platform ID; malformed resume data
// degrades into missing sections, never an error.
func Simulate(r resume.ResumeData, platformID string) (Result, error) {
	p, ok := Lookup(platformID)
	if !ok {
		return Result{}, apperrors.NewEngineError(
			apperrors.ErrCodeUnknownPlatform,
			fmt.Sprintf("unknown platform %q", platformID),
			nil,
		).WithContext("platforms", PlatformIDs())
	}

	s := &simulation{platform: p, resume: r}
	s.contactSection()
	s.summarySection()
	s.experienceSection()
	s.educationSection()
	s.skillsSection()
	s.projectsSection()
	s.certificationsSection()

	s.warnings = append(s.warnings, p.Quirks...)

	score := 0
	if s.maxScore > 0 {
		score = int(float64(s.totalScore)/float64(s.maxScore)*100 + 0.5)
	}
	score = min(100, score)
	s.tips = s.buildTips(score)

	return Result{
		Platform:     p.ID,
		PlatformName: p.Name,
		OverallScore: score,
		Sections:     s.sections,
		Warnings:     s.warnings,
		Tips:         s.tips,
	}, nil
}

// simulation carries the running score accumulator across sections.
type simulation struct {
	platform Platform
	resume   resume.ResumeData

	totalScore int
	maxScore   int
	sections   []ParsedSection
	warnings   []string
	tips       []string

	missingDescription bool
}

func (s *simulation) addSection(sec ParsedSection, earned, max int) {
	s.totalScore += earned
	s.maxScore += max
	s.sections = append(s.sections, sec)
}

// label returns the vendor's display terminology for a section, the first
// of its accepted header synonyms.
func (s *simulation) label(key string) string {
	if labels, ok := s.platform.SectionLabels[key]; ok && len(labels) > 0 {
		return labels[0]
	}
	return key
}

func (s *simulation) fieldName(key string) string {
	if n, ok := s.platform.FieldMapping[key]; ok {
		return n
	}
	return key
}

func (s *simulation) contactSection() {
	pi := s.resume.PersonalInfo
	earned := 0
	var fields []ParsedField

	simple := []struct {
		key, value string
	}{
		{"fullName", pi.FullName},
		{"title", pi.Title},
		{"email", pi.Email},
		{"phone", pi.Phone},
		{"location", pi.Location},
	}
	for _, f := range simple {
		if f.value != "" {
			fields = append(fields, ParsedField{Name: s.fieldName(f.key), Value: f.value, Status: StatusParsed})
			earned += 10
		} else {
			fields = append(fields, ParsedField{Name: s.fieldName(f.key), Status: StatusMissing})
		}
	}

	switch {
	case pi.Website == "":
		fields = append(fields, ParsedField{Name: s.fieldName("website"), Status: StatusMissing})
	case strings.HasPrefix(pi.Website, "http"):
		fields = append(fields, ParsedField{Name: s.fieldName("website"), Value: pi.Website, Status: StatusParsed})
		earned += 10
	default:
		fields = append(fields, ParsedField{
			Name: s.fieldName("website"), Value: pi.Website, Status: StatusWarning,
			Note: "missing protocol; the parser may not recognize this as a URL",
		})
		earned += 7
	}

	switch {
	case pi.LinkedIn == "":
		fields = append(fields, ParsedField{Name: s.fieldName("linkedin"), Status: StatusMissing})
	case strings.Contains(pi.LinkedIn, "linkedin.com"):
		fields = append(fields, ParsedField{Name: s.fieldName("linkedin"), Value: pi.LinkedIn, Status: StatusParsed})
		earned += 10
	default:
		fields = append(fields, ParsedField{
			Name: s.fieldName("linkedin"), Value: pi.LinkedIn, Status: StatusWarning,
			Note: "does not look like a linkedin.com URL",
		})
		earned += 7
	}

	extracted := 0
	for _, f := range fields {
		if f.Status != StatusMissing {
			extracted++
		}
	}
	status := StatusMissing
	switch {
	case extracted >= 5:
		status = StatusParsed
	case extracted >= 3:
		status = StatusPartial
	}

	s.addSection(ParsedSection{Key: "contact", Label: s.label("contact"), Status: status, Fields: fields}, earned, 70)
}

func (s *simulation) summarySection() {
	summary := s.resume.PersonalInfo.Summary
	label := s.label("summary")

	if summary == "" {
		s.warnings = append(s.warnings, fmt.Sprintf("No summary found; %s profiles look sparse without one.", s.platform.Name))
		s.addSection(ParsedSection{Key: "summary", Label: label, Status: StatusMissing}, 0, 15)
		return
	}

	limit := s.platform.Rules.MaxSummaryLength
	if runeCount := utf8.RuneCountInString(summary); limit > 0 && runeCount > limit {
		s.warnings = append(s.warnings, fmt.Sprintf(
			"Summary is %d characters; %s truncates summaries beyond %d characters.",
			runeCount, s.platform.Name, limit))
		s.addSection(ParsedSection{
			Key: "summary", Label: label, Status: StatusPartial,
			Fields: []ParsedField{{
				Name: "summary", Value: truncateRunes(summary, limit) + "...", Status: StatusWarning,
				Note: fmt.Sprintf("truncated to the platform's %d character limit", limit),
			}},
		}, 10, 15)
		return
	}

	s.addSection(ParsedSection{
		Key: "summary", Label: label, Status: StatusParsed,
		Fields: []ParsedField{{Name: "summary", Value: summary, Status: StatusParsed}},
	}, 15, 15)
}

func (s *simulation) experienceSection() {
	label := s.label("experience")
	if len(s.resume.Experiences) == 0 {
		s.warnings = append(s.warnings, "No work experience could be parsed; this is a critical gap for any ATS.")
		s.addSection(ParsedSection{Key: "experience", Label: label, Status: StatusMissing}, 0, 25)
		return
	}

	var entries []ParsedEntry
	flagged := 0
	worst := StatusParsed

	for i, exp := range s.resume.Experiences {
		issues := 0
		var fields []ParsedField

		addField := func(name, value string) {
			if value != "" {
				fields = append(fields, ParsedField{Name: name, Value: value, Status: StatusParsed})
			} else {
				fields = append(fields, ParsedField{Name: name, Status: StatusMissing})
				issues++
			}
		}
		addField("position", exp.Position)
		addField("company", exp.Company)

		if exp.StartDate == "" {
			fields = append(fields, ParsedField{Name: "dates", Value: "?", Status: StatusMissing})
			issues++
		} else {
			fields = append(fields, ParsedField{
				Name:   "dates",
				Value:  formatDateRange(exp.StartDate, exp.EndDate, exp.Current, s.platform.Rules.PreferredDateFormat),
				Status: StatusParsed,
			})
		}

		if exp.Description == "" {
			fields = append(fields, ParsedField{Name: "description", Status: StatusMissing})
			issues++
			s.missingDescription = true
		} else {
			fields = append(fields, ParsedField{Name: "description", Value: exp.Description, Status: StatusParsed})
			if !s.platform.Rules.HandlesSpecialChars && strings.ContainsAny(exp.Description, bulletGlyphs) {
				issues++
				fields = append(fields, ParsedField{
					Name:   "description (as parsed)",
					Value:  substituteBullets(exp.Description),
					Status: StatusWarning,
					Note:   fmt.Sprintf("%s replaces special bullet characters with plain dashes", s.platform.Name),
				})
			}
		}

		flagged += issues
		status := StatusParsed
		switch {
		case issues >= 2:
			status = StatusPartial
		case issues == 1:
			status = StatusWarning
		}
		worst = worstOf(worst, status)

		title := strings.TrimSpace(exp.Position + " at " + exp.Company)
		if title == "at" {
			title = "Entry " + strconv.Itoa(i+1)
		}
		entries = append(entries, ParsedEntry{Title: title, Status: status, Fields: fields})
	}

	earned := 12
	switch {
	case flagged == 0:
		earned = 25
	case flagged <= 2:
		earned = 20
	}

	s.addSection(ParsedSection{Key: "experience", Label: label, Status: worst, Entries: entries}, earned, 25)
}

func (s *simulation) educationSection() {
	label := s.label("education")
	if len(s.resume.Education) == 0 {
		s.addSection(ParsedSection{Key: "education", Label: label, Status: StatusMissing}, 0, 15)
		return
	}

	var entries []ParsedEntry
	perfect := true
	for i, edu := range s.resume.Education {
		status := StatusParsed
		var fields []ParsedField

		addField := func(name, value string) {
			if value != "" {
				fields = append(fields, ParsedField{Name: name, Value: value, Status: StatusParsed})
			} else {
				fields = append(fields, ParsedField{Name: name, Status: StatusMissing})
			}
		}
		addField("institution", edu.Institution)
		addField("degree", edu.Degree)
		if edu.Field != "" {
			fields = append(fields, ParsedField{Name: "field of study", Value: edu.Field, Status: StatusParsed})
		}
		if edu.GPA != "" {
			fields = append(fields, ParsedField{Name: "gpa", Value: edu.GPA, Status: StatusParsed})
		}

		if edu.Institution == "" || edu.Degree == "" {
			status = StatusPartial
			perfect = false
		}

		title := edu.Institution
		if title == "" {
			title = "Entry " + strconv.Itoa(i+1)
		}
		entries = append(entries, ParsedEntry{Title: title, Status: status, Fields: fields})
	}

	earned := 15
	status := StatusParsed
	if !perfect {
		earned = 10
		status = StatusPartial
	}
	s.addSection(ParsedSection{Key: "education", Label: label, Status: status, Entries: entries}, earned, 15)
}

func (s *simulation) skillsSection() {
	label := s.label("skills")
	skills := resume.SplitDelimited(s.resume.Skills)

	if len(skills) == 0 {
		s.warnings = append(s.warnings, "No skills section found; keyword matching will score poorly.")
		s.addSection(ParsedSection{Key: "skills", Label: label, Status: StatusMissing}, 0, 20)
		return
	}

	rendered := joinWithDelimiter(skills, s.platform.Rules.SkillsDelimiter)
	field := ParsedField{Name: "skills", Value: rendered, Status: StatusParsed}
	earned := 20
	status := StatusParsed

	switch {
	case len(skills) < 5:
		status = StatusWarning
		field.Status = StatusWarning
		field.Note = fmt.Sprintf("only %d skills extracted; most candidates list more", len(skills))
	case len(skills) > 20:
		earned = 15
		status = StatusWarning
		field.Status = StatusWarning
		field.Note = fmt.Sprintf("%d skills extracted; long lists dilute keyword relevance", len(skills))
	}

	s.addSection(ParsedSection{Key: "skills", Label: label, Status: status, Fields: []ParsedField{field}}, earned, 20)
}

func (s *simulation) projectsSection() {
	label := s.label("projects")
	if len(s.resume.Projects) == 0 {
		s.addSection(ParsedSection{Key: "projects", Label: label, Status: StatusMissing}, 3, 10)
		return
	}

	var entries []ParsedEntry
	for i, proj := range s.resume.Projects {
		status := StatusParsed
		title := proj.Name
		if title == "" {
			status = StatusPartial
			title = "Project " + strconv.Itoa(i+1)
		}
		var fields []ParsedField
		if proj.Description != "" {
			fields = append(fields, ParsedField{Name: "description", Value: proj.Description, Status: StatusParsed})
		}
		if proj.Technologies != "" {
			fields = append(fields, ParsedField{Name: "technologies", Value: proj.Technologies, Status: StatusParsed})
		}
		entries = append(entries, ParsedEntry{Title: title, Status: status, Fields: fields})
	}
	s.addSection(ParsedSection{Key: "projects", Label: label, Status: StatusParsed, Entries: entries}, 10, 10)
}

func (s *simulation) certificationsSection() {
	label := s.label("certifications")
	if len(s.resume.Certifications) == 0 {
		s.addSection(ParsedSection{Key: "certifications", Label: label, Status: StatusMissing}, 2, 5)
		return
	}

	var entries []ParsedEntry
	for i, cert := range s.resume.Certifications {
		status := StatusParsed
		title := cert.Name
		if title == "" {
			status = StatusPartial
			title = "Certification " + strconv.Itoa(i+1)
		}
		var fields []ParsedField
		if cert.Issuer != "" {
			fields = append(fields, ParsedField{Name: "issuer", Value: cert.Issuer, Status: StatusParsed})
		}
		if cert.Date != "" {
			fields = append(fields, ParsedField{Name: "date", Value: cert.Date, Status: StatusParsed})
		}
		entries = append(entries, ParsedEntry{Title: title, Status: status, Fields: fields})
	}
	s.addSection(ParsedSection{Key: "certifications", Label: label, Status: StatusParsed, Entries: entries}, 5, 5)
}

func (s *simulation) buildTips(score int) []string {
	var tips []string
	rules := s.platform.Rules

	if score < 70 {
		tips = append(tips, fmt.Sprintf(
			"Your resume parses poorly on %s. Fill the missing fields above before applying through it.", s.platform.Name))
	}
	if !rules.HandlesMultiColumn {
		tips = append(tips, fmt.Sprintf(
			"%s reads documents top to bottom in a single pass; use a single-column layout.", s.platform.Name))
	}
	if !rules.HandlesSpecialChars {
		tips = append(tips, fmt.Sprintf(
			"Replace decorative bullet symbols with plain dashes; %s mangles special characters.", s.platform.Name))
	}
	if !rules.HandlesTables {
		tips = append(tips, fmt.Sprintf(
			"Avoid tables; %s reads table cells in unpredictable order.", s.platform.Name))
	}
	if s.missingDescription {
		tips = append(tips, "Add a description to every work experience entry; empty roles look like parsing failures.")
	}
	if score >= 90 {
		tips = append(tips, fmt.Sprintf("Your resume is well structured for %s; no major changes needed.", s.platform.Name))
	}
	return tips
}

func worstOf(a, b FieldStatus) FieldStatus {
	rank := map[FieldStatus]int{StatusParsed: 0, StatusWarning: 1, StatusPartial: 2, StatusMissing: 3}
	if rank[b] > rank[a] {
		return b
	}
	return a
}

var bulletReplacer = strings.NewReplacer(
	"•", "-", "◦", "-", "▪", "-", "►", "-",
	"→", "-", "✓", "-", "★", "-", "●", "-",
)

func substituteBullets(s string) string {
	return bulletReplacer.Replace(s)
}

// truncateRunes cuts s to at most n characters on a rune boundary so the
// result stays valid UTF-8.
func truncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n])
}

func joinWithDelimiter(items []string, delimiter string) string {
	switch delimiter {
	case "pipe":
		return resume.JoinDelimited(items, " | ")
	case "newline":
		return resume.JoinDelimited(items, "\n")
	default:
		return resume.JoinDelimited(items, ", ")
	}
}

var monthAbbrevs = [...]string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// formatDateRange renders a stored YYYY-MM range in the platform's
// preferred display format. Unparseable values render as "?".
func formatDateRange(start, end string, current bool, format string) string {
	from := formatDate(start, format)
	to := "Present"
	if !current {
		to = formatDate(end, format)
	}
	return from + " — " + to
}

func formatDate(date, format string) string {
	if date == "" {
		return "?"
	}
	year, month, ok := strings.Cut(date, "-")
	if !ok || len(year) != 4 {
		return "?"
	}
	m, err := strconv.Atoi(month)
	if err != nil || m < 1 || m > 12 {
		return "?"
	}
	switch format {
	case "Mon YYYY":
		return monthAbbrevs[m-1] + " " + year
	default:
		return fmt.Sprintf("%02d/%s", m, year)
	}
}
