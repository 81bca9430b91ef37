package coverletter

import (
	"regexp"
	"strings"
	"time"

	"resumelens/internal/resume"
)

// JobFacts is what the generator could glean from a pasted job posting.
// Every field is best effort; empty values are expected and the caller
// substitutes placeholders.
type JobFacts struct {
	Company      string
	Role         string
	Requirements []string
}

var (
	achievementRe = regexp.MustCompile(`\d+%|\d+\+|\d+x|\$\d`)

	// Company guesses: "at Acme Corp", "join Acme", or "Acme is hiring".
	companyAfterRe  = regexp.MustCompile(`(?:\bat|\bjoin|\bwith)\s+([A-Z][A-Za-z0-9&.']*(?:\s+[A-Z][A-Za-z0-9&.']*)*)`)
	companyBeforeRe = regexp.MustCompile(`([A-Z][A-Za-z0-9&.']*(?:\s+[A-Z][A-Za-z0-9&.']*)*)\s+is\s+(?:looking|seeking|hiring|searching)`)

	// Role titles are runs of capitalized words; the run stops at the first
	// lowercase word ("with", "to join", ...).
	roleSeekingRe = regexp.MustCompile(`(?:looking for|seeking|hiring)\s+(?:an?\s+)?([A-Z][A-Za-z]*(?:[ /][A-Z][A-Za-z]*)*)`)
	roleLabeledRe = regexp.MustCompile(`(?im)^\s*(?:job title|position|role)\s*:\s*(.+)$`)
	requirementRe = regexp.MustCompile(`(?m)^\s*(?:[-•*]|\d+[.)])\s+(.+)$`)
	headingLikeRe = regexp.MustCompile(`^[A-Z][A-Za-z0-9/&+ -]{2,60}$`)
)

// YearsOfExperience computes the span from the earliest start date to the
// latest end date, treating a current role as running to now. Dates are
// stored as YYYY-MM; unparseable entries are skipped.
func YearsOfExperience(r resume.ResumeData, now time.Time) int {
	var earliest, latest time.Time
	for _, exp := range r.Experiences {
		start, ok := parseMonth(exp.StartDate)
		if !ok {
			continue
		}
		if earliest.IsZero() || start.Before(earliest) {
			earliest = start
		}

		end := now
		if !exp.Current {
			var okEnd bool
			end, okEnd = parseMonth(exp.EndDate)
			if !okEnd {
				continue
			}
		}
		if end.After(latest) {
			latest = end
		}
	}

	if earliest.IsZero() || latest.IsZero() || latest.Before(earliest) {
		return 0
	}
	years := latest.Year() - earliest.Year()
	if latest.Month() < earliest.Month() {
		years--
	}
	return max(years, 0)
}

func parseMonth(s string) (time.Time, bool) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// TopAchievements scans experience descriptions for quantified sentences
// and returns the first three in source order.
func TopAchievements(r resume.ResumeData) []string {
	var achievements []string
	for _, exp := range r.Experiences {
		for _, line := range resume.SplitBullets(exp.Description) {
			for _, sentence := range splitSentences(line) {
				if len(sentence) >= 20 && achievementRe.MatchString(sentence) {
					achievements = append(achievements, sentence)
					if len(achievements) == 3 {
						return achievements
					}
				}
			}
		}
	}
	return achievements
}

func splitSentences(text string) []string {
	var sentences []string
	for part := range strings.FieldsFuncSeq(text, func(r rune) bool {
		return r == '.' || r == '!'
	}) {
		if s := strings.TrimSpace(part); s != "" {
			sentences = append(sentences, s)
		}
	}
	return sentences
}

// ExtractJobFacts guesses company, role and requirement lines from free
// job-posting text. The heuristics have known false negatives; a miss
// yields an empty field, never an error.
func ExtractJobFacts(jobDescription string) JobFacts {
	facts := JobFacts{}
	if strings.TrimSpace(jobDescription) == "" {
		return facts
	}

	if m := companyBeforeRe.FindStringSubmatch(jobDescription); m != nil {
		facts.Company = strings.TrimSpace(m[1])
	} else if m := companyAfterRe.FindStringSubmatch(jobDescription); m != nil {
		facts.Company = strings.TrimSpace(m[1])
	}

	if m := roleLabeledRe.FindStringSubmatch(jobDescription); m != nil {
		facts.Role = strings.TrimSpace(m[1])
	} else if m := roleSeekingRe.FindStringSubmatch(jobDescription); m != nil {
		facts.Role = strings.TrimSpace(m[1])
	} else if heading := firstHeadingLine(jobDescription); heading != "" {
		facts.Role = heading
	}

	for _, m := range requirementRe.FindAllStringSubmatch(jobDescription, -1) {
		req := strings.TrimSpace(m[1])
		if len(req) < 10 || len(req) > 200 {
			continue
		}
		facts.Requirements = append(facts.Requirements, req)
		if len(facts.Requirements) == 8 {
			break
		}
	}
	return facts
}

// firstHeadingLine returns the first short capitalized line, a common shape
// for a posting's title.
func firstHeadingLine(text string) string {
	for line := range strings.SplitSeq(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if headingLikeRe.MatchString(line) {
			return line
		}
		return ""
	}
	return ""
}

// MatchedSkills returns the resume skills that appear, case-insensitively,
// anywhere in the job text.
func MatchedSkills(r resume.ResumeData, jobDescription string) []string {
	if jobDescription == "" {
		return nil
	}
	lowerJD := strings.ToLower(jobDescription)
	var matched []string
	for _, skill := range resume.SplitDelimited(r.Skills) {
		if strings.Contains(lowerJD, strings.ToLower(skill)) {
			matched = append(matched, skill)
		}
	}
	return matched
}
