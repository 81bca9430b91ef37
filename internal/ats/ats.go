// Package ats implements the ATS compatibility score engine: a fixed
// battery of weighted pass/warn/fail checks over resume content, aggregated
// into a 0-100 score and a letter grade. Evaluation is deterministic and
// performs no I/O.
package ats

import (
	"math"

	"resumelens/internal/resume"
)

// Category groups checks for presentation.
type Category string

const (
	CategoryContact  Category = "contact"
	CategoryContent  Category = "content"
	CategoryKeywords Category = "keywords"
	CategoryFormat   Category = "format"
)

// Status is the verdict of a single check.
type Status string

const (
	StatusPass Status = "pass"
	StatusWarn Status = "warn"
	StatusFail Status = "fail"
)

// Check is one weighted rule verdict. Tip embeds the live measured value so
// the presentation layer can show actionable guidance.
type Check struct {
	Label    string   `json:"label"`
	Category Category `json:"category"`
	Status   Status   `json:"status"`
	Tip      string   `json:"tip"`
	Weight   int      `json:"weight"`
}

// Report is the result of evaluating a resume.
type Report struct {
	Score  int     `json:"score"`
	Grade  string  `json:"grade"`
	Checks []Check `json:"checks"`
}

// Evaluate runs every check against the resume snapshot. A pass earns the
// check's full weight, a warn earns half, a fail earns nothing;
// score = round(100 * earned / total).
func Evaluate(r resume.ResumeData) Report {
	checks := runChecks(r)

	var earned, total float64
	for _, c := range checks {
		total += float64(c.Weight)
		switch c.Status {
		case StatusPass:
			earned += float64(c.Weight)
		case StatusWarn:
			earned += float64(c.Weight) / 2
		}
	}

	score := 0
	if total > 0 {
		score = int(math.Round(100 * earned / total))
	}

	return Report{
		Score:  score,
		Grade:  gradeFor(score),
		Checks: checks,
	}
}

// gradeFor maps a 0-100 score onto the letter-grade ladder.
func gradeFor(score int) string {
	switch {
	case score >= 90:
		return "A"
	case score >= 80:
		return "B+"
	case score >= 70:
		return "B"
	case score >= 60:
		return "C+"
	case score >= 50:
		return "C"
	case score >= 40:
		return "D"
	default:
		return "F"
	}
}
