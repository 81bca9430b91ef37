// Package keywords extracts significant terms from a job description and
// matches them against a resume. Extraction is a fixed pipeline: curated
// multi-word phrases first, then filtered single words, ranked by
// specificity and frequency.
package keywords

import (
	"regexp"
	"slices"
	"strings"

	"resumelens/internal/resume"
)

// Keyword is one job-description term and how it fared against the resume.
type Keyword struct {
	Keyword   string `json:"keyword"`
	Found     bool   `json:"found"`
	Frequency int    `json:"frequency"`
	MultiWord bool   `json:"isMultiWord"`
}

// MatchResult reports which job-description terms the resume covers.
type MatchResult struct {
	Matched         []Keyword `json:"matchedKeywords"`
	Missing         []Keyword `json:"missingKeywords"`
	MatchPercentage int       `json:"matchPercentage"`
	TotalKeywords   int       `json:"totalKeywords"`
}

type term struct {
	text  string
	freq  int
	multi bool
	re    *regexp.Regexp
}

// Match extracts keywords from the job description and checks each against
// the resume's flattened text. An empty or unproductive job description
// yields a zero result, never an error.
func Match(jobDescription string, r resume.ResumeData) MatchResult {
	terms := extractTerms(jobDescription)
	result := MatchResult{
		Matched: []Keyword{},
		Missing: []Keyword{},
	}
	if len(terms) == 0 {
		return result
	}

	// Multi-word phrases are more job-specific than single words, so they
	// sort first; within each group, higher frequency first.
	slices.SortStableFunc(terms, func(a, b term) int {
		if a.multi != b.multi {
			if a.multi {
				return -1
			}
			return 1
		}
		return b.freq - a.freq
	})

	resumeText := r.FlattenText()
	for _, t := range terms {
		found := t.re.MatchString(resumeText)
		kw := Keyword{Keyword: t.text, Found: found, Frequency: t.freq, MultiWord: t.multi}
		if found {
			result.Matched = append(result.Matched, kw)
		} else {
			result.Missing = append(result.Missing, kw)
		}
	}

	result.TotalKeywords = len(terms)
	result.MatchPercentage = int(float64(len(result.Matched))/float64(len(terms))*100 + 0.5)
	return result
}

func extractTerms(jobDescription string) []term {
	if strings.TrimSpace(jobDescription) == "" {
		return nil
	}

	var terms []term

	// Phrase pass. Constituent words of matched phrases are remembered so
	// the single-word pass does not count them again.
	constituents := map[string]struct{}{}
	for _, pp := range phraseTable {
		freq := len(pp.re.FindAllStringIndex(jobDescription, -1))
		if freq == 0 {
			continue
		}
		terms = append(terms, term{text: pp.canonical, freq: freq, multi: true, re: pp.re})
		for _, part := range pp.parts {
			constituents[part] = struct{}{}
		}
	}

	// Single-word pass over the normalized text, preserving first-seen
	// order so equal-frequency terms rank deterministically.
	freqs := map[string]int{}
	var order []string
	for _, token := range tokenize(jobDescription) {
		if _, seen := freqs[token]; !seen {
			order = append(order, token)
		}
		freqs[token]++
	}

	for _, w := range order {
		if _, isPart := constituents[w]; isPart {
			continue
		}
		freq := freqs[w]
		// Short rare words are noise.
		if freq < 2 && len(w) < 4 {
			continue
		}
		terms = append(terms, term{text: w, freq: freq, re: leftBoundaryPattern(w)})
	}
	return terms
}

// tokenize lowercases the text, collapses everything outside the keyword
// character set to whitespace, and drops short, numeric and stop-word
// tokens.
func tokenize(text string) []string {
	normalized := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		case r >= 'A' && r <= 'Z':
			return r + ('a' - 'A')
		case r == '+' || r == '#' || r == '.' || r == '/' || r == '-':
			return r
		default:
			return ' '
		}
	}, text)

	var tokens []string
	for tok := range strings.FieldsSeq(normalized) {
		tok = strings.Trim(tok, "./-")
		tok = strings.TrimLeft(tok, "+#")
		if len(tok) < 3 || isStopWord(tok) || isNumeric(tok) {
			continue
		}
		tokens = append(tokens, tok)
	}
	return tokens
}

func isNumeric(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}

// leftBoundaryPattern anchors only the left edge of the word, so "develop"
// also matches "developing" in the resume text. The permissiveness is
// intentional: it catches inflected and suffixed forms cheaply.
func leftBoundaryPattern(word string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(word))
}
