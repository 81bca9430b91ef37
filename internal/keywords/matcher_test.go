package keywords

import (
	"slices"
	"strings"
	"testing"

	"resumelens/internal/resume"
)

func sampleResume() resume.ResumeData {
	return resume.ResumeData{
		PersonalInfo: resume.PersonalInfo{
			FullName: "Dana Reyes",
			Title:    "Senior Backend Engineer",
			Summary:  "Backend engineer building distributed systems in Go and Python.",
		},
		Experiences: []resume.Experience{
			{
				Company:     "Finch Labs",
				Position:    "Staff Software Engineer",
				Description: "Led the payments platform team, developing services in Go with PostgreSQL and Kubernetes.",
			},
		},
		Skills: "Go, Kubernetes, PostgreSQL, Python",
	}
}

func keywordNames(list []Keyword) []string {
	names := make([]string, len(list))
	for i, kw := range list {
		names[i] = kw.Keyword
	}
	return names
}

func TestMatchEmptyJobDescription(t *testing.T) {
	result := Match("", sampleResume())

	if result.TotalKeywords != 0 {
		t.Errorf("TotalKeywords = %d, want 0", result.TotalKeywords)
	}
	if result.MatchPercentage != 0 {
		t.Errorf("MatchPercentage = %d, want 0", result.MatchPercentage)
	}
	if result.Matched == nil || result.Missing == nil {
		t.Error("keyword slices must be empty, not nil")
	}
}

func TestMatchRoundTrip(t *testing.T) {
	r := sampleResume()

	// A job description equal to the resume's own text matches fully.
	result := Match(r.FlattenText(), r)

	if result.TotalKeywords == 0 {
		t.Fatal("no keywords extracted from resume text")
	}
	if result.MatchPercentage != 100 {
		t.Errorf("MatchPercentage = %d, want 100; missing: %v", result.MatchPercentage, keywordNames(result.Missing))
	}
	if len(result.Missing) != 0 {
		t.Errorf("unexpected missing keywords: %v", keywordNames(result.Missing))
	}
	for _, kw := range result.Matched {
		if !kw.Found {
			t.Errorf("matched keyword %q has Found=false", kw.Keyword)
		}
	}
}

func TestMatchSeniorBackendScenario(t *testing.T) {
	jd := "Looking for a Senior Backend Engineer with experience in machine learning and Python"
	r := resume.ResumeData{Skills: "Python, SQL"}

	result := Match(jd, r)

	matched := keywordNames(result.Matched)
	missing := keywordNames(result.Missing)

	if !slices.Contains(matched, "python") {
		t.Errorf("python not matched; matched = %v", matched)
	}
	for _, want := range []string{"machine learning", "backend", "engineer"} {
		if !slices.Contains(missing, want) {
			t.Errorf("%q not reported missing; missing = %v", want, missing)
		}
	}
	if len(result.Missing) == 0 || result.Missing[0].Keyword != "machine learning" {
		t.Errorf("multi-word phrase not ranked first in missing list: %v", missing)
	}
	if len(result.Missing) > 0 && !result.Missing[0].MultiWord {
		t.Error("phrase keyword should carry MultiWord=true")
	}
	// "learning" is a constituent of the matched phrase and must not be
	// double-counted as a single word.
	if slices.Contains(missing, "learning") || slices.Contains(matched, "learning") {
		t.Error("phrase constituent leaked into single-word results")
	}
}

func TestMatchPercentageRounding(t *testing.T) {
	jd := "Kubernetes PostgreSQL Terraform"
	r := resume.ResumeData{Skills: "Kubernetes, PostgreSQL"}

	result := Match(jd, r)

	if result.TotalKeywords != 3 {
		t.Fatalf("TotalKeywords = %d, want 3", result.TotalKeywords)
	}
	if result.MatchPercentage != 67 {
		t.Errorf("MatchPercentage = %d, want 67", result.MatchPercentage)
	}
}

func TestMatchLeftBoundaryCatchesSuffixes(t *testing.T) {
	// "develop" should match "developing" in resume text; the right edge is
	// deliberately unanchored.
	jd := "develop develop"
	r := resume.ResumeData{
		Experiences: []resume.Experience{{Description: "Developing internal tooling."}},
	}

	result := Match(jd, r)
	if !slices.Contains(keywordNames(result.Matched), "develop") {
		t.Errorf("suffixed form not matched; result = %+v", result)
	}
}

func TestExtractTermsSignificanceFilter(t *testing.T) {
	// A short token appearing once is noise; twice makes it significant.
	once := extractTerms("knows aws deployment pipelines")
	for _, term := range once {
		if term.text == "aws" {
			t.Error("rare 3-letter token should have been filtered")
		}
	}

	twice := extractTerms("aws deployment, aws pipelines")
	found := false
	for _, term := range twice {
		if term.text == "aws" {
			found = true
		}
	}
	if !found {
		t.Error("repeated 3-letter token should survive the filter")
	}
}

func TestExtractTermsDropsStopWordsAndNumbers(t *testing.T) {
	terms := extractTerms("the candidate will have 2016 experience with kubernetes")
	for _, term := range terms {
		switch term.text {
		case "the", "candidate", "will", "have", "with", "experience", "2016":
			t.Errorf("token %q should have been filtered", term.text)
		}
	}
}

func TestPhraseSeparatorTolerance(t *testing.T) {
	tests := []struct {
		jd string
	}{
		{"We practice CI/CD daily"},
		{"We practice ci cd daily"},
		{"We practice CI-CD daily"},
	}
	for _, tt := range tests {
		t.Run(tt.jd, func(t *testing.T) {
			terms := extractTerms(tt.jd)
			found := false
			for _, term := range terms {
				if term.text == "ci/cd" && term.multi {
					found = true
				}
			}
			if !found {
				t.Errorf("phrase not extracted from %q; terms = %+v", tt.jd, terms)
			}
		})
	}
}

func TestMatchOrderingByFrequency(t *testing.T) {
	jd := strings.Repeat("kubernetes ", 3) + "terraform"
	result := Match(jd, resume.ResumeData{})

	if len(result.Missing) < 2 {
		t.Fatalf("missing = %v", keywordNames(result.Missing))
	}
	if result.Missing[0].Keyword != "kubernetes" {
		t.Errorf("higher-frequency term not ranked first: %v", keywordNames(result.Missing))
	}
	if result.Missing[0].Frequency != 3 {
		t.Errorf("kubernetes Frequency = %d, want 3", result.Missing[0].Frequency)
	}
	if result.Missing[0].Found {
		t.Error("missing keyword should carry Found=false")
	}
}

func BenchmarkMatch(b *testing.B) {
	r := sampleResume()
	jd := strings.Repeat("Senior Backend Engineer with machine learning, Kubernetes, PostgreSQL and CI/CD experience. ", 20)
	for b.Loop() {
		Match(jd, r)
	}
}
