package simulator

import (
	"strings"
	"testing"
	"unicode/utf8"

	"resumelens/internal/resume"
)

func fullResume() resume.ResumeData {
	return resume.ResumeData{
		PersonalInfo: resume.PersonalInfo{
			FullName: "Dana Reyes",
			Title:    "Senior Backend Engineer",
			Email:    "dana.reyes@example.com",
			Phone:    "+1 555 010 2233",
			Location: "Seattle, WA",
			Website:  "https://danareyes.dev",
			LinkedIn: "https://linkedin.com/in/danareyes",
			Summary:  "Backend engineer with nine years of experience building distributed systems in Go.",
		},
		Experiences: []resume.Experience{
			{
				Company:     "Finch Labs",
				Position:    "Staff Software Engineer",
				StartDate:   "2021-03",
				Current:     true,
				Description: "Led the payments platform team and reduced settlement latency by 40% across all regions.",
			},
			{
				Company:     "Brightwave",
				Position:    "Software Engineer",
				StartDate:   "2017-06",
				EndDate:     "2021-02",
				Description: "Built a real time analytics service and automated the deployment pipeline with Terraform.",
			},
		},
		Education: []resume.Education{
			{Institution: "University of Washington", Degree: "Bachelor of Science", Field: "Computer Science", GPA: "3.8"},
		},
		Skills: "Go, Kubernetes, PostgreSQL, Terraform, Redis, Python",
		Certifications: []resume.Certification{
			{Name: "Certified Kubernetes Administrator", Issuer: "CNCF"},
		},
	}
}

func findSection(t *testing.T, result Result, key string) ParsedSection {
	t.Helper()
	for _, sec := range result.Sections {
		if sec.Key == key {
			return sec
		}
	}
	t.Fatalf("section %q not found", key)
	return ParsedSection{}
}

func TestSimulateUnknownPlatform(t *testing.T) {
	_, err := Simulate(fullResume(), "bamboohr")
	if err == nil {
		t.Fatal("expected an error for an unknown platform")
	}
}

func TestSimulateScoreBounds(t *testing.T) {
	resumes := map[string]resume.ResumeData{
		"empty": {},
		"full":  fullResume(),
	}

	for _, p := range Platforms() {
		for name, r := range resumes {
			t.Run(p.ID+"/"+name, func(t *testing.T) {
				result, err := Simulate(r, p.ID)
				if err != nil {
					t.Fatalf("Simulate: %v", err)
				}
				if result.OverallScore < 0 || result.OverallScore > 100 {
					t.Errorf("score %d out of bounds", result.OverallScore)
				}
				if len(result.Sections) != 7 {
					t.Errorf("got %d sections, want 7", len(result.Sections))
				}
			})
		}
	}
}

func TestSimulateEmptyResume(t *testing.T) {
	result, err := Simulate(resume.ResumeData{}, "workday")
	if err != nil {
		t.Fatalf("Simulate: %v", err)
	}

	for _, key := range []string{"contact", "summary", "experience", "education", "skills"} {
		if sec := findSection(t, result, key); sec.Status != StatusMissing {
			t.Errorf("section %q: status = %s, want %s", key, sec.Status, StatusMissing)
		}
	}
	if len(result.Warnings) == 0 {
		t.Error("expected warnings for an empty resume")
	}
	if result.OverallScore >= 50 {
		t.Errorf("empty resume scored %d on workday, expected a low score", result.OverallScore)
	}
}

func TestSimulateQuirksCopiedToWarnings(t *testing.T) {
	result, err := Simulate(fullResume(), "taleo")
	if err != nil {
		t.Fatalf("Simulate: %v", err)
	}

	p, _ := Lookup("taleo")
	for _, quirk := range p.Quirks {
		found := false
		for _, w := range result.Warnings {
			if w == quirk {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("quirk %q missing from warnings", quirk)
		}
	}
}

func TestSimulateBulletGlyphSubstitution(t *testing.T) {
	r := fullResume()
	r.Experiences[0].Description = "• Led team\n• Shipped product"

	// Lever does not handle special characters.
	result, err := Simulate(r, "lever")
	if err != nil {
		t.Fatalf("Simulate: %v", err)
	}

	sec := findSection(t, result, "experience")
	var converted *ParsedField
	for i := range sec.Entries[0].Fields {
		f := &sec.Entries[0].Fields[i]
		if f.Status == StatusWarning && strings.Contains(f.Name, "as parsed") {
			converted = f
		}
	}
	if converted == nil {
		t.Fatal("no substituted description sub-field emitted")
	}
	if strings.ContainsAny(converted.Value, bulletGlyphs) {
		t.Errorf("substituted value still contains bullet glyphs: %q", converted.Value)
	}
	if !strings.Contains(converted.Value, "- Led team") {
		t.Errorf("substituted value = %q, want bullets replaced with dashes", converted.Value)
	}
}

func TestSimulateSpecialCharsTolerated(t *testing.T) {
	r := fullResume()
	r.Experiences[0].Description = "• Led team\n• Shipped product"

	// Greenhouse handles special characters, so no substitution happens.
	result, err := Simulate(r, "greenhouse")
	if err != nil {
		t.Fatalf("Simulate: %v", err)
	}

	sec := findSection(t, result, "experience")
	for _, f := range sec.Entries[0].Fields {
		if strings.Contains(f.Name, "as parsed") {
			t.Errorf("unexpected substituted sub-field on a tolerant platform: %+v", f)
		}
	}
}

func TestSimulateSummaryTruncation(t *testing.T) {
	r := fullResume()
	r.PersonalInfo.Summary = strings.Repeat("distributed systems engineering ", 20) // ~640 chars

	// Taleo caps summaries at 300 characters.
	result, err := Simulate(r, "taleo")
	if err != nil {
		t.Fatalf("Simulate: %v", err)
	}

	sec := findSection(t, result, "summary")
	if sec.Status != StatusPartial {
		t.Errorf("summary status = %s, want %s", sec.Status, StatusPartial)
	}
	if got := sec.Fields[0].Value; len(got) > 310 {
		t.Errorf("summary not truncated for display: %d chars", len(got))
	}

	found := false
	for _, w := range result.Warnings {
		if strings.Contains(w, "300") {
			found = true
		}
	}
	if !found {
		t.Error("no warning citing the platform's summary length limit")
	}
}

func TestSimulateSummaryTruncationMultibyte(t *testing.T) {
	r := fullResume()
	// 400 runes, 1200 bytes. A byte-based cut would fire on every platform
	// and slice mid-rune.
	r.PersonalInfo.Summary = strings.Repeat("分散システムの設計と運用", 40)[:1200]

	// Workday caps summaries at 500 characters; 400 runes must pass intact.
	result, err := Simulate(r, "workday")
	if err != nil {
		t.Fatalf("Simulate: %v", err)
	}
	sec := findSection(t, result, "summary")
	if sec.Status != StatusParsed {
		t.Errorf("400-character summary on a 500-character platform: status = %s, want %s",
			sec.Status, StatusParsed)
	}

	// Taleo caps at 300 characters; the truncated value must stay valid UTF-8
	// and hold exactly 300 runes before the ellipsis.
	result, err = Simulate(r, "taleo")
	if err != nil {
		t.Fatalf("Simulate: %v", err)
	}
	sec = findSection(t, result, "summary")
	if sec.Status != StatusPartial {
		t.Fatalf("summary status = %s, want %s", sec.Status, StatusPartial)
	}
	got := sec.Fields[0].Value
	if !utf8.ValidString(got) {
		t.Errorf("truncated summary is not valid UTF-8: %q", got)
	}
	trimmed := strings.TrimSuffix(got, "...")
	if n := utf8.RuneCountInString(trimmed); n != 300 {
		t.Errorf("truncated summary holds %d characters, want 300", n)
	}

	found := false
	for _, w := range result.Warnings {
		if strings.Contains(w, "400 characters") {
			found = true
		}
	}
	if !found {
		t.Error("warning should report the character count, not the byte count")
	}
}

func TestPlatformSectionLabelSynonyms(t *testing.T) {
	sections := []string{"contact", "summary", "experience", "education", "skills", "projects", "certifications"}
	for _, p := range Platforms() {
		for _, key := range sections {
			if len(p.SectionLabels[key]) == 0 {
				t.Errorf("%s: no header synonyms for section %q", p.ID, key)
			}
		}
	}

	// The first synonym is the vendor's display terminology.
	result, err := Simulate(fullResume(), "taleo")
	if err != nil {
		t.Fatalf("Simulate: %v", err)
	}
	if sec := findSection(t, result, "summary"); sec.Label != "Objective" {
		t.Errorf("summary label = %q, want the vendor's own terminology %q", sec.Label, "Objective")
	}
}

func TestFormatDateRange(t *testing.T) {
	tests := []struct {
		name    string
		start   string
		end     string
		current bool
		format  string
		want    string
	}{
		{"numeric format", "2021-03", "2023-11", false, "MM/YYYY", "03/2021 — 11/2023"},
		{"month name format", "2021-03", "2023-11", false, "Mon YYYY", "Mar 2021 — Nov 2023"},
		{"current role", "2021-03", "", true, "Mon YYYY", "Mar 2021 — Present"},
		{"missing start", "", "2023-11", false, "MM/YYYY", "? — 11/2023"},
		{"garbage input", "sometime", "2023-11", false, "MM/YYYY", "? — 11/2023"},
		{"bad month", "2021-19", "", true, "MM/YYYY", "? — Present"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatDateRange(tt.start, tt.end, tt.current, tt.format); got != tt.want {
				t.Errorf("formatDateRange() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSkillsDelimiterRendering(t *testing.T) {
	tests := []struct {
		platform string
		want     string
	}{
		{"workday", "Go, Kubernetes"},    // comma
		{"greenhouse", "Go | Kubernetes"}, // pipe
		{"lever", "Go\nKubernetes"},      // newline
	}

	r := resume.ResumeData{Skills: "Go, Kubernetes"}
	for _, tt := range tests {
		t.Run(tt.platform, func(t *testing.T) {
			result, err := Simulate(r, tt.platform)
			if err != nil {
				t.Fatalf("Simulate: %v", err)
			}
			sec := findSection(t, result, "skills")
			if sec.Fields[0].Value != tt.want {
				t.Errorf("rendered skills = %q, want %q", sec.Fields[0].Value, tt.want)
			}
		})
	}
}

func TestPlatformsListing(t *testing.T) {
	ps := Platforms()
	if len(ps) != 5 {
		t.Fatalf("got %d platforms, want 5", len(ps))
	}
	for _, p := range ps {
		if _, ok := Lookup(p.ID); !ok {
			t.Errorf("Lookup(%q) failed for a listed platform", p.ID)
		}
		if p.Rules.PreferredDateFormat == "" || p.Rules.SkillsDelimiter == "" {
			t.Errorf("platform %q has incomplete parsing rules", p.ID)
		}
	}
}

func BenchmarkSimulate(b *testing.B) {
	r := fullResume()
	for b.Loop() {
		if _, err := Simulate(r, "workday"); err != nil {
			b.Fatal(err)
		}
	}
}
