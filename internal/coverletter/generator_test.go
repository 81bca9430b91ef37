package coverletter

import (
	"strings"
	"testing"
	"time"

	"resumelens/internal/resume"
)

// fixedRand always returns the same index, pinning the opener choice.
type fixedRand struct{ v int }

func (f fixedRand) Intn(n int) int { return f.v % n }

var testNow = time.Date(2026, time.August, 31, 12, 0, 0, 0, time.UTC)

func letterResume() resume.ResumeData {
	return resume.ResumeData{
		PersonalInfo: resume.PersonalInfo{
			FullName: "Dana Reyes",
			Title:    "Senior Backend Engineer",
			Email:    "dana.reyes@example.com",
			Phone:    "+1 555 010 2233",
			Location: "Seattle, WA",
			Summary:  "Backend engineer with a focus on reliable distributed systems. I enjoy mentoring.",
		},
		Experiences: []resume.Experience{
			{
				Company:     "Finch Labs",
				Position:    "Staff Software Engineer",
				StartDate:   "2021-03",
				Current:     true,
				Description: "Led the payments platform team. Reduced settlement latency by 40% across all regions. Shipped weekly.",
			},
			{
				Company:     "Brightwave",
				Position:    "Software Engineer",
				StartDate:   "2017-06",
				EndDate:     "2021-02",
				Description: "Built analytics tooling used by 300+ internal users.",
			},
		},
		Education: []resume.Education{
			{Institution: "University of Washington", Degree: "Bachelor of Science", Field: "Computer Science"},
		},
		Skills: "Go, Kubernetes, PostgreSQL, Python",
		Certifications: []resume.Certification{
			{Name: "Certified Kubernetes Administrator"},
		},
	}
}

func TestGenerateMinimalResume(t *testing.T) {
	r := resume.ResumeData{
		PersonalInfo: resume.PersonalInfo{FullName: "Dana Reyes"},
		Experiences:  []resume.Experience{{Position: "Engineer", Company: "Finch Labs"}},
	}

	letter, err := Generate(r, Options{Rand: fixedRand{0}, Now: testNow})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	for _, want := range []string{"Dana Reyes", "Dear Hiring Manager,", "Sincerely,", "[your email]", "[Company Name]"} {
		if !strings.Contains(letter, want) {
			t.Errorf("letter missing %q:\n%s", want, letter)
		}
	}
	if paragraphs := strings.Split(letter, "\n\n"); len(paragraphs) < 5 {
		t.Errorf("letter has %d paragraphs, want at least 5", len(paragraphs))
	}
	if strings.Contains(letter, "%!") {
		t.Errorf("letter contains a formatting artifact:\n%s", letter)
	}
}

func TestGenerateDeterministicWithFixedRand(t *testing.T) {
	opts := Options{
		JobDescription: "Acme Corp is seeking a Platform Engineer with Go and Kubernetes experience.",
		Tone:           ToneEnthusiastic,
		Rand:           fixedRand{1},
		Now:            testNow,
	}

	first, err := Generate(letterResume(), opts)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	second, err := Generate(letterResume(), opts)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if first != second {
		t.Error("two runs with a fixed random source differ")
	}
}

func TestGenerateUnknownTone(t *testing.T) {
	_, err := Generate(letterResume(), Options{Tone: "sarcastic"})
	if err == nil {
		t.Fatal("expected an error for an unknown tone")
	}
}

func TestGenerateTonesProduceDistinctOpeners(t *testing.T) {
	seen := map[string]bool{}
	for _, tone := range []Tone{ToneProfessional, ToneEnthusiastic, ToneConversational} {
		letter, err := Generate(letterResume(), Options{Tone: tone, Rand: fixedRand{0}, Now: testNow})
		if err != nil {
			t.Fatalf("Generate(%s): %v", tone, err)
		}
		opener := strings.Split(letter, "\n\n")[2]
		if seen[opener] {
			t.Errorf("tone %s reuses another tone's opener: %q", tone, opener)
		}
		seen[opener] = true
	}
}

func TestGenerateUsesCompanyOverride(t *testing.T) {
	letter, err := Generate(letterResume(), Options{
		JobDescription: "Acme Corp is hiring a Backend Engineer.",
		Company:        "Initech",
		Rand:           fixedRand{0},
		Now:            testNow,
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !strings.Contains(letter, "Initech") {
		t.Error("company override absent from letter")
	}
	if strings.Contains(letter, "[Company Name]") {
		t.Error("placeholder used despite a company override")
	}
}

func TestGenerateRequirementsParagraph(t *testing.T) {
	jd := "Platform Engineer\nAcme Corp is hiring.\nRequirements:\n- 5 years building backend services in Go\n- Experience operating Kubernetes in production\n"
	letter, err := Generate(letterResume(), Options{JobDescription: jd, Rand: fixedRand{0}, Now: testNow})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !strings.Contains(letter, "5 years building backend services in Go") {
		t.Errorf("first extracted requirement not referenced:\n%s", letter)
	}
}

func TestYearsOfExperience(t *testing.T) {
	tests := []struct {
		name string
		exps []resume.Experience
		want int
	}{
		{"no experience", nil, 0},
		{
			"single current role",
			[]resume.Experience{{StartDate: "2021-03", Current: true}},
			5,
		},
		{
			"two roles spanning to now",
			[]resume.Experience{
				{StartDate: "2021-03", Current: true},
				{StartDate: "2017-06", EndDate: "2021-02"},
			},
			9,
		},
		{
			"closed range",
			[]resume.Experience{{StartDate: "2017-06", EndDate: "2019-06"}},
			2,
		},
		{
			"unparseable dates skipped",
			[]resume.Experience{{StartDate: "spring 2019", EndDate: "later"}},
			0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := resume.ResumeData{Experiences: tt.exps}
			if got := YearsOfExperience(r, testNow); got != tt.want {
				t.Errorf("YearsOfExperience() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestTopAchievements(t *testing.T) {
	r := letterResume()
	achievements := TopAchievements(r)

	if len(achievements) != 2 {
		t.Fatalf("got %d achievements, want 2: %v", len(achievements), achievements)
	}
	if !strings.Contains(achievements[0], "40%") {
		t.Errorf("first achievement = %q, want the latency sentence", achievements[0])
	}
	if !strings.Contains(achievements[1], "300+") {
		t.Errorf("second achievement = %q, want the users sentence", achievements[1])
	}
}

func TestTopAchievementsCap(t *testing.T) {
	r := resume.ResumeData{
		Experiences: []resume.Experience{{
			Description: "Raised revenue by 10% in the first quarter. Cut costs by 20% the next one. " +
				"Grew the team to 30+ engineers overall. Shipped a 2x faster pipeline to production.",
		}},
	}
	if got := TopAchievements(r); len(got) != 3 {
		t.Errorf("got %d achievements, want cap of 3: %v", len(got), got)
	}
}

func TestExtractJobFacts(t *testing.T) {
	tests := []struct {
		name        string
		jd          string
		wantCompany string
		wantRole    string
	}{
		{
			"company before verb",
			"Acme Corp is looking for a Senior Backend Engineer to join the team.",
			"Acme Corp",
			"Senior Backend Engineer",
		},
		{
			"company after join",
			"Come join Initech as we scale our platform team.",
			"Initech",
			"",
		},
		{
			"labeled role line",
			"Job Title: Platform Engineer\nWe build infrastructure.",
			"",
			"Platform Engineer",
		},
		{
			"heading line role",
			"Staff Software Engineer\nwe are a small team doing big things.",
			"",
			"Staff Software Engineer",
		},
		{"empty", "", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			facts := ExtractJobFacts(tt.jd)
			if facts.Company != tt.wantCompany {
				t.Errorf("Company = %q, want %q", facts.Company, tt.wantCompany)
			}
			if facts.Role != tt.wantRole {
				t.Errorf("Role = %q, want %q", facts.Role, tt.wantRole)
			}
		})
	}
}

func TestExtractJobFactsRequirements(t *testing.T) {
	jd := "Requirements:\n" +
		"- 5 years building backend services in Go\n" +
		"- Ok\n" + // too short to be a real requirement
		"1. Experience operating Kubernetes in production\n" +
		"* Comfort with on-call rotations\n"

	facts := ExtractJobFacts(jd)
	want := []string{
		"5 years building backend services in Go",
		"Experience operating Kubernetes in production",
		"Comfort with on-call rotations",
	}
	if len(facts.Requirements) != len(want) {
		t.Fatalf("got %d requirements, want %d: %v", len(facts.Requirements), len(want), facts.Requirements)
	}
	for i, w := range want {
		if facts.Requirements[i] != w {
			t.Errorf("requirement %d = %q, want %q", i, facts.Requirements[i], w)
		}
	}
}

func TestMatchedSkills(t *testing.T) {
	r := resume.ResumeData{Skills: "Go, Kubernetes, PostgreSQL"}
	jd := "We need deep kubernetes and postgresql expertise."

	got := MatchedSkills(r, jd)
	want := []string{"Kubernetes", "PostgreSQL"}
	if len(got) != len(want) {
		t.Fatalf("MatchedSkills = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("MatchedSkills[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
