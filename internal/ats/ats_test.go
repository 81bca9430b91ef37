package ats

import (
	"strings"
	"testing"

	"resumelens/internal/resume"
)

// idealResume returns a fixture that satisfies every check in the battery.
func idealResume() resume.ResumeData {
	return resume.ResumeData{
		PersonalInfo: resume.PersonalInfo{
			FullName: "Dana Reyes",
			Title:    "Senior Backend Engineer",
			Email:    "dana.reyes@example.com",
			Phone:    "+1 555 010 2233",
			Location: "Seattle, WA",
			LinkedIn: "https://linkedin.com/in/danareyes",
			Summary: "Senior backend engineer with nine years of experience designing and " +
				"operating distributed systems for high traffic consumer products. " +
				"Specialized in Go services, event driven architectures, and cloud " +
				"infrastructure, with a track record of leading small teams through " +
				"complex migrations.",
		},
		Experiences: []resume.Experience{
			{
				Company:   "Finch Labs",
				Position:  "Staff Software Engineer",
				Location:  "Seattle, WA",
				StartDate: "2021-03",
				Current:   true,
				Description: "Led a team of 6 engineers building the core payments platform " +
					"in Go and PostgreSQL. Designed and implemented an event driven " +
					"settlement pipeline on Kubernetes that reduced processing latency by " +
					"40%, served 500+ internal clients, and cut infrastructure spend by " +
					"$120000 a year. Mentored junior engineers and established code review " +
					"practices adopted across the wider engineering organization.",
			},
			{
				Company:   "Brightwave",
				Position:  "Software Engineer",
				StartDate: "2017-06",
				EndDate:   "2021-02",
				Description: "Developed and launched a real time analytics service in Python " +
					"and Redis that improved dashboard query performance for every product " +
					"team. Automated the deployment pipeline with Terraform and coordinated " +
					"the migration of 30 projects into a shared monorepo, streamlined the " +
					"release process, and drove adoption of structured logging across " +
					"backend services.",
			},
		},
		Education: []resume.Education{
			{
				Institution: "University of Washington",
				Degree:      "Bachelor of Science",
				Field:       "Computer Science",
				StartDate:   "2013-09",
				EndDate:     "2017-05",
				Description: "Graduated with honors; coursework focused on distributed " +
					"systems, databases, and operating systems. Led the student computing " +
					"society for two years.",
			},
		},
		Skills: "Go, Kubernetes, PostgreSQL, Terraform, Redis, Python, Communication, Leadership",
		Projects: []resume.Project{
			{
				Name: "ratelimit-go",
				Description: "Open source rate limiting library for Go services, used in " +
					"production by several companies. Implements token bucket and sliding " +
					"window strategies with pluggable storage backends.",
				Technologies: "Go",
			},
		},
		Certifications: []resume.Certification{
			{Name: "Certified Kubernetes Administrator", Issuer: "CNCF", Date: "2023-01"},
		},
	}
}

func findCheck(t *testing.T, report Report, label string) Check {
	t.Helper()
	for _, c := range report.Checks {
		if c.Label == label {
			return c
		}
	}
	t.Fatalf("check %q not found in report", label)
	return Check{}
}

func TestEvaluateEmptyResume(t *testing.T) {
	report := Evaluate(resume.ResumeData{})

	if report.Score < 0 || report.Score > 100 {
		t.Errorf("score %d out of bounds", report.Score)
	}
	if report.Score >= 40 {
		t.Errorf("empty resume scored %d, expected below 40", report.Score)
	}
	if report.Grade != "F" {
		t.Errorf("empty resume graded %q, expected F", report.Grade)
	}
	if len(report.Checks) == 0 {
		t.Error("expected checks to run for an empty resume")
	}
}

func TestEvaluateIdealResume(t *testing.T) {
	report := Evaluate(idealResume())

	for _, c := range report.Checks {
		if c.Status != StatusPass {
			t.Errorf("check %q: status %s, tip %q", c.Label, c.Status, c.Tip)
		}
	}
	if report.Score != 100 {
		t.Errorf("score = %d, want 100", report.Score)
	}
	if report.Grade != "A" {
		t.Errorf("grade = %q, want A", report.Grade)
	}
}

func TestEvaluateAddingEmailRaisesScore(t *testing.T) {
	r := idealResume()
	r.PersonalInfo.Email = ""
	before := Evaluate(r).Score

	r.PersonalInfo.Email = "dana.reyes@example.com"
	after := Evaluate(r).Score

	if after <= before {
		t.Errorf("adding an email did not raise the score: %d -> %d", before, after)
	}
}

func TestEvaluateEmailValidation(t *testing.T) {
	tests := []struct {
		name  string
		email string
		want  Status
	}{
		{"missing", "", StatusFail},
		{"malformed", "dana.example.com", StatusWarn},
		{"no tld", "dana@localhost", StatusWarn},
		{"valid", "dana@example.com", StatusPass},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := idealResume()
			r.PersonalInfo.Email = tt.email
			c := findCheck(t, Evaluate(r), "Email address")
			if c.Status != tt.want {
				t.Errorf("email %q: status = %s, want %s", tt.email, c.Status, tt.want)
			}
		})
	}
}

func TestEvaluateShortSummaryWarns(t *testing.T) {
	r := idealResume()
	r.PersonalInfo.Summary = "Backend engineer who builds reliable distributed systems and leads small focused teams"

	c := findCheck(t, Evaluate(r), "Professional summary")
	if c.Status != StatusWarn {
		t.Fatalf("status = %s, want %s", c.Status, StatusWarn)
	}
	if !strings.Contains(c.Tip, "12 words") {
		t.Errorf("tip %q does not report the measured word count", c.Tip)
	}
}

func TestEvaluateSectionStructure(t *testing.T) {
	r := idealResume()
	r.Education = nil
	r.Skills = ""

	c := findCheck(t, Evaluate(r), "Section structure")
	if c.Status != StatusFail {
		t.Fatalf("status = %s, want %s", c.Status, StatusFail)
	}
	for _, section := range []string{"education", "skills"} {
		if !strings.Contains(c.Tip, section) {
			t.Errorf("tip %q does not name missing section %q", c.Tip, section)
		}
	}
}

func TestEvaluateSkillCrossReference(t *testing.T) {
	r := idealResume()
	r.Skills = "Haskell, Erlang, OCaml, Prolog, Fortran, COBOL"

	c := findCheck(t, Evaluate(r), "Skills in context")
	if c.Status != StatusFail {
		t.Errorf("status = %s, want %s for skills absent from experience", c.Status, StatusFail)
	}
}

func TestGradeFor(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{100, "A"},
		{90, "A"},
		{89, "B+"},
		{80, "B+"},
		{79, "B"},
		{70, "B"},
		{69, "C+"},
		{60, "C+"},
		{59, "C"},
		{50, "C"},
		{49, "D"},
		{40, "D"},
		{39, "F"},
		{0, "F"},
	}

	for _, tt := range tests {
		if got := gradeFor(tt.score); got != tt.want {
			t.Errorf("gradeFor(%d) = %q, want %q", tt.score, got, tt.want)
		}
	}
}

func BenchmarkEvaluate(b *testing.B) {
	r := idealResume()
	for b.Loop() {
		Evaluate(r)
	}
}
