package types

import (
	"time"

	"resumelens/internal/ats"
	"resumelens/internal/coverletter"
	"resumelens/internal/keywords"
	"resumelens/internal/resume"
	"resumelens/internal/simulator"
)

// ScoreInput represents the input for scoring a resume
type ScoreInput struct {
	Resume resume.ResumeData `json:"resume"`
}

// ScoreOutput represents the output from the score engine
type ScoreOutput struct {
	ReportID    string     `json:"reportId"`
	GeneratedAt time.Time  `json:"generatedAt"`
	Report      ats.Report `json:"report"`
}

// SimulateInput represents the input for a platform simulation
type SimulateInput struct {
	Resume   resume.ResumeData `json:"resume"`
	Platform string            `json:"platform"`
}

// SimulateOutput represents the output from the platform simulator
type SimulateOutput struct {
	ReportID    string           `json:"reportId"`
	GeneratedAt time.Time        `json:"generatedAt"`
	Result      simulator.Result `json:"result"`
}

// MatchInput represents the input for keyword matching
type MatchInput struct {
	Resume         resume.ResumeData `json:"resume"`
	JobDescription string            `json:"jobDescription"`
}

// MatchOutput represents the output from the keyword matcher
type MatchOutput struct {
	ReportID    string               `json:"reportId"`
	GeneratedAt time.Time            `json:"generatedAt"`
	Match       keywords.MatchResult `json:"match"`
}

// CoverLetterInput represents the input for generating a cover letter
type CoverLetterInput struct {
	Resume         resume.ResumeData `json:"resume"`
	JobDescription string            `json:"jobDescription"`
	Company        string            `json:"company"`
	Tone           coverletter.Tone  `json:"tone"`
}

// CoverLetterOutput represents the output from the cover letter generator
type CoverLetterOutput struct {
	ReportID    string           `json:"reportId"`
	GeneratedAt time.Time        `json:"generatedAt"`
	Tone        coverletter.Tone `json:"tone"`
	Letter      string           `json:"letter"`
}
