// Package coverletter composes a plain-text cover letter from resume data,
// an optional pasted job description, and a tone. Everything is derived
// with best-effort heuristics; the only randomness is the opening sentence,
// drawn from a per-tone pool through an injectable source.
package coverletter

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	apperrors "resumelens/internal/errors"
	"resumelens/internal/resume"
)

// Tone selects the letter's voice.
type Tone string

const (
	ToneProfessional   Tone = "professional"
	ToneEnthusiastic   Tone = "enthusiastic"
	ToneConversational Tone = "conversational"
)

// Tones returns the accepted tone values.
func Tones() []string {
	return []string{string(ToneProfessional), string(ToneEnthusiastic), string(ToneConversational)}
}

// Rand supplies the single random draw used for the opener. Tests inject a
// fixed implementation for deterministic output.
type Rand interface {
	Intn(n int) int
}

type systemRand struct{}

func (systemRand) Intn(n int) int { return rand.IntN(n) }

// Options configures one generation run. Zero values are usable: tone
// defaults to professional and Rand to the process-wide source.
type Options struct {
	JobDescription string
	Company        string
	Tone           Tone
	Rand           Rand
	Now            time.Time
}

// Opener templates: %[1]s is the role, %[2]s the company.
var openers = map[Tone][]string{
	ToneProfessional: {
		"I am writing to express my interest in the %[1]s position at %[2]s.",
		"I would like to be considered for the %[1]s role at %[2]s.",
		"Please accept my application for the %[1]s position at %[2]s.",
	},
	ToneEnthusiastic: {
		"I was thrilled to see the opening for a %[1]s at %[2]s.",
		"I am excited to apply for the %[1]s role at %[2]s.",
		"The %[1]s opportunity at %[2]s immediately caught my attention.",
	},
	ToneConversational: {
		"When I came across the %[1]s opening at %[2]s, it felt like a natural fit.",
		"The %[1]s role at %[2]s looks like exactly the kind of work I enjoy.",
		"I have been following %[2]s for a while, so the %[1]s opening stood out to me.",
	},
}

// Closer templates: %[1]s is the company, %[2]s the contact email.
var closers = map[Tone]string{
	ToneProfessional:   "Thank you for considering my application. I would welcome the chance to discuss how my experience can support %[1]s, and I can be reached at %[2]s.",
	ToneEnthusiastic:   "I would be genuinely excited to bring this energy to %[1]s. Please reach out at %[2]s; I would love to talk.",
	ToneConversational: "Thanks for taking the time to read this. If it sounds like a fit, drop me a line at %[2]s and we can talk about what I could do for %[1]s.",
}

// Generate composes the letter. It fails only on an unrecognized tone;
// missing resume fields degrade into bracketed placeholders or omitted
// clauses.
func Generate(r resume.ResumeData, opts Options) (string, error) {
	tone := opts.Tone
	if tone == "" {
		tone = ToneProfessional
	}
	pool, ok := openers[tone]
	if !ok {
		return "", apperrors.NewValidationError(
			apperrors.ErrCodeUnknownTone,
			fmt.Sprintf("unknown tone %q", opts.Tone),
			nil,
		).WithContext("tones", Tones())
	}

	rng := opts.Rand
	if rng == nil {
		rng = systemRand{}
	}
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}

	facts := ExtractJobFacts(opts.JobDescription)
	company := firstNonEmpty(opts.Company, facts.Company, "[Company Name]")
	role := firstNonEmpty(facts.Role, r.PersonalInfo.Title, "advertised")
	name := firstNonEmpty(r.PersonalInfo.FullName, "[Your Name]")
	email := firstNonEmpty(r.PersonalInfo.Email, "[your email]")

	var paragraphs []string
	paragraphs = append(paragraphs, headerBlock(r, name, email, now))
	paragraphs = append(paragraphs, "Dear Hiring Manager,")
	paragraphs = append(paragraphs, openingParagraph(r, pool[rng.Intn(len(pool))], role, company, now))

	if p := experienceParagraph(r); p != "" {
		paragraphs = append(paragraphs, p)
	}
	if p := skillsParagraph(r, opts.JobDescription); p != "" {
		paragraphs = append(paragraphs, p)
	}
	if p := requirementsParagraph(opts.JobDescription, facts); p != "" {
		paragraphs = append(paragraphs, p)
	}

	paragraphs = append(paragraphs, fmt.Sprintf(closers[tone], company, email))
	paragraphs = append(paragraphs, "Sincerely,\n\n"+name)

	return strings.Join(paragraphs, "\n\n"), nil
}

func headerBlock(r resume.ResumeData, name, email string, now time.Time) string {
	contact := []string{email}
	if r.PersonalInfo.Phone != "" {
		contact = append(contact, r.PersonalInfo.Phone)
	}
	if r.PersonalInfo.Location != "" {
		contact = append(contact, r.PersonalInfo.Location)
	}
	return name + "\n" + strings.Join(contact, " | ") + "\n" + now.Format("January 2, 2006")
}

func openingParagraph(r resume.ResumeData, openerTemplate, role, company string, now time.Time) string {
	sentences := []string{fmt.Sprintf(openerTemplate, role, company)}

	if years := YearsOfExperience(r, now); years > 0 {
		noun := "years"
		if years == 1 {
			noun = "year"
		}
		sentences = append(sentences, fmt.Sprintf("I bring %d %s of professional experience to this position.", years, noun))
	}
	if summary := firstSentence(r.PersonalInfo.Summary); len(summary) >= 30 {
		sentences = append(sentences, summary+".")
	}
	return strings.Join(sentences, " ")
}

func experienceParagraph(r resume.ResumeData) string {
	current, ok := currentRole(r)
	if !ok {
		return ""
	}

	var b strings.Builder
	switch {
	case current.Position != "" && current.Company != "":
		fmt.Fprintf(&b, "In my most recent role as %s at %s, I have focused on delivering measurable results.", current.Position, current.Company)
	case current.Position != "":
		fmt.Fprintf(&b, "In my most recent role as %s, I have focused on delivering measurable results.", current.Position)
	default:
		b.WriteString("In my recent work, I have focused on delivering measurable results.")
	}

	if achievements := TopAchievements(r); len(achievements) > 0 {
		b.WriteString(" Highlights include: ")
		b.WriteString(strings.Join(achievements, "; "))
		b.WriteString(".")
	} else if current.Description != "" {
		b.WriteString(" ")
		b.WriteString(strings.TrimSpace(current.Description))
	}
	return b.String()
}

// currentRole prefers the entry flagged current, falling back to the first.
func currentRole(r resume.ResumeData) (resume.Experience, bool) {
	for _, exp := range r.Experiences {
		if exp.Current {
			return exp, true
		}
	}
	if len(r.Experiences) > 0 {
		return r.Experiences[0], true
	}
	return resume.Experience{}, false
}

func skillsParagraph(r resume.ResumeData, jobDescription string) string {
	var sentences []string

	if matched := MatchedSkills(r, jobDescription); len(matched) > 0 {
		sentences = append(sentences, fmt.Sprintf(
			"My experience with %s maps directly onto the requirements you describe.",
			joinNatural(matched)))
	} else if skills := resume.SplitDelimited(r.Skills); len(skills) > 0 {
		if len(skills) > 5 {
			skills = skills[:5]
		}
		sentences = append(sentences, fmt.Sprintf("I work regularly with %s.", joinNatural(skills)))
	}

	if len(r.Education) > 0 {
		edu := r.Education[0]
		switch {
		case edu.Degree != "" && edu.Field != "":
			sentences = append(sentences, fmt.Sprintf("I hold a %s in %s from %s.", edu.Degree, edu.Field, firstNonEmpty(edu.Institution, "my university")))
		case edu.Degree != "":
			sentences = append(sentences, fmt.Sprintf("I hold a %s from %s.", edu.Degree, firstNonEmpty(edu.Institution, "my university")))
		}
	}

	if len(r.Certifications) > 0 {
		names := make([]string, 0, len(r.Certifications))
		for _, cert := range r.Certifications {
			if cert.Name != "" {
				names = append(names, cert.Name)
			}
		}
		if len(names) > 0 {
			sentences = append(sentences, fmt.Sprintf("My certifications include %s.", joinNatural(names)))
		}
	}

	return strings.Join(sentences, " ")
}

func requirementsParagraph(jobDescription string, facts JobFacts) string {
	if jobDescription == "" || len(facts.Requirements) == 0 {
		return ""
	}
	if len(facts.Requirements) == 1 {
		return fmt.Sprintf("Your posting calls for %q, an area where I have delivered results before.", facts.Requirements[0])
	}
	return fmt.Sprintf("Your posting calls for %q and %q, both areas where I have delivered results before.",
		facts.Requirements[0], facts.Requirements[1])
}

func firstSentence(text string) string {
	sentences := splitSentences(text)
	if len(sentences) == 0 {
		return ""
	}
	return sentences[0]
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// joinNatural renders a list as "a, b and c".
func joinNatural(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	default:
		return strings.Join(items[:len(items)-1], ", ") + " and " + items[len(items)-1]
	}
}
