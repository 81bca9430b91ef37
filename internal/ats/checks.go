package ats

import (
	"fmt"
	"regexp"
	"strings"

	"resumelens/internal/resume"
)

var (
	// Deliberately simple: local@domain.tld. A malformed address downgrades
	// the email check to warn rather than fail, since the field is present.
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[a-zA-Z]{2,}$`)

	// Quantifiable achievements: percentages, "N+", dollar amounts, or a
	// count followed by a scale noun.
	quantifiedRe = regexp.MustCompile(`(?i)\d+%|\d+\+|\$\d+|\d+\s*(year|month|team|user|client|project|product)`)
)

// actionVerbs is the fixed vocabulary scanned for in experience
// descriptions. Matching is case-insensitive on word stems.
var actionVerbs = []string{
	"led", "managed", "developed", "created", "implemented", "designed",
	"built", "launched", "improved", "increased", "reduced", "optimized",
	"delivered", "achieved", "spearheaded", "coordinated", "established",
	"streamlined", "initiated", "negotiated", "mentored", "directed",
	"transformed", "executed", "generated", "drove", "architected",
	"automated", "collaborated",
}

// softSkillTerms marks a skill as a soft skill when the skill text contains
// one of these terms.
var softSkillTerms = []string{
	"communication", "leadership", "teamwork", "problem solving",
	"problem-solving", "collaboration", "adaptability", "creativity",
	"time management", "critical thinking", "organization", "mentoring",
	"negotiation", "presentation", "interpersonal", "planning",
	"public speaking",
}

func runChecks(r resume.ResumeData) []Check {
	checks := []Check{
		checkName(r),
		checkEmail(r),
		checkPhone(r),
		checkLocation(r),
		checkLinkedIn(r),
		checkTitle(r),
		checkSummary(r),
		checkExperienceCount(r),
		checkDescriptionDetail(r),
		checkQuantifiedAchievements(r),
		checkActionVerbs(r),
		checkExperienceDates(r),
		checkEducation(r),
		checkSkillCount(r),
		checkSkillBalance(r),
		checkSkillCrossReference(r),
		checkSectionStructure(r),
		checkWordCount(r),
		checkCertifications(r),
	}
	return checks
}

func presenceCheck(label string, category Category, weight int, present bool, passTip, failTip string) Check {
	status := StatusFail
	tip := failTip
	if present {
		status = StatusPass
		tip = passTip
	}
	return Check{Label: label, Category: category, Status: status, Tip: tip, Weight: weight}
}

func checkName(r resume.ResumeData) Check {
	return presenceCheck("Full name", CategoryContact, 10,
		r.PersonalInfo.FullName != "",
		"Your name is present and parseable.",
		"Add your full name; ATS software keys the candidate record on it.")
}

func checkEmail(r resume.ResumeData) Check {
	email := strings.TrimSpace(r.PersonalInfo.Email)
	switch {
	case email == "":
		return Check{Label: "Email address", Category: CategoryContact, Status: StatusFail,
			Tip: "Add an email address; it is the primary contact field recruiters search.", Weight: 10}
	case !emailRe.MatchString(email):
		return Check{Label: "Email address", Category: CategoryContact, Status: StatusWarn,
			Tip: fmt.Sprintf("%q does not look like a valid address; use the local@domain.tld form.", email), Weight: 10}
	default:
		return Check{Label: "Email address", Category: CategoryContact, Status: StatusPass,
			Tip: "Email address present and well formed.", Weight: 10}
	}
}

func checkPhone(r resume.ResumeData) Check {
	return presenceCheck("Phone number", CategoryContact, 8,
		r.PersonalInfo.Phone != "",
		"Phone number present.",
		"Add a phone number so recruiters can reach you directly.")
}

func checkLocation(r resume.ResumeData) Check {
	return presenceCheck("Location", CategoryContact, 5,
		r.PersonalInfo.Location != "",
		"Location present; ATS filters often match on city or region.",
		"Add your city and region; many ATS queries filter by location.")
}

func checkLinkedIn(r resume.ResumeData) Check {
	return presenceCheck("LinkedIn profile", CategoryContact, 5,
		r.PersonalInfo.LinkedIn != "",
		"LinkedIn profile present.",
		"Add your LinkedIn URL; many recruiters cross-check it.")
}

func checkTitle(r resume.ResumeData) Check {
	return presenceCheck("Job title", CategoryContact, 6,
		r.PersonalInfo.Title != "",
		"A professional title is present under your name.",
		"Add a professional title (e.g. \"Backend Engineer\") so the ATS can classify your profile.")
}

func checkSummary(r resume.ResumeData) Check {
	words := len(strings.Fields(r.PersonalInfo.Summary))
	switch {
	case words >= 30:
		return Check{Label: "Professional summary", Category: CategoryContent, Status: StatusPass,
			Tip: fmt.Sprintf("Summary has %d words; a solid overview for keyword extraction.", words), Weight: 8}
	case words >= 10:
		return Check{Label: "Professional summary", Category: CategoryContent, Status: StatusWarn,
			Tip: fmt.Sprintf("Summary has only %d words; expand it to 30+ words covering role, years and specialties.", words), Weight: 8}
	default:
		return Check{Label: "Professional summary", Category: CategoryContent, Status: StatusFail,
			Tip: fmt.Sprintf("Summary has %d words; write a 30+ word professional summary.", words), Weight: 8}
	}
}

// countableExperiences counts entries with both position and company filled;
// anything less is unparseable for most ATS vendors.
func countableExperiences(r resume.ResumeData) int {
	n := 0
	for _, exp := range r.Experiences {
		if exp.Position != "" && exp.Company != "" {
			n++
		}
	}
	return n
}

func checkExperienceCount(r resume.ResumeData) Check {
	n := countableExperiences(r)
	switch {
	case n >= 2:
		return Check{Label: "Work experience entries", Category: CategoryContent, Status: StatusPass,
			Tip: fmt.Sprintf("%d complete experience entries found.", n), Weight: 10}
	case n == 1:
		return Check{Label: "Work experience entries", Category: CategoryContent, Status: StatusWarn,
			Tip: "Only 1 complete experience entry; add earlier roles with both position and company.", Weight: 10}
	default:
		return Check{Label: "Work experience entries", Category: CategoryContent, Status: StatusFail,
			Tip: "No experience entries with both position and company; the ATS will see an empty work history.", Weight: 10}
	}
}

func checkDescriptionDetail(r resume.ResumeData) Check {
	total := len(r.Experiences)
	if total == 0 {
		return Check{Label: "Experience detail", Category: CategoryContent, Status: StatusFail,
			Tip: "No experience entries to describe.", Weight: 8}
	}

	detailed := 0
	for _, exp := range r.Experiences {
		if len(exp.Description) >= 50 {
			detailed++
		}
	}

	ratio := float64(detailed) / float64(total)
	tip := fmt.Sprintf("%d of %d experience entries have detailed descriptions (50+ characters).", detailed, total)
	switch {
	case ratio >= 0.7:
		return Check{Label: "Experience detail", Category: CategoryContent, Status: StatusPass, Tip: tip, Weight: 8}
	case ratio >= 0.3:
		return Check{Label: "Experience detail", Category: CategoryContent, Status: StatusWarn, Tip: tip, Weight: 8}
	default:
		return Check{Label: "Experience detail", Category: CategoryContent, Status: StatusFail, Tip: tip, Weight: 8}
	}
}

func checkQuantifiedAchievements(r resume.ResumeData) Check {
	matches := 0
	for _, exp := range r.Experiences {
		matches += len(quantifiedRe.FindAllString(exp.Description, -1))
	}
	switch {
	case matches >= 3:
		return Check{Label: "Quantified achievements", Category: CategoryContent, Status: StatusPass,
			Tip: fmt.Sprintf("%d quantified results found (percentages, amounts, counts).", matches), Weight: 8}
	case matches >= 1:
		return Check{Label: "Quantified achievements", Category: CategoryContent, Status: StatusWarn,
			Tip: fmt.Sprintf("Only %d quantified result found; add numbers (\"reduced costs 20%%\", \"served 1M+ users\").", matches), Weight: 8}
	default:
		return Check{Label: "Quantified achievements", Category: CategoryContent, Status: StatusFail,
			Tip: "No quantified results found; add measurable outcomes to your descriptions.", Weight: 8}
	}
}

func checkActionVerbs(r resume.ResumeData) Check {
	text := strings.ToLower(r.ExperienceText())
	distinct := 0
	for _, verb := range actionVerbs {
		if strings.Contains(text, verb) {
			distinct++
		}
	}
	switch {
	case distinct >= 3:
		return Check{Label: "Action verbs", Category: CategoryKeywords, Status: StatusPass,
			Tip: fmt.Sprintf("%d distinct action verbs found in your experience descriptions.", distinct), Weight: 7}
	case distinct >= 1:
		return Check{Label: "Action verbs", Category: CategoryKeywords, Status: StatusWarn,
			Tip: fmt.Sprintf("Only %d action verb found; start bullets with verbs like \"led\", \"built\", \"improved\".", distinct), Weight: 7}
	default:
		return Check{Label: "Action verbs", Category: CategoryKeywords, Status: StatusFail,
			Tip: "No action verbs found; start each bullet with a strong verb.", Weight: 7}
	}
}

func checkExperienceDates(r resume.ResumeData) Check {
	total := len(r.Experiences)
	if total == 0 {
		return Check{Label: "Experience dates", Category: CategoryFormat, Status: StatusFail,
			Tip: "No experience entries with dates.", Weight: 5}
	}

	complete := 0
	for _, exp := range r.Experiences {
		if exp.StartDate != "" && (exp.EndDate != "" || exp.Current) {
			complete++
		}
	}

	tip := fmt.Sprintf("%d of %d experience entries have complete date ranges.", complete, total)
	switch {
	case complete == total:
		return Check{Label: "Experience dates", Category: CategoryFormat, Status: StatusPass, Tip: tip, Weight: 5}
	case complete > 0:
		return Check{Label: "Experience dates", Category: CategoryFormat, Status: StatusWarn, Tip: tip, Weight: 5}
	default:
		return Check{Label: "Experience dates", Category: CategoryFormat, Status: StatusFail, Tip: tip, Weight: 5}
	}
}

func checkEducation(r resume.ResumeData) Check {
	return presenceCheck("Education", CategoryContent, 6,
		len(r.Education) > 0,
		fmt.Sprintf("%d education entries found.", len(r.Education)),
		"Add an education section; many ATS profiles require at least one entry.")
}

func checkSkillCount(r resume.ResumeData) Check {
	n := len(resume.SplitDelimited(r.Skills))
	switch {
	case n >= 6:
		return Check{Label: "Skills listed", Category: CategoryKeywords, Status: StatusPass,
			Tip: fmt.Sprintf("%d skills listed; good keyword coverage.", n), Weight: 8}
	case n >= 3:
		return Check{Label: "Skills listed", Category: CategoryKeywords, Status: StatusWarn,
			Tip: fmt.Sprintf("Only %d skills listed; aim for 6 or more relevant skills.", n), Weight: 8}
	default:
		return Check{Label: "Skills listed", Category: CategoryKeywords, Status: StatusFail,
			Tip: fmt.Sprintf("Only %d skills listed; ATS keyword matching needs a populated skills section.", n), Weight: 8}
	}
}

func checkSkillBalance(r resume.ResumeData) Check {
	skills := resume.SplitDelimited(r.Skills)
	hasSoft, hasTechnical := false, false
	for _, skill := range skills {
		if isSoftSkill(skill) {
			hasSoft = true
		} else {
			hasTechnical = true
		}
	}

	switch {
	case hasSoft && hasTechnical:
		return Check{Label: "Skill balance", Category: CategoryKeywords, Status: StatusPass,
			Tip: "Both technical and soft skills are listed.", Weight: 4}
	case hasSoft || hasTechnical:
		missing := "technical"
		if hasTechnical {
			missing = "soft"
		}
		return Check{Label: "Skill balance", Category: CategoryKeywords, Status: StatusWarn,
			Tip: fmt.Sprintf("Skills are one-sided; add %s skills for balance.", missing), Weight: 4}
	default:
		return Check{Label: "Skill balance", Category: CategoryKeywords, Status: StatusFail,
			Tip: "No skills to assess for balance.", Weight: 4}
	}
}

func isSoftSkill(skill string) bool {
	lower := strings.ToLower(skill)
	for _, term := range softSkillTerms {
		if strings.Contains(lower, term) {
			return true
		}
	}
	return false
}

func checkSkillCrossReference(r resume.ResumeData) Check {
	skills := resume.SplitDelimited(r.Skills)
	if len(skills) == 0 {
		return Check{Label: "Skills in context", Category: CategoryKeywords, Status: StatusFail,
			Tip: "No skills to cross-reference against your experience.", Weight: 6}
	}

	text := strings.ToLower(r.ExperienceText())
	matched := 0
	for _, skill := range skills {
		if strings.Contains(text, strings.ToLower(skill)) {
			matched++
		}
	}

	ratio := float64(matched) / float64(len(skills))
	tip := fmt.Sprintf("%d of %d listed skills also appear in your experience descriptions.", matched, len(skills))
	switch {
	case ratio >= 0.3:
		return Check{Label: "Skills in context", Category: CategoryKeywords, Status: StatusPass, Tip: tip, Weight: 6}
	case matched >= 1:
		return Check{Label: "Skills in context", Category: CategoryKeywords, Status: StatusWarn, Tip: tip, Weight: 6}
	default:
		return Check{Label: "Skills in context", Category: CategoryKeywords, Status: StatusFail,
			Tip: "None of your listed skills appear in your experience descriptions; demonstrate them in context.", Weight: 6}
	}
}

func checkSectionStructure(r resume.ResumeData) Check {
	missing := []string{}
	if len(r.Experiences) == 0 {
		missing = append(missing, "experience")
	}
	if len(r.Education) == 0 {
		missing = append(missing, "education")
	}
	if len(resume.SplitDelimited(r.Skills)) == 0 {
		missing = append(missing, "skills")
	}

	if len(missing) == 0 {
		return Check{Label: "Section structure", Category: CategoryFormat, Status: StatusPass,
			Tip: "Experience, education and skills sections are all populated.", Weight: 5}
	}
	return Check{Label: "Section structure", Category: CategoryFormat, Status: StatusFail,
		Tip: fmt.Sprintf("Missing sections: %s. ATS parsers expect all three core sections.", strings.Join(missing, ", ")), Weight: 5}
}

func checkWordCount(r resume.ResumeData) Check {
	words := r.WordCount()
	tip := fmt.Sprintf("Resume contains %d words.", words)
	switch {
	case words >= 200 && words <= 800:
		return Check{Label: "Resume length", Category: CategoryFormat, Status: StatusPass,
			Tip: tip + " This is within the ideal 200-800 range.", Weight: 5}
	case (words >= 100 && words < 200) || (words > 800 && words <= 1200):
		return Check{Label: "Resume length", Category: CategoryFormat, Status: StatusWarn,
			Tip: tip + " Aim for 200-800 words.", Weight: 5}
	default:
		return Check{Label: "Resume length", Category: CategoryFormat, Status: StatusFail,
			Tip: tip + " Aim for 200-800 words.", Weight: 5}
	}
}

func checkCertifications(r resume.ResumeData) Check {
	if len(r.Certifications) > 0 {
		return Check{Label: "Certifications", Category: CategoryContent, Status: StatusPass,
			Tip: fmt.Sprintf("%d certifications listed.", len(r.Certifications)), Weight: 3}
	}
	// Non-critical bonus section, so absence only warns.
	return Check{Label: "Certifications", Category: CategoryContent, Status: StatusWarn,
		Tip: "No certifications listed; add any relevant ones as bonus keywords.", Weight: 3}
}
