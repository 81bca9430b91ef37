package simulator

// ParsingRules describes one vendor's formatting tolerances. The simulator
// consults these when deciding which parts of a resume survive ingestion.
type ParsingRules struct {
	HandlesMultiColumn  bool
	HandlesTables       bool
	HandlesHeaders      bool
	HandlesSpecialChars bool
	MaxSummaryLength    int
	// PreferredDateFormat is either "MM/YYYY" or "Mon YYYY".
	PreferredDateFormat string
	// SkillsDelimiter is how the vendor renders the skill list: "comma",
	// "pipe" or "newline".
	SkillsDelimiter string
}

// Platform is a declarative profile of one ATS vendor. Profiles are data,
// not behavior; all parsing logic lives in Simulate.
type Platform struct {
	ID          string
	Name        string
	Description string
	Rules       ParsingRules
	// SectionLabels maps canonical section keys to the header synonyms the
	// vendor recognizes. The first entry is the vendor's own terminology,
	// used verbatim in parse results.
	SectionLabels map[string][]string
	// FieldMapping maps canonical field keys to vendor field names.
	FieldMapping map[string]string
	// Quirks are vendor oddities surfaced as warnings on every run.
	Quirks []string
}

var platforms = []Platform{
	{
		ID:          "workday",
		Name:        "Workday",
		Description: "Enterprise HCM suite; strict single-column parser with conservative field extraction.",
		Rules: ParsingRules{
			HandlesMultiColumn:  false,
			HandlesTables:       false,
			HandlesHeaders:      false,
			HandlesSpecialChars: true,
			MaxSummaryLength:    500,
			PreferredDateFormat: "MM/YYYY",
			SkillsDelimiter:     "comma",
		},
		SectionLabels: map[string][]string{
			"contact":        {"Candidate Information", "Contact", "Contact Information"},
			"summary":        {"Summary", "Professional Summary", "Profile"},
			"experience":     {"Work Experience", "Experience", "Employment History"},
			"education":      {"Education", "Academic History"},
			"skills":         {"Skills", "Technical Skills"},
			"projects":       {"Additional Information", "Projects"},
			"certifications": {"Certifications", "Licenses"},
		},
		FieldMapping: map[string]string{
			"fullName": "Legal Name",
			"title":    "Current Title",
			"email":    "Primary Email",
			"phone":    "Primary Phone",
			"location": "Location",
			"website":  "Website",
			"linkedin": "LinkedIn",
		},
		Quirks: []string{
			"Workday often asks candidates to re-enter parsed fields manually; parsing errors compound into form friction.",
			"Text inside page headers and footers is discarded entirely.",
		},
	},
	{
		ID:          "greenhouse",
		Name:        "Greenhouse",
		Description: "Startup and mid-market favorite; modern parser with good layout tolerance.",
		Rules: ParsingRules{
			HandlesMultiColumn:  true,
			HandlesTables:       false,
			HandlesHeaders:      true,
			HandlesSpecialChars: true,
			MaxSummaryLength:    600,
			PreferredDateFormat: "Mon YYYY",
			SkillsDelimiter:     "pipe",
		},
		SectionLabels: map[string][]string{
			"contact":        {"Details", "Contact", "Contact Info"},
			"summary":        {"About", "Summary", "Profile"},
			"experience":     {"Experience", "Work Experience", "Work History"},
			"education":      {"Education", "Academic Background"},
			"skills":         {"Skills", "Technologies", "Tech Stack"},
			"projects":       {"Projects", "Portfolio", "Side Projects"},
			"certifications": {"Certifications", "Certificates"},
		},
		FieldMapping: map[string]string{
			"fullName": "Full Name",
			"title":    "Headline",
			"email":    "Email",
			"phone":    "Phone",
			"location": "Location",
			"website":  "Website",
			"linkedin": "LinkedIn URL",
		},
		Quirks: []string{
			"Greenhouse truncates long bullet lists in its candidate preview pane.",
		},
	},
	{
		ID:          "lever",
		Name:        "Lever",
		Description: "Recruiting CRM with a lightweight parser; struggles with decorated text.",
		Rules: ParsingRules{
			HandlesMultiColumn:  true,
			HandlesTables:       false,
			HandlesHeaders:      true,
			HandlesSpecialChars: false,
			MaxSummaryLength:    400,
			PreferredDateFormat: "Mon YYYY",
			SkillsDelimiter:     "newline",
		},
		SectionLabels: map[string][]string{
			"contact":        {"Profile", "Contact"},
			"summary":        {"Summary", "About", "Bio"},
			"experience":     {"Positions", "Experience", "Work Experience"},
			"education":      {"Education", "Schools"},
			"skills":         {"Tags", "Skills", "Keywords"},
			"projects":       {"Links", "Projects"},
			"certifications": {"Certifications", "Credentials"},
		},
		FieldMapping: map[string]string{
			"fullName": "Name",
			"title":    "Current Position",
			"email":    "Email",
			"phone":    "Phone",
			"location": "Location",
			"website":  "Link",
			"linkedin": "LinkedIn",
		},
		Quirks: []string{
			"Lever imports skills as free-form tags, so duplicate variants (\"JS\", \"JavaScript\") are not merged.",
			"Decorative symbols are replaced or dropped during import.",
		},
	},
	{
		ID:          "taleo",
		Name:        "Oracle Taleo",
		Description: "Legacy enterprise ATS; the least forgiving parser of the five.",
		Rules: ParsingRules{
			HandlesMultiColumn:  false,
			HandlesTables:       false,
			HandlesHeaders:      false,
			HandlesSpecialChars: false,
			MaxSummaryLength:    300,
			PreferredDateFormat: "MM/YYYY",
			SkillsDelimiter:     "comma",
		},
		SectionLabels: map[string][]string{
			"contact":        {"Personal Information", "Contact Information"},
			"summary":        {"Objective", "Summary", "Career Objective"},
			"experience":     {"Work History", "Work Experience", "Employment"},
			"education":      {"Education History", "Education"},
			"skills":         {"Skills", "Qualifications"},
			"projects":       {"Other", "Additional Information"},
			"certifications": {"Licenses and Certifications", "Certifications"},
		},
		FieldMapping: map[string]string{
			"fullName": "Candidate Name",
			"title":    "Job Title",
			"email":    "Email Address",
			"phone":    "Telephone",
			"location": "City/State",
			"website":  "Web Address",
			"linkedin": "Web Address 2",
		},
		Quirks: []string{
			"Taleo frequently splits a single role into two entries when dates appear on their own line.",
			"Accented characters and symbols are often mangled into question marks.",
			"Section headings it does not recognize cause the whole section to land in an \"Other\" bucket.",
		},
	},
	{
		ID:          "icims",
		Name:        "iCIMS",
		Description: "High-volume enterprise ATS; decent table support but rigid field expectations.",
		Rules: ParsingRules{
			HandlesMultiColumn:  false,
			HandlesTables:       true,
			HandlesHeaders:      false,
			HandlesSpecialChars: true,
			MaxSummaryLength:    450,
			PreferredDateFormat: "MM/YYYY",
			SkillsDelimiter:     "pipe",
		},
		SectionLabels: map[string][]string{
			"contact":        {"Candidate Profile", "Contact Information"},
			"summary":        {"Professional Summary", "Summary", "Overview"},
			"experience":     {"Employment History", "Work Experience", "Experience"},
			"education":      {"Education", "Education and Training"},
			"skills":         {"Competencies", "Skills", "Core Competencies"},
			"projects":       {"Supplemental", "Projects"},
			"certifications": {"Certifications", "Licenses"},
		},
		FieldMapping: map[string]string{
			"fullName": "Name",
			"title":    "Most Recent Title",
			"email":    "Email",
			"phone":    "Mobile Phone",
			"location": "Address",
			"website":  "Portfolio URL",
			"linkedin": "Social Profile",
		},
		Quirks: []string{
			"iCIMS expects employment entries in reverse chronological order and may misread anything else.",
			"Fields beyond its fixed schema are silently dropped.",
		},
	},
}

// Platforms returns the five supported vendor profiles in a stable order.
func Platforms() []Platform {
	out := make([]Platform, len(platforms))
	copy(out, platforms)
	return out
}

// Lookup returns the profile for the given platform ID.
func Lookup(id string) (Platform, bool) {
	for _, p := range platforms {
		if p.ID == id {
			return p, true
		}
	}
	return Platform{}, false
}

// PlatformIDs returns the valid values for a platform argument.
func PlatformIDs() []string {
	ids := make([]string, len(platforms))
	for i, p := range platforms {
		ids[i] = p.ID
	}
	return ids
}
