package formatters

import (
	"encoding/json"
	"fmt"
	"strings"

	"resumelens/internal/ats"
	"resumelens/internal/keywords"
	"resumelens/internal/simulator"
	"resumelens/internal/types"
)

// Formatter interface for different output formats
type Formatter interface {
	Format(data any) (string, error)
	SupportedType() string
}

// FormatterRegistry manages all available formatters
type FormatterRegistry struct {
	formatters map[string]map[string]Formatter // format -> type -> formatter
}

// NewFormatterRegistry creates a new formatter registry with default formatters
func NewFormatterRegistry() *FormatterRegistry {
	registry := &FormatterRegistry{
		formatters: make(map[string]map[string]Formatter),
	}

	// Register default formatters
	registry.RegisterFormatter("json", "any", &JSONFormatter{})
	registry.RegisterFormatter("text", "ScoreOutput", &ScoreTextFormatter{})
	registry.RegisterFormatter("markdown", "ScoreOutput", &ScoreMarkdownFormatter{})
	registry.RegisterFormatter("text", "SimulateOutput", &SimulateTextFormatter{})
	registry.RegisterFormatter("markdown", "SimulateOutput", &SimulateMarkdownFormatter{})
	registry.RegisterFormatter("text", "MatchOutput", &MatchTextFormatter{})
	registry.RegisterFormatter("markdown", "MatchOutput", &MatchMarkdownFormatter{})
	registry.RegisterFormatter("text", "CoverLetterOutput", &CoverLetterTextFormatter{})
	registry.RegisterFormatter("markdown", "CoverLetterOutput", &CoverLetterMarkdownFormatter{})

	return registry
}

// RegisterFormatter registers a new formatter for a specific format and data type
func (fr *FormatterRegistry) RegisterFormatter(format, dataType string, formatter Formatter) {
	if fr.formatters[format] == nil {
		fr.formatters[format] = make(map[string]Formatter)
	}
	fr.formatters[format][dataType] = formatter
}

// Format formats data using the appropriate formatter
func (fr *FormatterRegistry) Format(data any, format string) (string, error) {
	dataType := getDataType(data)

	// Try specific formatter first
	if formatters, exists := fr.formatters[format]; exists {
		if formatter, exists := formatters[dataType]; exists {
			return formatter.Format(data)
		}
		// Fall back to generic formatter
		if formatter, exists := formatters["any"]; exists {
			return formatter.Format(data)
		}
	}

	return "", fmt.Errorf("no formatter found for format '%s' and type '%s'", format, dataType)
}

// GetSupportedFormats returns all supported formats
func (fr *FormatterRegistry) GetSupportedFormats() []string {
	formats := make([]string, 0, len(fr.formatters))
	for format := range fr.formatters {
		formats = append(formats, format)
	}
	return formats
}

func getDataType(data any) string {
	switch data.(type) {
	case types.ScoreOutput:
		return "ScoreOutput"
	case types.SimulateOutput:
		return "SimulateOutput"
	case types.MatchOutput:
		return "MatchOutput"
	case types.CoverLetterOutput:
		return "CoverLetterOutput"
	default:
		return "any"
	}
}

// JSONFormatter handles JSON formatting for any data type
type JSONFormatter struct{}

func (jf *JSONFormatter) Format(data any) (string, error) {
	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return "", err
	}
	return string(jsonData), nil
}

func (jf *JSONFormatter) SupportedType() string {
	return "any"
}

var categoryTitles = map[ats.Category]string{
	ats.CategoryContact:  "Contact Information",
	ats.CategoryContent:  "Content Quality",
	ats.CategoryKeywords: "Keywords and Skills",
	ats.CategoryFormat:   "Format and Structure",
}

var categoryOrder = []ats.Category{
	ats.CategoryContact,
	ats.CategoryContent,
	ats.CategoryKeywords,
	ats.CategoryFormat,
}

func statusTag(s ats.Status) string {
	switch s {
	case ats.StatusPass:
		return "[PASS]"
	case ats.StatusWarn:
		return "[WARN]"
	default:
		return "[FAIL]"
	}
}

// ScoreTextFormatter handles text formatting for score reports
type ScoreTextFormatter struct{}

func (stf *ScoreTextFormatter) Format(data any) (string, error) {
	result, ok := data.(types.ScoreOutput)
	if !ok {
		return "", fmt.Errorf("expected ScoreOutput, got %T", data)
	}

	var output strings.Builder

	output.WriteString("=== ATS SCORE REPORT ===\n\n")
	output.WriteString(fmt.Sprintf("Score: %d/100 (Grade %s)\n", result.Report.Score, result.Report.Grade))

	for _, category := range categoryOrder {
		wroteHeader := false
		for _, check := range result.Report.Checks {
			if check.Category != category {
				continue
			}
			if !wroteHeader {
				output.WriteString(fmt.Sprintf("\n--- %s ---\n", categoryTitles[category]))
				wroteHeader = true
			}
			output.WriteString(fmt.Sprintf("%s %s\n", statusTag(check.Status), check.Label))
			output.WriteString(fmt.Sprintf("       %s\n", check.Tip))
		}
	}

	return output.String(), nil
}

func (stf *ScoreTextFormatter) SupportedType() string {
	return "ScoreOutput"
}

// ScoreMarkdownFormatter handles markdown formatting for score reports
type ScoreMarkdownFormatter struct{}

func (smf *ScoreMarkdownFormatter) Format(data any) (string, error) {
	result, ok := data.(types.ScoreOutput)
	if !ok {
		return "", fmt.Errorf("expected ScoreOutput, got %T", data)
	}

	var output strings.Builder

	output.WriteString("# ATS Score Report\n\n")
	output.WriteString(fmt.Sprintf("**Score:** %d/100 (Grade **%s**)\n", result.Report.Score, result.Report.Grade))

	for _, category := range categoryOrder {
		wroteHeader := false
		for _, check := range result.Report.Checks {
			if check.Category != category {
				continue
			}
			if !wroteHeader {
				output.WriteString(fmt.Sprintf("\n## %s\n\n", categoryTitles[category]))
				wroteHeader = true
			}
			output.WriteString(fmt.Sprintf("- `%s` **%s** — %s\n", string(check.Status), check.Label, check.Tip))
		}
	}

	return output.String(), nil
}

func (smf *ScoreMarkdownFormatter) SupportedType() string {
	return "ScoreOutput"
}

// SimulateTextFormatter handles text formatting for simulation results
type SimulateTextFormatter struct{}

func (stf *SimulateTextFormatter) Format(data any) (string, error) {
	result, ok := data.(types.SimulateOutput)
	if !ok {
		return "", fmt.Errorf("expected SimulateOutput, got %T", data)
	}
	sim := result.Result

	var output strings.Builder

	output.WriteString(fmt.Sprintf("=== %s PARSE SIMULATION ===\n\n", strings.ToUpper(sim.PlatformName)))
	output.WriteString(fmt.Sprintf("Parse Score: %d/100\n", sim.OverallScore))

	for _, section := range sim.Sections {
		output.WriteString(fmt.Sprintf("\n--- %s [%s] ---\n", section.Label, section.Status))
		for _, field := range section.Fields {
			writeField(&output, "", field)
		}
		for _, entry := range section.Entries {
			output.WriteString(fmt.Sprintf("  %s [%s]\n", entry.Title, entry.Status))
			for _, field := range entry.Fields {
				writeField(&output, "  ", field)
			}
		}
	}

	if len(sim.Warnings) > 0 {
		output.WriteString("\n=== WARNINGS ===\n")
		for _, warning := range sim.Warnings {
			output.WriteString(fmt.Sprintf("- %s\n", warning))
		}
	}
	if len(sim.Tips) > 0 {
		output.WriteString("\n=== TIPS ===\n")
		for _, tip := range sim.Tips {
			output.WriteString(fmt.Sprintf("- %s\n", tip))
		}
	}

	return output.String(), nil
}

func writeField(output *strings.Builder, indent string, field simulator.ParsedField) {
	value := field.Value
	if value == "" {
		value = "(not found)"
	}
	if idx := strings.IndexByte(value, '\n'); idx >= 0 {
		value = value[:idx] + " ..."
	}
	output.WriteString(fmt.Sprintf("%s  %-14s %-8s %s\n", indent, field.Name+":", "["+field.Status+"]", value))
	if field.Note != "" {
		output.WriteString(fmt.Sprintf("%s                 note: %s\n", indent, field.Note))
	}
}

func (stf *SimulateTextFormatter) SupportedType() string {
	return "SimulateOutput"
}

// SimulateMarkdownFormatter handles markdown formatting for simulation results
type SimulateMarkdownFormatter struct{}

func (smf *SimulateMarkdownFormatter) Format(data any) (string, error) {
	result, ok := data.(types.SimulateOutput)
	if !ok {
		return "", fmt.Errorf("expected SimulateOutput, got %T", data)
	}
	sim := result.Result

	var output strings.Builder

	output.WriteString(fmt.Sprintf("# %s Parse Simulation\n\n", sim.PlatformName))
	output.WriteString(fmt.Sprintf("**Parse Score:** %d/100\n", sim.OverallScore))

	for _, section := range sim.Sections {
		output.WriteString(fmt.Sprintf("\n## %s (`%s`)\n\n", section.Label, section.Status))
		for _, field := range section.Fields {
			output.WriteString(fmt.Sprintf("- **%s** `%s`", field.Name, field.Status))
			if field.Note != "" {
				output.WriteString(" — " + field.Note)
			}
			output.WriteString("\n")
		}
		for _, entry := range section.Entries {
			output.WriteString(fmt.Sprintf("- **%s** `%s`\n", entry.Title, entry.Status))
			for _, field := range entry.Fields {
				if field.Status == simulator.StatusParsed {
					continue
				}
				output.WriteString(fmt.Sprintf("  - %s `%s`", field.Name, field.Status))
				if field.Note != "" {
					output.WriteString(" — " + field.Note)
				}
				output.WriteString("\n")
			}
		}
	}

	if len(sim.Warnings) > 0 {
		output.WriteString("\n## Warnings\n\n")
		for _, warning := range sim.Warnings {
			output.WriteString(fmt.Sprintf("- %s\n", warning))
		}
	}
	if len(sim.Tips) > 0 {
		output.WriteString("\n## Tips\n\n")
		for _, tip := range sim.Tips {
			output.WriteString(fmt.Sprintf("- %s\n", tip))
		}
	}

	return output.String(), nil
}

func (smf *SimulateMarkdownFormatter) SupportedType() string {
	return "SimulateOutput"
}

// keywordNote annotates a keyword with its job-description frequency when it
// appears more than once.
func keywordNote(kw keywords.Keyword) string {
	if kw.Frequency > 1 {
		return fmt.Sprintf(" (x%d in job description)", kw.Frequency)
	}
	return ""
}

// MatchTextFormatter handles text formatting for keyword match results
type MatchTextFormatter struct{}

func (mtf *MatchTextFormatter) Format(data any) (string, error) {
	result, ok := data.(types.MatchOutput)
	if !ok {
		return "", fmt.Errorf("expected MatchOutput, got %T", data)
	}
	match := result.Match

	var output strings.Builder

	output.WriteString("=== KEYWORD MATCH ===\n\n")
	if match.TotalKeywords == 0 {
		output.WriteString("No meaningful keywords found in the job description.\n")
		return output.String(), nil
	}

	output.WriteString(fmt.Sprintf("Match: %d%% (%d of %d keywords)\n", match.MatchPercentage, len(match.Matched), match.TotalKeywords))

	if len(match.Matched) > 0 {
		output.WriteString("\nMatched:\n")
		for _, kw := range match.Matched {
			output.WriteString(fmt.Sprintf("  + %s%s\n", kw.Keyword, keywordNote(kw)))
		}
	}
	if len(match.Missing) > 0 {
		output.WriteString("\nMissing:\n")
		for _, kw := range match.Missing {
			output.WriteString(fmt.Sprintf("  - %s%s\n", kw.Keyword, keywordNote(kw)))
		}
	}

	return output.String(), nil
}

func (mtf *MatchTextFormatter) SupportedType() string {
	return "MatchOutput"
}

// MatchMarkdownFormatter handles markdown formatting for keyword match results
type MatchMarkdownFormatter struct{}

func (mmf *MatchMarkdownFormatter) Format(data any) (string, error) {
	result, ok := data.(types.MatchOutput)
	if !ok {
		return "", fmt.Errorf("expected MatchOutput, got %T", data)
	}
	match := result.Match

	var output strings.Builder

	output.WriteString("# Keyword Match\n\n")
	if match.TotalKeywords == 0 {
		output.WriteString("No meaningful keywords found in the job description.\n")
		return output.String(), nil
	}

	output.WriteString(fmt.Sprintf("**Match:** %d%% (%d of %d keywords)\n", match.MatchPercentage, len(match.Matched), match.TotalKeywords))

	if len(match.Matched) > 0 {
		output.WriteString("\n## Matched\n\n")
		for _, kw := range match.Matched {
			output.WriteString(fmt.Sprintf("- %s%s\n", kw.Keyword, keywordNote(kw)))
		}
	}
	if len(match.Missing) > 0 {
		output.WriteString("\n## Missing\n\n")
		for _, kw := range match.Missing {
			output.WriteString(fmt.Sprintf("- %s%s\n", kw.Keyword, keywordNote(kw)))
		}
	}

	return output.String(), nil
}

func (mmf *MatchMarkdownFormatter) SupportedType() string {
	return "MatchOutput"
}

// CoverLetterTextFormatter renders the letter body as-is
type CoverLetterTextFormatter struct{}

func (ctf *CoverLetterTextFormatter) Format(data any) (string, error) {
	result, ok := data.(types.CoverLetterOutput)
	if !ok {
		return "", fmt.Errorf("expected CoverLetterOutput, got %T", data)
	}
	return result.Letter + "\n", nil
}

func (ctf *CoverLetterTextFormatter) SupportedType() string {
	return "CoverLetterOutput"
}

// CoverLetterMarkdownFormatter handles markdown formatting for cover letters
type CoverLetterMarkdownFormatter struct{}

func (cmf *CoverLetterMarkdownFormatter) Format(data any) (string, error) {
	result, ok := data.(types.CoverLetterOutput)
	if !ok {
		return "", fmt.Errorf("expected CoverLetterOutput, got %T", data)
	}

	var output strings.Builder
	output.WriteString(fmt.Sprintf("# Cover Letter (%s)\n\n", result.Tone))
	output.WriteString(result.Letter)
	output.WriteString("\n")
	return output.String(), nil
}

func (cmf *CoverLetterMarkdownFormatter) SupportedType() string {
	return "CoverLetterOutput"
}

// Global formatter registry
var GlobalRegistry = NewFormatterRegistry()
