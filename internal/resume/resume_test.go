package resume

import (
	"reflect"
	"strings"
	"testing"
)

func TestSplitDelimited(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "simple comma list",
			input:    "Go, Python, SQL",
			expected: []string{"Go", "Python", "SQL"},
		},
		{
			name:     "extra whitespace and empty items",
			input:    " Go ,, Python ,  ",
			expected: []string{"Go", "Python"},
		},
		{
			name:     "single item no comma",
			input:    "Kubernetes",
			expected: []string{"Kubernetes"},
		},
		{
			name:     "empty string",
			input:    "",
			expected: nil,
		},
		{
			name:     "whitespace only",
			input:    "   ",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitDelimited(tt.input)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("SplitDelimited(%q) = %v, expected %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestSplitBullets(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "dash bullets",
			input:    "- Led a team of five\n- Shipped the billing service",
			expected: []string{"Led a team of five", "Shipped the billing service"},
		},
		{
			name:     "mixed markers",
			input:    "• First point\n* Second point\nThird point",
			expected: []string{"First point", "Second point", "Third point"},
		},
		{
			name:     "blank lines dropped",
			input:    "- One\n\n   \n- Two",
			expected: []string{"One", "Two"},
		},
		{
			name:     "empty input",
			input:    "",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitBullets(tt.input)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("SplitBullets(%q) = %v, expected %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestJoinDelimitedRoundTrip(t *testing.T) {
	items := []string{"Go", "Python", "SQL"}
	joined := JoinDelimited(items, ", ")
	if got := SplitDelimited(joined); !reflect.DeepEqual(got, items) {
		t.Errorf("round trip changed items: %v -> %q -> %v", items, joined, got)
	}
}

func TestFlattenText(t *testing.T) {
	r := ResumeData{
		PersonalInfo: PersonalInfo{
			FullName: "Jamie Rivera",
			Title:    "Backend Engineer",
			Summary:  "Builds reliable services.",
		},
		Experiences: []Experience{
			{Position: "Engineer", Company: "Acme", Description: "Designed APIs"},
		},
		Education: []Education{
			{Institution: "State University", Degree: "BSc", Field: "Computer Science"},
		},
		Skills: "Go, PostgreSQL",
		Projects: []Project{
			{Name: "tracer", Technologies: "Go, OpenTelemetry"},
		},
		Certifications: []Certification{
			{Name: "CKA", Issuer: "CNCF"},
		},
	}

	text := r.FlattenText()
	for _, want := range []string{
		"Jamie Rivera", "Backend Engineer", "Designed APIs",
		"State University", "Go, PostgreSQL", "tracer", "CKA", "CNCF",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("FlattenText() missing %q", want)
		}
	}
	if strings.HasSuffix(text, " ") {
		t.Error("FlattenText() should be trimmed")
	}
}

func TestFlattenTextZeroValue(t *testing.T) {
	var r ResumeData
	if got := r.FlattenText(); got != "" {
		t.Errorf("FlattenText() on zero value = %q, expected empty", got)
	}
	if got := r.WordCount(); got != 0 {
		t.Errorf("WordCount() on zero value = %d, expected 0", got)
	}
	if got := r.ExperienceText(); got != "" {
		t.Errorf("ExperienceText() on zero value = %q, expected empty", got)
	}
}

func TestWordCount(t *testing.T) {
	r := ResumeData{
		PersonalInfo: PersonalInfo{Summary: "one two three"},
		Skills:       "four five",
	}
	if got := r.WordCount(); got != 5 {
		t.Errorf("WordCount() = %d, expected 5", got)
	}
}

func TestParseJSON(t *testing.T) {
	t.Run("valid document", func(t *testing.T) {
		data := []byte(`{
			"personalInfo": {"fullName": "Jamie Rivera", "email": "jamie@example.com"},
			"skills": "Go, SQL"
		}`)
		r, warnings, err := ParseJSON(data)
		if err != nil {
			t.Fatalf("ParseJSON() error: %v", err)
		}
		if len(warnings) != 0 {
			t.Errorf("expected no warnings, got %v", warnings)
		}
		if r.PersonalInfo.FullName != "Jamie Rivera" {
			t.Errorf("fullName = %q", r.PersonalInfo.FullName)
		}
		if got := SplitDelimited(r.Skills); len(got) != 2 {
			t.Errorf("skills = %v, expected 2 items", got)
		}
	})

	t.Run("unknown field yields warning not error", func(t *testing.T) {
		data := []byte(`{"personalInfo": {"fullName": "Jamie"}, "hobbies": "chess"}`)
		r, warnings, err := ParseJSON(data)
		if err != nil {
			t.Fatalf("ParseJSON() error: %v", err)
		}
		if len(warnings) == 0 {
			t.Fatal("expected a schema warning for the unknown field")
		}
		if r.PersonalInfo.FullName != "Jamie" {
			t.Errorf("decode should proceed despite warnings, fullName = %q", r.PersonalInfo.FullName)
		}
	})

	t.Run("malformed JSON is an error", func(t *testing.T) {
		if _, _, err := ParseJSON([]byte(`{"skills": `)); err == nil {
			t.Fatal("expected an error for malformed JSON")
		}
	})

	t.Run("empty object", func(t *testing.T) {
		r, _, err := ParseJSON([]byte(`{}`))
		if err != nil {
			t.Fatalf("ParseJSON() error: %v", err)
		}
		if r.WordCount() != 0 {
			t.Errorf("empty document should flatten to nothing")
		}
	})
}
