package keywords

import (
	"regexp"
	"strings"
)

// knownPhrases are curated multi-word terms matched as a unit before
// single-word extraction. Order does not matter; matching is regex-based
// and tolerant of separator variants ("ci/cd" matches "ci cd").
var knownPhrases = []string{
	"machine learning",
	"deep learning",
	"artificial intelligence",
	"natural language processing",
	"computer vision",
	"data science",
	"data analysis",
	"data engineering",
	"data pipeline",
	"data warehouse",
	"data modeling",
	"big data",
	"business intelligence",
	"software development",
	"software engineering",
	"web development",
	"mobile development",
	"full stack",
	"front end",
	"back end",
	"user experience",
	"user interface",
	"responsive design",
	"product management",
	"project management",
	"program management",
	"stakeholder management",
	"agile development",
	"scrum master",
	"continuous integration",
	"continuous delivery",
	"continuous deployment",
	"ci/cd",
	"version control",
	"source control",
	"unit testing",
	"integration testing",
	"test automation",
	"quality assurance",
	"code review",
	"pair programming",
	"design patterns",
	"system design",
	"database design",
	"object oriented",
	"functional programming",
	"cloud computing",
	"cloud infrastructure",
	"distributed systems",
	"operating systems",
	"computer science",
	"rest api",
	"restful api",
	"microservices architecture",
	"event driven",
	"message queue",
	"open source",
	"technical leadership",
	"team leadership",
	"cross functional",
	"customer success",
	"problem solving",
	"critical thinking",
	"communication skills",
	"time management",
	"attention to detail",
	"best practices",
	"react native",
	"node js",
	"ruby on rails",
	"spring boot",
}

// stopWords are excluded from single-word extraction: articles, pronouns,
// auxiliaries, and the generic filler that saturates job postings.
var stopWords = map[string]struct{}{}

func init() {
	for _, w := range strings.Fields(stopWordList) {
		stopWords[w] = struct{}{}
	}
	phraseTable = make([]phrasePattern, 0, len(knownPhrases))
	for _, phrase := range knownPhrases {
		phraseTable = append(phraseTable, compilePhrase(phrase))
	}
}

const stopWordList = `
a an the and or but if then else nor so yet to of in on at by with from as
is are was were be been being am do does did done have has had having
will would can could should shall may might must need needs
this that these those it its they them their theirs we us our ours
you your yours he she his her hers him i me my mine who whom whose
which what when where why how all any both each few more most other
some such no not only own same than too very just also
about above after again against before below between during into through
over under out off up down once here there while because until
job jobs role roles position positions candidate candidates applicant
team teams work working company companies experience experienced
years year skills skill ability able strong excellent good great ideal
plus preferred required require requires requirements requirement
responsibilities responsibility responsible duties qualifications
qualification including include includes included knowledge familiarity
familiar understanding understand looking seeking join apply application
offer offers offered opportunity opportunities benefits salary compensation
location remote hybrid onsite etc per via like related relevant various
every well within across ensure ensuring help new using use used uses
day days week weeks month months degree equivalent minimum least
environment environments fast paced dynamic passionate motivated
successful success bonus title description who what someone anyone
`

type phrasePattern struct {
	canonical string
	re        *regexp.Regexp
	parts     []string
}

var phraseTable []phrasePattern

// compilePhrase builds a matcher tolerant of whitespace, slash, dot and
// hyphen between constituents, so "ci/cd", "ci cd" and "ci-cd" all hit the
// same phrase.
func compilePhrase(phrase string) phrasePattern {
	parts := strings.FieldsFunc(phrase, func(r rune) bool {
		return r == ' ' || r == '/'
	})
	quoted := make([]string, len(parts))
	for i, p := range parts {
		quoted[i] = regexp.QuoteMeta(p)
	}
	re := regexp.MustCompile(`(?i)\b` + strings.Join(quoted, `[\s/.-]+`) + `\b`)
	return phrasePattern{canonical: phrase, re: re, parts: parts}
}

func isStopWord(w string) bool {
	_, ok := stopWords[w]
	return ok
}
