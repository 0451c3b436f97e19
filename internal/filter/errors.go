package filter

import (
	"fmt"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// ParseError reports a fatal filter-grammar error with a Rust/Clang-style
// source snippet pointing at the offending column (spec §4.D, §7: filter
// parse errors abort the process with a position-tagged diagnostic).
type ParseError struct {
	Message    string
	Input      string
	Column     int
	Suggestion string // non-empty for unknown-field errors
}

func (e *ParseError) Error() string {
	var b strings.Builder
	b.WriteString(e.Message)
	if e.Suggestion != "" {
		fmt.Fprintf(&b, " (did you mean %q?)", e.Suggestion)
	}
	b.WriteString("\n")
	b.WriteString(e.snippet())
	return b.String()
}

// snippet renders:
//
//	  --> column 14
//	   |
//	   | org==AAA && !
//	   |              ^
func (e *ParseError) snippet() string {
	var b strings.Builder
	fmt.Fprintf(&b, "  --> column %d\n", e.Column)
	b.WriteString("   |\n")
	fmt.Fprintf(&b, "   | %s\n", e.Input)
	b.WriteString("   | ")
	if e.Column > 0 && e.Column <= len(e.Input)+1 {
		b.WriteString(strings.Repeat(" ", e.Column-1) + "^")
	}
	return b.String()
}

// recognizedFields is the closed set of the eight field names a predicate
// leaf may name (spec §6).
var recognizedFields = []string{"org", "dst", "prc", "dur", "sto", "sea", "dep", "arr"}

// suggestField finds the closest recognized field name to an unknown one
// typed by the user, the same fuzzy-ranking pattern the planner uses to
// suggest decorator names in the teacher's runtime/planner package.
func suggestField(got string) string {
	lowered := strings.ToLower(got)
	best, bestDist := "", -1
	for _, field := range recognizedFields {
		d := fuzzy.LevenshteinDistance(lowered, field)
		if bestDist < 0 || d < bestDist {
			best, bestDist = field, d
		}
	}
	return best
}
