package parser

import "fmt"

// ParseError is raised for malformed path text, wrong function arity, or
// a missing function argument (spec.md §7). It carries an excerpt of the
// remaining input and, where available, the function name being parsed,
// matching the Python original's ParseError messages
// ("Expecting exactly one argument for %s function at %s").
type ParseError struct {
	Kind     string
	Message  string
	Pos      int
	Function string
	Excerpt  string
}

func (e ParseError) Error() string {
	if e.Function != "" {
		return fmt.Sprintf("parse error (%s) in %s() at byte %d: %s (near %q)", e.Kind, e.Function, e.Pos, e.Message, e.Excerpt)
	}
	return fmt.Sprintf("parse error (%s) at byte %d: %s (near %q)", e.Kind, e.Pos, e.Message, e.Excerpt)
}

func excerpt(remaining string) string {
	const maxLen = 40
	if len(remaining) > maxLen {
		return remaining[:maxLen] + "..."
	}
	return remaining
}
