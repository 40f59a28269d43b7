package query

import "regexp"

// Compile translates a search mode and term into the regex handed to the
// backend. The term is always quoted as a literal so that metacharacters in it
// cannot alter the search. File mode has no regex at all; callers hand the
// term to the backend's filename search directly.
func Compile(mode Mode, term string) string {
	quoted := regexp.QuoteMeta(term)

	switch mode {
	case ModeDefinition:
		// A function declaration head: the term followed by an argument
		// list, type parameters or a return-type colon.
		return `(?:def|fn|function) ` + quoted + `[\[\(: ]`
	case ModeClass:
		// Declaration heads across OOP and ADT-style languages.
		return `(?:class|trait|object|type|struct|impl|enum) ` + quoted + `(?:[\[\(\{: ]|$)`
	case ModeImport:
		// The term appearing as one qualified or braced member of an
		// import/use statement.
		return `(?:import|use) .*[\.\{,: ]` + quoted + `(?:[\{\},; ]|$)`
	default:
		return quoted
	}
}
