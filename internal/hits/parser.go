package hits

import (
	"strconv"
	"strings"
)

// ParseContentLine parses one filename:line:column:text line from a content
// search. The text field may itself contain colons, so everything after the
// third colon is kept intact rather than split further. Lines with fewer than
// four fields, or with non-numeric line/column fields, are reported as
// unparseable so the caller can skip them.
//
// A colon in the filename itself shifts every field; that is a limitation of
// the backend's output format which this parser cannot detect.
func ParseContentLine(term, raw string) (Hit, bool) {
	parts := strings.SplitN(raw, ":", 4)
	if len(parts) < 4 {
		return Hit{}, false
	}

	line, err := strconv.Atoi(parts[1])
	if err != nil {
		return Hit{}, false
	}

	col, err := strconv.Atoi(parts[2])
	if err != nil {
		return Hit{}, false
	}

	return Hit{
		Term:     term,
		Filename: parts[0],
		Text:     parts[3],
		Line:     line,
		Col:      col,
	}, true
}

// ParseFileLine wraps a bare filename line from a filename search.
func ParseFileLine(term, raw string) Hit {
	return Hit{Term: term, Filename: raw}
}
