// Package query models a search request and compiles it into a backend regex.
package query

import (
	"fmt"
	"strings"
)

// Mode is the kind of source construct being searched for.
type Mode string

const (
	ModeFile       Mode = "file"
	ModeDefinition Mode = "def"
	ModeClass      Mode = "class"
	ModeImport     Mode = "import"
	ModeUsage      Mode = "usage"
)

// Format is the output encoding for hits.
type Format string

const (
	FormatFileList    Format = "file_list"
	FormatCoordinates Format = "coords"
	FormatQuickfix    Format = "quickfix"
	FormatCleanImport Format = "clean_import"
)

// Intent is one validated search request.
type Intent struct {
	Term         string
	Mode         Mode
	Format       Format
	SingleResult bool
}

// NewIntent validates and builds an Intent. The term is trimmed; an empty or
// whitespace-only term is rejected, as are mode/format combinations which make
// no sense: positional output for filename-only hits, or clean imports outside
// an import search.
func NewIntent(term string, mode Mode, format Format, single bool) (Intent, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return Intent{}, fmt.Errorf("empty or whitespace-only search term provided")
	}

	if format == FormatCleanImport && mode != ModeImport {
		return Intent{}, fmt.Errorf("clean-import output can only be used with an import search")
	}

	if mode == ModeFile && (format == FormatCoordinates || format == FormatQuickfix) {
		return Intent{}, fmt.Errorf("%s output is meaningless for a filename search", format)
	}

	return Intent{
		Term:         term,
		Mode:         mode,
		Format:       format,
		SingleResult: single,
	}, nil
}
