// Package output renders hits into their final printed form.
package output

import (
	"fmt"
	"regexp"

	"github.com/giftig/quickfind/internal/hits"
	"github.com/giftig/quickfind/internal/query"
)

// importPrefixRe captures an import path prefix up to and including its final
// dot, e.g. "com.foo." from "import com.foo.Bar".
var importPrefixRe = regexp.MustCompile(`^\s*(?:import|use)\s+([^\s{]+\.)`)

// FormatHit renders a single hit in the requested format. Positional formats
// use the corrected column, not the backend-reported one.
func FormatHit(format query.Format, h hits.Hit) (string, error) {
	switch format {
	case query.FormatFileList:
		return h.Filename, nil
	case query.FormatCoordinates:
		return fmt.Sprintf("%s:%d:%d", h.Filename, h.Line, hits.CorrectColumn(h)), nil
	case query.FormatQuickfix:
		return fmt.Sprintf("%s:%d:%d:%s", h.Filename, h.Line, hits.CorrectColumn(h), h.Text), nil
	case query.FormatCleanImport:
		return cleanImport(h), nil
	default:
		return "", fmt.Errorf("unsupported format %q", format)
	}
}

// cleanImport rewrites a matched import line to import only the queried term:
// the path prefix is kept and whatever symbol or brace group was matched is
// replaced with the term. Multi-symbol brace imports are not decomposed
// further. A line with no dotted prefix falls back to importing the bare term.
func cleanImport(h hits.Hit) string {
	m := importPrefixRe.FindStringSubmatch(h.Text)
	if m == nil {
		return "import " + h.Term
	}
	return "import " + m[1] + h.Term
}
