// Package hits parses raw backend output lines into structured matches.
package hits

// Hit is one structured match produced from a single backend output line.
// Line and Col are 1-based; both are zero for filename-only hits, which also
// carry no Text. Term is the original search term, kept for formatting.
type Hit struct {
	Term     string
	Filename string
	Text     string
	Line     int
	Col      int
}
