package hits

import "strings"

// CorrectColumn returns the 1-based column of the hit's term within its
// matched text. Backend-reported columns are unreliable in some environments,
// so the recomputed value is authoritative whenever the term appears verbatim
// in the text. Structural matches (a definition or import head rather than the
// bare term) may not contain the term at all; the backend's column stands in
// that case.
func CorrectColumn(h Hit) int {
	idx := strings.Index(h.Text, h.Term)
	if idx < 0 {
		return h.Col
	}
	return idx + 1
}
