package output

import "sort"

// Finalize deduplicates formatted lines, sorts them lexicographically and, if
// single is set, truncates to the first line. Sorting happens after dedupe
// because order is a property of the rendered strings; discovery order from
// the backend carries no meaning.
func Finalize(lines []string, single bool) []string {
	seen := make(map[string]struct{}, len(lines))
	unique := make([]string, 0, len(lines))
	for _, l := range lines {
		if _, ok := seen[l]; ok {
			continue
		}
		seen[l] = struct{}{}
		unique = append(unique, l)
	}

	sort.Strings(unique)

	if single && len(unique) > 1 {
		unique = unique[:1]
	}
	return unique
}
