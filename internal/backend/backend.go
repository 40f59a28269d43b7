// Package backend invokes external search tools and normalises their output.
package backend

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// ErrNoBackend is returned when no supported search tool is installed.
var ErrNoBackend = errors.New("no supported search backend found (install rg or ag)")

// Runner is a search backend. Given a pattern or filename term it returns raw
// output lines, one per hit. Implementations classify the tool's exit status
// so that "found nothing" comes back as an empty result rather than an error.
type Runner interface {
	Name() string
	Available() bool
	// FindFiles searches filenames with the term and returns one filename
	// per line.
	FindFiles(ctx context.Context, term string) ([]string, error)
	// FindContent searches file contents with the given regex and returns
	// filename:line:column:text lines.
	FindContent(ctx context.Context, regex string) ([]string, error)
}

// Detect returns the runner selected by name, or the first available of rg
// and ag when name is "auto" or empty.
func Detect(name string, extraArgs []string) (Runner, error) {
	switch name {
	case "rg":
		return NewRgRunner(extraArgs), nil
	case "ag":
		return NewAgRunner(extraArgs), nil
	case "", "auto":
		for _, r := range []Runner{NewRgRunner(extraArgs), NewAgRunner(extraArgs)} {
			if r.Available() {
				return r, nil
			}
		}
		return nil, ErrNoBackend
	default:
		return nil, fmt.Errorf("unknown backend %q (expected auto, rg or ag)", name)
	}
}

// runLines executes cmd and splits its combined output into trimmed,
// non-empty lines. A non-zero exit with no output is how these tools report
// zero matches, so it yields an empty result; a non-zero exit with output is
// a real failure and the output is its diagnostic.
func runLines(cmd *exec.Cmd) ([]string, error) {
	output, err := cmd.CombinedOutput()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			diag := strings.TrimSpace(string(output))
			if diag == "" {
				return nil, nil
			}
			return nil, fmt.Errorf("%s failed: %s", cmd.Args[0], diag)
		}
		return nil, err
	}

	return splitLines(string(output)), nil
}

func splitLines(output string) []string {
	var lines []string
	for _, l := range strings.Split(output, "\n") {
		l = strings.TrimSpace(l)
		if l != "" {
			lines = append(lines, l)
		}
	}
	return lines
}
