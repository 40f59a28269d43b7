package backend

import (
	"context"
	"os/exec"
	"regexp"
)

// AgRunner searches with The Silver Searcher.
type AgRunner struct {
	extraArgs []string
}

// NewAgRunner creates an AgRunner; extraArgs are passed through to every ag
// invocation.
func NewAgRunner(extraArgs []string) *AgRunner {
	return &AgRunner{extraArgs: extraArgs}
}

// Name returns the backend's executable name.
func (r *AgRunner) Name() string { return "ag" }

// Available reports whether ag is installed.
func (r *AgRunner) Available() bool {
	_, err := exec.LookPath("ag")
	return err == nil
}

// FindFiles searches filenames with ag -g. ag treats the -g pattern as a
// regex, so the term is escaped to keep filename matching a literal substring
// filter, consistent with the rg runner.
func (r *AgRunner) FindFiles(ctx context.Context, term string) ([]string, error) {
	args := append(fileArgs(term), r.extraArgs...)
	return runLines(exec.CommandContext(ctx, "ag", args...))
}

// fileArgs builds the -g argument list for a filename search.
func fileArgs(term string) []string {
	return []string{"-g", regexp.QuoteMeta(term)}
}

// FindContent runs a case-sensitive content search with column reporting.
func (r *AgRunner) FindContent(ctx context.Context, regex string) ([]string, error) {
	args := append([]string{"-s", "--column"}, r.extraArgs...)
	args = append(args, regex)
	return runLines(exec.CommandContext(ctx, "ag", args...))
}
