package backend

import (
	"context"
	"os/exec"
	"strings"
)

// RgRunner searches with ripgrep.
type RgRunner struct {
	extraArgs []string
}

// NewRgRunner creates an RgRunner; extraArgs are passed through to every rg
// invocation.
func NewRgRunner(extraArgs []string) *RgRunner {
	return &RgRunner{extraArgs: extraArgs}
}

// Name returns the backend's executable name.
func (r *RgRunner) Name() string { return "rg" }

// Available reports whether rg is installed.
func (r *RgRunner) Available() bool {
	_, err := exec.LookPath("rg")
	return err == nil
}

// FindFiles lists the files rg would search and filters them by substring.
// rg has no filename-pattern search of its own, so the filter happens here.
func (r *RgRunner) FindFiles(ctx context.Context, term string) ([]string, error) {
	args := append([]string{"--files"}, r.extraArgs...)

	lines, err := runLines(exec.CommandContext(ctx, "rg", args...))
	if err != nil {
		return nil, err
	}

	var matched []string
	for _, l := range lines {
		if strings.Contains(l, term) {
			matched = append(matched, l)
		}
	}
	return matched, nil
}

// FindContent runs a case-sensitive content search with column reporting.
// --no-heading and -n force the one-match-per-line file:line:col:text format
// even when stdout is a terminal.
func (r *RgRunner) FindContent(ctx context.Context, regex string) ([]string, error) {
	args := append([]string{"-s", "--no-heading", "-n", "--column"}, r.extraArgs...)
	args = append(args, regex)
	return runLines(exec.CommandContext(ctx, "rg", args...))
}
