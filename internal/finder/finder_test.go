package finder

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/giftig/quickfind/internal/query"
)

// stubRunner is an in-memory backend returning canned output lines.
type stubRunner struct {
	files   []string
	content []string
	err     error

	lastTerm  string
	lastRegex string
}

func (r *stubRunner) Name() string    { return "stub" }
func (r *stubRunner) Available() bool { return true }

func (r *stubRunner) FindFiles(ctx context.Context, term string) ([]string, error) {
	r.lastTerm = term
	return r.files, r.err
}

func (r *stubRunner) FindContent(ctx context.Context, regex string) ([]string, error) {
	r.lastRegex = regex
	return r.content, r.err
}

func mustIntent(t *testing.T, term string, mode query.Mode, format query.Format, single bool) query.Intent {
	t.Helper()
	intent, err := query.NewIntent(term, mode, format, single)
	require.NoError(t, err)
	return intent
}

func TestRunContentSearch(t *testing.T) {
	runner := &stubRunner{
		content: []string{
			"b.go:2:1:x := bar:baz",
			"a.go:1:5:bar()",
			"a.go:1:5:bar()", // duplicate collapses
			"garbage line",   // malformed, skipped
		},
	}

	f := New(runner, nil, nil, nil)
	intent := mustIntent(t, "bar", query.ModeUsage, query.FormatQuickfix, false)

	results, err := f.Run(context.Background(), intent)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"a.go:1:1:bar()",
		"b.go:2:6:x := bar:baz",
	}, results)
}

func TestRunCompilesEscapedRegex(t *testing.T) {
	runner := &stubRunner{}

	f := New(runner, nil, nil, nil)
	intent := mustIntent(t, "foo.bar", query.ModeUsage, query.FormatFileList, false)

	_, err := f.Run(context.Background(), intent)
	require.NoError(t, err)

	assert.Equal(t, regexp.QuoteMeta("foo.bar"), runner.lastRegex)
}

func TestRunFileSearch(t *testing.T) {
	runner := &stubRunner{
		files: []string{"src/widget.go", "docs/widget.md", "src/widget.go"},
	}

	f := New(runner, nil, nil, nil)
	intent := mustIntent(t, "widget", query.ModeFile, query.FormatFileList, false)

	results, err := f.Run(context.Background(), intent)
	require.NoError(t, err)

	assert.Equal(t, []string{"docs/widget.md", "src/widget.go"}, results)
	assert.Equal(t, "widget", runner.lastTerm)
	assert.Equal(t, "", runner.lastRegex)
}

func TestRunExcludeGlobs(t *testing.T) {
	runner := &stubRunner{
		content: []string{
			"src/widget.go:1:1:widget()",
			"vendor/lib/widget.go:9:1:widget()",
		},
	}

	f := New(runner, []string{"**/vendor/**"}, nil, nil)
	intent := mustIntent(t, "widget", query.ModeUsage, query.FormatFileList, false)

	results, err := f.Run(context.Background(), intent)
	require.NoError(t, err)

	assert.Equal(t, []string{"src/widget.go"}, results)
}

func TestRunSingleResult(t *testing.T) {
	runner := &stubRunner{
		content: []string{
			"c.go:1:1:bar",
			"a.go:1:1:bar",
			"b.go:1:1:bar",
		},
	}

	f := New(runner, nil, nil, nil)
	intent := mustIntent(t, "bar", query.ModeUsage, query.FormatFileList, true)

	results, err := f.Run(context.Background(), intent)
	require.NoError(t, err)

	// Lexicographically first after sorting, not first discovered
	assert.Equal(t, []string{"a.go"}, results)
}

func TestRunBackendError(t *testing.T) {
	runner := &stubRunner{err: errors.New("rg failed: regex parse error")}

	f := New(runner, nil, nil, nil)
	intent := mustIntent(t, "bar", query.ModeUsage, query.FormatQuickfix, false)

	_, err := f.Run(context.Background(), intent)
	assert.ErrorContains(t, err, "regex parse error")
}

func TestRunNoMatches(t *testing.T) {
	f := New(&stubRunner{}, nil, nil, nil)
	intent := mustIntent(t, "bar", query.ModeUsage, query.FormatQuickfix, false)

	results, err := f.Run(context.Background(), intent)
	require.NoError(t, err)
	assert.Empty(t, results)
}
