package query

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompileUsageIsEscapedLiteral(t *testing.T) {
	assert.Equal(t, "handleRequest", Compile(ModeUsage, "handleRequest"))
	assert.Equal(t, regexp.QuoteMeta("foo.bar"), Compile(ModeUsage, "foo.bar"))
	assert.Equal(t, regexp.QuoteMeta("a[0]+b"), Compile(ModeUsage, "a[0]+b"))
}

func TestCompileEscapesMetacharacters(t *testing.T) {
	// The compiled pattern must match the literal term and not text that
	// merely satisfies the metacharacter's regex meaning.
	re := regexp.MustCompile(Compile(ModeUsage, "foo.bar"))

	assert.True(t, re.MatchString("x := foo.bar()"))
	assert.False(t, re.MatchString("x := fooXbar()"))
}

func TestCompileDefinition(t *testing.T) {
	re := regexp.MustCompile(Compile(ModeDefinition, "fetch"))

	tests := []struct {
		line  string
		match bool
	}{
		{"def fetch(url):", true},
		{"  def fetch [T](url: String)", true},
		{"fn fetch(url: &str) {", true},
		{"function fetch (url) {", true},
		{"def fetch: Response", true},
		{"def fetcher(url):", false},
		{"def prefetch(url):", false},
		{"val fetch = 1", false},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			assert.Equal(t, tt.match, re.MatchString(tt.line))
		})
	}
}

func TestCompileClass(t *testing.T) {
	re := regexp.MustCompile(Compile(ModeClass, "Widget"))

	tests := []struct {
		line  string
		match bool
	}{
		{"class Widget(Base):", true},
		{"class Widget:", true},
		{"trait Widget {", true},
		{"object Widget", true},
		{"type Widget[T] = ...", true},
		{"struct Widget {", true},
		{"impl Widget {", true},
		{"enum Widget", true},
		{"class Widgets:", false},
		{"class NotWidget:", false},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			assert.Equal(t, tt.match, re.MatchString(tt.line))
		})
	}
}

func TestCompileImport(t *testing.T) {
	re := regexp.MustCompile(Compile(ModeImport, "Widget"))

	tests := []struct {
		line  string
		match bool
	}{
		{"import com.foo.Widget", true},
		{"import com.foo.{Widget, Gadget}", true},
		{"import com.foo.{Gadget, Widget}", true},
		{"use crate::ui::Widget;", true},
		{"from ui import Widget", false}, // no path separator before the term
		{"import com.foo.WidgetFactory", false},
		{"import com.foo.Gadget", false},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			assert.Equal(t, tt.match, re.MatchString(tt.line))
		})
	}
}

func TestCompileIsTotal(t *testing.T) {
	// Compilation never fails: any non-empty term yields a valid pattern
	// for every mode.
	terms := []string{"x", "foo.bar", `a\b`, "[", "(((", "a|b", "$^"}
	modes := []Mode{ModeDefinition, ModeClass, ModeImport, ModeUsage}

	for _, term := range terms {
		for _, mode := range modes {
			_, err := regexp.Compile(Compile(mode, term))
			assert.NoError(t, err, "mode %s term %q", mode, term)
		}
	}
}
