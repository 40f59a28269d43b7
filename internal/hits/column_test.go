package hits

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCorrectColumn(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		term     string
		reported int
		expected int
	}{
		{"term mid-line", "  let xyz = 1", "xyz", 99, 7},
		{"term at start", "xyz = 1", "xyz", 99, 1},
		{"reported column ignored when term found", "foo(xyz)", "xyz", 1, 5},
		{"fallback when term absent", "def fetch(url):", "missing", 11, 11},
		{"first occurrence wins", "xyz + xyz", "xyz", 7, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := Hit{Term: tt.term, Text: tt.text, Col: tt.reported}
			assert.Equal(t, tt.expected, CorrectColumn(h))
		})
	}
}
