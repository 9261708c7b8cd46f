package validation_test

import (
	"strings"
	"testing"

	"careers-api/pkg/validation"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeStripsTags(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"script tag", "<script>alert(1)</script>John", "alert(1)John"},
		{"self-closing tag", "Jane<br/>Doe", "JaneDoe"},
		{"tag with attributes", `<a href="https://evil.com">click</a>`, "click"},
		{"angle brackets without close survive", "a < b", "a < b"},
		{"empty tag", "<>text", "text"},
		{"plain text untouched", "Ordinary Name", "Ordinary Name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, validation.Sanitize(tt.input, 200))
		})
	}
}

func TestSanitizeTrimsWhitespace(t *testing.T) {
	assert.Equal(t, "John", validation.Sanitize("  John  ", 200))
}

func TestSanitizeTruncation(t *testing.T) {
	t.Run("exactly at maximum is unmodified", func(t *testing.T) {
		input := strings.Repeat("a", 1000)
		assert.Equal(t, input, validation.Sanitize(input, validation.MaxCoverLetterLen))
	})

	t.Run("one over maximum is truncated, never rejected", func(t *testing.T) {
		input := strings.Repeat("a", 1001)
		got := validation.Sanitize(input, validation.MaxCoverLetterLen)
		assert.Len(t, got, 1000)
	})

	t.Run("truncation counts runes, not bytes", func(t *testing.T) {
		input := strings.Repeat("é", 10)
		got := validation.Sanitize(input, 5)
		assert.Equal(t, strings.Repeat("é", 5), got)
	})
}

func TestSanitizeOrder(t *testing.T) {
	// Tags are stripped before truncation: a tag pushing the raw input over
	// the limit must not eat into the kept text.
	input := "<b>" + strings.Repeat("x", 10)
	assert.Equal(t, strings.Repeat("x", 10), validation.Sanitize(input, 10))
}
