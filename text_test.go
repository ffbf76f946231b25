package pagecopy_test

import (
	"testing"

	"github.com/fwojciec/pagecopy"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeWhitespace(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "collapses newlines and spaces into a blank line", input: "a\n\n\n   b", want: "a\n\nb"},
		{name: "keeps single spaces", input: "hello world", want: "hello world"},
		{name: "keeps single newlines", input: "a\nb", want: "a\nb"},
		{name: "collapses double spaces", input: "a  b", want: "a\n\nb"},
		{name: "collapses tabs", input: "a\t\tb", want: "a\n\nb"},
		{name: "collapses non-breaking spaces", input: "a\u00a0\u00a0b", want: "a\n\nb"},
		{name: "trims leading and trailing whitespace", input: "\n\t  text \n", want: "text"},
		{name: "returns empty for whitespace only", input: " \n\t ", want: ""},
		{name: "returns empty for empty input", input: "", want: ""},
		{name: "collapses vertical tabs", input: "a\v\vb", want: "a\n\nb"},
		{name: "collapses mixed unicode spaces", input: "a\u2003\u3000b", want: "a\n\nb"},
		{name: "trims a byte order mark", input: "\ufefftext", want: "text"},
		{name: "trims a single non-breaking space", input: "\u00a0text\u00a0", want: "text"},
		{name: "keeps next-line characters", input: "\u0085text", want: "\u0085text"},
		{name: "keeps repeated next-line characters", input: "a\u0085\u0085b", want: "a\u0085\u0085b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, pagecopy.NormalizeWhitespace(tt.input))
		})
	}
}

func TestNormalizeWhitespace_Idempotent(t *testing.T) {
	t.Parallel()

	once := pagecopy.NormalizeWhitespace("  Title\n\n\n\nFirst   para.\n \n Second.  ")
	twice := pagecopy.NormalizeWhitespace(once)

	assert.Equal(t, once, twice)
	assert.Equal(t, "Title\n\nFirst\n\npara.\n\nSecond.", once)
}

func TestTrimSpace(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "1,900", pagecopy.TrimSpace("\ufeff 1,900\u00a0\n"))
	assert.Equal(t, "a  b", pagecopy.TrimSpace("\ta  b\v"))
	assert.Equal(t, "\u0085x", pagecopy.TrimSpace("\u0085x"))
}
