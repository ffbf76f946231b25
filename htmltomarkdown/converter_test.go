package htmltomarkdown_test

import (
	"testing"

	"github.com/fwojciec/pagecopy"
	"github.com/fwojciec/pagecopy/htmltomarkdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConverter_Convert(t *testing.T) {
	t.Parallel()

	t.Run("converts a cleaned article", func(t *testing.T) {
		t.Parallel()

		html := `<article>
<h1>Scraping Tables</h1>
<p>Use <strong>ranked</strong> selectors and <code>goquery</code>.</p>
<ul><li>Keyword</li><li>KD</li></ul>
</article>`

		md, err := htmltomarkdown.NewConverter().Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "# Scraping Tables")
		assert.Contains(t, md, "**ranked**")
		assert.Contains(t, md, "`goquery`")
		assert.Contains(t, md, "- Keyword")
		assert.Contains(t, md, "- KD")
	})

	t.Run("converts tables", func(t *testing.T) {
		t.Parallel()

		html := `<table>
<thead><tr><th>Keyword</th><th>SV</th></tr></thead>
<tbody><tr><td>goquery</td><td>40</td></tr></tbody>
</table>`

		md, err := htmltomarkdown.NewConverter().Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "Keyword")
		assert.Contains(t, md, "goquery")
		assert.Contains(t, md, "|")
		assert.Contains(t, md, "---")
	})

	t.Run("trims surrounding whitespace", func(t *testing.T) {
		t.Parallel()

		md, err := htmltomarkdown.NewConverter().Convert("\n<p>Hello, world!</p>\n")

		require.NoError(t, err)
		assert.Equal(t, "Hello, world!", md)
	})

	t.Run("resolves relative links against the domain", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter(htmltomarkdown.WithDomain("https://example.com"))

		md, err := conv.Convert(`<p><a href="/blog/post">Post</a></p>`)

		require.NoError(t, err)
		assert.Contains(t, md, "[Post](https://example.com/blog/post)")
	})

	t.Run("returns error for empty input", func(t *testing.T) {
		t.Parallel()

		_, err := htmltomarkdown.NewConverter().Convert("   ")

		require.Error(t, err)
		assert.Equal(t, pagecopy.EINVALID, pagecopy.ErrorCode(err))
	})
}
