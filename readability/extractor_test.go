package readability_test

import (
	"net/url"
	"testing"

	"github.com/fwojciec/pagecopy"
	"github.com/fwojciec/pagecopy/readability"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractor_RejectsEmptyInput(t *testing.T) {
	t.Parallel()

	_, err := readability.NewExtractor().ExtractText("")

	require.Error(t, err)
	assert.Equal(t, pagecopy.EINVALID, pagecopy.ErrorCode(err))
}

func TestExtractor_ExtractsTitle(t *testing.T) {
	t.Parallel()

	html := `<!DOCTYPE html>
<html>
<head><title>Page Title</title></head>
<body><article><p>Content</p></article></body>
</html>`

	result, err := readability.NewExtractor().ExtractText(html)

	require.NoError(t, err)
	assert.Equal(t, "Page Title", result.Title)
}

func TestExtractor_ExtractsArticleText(t *testing.T) {
	t.Parallel()

	html := `<!DOCTYPE html>
<html>
<head><title>Post</title></head>
<body>
<nav><a href="/home">Home Nav Link</a><a href="/about">About Nav Link</a></nav>
<article>
<h1>Reader View</h1>
<p>This is the important article paragraph text, long enough for the reader view to keep it as the main content of the page.</p>
<p>A second paragraph adds more substance so the scoring favours the article over the surrounding chrome.</p>
</article>
<footer>Footer copyright text</footer>
</body>
</html>`

	result, err := readability.NewExtractor().ExtractText(html)

	require.NoError(t, err)
	assert.Contains(t, result.Text, "important article paragraph text")
	assert.Contains(t, result.HTML, "<p")
	assert.NotContains(t, result.Text, "Home Nav Link")
	assert.NotContains(t, result.Text, "Footer copyright text")
	assert.Equal(t, pagecopy.NormalizeWhitespace(result.Text), result.Text)
}

func TestExtractor_ResolvesLinksAgainstPageURL(t *testing.T) {
	t.Parallel()

	html := `<!DOCTYPE html>
<html>
<head><title>Guide</title></head>
<body>
<article>
<p>The reader view keeps the body of this guide, which is long enough to score as the main content of the page.</p>
<p>Continue with the <a href="/docs/intro">introduction</a> once the setup steps above are complete and the tool is installed.</p>
</article>
</body>
</html>`
	pageURL, err := url.Parse("https://example.com/guide")
	require.NoError(t, err)

	result, err := readability.NewExtractor(readability.WithPageURL(pageURL)).ExtractText(html)

	require.NoError(t, err)
	assert.Contains(t, result.HTML, `href="https://example.com/docs/intro"`)
}
