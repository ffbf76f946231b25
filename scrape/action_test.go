package scrape_test

import (
	"errors"
	"testing"

	"github.com/fwojciec/pagecopy"
	"github.com/fwojciec/pagecopy/goquery"
	"github.com/fwojciec/pagecopy/mock"
	"github.com/fwojciec/pagecopy/scrape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArticleAction_Perform(t *testing.T) {
	t.Parallel()

	t.Run("copies plain text by default", func(t *testing.T) {
		t.Parallel()

		action := &scrape.ArticleAction{Extractor: goquery.NewContentExtractor()}

		payload, err := action.Perform(`<html><body><article><p>Hello</p><nav>Menu</nav></article></body></html>`)

		require.NoError(t, err)
		assert.Equal(t, "article", action.Name())
		assert.Equal(t, "Hello", payload.Text)
		assert.Equal(t, pagecopy.FormatText, payload.Format)
		assert.Equal(t, 1, payload.Count)
	})

	t.Run("converts cleaned HTML when a converter is set", func(t *testing.T) {
		t.Parallel()

		var convertedHTML string
		action := &scrape.ArticleAction{
			Extractor: &mock.TextExtractor{
				ExtractTextFn: func(string) (*pagecopy.Article, error) {
					return &pagecopy.Article{Text: "Title", HTML: "<h1>Title</h1>"}, nil
				},
			},
			Converter: &mock.Converter{
				ConvertFn: func(html string) (string, error) {
					convertedHTML = html
					return "# Title", nil
				},
			},
		}

		payload, err := action.Perform("<html></html>")

		require.NoError(t, err)
		assert.Equal(t, "<h1>Title</h1>", convertedHTML)
		assert.Equal(t, "# Title", payload.Text)
		assert.Equal(t, pagecopy.FormatMarkdown, payload.Format)
	})

	t.Run("propagates extractor errors", func(t *testing.T) {
		t.Parallel()

		action := &scrape.ArticleAction{Extractor: goquery.NewContentExtractor()}

		_, err := action.Perform(`<html><body><div>nothing</div></body></html>`)

		require.Error(t, err)
		assert.Equal(t, pagecopy.ENOCONTENT, pagecopy.ErrorCode(err))
	})

	t.Run("propagates converter errors", func(t *testing.T) {
		t.Parallel()

		action := &scrape.ArticleAction{
			Extractor: &mock.TextExtractor{
				ExtractTextFn: func(string) (*pagecopy.Article, error) {
					return &pagecopy.Article{Text: "x", HTML: "<p>x</p>"}, nil
				},
			},
			Converter: &mock.Converter{
				ConvertFn: func(string) (string, error) {
					return "", errors.New("converter exploded")
				},
			},
		}

		_, err := action.Perform("<html></html>")

		require.Error(t, err)
		assert.Equal(t, "converter exploded", err.Error())
	})
}

func TestTableAction_Perform(t *testing.T) {
	t.Parallel()

	t.Run("formats records as CSV", func(t *testing.T) {
		t.Parallel()

		action := &scrape.TableAction{
			Extractor: &mock.TableExtractor{
				ExtractTableFn: func(string) (*pagecopy.Table, error) {
					return &pagecopy.Table{
						Columns: []string{"Keyword", "KD", "SV"},
						Records: []pagecopy.Record{
							{"Keyword": "a,b", "KD": "1", "SV": "10"},
							{"Keyword": "c", "KD": "2", "SV": "20"},
						},
					}, nil
				},
			},
		}

		payload, err := action.Perform("<html></html>")

		require.NoError(t, err)
		assert.Equal(t, "keywords", action.Name())
		assert.Equal(t, "Keyword,KD,SV\n\"a,b\",1,10\nc,2,20", payload.Text)
		assert.Equal(t, pagecopy.FormatCSV, payload.Format)
		assert.Equal(t, 2, payload.Count)
	})

	t.Run("propagates table errors", func(t *testing.T) {
		t.Parallel()

		action := &scrape.TableAction{Extractor: goquery.NewTableExtractor()}

		_, err := action.Perform(`<html><body><table><tbody></tbody></table></body></html>`)

		require.Error(t, err)
		assert.Equal(t, pagecopy.ENOROWS, pagecopy.ErrorCode(err))
	})
}
