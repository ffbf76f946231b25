package goquery

// DefaultContentSelectors locate the main content of a page, most specific
// first. The first selector with a match wins.
var DefaultContentSelectors = []string{
	".blog_content",
	"article",
	".post-content",
	".entry-content",
	".article-content",
	"main",
	`[role="main"]`,
}

// DefaultDenylist lists the page regions stripped from extracted content.
var DefaultDenylist = []string{
	"header",
	"footer",
	"nav",
	"sidebar",
	".sidebar",
	".comments",
	".social-share",
	".related-posts",
	".advertisement",
	".tags",
	".categories",
	".author-bio",
}

// KeywordColumns describe the keyword results table of an SEO keyword
// explorer: the keyword, its difficulty (KD) and search volume (SV).
// Fallbacks degrade from the deepest known markup to the bare cell.
var KeywordColumns = []ColumnSpec{
	{
		Name:  "Keyword",
		Index: 3,
		Fallbacks: []string{
			"div > a > div > span > span",
			"div > a > div > span",
			"div > a > span",
			"a > span",
			"span",
		},
	},
	{
		Name:      "KD",
		Index:     5,
		Fallbacks: []string{"div > div", "div"},
	},
	{
		Name:  "SV",
		Index: 6,
	},
}
