package main

import (
	"fmt"

	"github.com/fwojciec/pagecopy/scrape"
)

// Run executes the article command.
func (c *ArticleCmd) Run(deps *Dependencies) error {
	return runAction(deps, scrape.ActionArticle, c.Target)
}

// Run executes the keywords command.
func (c *KeywordsCmd) Run(deps *Dependencies) error {
	return runAction(deps, scrape.ActionKeywords, c.Target)
}

// runAction runs one action and prints its status line, on stdout for a
// success and on stderr otherwise.
func runAction(deps *Dependencies, action, target string) error {
	report := deps.Runner.Run(deps.Ctx, action, target)
	if !report.OK() {
		fmt.Fprintln(deps.Stderr, report)
		return report.Err()
	}
	fmt.Fprintln(deps.Stdout, report)
	return nil
}

// Run executes the actions command.
func (c *ActionsCmd) Run(deps *Dependencies) error {
	for _, name := range deps.Actions.List() {
		fmt.Fprintln(deps.Stdout, name)
	}
	return nil
}
