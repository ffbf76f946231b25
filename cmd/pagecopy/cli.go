package main

import (
	"context"
	"io"
	"time"

	"github.com/fwojciec/pagecopy"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdout  io.Writer
	Stderr  io.Writer
	Actions pagecopy.ActionRegistry
	Runner  pagecopy.Runner
}

// Text extraction engines for the article command.
const (
	EngineHeuristic   = "heuristic"
	EngineTrafilatura = "trafilatura"
	EngineReadability = "readability"
)

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Render  bool          `short:"r" env:"PAGECOPY_RENDER" help:"Render web pages in a headless browser"`
	Timeout time.Duration `short:"t" default:"10s" env:"PAGECOPY_TIMEOUT" help:"Time limit for loading a document"`
	Print   bool          `short:"p" xor:"sink" help:"Print the payload to stdout instead of the clipboard"`
	Output  string        `short:"o" xor:"sink" type:"path" help:"Write the payload to a file instead of the clipboard"`
	Verbose bool          `short:"v" help:"Log progress to stderr"`

	Article  ArticleCmd  `cmd:"" help:"Copy the main text of a page"`
	Keywords KeywordsCmd `cmd:"" help:"Copy a keyword results table as CSV"`
	Actions  ActionsCmd  `cmd:"" help:"List available actions"`
}

// ArticleCmd is the "article" subcommand.
type ArticleCmd struct {
	Target string `arg:"" help:"URL, file path, or - for stdin"`
	Engine string `short:"e" default:"heuristic" enum:"heuristic,trafilatura,readability" env:"PAGECOPY_ENGINE" help:"Main content engine (${enum})"`
	Format string `short:"f" default:"text" enum:"text,markdown" help:"Payload format (${enum})"`
}

// KeywordsCmd is the "keywords" subcommand.
type KeywordsCmd struct {
	Target string `arg:"" help:"URL, file path, or - for stdin"`
}

// ActionsCmd is the "actions" subcommand.
type ActionsCmd struct{}
