package main

import (
	"context"
	"io"
	"time"

	"github.com/Quintaneishon/archtext"
	"github.com/Quintaneishon/archtext/crawl"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdout  io.Writer
	Stderr  io.Writer
	Results archtext.ResultService
	Runner  *crawl.Runner
	Pages   *crawl.PageExtractor
	Tokens  archtext.TokenCounter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	DB      string `name:"db" env:"ARCHTEXT_DB" help:"Path of the SQLite result index"`
	Verbose bool   `short:"v" help:"Log fetches and saves to stderr"`

	Extract ExtractCmd `cmd:"" help:"Extract monthly archives into text files"`
	Page    PageCmd    `cmd:"" help:"Extract a single article page"`
	Results ResultsCmd `cmd:"" help:"List stored extraction results"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	From        string        `default:"2020-01" help:"First month to extract (YYYY-MM)"`
	To          string        `default:"2023-12" help:"Last month to extract (YYYY-MM)"`
	Out         string        `short:"o" default:"../data/text" help:"Directory for the text files"`
	Rate        float64       `default:"1" help:"Requests per second per host"`
	Timeout     time.Duration `default:"10s" help:"Timeout of a single fetch"`
	Concurrency int           `short:"c" default:"1" help:"Concurrent fetch limit"`
	Retries     int           `default:"0" help:"Retries after a failed fetch"`
	Browser     bool          `help:"Render pages in a headless browser"`
	Layout      string        `type:"path" help:"YAML file describing the archive site"`
	Tokens      bool          `help:"Report the Gemini token count of the extracted text"`
}

// PageCmd is the "page" subcommand.
type PageCmd struct {
	URL     string        `arg:"" help:"Article URL"`
	Engine  string        `short:"e" enum:"selectors,trafilatura,readability" default:"selectors" help:"Content extraction engine (${enum})"`
	Links   bool          `help:"Keep links in the converted text"`
	Out     string        `short:"o" help:"Directory to save the page in instead of printing it"`
	Timeout time.Duration `default:"10s" help:"Fetch timeout"`
	Browser bool          `help:"Render the page in a headless browser"`
}

// ResultsCmd is the "results" subcommand.
type ResultsCmd struct {
	Year   int  `help:"Only show results for this year"`
	Failed bool `help:"Only show failed extractions"`
	Limit  int  `short:"n" help:"Maximum number of results"`
}
