package main

import (
	"fmt"

	"github.com/Quintaneishon/archtext"
)

// Run executes the results command.
func (c *ResultsCmd) Run(deps *Dependencies) error {
	filter := archtext.ResultFilter{Limit: c.Limit}
	if c.Year != 0 {
		filter.Year = &c.Year
	}
	if c.Failed {
		filter.Failed = &c.Failed
	}

	results, err := deps.Results.FindResults(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", archtext.ErrorMessage(err))
		return err
	}

	if len(results) == 0 {
		fmt.Fprintln(deps.Stdout, "No results found. Use 'archtext extract' to create some.")
		return nil
	}

	for _, r := range results {
		if r.Failed() {
			fmt.Fprintf(deps.Stdout, "%s  error: %s\n", r.Period, r.Error)
			continue
		}
		fmt.Fprintf(deps.Stdout, "%s  %d articles  %d words  %s\n", r.Period, r.Records, r.WordCount, r.URL)
	}

	return nil
}
