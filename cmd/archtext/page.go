package main

import (
	"fmt"
	"time"

	"github.com/Quintaneishon/archtext"
	"github.com/Quintaneishon/archtext/fs"
)

// Run executes the page command.
func (c *PageCmd) Run(deps *Dependencies) error {
	page, err := deps.Pages.Extract(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", archtext.ErrorMessage(err))
		return err
	}

	if c.Out == "" {
		fmt.Fprint(deps.Stdout, fs.FormatPage(page, time.Now().UTC()))
		return nil
	}

	path, err := fs.NewPageWriter(c.Out).SavePage(page)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}
	fmt.Fprintf(deps.Stdout, "Saved %q to %s (%d words)\n", page.Title, path, page.WordCount)

	return nil
}
