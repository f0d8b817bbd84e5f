package main

import (
	"fmt"

	"github.com/Quintaneishon/archtext"
	"github.com/Quintaneishon/archtext/crawl"
)

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	periods, err := c.periods()
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", archtext.ErrorMessage(err))
		return err
	}

	var tokens int
	progress := func(event crawl.ProgressEvent) {
		switch event.Type {
		case crawl.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "Extracting %d months\n", event.Total)
		case crawl.ProgressCompleted:
			r := event.Result
			fmt.Fprintf(deps.Stdout, "  [%d/%d] %s %d: %d articles, %d words\n",
				event.Completed, event.Total, event.Period.MonthName(), event.Period.Year, r.Records, r.WordCount)
			if deps.Tokens != nil {
				n, err := deps.Tokens.CountTokens(deps.Ctx, r.Content)
				if err != nil {
					fmt.Fprintf(deps.Stderr, "  count tokens %s: %s\n", event.Period, archtext.ErrorMessage(err))
					return
				}
				tokens += n
			}
		case crawl.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "  [%d/%d] skip %s: %s\n",
				event.Completed, event.Total, event.Period, event.Result.Error)
		case crawl.ProgressFinished:
			// Summary printed after the run completes
		}
	}

	summary, err := deps.Runner.Run(deps.Ctx, periods, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error extracting: %v\n", err)
		return err
	}

	fmt.Fprintf(deps.Stdout, "Processed %d months: %d succeeded, %d failed (%.1f%% success)\n",
		summary.Processed, summary.Succeeded, summary.Failed, summary.SuccessRate())
	fmt.Fprintf(deps.Stdout, "  %d articles, %d words", summary.Records, summary.Words)
	if deps.Tokens != nil {
		fmt.Fprintf(deps.Stdout, ", %d tokens", tokens)
	}
	fmt.Fprintln(deps.Stdout)

	return nil
}

func (c *ExtractCmd) periods() ([]archtext.Period, error) {
	from, err := archtext.ParsePeriod(c.From)
	if err != nil {
		return nil, err
	}
	to, err := archtext.ParsePeriod(c.To)
	if err != nil {
		return nil, err
	}
	if to.Before(from) {
		return nil, archtext.Errorf(archtext.EINVALID, "--to %s is before --from %s", to, from)
	}
	return archtext.PeriodRange(from, to), nil
}
