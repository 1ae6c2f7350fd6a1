package main

import (
	"fmt"

	"github.com/Birds-of-Eden/faqdoc"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	filter := faqdoc.ExtractionFilter{Limit: c.Limit}
	if c.URL != "" {
		filter.SourceURL = &c.URL
	}

	extractions, err := deps.Extractions.FindExtractions(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", faqdoc.ErrorMessage(err))
		return err
	}

	if len(extractions) == 0 {
		fmt.Fprintln(deps.Stdout, "No extractions found. Use 'faqdoc extract --save' or 'faqdoc crawl' to create one.")
		return nil
	}

	for _, e := range extractions {
		fmt.Fprintf(deps.Stdout, "%s  %s  %2d items  %s\n",
			e.ID, e.CreatedAt.Format("2006-01-02 15:04"), len(e.Items), e.SourceURL)
	}

	return nil
}
