package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/Birds-of-Eden/faqdoc"
)

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	html, err := c.readSource(deps)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", err)
		return err
	}

	items, _ := deps.Extractor.ExtractFAQs(html)

	if c.Save {
		sourceURL := c.Source
		if !isRemote(sourceURL) {
			sourceURL = "file://" + sourceURL
		}

		extraction := &faqdoc.Extraction{
			SourceURL: sourceURL,
			Items:     items,
		}
		if meta, err := deps.Meta.ExtractMeta(html); err == nil {
			extraction.Title = meta.Title
		}

		switch err := deps.Extractions.CreateExtraction(deps.Ctx, extraction); {
		case err == nil:
			fmt.Fprintf(deps.Stderr, "Saved extraction %s (%d items)\n", extraction.ID, len(items))
		case faqdoc.ErrorCode(err) == faqdoc.ECONFLICT:
			fmt.Fprintf(deps.Stderr, "Unchanged since last saved extraction, not stored again\n")
		default:
			fmt.Fprintf(deps.Stderr, "error: %s\n", faqdoc.ErrorMessage(err))
			return err
		}
	}

	if c.Items {
		return printJSON(deps.Stdout, items)
	}

	schema := faqdoc.NewFAQPage(items)
	if schema == nil {
		fmt.Fprintf(deps.Stdout, "No eligible FAQ set found (%d items, %d required)\n",
			len(items), faqdoc.MinSchemaItems)
		return nil
	}

	return printJSON(deps.Stdout, schema)
}

// readSource loads HTML from a URL, a local file, or stdin.
func (c *ExtractCmd) readSource(deps *Dependencies) (string, error) {
	switch {
	case isRemote(c.Source):
		return deps.Fetcher.Fetch(deps.Ctx, c.Source)
	case c.Source == "-":
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	default:
		data, err := os.ReadFile(c.Source)
		if err != nil {
			return "", fmt.Errorf("reading %s: %w", c.Source, err)
		}
		return string(data), nil
	}
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
