package main

import (
	"fmt"

	"github.com/Birds-of-Eden/faqdoc"
)

// Run executes the export command.
func (c *ExportCmd) Run(deps *Dependencies) error {
	extraction, err := deps.Extractions.FindExtractionByID(deps.Ctx, c.ID)
	if err != nil {
		if faqdoc.ErrorCode(err) == faqdoc.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: extraction %q not found. Use 'faqdoc list' to see stored extractions.\n", c.ID)
		} else {
			fmt.Fprintf(deps.Stderr, "error: %s\n", faqdoc.ErrorMessage(err))
		}
		return err
	}

	fmt.Fprint(deps.Stdout, faqdoc.FormatExtraction(extraction, deps.Converter))
	return nil
}
