package main

import (
	"fmt"

	"github.com/fwojciec/uscon"
	"github.com/fwojciec/uscon/htmltomarkdown"
)

// Run executes the export command.
func (c *ExportCmd) Run(deps *Dependencies) error {
	entries, err := deps.Entries.FindEntries(deps.Ctx, uscon.EntryFilter{SortBy: uscon.SortByPosition})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", uscon.ErrorMessage(err))
		return err
	}

	if len(entries) == 0 {
		fmt.Fprintln(deps.Stderr, "error: no entries stored. Run 'uscon build' first.")
		return uscon.Errorf(uscon.ENOTFOUND, "no entries stored")
	}

	md, err := htmltomarkdown.NewExporter().Export(&uscon.Corpus{Name: c.Name, Entries: entries})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", uscon.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, md)
	return nil
}
