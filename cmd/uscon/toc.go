package main

import (
	"fmt"

	"github.com/fwojciec/uscon"
)

// Run executes the toc command.
func (c *TocCmd) Run(deps *Dependencies) error {
	entries, err := deps.Entries.FindEntries(deps.Ctx, uscon.EntryFilter{SortBy: uscon.SortByPosition})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", uscon.ErrorMessage(err))
		return err
	}

	if len(entries) == 0 {
		fmt.Fprintln(deps.Stderr, "error: no entries stored. Run 'uscon build' first.")
		return uscon.Errorf(uscon.ENOTFOUND, "no entries stored")
	}

	toc := uscon.BuildTOC(&uscon.Corpus{Entries: entries})

	if toc.Preamble != nil {
		fmt.Fprintln(deps.Stdout, toc.Preamble.Title)
	}
	printGroups(deps, toc.Articles)
	printGroups(deps, toc.Amendments)

	return nil
}

func printGroups(deps *Dependencies, groups []uscon.TOCGroup) {
	for _, g := range groups {
		fmt.Fprintln(deps.Stdout, g.Title)
		for _, item := range g.Items {
			repealed := ""
			if item.Repealed {
				repealed = "  (repealed)"
			}
			fmt.Fprintf(deps.Stdout, "  %s%s\n", item.Title, repealed)
		}
	}
}
