package main

import (
	"fmt"
	"strconv"

	"github.com/fwojciec/uscon"
)

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	filter := uscon.EntryFilter{
		Query:  c.Query,
		Limit:  c.Limit,
		SortBy: uscon.SortByPosition,
	}
	if c.Part != "" {
		part := uscon.Part(c.Part)
		filter.Part = &part
	}
	if c.Article > 0 {
		filter.Article = &c.Article
	}
	if c.Amendment > 0 {
		filter.Amendment = &c.Amendment
	}
	if c.Repealed != "" {
		repealed := c.Repealed == "true"
		filter.Repealed = &repealed
	}

	entries, err := deps.Entries.FindEntries(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", uscon.ErrorMessage(err))
		return err
	}

	if len(entries) == 0 {
		fmt.Fprintln(deps.Stdout, "No entries matched. Run 'uscon build' to populate the index.")
		return nil
	}

	for _, e := range entries {
		repealed := ""
		if e.IsRepealed() {
			repealed = "  (repealed " + e.RepealedDate + ")"
		}
		fmt.Fprintf(deps.Stdout, "%s  %s%s\n", e.Title, e.ID, repealed)
	}
	fmt.Fprintf(deps.Stdout, "\n%s matched\n", pluralize(len(entries), "entry", "entries"))

	return nil
}

func pluralize(n int, singular, plural string) string {
	if n == 1 {
		return strconv.Itoa(n) + " " + singular
	}
	return strconv.Itoa(n) + " " + plural
}
