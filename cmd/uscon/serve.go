package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/fwojciec/uscon"
	usconhttp "github.com/fwojciec/uscon/http"
	"github.com/fwojciec/uscon/mem"
	usconslog "github.com/fwojciec/uscon/slog"
)

// Run executes the serve command.
func (c *ServeCmd) Run(deps *Dependencies) error {
	idx, err := loadIndex(filepath.Join(c.Dir, uscon.SiteIndexFile))
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", uscon.ErrorMessage(err))
		fmt.Fprintf(deps.Stderr, "Hint: run 'uscon build' first to generate the site\n")
		return err
	}

	searcher := usconslog.NewLoggingSearcher(mem.NewSearcher(idx), deps.Logger)
	toc := uscon.BuildTOCFromIndex(idx)
	srv := usconhttp.NewServer(searcher, toc, c.Dir, deps.Logger)

	fmt.Fprintf(deps.Stdout, "Serving %s (%d entries) on %s\n", c.Dir, idx.Count, c.Addr)

	return http.ListenAndServe(c.Addr, srv)
}

// loadIndex reads a serialized search index from a generated site.
func loadIndex(path string) (*uscon.Index, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, uscon.Errorf(uscon.ENOTFOUND, "search index %q not found", path)
	}
	if err != nil {
		return nil, err
	}

	var idx uscon.Index
	if err := json.Unmarshal(data, &idx); err != nil {
		return nil, uscon.Errorf(uscon.EINVALID, "malformed search index %q: %v", path, err)
	}
	for _, rec := range idx.Records {
		if err := rec.Validate(); err != nil {
			return nil, uscon.Errorf(uscon.EINVALID, "search index %q: %s", path, uscon.ErrorMessage(err))
		}
	}
	return &idx, nil
}
