package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/uscon"
	"github.com/fwojciec/uscon/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdout  io.Writer
	Stderr  io.Writer
	Logger  *slog.Logger
	DB      *sqlite.DB
	Entries uscon.EntryService
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Build  BuildCmd  `cmd:"" help:"Generate the static site from the canonical data file"`
	Serve  ServeCmd  `cmd:"" help:"Serve a generated site with the search API"`
	Search SearchCmd `cmd:"" help:"Search stored entries"`
	Toc    TocCmd    `cmd:"" help:"Print the table of contents of stored entries"`
	Export ExportCmd `cmd:"" help:"Print the markdown export of stored entries"`
}

// BuildCmd is the "build" subcommand.
type BuildCmd struct {
	Data     string `short:"d" default:"constitution.json" env:"USCON_DATA" help:"Canonical data file"`
	Out      string `short:"o" default:"site" env:"USCON_OUT" help:"Output directory"`
	BaseURL  string `name:"base-url" default:"http://localhost:8080/" help:"Public base URL for the sitemap"`
	Template string `short:"t" help:"Page template file (uses the built-in template when omitted)"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Dir  string `short:"D" default:"site" env:"USCON_OUT" help:"Generated site directory"`
	Addr string `short:"a" default:":8080" help:"Listen address"`
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Query     string `arg:"" optional:"" help:"Text query; all terms must match"`
	Part      string `short:"p" enum:",preamble,article,amendment" default:"" help:"Restrict to one part"`
	Article   int    `short:"A" help:"Restrict to one article number"`
	Amendment int    `short:"m" help:"Restrict to one amendment number"`
	Repealed  string `short:"r" enum:",true,false" default:"" help:"Restrict by repealed status"`
	Limit     int    `short:"n" help:"Limit the number of results"`
}

// TocCmd is the "toc" subcommand.
type TocCmd struct{}

// ExportCmd is the "export" subcommand.
type ExportCmd struct {
	Name string `default:"Constitution of the United States" help:"Document name for the export heading"`
}
