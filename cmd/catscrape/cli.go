package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/catscrape"
)

// Dependencies holds shared services and configuration for command
// execution. Fetcher and Departments are constructed by the commands from
// their flags when left nil; tests inject mocks here.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger

	Fetcher     catscrape.Fetcher
	Departments catscrape.DepartmentService
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Enable debug logging"`

	Scrape    ScrapeCmd    `cmd:"" help:"Fetch the catalog and write the course dataset"`
	Reprocess ReprocessCmd `cmd:"" help:"Rebuild the course dataset from a raw catalog file"`
}

// ScrapeCmd is the "scrape" subcommand.
type ScrapeCmd struct {
	Output      string        `short:"o" default:"data/catalog.json" help:"Output path for the processed catalog"`
	Raw         string        `help:"Also write the raw catalog to this path"`
	BaseURL     string        `default:"https://catalog.fullerton.edu" help:"Catalog host"`
	Catalog     int           `default:"95" help:"Catalog identifier (catoid)"`
	Nav         int           `default:"14518" help:"Navigation identifier (navoid)"`
	Pages       int           `default:"39" help:"Number of listing pages"`
	DeptCatalog int           `name:"dept-catalog" default:"91" help:"Department listing catalog identifier"`
	DeptNav     int           `name:"dept-nav" default:"13399" help:"Department listing navigation identifier"`
	Concurrency int           `short:"c" default:"4" help:"Concurrent page limit"`
	RPS         float64       `default:"2" help:"Max requests per second per host"`
	Timeout     time.Duration `short:"t" default:"30s" help:"Fetch timeout per request"`
}

// ReprocessCmd is the "reprocess" subcommand.
type ReprocessCmd struct {
	Input  string `arg:"" help:"Raw catalog file written by scrape --raw"`
	Output string `short:"o" default:"data/catalog.json" help:"Output path for the processed catalog"`
}
