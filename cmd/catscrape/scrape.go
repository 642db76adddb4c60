package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/fwojciec/catscrape"
	"github.com/fwojciec/catscrape/fs"
	cathttp "github.com/fwojciec/catscrape/http"
	"github.com/fwojciec/catscrape/scrape"
	catslog "github.com/fwojciec/catscrape/slog"
)

// Run executes the scrape command: consult the department listing once,
// fetch every catalog page concurrently, and write the resulting dataset.
func (c *ScrapeCmd) Run(deps *Dependencies) error {
	fetcher := deps.Fetcher
	if fetcher == nil {
		fetcher = catslog.NewLoggingFetcher(
			cathttp.NewFetcher(cathttp.WithTimeout(c.Timeout)),
			deps.Logger,
		)
	}

	departmentService := deps.Departments
	if departmentService == nil {
		departmentService = catslog.NewLoggingDepartmentService(
			cathttp.NewDepartmentService(nil, c.BaseURL, c.DeptCatalog, c.DeptNav),
			deps.Logger,
		)
	}

	// The department mapping is best-effort context for diagnostics; a
	// failure here must not stop the run.
	departments, err := departmentService.Departments(deps.Ctx)
	if err != nil {
		deps.Logger.Warn("department lookup failed", "err", err)
		departments = map[string]string{}
	}

	scraper := &scrape.Scraper{
		Fetcher:     fetcher,
		RateLimiter: scrape.NewHostLimiter(c.RPS),
		Concurrency: c.Concurrency,
	}

	cfg := scrape.Config{
		BaseURL: c.BaseURL,
		Catalog: c.Catalog,
		Nav:     c.Nav,
		Pages:   c.Pages,
	}

	result, err := scraper.Run(deps.Ctx, cfg, func(event scrape.ProgressEvent) {
		switch event.Type {
		case scrape.ProgressStarted:
			fmt.Fprintf(deps.Stderr, "Fetching %d pages...\n", event.Total)
		case scrape.ProgressCompleted:
			fmt.Fprintf(deps.Stderr, "[%d/%d] page %d: %d courses\n",
				event.Completed, event.Total, event.Page, event.Courses)
		case scrape.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "[%d/%d] page %d FAILED: %v\n",
				event.Completed, event.Total, event.Page, event.Error)
		}
	})
	if err != nil {
		return err
	}

	logDiagnostics(deps.Logger, result.Diagnostics, departments)

	if c.Raw != "" {
		if err := fs.WriteRawCatalog(c.Raw, result.Raw); err != nil {
			return fmt.Errorf("write raw catalog: %w", err)
		}
		fmt.Fprintf(deps.Stdout, "Wrote %d raw courses to %s\n", len(result.Raw), c.Raw)
	}

	if err := fs.WriteCatalog(c.Output, result.Courses); err != nil {
		return fmt.Errorf("write catalog: %w", err)
	}

	fmt.Fprintf(deps.Stdout, "Saved %d courses to %s", len(result.Courses), c.Output)
	if result.Failed > 0 {
		fmt.Fprintf(deps.Stdout, " (%d of %d pages failed)", result.Failed, result.Pages)
	}
	fmt.Fprintln(deps.Stdout)

	return nil
}

// logDiagnostics surfaces every non-fatal warning from the run, annotated
// with the department display name when the mapping knows the course's
// department code.
func logDiagnostics(logger *slog.Logger, diags []catscrape.Diagnostic, departments map[string]string) {
	for _, d := range diags {
		attrs := []any{"detail", d.String()}
		if code, _, _ := strings.Cut(d.Course, " "); code != "" {
			if name, ok := departments[code]; ok {
				attrs = append(attrs, "department", name)
			}
		}
		logger.Warn("diagnostic", attrs...)
	}
}
