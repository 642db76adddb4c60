// Package scrape orchestrates concurrent retrieval and extraction of
// catalog pages. Each page is fetched in both renderings, aligned, and
// distilled into structured courses; per-page failures are collected
// without aborting sibling pages.
package scrape

import (
	"context"
	"fmt"
	"net/url"

	"github.com/fwojciec/catscrape"
	"github.com/fwojciec/catscrape/goquery"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the worker-pool size used when none is configured.
const DefaultConcurrency = 4

// Config identifies one catalog run. The catalog and navigation identifiers
// come from the catalog's course description URL; the page count is a fixed
// bound supplied by the caller, not discovered.
type Config struct {
	// BaseURL is the catalog host, e.g. "https://catalog.fullerton.edu".
	BaseURL string

	// Catalog is the catoid query parameter.
	Catalog int

	// Nav is the navoid query parameter.
	Nav int

	// Pages is the number of listing pages, numbered from 1.
	Pages int
}

// Validate returns an error if the config is incomplete.
func (c Config) Validate() error {
	if c.BaseURL == "" {
		return catscrape.Errorf(catscrape.EINVALID, "base URL required")
	}
	if c.Catalog <= 0 {
		return catscrape.Errorf(catscrape.EINVALID, "catalog identifier required")
	}
	if c.Nav <= 0 {
		return catscrape.Errorf(catscrape.EINVALID, "navigation identifier required")
	}
	if c.Pages <= 0 {
		return catscrape.Errorf(catscrape.EINVALID, "page count required")
	}
	return nil
}

// PageURL renders the templated catalog request for one page. The expanded
// flag selects the rendering that carries full course text; without it the
// page carries only the compact identifier links.
func (c Config) PageURL(page int, expanded bool) string {
	expand := ""
	if expanded {
		expand = "&expand=1"
	}
	return fmt.Sprintf(
		"%s/content.php?catoid=%d&navoid=%d&filter[27]=-1&filter[29]=&filter[keyword]=&filter[32]=1&filter[cpage]=%d&filter[exact_match]=1&filter[item_type]=3&filter[only_active]=1&filter[3]=1%s&print",
		c.BaseURL, c.Catalog, c.Nav, page, expand,
	)
}

// PageError records a fatal failure for a single page.
type PageError struct {
	Page int
	Err  error
}

// Error implements the error interface.
func (e *PageError) Error() string { return fmt.Sprintf("page %d: %v", e.Page, e.Err) }

// Unwrap returns the underlying cause.
func (e *PageError) Unwrap() error { return e.Err }

// ProgressType indicates the type of progress event.
type ProgressType int

// Progress event types.
const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressEvent reports progress during a catalog run.
type ProgressEvent struct {
	Type      ProgressType
	Page      int
	Completed int
	Total     int
	Courses   int
	Error     error
}

// ProgressFunc is a callback for reporting run progress.
type ProgressFunc func(event ProgressEvent)

// Result holds the outcome of a full catalog run.
type Result struct {
	// Courses is the merged structured catalog, keyed by identifier.
	Courses catscrape.Catalog

	// Raw is the merged raw catalog, keyed by identifier.
	Raw catscrape.RawCatalog

	// Failures lists pages that could not be processed and were excluded.
	Failures []*PageError

	// Diagnostics collects non-fatal warnings from the whole run.
	Diagnostics []catscrape.Diagnostic

	// Pages is the number of pages attempted; Failed is how many of them
	// were excluded.
	Pages  int
	Failed int
}

// pageResult holds the outcome of processing a single page.
type pageResult struct {
	page    int
	raw     []*catscrape.RawCourse
	courses []*catscrape.Course
	diags   []catscrape.Diagnostic
	err     error
}

// Scraper coordinates page fetching and record extraction.
type Scraper struct {
	Fetcher     catscrape.Fetcher
	RateLimiter *HostLimiter
	Concurrency int
}

// Run fetches every configured page concurrently and merges the extracted
// courses into a single catalog. Pages are independent: a failure excludes
// that page's rows and is recorded in the result, nothing more. Duplicate
// identifiers across pages resolve last-write-wins. Run returns an error
// only when the run produced no courses at all.
func (s *Scraper) Run(ctx context.Context, cfg Config, progress ProgressFunc) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	concurrency := s.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	resultCh := make(chan pageResult, cfg.Pages)

	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: cfg.Pages})
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for page := 1; page <= cfg.Pages; page++ {
			page := page
			g.Go(func() error {
				resultCh <- s.processPage(gctx, cfg, page)
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	result := &Result{
		Courses: make(catscrape.Catalog),
		Raw:     make(catscrape.RawCatalog),
		Pages:   cfg.Pages,
	}

	completed := 0
	for res := range resultCh {
		completed++

		if res.err != nil {
			result.Failed++
			result.Failures = append(result.Failures, &PageError{Page: res.page, Err: res.err})
			if progress != nil {
				progress(ProgressEvent{
					Type:      ProgressFailed,
					Page:      res.page,
					Completed: completed,
					Total:     cfg.Pages,
					Error:     res.err,
				})
			}
			continue
		}

		for _, raw := range res.raw {
			result.Raw.Add(raw)
		}
		for _, course := range res.courses {
			result.Courses.Add(course)
		}
		result.Diagnostics = append(result.Diagnostics, res.diags...)

		if progress != nil {
			progress(ProgressEvent{
				Type:      ProgressCompleted,
				Page:      res.page,
				Completed: completed,
				Total:     cfg.Pages,
				Courses:   len(res.courses),
			})
		}
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Completed: cfg.Pages, Total: cfg.Pages})
	}

	if len(result.Courses) == 0 {
		return result, catscrape.Errorf(catscrape.EINTERNAL,
			"run produced no courses (%d of %d pages failed)", result.Failed, result.Pages)
	}
	return result, nil
}

// processPage runs the fetch-parse-align-extract sequence for one page.
func (s *Scraper) processPage(ctx context.Context, cfg Config, page int) pageResult {
	res := pageResult{page: page}

	expandedHTML, err := s.fetch(ctx, cfg.PageURL(page, true))
	if err != nil {
		res.err = fmt.Errorf("fetch expanded rendering: %w", err)
		return res
	}
	unexpandedHTML, err := s.fetch(ctx, cfg.PageURL(page, false))
	if err != nil {
		res.err = fmt.Errorf("fetch unexpanded rendering: %w", err)
		return res
	}

	raw, diags, err := goquery.ExtractRawCourses(expandedHTML, unexpandedHTML)
	if err != nil {
		res.err = err
		return res
	}
	res.raw = raw
	res.diags = diags

	for _, rc := range raw {
		course, courseDiags, err := catscrape.Classify(rc)
		if err != nil {
			res.err = fmt.Errorf("course %d: %w", rc.Identifier, err)
			return res
		}
		res.diags = append(res.diags, courseDiags...)
		res.courses = append(res.courses, course)
	}

	return res
}

// fetch applies rate limiting, when configured, before delegating to the
// Fetcher.
func (s *Scraper) fetch(ctx context.Context, rawURL string) (string, error) {
	if s.RateLimiter != nil {
		if err := s.RateLimiter.Wait(ctx, hostOf(rawURL)); err != nil {
			return "", err
		}
	}
	return s.Fetcher.Fetch(ctx, rawURL)
}

// hostOf returns the host part of rawURL, or the raw string when it cannot
// be parsed, so limiting still applies.
func hostOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return rawURL
	}
	return u.Host
}
