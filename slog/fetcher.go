// Package slog provides logging decorators for catscrape interfaces.
package slog

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/catscrape"
)

// Ensure LoggingFetcher implements catscrape.Fetcher.
var _ catscrape.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with logging. Each fetch is logged with its
// size, duration, and content checksum; the checksum makes catalog drift
// between runs visible in the logs.
type LoggingFetcher struct {
	next   catscrape.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next catscrape.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped Fetcher and logs the operation.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (html string, err error) {
	defer func(begin time.Time) {
		f.logger.Info("fetch",
			"url", url,
			"bytes", len(html),
			"checksum", checksum(html),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.Fetch(ctx, url)
}

// checksum returns the xxhash of content as a fixed-width hex string.
func checksum(content string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(content))
}
