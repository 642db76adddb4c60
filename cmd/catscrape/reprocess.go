package main

import (
	"fmt"

	"github.com/fwojciec/catscrape"
	"github.com/fwojciec/catscrape/fs"
)

// Run executes the reprocess command: load a raw catalog written by
// "scrape --raw" and rebuild the structured dataset from it, without
// touching the network. Records whose headers no longer parse are logged
// and excluded, mirroring the per-page isolation of a live run.
func (c *ReprocessCmd) Run(deps *Dependencies) error {
	raw, err := fs.ReadRawCatalog(c.Input)
	if err != nil {
		return fmt.Errorf("read raw catalog: %w", err)
	}

	catalog := make(catscrape.Catalog)
	var failed int

	for _, rc := range raw {
		course, diags, err := catscrape.Classify(rc)
		if err != nil {
			failed++
			deps.Logger.Error("classify course", "identifier", rc.Identifier, "err", err)
			continue
		}
		for _, d := range diags {
			deps.Logger.Warn("diagnostic", "detail", d.String())
		}
		catalog.Add(course)
	}

	if len(catalog) == 0 {
		return catscrape.Errorf(catscrape.EINTERNAL,
			"reprocess produced no courses (%d of %d records failed)", failed, len(raw))
	}

	if err := fs.WriteCatalog(c.Output, catalog); err != nil {
		return fmt.Errorf("write catalog: %w", err)
	}

	fmt.Fprintf(deps.Stdout, "Saved %d courses to %s", len(catalog), c.Output)
	if failed > 0 {
		fmt.Fprintf(deps.Stdout, " (%d records failed)", failed)
	}
	fmt.Fprintln(deps.Stdout)

	return nil
}
