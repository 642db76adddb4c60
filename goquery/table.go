// Package goquery implements catalog HTML extraction using CSS selectors.
// It contains the record-extraction engine: course table lookup, lock-step
// alignment of the two page renderings, identifier extraction, and block
// segmentation.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/catscrape"
)

// CourseTable returns the course listing table from a catalog page. The
// course table is always the last "table_default" table in the document;
// earlier ones hold filter controls.
func CourseTable(html string) (*goquery.Selection, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, catscrape.Errorf(catscrape.EINVALID, "failed to parse HTML: %v", err)
	}

	tables := doc.Find("table.table_default")
	if tables.Length() == 0 {
		return nil, catscrape.Errorf(catscrape.ENOTFOUND, "course table not found")
	}
	return tables.Last(), nil
}
