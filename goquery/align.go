package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/catscrape"
)

// AlignedRow pairs one content row across the two renderings with the
// section label active at that point in the document.
type AlignedRow struct {
	// Expanded is the second cell of the expanded row, holding the course
	// header and description fragment.
	Expanded *goquery.Selection

	// Unexpanded is the second cell of the unexpanded row, holding the
	// course identifier link.
	Unexpanded *goquery.Selection

	// Section is the most recent section header text preceding this row.
	// Empty if no section header has been seen yet on the page.
	Section string
}

// AlignRows walks the <tr> sequences of the expanded and unexpanded course
// tables in lock-step and returns the content rows paired by position.
//
// Rows with a single cell are section headers: a bolded label inside updates
// the current section. Rows with two cells in both renderings are content
// rows. Any other cell count is skipped. The two sequences must be the same
// length — the renderings describe the same logical rows, and a length
// mismatch means that assumption no longer holds for the page.
func AlignRows(expanded, unexpanded *goquery.Selection) ([]AlignedRow, error) {
	expandedRows := expanded.Find("tr")
	unexpandedRows := unexpanded.Find("tr")
	if expandedRows.Length() != unexpandedRows.Length() {
		return nil, catscrape.Errorf(catscrape.EUNPROCESSABLE,
			"row count mismatch between renderings: expanded=%d unexpanded=%d",
			expandedRows.Length(), unexpandedRows.Length())
	}

	var rows []AlignedRow
	var section string
	for i := 0; i < expandedRows.Length(); i++ {
		expandedCells := expandedRows.Eq(i).Find("td")
		unexpandedCells := unexpandedRows.Eq(i).Find("td")

		if expandedCells.Length() != 2 || unexpandedCells.Length() != 2 {
			if expandedCells.Length() == 1 {
				label := strings.TrimSpace(expandedCells.Find("p strong").First().Text())
				if label != "" {
					section = label
				}
			}
			continue
		}

		rows = append(rows, AlignedRow{
			Expanded:   expandedCells.Eq(1),
			Unexpanded: unexpandedCells.Eq(1),
			Section:    section,
		})
	}

	return rows, nil
}
