package goquery

import (
	"fmt"
	"strings"

	"github.com/fwojciec/catscrape"
)

// ExtractRawCourses runs the record-extraction engine over one page: it
// locates the course table in both renderings, aligns their rows, extracts
// each content row's identifier, and segments the expanded fragment into
// text blocks. String fields are normalized on the way out; normalization
// diagnostics are returned alongside the records.
//
// Any structural failure (missing table, row mismatch, bad identifier,
// missing header or separator) is fatal for the whole page.
func ExtractRawCourses(expandedHTML, unexpandedHTML string) ([]*catscrape.RawCourse, []catscrape.Diagnostic, error) {
	expandedTable, err := CourseTable(expandedHTML)
	if err != nil {
		return nil, nil, fmt.Errorf("expanded rendering: %w", err)
	}
	unexpandedTable, err := CourseTable(unexpandedHTML)
	if err != nil {
		return nil, nil, fmt.Errorf("unexpanded rendering: %w", err)
	}

	rows, err := AlignRows(expandedTable, unexpandedTable)
	if err != nil {
		return nil, nil, err
	}

	var courses []*catscrape.RawCourse
	var diags []catscrape.Diagnostic

	normalize := func(s string) string {
		out, d := catscrape.Normalize(s)
		diags = append(diags, d...)
		return out
	}

	for _, row := range rows {
		id, err := CourseID(row.Unexpanded)
		if err != nil {
			return nil, nil, err
		}

		blocks, err := SegmentBlocks(row.Expanded)
		if err != nil {
			return nil, nil, fmt.Errorf("course %d: %w", id, err)
		}
		for i, block := range blocks {
			blocks[i] = normalize(block)
		}

		header := normalize(strings.TrimSpace(row.Expanded.Find("h3").First().Text()))

		courses = append(courses, &catscrape.RawCourse{
			Identifier: id,
			Section:    normalize(row.Section),
			Header:     header,
			Blocks:     blocks,
		})
	}

	return courses, diags, nil
}
