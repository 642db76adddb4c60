package goquery

import (
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/catscrape"
)

// CourseID extracts the numeric course identifier from the unexpanded cell.
// The cell links to the course preview page and carries the identifier in
// the href, e.g. <a href="preview_course_nopop.php?catoid=95&coid=594896">.
func CourseID(cell *goquery.Selection) (int, error) {
	href, ok := cell.Find("a").First().Attr("href")
	if !ok {
		return 0, catscrape.Errorf(catscrape.ENOTFOUND, "course link not found")
	}

	_, value, found := strings.Cut(href, "coid=")
	if !found {
		return 0, catscrape.Errorf(catscrape.EUNPROCESSABLE, "no coid in href %q", href)
	}
	if i := strings.IndexAny(value, "&#"); i >= 0 {
		value = value[:i]
	}

	id, err := strconv.Atoi(value)
	if err != nil {
		return 0, catscrape.Errorf(catscrape.EUNPROCESSABLE, "non-numeric coid in href %q", href)
	}
	return id, nil
}
