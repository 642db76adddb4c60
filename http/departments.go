package http

import (
	"context"
	"fmt"
	"net/http"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/catscrape"
)

// Ensure DepartmentService implements catscrape.DepartmentService.
var _ catscrape.DepartmentService = (*DepartmentService)(nil)

// departmentLine matches entries on the department listing page, e.g.
// "ACCT - Accounting" or "EGCP - Computer Engineering".
var departmentLine = regexp.MustCompile(`^([A-Z][A-Z&]{1,5})\s*-\s*(.+)$`)

// DepartmentService resolves department codes from the catalog's department
// listing page via HTTP. The page is addressed by its own catalog and
// navigation identifiers, separate from the course listing.
type DepartmentService struct {
	client  *http.Client
	baseURL string
	catalog int
	nav     int
}

// NewDepartmentService creates a new DepartmentService with the given HTTP
// client. If client is nil, http.DefaultClient is used.
func NewDepartmentService(client *http.Client, baseURL string, catalog, nav int) *DepartmentService {
	if client == nil {
		client = http.DefaultClient
	}
	return &DepartmentService{
		client:  client,
		baseURL: baseURL,
		catalog: catalog,
		nav:     nav,
	}
}

// Departments fetches the department listing page and returns the code to
// display-name mapping found on it.
func (s *DepartmentService) Departments(ctx context.Context) (map[string]string, error) {
	url := fmt.Sprintf("%s/content.php?catoid=%d&navoid=%d&print", s.baseURL, s.catalog, s.nav)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", UserAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d for %s", resp.StatusCode, url)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, catscrape.Errorf(catscrape.EINVALID, "failed to parse departments page: %v", err)
	}

	// The listing body is the block_content cell; fall back to the whole
	// document when the print layout omits it.
	content := doc.Find("td.block_content")
	if content.Length() == 0 {
		content = doc.Selection
	}

	departments := make(map[string]string)
	for _, line := range strings.Split(content.Text(), "\n") {
		matches := departmentLine.FindStringSubmatch(strings.TrimSpace(line))
		if matches == nil {
			continue
		}
		departments[matches[1]] = strings.TrimSpace(matches[2])
	}

	if len(departments) == 0 {
		return nil, catscrape.Errorf(catscrape.ENOTFOUND, "no departments found at %s", url)
	}
	return departments, nil
}
