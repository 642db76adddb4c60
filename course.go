package catscrape

import (
	"context"
	"strconv"
)

// RawCourse is one course entry as captured from a catalog page, before
// header parsing and block classification. Blocks hold the text segments
// that follow the course header in document order; blocks[0], when present,
// is the course description.
type RawCourse struct {
	Identifier int      `json:"identifier"`
	Section    string   `json:"section"`
	Header     string   `json:"header"`
	Blocks     []string `json:"blocks"`
}

// Validate returns an error if the raw course contains invalid fields.
func (c *RawCourse) Validate() error {
	if c.Identifier <= 0 {
		return Errorf(EINVALID, "course identifier required")
	}
	if c.Header == "" {
		return Errorf(EINVALID, "course header required")
	}
	return nil
}

// Course is the fully structured form of a catalog entry. It is derived
// deterministically from a RawCourse and never mutated afterwards.
type Course struct {
	Identifier         int    `json:"identifier"`
	Section            string `json:"section"`
	Level              int    `json:"level"`
	Title              string `json:"title"`
	Code               string `json:"code"`
	Description        string `json:"description"`
	UnitRange          string `json:"unit_range"`
	Prerequisites      string `json:"prerequisites,omitempty"`
	GradCreditEligible bool   `json:"grad_credit_eligible"`
	AvailableOnline    bool   `json:"available_online"`
	RequiresConsent    bool   `json:"requires_consent"`
	TypicalOffering    string `json:"typical_offering,omitempty"`
}

// Validate returns an error if the course contains invalid fields.
func (c *Course) Validate() error {
	if c.Identifier <= 0 {
		return Errorf(EINVALID, "course identifier required")
	}
	if c.Code == "" {
		return Errorf(EINVALID, "course code required")
	}
	return nil
}

// Catalog collects structured courses keyed by their decimal identifier,
// matching the shape of the JSON artifact. Insertion order is irrelevant;
// the last writer for a duplicate identifier wins.
type Catalog map[string]*Course

// Add inserts c, replacing any existing course with the same identifier.
func (cat Catalog) Add(c *Course) {
	cat[strconv.Itoa(c.Identifier)] = c
}

// RawCatalog collects raw courses keyed by their decimal identifier.
type RawCatalog map[string]*RawCourse

// Add inserts c, replacing any existing entry with the same identifier.
func (cat RawCatalog) Add(c *RawCourse) {
	cat[strconv.Itoa(c.Identifier)] = c
}

// Fetcher retrieves HTML from catalog URLs.
type Fetcher interface {
	// Fetch retrieves the document at url and returns its HTML.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)
}

// DepartmentService resolves department codes (e.g. "ACCT") to display
// names. The mapping comes from the catalog's department listing page,
// which is keyed by its own catalog/navigation identifier pair, separate
// from the course listing.
type DepartmentService interface {
	// Departments returns the code to display-name mapping.
	Departments(ctx context.Context) (map[string]string, error)
}
