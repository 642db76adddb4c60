// Package fs persists catalog runs as JSON artifacts on disk.
package fs

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/fwojciec/catscrape"
)

// WriteCatalog writes the processed catalog to path as indented JSON. The
// file is written once, at the end of a run; there is no incremental
// persistence.
func WriteCatalog(path string, catalog catscrape.Catalog) error {
	return writeJSON(path, catalog)
}

// WriteRawCatalog writes the intermediate raw catalog to path. Raw catalogs
// can be reprocessed into structured form later without refetching.
func WriteRawCatalog(path string, catalog catscrape.RawCatalog) error {
	return writeJSON(path, catalog)
}

// ReadRawCatalog loads a raw catalog previously written by WriteRawCatalog.
func ReadRawCatalog(path string) (catscrape.RawCatalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var catalog catscrape.RawCatalog
	if err := json.Unmarshal(data, &catalog); err != nil {
		return nil, catscrape.Errorf(catscrape.EINVALID, "failed to parse raw catalog %s: %v", path, err)
	}
	return catalog, nil
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	return os.WriteFile(path, data, 0644)
}
