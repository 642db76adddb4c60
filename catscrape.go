// Package catscrape extracts structured course records from an Acalog
// course catalog. The catalog publishes each page in two renderings: an
// expanded one carrying the full course text and an unexpanded one carrying
// a stable course identifier. Both renderings are fetched, aligned row by
// row, and distilled into a single JSON dataset.
//
// This package contains domain types, interfaces, and the pure parts of the
// extraction engine (header parsing, block classification, text
// normalization) following Ben Johnson's Standard Package Layout.
// Implementations live in subdirectories named after their primary
// dependency (e.g., goquery/, http/, fs/).
package catscrape
