package catscrape

import "fmt"

// DiagnosticKind identifies the class of a non-fatal observation.
type DiagnosticKind string

// Diagnostic kinds.
const (
	// DiagnosticUnclassifiedBlock marks a block that matched no
	// classification rule. The block is omitted from the structured
	// course but must be surfaced for inspection.
	DiagnosticUnclassifiedBlock DiagnosticKind = "unclassified_block"

	// DiagnosticUnknownRune marks a non-ASCII code point missing from the
	// normalization table. New code points in the catalog usually mean
	// the source data drifted.
	DiagnosticUnknownRune DiagnosticKind = "unknown_rune"
)

// Diagnostic is a structured warning produced during extraction. Diagnostics
// are collected, not raised: they never abort processing.
type Diagnostic struct {
	Kind DiagnosticKind `json:"kind"`

	// Course is the course code providing context, when known.
	Course string `json:"course,omitempty"`

	// Block is the text of an unclassified block.
	Block string `json:"block,omitempty"`

	// Rune, Glyph, and Name describe a code point missing from the
	// normalization table.
	Rune  rune   `json:"rune,omitempty"`
	Glyph string `json:"glyph,omitempty"`
	Name  string `json:"name,omitempty"`
}

// String renders the diagnostic for logs.
func (d Diagnostic) String() string {
	switch d.Kind {
	case DiagnosticUnclassifiedBlock:
		if d.Course != "" {
			return fmt.Sprintf("unclassified block in %s: %q", d.Course, d.Block)
		}
		return fmt.Sprintf("unclassified block: %q", d.Block)
	case DiagnosticUnknownRune:
		return fmt.Sprintf("unknown character \\u%04x => %s (%s)", d.Rune, d.Glyph, d.Name)
	default:
		return string(d.Kind)
	}
}
