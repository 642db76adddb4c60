package catscrape

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/runenames"
)

// replacements maps the non-ASCII code points seen in the catalog to ASCII
// equivalents.
var replacements = map[rune]string{
	' ': " ",   // NO-BREAK SPACE
	'©': "(c)", // COPYRIGHT SIGN
	'®': "(r)", // REGISTERED SIGN
	'¿': "?",   // INVERTED QUESTION MARK
	'Á': "A",   // A WITH ACUTE
	'Í': "I",   // I WITH ACUTE
	'é': "e",   // E WITH ACUTE
	'ñ': "n",   // N WITH TILDE
	'–': "-",   // EN DASH
	'’': "'",   // RIGHT SINGLE QUOTE
	'“': `"`,   // LEFT DOUBLE QUOTE
	'”': `"`,   // RIGHT DOUBLE QUOTE
}

// Normalize applies the substitution table to s. Non-ASCII code points with
// no substitution pass through unchanged and are reported once per distinct
// code point via the returned diagnostics.
func Normalize(s string) (string, []Diagnostic) {
	var b strings.Builder
	b.Grow(len(s))

	var diags []Diagnostic
	var reported map[rune]bool

	for _, r := range s {
		if rep, ok := replacements[r]; ok {
			b.WriteString(rep)
			continue
		}
		if r > unicode.MaxASCII {
			if reported == nil {
				reported = make(map[rune]bool)
			}
			if !reported[r] {
				reported[r] = true
				diags = append(diags, Diagnostic{
					Kind:  DiagnosticUnknownRune,
					Rune:  r,
					Glyph: string(r),
					Name:  runenames.Name(r),
				})
			}
		}
		b.WriteRune(r)
	}

	return b.String(), diags
}
