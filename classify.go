package catscrape

import "strings"

// rule pairs a case-insensitive predicate with the field assignment it
// implies. The predicate receives the lowercased block; the action receives
// the verbatim block text.
type rule struct {
	match func(lower string) bool
	apply func(c *Course, block string)
}

// rules is the classification table for blocks after the description,
// evaluated in order. The first matching rule wins for a given block; for a
// given field, the last matching block wins.
var rules = []rule{
	{
		match: func(s string) bool {
			return strings.Contains(s, "requisite") || strings.HasPrefix(s, "prereq")
		},
		apply: func(c *Course, block string) { c.Prerequisites = block },
	},
	{
		match: exactly("undergraduate course not available for graduate credit"),
		apply: func(c *Course, _ string) { c.GradCreditEligible = false },
	},
	{
		match: exactly(
			"graduate-level",
			"400-level undergraduate course available for graduate credit",
		),
		apply: func(c *Course, _ string) { c.GradCreditEligible = true },
	},
	{
		match: exactly("one or more sections may be offered in any online format."),
		apply: func(c *Course, _ string) { c.AvailableOnline = true },
	},
	{
		match: exactly("department consent required"),
		apply: func(c *Course, _ string) { c.RequiresConsent = true },
	},
	{
		match: func(s string) bool { return strings.HasPrefix(s, "typically offered") },
		apply: func(c *Course, block string) {
			if _, rest, found := strings.Cut(block, ":"); found {
				c.TypicalOffering = strings.TrimSpace(rest)
			}
		},
	},
}

// exactly returns a predicate matching any of the given lowercase strings.
func exactly(values ...string) func(string) bool {
	return func(s string) bool {
		for _, v := range values {
			if s == v {
				return true
			}
		}
		return false
	}
}

// Classify derives a structured course from a raw one. The header is parsed
// into code, title, unit range, and level; blocks[0] becomes the
// description; every subsequent block is run through the classification
// rules. Blocks matching no rule are returned as diagnostics, never dropped
// silently.
func Classify(raw *RawCourse) (*Course, []Diagnostic, error) {
	if err := raw.Validate(); err != nil {
		return nil, nil, err
	}

	header, err := ParseHeader(raw.Header)
	if err != nil {
		return nil, nil, err
	}

	course := &Course{
		Identifier: raw.Identifier,
		Section:    raw.Section,
		Level:      header.Level,
		Title:      header.Title,
		Code:       header.Code,
		UnitRange:  header.UnitRange,
	}
	if len(raw.Blocks) > 0 {
		course.Description = raw.Blocks[0]
	}

	var diags []Diagnostic
	if len(raw.Blocks) > 1 {
		for _, block := range raw.Blocks[1:] {
			lower := strings.ToLower(block)
			matched := false
			for _, r := range rules {
				if r.match(lower) {
					r.apply(course, block)
					matched = true
					break
				}
			}
			if !matched {
				diags = append(diags, Diagnostic{
					Kind:   DiagnosticUnclassifiedBlock,
					Course: course.Code,
					Block:  block,
				})
			}
		}
	}

	return course, diags, nil
}
