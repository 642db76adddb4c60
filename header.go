package catscrape

import (
	"strconv"
	"strings"
)

// Header holds the parsed pieces of a course header such as
// "ACCT 201A - Financial Accounting (3)".
type Header struct {
	Code      string
	Title     string
	UnitRange string
	Level     int
}

// ParseHeader splits a course header into its code, title, and unit range.
// The code is everything before the first "-"; the unit range is the text
// between the last "(" and last ")" of the remainder; the title is what
// precedes the last "(". The level is derived from the course number's
// leading digit run.
func ParseHeader(s string) (*Header, error) {
	code, rest, found := strings.Cut(s, "-")
	if !found {
		return nil, Errorf(EUNPROCESSABLE, "course header %q has no code separator", s)
	}
	code = strings.TrimSpace(code)
	rest = strings.TrimSpace(rest)

	open := strings.LastIndex(rest, "(")
	closing := strings.LastIndex(rest, ")")
	if open == -1 || closing == -1 || closing < open {
		return nil, Errorf(EUNPROCESSABLE, "course header %q has no unit range", s)
	}

	level, err := courseLevel(code)
	if err != nil {
		return nil, err
	}

	return &Header{
		Code:      code,
		Title:     strings.TrimSpace(rest[:open]),
		UnitRange: strings.TrimSpace(rest[open+1 : closing]),
		Level:     level,
	}, nil
}

// courseLevel derives the integer level from the leading digit run of the
// course number, the second token of the code. Alphanumeric suffixes are
// tolerated ("201A" is level 201, "10S" is level 10); a number with no
// leading digits is an error.
func courseLevel(code string) (int, error) {
	fields := strings.Fields(code)
	if len(fields) < 2 {
		return 0, Errorf(EUNPROCESSABLE, "course code %q has no course number", code)
	}
	number := fields[1]

	i := 0
	for i < len(number) && number[i] >= '0' && number[i] <= '9' {
		i++
	}
	if i == 0 {
		return 0, Errorf(EUNPROCESSABLE, "course number %q has no leading digits", number)
	}

	level, err := strconv.Atoi(number[:i])
	if err != nil {
		return 0, Errorf(EUNPROCESSABLE, "course number %q: %v", number, err)
	}
	return level, nil
}
