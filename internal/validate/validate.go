package validate

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	reEmail = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)
	reText  = regexp.MustCompile(`^[A-Za-z0-9 .,'&_-]{1,100}$`)
)

// Date accepts only real calendar dates in YYYY-MM-DD form.
// "2021-02-30" and "31-12-2021" both fail.
func Date(s string) (string, bool) {
	s = strings.TrimSpace(s)
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return "", false
	}
	// time.Parse is lenient about zero-padding in some layouts; round-trip
	// to pin the exact form.
	if t.Format("2006-01-02") != s {
		return "", false
	}
	return s, true
}

func Email(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if len(s) == 0 || len(s) > 100 {
		return "", false
	}
	return s, reEmail.MatchString(s)
}

// Text validates a displayable field (name, style, address) with a sane charset.
func Text(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != "" && reText.MatchString(s)
}

// ID parses a positive integer record identifier.
func ID(s string) (int64, bool) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	return n, err == nil && n > 0
}

// Qty parses an order quantity; must be a positive integer.
func Qty(s string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	return n, err == nil && n > 0
}

// NonNegInt parses a count field that may legitimately be zero (stock on hand).
func NonNegInt(s string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	return n, err == nil && n >= 0
}
