package validate

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	reEmail = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)
	reID    = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)
)

func Email(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if len(s) == 0 || len(s) > 100 {
		return "", false
	}
	return s, reEmail.MatchString(s)
}

// ID validates a simple resource identifier (product/category/booking ids).
func ID(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != "" && reID.MatchString(s)
}

// Name validates a displayable name with a reasonable max length.
func Name(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > 100 {
		return "", false
	}
	return s, true
}

// Limit parses a ?limit= query value; empty or junk means "no limit".
func Limit(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return 0
	}
	if n > 100 {
		return 100
	}
	return n
}

func Price(f float64) bool { return f >= 0 }

// Password enforces a minimum length for registration.
func Password(s string) bool {
	return len(s) >= 6 && len(s) <= 72 // bcrypt input cap
}
