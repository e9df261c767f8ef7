package fetch

import (
	"strconv"
	"strings"
)

// ParseID validates a route identifier. Surrounding whitespace is ignored;
// what remains must be a plain positive base-10 integer. "12abc", "1.5",
// "+3", "-2" and "0" are rejected with ErrInvalidID, and a blank value with
// ErrMissingID.
func ParseID(raw string) (int64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, ErrMissingID
	}
	for _, r := range raw {
		if r < '0' || r > '9' {
			return 0, ErrInvalidID
		}
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidID
	}
	return id, nil
}
