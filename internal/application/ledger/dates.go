package ledger

import (
	"time"

	"github.com/jhoicas/asset-ledger-api/internal/domain"
)

const dateLayout = "2006-01-02"

// parseDate parses a required "YYYY-MM-DD" value.
func parseDate(s string) (time.Time, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, domain.ErrInvalidInput
	}
	return t, nil
}

// parseOptionalDate parses an optional date; empty means nil.
func parseOptionalDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := parseDate(s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// parseRange parses optional bounds into repository pointers.
func parseRange(start, end string) (*time.Time, *time.Time, error) {
	from, err := parseOptionalDate(start)
	if err != nil {
		return nil, nil, err
	}
	to, err := parseOptionalDate(end)
	if err != nil {
		return nil, nil, err
	}
	return from, to, nil
}
