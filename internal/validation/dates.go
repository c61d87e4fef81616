package validation

import (
	"fmt"
	"strings"
	"time"
)

// Clients submit entry dates either as bare dates or full RFC 3339 stamps.
var dateLayouts = []string{time.RFC3339, "2006-01-02"}

func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}

// ParseDateRange parses the from/to dates of an experience or education
// entry. from is required; an empty to means the entry is still current and
// comes back nil.
func ParseDateRange(from, to string) (time.Time, *time.Time, error) {
	f, err := parseDate(from)
	if err != nil {
		return time.Time{}, nil, err
	}
	if strings.TrimSpace(to) == "" {
		return f, nil, nil
	}
	t, err := parseDate(to)
	if err != nil {
		return time.Time{}, nil, err
	}
	return f, &t, nil
}
