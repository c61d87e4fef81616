package validation

import (
	"net/url"
	"strings"
)

// NormalizeURL converts raw into an absolute https URL. Empty input or
// anything that fails to parse comes back as "" and is stored as such.
func NormalizeURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return ""
	}
	// Force https regardless of the submitted scheme.
	u.Scheme = "https"
	return u.String()
}

// SplitSkills splits a comma-separated skills string into entries, trimming
// each segment and prefixing a single leading space. The leading space is a
// historical convention clients already depend on; "js, node" becomes
// [" js", " node"].
func SplitSkills(s string) []string {
	parts := strings.Split(s, ",")
	skills := make([]string, 0, len(parts))
	for _, p := range parts {
		skills = append(skills, " "+strings.TrimSpace(p))
	}
	return skills
}
