package util

import (
	"net/url"
	"strings"
)

// Hostname returns the host of an absolute URL without port.
// Anything that does not parse as an absolute URL is returned unchanged.
func Hostname(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return raw
	}
	return u.Hostname()
}

// ContainsFold reports whether substr is within s, ignoring case
func ContainsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
