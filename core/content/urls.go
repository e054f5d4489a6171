// Package content holds the small text processing helpers shared by
// the board mutators and the spam pipeline.
package content

import (
	"regexp"
	"strings"
)

var urlPattern = regexp.MustCompile(`http[s]?://(?:[a-zA-Z]|[0-9]|[$-_@.&+]|[!*\(\),]|(?:%[0-9a-fA-F][0-9a-fA-F]))+`)

// ExtractURLs returns the normalized links found in a body of text.
func ExtractURLs(body string) []string {
	matches := urlPattern.FindAllString(body, -1)
	if len(matches) == 0 {
		return nil
	}
	list := make([]string, 0, len(matches))
	seen := map[string]struct{}{}
	for _, m := range matches {
		u := NormalizeURL(m)
		if _, dup := seen[u]; dup {
			continue
		}
		seen[u] = struct{}{}
		list = append(list, u)
	}
	return list
}

// NormalizeURL lowercases and trims a link, drops the fragment and any
// trailing slash. The query string stays, it usually distinguishes
// distinct spam landing pages.
func NormalizeURL(raw string) string {
	u := strings.ToLower(strings.TrimSpace(raw))
	if i := strings.Index(u, "#"); i >= 0 {
		u = u[:i]
	}
	u = strings.TrimSuffix(u, "/")
	return u
}
