package scraper

import "regexp"

// The access token is embedded in the listing page either as a JSON fragment
// or, failing that, inside a query string somewhere in the markup.
var (
	tokenJSONRe  = regexp.MustCompile(`"token"\s*:\s*"([A-Za-z0-9]+)"`)
	tokenQueryRe = regexp.MustCompile(`[?&]token=([A-Za-z0-9]+)`)
)

// ExtractToken scans the listing page body for the flexCalendar access token.
// The JSON-style pattern wins; the query-string pattern is only tried when
// the first finds nothing.
func ExtractToken(body []byte) (string, bool) {
	if m := tokenJSONRe.FindSubmatch(body); m != nil {
		return string(m[1]), true
	}
	if m := tokenQueryRe.FindSubmatch(body); m != nil {
		return string(m[1]), true
	}
	return "", false
}
