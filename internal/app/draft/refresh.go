package draft

import (
	"net/url"
	"strings"
)

// RefreshParam is the query parameter that carries the force-refresh marker.
const RefreshParam = "r"

// AppendForceRefresh sets the force-refresh marker on a redirect URL so the
// destination view refetches instead of showing cached state. Existing
// query parameters and the fragment are preserved; a previous marker is
// replaced.
func AppendForceRefresh(rawURL, marker string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return appendRaw(rawURL, marker)
	}
	q, err := url.ParseQuery(u.RawQuery)
	if err != nil {
		return appendRaw(rawURL, marker)
	}

	q.Set(RefreshParam, marker)
	u.RawQuery = q.Encode()
	return u.String()
}

// appendRaw is used when the URL cannot be round-tripped without losing
// parts of its query.
func appendRaw(rawURL, marker string) string {
	sep := "?"
	if strings.Contains(rawURL, "?") {
		sep = "&"
	}
	return rawURL + sep + RefreshParam + "=" + url.QueryEscape(marker)
}
