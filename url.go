package coursefetch

import (
	"net/url"
	"regexp"
	"strings"
)

// DefaultBaseURL is the origin relative course links are resolved against.
const DefaultBaseURL = "https://www.coursera.org"

// FixURL trims whitespace around rawURL and adds an http:// scheme when it
// has none. The empty string is returned unchanged.
func FixURL(rawURL string) string {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL != "" && !hasScheme(rawURL) {
		rawURL = "http://" + rawURL
	}
	return rawURL
}

func hasScheme(rawURL string) bool {
	u, err := url.Parse(rawURL)
	if err != nil {
		// Unparseable input, e.g. a bad percent-escape in the path.
		return strings.Contains(rawURL, "://")
	}
	return u.Scheme != ""
}

// AbsoluteURL resolves rawURL against DefaultBaseURL when it has no host.
// URLs that already name a host are returned unchanged.
func AbsoluteURL(rawURL string) (string, error) {
	return ResolveURL(DefaultBaseURL, rawURL)
}

// ResolveURL resolves rawURL against baseURL when rawURL has no host.
// URLs that already name a host are returned unchanged.
// Returns EINVALID if either URL cannot be parsed.
func ResolveURL(baseURL, rawURL string) (string, error) {
	ref, err := url.Parse(rawURL)
	if err != nil {
		return "", Errorf(EINVALID, "invalid URL %q: %v", rawURL, err)
	}
	if ref.Host != "" {
		return rawURL, nil
	}

	base, err := url.Parse(baseURL)
	if err != nil {
		return "", Errorf(EINVALID, "invalid base URL %q: %v", baseURL, err)
	}
	return base.ResolveReference(ref).String(), nil
}

// anchorFormatRe matches ".ext" or "format=ext" at the end of a link,
// optionally followed by a query string.
var anchorFormatRe = regexp.MustCompile(`(?:\.|format=)(\w+)(?:\?.*)?$`)

// AnchorFormat returns the resource format named by a link, e.g. "mp4" for
// ".../download.mp4?token=x" or "txt" for "...?format=txt".
func AnchorFormat(link string) (string, bool) {
	m := anchorFormatRe.FindStringSubmatch(link)
	if m == nil {
		return "", false
	}
	return m[1], true
}
