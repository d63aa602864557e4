package coursefetch

import (
	"io"
	"maps"
	"net/url"
	"slices"
	"strings"
)

// Supplement is a downloadable resource linked from a course page.
type Supplement struct {
	// URL is the anchor href exactly as it appeared in the page.
	URL string

	// Basename is the final path segment of URL without its extension.
	// Course pages often reuse one link label for several files, so the
	// basename is what keeps the saved files apart.
	Basename string
}

// SupplementLinks groups supplements by lowercase file extension
// (without the leading dot). Within a group, supplements follow the
// lexicographic order of their URLs.
type SupplementLinks map[string][]Supplement

// Extensions returns the extensions present in the result, sorted.
func (l SupplementLinks) Extensions() []string {
	return slices.Sorted(maps.Keys(l))
}

// Len returns the total number of supplements across all extensions.
func (l SupplementLinks) Len() int {
	n := 0
	for _, group := range l {
		n += len(group)
	}
	return n
}

// SupplementExtractor extracts supplement links from course pages.
type SupplementExtractor interface {
	// ExtractSupplements parses HTML and groups its anchor targets by
	// file extension. Malformed markup is not an error.
	ExtractSupplements(html string) (SupplementLinks, error)

	// ExtractSupplementsFromReader is like ExtractSupplements but reads the
	// page from r, decoding it to UTF-8 according to contentType and any
	// charset declared in the document itself.
	ExtractSupplementsFromReader(r io.Reader, contentType string) (SupplementLinks, error)
}

// SplitSupplementLink classifies a link by the extension of the final
// segment of its URL path, as written in the link. Percent-escapes are not
// decoded, so "report%2Epdf" has no extension and "week%2F01.pdf" keeps
// "week%2F01" as its basename. It returns the lowercase extension without
// the leading dot and the segment's basename. ok is false when the segment
// has no extension, which excludes the link from supplement results.
//
// Leading dots do not start an extension (".htaccess" has none) and a
// trailing dot ("notes.") yields an empty extension, which also reports
// ok == false. Opaque URLs ("mailto:a@b.com", "week1:slides.pdf") have no
// path and are excluded.
func SplitSupplementLink(link string) (ext, basename string, ok bool) {
	p := linkPath(link)
	name := p[strings.LastIndex(p, "/")+1:]
	dot := strings.LastIndex(name, ".")
	if dot < 0 || strings.TrimLeft(name[:dot], ".") == "" {
		return "", "", false
	}

	ext = strings.ToLower(name[dot+1:])
	if ext == "" {
		return "", "", false
	}
	return ext, name[:dot], true
}

// linkPath returns the path of link as written, without scheme, authority,
// query or fragment. Unparseable links keep everything before the query.
func linkPath(link string) string {
	p, _, _ := strings.Cut(link, "#")
	p, _, _ = strings.Cut(p, "?")

	u, err := url.Parse(link)
	if err != nil {
		return p
	}
	if u.Opaque != "" {
		return ""
	}
	if u.Scheme != "" {
		p = p[len(u.Scheme)+1:]
	}
	if rest, ok := strings.CutPrefix(p, "//"); ok {
		if i := strings.Index(rest, "/"); i >= 0 {
			return rest[i:]
		}
		return ""
	}
	return p
}
