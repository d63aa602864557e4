package goquery

import (
	"io"
	"maps"
	"slices"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/coursefetch"
	"golang.org/x/net/html"
	"golang.org/x/net/html/charset"
)

// Ensure SupplementExtractor implements coursefetch.SupplementExtractor at compile time.
var _ coursefetch.SupplementExtractor = (*SupplementExtractor)(nil)

// SupplementExtractor extracts supplement links from course pages.
//
// Pages are parsed with the HTML5 tree-construction algorithm, which
// accepts any input: unclosed tags, stray end tags and even binary data
// produce a tree rather than an error.
type SupplementExtractor struct {
	scripting bool
}

// Option configures a SupplementExtractor.
type Option func(*SupplementExtractor)

// WithScripting sets the parser's scripting flag. With scripting enabled,
// the content of <noscript> is kept as raw text, so anchors inside it are
// not extracted. Defaults to false.
func WithScripting(enabled bool) Option {
	return func(e *SupplementExtractor) {
		e.scripting = enabled
	}
}

// NewSupplementExtractor creates a new SupplementExtractor.
func NewSupplementExtractor(opts ...Option) *SupplementExtractor {
	e := &SupplementExtractor{}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ExtractSupplements parses html and groups its anchor targets by extension.
func (e *SupplementExtractor) ExtractSupplements(html string) (coursefetch.SupplementLinks, error) {
	doc, err := e.parse(strings.NewReader(html))
	if err != nil {
		return nil, err
	}
	return ExtractSupplementsFromDocument(doc), nil
}

// ExtractSupplementsFromReader reads a page from r, converting it to UTF-8
// using contentType (e.g. "text/html; charset=iso-8859-1"), a byte order
// mark or a <meta> charset declaration, then extracts its supplements.
// An empty contentType lets the encoding be sniffed from the content.
func (e *SupplementExtractor) ExtractSupplementsFromReader(r io.Reader, contentType string) (coursefetch.SupplementLinks, error) {
	utf8Reader, err := charset.NewReader(r, contentType)
	if err != nil {
		return nil, coursefetch.Errorf(coursefetch.EINVALID, "failed to read HTML: %v", err)
	}

	doc, err := e.parse(utf8Reader)
	if err != nil {
		return nil, err
	}
	return ExtractSupplementsFromDocument(doc), nil
}

func (e *SupplementExtractor) parse(r io.Reader) (*goquery.Document, error) {
	root, err := html.ParseWithOptions(r, html.ParseOptionEnableScripting(e.scripting))
	if err != nil {
		return nil, coursefetch.Errorf(coursefetch.EINVALID, "failed to parse HTML: %v", err)
	}
	return goquery.NewDocumentFromNode(root), nil
}

// ExtractSupplementsFromDocument groups the href targets of every anchor in
// an already-parsed document by file extension.
//
// Anchors without an href are skipped. Identical hrefs count once. The
// distinct hrefs are sorted before grouping, so each group is in
// lexicographic order. Links without an extension (site roots,
// directories, mailto:) are dropped.
func ExtractSupplementsFromDocument(doc *goquery.Document) coursefetch.SupplementLinks {
	result := make(coursefetch.SupplementLinks)
	if doc == nil {
		return result
	}

	seen := make(map[string]struct{})
	doc.Find("a").Each(func(_ int, sel *goquery.Selection) {
		if href, exists := sel.Attr("href"); exists {
			seen[href] = struct{}{}
		}
	})

	for _, link := range slices.Sorted(maps.Keys(seen)) {
		ext, basename, ok := coursefetch.SplitSupplementLink(link)
		if !ok {
			continue
		}
		result[ext] = append(result[ext], coursefetch.Supplement{
			URL:      link,
			Basename: basename,
		})
	}

	return result
}
