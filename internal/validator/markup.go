package validator

import (
	"regexp"
	"sort"
	"strings"

	"golang.org/x/net/html"
)

// Tag vocabularies are part of the marketplace contract and must not
// drift. Structural wrappers are elements the parser inserts around a
// fragment; they are never counted as content tags.
var (
	allowedTags = map[string]struct{}{
		"b": {}, "strong": {}, "br": {},
		"ol": {}, "ul": {}, "li": {},
		"table": {}, "tr": {}, "td": {}, "th": {},
		"thead": {}, "tbody": {}, "tfoot": {},
		"caption": {}, "colgroup": {}, "col": {},
	}

	disallowedTags = map[string]struct{}{
		"script": {}, "iframe": {}, "object": {}, "embed": {}, "applet": {},
		"form": {}, "input": {}, "button": {}, "video": {}, "audio": {},
		"canvas": {}, "svg": {}, "style": {}, "link": {}, "meta": {},
	}

	structuralTags = map[string]struct{}{
		"html": {}, "head": {}, "body": {},
	}
)

// leadBlockTag marks the opening summary of a description.
const leadBlockTag = "p"

// TagInventory is the structural summary of one HTML fragment.
type TagInventory struct {
	// Tags lists every element name in document order, structural
	// wrappers excluded.
	Tags []string

	// FirstBlockTextLen is the normalized text length of the first lead
	// block, 0 when the fragment has none.
	FirstBlockTextLen int

	// ListItemCount totals list-item tags across all lists.
	ListItemCount int

	// DisallowedTags is the sorted intersection with the disallowed set.
	DisallowedTags []string

	// NonWhitelistedTags are tags neither allow-listed nor structural,
	// sorted.
	NonWhitelistedTags []string
}

// MarkupInspector parses HTML fragments into tag inventories. Parsing is
// permissive: a fragment the parser cannot make sense of degrades to an
// empty inventory instead of an error.
type MarkupInspector struct {
	text    *TextNormalizer
	urlRe   *regexp.Regexp
	emailRe *regexp.Regexp
}

func NewMarkupInspector() *MarkupInspector {
	return &MarkupInspector{
		text:    NewTextNormalizer(),
		urlRe:   regexp.MustCompile(`(?i)https?://`),
		emailRe: regexp.MustCompile(`\b[\w.-]+@[\w.-]+\.\w{2,}\b`),
	}
}

// Inspect walks the fragment and collects the tag inventory.
func (m *MarkupInspector) Inspect(fragment string) TagInventory {
	inv := TagInventory{
		Tags:               make([]string, 0),
		DisallowedTags:     make([]string, 0),
		NonWhitelistedTags: make([]string, 0),
	}

	doc, err := html.Parse(strings.NewReader(fragment))
	if err != nil {
		return inv
	}

	disallowed := make(map[string]struct{})
	nonWhitelisted := make(map[string]struct{})
	leadFound := false

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			name := strings.ToLower(n.Data)
			if _, structural := structuralTags[name]; !structural {
				inv.Tags = append(inv.Tags, name)

				if name == "li" {
					inv.ListItemCount++
				}
				if !leadFound && name == leadBlockTag {
					leadFound = true
					text := m.text.NormalizeWhitespace(collectText(n))
					inv.FirstBlockTextLen = len([]rune(text))
				}
				if _, bad := disallowedTags[name]; bad {
					disallowed[name] = struct{}{}
				}
				if _, ok := allowedTags[name]; !ok {
					nonWhitelisted[name] = struct{}{}
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	inv.DisallowedTags = sortedKeys(disallowed)
	inv.NonWhitelistedTags = sortedKeys(nonWhitelisted)
	return inv
}

// ContainsExternalLink reports whether the raw fragment text contains an
// http(s) URL or an email address.
func (m *MarkupInspector) ContainsExternalLink(raw string) bool {
	return m.urlRe.MatchString(raw) || m.emailRe.MatchString(raw)
}

// collectText joins the text nodes under n with single spaces.
func collectText(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(node *html.Node) {
		if node.Type == html.TextNode {
			b.WriteString(node.Data)
			b.WriteString(" ")
		}
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
