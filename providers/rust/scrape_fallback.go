package rust

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// allItemsSelectors is the documented priority-ordered selector list
// (spec.md §6) tried against a crate's all.html page when the search index
// itself cannot be fetched or parsed.
var allItemsSelectors = []string{"section a", ".all-items a", "ul.all-items-list a", "main a"}

// hrefKindMarkers classifies an item by substring in its href, in the same
// order docs.rs itself names generated pages.
var hrefKindMarkers = []struct {
	marker string
	kind   string
}{
	{"struct.", "struct"},
	{"enum.", "enum"},
	{"trait.", "trait"},
	{"fn.", "function"},
	{"macro.", "macro"},
	{"type.", "typealias"},
	{"constant.", "constant"},
	{"primitive.", "primitive"},
	{"keyword.", "keyword"},
}

// parseAllItemsPage extracts items from a crate's all.html listing by
// trying each selector in turn until one yields any links at all.
func parseAllItemsPage(doc *goquery.Document) []Item {
	for _, selector := range allItemsSelectors {
		selection := doc.Find(selector)
		if selection.Length() == 0 {
			continue
		}
		var items []Item
		selection.Each(func(_ int, s *goquery.Selection) {
			href, ok := s.Attr("href")
			if !ok {
				return
			}
			name := strings.TrimSpace(s.Text())
			if name == "" {
				return
			}
			items = append(items, Item{
				Name: name,
				Kind: classifyHref(href),
				Path: href,
			})
		})
		if len(items) > 0 {
			return items
		}
	}
	return nil
}

func classifyHref(href string) string {
	for _, m := range hrefKindMarkers {
		if strings.Contains(href, m.marker) {
			return m.kind
		}
	}
	return "item"
}
