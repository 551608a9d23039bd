package apple

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"docsfed.dev/query/providers"
	"docsfed.dev/query/providers/types"
	"docsfed.dev/query/runtime/cache"
	"docsfed.dev/query/runtime/session"
)

// designScheme is the get_documentation path prefix that reaches the
// Design Guidance Service (spec.md §4.9), distinct from the doc:// opaque
// identifiers the Framework Index Service resolves. Two path shapes are
// recognized: "design://<topic>" fetches one curated HIG topic directly,
// and "design://symbol/<doc-path>" resolves the topics relevant to a
// catalogued symbol path and concatenates their guidance.
const designScheme = "design://"

// designMapping maps a lowercased SwiftUI path prefix to the Human
// Interface Guidelines topics relevant to that component, grounded on
// original_source's docs-mcp-core design_guidance.rs MAPPINGS table
// (reduced to the components this engine's catalog actually surfaces).
type designMapping struct {
	pathPrefix string
	topics     []string
}

var designMappings = []designMapping{
	{"/documentation/swiftui/textfield", []string{"text-fields", "inputs"}},
	{"/documentation/swiftui/texteditor", []string{"text-fields", "inputs"}},
	{"/documentation/swiftui/securefield", []string{"text-fields", "inputs"}},
	{"/documentation/swiftui/text", []string{"typography", "color"}},
	{"/documentation/swiftui/label", []string{"typography"}},
	{"/documentation/swiftui/list", []string{"lists-and-tables"}},
	{"/documentation/swiftui/foreach", []string{"lists-and-tables"}},
	{"/documentation/swiftui/lazyvstack", []string{"lists-and-tables"}},
	{"/documentation/swiftui/lazyvgrid", []string{"lists-and-tables"}},
	{"/documentation/swiftui/button", []string{"buttons", "inputs"}},
	{"/documentation/swiftui/toggle", []string{"toggles"}},
	{"/documentation/swiftui/link", []string{"buttons", "color"}},
	{"/documentation/swiftui/picker", []string{"pickers", "menus"}},
	{"/documentation/swiftui/datepicker", []string{"pickers", "menus"}},
	{"/documentation/swiftui/menu", []string{"menus", "context-menus"}},
	{"/documentation/swiftui/contextmenu", []string{"context-menus"}},
	{"/documentation/swiftui/view/sheet", []string{"sheets", "modality"}},
	{"/documentation/swiftui/view/fullscreencover", []string{"sheets", "modality"}},
	{"/documentation/swiftui/view/popover", []string{"popovers", "modality"}},
	{"/documentation/swiftui/view/alert", []string{"alerts", "modality"}},
	{"/documentation/swiftui/view/confirmationdialog", []string{"alerts", "modality"}},
	{"/documentation/swiftui/progressview", []string{"progress-indicators", "feedback"}},
	{"/documentation/swiftui/gauge", []string{"progress-indicators", "feedback"}},
	{"/documentation/swiftui/slider", []string{"sliders", "inputs"}},
	{"/documentation/swiftui/stepper", []string{"steppers", "inputs"}},
	{"/documentation/swiftui/tabview", []string{"tab-bars"}},
	{"/documentation/swiftui/navigationsplitview", []string{"split-views"}},
	{"/documentation/swiftui/navigationstack", []string{"navigation-and-search"}},
	{"/documentation/swiftui/view/toolbar", []string{"toolbars", "navigation-and-search"}},
	{"/documentation/swiftui/view/searchable", []string{"search-fields"}},
	{"/documentation/swiftui/scrollview", []string{"scroll-views", "layout"}},
	{"/documentation/swiftui/form", []string{"layout", "foundations"}},
	{"/documentation/swiftui/vstack", []string{"layout", "foundations"}},
	{"/documentation/swiftui/hstack", []string{"layout", "foundations"}},
	{"/documentation/swiftui/zstack", []string{"layout", "foundations"}},
	{"/documentation/swiftui/image", []string{"images", "icons"}},
	{"/documentation/swiftui/asyncimage", []string{"images", "icons"}},
	{"/documentation/swiftui/view/accessibility", []string{"accessibility"}},
	{"/documentation/swiftui/color", []string{"color"}},
	{"/documentation/swiftui/gesture", []string{"gestures", "inputs"}},
	{"/documentation/swiftui/tapgesture", []string{"gestures", "inputs"}},
	{"/documentation/swiftui/draggesture", []string{"gestures", "inputs"}},
	{"/documentation/swiftui/animation", []string{"motion", "feedback"}},
	{"/documentation/swiftui/withanimation", []string{"motion", "feedback"}},
	{"/documentation/swiftui/transition", []string{"motion", "feedback"}},
}

// designTitleFallback keyword-matches a symbol's title when no path prefix
// matches, mirroring original_source's title-based fallback for entries the
// path table misses (e.g. expanded identifiers, which carry a title but no
// catalogued path).
var designTitleFallback = []struct {
	keyword string
	topics  []string
}{
	{"button", []string{"buttons", "inputs"}},
	{"toggle", []string{"toggles"}},
	{"list", []string{"lists-and-tables"}},
	{"table", []string{"lists-and-tables"}},
	{"picker", []string{"pickers", "menus"}},
	{"menu", []string{"menus"}},
	{"sheet", []string{"sheets", "modality"}},
	{"alert", []string{"alerts", "modality"}},
	{"dialog", []string{"alerts", "modality"}},
	{"progress", []string{"progress-indicators", "feedback"}},
	{"slider", []string{"sliders", "inputs"}},
	{"stepper", []string{"steppers", "inputs"}},
	{"tab", []string{"tab-bars"}},
	{"navigation", []string{"navigation-and-search"}},
	{"toolbar", []string{"toolbars"}},
	{"search", []string{"search-fields"}},
	{"scroll", []string{"scroll-views", "layout"}},
	{"image", []string{"images"}},
	{"accessibility", []string{"accessibility"}},
	{"color", []string{"color"}},
	{"gesture", []string{"gestures"}},
	{"animation", []string{"motion"}},
	{"transition", []string{"motion"}},
	{"text", []string{"typography"}},
}

// topicsForSymbol resolves which curated HIG topics apply to a catalogued
// symbol path/title, falling back to title keyword matching (spec.md §4.9).
func topicsForSymbol(path, title string) []string {
	normalizedPath := strings.ToLower(path)
	var matches []string
	for _, m := range designMappings {
		if strings.HasPrefix(normalizedPath, m.pathPrefix) {
			matches = append(matches, m.topics...)
		}
	}
	if len(matches) == 0 {
		lowerTitle := strings.ToLower(title)
		for _, f := range designTitleFallback {
			if strings.Contains(lowerTitle, f.keyword) {
				matches = append(matches, f.topics...)
			}
		}
	}
	return dedupeTopics(matches)
}

func dedupeTopics(in []string) []string {
	seen := make(map[string]bool, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}

// fetchDesignArticle handles a design:// get_documentation path (spec.md
// §4.9): either a direct "design://<topic>" lookup or a
// "design://symbol/<doc-path>" lookup that first resolves the topics
// relevant to that symbol.
func (a *Adapter) fetchDesignArticle(ctx context.Context, rest string) (types.Article, error) {
	var topics []string
	if symbolPath, ok := strings.CutPrefix(rest, "symbol/"); ok {
		topics = topicsForSymbol(symbolPath, "")
	} else if rest != "" {
		topics = []string{rest}
	}
	if len(topics) == 0 {
		return types.Article{}, providers.ErrNotFound
	}

	var titles, parts []string
	for _, topic := range topics {
		entry, ok, err := a.designSection(ctx, topic)
		if err != nil {
			a.logger.Warn(ctx, "apple: design guidance fetch failed", "topic", topic, "err", err.Error())
			continue
		}
		if !ok {
			continue
		}
		titles = append(titles, entry.Topic)
		parts = append(parts, fmt.Sprintf("## %s\n%s", entry.Topic, entry.Content))
	}
	if len(parts) == 0 {
		return types.Article{}, providers.ErrNotFound
	}

	return types.Article{
		Title:       strings.Join(titles, " / "),
		Kind:        "design-guidance",
		Path:        designScheme + rest,
		FullContent: strings.Join(parts, "\n\n"),
	}, nil
}

// designSection returns the cached guidance entry for topic, computing and
// caching it via the session's guidance map on first use (spec.md §4.9):
// design guidance is derived from Apple's live HIG documents, so it is
// cheap to recompute on process restart and is never written to disk.
func (a *Adapter) designSection(ctx context.Context, topic string) (session.DesignGuidanceEntry, bool, error) {
	if entry, ok := a.sess.DesignGuidance(topic); ok {
		return entry, true, nil
	}

	doc, err := a.fetchDesignDocument(ctx, topic)
	if err != nil {
		return session.DesignGuidanceEntry{}, false, err
	}
	summary := plainAbstract(doc.Abstract)
	if summary == "" {
		return session.DesignGuidanceEntry{}, false, nil
	}

	entry := session.DesignGuidanceEntry{Topic: doc.Metadata.Title, Content: summary}
	a.sess.SetDesignGuidance(topic, entry)
	return entry, true, nil
}

// fetchDesignDocument fetches and decodes one Human Interface Guidelines
// topic document, reusing the same DocC shape and disk/memory cache
// loadActiveFramework uses for framework root documents.
func (a *Adapter) fetchDesignDocument(ctx context.Context, topic string) (Document, error) {
	slug := "design/human-interface-guidelines/" + topic
	return cache.Fetch(ctx, a.store, "apple", slug, memoryCacheTTL, func(ctx context.Context) (Document, error) {
		url := fmt.Sprintf("%s/%s.json", baseURL, slug)
		raw, err := a.http.GetBytes(ctx, url)
		if err != nil {
			return Document{}, fmt.Errorf("%w: %s: %v", providers.ErrUpstream, slug, err)
		}
		var doc Document
		if err := json.Unmarshal(raw, &doc); err != nil {
			return Document{}, fmt.Errorf("%w: %s: %v", providers.ErrParse, slug, err)
		}
		return doc, nil
	})
}
