package apple

import (
	"strings"

	"docsfed.dev/query/providers/types"
)

// maxExpandedIdentifiers bounds how many referenced-but-not-yet-materialized
// identifiers a single expansion pass will fetch (spec.md §4.3, §9: "the
// policy for choosing which 200 is currently document order, and the rest
// are simply unreachable from fuzzy search — do not change this without an
// explicit reason").
const maxExpandedIdentifiers = 200

// tokenize lowercases and splits title+abstract on whitespace, the corpus
// each FrameworkIndexEntry is substring-matched against.
func tokenize(title, abstract string) []string {
	joined := strings.ToLower(title + " " + abstract)
	return strings.Fields(joined)
}

// buildIndex materializes every entry already present in doc.References into
// a flat FrameworkIndexEntry slice. It does not follow any reference the
// entries themselves point to — that only happens via expandIdentifiers,
// and only for identifiers discovered through topic sections.
func buildIndex(doc Document) []types.FrameworkIndexEntry {
	entries := make([]types.FrameworkIndexEntry, 0, len(doc.References))
	for id, ref := range doc.References {
		abstract := ref.PlainAbstract()
		path := ref.URL
		if path == "" {
			path = id
		}
		entries = append(entries, types.FrameworkIndexEntry{
			Title:     ref.Title,
			Kind:      ref.Kind,
			Path:      path,
			Abstract:  abstract,
			Tokens:    tokenize(ref.Title, abstract),
			Platforms: ref.PlatformNames(),
		})
	}
	return entries
}

// pendingIdentifiers walks doc's topic sections in document order and
// returns the identifiers not already present in doc.References, capped at
// maxExpandedIdentifiers — the rest are left unreachable by design.
func pendingIdentifiers(doc Document) []string {
	seen := make(map[string]bool, len(doc.References))
	for id := range doc.References {
		seen[id] = true
	}
	var pending []string
	for _, section := range doc.TopicSections {
		for _, id := range section.Identifiers {
			if seen[id] {
				continue
			}
			seen[id] = true
			pending = append(pending, id)
			if len(pending) >= maxExpandedIdentifiers {
				return pending
			}
		}
	}
	return pending
}
