package apple

import (
	"strings"

	"docsfed.dev/query/providers/types"
)

// Apple's own scoring constants (kept distinct from the generic weights in
// providers/scoring per spec.md §9: adapter constants are not meant to be
// unified across providers).
const (
	titleMatchScore    = 15
	abstractMatchScore = 5
	tokenMatchScore    = 2
	symbolKindBoost    = 20
	collectionPenalty  = -5
)

var collectionKinds = map[string]bool{"article": true, "collection": true, "collectionGroup": true}

// scoreEntries scores entries against query terms (already synonym-expanded),
// returning matches unsorted; the caller sorts them. If no matches are found,
// or none of the matches are actual symbols, Adapter.Search expands
// identifiers and retries once
// (spec.md §4.3's re-expansion rule) — scoreEntries itself is pure and
// stateless so that retry is just a second call.
func scoreEntries(entries []types.FrameworkIndexEntry, terms []string) []types.SearchResult {
	var results []types.SearchResult
	for _, entry := range entries {
		score := 0
		lowerTitle := strings.ToLower(entry.Title)
		lowerAbstract := strings.ToLower(entry.Abstract)

		for _, term := range terms {
			if term == "" {
				continue
			}
			if strings.Contains(lowerTitle, term) {
				score += titleMatchScore
			}
			if strings.Contains(lowerAbstract, term) {
				score += abstractMatchScore
			}
			for _, tok := range entry.Tokens {
				if tok == term {
					score += tokenMatchScore
				}
			}
		}
		if score == 0 {
			continue
		}

		if isSymbolKind(entry.Kind) {
			score += symbolKindBoost
		} else if collectionKinds[entry.Kind] {
			score += collectionPenalty
		}

		results = append(results, types.SearchResult{
			Title:     entry.Title,
			Kind:      entry.Kind,
			Path:      entry.Path,
			Summary:   entry.Abstract,
			Platforms: entry.Platforms,
			Score:     score,
		})
	}
	return results
}

// hasSymbolMatch reports whether any result represents an actual API symbol
// rather than an article or collection.
func hasSymbolMatch(results []types.SearchResult) bool {
	for _, r := range results {
		if isSymbolKind(r.Kind) {
			return true
		}
	}
	return false
}
