package apple

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"docsfed.dev/query/providers/types"
)

func TestScoreEntriesBoostsSymbolsOverCollections(t *testing.T) {
	t.Parallel()

	entries := []types.FrameworkIndexEntry{
		{Title: "Button", Kind: "struct", Path: "/button", Tokens: []string{"button"}},
		{Title: "Button Collection", Kind: "collection", Path: "/button-collection", Tokens: []string{"button", "collection"}},
	}

	results := scoreEntries(entries, []string{"button"})
	assert.Len(t, results, 2)

	var symbolScore, collectionScore int
	for _, r := range results {
		if r.Kind == "struct" {
			symbolScore = r.Score
		} else {
			collectionScore = r.Score
		}
	}
	assert.Greater(t, symbolScore, collectionScore)
}

func TestScoreEntriesSkipsNonMatches(t *testing.T) {
	t.Parallel()

	entries := []types.FrameworkIndexEntry{
		{Title: "NavigationStack", Kind: "struct", Tokens: []string{"navigationstack"}},
	}
	results := scoreEntries(entries, []string{"button"})
	assert.Empty(t, results)
}

func TestExpandSynonymsAddsRelatedTerms(t *testing.T) {
	t.Parallel()

	expanded := expandSynonyms([]string{"button"})
	assert.Contains(t, expanded, "button")
	assert.Contains(t, expanded, "control")
	assert.Contains(t, expanded, "tap")
}

func TestHasSymbolMatch(t *testing.T) {
	t.Parallel()

	assert.True(t, hasSymbolMatch([]types.SearchResult{{Kind: "class"}}))
	assert.False(t, hasSymbolMatch([]types.SearchResult{{Kind: "article"}}))
}

func TestBuildIndexFromReferences(t *testing.T) {
	t.Parallel()

	doc := Document{
		References: map[string]Reference{
			"doc://a": {Title: "Button", Kind: "struct", Abstract: []InlineContent{{Text: "A tappable control."}}},
		},
	}
	entries := buildIndex(doc)
	assert.Len(t, entries, 1)
	assert.Equal(t, "Button", entries[0].Title)
	assert.Contains(t, entries[0].Tokens, "tappable")
}

func TestPendingIdentifiersSkipsAlreadyMaterialized(t *testing.T) {
	t.Parallel()

	doc := Document{
		References: map[string]Reference{"doc://a": {Title: "A"}},
		TopicSections: []TopicSection{
			{Title: "Essentials", Identifiers: []string{"doc://a", "doc://b", "doc://c"}},
		},
	}
	pending := pendingIdentifiers(doc)
	assert.ElementsMatch(t, []string{"doc://b", "doc://c"}, pending)
}

func TestPendingIdentifiersCapsAt200(t *testing.T) {
	t.Parallel()

	ids := make([]string, 0, 250)
	for i := 0; i < 250; i++ {
		ids = append(ids, "doc://"+string(rune('a'+i%26))+string(rune(i)))
	}
	doc := Document{TopicSections: []TopicSection{{Title: "Everything", Identifiers: ids}}}
	pending := pendingIdentifiers(doc)
	assert.LessOrEqual(t, len(pending), maxExpandedIdentifiers)
}
