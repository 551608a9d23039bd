package assembler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docsfed.dev/query/providers/types"
)

func TestAssembleEmptyResultsMessage(t *testing.T) {
	t.Parallel()

	resp := Assemble(types.ProviderApple, "SwiftUI", nil)
	require.Len(t, resp.Lines, 1)
	assert.Contains(t, resp.Lines[0], "No results found")
	assert.Equal(t, 0, resp.Metadata["resultCount"])
	assert.Equal(t, false, resp.Metadata["hasFullContent"])
}

func TestAssembleDetailedVsSummaryCutoff(t *testing.T) {
	t.Parallel()

	var results []types.SearchResult
	for i := 0; i < 7; i++ {
		results = append(results, types.SearchResult{
			Title:    "Result",
			Kind:     "struct",
			Summary:  "a summary",
			Enriched: i < detailedResultCount,
		})
	}
	resp := Assemble(types.ProviderApple, "SwiftUI", results)

	joined := ""
	for _, l := range resp.Lines {
		joined += l + "\n"
	}
	assert.Contains(t, joined, "## Result `struct`")
	assert.Contains(t, joined, "- Result — a summary")
	assert.Equal(t, 7, resp.Metadata["resultCount"])
	assert.Equal(t, true, resp.Metadata["hasFullContent"])
}

func TestAssembleLanguageTagPerProvider(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "swift", Language(types.ProviderApple, ""))
	assert.Equal(t, "rust", Language(types.ProviderRust, ""))
	assert.Equal(t, "objective-c", Language(types.ProviderApple, "objective-c"))
	assert.Equal(t, "text", Language(types.Provider("unknown"), ""))
}
