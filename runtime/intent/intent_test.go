package intent

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"docsfed.dev/query/providers/types"
)

func TestParseDetectsAppleFramework(t *testing.T) {
	t.Parallel()

	got := Parse("how do I implement a list in SwiftUI")
	assert.Equal(t, types.ProviderApple, got.Provider)
	assert.Equal(t, "swiftui", got.Technology)
	assert.Equal(t, QueryHowTo, got.QueryType)
}

func TestParseAppleFallbackOnPlatformMention(t *testing.T) {
	t.Parallel()

	got := Parse("what is the best way to persist data on iOS")
	assert.Equal(t, types.ProviderApple, got.Provider)
	assert.Equal(t, "swiftui", got.Technology)
}

func TestParseRustCrate(t *testing.T) {
	t.Parallel()

	got := Parse("how to spawn a task with tokio")
	assert.Equal(t, types.ProviderRust, got.Provider)
	assert.Equal(t, "rust:tokio", got.Technology)
}

func TestParseQuickNodeWebsocketScope(t *testing.T) {
	t.Parallel()

	got := Parse("how do I subscribe over websocket with quicknode")
	assert.Equal(t, types.ProviderQuickNode, got.Provider)
	assert.Equal(t, "quicknode:websocket", got.Technology)
}

func TestParseQuickNodeDefaultsToHTTP(t *testing.T) {
	t.Parallel()

	got := Parse("quicknode rpc call for getBalance")
	assert.Equal(t, types.ProviderQuickNode, got.Provider)
	assert.Equal(t, "quicknode:http", got.Technology)
}

func TestParseReferenceQueryType(t *testing.T) {
	t.Parallel()

	got := Parse("what is cloudkit")
	assert.Equal(t, QueryReference, got.QueryType)
}

func TestParseSearchQueryTypeFallback(t *testing.T) {
	t.Parallel()

	got := Parse("button tap gesture")
	assert.Equal(t, QuerySearch, got.QueryType)
}

func TestParseNoProviderDetected(t *testing.T) {
	t.Parallel()

	got := Parse("xyz completely unrelated gibberish 12345")
	assert.Empty(t, got.Provider)
	assert.Empty(t, got.Technology)
}

func TestExtractKeywordsDropsStopWords(t *testing.T) {
	t.Parallel()

	got := Parse("how do I implement a button in swiftui")
	assert.NotContains(t, got.Keywords, "how")
	assert.NotContains(t, got.Keywords, "implement")
	assert.Contains(t, got.Keywords, "button")
	assert.Contains(t, got.Keywords, "swiftui")
}

func TestContainsWordWholeTokenOnly(t *testing.T) {
	t.Parallel()

	assert.True(t, containsWord("using swiftui views", "swiftui"))
	assert.False(t, containsWord("mlxswift is different", "swift"))
}
