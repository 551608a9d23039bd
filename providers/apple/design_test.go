package apple

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docsfed.dev/query/providers"
	"docsfed.dev/query/providers/httpx"
	"docsfed.dev/query/runtime/cache"
	"docsfed.dev/query/runtime/session"
	"docsfed.dev/query/runtime/telemetry"
)

func testDesignAdapter(t *testing.T) (*Adapter, *session.State) {
	t.Helper()
	store := cache.NewStore(cache.NewSyncMapStore(), cache.NewFileDiskStore(t.TempDir()))
	sess := session.New()
	return New(store, httpx.New(), sess, telemetry.NewNoopLogger()), sess
}

func TestTopicsForSymbolMatchesPathPrefix(t *testing.T) {
	t.Parallel()

	topics := topicsForSymbol("/documentation/swiftui/button", "Button")
	assert.Contains(t, topics, "buttons")
	assert.Contains(t, topics, "inputs")
}

func TestTopicsForSymbolFallsBackToTitleKeyword(t *testing.T) {
	t.Parallel()

	topics := topicsForSymbol("/documentation/uikit/someobscuretype", "UIProgressView")
	assert.Contains(t, topics, "progress-indicators")
}

func TestTopicsForSymbolNoMatch(t *testing.T) {
	t.Parallel()

	assert.Empty(t, topicsForSymbol("/documentation/foundation/nsdata", "NSData"))
}

func TestDedupeTopics(t *testing.T) {
	t.Parallel()

	out := dedupeTopics([]string{"a", "b", "a", "c", "b"})
	assert.Equal(t, []string{"a", "b", "c"}, out)
}

// TestFetchArticleDesignTopicUsesSessionCache covers spec.md §4.9: a
// design://<topic> lookup that already has a cached session entry must
// return it without an upstream fetch.
func TestFetchArticleDesignTopicUsesSessionCache(t *testing.T) {
	t.Parallel()
	a, sess := testDesignAdapter(t)
	sess.SetDesignGuidance("buttons", session.DesignGuidanceEntry{
		Topic:   "Buttons",
		Content: "Buttons initiate app-specific actions.",
	})

	article, err := a.FetchArticle(context.Background(), "design://buttons", "")
	require.NoError(t, err)
	assert.Equal(t, "Buttons", article.Title)
	assert.Equal(t, "design-guidance", article.Kind)
	assert.Contains(t, article.FullContent, "Buttons initiate app-specific actions.")
}

// TestFetchArticleDesignSymbolResolvesTopicsAndConcatenates covers the
// design://symbol/<path> form: it must resolve the symbol's topics and
// concatenate every cached section found for them.
func TestFetchArticleDesignSymbolResolvesTopicsAndConcatenates(t *testing.T) {
	t.Parallel()
	a, sess := testDesignAdapter(t)
	sess.SetDesignGuidance("buttons", session.DesignGuidanceEntry{
		Topic:   "Buttons",
		Content: "Buttons initiate app-specific actions.",
	})
	sess.SetDesignGuidance("inputs", session.DesignGuidanceEntry{
		Topic:   "Inputs",
		Content: "Inputs let people enter or modify data.",
	})

	article, err := a.FetchArticle(context.Background(), "design://symbol//documentation/swiftui/button", "")
	require.NoError(t, err)
	assert.Contains(t, article.FullContent, "Buttons initiate app-specific actions.")
	assert.Contains(t, article.FullContent, "Inputs let people enter or modify data.")
}

func TestFetchArticleDesignUnknownSymbolIsNotFound(t *testing.T) {
	t.Parallel()
	a, _ := testDesignAdapter(t)

	_, err := a.FetchArticle(context.Background(), "design://symbol//documentation/foundation/nsdata", "")
	assert.ErrorIs(t, err, providers.ErrNotFound)
}
