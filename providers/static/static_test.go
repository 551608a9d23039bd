package static

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docsfed.dev/query/providers"
	"docsfed.dev/query/providers/httpx"
	"docsfed.dev/query/providers/types"
	"docsfed.dev/query/runtime/cache"
)

const sampleCatalog = `
- name: query
  path: python/query
  description: Starts a conversational turn with the agent.
  kind: function
  category: python
- name: ClaudeAgentOptions
  path: python/options
  description: Configuration object for the agent.
  kind: class
  category: python
`

func testAdapter(t *testing.T, server *httptest.Server) *Adapter {
	t.Helper()
	store := cache.NewStore(cache.NewSyncMapStore(), cache.NewFileDiskStore(t.TempDir()))
	client := httpx.New()
	return New(store, client, Config{
		Provider: types.ProviderAgentSDK,
		YAML:     []byte(sampleCatalog),
		ArticleURL: func(path string) string {
			return server.URL + "/" + path
		},
		ContentSel:     []string{"main"},
		DeclarationSel: []string{"pre code"},
		TTL:            time.Hour,
		CatalogTitle:   "Claude Agent SDK",
		CatalogURL:     "https://docs.claude.com/",
	})
}

func TestSearchScopesToCategory(t *testing.T) {
	t.Parallel()
	a := testAdapter(t, httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})))

	results, err := a.Search(context.Background(), "query", "agent-sdk:python")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "query", results[0].Title)
}

// TestFetchArticleExtractsDeclarationFromHTML covers spec.md §8 scenario #5:
// a Claude Agent SDK python query lookup must populate Declaration from the
// fetched page instead of leaving it empty.
func TestFetchArticleExtractsDeclarationFromHTML(t *testing.T) {
	t.Parallel()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html><body><main>Starts a conversational turn and streams messages back.</main><pre><code>async def query(prompt: str) -> AsyncIterator[Message]: ...</code></pre></body></html>`))
	}))
	defer server.Close()
	a := testAdapter(t, server)

	article, err := a.FetchArticle(context.Background(), "python/query", "agent-sdk:python")
	require.NoError(t, err)
	assert.Equal(t, "query", article.Title)
	assert.Contains(t, article.Declaration, "async def query")
	assert.Equal(t, "Starts a conversational turn and streams messages back.", article.FullContent)
}

func TestFetchArticleFallsBackToDescriptionOnUpstreamFailure(t *testing.T) {
	t.Parallel()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()
	a := testAdapter(t, server)

	article, err := a.FetchArticle(context.Background(), "python/query", "agent-sdk:python")
	require.NoError(t, err)
	assert.Equal(t, "query", article.Title)
	assert.Equal(t, "Starts a conversational turn with the agent.", article.FullContent)
	assert.Empty(t, article.Declaration)
}

func TestFetchArticleUnknownPathIsNotFound(t *testing.T) {
	t.Parallel()
	a := testAdapter(t, httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})))

	_, err := a.FetchArticle(context.Background(), "missing", "agent-sdk:python")
	assert.ErrorIs(t, err, providers.ErrNotFound)
}
