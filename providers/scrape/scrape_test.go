package scrape

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

func testAdapter(t *testing.T, server *httptest.Server) *Adapter {
	t.Helper()
	store := cache.NewStore(cache.NewSyncMapStore(), cache.NewFileDiskStore(t.TempDir()))
	client := httpx.New()
	return New(store, client, Config{
		Provider: types.ProviderMDN,
		Seeds: []Seed{
			{Slug: "array", Title: "Array", Description: "Array reference", Kind: "reference", Category: "js"},
		},
		ArticleURL: func(slug string) string { return server.URL + "/" + slug },
		Selectors: Selectors{
			Content:     []string{"#content"},
			Declaration: []string{"#signature"},
			CodeSample:  []string{"pre code"},
		},
		TTL:          time.Hour,
		CatalogTitle: "MDN Web Docs",
		CatalogURL:   "https://developer.mozilla.org/",
	})
}

func TestSearchScoresSeeds(t *testing.T) {
	t.Parallel()
	a := testAdapter(t, httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})))

	results, err := a.Search(context.Background(), "array", "")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Array", results[0].Title)
}

func TestFetchArticleExtractsSelectors(t *testing.T) {
	t.Parallel()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html><body><div id="signature">Array.prototype.map()</div><div id="content">Creates a new array.</div><pre><code>arr.map(fn)</code></pre></body></html>`))
	}))
	defer server.Close()
	a := testAdapter(t, server)

	article, err := a.FetchArticle(context.Background(), "array", "")
	require.NoError(t, err)
	assert.Equal(t, "Array.prototype.map()", article.Declaration)
	assert.Equal(t, "Creates a new array.", article.FullContent)
	assert.Equal(t, "arr.map(fn)", article.CodeSample)
}

func TestFetchArticleFallsBackToSeedOnUpstreamFailure(t *testing.T) {
	t.Parallel()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()
	a := testAdapter(t, server)

	article, err := a.FetchArticle(context.Background(), "array", "")
	require.NoError(t, err)
	assert.Equal(t, "Array", article.Title)
	assert.Empty(t, article.FullContent)
}

func TestFetchArticleUnknownSlugIsNotFound(t *testing.T) {
	t.Parallel()
	a := testAdapter(t, httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})))

	_, err := a.FetchArticle(context.Background(), "missing", "")
	assert.ErrorIs(t, err, providers.ErrNotFound)
}
