package catalog

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docsfed.dev/query/providers"
	"docsfed.dev/query/providers/httpx"
	"docsfed.dev/query/providers/types"
	"docsfed.dev/query/runtime/cache"
)

func decodeEntries(raw []byte) ([]Entry, error) {
	var entries []Entry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func testAdapter(t *testing.T, body string) *Adapter {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)

	store := cache.NewStore(cache.NewSyncMapStore(), nil)
	return New(store, httpx.New(), Config{
		Provider:   types.ProviderTelegram,
		SourceURL:  server.URL,
		Decode:     decodeEntries,
		Title:      "Telegram Bot API",
		CatalogURL: server.URL,
	})
}

const sampleCatalog = `[
	{"name": "sendMessage", "kind": "method", "description": "Send a text message.", "path": "sendmessage", "category": "messages", "parameters": [{"name": "chat_id", "type": "Integer"}]},
	{"name": "sendPhoto", "kind": "method", "description": "Send a photo.", "path": "sendphoto", "category": "media"}
]`

func TestListTechnologiesReturnsSingleFixedTechnology(t *testing.T) {
	t.Parallel()
	a := testAdapter(t, sampleCatalog)

	techs, err := a.ListTechnologies(context.Background())
	require.NoError(t, err)
	require.Len(t, techs, 1)
	assert.Equal(t, "Telegram Bot API", techs[0].Title)
}

func TestFetchCategoryGroupsByCategoryField(t *testing.T) {
	t.Parallel()
	a := testAdapter(t, sampleCatalog)

	cat, err := a.FetchCategory(context.Background(), "media")
	require.NoError(t, err)
	assert.Equal(t, []string{"sendphoto"}, cat.EntryPaths)
}

func TestFetchCategoryUnknownIsNotFound(t *testing.T) {
	t.Parallel()
	a := testAdapter(t, sampleCatalog)

	_, err := a.FetchCategory(context.Background(), "nope")
	assert.ErrorIs(t, err, providers.ErrNotFound)
}

func TestSearchScoresEntriesByQuery(t *testing.T) {
	t.Parallel()
	a := testAdapter(t, sampleCatalog)

	results, err := a.Search(context.Background(), "send photo", "")
	require.NoError(t, err)
	require.NotEmpty(t, results)
	assert.Equal(t, "sendPhoto", results[0].Title)
}

func TestFetchArticleIncludesParametersAndDeclaration(t *testing.T) {
	t.Parallel()
	a := testAdapter(t, sampleCatalog)

	article, err := a.FetchArticle(context.Background(), "sendmessage", "")
	require.NoError(t, err)
	assert.Equal(t, "sendMessage", article.Title)
	require.Len(t, article.Parameters, 1)
	assert.Equal(t, "chat_id", article.Parameters[0].Name)
}

func TestFetchArticleUnknownPathIsNotFound(t *testing.T) {
	t.Parallel()
	a := testAdapter(t, sampleCatalog)

	_, err := a.FetchArticle(context.Background(), "nope", "")
	assert.ErrorIs(t, err, providers.ErrNotFound)
}
