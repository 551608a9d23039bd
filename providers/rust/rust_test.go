package rust

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docsfed.dev/query/providers/httpx"
	"docsfed.dev/query/runtime/cache"
)

const sampleIndex = `var searchIndex = {"tokio":{"doc":"An async runtime.","t":[5,3],"n":["spawn","Runtime"],"q":["tokio","tokio"],"d":["Spawns a new asynchronous task.","The Tokio runtime."]}};`

func TestParseSearchIndexFlattensParallelArrays(t *testing.T) {
	t.Parallel()

	items, err := parseSearchIndex("tokio", []byte(sampleIndex))
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "spawn", items[0].Name)
	assert.Equal(t, "function", items[0].Kind)
	assert.Equal(t, "Runtime", items[1].Name)
	assert.Equal(t, "struct", items[1].Kind)
}

func TestParseSearchIndexUnknownCrate(t *testing.T) {
	t.Parallel()

	_, err := parseSearchIndex("nope", []byte(sampleIndex))
	assert.Error(t, err)
}

func TestClassifyHrefByMarker(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "struct", classifyHref("struct.Runtime.html"))
	assert.Equal(t, "function", classifyHref("fn.spawn.html"))
	assert.Equal(t, "item", classifyHref("index.html"))
}

func TestSearchFallsBackToAllItemsPageWhenIndexMissing(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/tokio/latest/search-index.js":
			w.WriteHeader(http.StatusNotFound)
		case r.URL.Path == "/tokio/latest/tokio/all.html":
			w.Write([]byte(`<html><body><section><a href="struct.Runtime.html">Runtime</a><a href="fn.spawn.html">spawn</a></section></body></html>`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	original := docsBaseURL
	docsBaseURL = server.URL + "/"
	defer func() { docsBaseURL = original }()

	a := &Adapter{
		store: cache.NewStore(cache.NewSyncMapStore(), cache.NewFileDiskStore(t.TempDir())),
		http:  httpx.New(),
	}

	items, err := a.items(context.Background(), "tokio")
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "struct", items[0].Kind)
}
