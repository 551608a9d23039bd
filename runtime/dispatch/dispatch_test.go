package dispatch

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docsfed.dev/query/providers"
	"docsfed.dev/query/providers/types"
)

type fakeAdapter struct {
	searchResults  []types.SearchResult
	searchErr      error
	fetchCalls     int32
	fetchArticleFn func(path string) (types.Article, error)
}

func (f *fakeAdapter) ListTechnologies(ctx context.Context) ([]types.Technology, error) { return nil, nil }
func (f *fakeAdapter) FetchCategory(ctx context.Context, id string) (types.Category, error) {
	return types.Category{}, nil
}
func (f *fakeAdapter) Search(ctx context.Context, query, scope string) ([]types.SearchResult, error) {
	return f.searchResults, f.searchErr
}
func (f *fakeAdapter) FetchArticle(ctx context.Context, path, scope string) (types.Article, error) {
	atomic.AddInt32(&f.fetchCalls, 1)
	if f.fetchArticleFn != nil {
		return f.fetchArticleFn(path)
	}
	return types.Article{Title: path, FullContent: "content for " + path}, nil
}

func TestDispatchRanksByScoreDescending(t *testing.T) {
	t.Parallel()

	adapter := &fakeAdapter{searchResults: []types.SearchResult{
		{Title: "Low", Path: "/low", Score: 10},
		{Title: "High", Path: "/high", Score: 100},
		{Title: "Mid", Path: "/mid", Score: 50},
	}}
	registry := providers.NewRegistry()
	registry.Register(types.ProviderApple, adapter)

	d := New(registry, nil)
	results := d.Dispatch(context.Background(), types.ProviderApple, "", []string{"button"})

	require.Len(t, results, 3)
	assert.Equal(t, "High", results[0].Title)
	assert.Equal(t, "Mid", results[1].Title)
	assert.Equal(t, "Low", results[2].Title)
}

func TestDispatchEnrichesTopNOnly(t *testing.T) {
	t.Parallel()

	var results []types.SearchResult
	for i := 0; i < 8; i++ {
		results = append(results, types.SearchResult{Title: "r", Path: "/p", Score: 8 - i})
	}
	adapter := &fakeAdapter{searchResults: results}
	registry := providers.NewRegistry()
	registry.Register(types.ProviderRust, adapter)

	d := New(registry, nil)
	got := d.Dispatch(context.Background(), types.ProviderRust, "tokio", []string{"spawn"})

	enrichedCount := 0
	for _, r := range got {
		if r.Enriched {
			enrichedCount++
		}
	}
	assert.Equal(t, MaxDetailedDocs, enrichedCount)
	assert.EqualValues(t, MaxDetailedDocs, atomic.LoadInt32(&adapter.fetchCalls))
}

func TestDispatchSwallowsEnrichmentFailures(t *testing.T) {
	t.Parallel()

	adapter := &fakeAdapter{
		searchResults: []types.SearchResult{{Title: "a", Path: "/a", Score: 1}},
		fetchArticleFn: func(path string) (types.Article, error) {
			return types.Article{}, providers.ErrNotFound
		},
	}
	registry := providers.NewRegistry()
	registry.Register(types.ProviderMDN, adapter)

	d := New(registry, nil)
	got := d.Dispatch(context.Background(), types.ProviderMDN, "", nil)

	require.Len(t, got, 1)
	assert.False(t, got[0].Enriched)
}

func TestDispatchMissingAdapterReturnsEmpty(t *testing.T) {
	t.Parallel()

	d := New(providers.NewRegistry(), nil)
	got := d.Dispatch(context.Background(), types.ProviderTON, "", nil)
	assert.Empty(t, got)
}

func TestCleanQueryStripsProviderNoise(t *testing.T) {
	t.Parallel()

	got := CleanQuery(types.ProviderApple, []string{"swiftui", "button", "tap"})
	assert.Equal(t, "button tap", got)
}
