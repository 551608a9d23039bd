package tools

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docsfed.dev/query/providers"
	"docsfed.dev/query/providers/types"
	"docsfed.dev/query/runtime/dispatch"
	"docsfed.dev/query/runtime/session"
	"docsfed.dev/query/runtime/telemetry"
	"docsfed.dev/query/runtime/toolregistry"
)

// fakeAdapter is a minimal in-memory providers.Adapter stand-in used to
// exercise the tool-handler wiring without any network access.
type fakeAdapter struct {
	technologies []types.Technology
	results      map[string][]types.SearchResult
	articles     map[string]types.Article
}

func (f *fakeAdapter) ListTechnologies(ctx context.Context) ([]types.Technology, error) {
	return f.technologies, nil
}

func (f *fakeAdapter) FetchCategory(ctx context.Context, id string) (types.Category, error) {
	return types.Category{}, providers.ErrNotFound
}

func (f *fakeAdapter) Search(ctx context.Context, query string, scope string) ([]types.SearchResult, error) {
	return f.results[scope], nil
}

func (f *fakeAdapter) FetchArticle(ctx context.Context, path string, scope string) (types.Article, error) {
	article, ok := f.articles[path]
	if !ok {
		return types.Article{}, providers.ErrNotFound
	}
	return article, nil
}

func buildHandlers() (*Handlers, *toolregistry.Registry) {
	appleAdapter := &fakeAdapter{
		results: map[string][]types.SearchResult{
			"swiftui": {{Title: "NavigationStack", Kind: "struct", Path: "documentation/swiftui/navigationstack", Score: 35}},
		},
		articles: map[string]types.Article{
			"documentation/swiftui/navigationstack": {Title: "NavigationStack", FullContent: "A view that displays a root view."},
		},
	}
	rustAdapter := &fakeAdapter{
		results: map[string][]types.SearchResult{
			"rust:tokio": {{Title: "spawn", Kind: "function", Path: "tokio::spawn", Score: 50}},
		},
	}
	quickNodeAdapter := &fakeAdapter{
		results: map[string][]types.SearchResult{
			"quicknode:http": {{Title: "getAccountInfo", Kind: "rpc-method", Path: "solana/getaccountinfo", Score: 100}},
		},
	}

	registry := providers.NewRegistry()
	registry.Register(types.ProviderApple, appleAdapter)
	registry.Register(types.ProviderRust, rustAdapter)
	registry.Register(types.ProviderQuickNode, quickNodeAdapter)

	dispatcher := dispatch.New(registry, telemetry.NewNoopLogger())
	handlers := New(registry, dispatcher)

	reg := toolregistry.New(session.New(), nil, nil)
	require_ := func(err error) {
		if err != nil {
			panic(err)
		}
	}
	require_(handlers.Register(reg))

	return handlers, reg
}

func TestQueryScenario1SwiftUINavigationStack(t *testing.T) {
	t.Parallel()
	_, reg := buildHandlers()

	resp, err := reg.Dispatch(context.Background(), "query", json.RawMessage(`{"query": "SwiftUI NavigationStack"}`))
	require.NoError(t, err)
	assert.Equal(t, "apple", resp.Metadata["provider"])
	assert.Contains(t, resp.Content[0].Text, "NavigationStack")
}

func TestQueryScenario2TokioSpawn(t *testing.T) {
	t.Parallel()
	_, reg := buildHandlers()

	resp, err := reg.Dispatch(context.Background(), "query", json.RawMessage(`{"query": "tokio spawn async task"}`))
	require.NoError(t, err)
	assert.Equal(t, "rust", resp.Metadata["provider"])
	assert.Contains(t, resp.Content[0].Text, "spawn")
}

func TestQueryScenario4QuickNodeGetAccountInfo(t *testing.T) {
	t.Parallel()
	_, reg := buildHandlers()

	resp, err := reg.Dispatch(context.Background(), "query", json.RawMessage(`{"query": "getAccountInfo"}`))
	require.NoError(t, err)
	assert.Equal(t, "quicknode", resp.Metadata["provider"])
	assert.Contains(t, resp.Content[0].Text, "getAccountInfo")
}

func TestQueryDefaultsToAppleSwiftUIWhenNoProviderDetectedAndNoneActive(t *testing.T) {
	t.Parallel()
	_, reg := buildHandlers()

	resp, err := reg.Dispatch(context.Background(), "query", json.RawMessage(`{"query": "button styling"}`))
	require.NoError(t, err)
	assert.Equal(t, "apple", resp.Metadata["provider"])
}

func TestChooseTechnologyThenQueryUsesChosenTechnology(t *testing.T) {
	t.Parallel()
	_, reg := buildHandlers()

	_, err := reg.Dispatch(context.Background(), "choose_technology", json.RawMessage(`{"provider": "rust", "technology": "tokio"}`))
	require.NoError(t, err)

	resp, err := reg.Dispatch(context.Background(), "query", json.RawMessage(`{"query": "timers"}`))
	require.NoError(t, err)
	assert.Equal(t, "rust", resp.Metadata["provider"])
}

func TestGetDocumentationFetchesByExplicitPath(t *testing.T) {
	t.Parallel()
	_, reg := buildHandlers()

	resp, err := reg.Dispatch(context.Background(), "get_documentation", json.RawMessage(`{"path": "documentation/swiftui/navigationstack", "provider": "apple"}`))
	require.NoError(t, err)
	assert.Contains(t, resp.Content[0].Text, "root view")
}

func TestGetDocumentationUnknownPathIsNotFound(t *testing.T) {
	t.Parallel()
	_, reg := buildHandlers()

	_, err := reg.Dispatch(context.Background(), "get_documentation", json.RawMessage(`{"path": "nope", "provider": "apple"}`))
	assert.Error(t, err)
}

func TestDiscoverTechnologiesListsProviderCatalog(t *testing.T) {
	t.Parallel()
	_, reg := buildHandlers()

	resp, err := reg.Dispatch(context.Background(), "discover_technologies", json.RawMessage(`{"provider": "rust"}`))
	require.NoError(t, err)
	assert.Equal(t, 0, resp.Metadata["count"])
}
