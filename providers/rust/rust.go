// Package rust adapts docs.rs crate documentation into the index-driven
// adapter shape (spec.md §4.2 rule 3): it first tries the crate's
// search-index.js, falling back to scraping the all.html "every item" page
// when the index is missing or malformed. Duplicate concurrent index
// fetches for the same crate are coalesced by cache.Store's single-flight
// group (runtime/cache), which is this adapter's single-flight guard.
package rust

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"docsfed.dev/query/providers"
	"docsfed.dev/query/providers/httpx"
	"docsfed.dev/query/providers/scoring"
	"docsfed.dev/query/providers/types"
	"docsfed.dev/query/runtime/cache"
)

const (
	memoryCacheTTL = time.Hour
	defaultCrate   = "std"
)

// docsBaseURL is a var, not a const, so tests can point the adapter at a
// local httptest server instead of the real docs.rs host.
var docsBaseURL = "https://docs.rs/"

// Item is one flattened search-index (or scraped all.html) entry.
type Item struct {
	Name        string
	Kind        string
	Path        string
	Description string
}

// Adapter is the Rust crate documentation adapter.
type Adapter struct {
	store *cache.Store
	http  *httpx.Client
}

// New constructs the Rust adapter.
func New(store *cache.Store, client *httpx.Client) providers.Adapter {
	return &Adapter{store: store, http: client}
}

var _ providers.Adapter = (*Adapter)(nil)

func (a *Adapter) ListTechnologies(ctx context.Context) ([]types.Technology, error) {
	return nil, nil
}

func (a *Adapter) FetchCategory(ctx context.Context, id string) (types.Category, error) {
	return types.Category{}, providers.ErrNotFound
}

// Search scores every item in the crate's index (or its scraped fallback)
// against query using the generic scoring rules.
func (a *Adapter) Search(ctx context.Context, query string, scope string) ([]types.SearchResult, error) {
	crate := crateFromScope(scope)
	if crate == "" {
		crate = defaultCrate
	}

	items, err := a.items(ctx, crate)
	if err != nil {
		return nil, err
	}

	terms := scoring.Terms(query)
	var results []types.SearchResult
	for _, item := range items {
		score := scoring.Score(item.Name, item.Description, item.Path, terms, scoring.DefaultWeights, 0)
		if score == 0 {
			continue
		}
		results = append(results, types.SearchResult{
			Title:   item.Name,
			Kind:    item.Kind,
			Path:    crate + "/" + item.Path,
			Summary: item.Description,
			Score:   score,
		})
	}
	sort.SliceStable(results, func(i, j int) bool { return results[i].Score > results[j].Score })
	if len(results) > 20 {
		results = results[:20]
	}
	return results, nil
}

// FetchArticle resolves path back to its item; the crate's search index
// carries no full-body documentation, so the description doubles as the
// article content, and the declaration is synthesized from the item's kind
// and name.
func (a *Adapter) FetchArticle(ctx context.Context, path string, scope string) (types.Article, error) {
	crate, rel, ok := strings.Cut(path, "/")
	if !ok {
		crate, rel = crateFromScope(scope), path
	}
	if crate == "" {
		crate = defaultCrate
	}

	items, err := a.items(ctx, crate)
	if err != nil {
		return types.Article{}, err
	}
	for _, item := range items {
		if item.Path == rel {
			return types.Article{
				Title:       item.Name,
				Kind:        item.Kind,
				Path:        path,
				Summary:     item.Description,
				FullContent: item.Description,
				Declaration: fmt.Sprintf("%s %s", item.Kind, item.Name),
			}, nil
		}
	}
	return types.Article{}, providers.ErrNotFound
}

// crateFromScope strips the "rust:" namespace prefix runtime/resolver
// attaches to the technology identifier (spec.md §3), mirroring
// providers/static.go's entriesInScope prefix handling so both adapters
// recover their provider-internal key from the same namespaced shape.
func crateFromScope(scope string) string {
	if idx := strings.LastIndex(scope, ":"); idx >= 0 {
		return scope[idx+1:]
	}
	return scope
}

// items returns the flattened item list for crate, trying the search index
// first and falling back to scraping all.html.
func (a *Adapter) items(ctx context.Context, crate string) ([]Item, error) {
	return cache.Fetch(ctx, a.store, "rust", "index/"+crate, memoryCacheTTL, func(ctx context.Context) ([]Item, error) {
		items, err := a.fetchSearchIndex(ctx, crate)
		if err == nil {
			return items, nil
		}
		return a.fetchAllItemsPage(ctx, crate)
	})
}

func (a *Adapter) fetchSearchIndex(ctx context.Context, crate string) ([]Item, error) {
	url := docsBaseURL + crate + "/latest/search-index.js"
	raw, err := a.http.GetBytes(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", providers.ErrUpstream, err)
	}
	items, err := parseSearchIndex(crate, raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", providers.ErrParse, err)
	}
	return items, nil
}

func (a *Adapter) fetchAllItemsPage(ctx context.Context, crate string) ([]Item, error) {
	url := docsBaseURL + crate + "/latest/" + crate + "/all.html"
	raw, err := a.http.GetBytes(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", providers.ErrUpstream, err)
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(string(raw)))
	if err != nil {
		return nil, fmt.Errorf("%w: %s", providers.ErrParse, err)
	}
	items := parseAllItemsPage(doc)
	if items == nil {
		return nil, fmt.Errorf("%w: no items found on all.html fallback for %s", providers.ErrParse, crate)
	}
	return items, nil
}
