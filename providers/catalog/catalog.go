// Package catalog implements the "catalog adapter" shape from spec.md §4.2
// rule 5: fetch a single upstream JSON document, cache it verbatim, and
// answer list/search/fetch entirely from the in-memory structure. Telegram
// and TON both follow this shape over a curated JSON table of
// methods/endpoints.
package catalog

import (
	"context"
	"sort"
	"time"

	"docsfed.dev/query/providers"
	"docsfed.dev/query/providers/httpx"
	"docsfed.dev/query/providers/scoring"
	"docsfed.dev/query/providers/types"
	"docsfed.dev/query/runtime/cache"
)

// Entry is one method/endpoint/record within a catalog, matching the
// `{name, kind, description, fields[]|parameters[], returns?}` shape spec.md
// §6 documents for Telegram/TON.
type Entry struct {
	Name        string   `json:"name"`
	Kind        string   `json:"kind"`
	Description string   `json:"description"`
	Path        string   `json:"path"`
	Parameters  []Field  `json:"parameters,omitempty"`
	Returns     string   `json:"returns,omitempty"`
	Category    string   `json:"category,omitempty"`
	Platforms   []string `json:"platforms,omitempty"`
}

// Field is one documented parameter or return field.
type Field struct {
	Name        string `json:"name"`
	Type        string `json:"type,omitempty"`
	Description string `json:"description,omitempty"`
}

// Decoder turns the raw upstream bytes into a flat entry list; each curated
// provider supplies its own, since Telegram's and TON's upstream JSON shapes
// differ even though both end up as []Entry.
type Decoder func(raw []byte) ([]Entry, error)

// Adapter is a generic providers.Adapter over one cached, single-fetch
// catalog.
type Adapter struct {
	provider    types.Provider
	store       *cache.Store
	http        *httpx.Client
	sourceURL   string
	decode      Decoder
	ttl         time.Duration
	title       string
	catalogURL  string
	weights     scoring.Weights
}

// Config parameterizes a catalog Adapter for one provider.
type Config struct {
	Provider   types.Provider
	SourceURL  string
	Decode     Decoder
	TTL        time.Duration
	Title      string
	CatalogURL string
	Weights    scoring.Weights
}

// New constructs a catalog Adapter.
func New(store *cache.Store, client *httpx.Client, cfg Config) *Adapter {
	weights := cfg.Weights
	if weights == (scoring.Weights{}) {
		weights = scoring.DefaultWeights
	}
	return &Adapter{
		provider:   cfg.Provider,
		store:      store,
		http:       client,
		sourceURL:  cfg.SourceURL,
		decode:     cfg.Decode,
		ttl:        cfg.TTL,
		title:      cfg.Title,
		catalogURL: cfg.CatalogURL,
		weights:    weights,
	}
}

var _ providers.Adapter = (*Adapter)(nil)

func (a *Adapter) entries(ctx context.Context) ([]Entry, error) {
	return cache.Fetch(ctx, a.store, string(a.provider), "catalog", a.ttl, func(ctx context.Context) ([]Entry, error) {
		raw, err := a.http.GetBytes(ctx, a.sourceURL)
		if err != nil {
			return nil, providers.ErrUpstream
		}
		entries, err := a.decode(raw)
		if err != nil {
			return nil, providers.ErrParse
		}
		return entries, nil
	})
}

// ListTechnologies returns the single fixed technology this catalog serves
// (Telegram/TON have no sub-technology split — the whole catalog is one
// technology).
func (a *Adapter) ListTechnologies(ctx context.Context) ([]types.Technology, error) {
	return []types.Technology{{
		Provider:   a.provider,
		Identifier: string(a.provider),
		Title:      a.title,
		URL:        a.catalogURL,
		Kind:       "api-category",
	}}, nil
}

// FetchCategory groups entries sharing a Category field.
func (a *Adapter) FetchCategory(ctx context.Context, id string) (types.Category, error) {
	entries, err := a.entries(ctx)
	if err != nil {
		return types.Category{}, err
	}
	var paths []string
	for _, e := range entries {
		if e.Category == id {
			paths = append(paths, e.Path)
		}
	}
	if len(paths) == 0 {
		return types.Category{}, providers.ErrNotFound
	}
	return types.Category{Name: id, EntryPaths: paths}, nil
}

// Search scores every entry against query using the generic scoring rules.
func (a *Adapter) Search(ctx context.Context, query string, scope string) ([]types.SearchResult, error) {
	entries, err := a.entries(ctx)
	if err != nil {
		return nil, nil
	}
	terms := scoring.Terms(query)
	var results []types.SearchResult
	for _, e := range entries {
		score := scoring.Score(e.Name, e.Description, e.Path, terms, a.weights, 0)
		if score == 0 {
			continue
		}
		results = append(results, types.SearchResult{
			Title:     e.Name,
			Kind:      e.Kind,
			Path:      e.Path,
			Summary:   e.Description,
			Platforms: e.Platforms,
			Score:     score,
		})
	}
	sort.SliceStable(results, func(i, j int) bool { return results[i].Score > results[j].Score })
	if len(results) > 20 {
		results = results[:20]
	}
	return results, nil
}

// FetchArticle resolves a path back into its full entry, rendered as a
// declaration-style signature plus a parameters list.
func (a *Adapter) FetchArticle(ctx context.Context, path string, scope string) (types.Article, error) {
	entries, err := a.entries(ctx)
	if err != nil {
		return types.Article{}, providers.ErrUpstream
	}
	for _, e := range entries {
		if e.Path == path {
			var params []types.Param
			for _, f := range e.Parameters {
				params = append(params, types.Param{Name: f.Name, Type: f.Type, Description: f.Description})
			}
			return types.Article{
				Title:       e.Name,
				Kind:        e.Kind,
				Path:        e.Path,
				Summary:     e.Description,
				Platforms:   e.Platforms,
				FullContent: e.Description,
				Declaration: declarationFor(e),
				Parameters:  params,
			}, nil
		}
	}
	return types.Article{}, providers.ErrNotFound
}

func declarationFor(e Entry) string {
	if e.Returns == "" {
		return e.Name
	}
	return e.Name + " -> " + e.Returns
}
