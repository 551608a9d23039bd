// Package scrape implements the "HTML-scraping adapter" shape from spec.md
// §4.2 rule 4: a curated seed list of (slug, title, description) entries is
// enough to answer search; per-slug HTML is only fetched on demand for
// fetch_article, with content/declaration/code extracted via CSS selectors
// tried in a documented priority order. MDN, React, Next.js, Node.js, and
// Cocoon all share this shape.
package scrape

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

// Seed is one curated search-time entry: enough to match and rank a query
// without ever fetching HTML.
type Seed struct {
	Slug        string
	Title       string
	Description string
	Kind        string
	Category    string
}

// Selectors lists CSS selectors tried in priority order for each extracted
// field; the first selector yielding a non-empty match wins.
type Selectors struct {
	Content     []string
	Declaration []string
	CodeSample  []string
}

// Config parameterizes a scraping Adapter for one provider.
type Config struct {
	Provider  types.Provider
	Seeds     []Seed
	ArticleURL func(slug string) string
	Selectors Selectors
	TTL       time.Duration
	CatalogTitle string
	CatalogURL   string
}

// Adapter is a generic providers.Adapter over a curated seed list plus
// on-demand HTML scraping.
type Adapter struct {
	cfg   Config
	store *cache.Store
	http  *httpx.Client
}

// New constructs a scraping Adapter.
func New(store *cache.Store, client *httpx.Client, cfg Config) *Adapter {
	return &Adapter{cfg: cfg, store: store, http: client}
}

var _ providers.Adapter = (*Adapter)(nil)

func (a *Adapter) ListTechnologies(ctx context.Context) ([]types.Technology, error) {
	return []types.Technology{{
		Provider:   a.cfg.Provider,
		Identifier: string(a.cfg.Provider),
		Title:      a.cfg.CatalogTitle,
		URL:        a.cfg.CatalogURL,
		Kind:       "doc-section",
	}}, nil
}

func (a *Adapter) FetchCategory(ctx context.Context, id string) (types.Category, error) {
	var paths []string
	for _, s := range a.cfg.Seeds {
		if s.Category == id {
			paths = append(paths, s.Slug)
		}
	}
	if len(paths) == 0 {
		return types.Category{}, providers.ErrNotFound
	}
	return types.Category{Name: id, EntryPaths: paths}, nil
}

// Search scores the curated seed list; no network access is needed.
func (a *Adapter) Search(ctx context.Context, query string, scope string) ([]types.SearchResult, error) {
	terms := scoring.Terms(query)
	var results []types.SearchResult
	for _, s := range a.cfg.Seeds {
		score := scoring.Score(s.Title, s.Description, s.Slug, terms, scoring.DefaultWeights, 0)
		if score == 0 {
			continue
		}
		results = append(results, types.SearchResult{
			Title:   s.Title,
			Kind:    s.Kind,
			Path:    s.Slug,
			Summary: s.Description,
			Score:   score,
		})
	}
	sort.SliceStable(results, func(i, j int) bool { return results[i].Score > results[j].Score })
	if len(results) > 20 {
		results = results[:20]
	}
	return results, nil
}

// FetchArticle fetches and parses the HTML page for path (the seed's slug),
// trying each configured selector in order until one yields content.
func (a *Adapter) FetchArticle(ctx context.Context, path string, scope string) (types.Article, error) {
	seed := a.findSeed(path)
	if seed == nil {
		return types.Article{}, providers.ErrNotFound
	}

	doc, err := a.fetchDocument(ctx, path)
	if err != nil {
		// Static seed data still yields a usable, if shallow, result
		// when live enrichment fails (spec.md §4.2 rule 2's fallback
		// policy applies here too: partial data beats no data).
		return types.Article{
			Title:   seed.Title,
			Kind:    seed.Kind,
			Path:    seed.Slug,
			Summary: seed.Description,
		}, nil
	}

	return types.Article{
		Title:       seed.Title,
		Kind:        seed.Kind,
		Path:        seed.Slug,
		Summary:     seed.Description,
		FullContent: firstMatch(doc, a.cfg.Selectors.Content),
		Declaration: firstMatch(doc, a.cfg.Selectors.Declaration),
		CodeSample:  firstMatch(doc, a.cfg.Selectors.CodeSample),
	}, nil
}

func (a *Adapter) findSeed(slug string) *Seed {
	for i := range a.cfg.Seeds {
		if a.cfg.Seeds[i].Slug == slug {
			return &a.cfg.Seeds[i]
		}
	}
	return nil
}

func (a *Adapter) fetchDocument(ctx context.Context, slug string) (*goquery.Document, error) {
	url := a.cfg.ArticleURL(slug)
	html, err := cache.Fetch(ctx, a.store, string(a.cfg.Provider), slug, a.cfg.TTL, func(ctx context.Context) (string, error) {
		raw, err := a.http.GetBytes(ctx, url)
		if err != nil {
			return "", fmt.Errorf("%w: %s", providers.ErrUpstream, err)
		}
		return string(raw), nil
	})
	if err != nil {
		return nil, err
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("%w: %s", providers.ErrParse, err)
	}
	return doc, nil
}

func firstMatch(doc *goquery.Document, selectors []string) string {
	for _, sel := range selectors {
		text := strings.TrimSpace(doc.Find(sel).First().Text())
		if text != "" {
			return text
		}
	}
	return ""
}
