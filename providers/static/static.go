// Package static implements the "static-data adapter" shape from spec.md
// §4.2 rule 2: the catalog is an embedded constant table of
// (name, path, description, kind, category) tuples, decoded once, when New
// constructs the adapter, from a bundled YAML asset (spec.md §9's note that "a target language
// without compile-time data literals should load them from bundled
// JSON/YAML on first use"). Live HTML enrichment is optional and, when it
// fails, the static entry still yields a usable result.
package static

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"gopkg.in/yaml.v3"

	"docsfed.dev/query/providers"
	"docsfed.dev/query/providers/httpx"
	"docsfed.dev/query/providers/scoring"
	"docsfed.dev/query/providers/types"
	"docsfed.dev/query/runtime/cache"
)

// Entry is one embedded catalog row.
type Entry struct {
	Name        string `yaml:"name"`
	Path        string `yaml:"path"`
	Description string `yaml:"description"`
	Kind        string `yaml:"kind"`
	Category    string `yaml:"category"`
}

// Config parameterizes a static Adapter for one provider.
type Config struct {
	Provider types.Provider
	YAML     []byte
	// ArticleURL builds the enrichment URL for an entry's path. Leave nil to
	// disable live enrichment entirely (the entry's description is the
	// whole article).
	ArticleURL func(path string) string
	// ContentSel and DeclarationSel are CSS selectors tried in priority
	// order against the fetched page; the first selector yielding
	// non-empty text wins (mirrors providers/scrape.go's Selectors).
	ContentSel     []string
	DeclarationSel []string
	TTL            time.Duration
	CatalogTitle   string
	CatalogURL     string
}

// Adapter is a generic providers.Adapter over an embedded constant table.
type Adapter struct {
	cfg     Config
	store   *cache.Store
	http    *httpx.Client
	entries []Entry
}

// New parses cfg.YAML and constructs a static Adapter. It panics on a
// malformed embedded asset, since that is a packaging bug caught at startup,
// not a runtime condition callers can recover from.
func New(store *cache.Store, client *httpx.Client, cfg Config) *Adapter {
	var entries []Entry
	if err := yaml.Unmarshal(cfg.YAML, &entries); err != nil {
		panic("static: malformed embedded catalog for " + string(cfg.Provider) + ": " + err.Error())
	}
	return &Adapter{cfg: cfg, store: store, http: client, entries: entries}
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
	for _, e := range a.entries {
		if e.Category == id {
			paths = append(paths, e.Path)
		}
	}
	if len(paths) == 0 {
		return types.Category{}, providers.ErrNotFound
	}
	return types.Category{Name: id, EntryPaths: paths}, nil
}

func (a *Adapter) Search(ctx context.Context, query string, scope string) ([]types.SearchResult, error) {
	terms := scoring.Terms(query)
	entries := a.entriesInScope(scope)
	var results []types.SearchResult
	for _, e := range entries {
		score := scoring.Score(e.Name, e.Description, e.Path, terms, scoring.DefaultWeights, 0)
		if score == 0 {
			continue
		}
		results = append(results, types.SearchResult{
			Title:   e.Name,
			Kind:    e.Kind,
			Path:    e.Path,
			Summary: e.Description,
			Score:   score,
		})
	}
	sort.SliceStable(results, func(i, j int) bool { return results[i].Score > results[j].Score })
	if len(results) > 20 {
		results = results[:20]
	}
	return results, nil
}

func (a *Adapter) FetchArticle(ctx context.Context, path string, scope string) (types.Article, error) {
	entry := a.findEntry(path)
	if entry == nil {
		return types.Article{}, providers.ErrNotFound
	}

	article := types.Article{
		Title:       entry.Name,
		Kind:        entry.Kind,
		Path:        entry.Path,
		Summary:     entry.Description,
		FullContent: entry.Description,
	}

	if a.cfg.ArticleURL == nil {
		return article, nil
	}

	doc, err := a.fetchDocument(ctx, *entry)
	if err != nil {
		// Static seed data still yields a usable, if shallow, result when
		// live enrichment fails (spec.md §4.2 rule 2's fallback policy).
		return article, nil
	}
	if content := firstMatch(doc, a.cfg.ContentSel); content != "" {
		article.FullContent = content
	}
	article.Declaration = firstMatch(doc, a.cfg.DeclarationSel)
	return article, nil
}

// entriesInScope narrows the catalog to one language/category flavor when
// scope names one that exists in the table (e.g. "agent-sdk:python"
// resolves to category "python"). Providers whose technologies don't
// branch by language (CUDA, Metal, GameDev, Vertcoin) never have a matching
// category, so scope is simply ignored for them.
func (a *Adapter) entriesInScope(scope string) []Entry {
	if scope == "" {
		return a.entries
	}
	category := scope
	if idx := strings.LastIndex(scope, ":"); idx >= 0 {
		category = scope[idx+1:]
	}
	var narrowed []Entry
	for _, e := range a.entries {
		if e.Category == category {
			narrowed = append(narrowed, e)
		}
	}
	if len(narrowed) == 0 {
		return a.entries
	}
	return narrowed
}

func (a *Adapter) findEntry(path string) *Entry {
	for i := range a.entries {
		if a.entries[i].Path == path {
			return &a.entries[i]
		}
	}
	return nil
}

// fetchDocument fetches and parses the HTML page for entry's path, caching
// the raw body the same way providers/scrape.go's fetchDocument does so a
// repeated lookup never re-fetches within cfg.TTL.
func (a *Adapter) fetchDocument(ctx context.Context, entry Entry) (*goquery.Document, error) {
	url := a.cfg.ArticleURL(entry.Path)
	html, err := cache.Fetch(ctx, a.store, string(a.cfg.Provider), entry.Path, a.cfg.TTL, func(ctx context.Context) (string, error) {
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

// firstMatch returns the trimmed text of the first selector in selectors
// that matches non-empty content, or "" if none do.
func firstMatch(doc *goquery.Document, selectors []string) string {
	for _, sel := range selectors {
		text := strings.TrimSpace(doc.Find(sel).First().Text())
		if text != "" {
			return text
		}
	}
	return ""
}
