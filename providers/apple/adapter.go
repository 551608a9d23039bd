// Package apple implements the Apple Developer documentation adapter,
// including the Framework Index Service (spec.md §4.3): the hardest
// sub-adapter, since DocC documents form a tree of opaque cross-references
// that must be flattened lazily into a searchable index rather than followed
// eagerly (spec.md §9).
package apple

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"docsfed.dev/query/providers"
	"docsfed.dev/query/providers/httpx"
	"docsfed.dev/query/providers/types"
	"docsfed.dev/query/runtime/cache"
	"docsfed.dev/query/runtime/resolver"
	"docsfed.dev/query/runtime/session"
	"docsfed.dev/query/runtime/telemetry"
)

// catalogIdentifiers is the fixed set of framework identifiers
// discover_technologies and list_technologies browse for Apple — the same
// identifiers runtime/intent's detection table and runtime/resolver's
// catalog recognize by name.
var catalogIdentifiers = []string{
	"swiftui", "uikit", "foundation", "combine", "coredata", "cloudkit",
	"mapkit", "avfoundation", "webkit", "corelocation", "usernotifications",
	"swift", "appkit", "realitykit", "arkit", "metal", "spritekit",
	"scenekit", "healthkit", "storekit", "gamekit", "passkit", "photokit",
	"musickit", "carplay", "widgetkit", "activitykit", "appintents",
	"charts", "observation", "swiftdata", "coreml", "createml", "vision",
	"naturallanguage", "speech", "soundanalysis", "visionkit", "accelerate",
	"mlcompute", "metalperformanceshaders", "metalperformanceshadersgraph",
}

// cataloguedTechnologies resolves every catalog identifier to its
// Technology record via the shared resolver catalog.
func cataloguedTechnologies() []types.Technology {
	out := make([]types.Technology, 0, len(catalogIdentifiers))
	for _, id := range catalogIdentifiers {
		tech, _, _ := resolver.Resolve(types.ProviderApple, id)
		out = append(out, tech)
	}
	return out
}

// memoryCacheTTL is the Apple namespace's default, per spec.md §6.
const memoryCacheTTL = 10 * time.Minute

// baseURL is the well-known root DocC JSON currently selected technologies
// are fetched from.
const baseURL = "https://developer.apple.com/tutorials/data/documentation"

// expansionConcurrency bounds how many identifier fetches run at once during
// expandIdentifiers, so a 200-identifier expansion doesn't open 200
// simultaneous upstream connections.
const expansionConcurrency = 8

// Adapter implements providers.Adapter for Apple Developer documentation.
// Unlike every other provider, its decoded catalog (the "framework cache")
// and its flat search index live in session state rather than the shared
// disk cache, because they describe whichever technology is currently
// active for this session, not a provider-wide fact (spec.md §4.3).
type Adapter struct {
	store  *cache.Store
	http   *httpx.Client
	sess   *session.State
	logger telemetry.Logger

	expandMu sync.Mutex // single-flight guard for expandIdentifiers
}

// New constructs the Apple adapter. sess is the session whose
// framework_cache/framework_index pair this adapter populates; one Adapter
// instance serves one session in this engine (internal/wiring builds it
// with the single session it is given).
func New(store *cache.Store, client *httpx.Client, sess *session.State, logger telemetry.Logger) *Adapter {
	if logger == nil {
		logger = telemetry.NewNoopLogger()
	}
	return &Adapter{store: store, http: client, sess: sess, logger: logger}
}

var _ providers.Adapter = (*Adapter)(nil)

// ListTechnologies returns the curated Apple framework catalog. Apple has no
// live "list all frameworks" endpoint in this engine's scope, so the catalog
// comes from the same identifier table the Technology Resolver uses.
func (a *Adapter) ListTechnologies(ctx context.Context) ([]types.Technology, error) {
	return cataloguedTechnologies(), nil
}

// FetchCategory returns a topic section of the active framework as a
// Category.
func (a *Adapter) FetchCategory(ctx context.Context, id string) (types.Category, error) {
	doc, err := a.loadActiveFramework(ctx, id)
	if err != nil {
		return types.Category{}, err
	}
	for _, section := range doc.TopicSections {
		if section.Title == id {
			return types.Category{Name: section.Title, EntryPaths: section.Identifiers}, nil
		}
	}
	return types.Category{}, providers.ErrNotFound
}

// Search runs the Framework Index Service's substring/synonym/kind-boost
// search against scope (the active technology identifier), expanding
// identifiers and retrying once if no symbol hits are found initially.
func (a *Adapter) Search(ctx context.Context, query string, scope string) ([]types.SearchResult, error) {
	if scope == "" {
		scope = "swiftui"
	}
	entries, _, err := a.ensureFrameworkIndex(ctx, scope)
	if err != nil {
		a.logger.Warn(ctx, "apple: ensure_framework_index failed", "scope", scope, "err", err.Error())
		return nil, nil
	}

	terms := expandSynonyms(splitQuery(query))
	results := scoreEntries(entries, terms)

	if len(results) == 0 || !hasSymbolMatch(results) {
		expanded, err := a.expandIdentifiers(ctx, scope)
		if err == nil && len(expanded) > 0 {
			entries = append(entries, expanded...)
			a.sess.SetFrameworkIndex(scope, entries, buildTokenIndex(entries))
			results = scoreEntries(entries, terms)
		}
	}

	sort.SliceStable(results, func(i, j int) bool { return results[i].Score > results[j].Score })
	if len(results) > 20 {
		results = results[:20]
	}
	return results, nil
}

// FetchArticle resolves a search hit's path back into full article content.
// Apple entries already carry their summary in the index; this engine treats
// the abstract as both summary and full content since DocC's
// primaryContentSections are not further decoded in this scope.
func (a *Adapter) FetchArticle(ctx context.Context, path string, scope string) (types.Article, error) {
	if strings.HasPrefix(path, designScheme) {
		return a.fetchDesignArticle(ctx, strings.TrimPrefix(path, designScheme))
	}

	entries, _, ok := a.sess.FrameworkIndex(scope)
	if !ok {
		return types.Article{}, providers.ErrNotFound
	}
	for _, entry := range entries {
		if entry.Path == path {
			return types.Article{
				Title:       entry.Title,
				Kind:        entry.Kind,
				Path:        entry.Path,
				Summary:     entry.Abstract,
				Platforms:   entry.Platforms,
				FullContent: entry.Abstract,
			}, nil
		}
	}
	return types.Article{}, providers.ErrNotFound
}

// loadActiveFramework fetches and decodes the root DocC document for
// identifier, single-flight-coalesced and cached in the shared disk/memory
// cache under the apple namespace (this is the raw upstream document, not
// the session's derived framework_cache/framework_index pair).
func (a *Adapter) loadActiveFramework(ctx context.Context, identifier string) (Document, error) {
	return cache.Fetch(ctx, a.store, "apple", identifier, memoryCacheTTL, func(ctx context.Context) (Document, error) {
		url := fmt.Sprintf("%s/%s.json", baseURL, identifier)
		raw, err := a.http.GetBytes(ctx, url)
		if err != nil {
			return Document{}, fmt.Errorf("%w: %s: %v", providers.ErrUpstream, identifier, err)
		}
		var doc Document
		if err := json.Unmarshal(raw, &doc); err != nil {
			return Document{}, fmt.Errorf("%w: %s: %v", providers.ErrParse, identifier, err)
		}
		return doc, nil
	})
}

// ensureFrameworkIndex returns the session's cached flat index for
// identifier if present, otherwise loads the framework document and builds
// it (spec.md §4.3). framework_index is never served from the shared disk
// cache (spec.md §4.3 invariant): it is always rebuilt from framework_cache.
func (a *Adapter) ensureFrameworkIndex(ctx context.Context, identifier string) ([]types.FrameworkIndexEntry, map[string][]int, error) {
	if entries, index, ok := a.sess.FrameworkIndex(identifier); ok {
		return entries, index, nil
	}

	doc, err := a.loadActiveFramework(ctx, identifier)
	if err != nil {
		return nil, nil, err
	}

	entries := buildIndex(doc)
	index := buildTokenIndex(entries)
	a.sess.SetFrameworkIndex(identifier, entries, index)
	return entries, index, nil
}

// expandIdentifiers fetches up to maxExpandedIdentifiers referenced-but-not-
// materialized identifiers for identifier's topic sections, with bounded
// concurrency, guarded by a single-flight mutex so concurrent callers for
// the same technology don't duplicate the expansion (spec.md §4.3, §5).
func (a *Adapter) expandIdentifiers(ctx context.Context, identifier string) ([]types.FrameworkIndexEntry, error) {
	a.expandMu.Lock()
	defer a.expandMu.Unlock()

	doc, err := a.loadActiveFramework(ctx, identifier)
	if err != nil {
		return nil, err
	}
	pending := pendingIdentifiers(doc)
	if len(pending) == 0 {
		return nil, nil
	}

	type fetchResult struct {
		entry types.FrameworkIndexEntry
		ok    bool
	}

	sem := make(chan struct{}, expansionConcurrency)
	results := make([]fetchResult, len(pending))
	var wg sync.WaitGroup

	for i, id := range pending {
		wg.Add(1)
		sem <- struct{}{}
		go func(idx int, identifier string) {
			defer wg.Done()
			defer func() { <-sem }()

			ref, err := a.fetchReference(ctx, identifier)
			if err != nil {
				return
			}
			results[idx] = fetchResult{entry: ref, ok: true}
		}(i, id)
	}
	wg.Wait()

	entries := make([]types.FrameworkIndexEntry, 0, len(results))
	for _, r := range results {
		if r.ok {
			entries = append(entries, r.entry)
		}
	}
	return entries, nil
}

// docPrefix is the opaque-identifier prefix DocC uses for in-domain
// cross-references; stripping it and appending ".json" against baseURL
// yields the sibling document each identifier actually names.
const docPrefix = "doc://com.apple.documentation/documentation/"

// fetchReference resolves a single opaque identifier to a flat index entry
// by fetching its sibling DocC document and reading its own metadata —
// every DocC symbol/article document describes itself in its top-level
// "metadata" and "abstract" fields, the same shape loadActiveFramework
// already decodes for a technology's root document.
func (a *Adapter) fetchReference(ctx context.Context, identifier string) (types.FrameworkIndexEntry, error) {
	if !strings.HasPrefix(identifier, docPrefix) {
		return types.FrameworkIndexEntry{}, providers.ErrNotFound
	}
	slug := strings.TrimPrefix(identifier, docPrefix)

	doc, err := cache.Fetch(ctx, a.store, "apple", "symbol/"+slug, memoryCacheTTL, func(ctx context.Context) (Document, error) {
		url := fmt.Sprintf("%s/%s.json", baseURL, slug)
		raw, err := a.http.GetBytes(ctx, url)
		if err != nil {
			return Document{}, fmt.Errorf("%w: %s: %v", providers.ErrUpstream, slug, err)
		}
		var d Document
		if err := json.Unmarshal(raw, &d); err != nil {
			return Document{}, fmt.Errorf("%w: %s: %v", providers.ErrParse, slug, err)
		}
		return d, nil
	})
	if err != nil {
		return types.FrameworkIndexEntry{}, err
	}

	abstract := plainAbstract(doc.Abstract)
	return types.FrameworkIndexEntry{
		Title:     doc.Metadata.Title,
		Kind:      doc.Metadata.Kind,
		Path:      identifier,
		Abstract:  abstract,
		Tokens:    tokenize(doc.Metadata.Title, abstract),
		Platforms: platformNames(doc.Metadata.Platforms),
	}, nil
}

func plainAbstract(fragments []InlineContent) string {
	out := ""
	for i, frag := range fragments {
		if i > 0 {
			out += " "
		}
		out += frag.Text
	}
	return out
}

func platformNames(platforms []Platform) []string {
	names := make([]string, 0, len(platforms))
	for _, p := range platforms {
		names = append(names, p.Name)
	}
	return names
}

// buildTokenIndex inverts entries into token -> entry-index postings, used
// by future direct-lookup search paths without re-scanning every entry.
func buildTokenIndex(entries []types.FrameworkIndexEntry) map[string][]int {
	index := make(map[string][]int)
	for i, e := range entries {
		for _, tok := range e.Tokens {
			index[tok] = append(index[tok], i)
		}
	}
	return index
}

func splitQuery(query string) []string {
	return strings.Fields(strings.ToLower(query))
}
