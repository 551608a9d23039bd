// Package dispatch implements the Search Dispatcher and Ranker & Enricher
// components (spec.md §4.6): it cleans a query of provider-naming noise,
// invokes the resolved adapter's Search, sorts the results, and fetches full
// detail for only the top MAX_DETAILED_DOCS hits.
package dispatch

import (
	"context"
	"sort"
	"sync"

	"docsfed.dev/query/providers"
	"docsfed.dev/query/providers/types"
	"docsfed.dev/query/runtime/telemetry"
)

// MaxDetailedDocs bounds how many top-ranked results are enriched with full
// article content per query (spec.md §4.6).
const MaxDetailedDocs = 5

// Dispatcher routes a resolved (provider, scope, keywords) query to its
// adapter and produces a ranked, partially-enriched result set.
type Dispatcher struct {
	registry *providers.Registry
	logger   telemetry.Logger
}

// New constructs a Dispatcher over a provider registry. A nil logger
// installs a no-op logger.
func New(registry *providers.Registry, logger telemetry.Logger) *Dispatcher {
	if logger == nil {
		logger = telemetry.NewNoopLogger()
	}
	return &Dispatcher{registry: registry, logger: logger}
}

// Dispatch cleans the query, invokes the adapter's Search, sorts by
// descending score, and enriches the top MaxDetailedDocs results. If the
// provider has no registered adapter, it returns an empty slice rather than
// an error: the top-level query handler never fails because a provider is
// unavailable (spec.md §7).
func (d *Dispatcher) Dispatch(ctx context.Context, provider types.Provider, scope string, keywords []string) []types.SearchResult {
	adapter, ok := d.registry.Get(provider)
	if !ok {
		d.logger.Warn(ctx, "dispatch: no adapter registered", "provider", string(provider))
		return nil
	}

	query := CleanQuery(provider, keywords)
	results, err := adapter.Search(ctx, query, scope)
	if err != nil {
		d.logger.Warn(ctx, "dispatch: search failed", "provider", string(provider), "err", err.Error())
		return nil
	}

	rank(results)
	d.enrich(ctx, adapter, results, scope)
	return results
}

// rank sorts results by descending score, breaking ties by title so output
// is deterministic for equally scored entries (spec.md §8 invariant #8
// requires a strict, stable ordering for equal-factor comparisons in tests).
func rank(results []types.SearchResult) {
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].Title < results[j].Title
	})
}

// enrich fetches full article content for the top MaxDetailedDocs results
// concurrently, one goroutine per result, so at most MaxDetailedDocs fetches
// are in flight and a slow fetch delays the response by its own duration
// rather than the sum of all of them.
// Per-result failures are swallowed per spec.md §4.6/§7: the caller still
// gets ranked summaries for every result.
func (d *Dispatcher) enrich(ctx context.Context, adapter providers.Adapter, results []types.SearchResult, scope string) {
	n := len(results)
	if n > MaxDetailedDocs {
		n = MaxDetailedDocs
	}
	if n == 0 {
		return
	}

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			article, err := adapter.FetchArticle(ctx, results[idx].Path, scope)
			if err != nil {
				d.logger.Warn(ctx, "enrich: fetch_article failed", "path", results[idx].Path, "err", err.Error())
				return
			}
			results[idx].Declaration = article.Declaration
			results[idx].CodeSample = article.CodeSample
			results[idx].FullContent = article.FullContent
			results[idx].Parameters = article.Parameters
			results[idx].Enriched = true
		}(i)
	}
	wg.Wait()
}
