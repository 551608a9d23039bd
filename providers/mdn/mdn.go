// Package mdn adapts MDN Web Docs into the HTML-scraping adapter shape
// (spec.md §4.2 rule 4, §6: selectors `article`, `pre code`, `.prose`,
// `main` tried in order).
package mdn

import (
	"time"

	"docsfed.dev/query/providers"
	"docsfed.dev/query/providers/httpx"
	"docsfed.dev/query/providers/scrape"
	"docsfed.dev/query/providers/types"
	"docsfed.dev/query/runtime/cache"
)

const baseURL = "https://developer.mozilla.org/en-US/docs/"

var seeds = []scrape.Seed{
	{Slug: "Web/JavaScript/Reference/Global_Objects/Array", Title: "Array", Description: "JavaScript Array reference: methods, iteration, and mutation.", Kind: "reference", Category: "javascript"},
	{Slug: "Web/JavaScript/Reference/Global_Objects/Promise", Title: "Promise", Description: "Represents the eventual completion or failure of an async operation.", Kind: "reference", Category: "javascript"},
	{Slug: "Web/API/Fetch_API", Title: "Fetch API", Description: "Interface for fetching resources across the network.", Kind: "reference", Category: "web-api"},
	{Slug: "Web/HTML/Element", Title: "HTML elements", Description: "Reference for every standard HTML element.", Kind: "reference", Category: "html"},
	{Slug: "Web/CSS/CSS_Flexible_Box_Layout", Title: "Flexbox", Description: "One-dimensional layout with the CSS flexible box model.", Kind: "guide", Category: "css"},
	{Slug: "Web/CSS/CSS_Grid_Layout", Title: "CSS Grid", Description: "Two-dimensional grid-based layout system.", Kind: "guide", Category: "css"},
	{Slug: "Web/JavaScript/Reference/Statements/async_function", Title: "async function", Description: "Declares an asynchronous function returning an implicit Promise.", Kind: "reference", Category: "javascript"},
	{Slug: "Web/JavaScript/Reference/Operators/Optional_chaining", Title: "Optional chaining (?.)", Description: "Accesses a property without throwing on null/undefined.", Kind: "reference", Category: "javascript"},
}

// New constructs the MDN adapter.
func New(store *cache.Store, client *httpx.Client) providers.Adapter {
	return scrape.New(store, client, scrape.Config{
		Provider: types.ProviderMDN,
		Seeds:    seeds,
		ArticleURL: func(slug string) string {
			return baseURL + slug
		},
		Selectors: scrape.Selectors{
			Content:     []string{"article", ".prose", "main"},
			Declaration: []string{".syntaxbox", "pre.syntaxbox"},
			CodeSample:  []string{"pre code"},
		},
		TTL:          time.Hour,
		CatalogTitle: "MDN Web Docs",
		CatalogURL:   "https://developer.mozilla.org/",
	})
}
