// Package webfw adapts the three JavaScript web-framework documentation
// sites (React, Next.js, Node.js) into the HTML-scraping adapter shape
// (spec.md §4.2 rule 4, §6). Each framework gets its own constructor
// since their seed catalogs and base URLs differ, but all three share the
// same selector list and caching policy.
package webfw

import (
	"time"

	"docsfed.dev/query/providers"
	"docsfed.dev/query/providers/httpx"
	"docsfed.dev/query/providers/scrape"
	"docsfed.dev/query/providers/types"
	"docsfed.dev/query/runtime/cache"
)

var commonSelectors = scrape.Selectors{
	Content:     []string{"article", ".prose", "main"},
	Declaration: []string{".api-signature", "pre.signature"},
	CodeSample:  []string{"pre code"},
}

const reactBaseURL = "https://react.dev/"

var reactSeeds = []scrape.Seed{
	{Slug: "reference/react/useState", Title: "useState", Description: "Adds a piece of reactive state to a component.", Kind: "hook", Category: "hooks"},
	{Slug: "reference/react/useEffect", Title: "useEffect", Description: "Synchronizes a component with an external system.", Kind: "hook", Category: "hooks"},
	{Slug: "reference/react/useMemo", Title: "useMemo", Description: "Caches the result of a calculation between renders.", Kind: "hook", Category: "hooks"},
	{Slug: "reference/react/useContext", Title: "useContext", Description: "Reads and subscribes to a context from a component.", Kind: "hook", Category: "hooks"},
	{Slug: "learn/thinking-in-react", Title: "Thinking in React", Description: "A five-step process for building UIs with React.", Kind: "guide", Category: "learn"},
	{Slug: "reference/react-dom/createPortal", Title: "createPortal", Description: "Renders children into a different part of the DOM.", Kind: "api", Category: "react-dom"},
}

// NewReact constructs the React adapter.
func NewReact(store *cache.Store, client *httpx.Client) providers.Adapter {
	return scrape.New(store, client, scrape.Config{
		Provider:     types.ProviderReact,
		Seeds:        reactSeeds,
		ArticleURL:   func(slug string) string { return reactBaseURL + slug },
		Selectors:    commonSelectors,
		TTL:          time.Hour,
		CatalogTitle: "React",
		CatalogURL:   reactBaseURL,
	})
}
