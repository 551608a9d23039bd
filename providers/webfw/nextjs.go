package webfw

import (
	"time"

	"docsfed.dev/query/providers"
	"docsfed.dev/query/providers/httpx"
	"docsfed.dev/query/providers/scrape"
	"docsfed.dev/query/providers/types"
	"docsfed.dev/query/runtime/cache"
)

const nextjsBaseURL = "https://nextjs.org/docs/"

var nextjsSeeds = []scrape.Seed{
	{Slug: "app/building-your-application/routing", Title: "Routing fundamentals", Description: "The file-system based App Router.", Kind: "guide", Category: "routing"},
	{Slug: "app/building-your-application/data-fetching/server-actions-and-mutations", Title: "Server Actions and Mutations", Description: "Async functions executed on the server, invoked from the client.", Kind: "guide", Category: "data-fetching"},
	{Slug: "app/api-reference/functions/generateStaticParams", Title: "generateStaticParams", Description: "Statically generates route params at build time.", Kind: "api", Category: "functions"},
	{Slug: "app/building-your-application/rendering/server-components", Title: "Server Components", Description: "React components rendered on the server by default in the App Router.", Kind: "guide", Category: "rendering"},
	{Slug: "app/api-reference/file-conventions/middleware", Title: "Middleware", Description: "Runs code before a request completes, rewriting or redirecting it.", Kind: "api", Category: "file-conventions"},
	{Slug: "app/building-your-application/optimizing/images", Title: "Image Optimization", Description: "Automatic image resizing, optimization, and lazy loading.", Kind: "guide", Category: "optimizing"},
}

// NewNextJS constructs the Next.js adapter.
func NewNextJS(store *cache.Store, client *httpx.Client) providers.Adapter {
	return scrape.New(store, client, scrape.Config{
		Provider:     types.ProviderNextJS,
		Seeds:        nextjsSeeds,
		ArticleURL:   func(slug string) string { return nextjsBaseURL + slug },
		Selectors:    commonSelectors,
		TTL:          time.Hour,
		CatalogTitle: "Next.js",
		CatalogURL:   nextjsBaseURL,
	})
}
