package webfw

import (
	"time"

	"docsfed.dev/query/providers"
	"docsfed.dev/query/providers/httpx"
	"docsfed.dev/query/providers/scrape"
	"docsfed.dev/query/providers/types"
	"docsfed.dev/query/runtime/cache"
)

const nodejsBaseURL = "https://nodejs.org/api/"

var nodejsSeeds = []scrape.Seed{
	{Slug: "fs.html", Title: "File system", Description: "Interacting with the file system in ways modeled on POSIX functions.", Kind: "module", Category: "core"},
	{Slug: "http.html", Title: "HTTP", Description: "HTTP server and client functionality.", Kind: "module", Category: "core"},
	{Slug: "stream.html", Title: "Stream", Description: "Working with streaming data: Readable, Writable, Duplex, Transform.", Kind: "module", Category: "core"},
	{Slug: "events.html", Title: "EventEmitter", Description: "The foundation of Node's event-driven architecture.", Kind: "class", Category: "core"},
	{Slug: "child_process.html", Title: "Child process", Description: "Spawning subprocesses via spawn, exec, and fork.", Kind: "module", Category: "core"},
	{Slug: "worker_threads.html", Title: "Worker threads", Description: "Running JavaScript in parallel on separate threads.", Kind: "module", Category: "core"},
}

// NewNodeJS constructs the Node.js adapter.
func NewNodeJS(store *cache.Store, client *httpx.Client) providers.Adapter {
	return scrape.New(store, client, scrape.Config{
		Provider:     types.ProviderNodeJS,
		Seeds:        nodejsSeeds,
		ArticleURL:   func(slug string) string { return nodejsBaseURL + slug },
		Selectors:    commonSelectors,
		TTL:          time.Hour,
		CatalogTitle: "Node.js",
		CatalogURL:   nodejsBaseURL,
	})
}
