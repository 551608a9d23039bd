// Package metal adapts Apple's Metal GPU framework documentation into the
// static-data adapter shape (spec.md §4.2 rule 2).
package metal

import (
	_ "embed"
	"time"

	"docsfed.dev/query/providers"
	"docsfed.dev/query/providers/httpx"
	"docsfed.dev/query/providers/static"
	"docsfed.dev/query/providers/types"
	"docsfed.dev/query/runtime/cache"
)

//go:embed catalog.yaml
var catalogYAML []byte

const baseURL = "https://developer.apple.com/"

// New constructs the Metal adapter.
func New(store *cache.Store, client *httpx.Client) providers.Adapter {
	return static.New(store, client, static.Config{
		Provider: types.ProviderMetal,
		YAML:     catalogYAML,
		ArticleURL: func(path string) string {
			return baseURL + path
		},
		ContentSel:     []string{"main", "article"},
		DeclarationSel: []string{".declaration-source", "pre code"},
		TTL:            24 * time.Hour,
		CatalogTitle:   "Metal",
		CatalogURL:     baseURL + "documentation/metal",
	})
}
