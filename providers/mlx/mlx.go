// Package mlx adapts Apple's MLX array-framework documentation (Python and
// Swift flavors) into the static-data adapter shape (spec.md §4.2 rule 2).
package mlx

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

const baseURL = "https://ml-explore.github.io/mlx/build/html/"

// New constructs the MLX adapter.
func New(store *cache.Store, client *httpx.Client) providers.Adapter {
	return static.New(store, client, static.Config{
		Provider: types.ProviderMLX,
		YAML:     catalogYAML,
		ArticleURL: func(path string) string {
			return baseURL + path + ".html"
		},
		ContentSel:     []string{"main", "article"},
		DeclarationSel: []string{"dl.py pre", "pre code"},
		TTL:            24 * time.Hour,
		CatalogTitle:   "MLX",
		CatalogURL:     baseURL,
	})
}
