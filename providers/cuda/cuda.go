// Package cuda adapts the CUDA Toolkit documentation into the static-data
// adapter shape (spec.md §4.2 rule 2). Its constant table is embedded from
// catalog.yaml at package init and optionally enriched from the live NVIDIA
// docs site.
package cuda

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

const baseURL = "https://docs.nvidia.com/cuda/"

// New constructs the CUDA adapter.
func New(store *cache.Store, client *httpx.Client) providers.Adapter {
	return static.New(store, client, static.Config{
		Provider: types.ProviderCUDA,
		YAML:     catalogYAML,
		ArticleURL: func(path string) string {
			return baseURL + path + "/index.html"
		},
		ContentSel:     []string{"#contents", "main"},
		DeclarationSel: []string{"dl.cpp pre", "pre.literal-block"},
		TTL:            24 * time.Hour,
		CatalogTitle:   "CUDA Toolkit Documentation",
		CatalogURL:     baseURL,
	})
}
