// Package huggingface adapts the Hugging Face documentation (Python and
// Swift flavors) into the static-data adapter shape (spec.md §4.2 rule 2).
package huggingface

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

const baseURL = "https://huggingface.co/docs/"

// New constructs the Hugging Face adapter.
func New(store *cache.Store, client *httpx.Client) providers.Adapter {
	return static.New(store, client, static.Config{
		Provider: types.ProviderHuggingFace,
		YAML:     catalogYAML,
		ArticleURL: func(path string) string {
			return baseURL + path
		},
		ContentSel:     []string{"main", "article"},
		DeclarationSel: []string{"pre code", ".docstring"},
		TTL:            24 * time.Hour,
		CatalogTitle:   "Hugging Face",
		CatalogURL:     baseURL,
	})
}
