// Package android adapts Android/AndroidX/Jetpack library documentation into
// the static-data adapter shape (spec.md §4.2 rule 2). It is a SPEC_FULL.md
// supplement: the provider keyword-detection precedence chain never routes
// to it, so it is only reachable through an explicit choose_technology call.
package android

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

const baseURL = "https://developer.android.com/"

// New constructs the Android adapter.
func New(store *cache.Store, client *httpx.Client) providers.Adapter {
	return static.New(store, client, static.Config{
		Provider: types.ProviderAndroid,
		YAML:     catalogYAML,
		ArticleURL: func(path string) string {
			return baseURL + path
		},
		ContentSel:     []string{"main", "article", "devsite-content"},
		DeclarationSel: []string{"pre.api-signature", "pre code"},
		TTL:            24 * time.Hour,
		CatalogTitle:   "Android (AndroidX / Jetpack)",
		CatalogURL:     baseURL + "jetpack",
	})
}
