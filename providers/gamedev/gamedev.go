// Package gamedev adapts Apple's game-development frameworks (SpriteKit,
// SceneKit, GameplayKit, GameController) into the static-data adapter shape
// (spec.md §4.2 rule 2).
package gamedev

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

// New constructs the Apple GameDev adapter.
func New(store *cache.Store, client *httpx.Client) providers.Adapter {
	return static.New(store, client, static.Config{
		Provider: types.ProviderGameDev,
		YAML:     catalogYAML,
		ArticleURL: func(path string) string {
			return baseURL + path
		},
		ContentSel:     []string{"main", "article"},
		DeclarationSel: []string{".declaration-source", "pre code"},
		TTL:            24 * time.Hour,
		CatalogTitle:   "Apple GameDev",
		CatalogURL:     baseURL + "documentation/spritekit",
	})
}
