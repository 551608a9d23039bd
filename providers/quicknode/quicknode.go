// Package quicknode adapts the QuickNode Solana RPC reference into the
// static-data adapter shape (spec.md §4.2 rule 2), branching on the
// websocket/http/marketplace categories the intent parser's secondary scan
// distinguishes (spec.md §6 scenario 4: "getAccountInfo" resolves to the
// Solana HTTP technology).
package quicknode

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

const baseURL = "https://www.quicknode.com/docs/solana/"

// New constructs the QuickNode adapter.
func New(store *cache.Store, client *httpx.Client) providers.Adapter {
	return static.New(store, client, static.Config{
		Provider: types.ProviderQuickNode,
		YAML:     catalogYAML,
		ArticleURL: func(path string) string {
			return baseURL + path
		},
		ContentSel:     []string{"main", "article"},
		DeclarationSel: []string{"pre code", ".openrpc-params"},
		TTL:            24 * time.Hour,
		CatalogTitle:   "QuickNode Solana",
		CatalogURL:     baseURL,
	})
}
