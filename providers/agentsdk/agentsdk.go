// Package agentsdk adapts the Claude Agent SDK reference (Python and
// TypeScript flavors) into the static-data adapter shape (spec.md §4.2 rule
// 2). The intent parser's secondary language scan picks "agent-sdk:python"
// or "agent-sdk:typescript" as the active technology; Search narrows the
// embedded table to the matching category when one is resolved.
package agentsdk

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

const baseURL = "https://docs.claude.com/en/api/agent-sdk/"

// New constructs the Claude Agent SDK adapter.
func New(store *cache.Store, client *httpx.Client) providers.Adapter {
	return static.New(store, client, static.Config{
		Provider: types.ProviderAgentSDK,
		YAML:     catalogYAML,
		ArticleURL: func(path string) string {
			return baseURL + path
		},
		ContentSel:     []string{"main", "article"},
		DeclarationSel: []string{"pre code", ".language-python", ".language-typescript"},
		TTL:            24 * time.Hour,
		CatalogTitle:   "Claude Agent SDK",
		CatalogURL:     baseURL,
	})
}
