// Package ton adapts the TON (The Open Network) API reference into the
// uniform catalog shape (spec.md §4.2 rule 5, §6).
package ton

import (
	"encoding/json"
	"time"

	"docsfed.dev/query/providers"
	"docsfed.dev/query/providers/catalog"
	"docsfed.dev/query/providers/httpx"
	"docsfed.dev/query/providers/types"
	"docsfed.dev/query/runtime/cache"
)

const sourceURL = "https://tonapi.io/api-docs.json"

type endpoint struct {
	Name        string            `json:"name"`
	Kind        string            `json:"kind"`
	Description string            `json:"description"`
	Path        string            `json:"path"`
	Parameters  []endpointParam   `json:"parameters"`
	Returns     string            `json:"returns"`
	Category    string            `json:"category"`
}

type endpointParam struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Description string `json:"description"`
}

func decode(raw []byte) ([]catalog.Entry, error) {
	var endpoints []endpoint
	if err := json.Unmarshal(raw, &endpoints); err != nil {
		return nil, err
	}
	entries := make([]catalog.Entry, 0, len(endpoints))
	for _, e := range endpoints {
		params := make([]catalog.Field, 0, len(e.Parameters))
		for _, p := range e.Parameters {
			params = append(params, catalog.Field{Name: p.Name, Type: p.Type, Description: p.Description})
		}
		kind := e.Kind
		if kind == "" {
			kind = "endpoint"
		}
		entries = append(entries, catalog.Entry{
			Name:        e.Name,
			Kind:        kind,
			Description: e.Description,
			Path:        "ton/" + e.Name,
			Parameters:  params,
			Returns:     e.Returns,
			Category:    e.Category,
		})
	}
	return entries, nil
}

// New constructs the TON API adapter.
func New(store *cache.Store, client *httpx.Client) providers.Adapter {
	return catalog.New(store, client, catalog.Config{
		Provider:   types.ProviderTON,
		SourceURL:  sourceURL,
		Decode:     decode,
		TTL:        time.Hour,
		Title:      "TON API",
		CatalogURL: "https://docs.ton.org/",
	})
}
