// Package telegram adapts the Telegram Bot API method reference into the
// uniform catalog shape (spec.md §4.2 rule 5, §6).
package telegram

import (
	"encoding/json"
	"time"

	"docsfed.dev/query/providers"
	"docsfed.dev/query/providers/catalog"
	"docsfed.dev/query/providers/httpx"
	"docsfed.dev/query/providers/types"
	"docsfed.dev/query/runtime/cache"
)

const sourceURL = "https://core.telegram.org/bots/api-json"

// apiMethod mirrors the upstream method shape before normalization into
// catalog.Entry.
type apiMethod struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Fields      []apiMethodField `json:"fields"`
	Returns     string          `json:"returns"`
}

type apiMethodField struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Description string `json:"description"`
}

func decode(raw []byte) ([]catalog.Entry, error) {
	var methods []apiMethod
	if err := json.Unmarshal(raw, &methods); err != nil {
		return nil, err
	}
	entries := make([]catalog.Entry, 0, len(methods))
	for _, m := range methods {
		fields := make([]catalog.Field, 0, len(m.Fields))
		for _, f := range m.Fields {
			fields = append(fields, catalog.Field{Name: f.Name, Type: f.Type, Description: f.Description})
		}
		entries = append(entries, catalog.Entry{
			Name:        m.Name,
			Kind:        "method",
			Description: m.Description,
			Path:        "telegram/" + m.Name,
			Parameters:  fields,
			Returns:     m.Returns,
		})
	}
	return entries, nil
}

// New constructs the Telegram Bot API adapter.
func New(store *cache.Store, client *httpx.Client) providers.Adapter {
	return catalog.New(store, client, catalog.Config{
		Provider:   types.ProviderTelegram,
		SourceURL:  sourceURL,
		Decode:     decode,
		TTL:        time.Hour,
		Title:      "Telegram Bot API",
		CatalogURL: "https://core.telegram.org/bots/api",
	})
}
