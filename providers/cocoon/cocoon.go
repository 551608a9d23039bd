// Package cocoon adapts the Cocoon animation framework's documentation site
// into the HTML-scraping adapter shape (spec.md §4.2 rule 4).
package cocoon

import (
	"time"

	"docsfed.dev/query/providers"
	"docsfed.dev/query/providers/httpx"
	"docsfed.dev/query/providers/scrape"
	"docsfed.dev/query/providers/types"
	"docsfed.dev/query/runtime/cache"
)

const baseURL = "https://cocoon.dev/docs/"

var seeds = []scrape.Seed{
	{Slug: "widgets/play-animation", Title: "PlayAnimation", Description: "Plays a Cocoon animation asset inside a widget tree.", Kind: "widget", Category: "widgets"},
	{Slug: "widgets/animated-sprite-sheet", Title: "AnimatedSpriteSheet", Description: "Renders a frame-based sprite sheet animation.", Kind: "widget", Category: "widgets"},
	{Slug: "concepts/timeline", Title: "Timeline", Description: "The keyframe timeline model shared by every Cocoon animation.", Kind: "concept", Category: "concepts"},
	{Slug: "concepts/easing", Title: "Easing curves", Description: "Built-in and custom easing curves for interpolating keyframes.", Kind: "concept", Category: "concepts"},
	{Slug: "guides/export-from-after-effects", Title: "Exporting from After Effects", Description: "Exporting a Bodymovin/Lottie-compatible asset for Cocoon.", Kind: "guide", Category: "guides"},
	{Slug: "guides/triggering-on-gesture", Title: "Triggering animations on gesture", Description: "Wiring tap and drag gestures to animation playback control.", Kind: "guide", Category: "guides"},
	{Slug: "api/animation-controller", Title: "AnimationController", Description: "Imperative playback control: play, pause, seek, reverse.", Kind: "class", Category: "api"},
}

// New constructs the Cocoon adapter.
func New(store *cache.Store, client *httpx.Client) providers.Adapter {
	return scrape.New(store, client, scrape.Config{
		Provider: types.ProviderCocoon,
		Seeds:    seeds,
		ArticleURL: func(slug string) string {
			return baseURL + slug
		},
		Selectors: scrape.Selectors{
			Content:     []string{"article", ".prose", "main"},
			Declaration: []string{".api-signature", "pre.signature"},
			CodeSample:  []string{"pre code", ".code-sample"},
		},
		TTL:          time.Hour,
		CatalogTitle: "Cocoon",
		CatalogURL:   baseURL,
	})
}
