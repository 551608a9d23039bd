package dispatch

import "docsfed.dev/query/providers/types"

// providerNoiseKeywords lists, per provider, the keywords that merely name
// the provider or its umbrella platform and so contribute nothing once the
// provider is already resolved — e.g. the word "swiftui" is redundant in a
// query dispatched to the Apple/SwiftUI adapter. Stripping them keeps the
// adapter's search query focused on the part that actually discriminates
// between results (spec.md §4.6).
var providerNoiseKeywords = map[types.Provider]map[string]bool{
	types.ProviderApple: set(
		"swiftui", "uikit", "foundation", "swift", "ios", "macos", "apple",
		"appkit", "coredata", "cloudkit", "combine", "realitykit", "arkit",
	),
	types.ProviderRust: set("rust", "crate", "cargo"),
	types.ProviderTelegram: set("telegram", "bot", "ton"),
	types.ProviderTON:      set("ton", "blockchain", "tonapi"),
	types.ProviderCocoon:   set("cocoon"),
	types.ProviderMLX:      set("mlx", "mlxswift"),
	types.ProviderHuggingFace: set("huggingface", "hf", "transformers"),
	types.ProviderAgentSDK:    set("claude", "agent", "sdk", "claudeagentsdk"),
}

func set(words ...string) map[string]bool {
	m := make(map[string]bool, len(words))
	for _, w := range words {
		m[w] = true
	}
	return m
}

// CleanQuery joins keywords into a search string, dropping any that appear in
// the provider's noise set.
func CleanQuery(provider types.Provider, keywords []string) string {
	noise := providerNoiseKeywords[provider]
	var kept []string
	for _, kw := range keywords {
		if noise != nil && noise[kw] {
			continue
		}
		kept = append(kept, kw)
	}
	out := ""
	for i, kw := range kept {
		if i > 0 {
			out += " "
		}
		out += kw
	}
	return out
}
