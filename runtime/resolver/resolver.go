// Package resolver turns an (provider, technology identifier) pair detected
// by the intent parser into a concrete types.Technology or
// types.UnifiedTechnology record, synthesizing a fallback record when the
// identifier is not present in a curated catalog (spec.md §4.4 Technology
// Resolver).
package resolver

import (
	"fmt"
	"strings"

	"docsfed.dev/query/providers/types"
)

// Resolve builds the concrete technology record for a detected provider and
// identifier. The third return value is true when the result belongs in
// session state as an Apple technology (types.Technology); false means it
// belongs as a UnifiedTechnology.
func Resolve(provider types.Provider, identifier string) (types.Technology, types.UnifiedTechnology, bool) {
	switch provider {
	case types.ProviderApple:
		return resolveApple(identifier), types.UnifiedTechnology{}, true

	case types.ProviderRust:
		return types.Technology{}, resolveRust(identifier), false

	case types.ProviderTelegram:
		return types.Technology{}, types.UnifiedTechnology{
			Provider: types.ProviderTelegram,
			Title:    "Telegram Bot API",
			URL:      "https://core.telegram.org/bots/api",
		}, false

	case types.ProviderTON:
		return types.Technology{}, types.UnifiedTechnology{
			Provider: types.ProviderTON,
			Title:    "TON API",
			URL:      "https://docs.ton.org/",
		}, false

	case types.ProviderCocoon:
		return types.Technology{}, types.UnifiedTechnology{
			Provider: types.ProviderCocoon,
			Title:    "Cocoon",
			URL:      "https://docs.cocoon.org/",
		}, false

	case types.ProviderMDN:
		return types.Technology{}, types.UnifiedTechnology{
			Provider: types.ProviderMDN,
			Title:    "MDN Web Docs",
			URL:      "https://developer.mozilla.org/en-US/docs/Web",
		}, false

	case types.ProviderReact, types.ProviderNextJS, types.ProviderNodeJS:
		return types.Technology{}, resolveWebFramework(provider, identifier), false

	case types.ProviderMLX:
		return types.Technology{}, types.UnifiedTechnology{
			Provider: types.ProviderMLX,
			Scope:    identifier,
			Title:    orFallback(mlxCatalog[identifier], "MLX"),
		}, false

	case types.ProviderHuggingFace:
		return types.Technology{}, types.UnifiedTechnology{
			Provider: types.ProviderHuggingFace,
			Scope:    identifier,
			Title:    orFallback(huggingFaceCatalog[identifier], "Hugging Face"),
		}, false

	case types.ProviderQuickNode:
		return types.Technology{}, types.UnifiedTechnology{
			Provider: types.ProviderQuickNode,
			Scope:    identifier,
			Title:    orFallback(quickNodeCatalog[identifier], "QuickNode Solana"),
		}, false

	case types.ProviderAgentSDK:
		return types.Technology{}, types.UnifiedTechnology{
			Provider: types.ProviderAgentSDK,
			Scope:    identifier,
			Title:    orFallback(agentSDKCatalog[identifier], "Claude Agent SDK"),
		}, false

	case types.ProviderAndroid:
		// Android is reachable only via explicit choose_technology
		// (SPEC_FULL.md §4.10); it has no query-intent detection branch.
		return types.Technology{}, types.UnifiedTechnology{
			Provider: types.ProviderAndroid,
			Scope:    identifier,
			Title:    fmt.Sprintf("Android: %s", titleCase(lastSegment(identifier))),
		}, false

	default:
		return types.Technology{}, types.UnifiedTechnology{
			Provider: provider,
			Title:    titleCase(identifier),
		}, false
	}
}

func resolveApple(identifier string) types.Technology {
	if entry, ok := appleCatalog[identifier]; ok {
		return types.Technology{
			Provider:   types.ProviderApple,
			Identifier: identifier,
			Title:      entry.title,
			URL:        entry.url,
		}
	}
	return types.Technology{
		Provider:    types.ProviderApple,
		Identifier:  identifier,
		Title:       titleCase(lastSegment(identifier)),
		Synthesized: true,
	}
}

// rustNamespace/webfwNamespace are the provider-namespace prefixes spec.md
// §3 requires every technology identifier to carry (e.g. "rust:tokio",
// "webfw:react"), matching the "mlx:", "hf:", "quicknode:", and "agent-sdk:"
// prefixes the other scoped providers already namespace their UnifiedTechnology
// with. intent.Parse attaches these prefixes at detection time; Resolve
// normalizes here too so an explicit choose_technology call naming a bare
// crate or framework still produces a correctly namespaced Scope.
const (
	rustNamespace  = "rust:"
	webfwNamespace = "webfw:"
)

func resolveRust(identifier string) types.UnifiedTechnology {
	crate := strings.TrimPrefix(identifier, rustNamespace)
	return types.UnifiedTechnology{
		Provider: types.ProviderRust,
		Scope:    rustNamespace + crate,
		Title:    fmt.Sprintf("Rust %s", crate),
		URL:      fmt.Sprintf("https://docs.rs/%s", crate),
	}
}

func resolveWebFramework(provider types.Provider, identifier string) types.UnifiedTechnology {
	name := strings.TrimPrefix(identifier, webfwNamespace)
	if entry, ok := webFrameworkCatalog[name]; ok {
		return types.UnifiedTechnology{Provider: provider, Scope: webfwNamespace + name, Title: entry.title, URL: entry.url}
	}
	return types.UnifiedTechnology{Provider: provider, Scope: webfwNamespace + name, Title: titleCase(name)}
}

// orFallback returns title if non-empty, otherwise the fallback.
func orFallback(title, fallback string) string {
	if title == "" {
		return fallback
	}
	return title
}

// lastSegment returns the final path-like component of an identifier, used
// to derive a readable title for an identifier not present in a catalog.
func lastSegment(identifier string) string {
	if identifier == "" {
		return identifier
	}
	segments := strings.FieldsFunc(identifier, func(r rune) bool {
		return r == '/' || r == ':' || r == '.'
	})
	if len(segments) == 0 {
		return identifier
	}
	return segments[len(segments)-1]
}

// titleCase capitalizes the first letter of each hyphen/underscore-separated
// word, e.g. "core-data" -> "Core Data".
func titleCase(s string) string {
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")
	words := strings.Fields(s)
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
