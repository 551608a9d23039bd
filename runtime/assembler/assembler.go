// Package assembler implements the Response Assembler (spec.md §4.7): it
// turns a ranked, partially enriched result set into a language-agnostic
// structured payload — an ordered sequence of markdown-flavored lines plus a
// metadata object — ready to hand back through the tool-call protocol.
package assembler

import (
	"fmt"
	"strings"

	"docsfed.dev/query/providers/types"
)

// Detail-rendering caps, per spec.md §4.7.
const (
	maxOverviewLength = 4000
	maxCodeLength     = 2000
)

// detailedResultCount is how many leading results get the full card
// treatment (declaration, overview, parameters, example); the rest render as
// a one-line title + summary.
const detailedResultCount = 5

// Response is the structured payload returned to a tool caller.
type Response struct {
	Lines    []string
	Metadata map[string]any
}

// providerLanguage maps a provider to the language tag used in fenced code
// blocks for its declarations and examples.
var providerLanguage = map[types.Provider]string{
	types.ProviderApple:       "swift",
	types.ProviderRust:        "rust",
	types.ProviderReact:       "typescript",
	types.ProviderNextJS:      "typescript",
	types.ProviderNodeJS:      "javascript",
	types.ProviderMDN:         "javascript",
	types.ProviderTelegram:    "json",
	types.ProviderTON:         "json",
	types.ProviderCocoon:      "json",
	types.ProviderMLX:         "python",
	types.ProviderHuggingFace: "python",
	types.ProviderQuickNode:   "json",
	types.ProviderAgentSDK:    "typescript",
	types.ProviderCUDA:        "cuda",
	types.ProviderMetal:       "metal",
	types.ProviderGameDev:     "swift",
	types.ProviderVertcoin:    "json",
	types.ProviderAndroid:     "kotlin",
}

// Language returns the fenced-code-block language tag for a provider, with a
// per-technology override (e.g. MLX Swift vs MLX Python already resolves
// through the scoped identifier upstream, but an adapter may still need to
// say e.g. "objective-c" for a platform-specific declaration).
func Language(provider types.Provider, override string) string {
	if override != "" {
		return override
	}
	if lang, ok := providerLanguage[provider]; ok {
		return lang
	}
	return "text"
}

// Assemble builds the structured response for one query's ranked results.
func Assemble(provider types.Provider, technologyTitle string, results []types.SearchResult) Response {
	if len(results) == 0 {
		return Response{
			Lines: []string{"No results found. Try different keywords or choose a different technology."},
			Metadata: map[string]any{
				"provider":      string(provider),
				"technology":    technologyTitle,
				"resultCount":   0,
				"hasFullContent": false,
			},
		}
	}

	var lines []string
	hasFullContent := false
	for i, r := range results {
		if i < detailedResultCount {
			lines = append(lines, renderDetailed(provider, r)...)
			if r.Enriched {
				hasFullContent = true
			}
		} else {
			lines = append(lines, renderSummary(r)...)
		}
	}

	return Response{
		Lines: lines,
		Metadata: map[string]any{
			"provider":       string(provider),
			"technology":     technologyTitle,
			"resultCount":    len(results),
			"hasFullContent": hasFullContent,
		},
	}
}

func renderDetailed(provider types.Provider, r types.SearchResult) []string {
	var lines []string
	lines = append(lines, fmt.Sprintf("## %s `%s`", r.Title, r.Kind))

	if len(r.Platforms) > 0 {
		lines = append(lines, fmt.Sprintf("_Platforms: %s_", strings.Join(r.Platforms, ", ")))
	}

	if r.Declaration != "" {
		lines = append(lines, fmt.Sprintf("```%s\n%s\n```", Language(provider, ""), r.Declaration))
	}

	overview := r.FullContent
	if overview == "" {
		overview = r.Summary
	}
	if overview != "" {
		lines = append(lines, Trim(overview, maxOverviewLength))
	}

	for _, p := range r.Parameters {
		if p.Description != "" {
			lines = append(lines, fmt.Sprintf("- `%s` (%s): %s", p.Name, p.Type, p.Description))
		} else {
			lines = append(lines, fmt.Sprintf("- `%s` (%s)", p.Name, p.Type))
		}
	}

	if r.CodeSample != "" {
		lines = append(lines, fmt.Sprintf("```%s\n%s\n```", Language(provider, ""), Trim(r.CodeSample, maxCodeLength)))
	}

	if len(r.RelatedAPIs) > 0 {
		lines = append(lines, fmt.Sprintf("Related: %s", strings.Join(r.RelatedAPIs, ", ")))
	}

	return lines
}

func renderSummary(r types.SearchResult) []string {
	if r.Summary == "" {
		return []string{fmt.Sprintf("- %s", r.Title)}
	}
	return []string{fmt.Sprintf("- %s — %s", r.Title, r.Summary)}
}
