// Package types defines the data model shared by every provider adapter and
// by the runtime packages that dispatch across them (spec.md §3).
package types

// Provider identifies one of the eighteen upstream documentation sources the
// engine federates.
type Provider string

const (
	ProviderApple       Provider = "apple"
	ProviderRust        Provider = "rust"
	ProviderTelegram    Provider = "telegram"
	ProviderTON         Provider = "ton"
	ProviderCocoon      Provider = "cocoon"
	ProviderMDN         Provider = "mdn"
	ProviderReact       Provider = "react"
	ProviderNextJS      Provider = "nextjs"
	ProviderNodeJS      Provider = "nodejs"
	ProviderMLX         Provider = "mlx"
	ProviderHuggingFace Provider = "huggingface"
	ProviderQuickNode   Provider = "quicknode"
	ProviderAgentSDK    Provider = "agent-sdk"
	ProviderCUDA        Provider = "cuda"
	ProviderMetal       Provider = "metal"
	ProviderGameDev     Provider = "gamedev"
	ProviderVertcoin    Provider = "vertcoin"
	// ProviderAndroid is a SPEC_FULL.md supplement (§4.10): an Android
	// documentation catalog reachable only via explicit choose_technology,
	// never through the closed query-intent keyword-precedence chain.
	ProviderAndroid Provider = "android"
)

// Technology is the resolved, provider-scoped unit of documentation a session
// can be "looking at" — an Apple framework, a Rust crate, a fixed-identity
// catalog such as the Telegram Bot API, and so on.
type Technology struct {
	Provider Provider `json:"provider"`
	// Identifier is Apple's provider-internal framework key (e.g.
	// "swiftui", "coreml"). Apple is the only provider resolved into this
	// struct (see Resolve), so it is never namespaced the way
	// UnifiedTechnology.Scope is for every other provider.
	Identifier string `json:"identifier"`
	// Title is the human-readable display name.
	Title string `json:"title"`
	// Description is an optional one-line summary shown in discovery listings.
	Description string `json:"description,omitempty"`
	// Kind classifies the technology: framework, api-category,
	// blockchain-api, doc-section, crate, web-framework, ml-library, ...
	Kind string `json:"kind,omitempty"`
	// URL is the canonical documentation entry point, when one exists.
	URL string `json:"url,omitempty"`
	// Synthesized marks a Technology constructed as a fallback because the
	// identifier was not found in a curated catalog (spec.md §4.3).
	Synthesized bool `json:"synthesized,omitempty"`
}

// UnifiedTechnology is the cross-provider shape returned by
// discover_technologies and choose_technology for non-Apple providers, where
// there is no framework/category split to preserve. Scope doubles as this
// struct's technology identifier (spec.md §3): for every provider whose
// catalog branches by sub-technology, Scope carries the namespaced form
// spec.md §3 names directly (e.g. "rust:tokio", "webfw:react",
// "mlx:python", "agent-sdk:python"), and runtime/resolver is responsible for
// producing it in that shape. Providers with a single fixed catalog
// (Telegram, TON, Cocoon, MDN) leave Scope empty since there is nothing to
// namespace.
type UnifiedTechnology struct {
	Provider Provider `json:"provider"`
	Scope    string   `json:"scope,omitempty"`
	Title    string   `json:"title"`
	URL      string   `json:"url,omitempty"`
}

// Category groups related documentation entries within a technology (an
// Apple DocC topic section, a Rust module, a scraped doc-site section).
type Category struct {
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	EntryPaths  []string `json:"entry_paths,omitempty"`
}

// SearchResult is a single ranked hit returned by the Search Dispatcher
// before enrichment.
type SearchResult struct {
	Title       string   `json:"title"`
	Kind        string   `json:"kind"`
	Path        string   `json:"path"`
	Summary     string   `json:"summary,omitempty"`
	Platforms   []string `json:"platforms,omitempty"`
	Score       int      `json:"score"`
	RelatedAPIs []string `json:"related_apis,omitempty"`

	// The following fields are populated only for the top MAX_DETAILED_DOCS
	// results by the Enricher (spec.md §4.6); everything else carries only
	// the summary fields above.
	Declaration string  `json:"declaration,omitempty"`
	CodeSample  string  `json:"code_sample,omitempty"`
	FullContent string  `json:"full_content,omitempty"`
	Parameters  []Param `json:"parameters,omitempty"`
	Enriched    bool    `json:"-"`
}

// Article is a fully enriched documentation entry: the detailed-view shape
// produced by fetch_article and attached to the top MAX_DETAILED_DOCS search
// hits.
type Article struct {
	Title        string   `json:"title"`
	Kind         string   `json:"kind"`
	Path         string   `json:"path"`
	Summary      string   `json:"summary,omitempty"`
	Platforms    []string `json:"platforms,omitempty"`
	CodeSample   string   `json:"code_sample,omitempty"`
	RelatedAPIs  []string `json:"related_apis,omitempty"`
	FullContent  string   `json:"full_content,omitempty"`
	Declaration  string   `json:"declaration,omitempty"`
	Parameters   []Param  `json:"parameters,omitempty"`
}

// Param documents a single function/method parameter surfaced in a
// fetch_article response.
type Param struct {
	Name        string `json:"name"`
	Type        string `json:"type,omitempty"`
	Description string `json:"description,omitempty"`
}

// FrameworkIndexEntry is one flattened, tokenized row of the Apple Framework
// Index Service (spec.md §4.2): a symbol or article pulled out of a DocC
// references map and scored against search tokens.
type FrameworkIndexEntry struct {
	Title     string   `json:"title"`
	Kind      string   `json:"kind"`
	Path      string   `json:"path"`
	Abstract  string   `json:"abstract,omitempty"`
	Tokens    []string `json:"tokens"`
	Platforms []string `json:"platforms,omitempty"`
}
