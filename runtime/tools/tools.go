// Package tools implements the four tool handlers this engine exposes
// through the tool-call protocol (spec.md §6): query, choose_technology,
// discover_technologies, and get_documentation. Each wires the
// intent/resolver/dispatch/assembler pipeline together behind the
// runtime/toolregistry.Handler signature.
package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"docsfed.dev/query/providers"
	"docsfed.dev/query/providers/types"
	"docsfed.dev/query/runtime/assembler"
	"docsfed.dev/query/runtime/dispatch"
	"docsfed.dev/query/runtime/intent"
	"docsfed.dev/query/runtime/resolver"
	"docsfed.dev/query/runtime/session"
	"docsfed.dev/query/runtime/toolerrors"
	"docsfed.dev/query/runtime/toolregistry"
)

// defaultProvider/defaultTechnology is the Technology Resolver's documented
// fallback (spec.md §4.4): a query naming no provider, with no technology
// already active, resolves to Apple/SwiftUI rather than erroring.
const (
	defaultProvider   = types.ProviderApple
	defaultTechnology = "swiftui"
)

// Handlers bundles everything the four tool handlers need: the provider
// registry to dispatch against and the dispatcher built over it.
type Handlers struct {
	registry   *providers.Registry
	dispatcher *dispatch.Dispatcher
}

// New constructs the handler bundle.
func New(registry *providers.Registry, dispatcher *dispatch.Dispatcher) *Handlers {
	return &Handlers{registry: registry, dispatcher: dispatcher}
}

// Register installs all four tools into reg, including their declared JSON
// schemas and examples (validated against those schemas at registration
// time per spec.md §8 invariant #1).
func (h *Handlers) Register(reg *toolregistry.Registry) error {
	defs := []toolregistry.Definition{
		{
			Name:          "query",
			Description:   "Answers a natural-language developer documentation question, auto-detecting the relevant provider and technology.",
			InputSchema:   json.RawMessage(querySchema),
			InputExamples: []json.RawMessage{json.RawMessage(`{"query": "SwiftUI NavigationStack"}`)},
			Handler:       h.query,
		},
		{
			Name:          "choose_technology",
			Description:   "Explicitly selects the active provider and technology for subsequent queries.",
			InputSchema:   json.RawMessage(chooseTechnologySchema),
			InputExamples: []json.RawMessage{json.RawMessage(`{"provider": "android", "technology": "jetpack-compose"}`)},
			Handler:       h.chooseTechnology,
		},
		{
			Name:          "discover_technologies",
			Description:   "Lists the technologies a provider's catalog knows about.",
			InputSchema:   json.RawMessage(discoverTechnologiesSchema),
			InputExamples: []json.RawMessage{json.RawMessage(`{"provider": "rust"}`)},
			Handler:       h.discoverTechnologies,
		},
		{
			Name:          "get_documentation",
			Description:   "Fetches full article content for a specific documentation path.",
			InputSchema:   json.RawMessage(getDocumentationSchema),
			InputExamples: []json.RawMessage{json.RawMessage(`{"path": "documentation/swiftui/navigationstack"}`)},
			Handler:       h.getDocumentation,
		},
	}
	for _, def := range defs {
		if err := reg.Register(def); err != nil {
			return err
		}
	}
	return nil
}

const querySchema = `{
	"type": "object",
	"properties": {"query": {"type": "string", "minLength": 1}},
	"required": ["query"]
}`

type queryArgs struct {
	Query string `json:"query"`
}

// query is the core query-resolution pipeline handler: parse intent, resolve
// (or reuse) the active technology, dispatch to the adapter, assemble the
// response.
func (h *Handlers) query(ctx context.Context, sess *session.State, raw json.RawMessage) (toolregistry.ToolResponse, error) {
	var args queryArgs
	if err := json.Unmarshal(raw, &args); err != nil {
		return toolregistry.ToolResponse{}, toolerrors.NewWithCause(toolerrors.KindInvalidArgs, "invalid query payload", err)
	}

	parsed := intent.Parse(args.Query)

	provider, scope, title, err := h.resolveActive(sess, parsed.Provider, parsed.Technology)
	if err != nil {
		return toolregistry.ToolResponse{}, err
	}

	results := h.dispatcher.Dispatch(ctx, provider, scope, parsed.Keywords)
	if len(results) > 0 {
		sess.SetLastSymbol(results[0].Path)
	}

	resp := assembler.Assemble(provider, title, results)
	resp.Metadata["queryType"] = string(parsed.QueryType)
	return toolregistry.TextResponse(resp.Lines, resp.Metadata), nil
}

const chooseTechnologySchema = `{
	"type": "object",
	"properties": {
		"provider": {"type": "string", "minLength": 1},
		"technology": {"type": "string", "minLength": 1}
	},
	"required": ["provider", "technology"]
}`

type chooseTechnologyArgs struct {
	Provider   string `json:"provider"`
	Technology string `json:"technology"`
}

// chooseTechnology installs an explicit active technology into session
// state, bypassing the keyword-detection precedence chain entirely — the
// only way to reach providers like Android that the chain never routes to
// (SPEC_FULL.md §4.10).
func (h *Handlers) chooseTechnology(ctx context.Context, sess *session.State, raw json.RawMessage) (toolregistry.ToolResponse, error) {
	var args chooseTechnologyArgs
	if err := json.Unmarshal(raw, &args); err != nil {
		return toolregistry.ToolResponse{}, toolerrors.NewWithCause(toolerrors.KindInvalidArgs, "invalid choose_technology payload", err)
	}

	provider := types.Provider(args.Provider)
	tech, unified, isApple := resolver.Resolve(provider, args.Technology)
	sess.SetActiveProvider(provider)
	title := installActive(sess, tech, unified, isApple)

	return toolregistry.TextResponse([]string{
		fmt.Sprintf("Active technology set to %s (%s).", title, provider),
	}, map[string]any{"provider": string(provider), "technology": title}), nil
}

const discoverTechnologiesSchema = `{
	"type": "object",
	"properties": {"provider": {"type": "string", "minLength": 1}},
	"required": ["provider"]
}`

type discoverTechnologiesArgs struct {
	Provider string `json:"provider"`
}

// discoverTechnologies lists a provider's catalog without changing the
// active technology.
func (h *Handlers) discoverTechnologies(ctx context.Context, sess *session.State, raw json.RawMessage) (toolregistry.ToolResponse, error) {
	var args discoverTechnologiesArgs
	if err := json.Unmarshal(raw, &args); err != nil {
		return toolregistry.ToolResponse{}, toolerrors.NewWithCause(toolerrors.KindInvalidArgs, "invalid discover_technologies payload", err)
	}

	provider := types.Provider(args.Provider)
	adapter, ok := h.registry.Get(provider)
	if !ok {
		return toolregistry.ToolResponse{}, toolerrors.New(toolerrors.KindInvalidArgs, fmt.Sprintf("unknown provider %q", args.Provider))
	}

	technologies, err := adapter.ListTechnologies(ctx)
	if err != nil {
		// list_technologies degrades to empty on upstream failure
		// (spec.md §7); it never fails the tool call.
		technologies = nil
	}

	lines := make([]string, 0, len(technologies)+1)
	lines = append(lines, fmt.Sprintf("%d technologies available for %s:", len(technologies), provider))
	for _, t := range technologies {
		lines = append(lines, fmt.Sprintf("- %s (%s)", t.Title, t.Identifier))
	}
	return toolregistry.TextResponse(lines, map[string]any{"provider": string(provider), "count": len(technologies)}), nil
}

const getDocumentationSchema = `{
	"type": "object",
	"properties": {
		"path": {"type": "string", "minLength": 1},
		"provider": {"type": "string"}
	},
	"required": ["path"]
}`

type getDocumentationArgs struct {
	Path     string `json:"path"`
	Provider string `json:"provider,omitempty"`
}

// getDocumentation fetches the full article for an explicit path, using the
// active provider/technology unless the caller overrides the provider.
func (h *Handlers) getDocumentation(ctx context.Context, sess *session.State, raw json.RawMessage) (toolregistry.ToolResponse, error) {
	var args getDocumentationArgs
	if err := json.Unmarshal(raw, &args); err != nil {
		return toolregistry.ToolResponse{}, toolerrors.NewWithCause(toolerrors.KindInvalidArgs, "invalid get_documentation payload", err)
	}

	provider := types.Provider(args.Provider)
	if provider == "" {
		active, ok := sess.ActiveProvider()
		if !ok {
			active = defaultProvider
		}
		provider = active
	}

	adapter, ok := h.registry.Get(provider)
	if !ok {
		return toolregistry.ToolResponse{}, toolerrors.New(toolerrors.KindInvalidArgs, fmt.Sprintf("unknown provider %q", provider))
	}

	scope := activeScope(sess, provider)
	article, err := adapter.FetchArticle(ctx, args.Path, scope)
	if err != nil {
		return toolregistry.ToolResponse{}, toolerrors.FromError(err)
	}

	sess.SetLastSymbol(article.Path)
	return toolregistry.TextResponse([]string{
		fmt.Sprintf("# %s", article.Title),
		article.FullContent,
	}, map[string]any{
		"provider": string(provider),
		"kind":     article.Kind,
		"path":     article.Path,
	}), nil
}

// resolveActive determines the (provider, scope, title) a query dispatches
// against: a freshly detected provider/technology takes precedence and is
// installed into session state; otherwise the already-active technology is
// reused; if neither exists, the Technology Resolver's Apple/SwiftUI
// fallback applies (spec.md §4.4).
func (h *Handlers) resolveActive(sess *session.State, detectedProvider types.Provider, detectedTechnology string) (types.Provider, string, string, error) {
	if detectedProvider != "" {
		tech, unified, isApple := resolver.Resolve(detectedProvider, detectedTechnology)
		sess.SetActiveProvider(detectedProvider)
		title := installActive(sess, tech, unified, isApple)
		return detectedProvider, activeScope(sess, detectedProvider), title, nil
	}

	if active, ok := sess.ActiveProvider(); ok {
		return active, activeScope(sess, active), activeTitle(sess, active), nil
	}

	tech, _, _ := resolver.Resolve(defaultProvider, defaultTechnology)
	sess.SetActiveProvider(defaultProvider)
	sess.SetActiveTechnology(tech)
	return defaultProvider, tech.Identifier, tech.Title, nil
}

// installActive writes a resolved technology into the correct session slot
// and returns its display title.
func installActive(sess *session.State, tech types.Technology, unified types.UnifiedTechnology, isApple bool) string {
	if isApple {
		sess.SetActiveTechnology(tech)
		return tech.Title
	}
	sess.SetActiveUnifiedTechnology(unified)
	return unified.Title
}

// activeScope returns the scope string (Apple's technology identifier, or
// every other provider's UnifiedTechnology.Scope) an adapter's Search/
// FetchArticle should be called with for provider.
func activeScope(sess *session.State, provider types.Provider) string {
	if provider == types.ProviderApple {
		if tech, ok := sess.ActiveTechnology(); ok {
			return tech.Identifier
		}
		return defaultTechnology
	}
	if unified, ok := sess.ActiveUnifiedTechnology(); ok {
		return unified.Scope
	}
	return ""
}

func activeTitle(sess *session.State, provider types.Provider) string {
	if provider == types.ProviderApple {
		if tech, ok := sess.ActiveTechnology(); ok {
			return tech.Title
		}
		return ""
	}
	if unified, ok := sess.ActiveUnifiedTechnology(); ok {
		return unified.Title
	}
	return ""
}
