// Package wiring assembles the concrete dependency graph this engine runs
// with: every provider adapter constructed and registered into one
// providers.Registry, given a shared cache store, HTTP client, session, and
// logger. It exists as its own package (rather than living in the providers
// package itself) because every adapter subpackage imports providers for the
// Adapter interface and sentinel errors — constructing them from inside
// providers itself would be an import cycle.
package wiring

import (
	"docsfed.dev/query/providers"
	"docsfed.dev/query/providers/agentsdk"
	"docsfed.dev/query/providers/android"
	"docsfed.dev/query/providers/apple"
	"docsfed.dev/query/providers/cocoon"
	"docsfed.dev/query/providers/cuda"
	"docsfed.dev/query/providers/gamedev"
	"docsfed.dev/query/providers/httpx"
	"docsfed.dev/query/providers/huggingface"
	"docsfed.dev/query/providers/mdn"
	"docsfed.dev/query/providers/metal"
	"docsfed.dev/query/providers/mlx"
	"docsfed.dev/query/providers/quicknode"
	"docsfed.dev/query/providers/rust"
	"docsfed.dev/query/providers/telegram"
	"docsfed.dev/query/providers/ton"
	"docsfed.dev/query/providers/types"
	"docsfed.dev/query/providers/vertcoin"
	"docsfed.dev/query/providers/webfw"
	"docsfed.dev/query/runtime/cache"
	"docsfed.dev/query/runtime/session"
	"docsfed.dev/query/runtime/telemetry"
)

// BuildRegistry constructs one Adapter per federated provider and registers
// all of them into a single Registry. store and client are shared across
// every adapter: each adapter namespaces its own cache keys (the provider
// name is always the first cache.Fetch namespace segment), so sharing the
// *cache.Store mixes no entries across providers. The shared *httpx.Client
// carries one rate limiter, so all adapters draw from one request budget.
//
// sess is the Apple adapter's framework_cache/framework_index owner (spec.md
// §4.3); every other adapter is session-independent.
func BuildRegistry(store *cache.Store, client *httpx.Client, sess *session.State, logger telemetry.Logger) *providers.Registry {
	reg := providers.NewRegistry()

	reg.Register(types.ProviderApple, apple.New(store, client, sess, logger))
	reg.Register(types.ProviderRust, rust.New(store, client))
	reg.Register(types.ProviderTelegram, telegram.New(store, client))
	reg.Register(types.ProviderTON, ton.New(store, client))
	reg.Register(types.ProviderCocoon, cocoon.New(store, client))
	reg.Register(types.ProviderMDN, mdn.New(store, client))
	reg.Register(types.ProviderReact, webfw.NewReact(store, client))
	reg.Register(types.ProviderNextJS, webfw.NewNextJS(store, client))
	reg.Register(types.ProviderNodeJS, webfw.NewNodeJS(store, client))
	reg.Register(types.ProviderMLX, mlx.New(store, client))
	reg.Register(types.ProviderHuggingFace, huggingface.New(store, client))
	reg.Register(types.ProviderQuickNode, quicknode.New(store, client))
	reg.Register(types.ProviderAgentSDK, agentsdk.New(store, client))
	reg.Register(types.ProviderCUDA, cuda.New(store, client))
	reg.Register(types.ProviderMetal, metal.New(store, client))
	reg.Register(types.ProviderGameDev, gamedev.New(store, client))
	reg.Register(types.ProviderVertcoin, vertcoin.New(store, client))
	reg.Register(types.ProviderAndroid, android.New(store, client))

	return reg
}
