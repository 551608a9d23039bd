// Command fedquery-demo wires the full engine — config, telemetry, cache,
// the provider registry, the dispatcher, and the four tool handlers — and
// runs one sample query end to end.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/redis/go-redis/v9"

	"docsfed.dev/query/internal/config"
	"docsfed.dev/query/internal/wiring"
	"docsfed.dev/query/providers/httpx"
	"docsfed.dev/query/runtime/cache"
	"docsfed.dev/query/runtime/dispatch"
	"docsfed.dev/query/runtime/session"
	"docsfed.dev/query/runtime/telemetry"
	"docsfed.dev/query/runtime/tools"
	"docsfed.dev/query/runtime/toolregistry"
)

func main() {
	ctx := context.Background()

	cfg, err := config.New()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}

	logger := telemetry.NewNoopLogger()

	store := buildStore(cfg)
	client := httpx.New(
		httpx.WithRateLimit(cfg.HTTPRateLimit(), cfg.HTTPBurst()),
		httpx.WithMaxRetries(cfg.HTTPMaxRetries()),
	)

	sess := session.New()
	registry := wiring.BuildRegistry(store, client, sess, logger)
	dispatcher := dispatch.New(registry, logger)

	handlers := tools.New(registry, dispatcher)
	reg := toolregistry.New(sess, logger, telemetry.NewNoopMetrics())
	if err := handlers.Register(reg); err != nil {
		fmt.Fprintln(os.Stderr, "register tools:", err)
		os.Exit(1)
	}

	resp, err := reg.Dispatch(ctx, "query", json.RawMessage(`{"query": "SwiftUI NavigationStack"}`))
	if err != nil {
		fmt.Fprintln(os.Stderr, "query:", err)
		os.Exit(1)
	}

	for _, item := range resp.Content {
		fmt.Println(item.Text)
	}
}

// buildStore assembles the two-tier cache: an in-process map (or a shared
// Redis instance, if configured) backed by an optional disk tier.
func buildStore(cfg *config.Config) *cache.Store {
	var memory cache.MemoryStore
	if addr := cfg.CacheRedisAddr(); addr != "" {
		memory = cache.NewRedisStore(redis.NewClient(&redis.Options{Addr: addr}), "docsfed")
	} else {
		memory = cache.NewSyncMapStore()
	}

	var disk cache.DiskStore
	if dir := cfg.CacheDir(); dir != "" {
		disk = cache.NewFileDiskStore(dir)
	}

	return cache.NewStore(memory, disk)
}
