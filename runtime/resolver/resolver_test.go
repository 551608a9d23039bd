package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"docsfed.dev/query/providers/types"
)

func TestResolveAppleKnownFramework(t *testing.T) {
	t.Parallel()

	tech, _, isApple := Resolve(types.ProviderApple, "swiftui")
	assert.True(t, isApple)
	assert.Equal(t, "SwiftUI", tech.Title)
	assert.False(t, tech.Synthesized)
}

func TestResolveAppleSynthesizesUnknownIdentifier(t *testing.T) {
	t.Parallel()

	tech, _, isApple := Resolve(types.ProviderApple, "doc://com.apple.documentation/documentation/mystery-kit")
	assert.True(t, isApple)
	assert.True(t, tech.Synthesized)
	assert.Equal(t, "Mystery Kit", tech.Title)
}

func TestResolveRustCrate(t *testing.T) {
	t.Parallel()

	_, unified, isApple := Resolve(types.ProviderRust, "tokio")
	assert.False(t, isApple)
	assert.Equal(t, "Rust tokio", unified.Title)
	assert.Equal(t, "https://docs.rs/tokio", unified.URL)
	assert.Equal(t, "rust:tokio", unified.Scope)
}

func TestResolveRustCrateAcceptsAlreadyNamespacedIdentifier(t *testing.T) {
	t.Parallel()

	_, unified, _ := Resolve(types.ProviderRust, "rust:tokio")
	assert.Equal(t, "Rust tokio", unified.Title)
	assert.Equal(t, "rust:tokio", unified.Scope)
}

func TestResolveWebFrameworkNamespacesScope(t *testing.T) {
	t.Parallel()

	_, unified, _ := Resolve(types.ProviderReact, "react")
	assert.Equal(t, "React", unified.Title)
	assert.Equal(t, "webfw:react", unified.Scope)
}

func TestResolveTelegramFixedRecord(t *testing.T) {
	t.Parallel()

	_, unified, _ := Resolve(types.ProviderTelegram, "telegram")
	assert.Equal(t, "Telegram Bot API", unified.Title)
}

func TestResolveQuickNodeScopedTitle(t *testing.T) {
	t.Parallel()

	_, unified, _ := Resolve(types.ProviderQuickNode, "quicknode:websocket")
	assert.Equal(t, "QuickNode Solana WebSocket", unified.Title)
}

func TestResolveAndroidBuildsUnifiedRecord(t *testing.T) {
	t.Parallel()

	_, unified, _ := Resolve(types.ProviderAndroid, "jetpack-compose")
	assert.Equal(t, types.ProviderAndroid, unified.Provider)
	assert.Contains(t, unified.Title, "Jetpack Compose")
}
