package assembler

import (
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
)

func TestTrimShortStringUnchanged(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "hello", Trim("hello", 10))
}

func TestTrimExactLengthUnchanged(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "hello", Trim("hello", 5))
}

func TestTrimBacksUpToRuneBoundary(t *testing.T) {
	t.Parallel()

	s := "aéb" // "a", e-acute (2 bytes), "b"
	got := Trim(s, 2)
	assert.True(t, strings.HasSuffix(got, "…"))
	assert.True(t, strings.HasPrefix(s, strings.TrimSuffix(got, "…")))
}

func TestTrimZeroCap(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "…", Trim("hello", 0))
}

// TestTrimIsAlwaysAPrefixPlusEllipsis is the property from spec.md §8
// invariant #4: for any string s and any byte-cap N, Trim(s, N) is either s
// itself (when it already fits) or a prefix of s followed by an ellipsis.
func TestTrimIsAlwaysAPrefixPlusEllipsis(t *testing.T) {
	t.Parallel()

	parameters := gopter.DefaultTestParameters()
	properties := gopter.NewProperties(parameters)

	properties.Property("trim result is s or a prefix of s plus an ellipsis", prop.ForAll(
		func(s string, n uint8) bool {
			limit := int(n)
			got := Trim(s, limit)
			if got == s {
				return len(s) <= limit
			}
			trimmed := strings.TrimSuffix(got, "…")
			return strings.HasPrefix(s, trimmed) && len(trimmed) <= limit
		},
		gen.AnyString(),
		gen.UInt8Range(0, 200),
	))

	properties.TestingRun(t)
}
