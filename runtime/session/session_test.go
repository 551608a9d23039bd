package session

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docsfed.dev/query/providers/types"
)

func TestSetActiveTechnologyClearsUnified(t *testing.T) {
	t.Parallel()

	s := New()
	s.SetActiveUnifiedTechnology(types.UnifiedTechnology{Provider: types.ProviderReact, Title: "React"})
	s.SetActiveTechnology(types.Technology{Provider: types.ProviderApple, Identifier: "swiftui"})

	tech, ok := s.ActiveTechnology()
	require.True(t, ok)
	assert.Equal(t, "swiftui", tech.Identifier)

	_, ok = s.ActiveUnifiedTechnology()
	assert.False(t, ok, "selecting an Apple technology must clear any active unified technology")
}

func TestFrameworkIndexClearedTogether(t *testing.T) {
	t.Parallel()

	s := New()
	entries := []types.FrameworkIndexEntry{{Title: "Button", Kind: "struct", Path: "doc://button"}}
	index := map[string][]int{"button": {0}}
	s.SetFrameworkIndex("swiftui", entries, index)

	gotEntries, gotIndex, ok := s.FrameworkIndex("swiftui")
	require.True(t, ok)
	assert.Len(t, gotEntries, 1)
	assert.Equal(t, []int{0}, gotIndex["button"])

	s.ClearFrameworkIndex("swiftui")
	_, _, ok = s.FrameworkIndex("swiftui")
	assert.False(t, ok)
}

func TestTelemetryRingBounded(t *testing.T) {
	t.Parallel()

	s := New()
	s.telemetryCap = 3
	for i := 0; i < 5; i++ {
		s.RecordTelemetry(TelemetryEvent{Tool: "query", Timestamp: time.Now()})
	}

	events := s.Telemetry()
	assert.Len(t, events, 3, "telemetry ring must stay bounded to its cap")
}

func TestConcurrentAccessIsRaceFree(t *testing.T) {
	t.Parallel()

	s := New()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			s.SetActiveProvider(types.ProviderApple)
		}()
		go func() {
			defer wg.Done()
			s.ActiveProvider()
		}()
	}
	wg.Wait()
}
