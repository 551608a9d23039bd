// Package session holds the per-conversation mutable state the query engine
// tracks between tool calls: which provider and technology are active, the
// cached framework index for the active Apple technology, and a bounded
// telemetry ring (spec.md §4.5, §5).
//
// State guards related fields with their own sync.RWMutex rather than one
// coarse lock or a message-passing actor (see DESIGN.md's Open Question
// decision): the fields change at different rates and are read far more
// often than written, so per-group locks let concurrent tool calls read
// session state without contending with each other.
package session

import (
	"sync"
	"time"

	"docsfed.dev/query/providers/types"
)

// DesignGuidanceEntry is a cached design-guidance lookup result (spec.md
// §4.9). It is never written to disk: design guidance is derived from
// Apple's live Human Interface Guidelines documents, so recomputing it on
// process restart is cheap and keeping it off disk avoids a second cache
// invalidation path to keep in sync with upstream.
type DesignGuidanceEntry struct {
	Topic   string
	Content string
}

// TelemetryEvent is one bounded record of a completed tool call, kept for
// introspection (spec.md §4.8).
type TelemetryEvent struct {
	Tool      string
	Provider  types.Provider
	Duration  time.Duration
	Err       string
	Timestamp time.Time
}

// State is the mutable, concurrency-safe state of a single session.
type State struct {
	providerMu     sync.RWMutex
	activeProvider types.Provider

	technologyMu        sync.RWMutex
	activeTechnology     *types.Technology
	activeUnifiedTech    *types.UnifiedTechnology

	frameworkMu    sync.RWMutex
	frameworkCache map[string][]types.FrameworkIndexEntry
	frameworkIndex map[string]map[string][]int // technology -> token -> entry indices

	guidanceMu sync.RWMutex
	guidance   map[string]DesignGuidanceEntry

	symbolMu   sync.RWMutex
	lastSymbol string

	telemetryMu  sync.Mutex
	telemetry    []TelemetryEvent
	telemetryCap int
}

// defaultTelemetryCap bounds the in-memory telemetry ring so a long-lived
// session cannot grow state without bound (spec.md §4.8).
const defaultTelemetryCap = 200

// New constructs an empty session State.
func New() *State {
	return &State{
		frameworkCache: make(map[string][]types.FrameworkIndexEntry),
		frameworkIndex: make(map[string]map[string][]int),
		guidance:       make(map[string]DesignGuidanceEntry),
		telemetryCap:   defaultTelemetryCap,
	}
}

// ActiveProvider returns the currently selected provider, if any.
func (s *State) ActiveProvider() (types.Provider, bool) {
	s.providerMu.RLock()
	defer s.providerMu.RUnlock()
	return s.activeProvider, s.activeProvider != ""
}

// SetActiveProvider updates the selected provider.
func (s *State) SetActiveProvider(p types.Provider) {
	s.providerMu.Lock()
	s.activeProvider = p
	s.providerMu.Unlock()
}

// ActiveTechnology returns the currently selected Apple technology, if any.
func (s *State) ActiveTechnology() (types.Technology, bool) {
	s.technologyMu.RLock()
	defer s.technologyMu.RUnlock()
	if s.activeTechnology == nil {
		return types.Technology{}, false
	}
	return *s.activeTechnology, true
}

// ActiveUnifiedTechnology returns the currently selected non-Apple
// technology, if any.
func (s *State) ActiveUnifiedTechnology() (types.UnifiedTechnology, bool) {
	s.technologyMu.RLock()
	defer s.technologyMu.RUnlock()
	if s.activeUnifiedTech == nil {
		return types.UnifiedTechnology{}, false
	}
	return *s.activeUnifiedTech, true
}

// SetActiveTechnology selects an Apple technology and clears any active
// unified technology, since only one can be active at a time.
func (s *State) SetActiveTechnology(tech types.Technology) {
	s.technologyMu.Lock()
	s.activeTechnology = &tech
	s.activeUnifiedTech = nil
	s.technologyMu.Unlock()
}

// SetActiveUnifiedTechnology selects a non-Apple technology and clears any
// active Apple technology.
func (s *State) SetActiveUnifiedTechnology(tech types.UnifiedTechnology) {
	s.technologyMu.Lock()
	s.activeUnifiedTech = &tech
	s.activeTechnology = nil
	s.technologyMu.Unlock()
}

// FrameworkIndex returns the cached flat entries and token index for a
// technology identifier, if the framework index has already been built.
func (s *State) FrameworkIndex(identifier string) ([]types.FrameworkIndexEntry, map[string][]int, bool) {
	s.frameworkMu.RLock()
	defer s.frameworkMu.RUnlock()
	entries, ok := s.frameworkCache[identifier]
	if !ok {
		return nil, nil, false
	}
	return entries, s.frameworkIndex[identifier], true
}

// SetFrameworkIndex stores the built flat entries and token index for a
// technology identifier. The two maps are always cleared and repopulated
// together so a reader never observes one without the other (spec.md §5).
func (s *State) SetFrameworkIndex(identifier string, entries []types.FrameworkIndexEntry, index map[string][]int) {
	s.frameworkMu.Lock()
	s.frameworkCache[identifier] = entries
	s.frameworkIndex[identifier] = index
	s.frameworkMu.Unlock()
}

// ClearFrameworkIndex drops the cached index for a technology identifier,
// forcing a rebuild on next access.
func (s *State) ClearFrameworkIndex(identifier string) {
	s.frameworkMu.Lock()
	delete(s.frameworkCache, identifier)
	delete(s.frameworkIndex, identifier)
	s.frameworkMu.Unlock()
}

// DesignGuidance returns a cached design-guidance entry for a topic, if one
// has already been computed this session.
func (s *State) DesignGuidance(key string) (DesignGuidanceEntry, bool) {
	s.guidanceMu.RLock()
	defer s.guidanceMu.RUnlock()
	entry, ok := s.guidance[key]
	return entry, ok
}

// SetDesignGuidance stores a lazily computed design-guidance entry.
func (s *State) SetDesignGuidance(key string, entry DesignGuidanceEntry) {
	s.guidanceMu.Lock()
	s.guidance[key] = entry
	s.guidanceMu.Unlock()
}

// LastSymbol returns the most recently resolved symbol path, as recorded by
// the query and get_documentation handlers.
func (s *State) LastSymbol() (string, bool) {
	s.symbolMu.RLock()
	defer s.symbolMu.RUnlock()
	return s.lastSymbol, s.lastSymbol != ""
}

// SetLastSymbol records the most recently resolved symbol path.
func (s *State) SetLastSymbol(path string) {
	s.symbolMu.Lock()
	s.lastSymbol = path
	s.symbolMu.Unlock()
}

// RecordTelemetry appends a tool-call event to the bounded ring, dropping the
// oldest entry once the cap is reached.
func (s *State) RecordTelemetry(event TelemetryEvent) {
	s.telemetryMu.Lock()
	defer s.telemetryMu.Unlock()
	s.telemetry = append(s.telemetry, event)
	if len(s.telemetry) > s.telemetryCap {
		s.telemetry = s.telemetry[len(s.telemetry)-s.telemetryCap:]
	}
}

// Telemetry returns a snapshot copy of the recorded tool-call events.
func (s *State) Telemetry() []TelemetryEvent {
	s.telemetryMu.Lock()
	defer s.telemetryMu.Unlock()
	out := make([]TelemetryEvent, len(s.telemetry))
	copy(out, s.telemetry)
	return out
}
