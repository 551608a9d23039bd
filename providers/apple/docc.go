package apple

import "encoding/json"

// Document is the DocC JSON shape described in spec.md §6: abstract,
// metadata, primaryContentSections, topicSections, and a references map
// keyed by opaque identifier. The references map can reference itself
// transitively (spec.md §9); callers must never follow references eagerly.
type Document struct {
	Metadata              Metadata          `json:"metadata"`
	Abstract              []InlineContent   `json:"abstract"`
	PrimaryContentSections []json.RawMessage `json:"primaryContentSections"`
	TopicSections         []TopicSection    `json:"topicSections"`
	References            map[string]Reference `json:"references"`
}

// Metadata carries the document's own title/kind/platform info.
type Metadata struct {
	Title     string     `json:"title"`
	Kind      string     `json:"kind"`
	Role      string     `json:"role"`
	Platforms []Platform `json:"platforms,omitempty"`
}

// Platform names one supported OS/version pair.
type Platform struct {
	Name             string `json:"name"`
	IntroducedAt     string `json:"introducedAt,omitempty"`
}

// InlineContent is one fragment of DocC's rich-text abstract representation.
type InlineContent struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// TopicSection groups a list of referenced identifiers under a heading, e.g.
// "Creating a List" -> ["doc://...", "doc://..."].
type TopicSection struct {
	Title      string   `json:"title"`
	Identifiers []string `json:"identifiers"`
}

// Reference is one entry of the document's references map: a symbol or
// article summary keyed by its opaque identifier.
type Reference struct {
	Title     string     `json:"title"`
	Kind      string     `json:"kind"`
	URL       string     `json:"url,omitempty"`
	Abstract  []InlineContent `json:"abstract,omitempty"`
	Platforms []Platform `json:"platforms,omitempty"`
}

// PlainAbstract flattens a Reference's rich-text abstract into plain text.
func (r Reference) PlainAbstract() string {
	out := ""
	for i, frag := range r.Abstract {
		if i > 0 {
			out += " "
		}
		out += frag.Text
	}
	return out
}

// PlatformNames extracts the bare platform name list, dropping version info.
func (r Reference) PlatformNames() []string {
	names := make([]string, 0, len(r.Platforms))
	for _, p := range r.Platforms {
		names = append(names, p.Name)
	}
	return names
}
