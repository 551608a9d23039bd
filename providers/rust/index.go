package rust

import (
	"encoding/json"
	"fmt"
	"regexp"
)

// searchIndexPattern extracts the JSON object literal out of
// `var searchIndex = {...};`: the payload between the first `{` and the
// trailing `}` before the statement terminator is valid JSON. The
// `JSON.parse("...")`-wrapped form is not matched; such an index fails to
// parse and the adapter falls back to all.html.
var searchIndexPattern = regexp.MustCompile(`(?s)searchIndex\s*=\s*(\{.*\});?\s*$`)

// crateIndex mirrors one crate's entry in the rustdoc search index: parallel
// arrays where index i across t/n/q/d describes one item (spec.md §6: "parse
// into parallel arrays t, n, q, d — type-id, name, path, description").
type crateIndex struct {
	Doc string `json:"doc"`
	T   []int    `json:"t"`
	N   []string `json:"n"`
	Q   []string `json:"q"`
	D   []string `json:"d"`
}

// itemKinds maps rustdoc's numeric type-id to a human-readable kind. The
// numbering matches rustdoc's ItemType enum ordering as of recent toolchains;
// an unrecognized id degrades to "item" rather than failing the parse.
var itemKinds = map[int]string{
	0: "module", 1: "extern-crate", 2: "import", 3: "struct", 4: "enum",
	5: "function", 6: "typealias", 7: "static", 8: "trait", 9: "impl",
	10: "tymethod", 11: "method", 12: "structfield", 13: "variant",
	14: "macro", 15: "primitive", 16: "associatedtype", 17: "constant",
	18: "associatedconstant", 19: "union", 20: "foreigntype", 21: "keyword",
	22: "existential", 23: "attr", 24: "derive", 25: "traitalias",
}

func itemKind(id int) string {
	if kind, ok := itemKinds[id]; ok {
		return kind
	}
	return "item"
}

// parseSearchIndex decodes a fetched search-index.js body into a flat item
// list for one crate.
func parseSearchIndex(crate string, raw []byte) ([]Item, error) {
	match := searchIndexPattern.FindSubmatch(raw)
	if match == nil {
		return nil, fmt.Errorf("rust: search index literal not found")
	}

	var all map[string]crateIndex
	if err := json.Unmarshal(match[1], &all); err != nil {
		return nil, fmt.Errorf("rust: decoding search index: %w", err)
	}

	index, ok := all[crate]
	if !ok {
		return nil, fmt.Errorf("rust: crate %q not present in search index", crate)
	}

	n := len(index.N)
	items := make([]Item, 0, n)
	for i := 0; i < n; i++ {
		var kindID int
		if i < len(index.T) {
			kindID = index.T[i]
		}
		var desc string
		if i < len(index.D) {
			desc = index.D[i]
		}
		var path string
		if i < len(index.Q) {
			path = index.Q[i]
		}
		items = append(items, Item{
			Name:        index.N[i],
			Kind:        itemKind(kindID),
			Description: desc,
			Path:        path,
		})
	}
	return items, nil
}
