// Package scoring implements the keyword/substring scoring rules shared by
// every provider adapter's search (spec.md §4.2 rule 1). Adapters own their
// exact constants — the spec notes scoring constants are intentionally
// inconsistent across adapters and that each adapter's constants are
// authoritative on their own, since results never merge across providers —
// so this package exposes the rule shape, not one fixed constant set.
package scoring

import "strings"

// Weights is one adapter's scoring constant set.
type Weights struct {
	ExactName        int
	NameStartsWith   int
	NameContains     int
	DescriptionMatch int
	PathMatch        int
	MultiTermBonus   int
}

// DefaultWeights mirrors the spec's illustrative constants
// (+100/+50/+30/+10/+5) for adapters with no documented override.
var DefaultWeights = Weights{
	ExactName:        100,
	NameStartsWith:   50,
	NameContains:     30,
	DescriptionMatch: 10,
	PathMatch:        5,
	MultiTermBonus:   5,
}

// Score scores a candidate (name, description, path) against a set of
// already-lowercased query terms using w. kindBoost is added once on top
// (the per-kind boost from spec.md's rule 1, e.g. struct/class/trait/method
// outranking a bare article); callers look it up from their own kind table.
func Score(name, description, path string, terms []string, w Weights, kindBoost int) int {
	name = strings.ToLower(name)
	description = strings.ToLower(description)
	path = strings.ToLower(path)

	score := 0
	matchedTerms := 0
	for _, term := range terms {
		if term == "" {
			continue
		}
		termMatched := false
		switch {
		case name == term:
			score += w.ExactName
			termMatched = true
		case strings.HasPrefix(name, term):
			score += w.NameStartsWith
			termMatched = true
		case strings.Contains(name, term):
			score += w.NameContains
			termMatched = true
		}
		if strings.Contains(description, term) {
			score += w.DescriptionMatch
			termMatched = true
		}
		if strings.Contains(path, term) {
			score += w.PathMatch
			termMatched = true
		}
		if termMatched {
			matchedTerms++
		}
	}
	if matchedTerms > 1 {
		score += w.MultiTermBonus * (matchedTerms - 1)
	}
	return score + kindBoost
}

// Terms lowercases and splits a cleaned query string on whitespace, dropping
// empty tokens, for use as Score's terms argument.
func Terms(query string) []string {
	fields := strings.Fields(strings.ToLower(query))
	return fields
}
