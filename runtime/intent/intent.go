// Package intent classifies a free-text developer query into a QueryType and
// detects which provider (and, where applicable, which technology within
// that provider) the query is about, before any search dispatch happens
// (spec.md §4.3 Intent Parser).
package intent

import (
	"regexp"
	"strings"

	"docsfed.dev/query/providers/types"
)

// QueryType discriminates the three shapes a query can take.
type QueryType string

const (
	QueryHowTo     QueryType = "how_to"
	QueryReference QueryType = "reference"
	QuerySearch    QueryType = "search"
)

// Intent is the parsed, classified shape of a single incoming query.
type Intent struct {
	RawQuery   string
	Provider   types.Provider
	Technology string
	Keywords   []string
	QueryType  QueryType
}

var howToPattern = regexp.MustCompile(`(?i)^(how\s+(do\s+i|to|can\s+i)|what'?s?\s+the\s+(best\s+)?way\s+to|implement|create|make|build|add|show\s+me\s+how)`)

var referencePattern = regexp.MustCompile(`(?i)^(what\s+is|explain|describe|tell\s+me\s+about|documentation\s+for|docs\s+for|api\s+for)`)

var wordSplitter = regexp.MustCompile(`[\s\-_/.]+`)

// containsWord reports whether word appears as a whole token in query, split
// on whitespace and the -, _, /, . separators so "coredata" doesn't
// accidentally match inside some longer identifier.
func containsWord(query, word string) bool {
	lowered := strings.ToLower(query)
	needle := strings.ToLower(word)
	if strings.Contains(needle, " ") {
		return strings.Contains(lowered, needle)
	}
	for _, tok := range wordSplitter.Split(lowered, -1) {
		if tok == needle {
			return true
		}
	}
	return false
}

var stopWords = map[string]bool{
	"how": true, "do": true, "i": true, "to": true, "the": true, "a": true,
	"an": true, "in": true, "on": true, "for": true, "with": true,
	"what": true, "is": true, "are": true, "can": true, "could": true,
	"would": true, "should": true, "use": true, "using": true,
	"implement": true, "create": true, "make": true, "build": true,
	"add": true, "get": true, "set": true, "show": true, "me": true,
	"please": true, "want": true, "need": true, "like": true, "way": true,
	"best": true, "proper": true, "tell": true, "about": true,
	"explain": true, "describe": true, "documentation": true, "docs": true,
	"api": true,
}

// extractKeywords lowercases and tokenizes query, dropping stop words and
// empty tokens, preserving order of first appearance.
func extractKeywords(query string) []string {
	var keywords []string
	seen := make(map[string]bool)
	for _, tok := range wordSplitter.Split(strings.ToLower(query), -1) {
		if tok == "" || stopWords[tok] || seen[tok] {
			continue
		}
		seen[tok] = true
		keywords = append(keywords, tok)
	}
	return keywords
}

// classifyQueryType determines the shape of the query from its leading
// phrase. HowTo is checked before Reference because "how to implement X" can
// otherwise be mistaken for nothing in particular; the patterns are anchored
// at the start of the query so a trailing mention doesn't misclassify.
func classifyQueryType(query string) QueryType {
	trimmed := strings.TrimSpace(query)
	if howToPattern.MatchString(trimmed) {
		return QueryHowTo
	}
	if referencePattern.MatchString(trimmed) {
		return QueryReference
	}
	return QuerySearch
}

// detectProviderAndTechnology runs the load-bearing provider precedence
// chain: once a provider's keyword set matches, no later provider in this
// list is consulted, even if its keywords also appear in the query. The
// order mirrors the upstream system this engine federates and must not be
// reordered casually — Apple's broad platform fallback comes first because
// "ios"/"swift" appear inside many unrelated queries, and MDN comes last as
// the catch-all for generic web vocabulary.
func detectProviderAndTechnology(query string) (types.Provider, string) {
	lowered := strings.ToLower(query)

	for _, fw := range appleFrameworks {
		if containsWord(lowered, fw.keyword) {
			return types.ProviderApple, fw.identifier
		}
	}
	if containsWord(lowered, "ios") || containsWord(lowered, "macos") ||
		containsWord(lowered, "swift") || containsWord(lowered, "xcode") ||
		containsWord(lowered, "apple") {
		return types.ProviderApple, "swiftui"
	}

	if containsWord(lowered, "machine learning") || containsWord(lowered, "ml model") ||
		containsWord(lowered, "train a model") || containsWord(lowered, "core ml model") {
		return types.ProviderApple, "coreml"
	}

	for _, crate := range rustCrates {
		if containsWord(lowered, crate) {
			return types.ProviderRust, "rust:" + crate
		}
	}

	for _, kw := range telegramKeywords {
		if containsWord(lowered, kw) {
			return types.ProviderTelegram, "telegram"
		}
	}

	for _, kw := range tonKeywords {
		if containsWord(lowered, kw) {
			return types.ProviderTON, "ton"
		}
	}

	for _, kw := range cocoonKeywords {
		if containsWord(lowered, kw) {
			return types.ProviderCocoon, "cocoon"
		}
	}

	for _, kw := range reactKeywords {
		if containsWord(lowered, kw) {
			return types.ProviderReact, "webfw:react"
		}
	}

	for _, kw := range nextjsKeywords {
		if containsWord(lowered, kw) {
			return types.ProviderNextJS, "webfw:nextjs"
		}
	}

	for _, kw := range nodejsKeywords {
		if containsWord(lowered, kw) {
			return types.ProviderNodeJS, "webfw:nodejs"
		}
	}

	for _, kw := range mlxKeywords {
		if containsWord(lowered, kw) {
			if containsWord(lowered, "swift") || containsWord(lowered, "ios") || containsWord(lowered, "macos") {
				return types.ProviderMLX, "mlx:swift"
			}
			return types.ProviderMLX, "mlx:python"
		}
	}

	for _, kw := range huggingfaceKeywords {
		if containsWord(lowered, kw) {
			if containsWord(lowered, "swift") {
				return types.ProviderHuggingFace, "hf:swift-transformers"
			}
			return types.ProviderHuggingFace, "hf:transformers"
		}
	}

	for _, kw := range quicknodeKeywords {
		if containsWord(lowered, kw) {
			if containsWord(lowered, "websocket") || containsWord(lowered, "subscribe") {
				return types.ProviderQuickNode, "quicknode:websocket"
			}
			if containsWord(lowered, "jito") || containsWord(lowered, "metaplex") ||
				containsWord(lowered, "das") || containsWord(lowered, "yellowstone") {
				return types.ProviderQuickNode, "quicknode:marketplace"
			}
			return types.ProviderQuickNode, "quicknode:http"
		}
	}

	for _, kw := range claudeAgentSDKKeywords {
		if containsWord(lowered, kw) {
			if containsWord(lowered, "python") || containsWord(lowered, "@tool") || containsWord(lowered, "cli_path") {
				return types.ProviderAgentSDK, "agent-sdk:python"
			}
			if containsWord(lowered, "typescript") || containsWord(lowered, "javascript") || containsWord(lowered, "node") {
				return types.ProviderAgentSDK, "agent-sdk:typescript"
			}
			return types.ProviderAgentSDK, "agent-sdk:typescript"
		}
	}

	for _, kw := range mdnKeywords {
		if containsWord(lowered, kw) {
			return types.ProviderMDN, "mdn"
		}
	}

	return "", ""
}

// Parse classifies a raw query into an Intent: its query type, detected
// provider/technology (if any), and extracted search keywords.
func Parse(query string) Intent {
	provider, technology := detectProviderAndTechnology(query)
	return Intent{
		RawQuery:   query,
		Provider:   provider,
		Technology: technology,
		Keywords:   extractKeywords(query),
		QueryType:  classifyQueryType(query),
	}
}
