package apple

// searchSynonyms is the Apple-search synonym table from spec.md §6: each
// domain noun expands to its close relatives before scoring, so a query for
// "button" also credits entries whose tokens mention "control" or "tap".
var searchSynonyms = map[string][]string{
	"button":     {"control", "action", "tap", "press", "click", "controls"},
	"list":       {"table", "collection", "outline", "foreach", "tableview"},
	"table":      {"list", "collection", "tableview", "uitableview", "grid"},
	"tableview":  {"table", "list", "uitableview", "collection", "datasource", "delegate"},
	"navigation": {"stack", "navigator", "navigationstack", "routing", "navigationcontroller"},
	"text":       {"label", "string", "typography", "uilabel", "textfield"},
	"image":      {"photo", "picture", "icon", "asyncimage", "uiimage", "imageview"},
	"stack":      {"vstack", "hstack", "zstack", "layout", "stackview"},
	"form":       {"settings", "preferences", "input"},
	"alert":      {"dialog", "notification", "popup", "uialert"},
	"sheet":      {"modal", "presentation", "popover"},
	"animation":  {"transition", "animate", "motion", "uiview"},
	"gesture":    {"tap", "drag", "swipe", "touch", "recognizer"},
	"state":      {"binding", "observable", "published"},
	"view":       {"ui", "component", "widget", "uiview", "viewcontroller"},
	"menu":       {"picker", "dropdown", "contextmenu"},
	"search":     {"find", "lookup", "searchable", "filter", "searchbar"},
	"toolbar":    {"navigationbar", "actions", "bar", "uitoolbar"},
	"tab":        {"segmented", "page", "tabview", "tabbar", "uitabbar"},
	"controller": {"viewcontroller", "uiviewcontroller", "navigation"},
}

// expandSynonyms appends each term's synonyms (if any) to the term list,
// used to broaden the substring match before scoring (spec.md §4.3).
func expandSynonyms(terms []string) []string {
	expanded := make([]string, 0, len(terms))
	expanded = append(expanded, terms...)
	for _, term := range terms {
		if syns, ok := searchSynonyms[term]; ok {
			expanded = append(expanded, syns...)
		}
	}
	return expanded
}

// symbolKinds lists the DocC kinds treated as actual API symbols rather than
// articles/collections, for the kind-boost and re-expansion trigger.
var symbolKinds = map[string]bool{
	"struct": true, "class": true, "protocol": true, "enum": true,
	"typealias": true, "func": true, "var": true, "property": true,
	"method": true, "symbol": true,
}

func isSymbolKind(kind string) bool {
	return symbolKinds[kind]
}
