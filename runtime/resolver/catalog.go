package resolver

// appleCatalog maps a known Apple framework identifier to its display title
// and DocC entry URL. Identifiers not present here are synthesized on the fly
// (see resolveApple) rather than treated as an error, since the detection
// table in runtime/intent only feeds identifiers it already recognizes, but a
// caller can still choose_technology with an arbitrary identifier.
var appleCatalog = map[string]struct {
	title string
	url   string
}{
	"swiftui":                     {"SwiftUI", "doc://com.apple.documentation/documentation/swiftui"},
	"uikit":                       {"UIKit", "doc://com.apple.documentation/documentation/uikit"},
	"foundation":                  {"Foundation", "doc://com.apple.documentation/documentation/foundation"},
	"combine":                     {"Combine", "doc://com.apple.documentation/documentation/combine"},
	"coredata":                    {"Core Data", "doc://com.apple.documentation/documentation/coredata"},
	"cloudkit":                    {"CloudKit", "doc://com.apple.documentation/documentation/cloudkit"},
	"mapkit":                      {"MapKit", "doc://com.apple.documentation/documentation/mapkit"},
	"avfoundation":                {"AVFoundation", "doc://com.apple.documentation/documentation/avfoundation"},
	"webkit":                      {"WebKit", "doc://com.apple.documentation/documentation/webkit"},
	"corelocation":                {"Core Location", "doc://com.apple.documentation/documentation/corelocation"},
	"usernotifications":           {"User Notifications", "doc://com.apple.documentation/documentation/usernotifications"},
	"swift":                       {"Swift", "doc://com.apple.documentation/documentation/swift"},
	"appkit":                      {"AppKit", "doc://com.apple.documentation/documentation/appkit"},
	"realitykit":                  {"RealityKit", "doc://com.apple.documentation/documentation/realitykit"},
	"arkit":                       {"ARKit", "doc://com.apple.documentation/documentation/arkit"},
	"metal":                       {"Metal", "doc://com.apple.documentation/documentation/metal"},
	"spritekit":                   {"SpriteKit", "doc://com.apple.documentation/documentation/spritekit"},
	"scenekit":                    {"SceneKit", "doc://com.apple.documentation/documentation/scenekit"},
	"healthkit":                   {"HealthKit", "doc://com.apple.documentation/documentation/healthkit"},
	"storekit":                    {"StoreKit", "doc://com.apple.documentation/documentation/storekit"},
	"gamekit":                     {"GameKit", "doc://com.apple.documentation/documentation/gamekit"},
	"passkit":                     {"PassKit", "doc://com.apple.documentation/documentation/passkit"},
	"photokit":                    {"PhotoKit", "doc://com.apple.documentation/documentation/photokit"},
	"musickit":                    {"MusicKit", "doc://com.apple.documentation/documentation/musickit"},
	"carplay":                     {"CarPlay", "doc://com.apple.documentation/documentation/carplay"},
	"widgetkit":                   {"WidgetKit", "doc://com.apple.documentation/documentation/widgetkit"},
	"activitykit":                 {"ActivityKit", "doc://com.apple.documentation/documentation/activitykit"},
	"appintents":                  {"App Intents", "doc://com.apple.documentation/documentation/appintents"},
	"charts":                      {"Charts", "doc://com.apple.documentation/documentation/charts"},
	"observation":                 {"Observation", "doc://com.apple.documentation/documentation/observation"},
	"swiftdata":                   {"SwiftData", "doc://com.apple.documentation/documentation/swiftdata"},
	"coreml":                      {"Core ML", "doc://com.apple.documentation/documentation/coreml"},
	"createml":                    {"Create ML", "doc://com.apple.documentation/documentation/createml"},
	"vision":                      {"Vision", "doc://com.apple.documentation/documentation/vision"},
	"naturallanguage":             {"Natural Language", "doc://com.apple.documentation/documentation/naturallanguage"},
	"speech":                      {"Speech", "doc://com.apple.documentation/documentation/speech"},
	"soundanalysis":               {"SoundAnalysis", "doc://com.apple.documentation/documentation/soundanalysis"},
	"visionkit":                   {"VisionKit", "doc://com.apple.documentation/documentation/visionkit"},
	"accelerate":                  {"Accelerate", "doc://com.apple.documentation/documentation/accelerate"},
	"mlcompute":                   {"MLCompute", "doc://com.apple.documentation/documentation/mlcompute"},
	"metalperformanceshaders":     {"Metal Performance Shaders", "doc://com.apple.documentation/documentation/metalperformanceshaders"},
	"metalperformanceshadersgraph": {"Metal Performance Shaders Graph", "doc://com.apple.documentation/documentation/metalperformanceshadersgraph"},
}

// webFrameworkCatalog maps the three scraped web-framework identifiers to a
// display title and documentation entry URL.
var webFrameworkCatalog = map[string]struct {
	title string
	url   string
}{
	"react":  {"React", "https://react.dev/reference/react"},
	"nextjs": {"Next.js", "https://nextjs.org/docs"},
	"nodejs": {"Node.js", "https://nodejs.org/api/"},
}

// mlxCatalog maps the language-scoped MLX identifiers to a display title.
var mlxCatalog = map[string]string{
	"mlx:swift":  "MLX Swift",
	"mlx:python": "MLX Python",
}

// huggingFaceCatalog maps the HuggingFace scope identifiers to a display title.
var huggingFaceCatalog = map[string]string{
	"hf:transformers":        "Hugging Face Transformers",
	"hf:swift-transformers":  "Hugging Face Swift Transformers",
	"hf:models":              "Hugging Face Model Hub",
}

// quickNodeCatalog maps the scoped QuickNode identifiers to a display title.
var quickNodeCatalog = map[string]string{
	"quicknode:http":      "QuickNode Solana JSON-RPC",
	"quicknode:websocket": "QuickNode Solana WebSocket",
	"quicknode:marketplace": "QuickNode Solana Marketplace APIs",
}

// agentSDKCatalog maps the scoped Claude Agent SDK identifiers to a display title.
var agentSDKCatalog = map[string]string{
	"agent-sdk:python":     "Claude Agent SDK (Python)",
	"agent-sdk:typescript": "Claude Agent SDK (TypeScript)",
}
