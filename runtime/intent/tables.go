package intent

// appleFrameworks maps a detection keyword to its canonical Apple framework
// identifier. Keys are matched whole-word against the query (see containsWord).
var appleFrameworks = []struct {
	keyword    string
	identifier string
}{
	{"swiftui", "swiftui"},
	{"uikit", "uikit"},
	{"foundation", "foundation"},
	{"combine", "combine"},
	{"coredata", "coredata"},
	{"core data", "coredata"},
	{"cloudkit", "cloudkit"},
	{"mapkit", "mapkit"},
	{"avfoundation", "avfoundation"},
	{"webkit", "webkit"},
	{"corelocation", "corelocation"},
	{"core location", "corelocation"},
	{"usernotifications", "usernotifications"},
	{"swift", "swift"},
	{"appkit", "appkit"},
	{"realitykit", "realitykit"},
	{"arkit", "arkit"},
	{"metal", "metal"},
	{"spritekit", "spritekit"},
	{"scenekit", "scenekit"},
	{"healthkit", "healthkit"},
	{"storekit", "storekit"},
	{"gamekit", "gamekit"},
	{"passkit", "passkit"},
	{"photokit", "photokit"},
	{"musickit", "musickit"},
	{"carplay", "carplay"},
	{"widgetkit", "widgetkit"},
	{"activitykit", "activitykit"},
	{"appintents", "appintents"},
	{"app intents", "appintents"},
	{"charts", "charts"},
	{"observation", "observation"},
	{"swiftdata", "swiftdata"},
	{"swift data", "swiftdata"},
	{"coreml", "coreml"},
	{"core ml", "coreml"},
	{"createml", "createml"},
	{"create ml", "createml"},
	{"vision", "vision"},
	{"naturallanguage", "naturallanguage"},
	{"natural language", "naturallanguage"},
	{"speech", "speech"},
	{"soundanalysis", "soundanalysis"},
	{"visionkit", "visionkit"},
	{"accelerate", "accelerate"},
	{"mlcompute", "mlcompute"},
	{"metalperformanceshaders", "metalperformanceshaders"},
	{"metal performance shaders", "metalperformanceshaders"},
	{"metalperformanceshadersgraph", "metalperformanceshadersgraph"},
}

var rustCrates = []string{
	"tokio", "serde", "actix", "actix-web", "axum", "hyper", "reqwest",
	"clap", "rand", "regex", "rayon", "diesel", "sqlx", "tonic", "prost",
	"anyhow", "thiserror", "tracing", "log", "futures", "async-std",
	"chrono", "uuid", "itertools", "tower", "warp", "rocket", "bevy",
}

var telegramKeywords = []string{
	"telegram", "telegram bot", "bot api", "telegram api", "sendmessage",
	"inline keyboard", "telegram webhook", "getupdates", "chat id",
	"telegram bot api",
}

var tonKeywords = []string{
	"ton", "the open network", "ton blockchain", "tonapi", "toncoin",
	"ton smart contract", "func language", "tact language", "ton wallet",
	"jetton",
}

var cocoonKeywords = []string{
	"cocoon", "cocoon protocol", "cocoon network",
}

var mdnKeywords = []string{
	"mdn", "mozilla", "web api", "dom api", "css property", "html element",
	"javascript api", "web standard", "browser api",
}

var reactKeywords = []string{
	"react", "react hook", "jsx", "usestate", "useeffect", "react component",
	"react-dom", "react router",
}

var nextjsKeywords = []string{
	"next.js", "nextjs", "next js", "app router", "getserversideprops",
	"getstaticprops", "next api route",
}

var nodejsKeywords = []string{
	"node.js", "nodejs", "node js", "npm package", "commonjs", "node module",
	"node stream", "node fs",
}

var mlxKeywords = []string{
	"mlx", "mlx swift", "mlx python", "apple mlx", "mlx array", "mlx framework",
}

var huggingfaceKeywords = []string{
	"huggingface", "hugging face", "transformers", "hf hub", "hf transformers",
	"pretrained model",
}

var quicknodeKeywords = []string{
	"quicknode", "solana rpc", "solana websocket", "jito", "metaplex", "das api",
	"yellowstone", "solana json rpc",
	"getaccountinfo", "getbalance", "getprogramaccounts", "gettransaction",
	"sendtransaction", "getsignaturesforaddress", "getlatestblockhash",
}

var claudeAgentSDKKeywords = []string{
	"claude agent sdk", "agent sdk", "claude code sdk", "@tool", "cli_path",
	"claude agent",
}
