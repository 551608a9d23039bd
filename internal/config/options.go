package config

import (
	"strings"
	"time"
)

// Option describes a single configuration entry: its viper key, the
// corresponding CLI flag name, the compiled default, and a human-readable
// description shown in --help output.
type Option struct {
	Key         string
	Flag        string
	Default     any
	Description string
}

// Options defines every configuration entry this engine recognizes. Each
// entry is registered as a viper default and a CLI flag.
var Options = []Option{
	{Key: keyCacheDir, Flag: toFlag(keyCacheDir), Default: "", Description: "Disk cache root directory (empty disables the disk tier)"},
	{Key: keyCacheMemoryTTL, Flag: toFlag(keyCacheMemoryTTL), Default: time.Hour, Description: "Default in-memory cache entry TTL"},
	{Key: keyCacheRedisAddr, Flag: toFlag(keyCacheRedisAddr), Default: "", Description: "Shared Redis memory-tier address (empty uses an in-process map)"},

	{Key: keyHTTPRateLimit, Flag: toFlag(keyHTTPRateLimit), Default: 5.0, Description: "Sustained upstream requests per second, shared by all adapters"},
	{Key: keyHTTPBurst, Flag: toFlag(keyHTTPBurst), Default: 10, Description: "Upstream request burst allowance"},
	{Key: keyHTTPMaxRetries, Flag: toFlag(keyHTTPMaxRetries), Default: 3, Description: "Max retries for transient upstream failures"},

	{Key: keyServerAddress, Flag: toFlag(keyServerAddress), Default: ":8420", Description: "Tool-call server listen address"},
}

// toFlag converts a viper key like "cache.memory_ttl" into a CLI flag like
// "cache-memory-ttl" by lower-casing and replacing dots and underscores with
// hyphens.
func toFlag(key string) string {
	flag := strings.ToLower(key)
	flag = strings.ReplaceAll(flag, ".", "-")
	flag = strings.ReplaceAll(flag, "_", "-")
	return flag
}
