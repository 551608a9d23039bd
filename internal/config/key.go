// Package config provides unified configuration loading from files,
// environment variables, and CLI flags using viper and pflag.
//
// Resolution order (highest wins):
//  1. CLI flags
//  2. Environment variables (prefix DOCSFED_)
//  3. Config file (config.yaml in . or /etc/docsfed/)
//  4. Compiled defaults
package config

// Viper keys for cache configuration.
const (
	keyCacheDir       = "cache.dir"
	keyCacheMemoryTTL = "cache.memory_ttl"
	keyCacheRedisAddr = "cache.redis_addr"
)

// Viper keys for the shared upstream HTTP client.
const (
	keyHTTPRateLimit  = "http.rate_limit"
	keyHTTPBurst      = "http.burst"
	keyHTTPMaxRetries = "http.max_retries"
)

// Viper keys for the tool-call server.
const (
	keyServerAddress = "server.address"
)
