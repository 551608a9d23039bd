package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config wraps a viper instance and provides typed accessors for every
// configuration key. Create one via New().
type Config struct {
	v *viper.Viper
}

// New initialises a Config from environment variables, the config file, and
// compiled defaults, in that priority order (environment variables override
// the file); CLI flags, bound later via BindFlags, take highest priority.
func New() (*Config, error) {
	v := viper.New()

	for _, o := range Options {
		v.SetDefault(o.Key, o.Default)
	}

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/docsfed/")

	if err := v.ReadInConfig(); err != nil {
		var notFoundErr viper.ConfigFileNotFoundError
		if !(errors.As(err, &notFoundErr) || errors.Is(err, os.ErrNotExist)) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Environment variables are prefixed with DOCSFED_ and use underscores in
	// place of dots (e.g. DOCSFED_CACHE_DIR).
	v.SetEnvPrefix("DOCSFED")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	return &Config{v: v}, nil
}

// BindFlags registers CLI flags for Options and binds them to the underlying
// viper keys so that flag values override file and environment sources.
func (c *Config) BindFlags(fs *pflag.FlagSet) error {
	for _, o := range Options {
		switch v := o.Default.(type) {
		case string:
			fs.String(o.Flag, v, o.Description)
		case int:
			fs.Int(o.Flag, v, o.Description)
		case float64:
			fs.Float64(o.Flag, v, o.Description)
		case time.Duration:
			fs.Duration(o.Flag, v, o.Description)
		default:
			return fmt.Errorf("unsupported flag type for key: %s", o.Key)
		}

		if err := c.v.BindPFlag(o.Key, fs.Lookup(o.Flag)); err != nil {
			return fmt.Errorf("failed to bind flag %s: %w", o.Flag, err)
		}
	}

	return nil
}

// CacheDir returns the disk cache root directory. Empty disables the disk
// tier.
func (c *Config) CacheDir() string {
	return c.v.GetString(keyCacheDir)
}

// CacheMemoryTTL returns the default in-memory cache entry TTL.
func (c *Config) CacheMemoryTTL() time.Duration {
	return c.v.GetDuration(keyCacheMemoryTTL)
}

// CacheRedisAddr returns the shared Redis memory-tier address. Empty uses an
// in-process map instead.
func (c *Config) CacheRedisAddr() string {
	return c.v.GetString(keyCacheRedisAddr)
}

// HTTPRateLimit returns the sustained upstream requests-per-second cap of
// the one HTTP client all adapters share.
func (c *Config) HTTPRateLimit() float64 {
	return c.v.GetFloat64(keyHTTPRateLimit)
}

// HTTPBurst returns the upstream request burst allowance.
func (c *Config) HTTPBurst() int {
	return c.v.GetInt(keyHTTPBurst)
}

// HTTPMaxRetries returns the max retry count for transient upstream
// failures.
func (c *Config) HTTPMaxRetries() uint64 {
	return uint64(c.v.GetInt(keyHTTPMaxRetries))
}

// ServerAddress returns the tool-call server listen address.
func (c *Config) ServerAddress() string {
	return c.v.GetString(keyServerAddress)
}
