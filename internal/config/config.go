// Package config loads the server configuration with Viper from an
// optional YAML file plus WPFRONT_-prefixed environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	WordPress  WordPressConfig  `mapstructure:"wordpress"`
	Cache      CacheConfig      `mapstructure:"cache"`
	Revalidate RevalidateConfig `mapstructure:"revalidate"`
}

type ServerConfig struct {
	Port            int           `mapstructure:"port"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type WordPressConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type CacheConfig struct {
	RedisAddr     string        `mapstructure:"redis_addr"`
	RedisPassword string        `mapstructure:"redis_password"`
	RedisDB       int           `mapstructure:"redis_db"`
	TTL           time.Duration `mapstructure:"ttl"`
}

type RevalidateConfig struct {
	Secret         string   `mapstructure:"secret"`
	AlwaysPaths    []string `mapstructure:"always_paths"`
	AlwaysTags     []string `mapstructure:"always_tags"`
	PostPathPrefix string   `mapstructure:"post_path_prefix"`
}

// Load reads config.yaml from the working directory when present, layers
// WPFRONT_ environment variables over it, and validates the result.
func Load() (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.SetEnvPrefix("WPFRONT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: reading file failed: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal failed: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.shutdown_timeout", 10*time.Second)
	v.SetDefault("wordpress.base_url", "")
	v.SetDefault("wordpress.timeout", 15*time.Second)
	v.SetDefault("cache.redis_addr", "")
	v.SetDefault("cache.redis_password", "")
	v.SetDefault("cache.redis_db", 0)
	v.SetDefault("cache.ttl", time.Hour)
	v.SetDefault("revalidate.secret", "")
	v.SetDefault("revalidate.always_paths", []string{"/blog", "/"})
	v.SetDefault("revalidate.always_tags", []string{"posts", "search-index"})
	v.SetDefault("revalidate.post_path_prefix", "/blog/")
}

func (c *Config) validate() error {
	if c.WordPress.BaseURL == "" {
		return fmt.Errorf("config: wordpress.base_url is required")
	}
	if !strings.HasPrefix(c.WordPress.BaseURL, "http://") && !strings.HasPrefix(c.WordPress.BaseURL, "https://") {
		return fmt.Errorf("config: wordpress.base_url must be an absolute http(s) URL")
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("config: server.port must be between 1 and 65535")
	}
	return nil
}
