package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultConfigPath is used when --config is not provided.
	DefaultConfigPath = "config.yml"
	defaultPort       = 2333
	defaultEnv        = "development"
	defaultFeedTTL    = 300
	defaultTimeout    = 30
	defaultAIType     = "openai-compatible"
	defaultWhatsApp   = "96551148114"
	defaultLocale     = "ar"
)

// Load reads the YAML config file and applies defaults and env overrides.
// A missing file is not an error; env vars and defaults still apply.
func Load(path string) (*AppConfig, error) {
	cfg := &AppConfig{}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	case os.IsNotExist(err):
		// fall through to env + defaults
	default:
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	applyEnvOverrides(cfg)
	applyDefaults(cfg)

	if cfg.DSN == "" {
		return nil, fmt.Errorf("dsn is required (config %s or AWQAT_DSN)", path)
	}
	return cfg, nil
}

// IsDev reports whether the app runs in development mode.
func (c *AppConfig) IsDev() bool {
	return strings.ToLower(c.Env) != "production"
}

// Secrets come from the environment in deployments; the YAML value is a
// fallback for local development.
func applyEnvOverrides(cfg *AppConfig) {
	setIfEnv(&cfg.DSN, "AWQAT_DSN")
	setIfEnv(&cfg.RedisURL, "AWQAT_REDIS_URL")
	setIfEnv(&cfg.JWTSecret, "AWQAT_JWT_SECRET")
	setIfEnv(&cfg.Env, "AWQAT_ENV")
	setIfEnv(&cfg.Feed.CSVURL, "AWQAT_FEED_CSV_URL")
	setIfEnv(&cfg.AI.APIKey, "AWQAT_AI_API_KEY")
	setIfEnv(&cfg.AI.BaseURL, "AWQAT_AI_BASE_URL")
	setIfEnv(&cfg.AI.Model, "AWQAT_AI_MODEL")
	setIfEnv(&cfg.S3.AccessKeyID, "AWQAT_S3_ACCESS_KEY_ID")
	setIfEnv(&cfg.S3.SecretAccessKey, "AWQAT_S3_SECRET_ACCESS_KEY")
}

func applyDefaults(cfg *AppConfig) {
	if cfg.Port == 0 {
		cfg.Port = defaultPort
	}
	if cfg.Env == "" {
		cfg.Env = defaultEnv
	}
	if cfg.Feed.CacheTTLSec <= 0 {
		cfg.Feed.CacheTTLSec = defaultFeedTTL
	}
	if cfg.Feed.TimeoutSec <= 0 {
		cfg.Feed.TimeoutSec = defaultTimeout
	}
	if cfg.AI.Type == "" {
		cfg.AI.Type = defaultAIType
	}
	if cfg.Site.WhatsAppNumber == "" {
		cfg.Site.WhatsAppNumber = defaultWhatsApp
	}
	if cfg.Site.DefaultLocale == "" {
		cfg.Site.DefaultLocale = defaultLocale
	}
}

func setIfEnv(dst *string, key string) {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		*dst = v
	}
}
