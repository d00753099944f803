package config

// AppConfig holds runtime startup configuration loaded from YAML.
type AppConfig struct {
	Port           int        `yaml:"port"`
	DSN            string     `yaml:"dsn"` // MySQL DSN
	RedisURL       string     `yaml:"redis_url"`
	Env            string     `yaml:"env"` // "development" | "production"
	AllowedOrigins []string   `yaml:"allowed_origins"`
	JWTSecret      string     `yaml:"jwt_secret"`
	Feed           FeedConfig `yaml:"feed"`
	AI             AIConfig   `yaml:"ai"`
	S3             S3Config   `yaml:"s3"`
	Site           SiteConfig `yaml:"site"`
}

// FeedConfig points at the published spreadsheet serving the offer catalog.
type FeedConfig struct {
	CSVURL      string `yaml:"csv_url"`
	CacheTTLSec int    `yaml:"cache_ttl_sec"`
	TimeoutSec  int    `yaml:"timeout_sec"`
}

// AIConfig selects and configures the generative-content provider.
type AIConfig struct {
	// Type is "openai-compatible" (default) or "anthropic".
	Type    string `yaml:"type"`
	BaseURL string `yaml:"base_url"`
	APIKey  string `yaml:"api_key"`
	Model   string `yaml:"model"`
}

// S3Config configures the image bucket.
type S3Config struct {
	Endpoint        string `yaml:"endpoint"`
	Region          string `yaml:"region"`
	Bucket          string `yaml:"bucket"`
	AccessKeyID     string `yaml:"access_key_id"`
	SecretAccessKey string `yaml:"secret_access_key"`
	PublicBaseURL   string `yaml:"public_base_url"`
	PathStyleAccess bool   `yaml:"path_style_access"`
}

// SiteConfig carries site-wide presentation values.
type SiteConfig struct {
	BaseURL        string `yaml:"base_url"`
	WhatsAppNumber string `yaml:"whatsapp_number"`
	DefaultLocale  string `yaml:"default_locale"`
}
