// README: Config loader; immutable env-backed settings for HTTP, provider, and cache.
package config

import (
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Environment represents the deployment environment of the service.
type Environment string

const (
	Development Environment = "development"
	Production  Environment = "production"
)

// Provider names accepted in PLANNER_PROVIDER.
const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)

// Config carries all process configuration. It is built once at startup and
// passed by value into the wiring; nothing reads the environment afterwards.
type Config struct {
	Env      string `envconfig:"PLANNER_ENV" default:"development"`
	HTTPAddr string `envconfig:"PLANNER_HTTP_ADDR" default:":8080"`

	// Generation backend. A missing credential does not abort startup; it
	// disables generation for the process lifetime and the endpoint answers 503.
	Provider     string `envconfig:"PLANNER_PROVIDER" default:"gemini"`
	GeminiAPIKey string `envconfig:"GOOGLE_API_KEY"`
	OpenAIAPIKey string `envconfig:"OPENAI_API_KEY"`
	Model        string `envconfig:"PLANNER_MODEL"`

	// Optional plan cache. Disabled when RedisAddr is empty.
	RedisAddr string        `envconfig:"PLANNER_REDIS_ADDR"`
	CacheTTL  time.Duration `envconfig:"PLANNER_CACHE_TTL" default:"1h"`
}

// Load reads .env (when present) and the process environment.
func Load() (Config, error) {
	// .env is a local-dev convenience; absence is not an error.
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, err
	}
	cfg.Provider = strings.ToLower(strings.TrimSpace(cfg.Provider))
	if cfg.Model == "" {
		cfg.Model = defaultModel(cfg.Provider)
	}
	return cfg, nil
}

// Configured reports whether a credential for the selected provider is present.
func (c Config) Configured() bool {
	switch c.Provider {
	case ProviderOpenAI:
		return strings.TrimSpace(c.OpenAIAPIKey) != ""
	default:
		return strings.TrimSpace(c.GeminiAPIKey) != ""
	}
}

// IsProduction reports whether the service runs in production mode.
func (c Config) IsProduction() bool {
	return Environment(c.Env) == Production
}

func defaultModel(provider string) string {
	if provider == ProviderOpenAI {
		return "gpt-4o-mini"
	}
	return "gemini-1.5-flash"
}
