package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig
	Gemini   GeminiConfig
	SerpAPI  SerpAPIConfig
	Pipeline PipelineConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// GeminiConfig holds the LLM provider configuration
type GeminiConfig struct {
	APIKey string `mapstructure:"api_key"`
	Model  string `mapstructure:"model"`
}

// SerpAPIConfig holds the shopping-search provider configuration
type SerpAPIConfig struct {
	APIKey  string `mapstructure:"api_key"`
	BaseURL string `mapstructure:"base_url"`
	Market  string `mapstructure:"market"` // Google "gl" country code
}

// PipelineConfig holds pipeline tuning knobs
type PipelineConfig struct {
	TopNPerProduct int `mapstructure:"top_n_per_product"`
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/cartwise/")

	// Environment variable settings
	v.SetEnvPrefix("CARTWISE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Set default values
	setDefaults(v)

	// Read config file (optional - will use env vars if file doesn't exist)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; using environment variables and defaults
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// Validate configuration
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"http://localhost:3000"})

	// Gemini defaults; the key has no default and must come from env
	v.SetDefault("gemini.api_key", "")
	v.SetDefault("gemini.model", "models/gemini-2.5-flash")

	// SerpApi defaults
	v.SetDefault("serpapi.api_key", "")
	v.SetDefault("serpapi.base_url", "https://serpapi.com")
	v.SetDefault("serpapi.market", "my")

	// Pipeline defaults
	v.SetDefault("pipeline.top_n_per_product", 10)
}

// validate validates the configuration. Missing credentials are fatal here
// so the process refuses to start rather than failing on the first request.
func validate(config *Config) error {
	if config.Gemini.APIKey == "" {
		return fmt.Errorf("Gemini API key is required (set CARTWISE_GEMINI_API_KEY)")
	}

	if config.SerpAPI.APIKey == "" {
		return fmt.Errorf("SerpApi key is required (set CARTWISE_SERPAPI_API_KEY)")
	}

	if config.Pipeline.TopNPerProduct <= 0 {
		return fmt.Errorf("pipeline top_n_per_product must be positive, got: %d", config.Pipeline.TopNPerProduct)
	}

	return nil
}
