package config

import (
	"os"
	"testing"
)

func TestLoad(t *testing.T) {
	// Clean up environment before tests
	cleanupEnv := func() {
		os.Unsetenv("CARTWISE_SERVER_PORT")
		os.Unsetenv("CARTWISE_SERVER_ENVIRONMENT")
		os.Unsetenv("CARTWISE_GEMINI_API_KEY")
		os.Unsetenv("CARTWISE_GEMINI_MODEL")
		os.Unsetenv("CARTWISE_SERPAPI_API_KEY")
		os.Unsetenv("CARTWISE_SERPAPI_BASE_URL")
		os.Unsetenv("CARTWISE_SERPAPI_MARKET")
		os.Unsetenv("CARTWISE_PIPELINE_TOP_N_PER_PRODUCT")
	}

	t.Run("loads with defaults when only credentials set", func(t *testing.T) {
		cleanupEnv()
		os.Setenv("CARTWISE_GEMINI_API_KEY", "test-gemini-key")
		os.Setenv("CARTWISE_SERPAPI_API_KEY", "test-serpapi-key")
		defer cleanupEnv()

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v, want nil", err)
		}

		// Check defaults
		if cfg.Server.Port != "8080" {
			t.Errorf("Server.Port = %s, want 8080", cfg.Server.Port)
		}
		if cfg.Server.Environment != "development" {
			t.Errorf("Server.Environment = %s, want development", cfg.Server.Environment)
		}
		if cfg.Gemini.Model != "models/gemini-2.5-flash" {
			t.Errorf("Gemini.Model = %s, want models/gemini-2.5-flash", cfg.Gemini.Model)
		}
		if cfg.SerpAPI.BaseURL != "https://serpapi.com" {
			t.Errorf("SerpAPI.BaseURL = %s, want https://serpapi.com", cfg.SerpAPI.BaseURL)
		}
		if cfg.SerpAPI.Market != "my" {
			t.Errorf("SerpAPI.Market = %s, want my", cfg.SerpAPI.Market)
		}
		if cfg.Pipeline.TopNPerProduct != 10 {
			t.Errorf("Pipeline.TopNPerProduct = %d, want 10", cfg.Pipeline.TopNPerProduct)
		}
	})

	t.Run("loads custom values from environment variables", func(t *testing.T) {
		cleanupEnv()
		os.Setenv("CARTWISE_SERVER_PORT", "9090")
		os.Setenv("CARTWISE_SERVER_ENVIRONMENT", "production")
		os.Setenv("CARTWISE_GEMINI_API_KEY", "custom-gemini-key")
		os.Setenv("CARTWISE_GEMINI_MODEL", "models/gemini-2.5-pro")
		os.Setenv("CARTWISE_SERPAPI_API_KEY", "custom-serpapi-key")
		os.Setenv("CARTWISE_SERPAPI_BASE_URL", "https://custom.serpapi.test")
		os.Setenv("CARTWISE_SERPAPI_MARKET", "sg")
		os.Setenv("CARTWISE_PIPELINE_TOP_N_PER_PRODUCT", "5")
		defer cleanupEnv()

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v, want nil", err)
		}

		if cfg.Server.Port != "9090" {
			t.Errorf("Server.Port = %s, want 9090", cfg.Server.Port)
		}
		if cfg.Server.Environment != "production" {
			t.Errorf("Server.Environment = %s, want production", cfg.Server.Environment)
		}
		if cfg.Gemini.APIKey != "custom-gemini-key" {
			t.Errorf("Gemini.APIKey = %s, want custom-gemini-key", cfg.Gemini.APIKey)
		}
		if cfg.Gemini.Model != "models/gemini-2.5-pro" {
			t.Errorf("Gemini.Model = %s, want models/gemini-2.5-pro", cfg.Gemini.Model)
		}
		if cfg.SerpAPI.APIKey != "custom-serpapi-key" {
			t.Errorf("SerpAPI.APIKey = %s, want custom-serpapi-key", cfg.SerpAPI.APIKey)
		}
		if cfg.SerpAPI.BaseURL != "https://custom.serpapi.test" {
			t.Errorf("SerpAPI.BaseURL = %s, want https://custom.serpapi.test", cfg.SerpAPI.BaseURL)
		}
		if cfg.SerpAPI.Market != "sg" {
			t.Errorf("SerpAPI.Market = %s, want sg", cfg.SerpAPI.Market)
		}
		if cfg.Pipeline.TopNPerProduct != 5 {
			t.Errorf("Pipeline.TopNPerProduct = %d, want 5", cfg.Pipeline.TopNPerProduct)
		}
	})

	t.Run("fails validation when Gemini key is missing", func(t *testing.T) {
		cleanupEnv()
		os.Setenv("CARTWISE_SERPAPI_API_KEY", "test-serpapi-key")
		defer cleanupEnv()

		_, err := Load()
		if err == nil {
			t.Error("Load() error = nil, want error for missing Gemini API key")
		}
		if err != nil && err.Error() != "invalid configuration: Gemini API key is required (set CARTWISE_GEMINI_API_KEY)" {
			t.Errorf("Load() error = %v, want 'Gemini API key is required'", err)
		}
	})

	t.Run("fails validation when SerpApi key is missing", func(t *testing.T) {
		cleanupEnv()
		os.Setenv("CARTWISE_GEMINI_API_KEY", "test-gemini-key")
		defer cleanupEnv()

		_, err := Load()
		if err == nil {
			t.Error("Load() error = nil, want error for missing SerpApi key")
		}
	})

	t.Run("fails validation for non-positive top n", func(t *testing.T) {
		cleanupEnv()
		os.Setenv("CARTWISE_GEMINI_API_KEY", "test-gemini-key")
		os.Setenv("CARTWISE_SERPAPI_API_KEY", "test-serpapi-key")
		os.Setenv("CARTWISE_PIPELINE_TOP_N_PER_PRODUCT", "0")
		defer cleanupEnv()

		_, err := Load()
		if err == nil {
			t.Error("Load() error = nil, want error for non-positive top n")
		}
	})
}
