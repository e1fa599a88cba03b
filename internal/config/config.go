package config

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all environment-driven settings for the application.
// Every field can be overridden via an environment variable of the same
// name; matching is case-insensitive.
type Config struct {
	// Application metadata.
	AppName     string `mapstructure:"APP_NAME"`
	Version     string `mapstructure:"VERSION"`
	Environment string `mapstructure:"ENVIRONMENT"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`
	AppPort     int    `mapstructure:"APP_PORT"`

	// LLM provider configuration.
	LLMProvider  string `mapstructure:"LLM_PROVIDER"`
	LLMModel     string `mapstructure:"LLM_MODEL"`
	LLMAPIKey    string `mapstructure:"LLM_API_KEY"`
	LLMBaseURL   string `mapstructure:"LLM_BASE_URL"`
	SystemPrompt string `mapstructure:"SYSTEM_PROMPT"`

	// Vault configuration. The agent's tools operate against this directory.
	ObsidianVaultPath string `mapstructure:"OBSIDIAN_VAULT_PATH"`

	// API authentication. Clients must present this value as a bearer token.
	APIKey string `mapstructure:"API_KEY"`

	// CORS allow-list, a JSON array of origins in the environment,
	// e.g. ALLOWED_ORIGINS=["app://obsidian.md"].
	AllowedOrigins []string `mapstructure:"ALLOWED_ORIGINS"`
}

// ModelName builds the provider:model string used in logs and diagnostics.
func (c *Config) ModelName() string {
	return fmt.Sprintf("%s:%s", c.LLMProvider, c.LLMModel)
}

// LoadConfig reads configuration from a .env file if one is present,
// falling back to environment variables and the defaults below.
func LoadConfig() (*Config, error) {
	viper.SetDefault("APP_NAME", "Paddy")
	viper.SetDefault("VERSION", "0.1.0")
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("LOG_LEVEL", "INFO")
	viper.SetDefault("APP_PORT", 8000)
	viper.SetDefault("LLM_PROVIDER", "openai")
	viper.SetDefault("LLM_MODEL", "gpt-4.1-nano")
	viper.SetDefault("LLM_API_KEY", "")
	viper.SetDefault("LLM_BASE_URL", "https://api.openai.com/v1")
	viper.SetDefault("SYSTEM_PROMPT",
		"You are Paddy, an AI assistant for managing Obsidian vaults. "+
			"You help users find, read, and organize their notes using natural language. "+
			"Always use the available tools to interact with the vault - "+
			"do not guess file contents or paths.")
	viper.SetDefault("OBSIDIAN_VAULT_PATH", "/vault")
	viper.SetDefault("API_KEY", "")
	viper.SetDefault("ALLOWED_ORIGINS", []string{"app://obsidian.md", "capacitor://localhost"})

	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	// viper's default decode hook splits env strings on commas, which
	// mangles the JSON-array form of ALLOWED_ORIGINS. When the raw value
	// is a JSON array, re-parse it; the comma-separated form still works
	// through the hook.
	if raw := strings.TrimSpace(viper.GetString("ALLOWED_ORIGINS")); strings.HasPrefix(raw, "[") {
		var origins []string
		if err := json.Unmarshal([]byte(raw), &origins); err != nil {
			return nil, fmt.Errorf("ALLOWED_ORIGINS is not a valid JSON array: %w", err)
		}
		cfg.AllowedOrigins = origins
	}

	return &cfg, nil
}
