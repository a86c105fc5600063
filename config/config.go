package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment Configuration
	Environment EnvironmentConfig

	// Server Configuration
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Gemini - upstream LLM
	Gemini GeminiConfig

	// Relay - request assembly
	Relay RelayConfig
}

// EnvironmentConfig is the configuration for the deployment environment.
type EnvironmentConfig struct {
	Name string
}

// HTTPServerConfig is the configuration for the HTTP server
type HTTPServerConfig struct {
	Host string
	Port int
	Mode string
}

// LoggerConfig is the configuration for the logger
type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// GeminiConfig is the configuration for Google Gemini. Same shape as pkg/gemini.GeminiConfig plus the credentials.
type GeminiConfig struct {
	APIKey        string
	Model         string
	BaseURL       string
	Timeout       int // in seconds
	ProxyURL      string
	RequireAPIKey bool
	SafetyReasons []string
}

// RelayConfig is the configuration for the relay usecase
type RelayConfig struct {
	DefaultPrompt       string
	MissingPromptPolicy string
}

// Load loads configuration from .env, relay-config.yaml and the environment using Viper.
func Load() (*Config, error) {
	// Local .env (optional, never overrides the real environment)
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error reading .env file: %w", err)
	}

	v := viper.New()
	v.SetConfigName("relay-config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")

	// Enable environment variable override
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	if err := v.BindEnv("http_server.port", "PORT", "HTTP_SERVER_PORT"); err != nil {
		return nil, fmt.Errorf("error binding env: %w", err)
	}

	// Set defaults
	setDefaults(v)

	// Read config file (optional - will use env vars if file not found)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Host = v.GetString("http_server.host")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")

	// Gemini
	cfg.Gemini.APIKey = strings.TrimSpace(v.GetString("gemini.api_key"))
	cfg.Gemini.Model = v.GetString("gemini.model")
	cfg.Gemini.BaseURL = v.GetString("gemini.base_url")
	cfg.Gemini.Timeout = v.GetInt("gemini.timeout")
	cfg.Gemini.ProxyURL = v.GetString("gemini.proxy_url")
	cfg.Gemini.RequireAPIKey = v.GetBool("gemini.require_api_key")
	cfg.Gemini.SafetyReasons = splitList(v.GetStringSlice("gemini.safety_reasons"))

	// Relay
	cfg.Relay.DefaultPrompt = v.GetString("relay.default_prompt")
	cfg.Relay.MissingPromptPolicy = v.GetString("relay.missing_prompt_policy")

	// Validate required fields
	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	// Environment
	v.SetDefault("environment.name", "production")

	// HTTP Server
	v.SetDefault("http_server.host", "")
	v.SetDefault("http_server.port", 3000)
	v.SetDefault("http_server.mode", "release")

	// Logger
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.mode", "production")
	v.SetDefault("logger.encoding", "json")
	v.SetDefault("logger.color_enabled", false)

	// Gemini
	v.SetDefault("gemini.api_key", "")
	v.SetDefault("gemini.model", "gemini-2.0-flash")
	v.SetDefault("gemini.base_url", "https://generativelanguage.googleapis.com")
	v.SetDefault("gemini.timeout", 60)
	v.SetDefault("gemini.proxy_url", "")
	v.SetDefault("gemini.require_api_key", false)
	v.SetDefault("gemini.safety_reasons", []string{"SAFETY", "PROHIBITED_CONTENT", "BLOCKLIST", "SPII"})

	// Relay
	v.SetDefault("relay.default_prompt", "Write a story about a magical bag.")
	v.SetDefault("relay.missing_prompt_policy", "default")
}

// splitList accepts both YAML lists and comma separated env values.
func splitList(in []string) []string {
	out := make([]string, 0, len(in))
	for _, item := range in {
		for _, s := range strings.Split(item, ",") {
			if s = strings.TrimSpace(s); s != "" {
				out = append(out, s)
			}
		}
	}
	return out
}

func validate(cfg *Config) error {
	if cfg.HTTPServer.Port <= 0 || cfg.HTTPServer.Port > 65535 {
		return fmt.Errorf("http_server.port must be between 1 and 65535")
	}
	switch cfg.HTTPServer.Mode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("http_server.mode must be one of debug, release, test")
	}

	if cfg.Gemini.RequireAPIKey && cfg.Gemini.APIKey == "" {
		return fmt.Errorf("gemini.api_key is required")
	}
	if cfg.Gemini.Model == "" {
		return fmt.Errorf("gemini.model is required")
	}
	if u, err := url.Parse(cfg.Gemini.BaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("gemini.base_url must be an absolute URL")
	}
	if cfg.Gemini.Timeout <= 0 {
		return fmt.Errorf("gemini.timeout must be greater than 0")
	}
	if cfg.Gemini.ProxyURL != "" {
		if _, err := url.Parse(cfg.Gemini.ProxyURL); err != nil {
			return fmt.Errorf("gemini.proxy_url is invalid: %w", err)
		}
	}

	switch strings.ToLower(strings.TrimSpace(cfg.Relay.MissingPromptPolicy)) {
	case "", "default", "reject":
	default:
		return fmt.Errorf("relay.missing_prompt_policy must be default or reject")
	}

	return nil
}
