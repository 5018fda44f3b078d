package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// ErrMissingAPIKey is returned by Load when OPENAI_API_KEY is not set.
var ErrMissingAPIKey = errors.New("OPENAI_API_KEY is not set")

// Config is built once at startup and passed by value afterwards.
type Config struct {
	Port               string    `yaml:"port"`
	LogLevel           string    `yaml:"log_level"`
	LogFormat          string    `yaml:"log_format"`
	CORSAllowedOrigins []string  `yaml:"cors_allowed_origins"`
	LLM                LLMConfig `yaml:"llm"`
}

// LLMConfig holds the completion endpoint and its sampling parameters.
type LLMConfig struct {
	// APIKey only ever comes from the environment.
	APIKey           string        `yaml:"-"`
	Model            string        `yaml:"model"`
	BaseURL          string        `yaml:"base_url"`
	Timeout          time.Duration `yaml:"timeout"`
	Temperature      float64       `yaml:"temperature"`
	MaxTokens        int64         `yaml:"max_tokens"`
	TopP             float64       `yaml:"top_p"`
	FrequencyPenalty float64       `yaml:"frequency_penalty"`
	PresencePenalty  float64       `yaml:"presence_penalty"`
}

// Default returns the configuration used when nothing is overridden.
func Default() Config {
	return Config{
		Port:               "3000",
		LogLevel:           "info",
		LogFormat:          "text",
		CORSAllowedOrigins: []string{"*"},
		LLM: LLMConfig{
			Model:            "gpt-4o-mini",
			Timeout:          60 * time.Second,
			Temperature:      0.9,
			MaxTokens:        300,
			TopP:             1,
			FrequencyPenalty: 0.5,
			PresencePenalty:  0.5,
		},
	}
}

// Load reads .env (if present), then the optional YAML file at path, then the
// environment. Later sources win.
func Load(path string) (Config, error) {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("Warning: failed to read .env: %v", err)
	}

	cfg := Default()
	if path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}
	applyEnv(&cfg)

	if cfg.LLM.APIKey == "" {
		return Config{}, ErrMissingAPIKey
	}
	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

func applyEnv(cfg *Config) {
	cfg.Port = getEnvOrDefault("PORT", cfg.Port)
	cfg.LogLevel = getEnvOrDefault("LOG_LEVEL", cfg.LogLevel)
	cfg.LogFormat = getEnvOrDefault("LOG_FORMAT", cfg.LogFormat)
	if origins := os.Getenv("CORS_ALLOWED_ORIGINS"); origins != "" {
		cfg.CORSAllowedOrigins = splitList(origins)
	}

	cfg.LLM.APIKey = strings.TrimSpace(os.Getenv("OPENAI_API_KEY"))
	cfg.LLM.Model = getEnvOrDefault("OPENAI_MODEL", cfg.LLM.Model)
	cfg.LLM.BaseURL = getEnvOrDefault("OPENAI_BASE_URL", cfg.LLM.BaseURL)
	cfg.LLM.Timeout = getEnvAsDuration("LLM_TIMEOUT", cfg.LLM.Timeout)
	cfg.LLM.Temperature = getEnvFloat("LLM_TEMPERATURE", cfg.LLM.Temperature)
	cfg.LLM.MaxTokens = getEnvAsInt64("LLM_MAX_TOKENS", cfg.LLM.MaxTokens)
}

// Addr is the listen address for the HTTP server.
func (c Config) Addr() string {
	return ":" + c.Port
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		log.Printf("config: ignoring %s=%q (%v), keeping %v", key, value, err, defaultValue)
		return defaultValue
	}
	return parsed
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		log.Printf("config: ignoring %s=%q (%v), keeping %d", key, value, err, defaultValue)
		return defaultValue
	}
	return parsed
}

func getEnvFloat(key string, defaultValue float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		log.Printf("config: ignoring %s=%q (%v), keeping %g", key, value, err, defaultValue)
		return defaultValue
	}
	return parsed
}
