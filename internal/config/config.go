// Package config provides environment-sourced configuration for the catalog
// collector. A Config is built once at startup and passed explicitly; core
// packages never read the environment themselves.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// Defaults applied when the corresponding environment variable is absent.
const (
	DefaultWebModel      = "gpt-5-mini"
	DefaultFallbackModel = "gpt-5-mini"
	DefaultTimeout       = 60 * time.Second
	DefaultLayerRetries  = 2
	DefaultConcurrency   = 8
	DefaultOutDir        = "out"
)

// Config holds all process-wide settings. It is immutable after FromEnv.
type Config struct {
	APIKey        string `validate:"required"`
	WebModel      string `validate:"required"`
	FallbackModel string `validate:"required"`
	UseWebSearch  bool
	Timeout       time.Duration `validate:"gt=0"`
	LayerRetries  int           `validate:"min=1"`
	Concurrency   int           `validate:"min=1"`
	OutDir        string        `validate:"required"`
	Debug         bool
}

// FromEnv builds a Config from the process environment, applying defaults
// for everything except the API credential, which is required.
func FromEnv() (*Config, error) {
	cfg := &Config{
		APIKey:        os.Getenv("OPENAI_API_KEY"),
		WebModel:      envOr("OPENAI_WEB_MODEL", DefaultWebModel),
		FallbackModel: envOr("OPENAI_FALLBACK_MODEL", DefaultFallbackModel),
		UseWebSearch:  envBool("USE_WEB_SEARCH", true),
		Timeout:       time.Duration(envFloat("LLM_TIMEOUT_SEC", DefaultTimeout.Seconds()) * float64(time.Second)),
		LayerRetries:  envInt("LLM_LAYER_RETRIES", DefaultLayerRetries),
		Concurrency:   envInt("CONCURRENCY", DefaultConcurrency),
		OutDir:        envOr("OUT_DIR", DefaultOutDir),
		Debug:         envBool("DEBUG_LLM", false),
	}

	if cfg.APIKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Validate checks that the configuration values are in range.
func (c *Config) Validate() error {
	return validator.New().Struct(c)
}

// WithDebug returns a copy of the configuration with debug output enabled.
// The receiver is left untouched.
func (c *Config) WithDebug() *Config {
	out := *c
	out.Debug = true
	return &out
}

func envOr(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func envBool(key string, def bool) bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
	if v == "" {
		return def
	}
	switch v {
	case "1", "true", "yes":
		return true
	default:
		return false
	}
}

func envInt(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func envFloat(key string, def float64) float64 {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return def
	}
	return f
}
