package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/go-playground/validator/v10"
	toml "github.com/pelletier/go-toml/v2"

	"github.com/five82/bargain/internal/catalog"
	"github.com/five82/bargain/internal/cheapshark"
)

// Config holds the runtime settings for bargain.
type Config struct {
	APIURL         string        `validate:"required,url"`
	RedirectURL    string        `validate:"required,url"`
	DefaultStore   string        `validate:"required,numeric"`
	RequestTimeout time.Duration `validate:"gt=0"`
	EnrichWorkers  int           `validate:"min=1,max=12"`
	LogFile        string
	LogLevel       string `validate:"oneof=debug info warn error"`
}

const (
	defaultConfigPath     = "~/.config/bargain/config.toml"
	defaultLogFile        = "~/.local/state/bargain/bargain.log"
	defaultLogLevel       = "info"
	defaultTimeoutSeconds = 10
	defaultEnrichWorkers  = 1

	// LogFileOff disables file logging when used as log_file.
	LogFileOff = "off"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

type fileConfig struct {
	APIURL                string `toml:"api_url"`
	RedirectURL           string `toml:"redirect_url"`
	DefaultStore          string `toml:"default_store"`
	RequestTimeoutSeconds int    `toml:"request_timeout_seconds"`
	EnrichWorkers         int    `toml:"enrich_workers"`
	LogFile               string `toml:"log_file"`
	LogLevel              string `toml:"log_level"`
}

type envConfig struct {
	APIURL                string `env:"API_URL"`
	RedirectURL           string `env:"REDIRECT_URL"`
	DefaultStore          string `env:"DEFAULT_STORE"`
	RequestTimeoutSeconds int    `env:"REQUEST_TIMEOUT_SECONDS"`
	EnrichWorkers         int    `env:"ENRICH_WORKERS"`
	LogFile               string `env:"LOG_FILE"`
	LogLevel              string `env:"LOG_LEVEL"`
}

// Defaults returns the configuration used when no file is present.
func Defaults() Config {
	return Config{
		APIURL:         cheapshark.DefaultAPIURL,
		RedirectURL:    cheapshark.DefaultRedirectURL,
		DefaultStore:   catalog.DefaultStore,
		RequestTimeout: defaultTimeoutSeconds * time.Second,
		EnrichWorkers:  defaultEnrichWorkers,
		LogFile:        mustExpand(defaultLogFile),
		LogLevel:       defaultLogLevel,
	}
}

// Load reads the config file at path (or the default location), applies
// BARGAIN_* environment overrides and validates the result. A missing file
// yields defaults.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	var raw fileConfig
	file, err := os.Open(resolved)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return Config{}, fmt.Errorf("open config: %w", err)
	default:
		defer file.Close()
		bytes, err := io.ReadAll(file)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		if err := toml.Unmarshal(bytes, &raw); err != nil {
			return Config{}, fmt.Errorf("parse config: %w", err)
		}
	}

	var overrides envConfig
	if err := env.ParseWithOptions(&overrides, env.Options{Prefix: "BARGAIN_"}); err != nil {
		return Config{}, fmt.Errorf("env.Parse: %w", err)
	}

	cfg := Defaults()
	cfg.APIURL = pick(cfg.APIURL, raw.APIURL, overrides.APIURL)
	cfg.RedirectURL = pick(cfg.RedirectURL, raw.RedirectURL, overrides.RedirectURL)
	cfg.DefaultStore = pick(cfg.DefaultStore, raw.DefaultStore, overrides.DefaultStore)
	cfg.LogLevel = strings.ToLower(pick(cfg.LogLevel, raw.LogLevel, overrides.LogLevel))
	if seconds := pickInt(raw.RequestTimeoutSeconds, overrides.RequestTimeoutSeconds); seconds != 0 {
		cfg.RequestTimeout = time.Duration(seconds) * time.Second
	}
	if workers := pickInt(raw.EnrichWorkers, overrides.EnrichWorkers); workers != 0 {
		cfg.EnrichWorkers = workers
	}

	logFile := pick("", raw.LogFile, overrides.LogFile)
	switch {
	case strings.EqualFold(logFile, LogFileOff):
		cfg.LogFile = ""
	case logFile != "":
		cfg.LogFile = mustExpand(logFile)
	}

	if err := validate.Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}

// pick returns the last non-blank value, trimmed.
func pick(def string, values ...string) string {
	out := def
	for _, v := range values {
		if trimmed := strings.TrimSpace(v); trimmed != "" {
			out = trimmed
		}
	}
	return out
}

func pickInt(values ...int) int {
	out := 0
	for _, v := range values {
		if v != 0 {
			out = v
		}
	}
	return out
}

// DefaultPath returns the expanded default config location.
func DefaultPath() string {
	return mustExpand(defaultConfigPath)
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
