package config

import (
	"fmt"
	"net/url"
	"os"
	"pokedex/internal/constants"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

type Config struct {
	BaseURL    string
	ListLimit  int
	UserAgent  string
	ServerPort string
	LogLevel   string

	// set when a .env file was found and applied
	EnvFileLoaded bool
}

// Load reads a .env file if one exists, then the environment. Nothing is
// logged here since the logger's level itself comes from this config.
func Load() (*Config, error) {
	envErr := godotenv.Load()

	cfg := &Config{
		EnvFileLoaded: envErr == nil,
		BaseURL:    strings.TrimRight(getEnv("POKEAPI_BASE_URL", constants.DefaultBaseURL), "/"),
		UserAgent:  getEnv("USER_AGENT", constants.DefaultUserAgent),
		ServerPort: getEnv("SERVER_PORT", "8080"),
		LogLevel:   getEnv("LOG_LEVEL", "info"),
	}

	limit, err := strconv.Atoi(getEnv("POKEAPI_LIST_LIMIT", strconv.Itoa(constants.DefaultListLimit)))
	if err != nil || limit <= 0 {
		return nil, fmt.Errorf("POKEAPI_LIST_LIMIT must be a positive integer")
	}
	cfg.ListLimit = limit

	if u, err := url.Parse(cfg.BaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("POKEAPI_BASE_URL %q is not an absolute URL", cfg.BaseURL)
	}

	if _, err := zerolog.ParseLevel(cfg.LogLevel); err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL %q: %w", cfg.LogLevel, err)
	}

	return cfg, nil
}

// Level is the parsed LogLevel; Load has already rejected invalid values.
func (c *Config) Level() zerolog.Level {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil || level == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return level
}

func (c *Config) MarshalZerologObject(e *zerolog.Event) {
	e.Str("base_url", c.BaseURL).
		Int("list_limit", c.ListLimit).
		Str("server_port", c.ServerPort).
		Str("log_level", c.LogLevel).
		Bool("env_file", c.EnvFileLoaded)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

var Module = fx.Provide(Load)
