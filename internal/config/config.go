// Package config loads folio's settings from the environment once at
// startup. Nothing else in the program reads environment variables.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexanderramin/folio/internal/catalog"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const namespace = "FOLIO"

// ClientEnv configures the catalog client. An unset base URL is not
// defaulted; requests then fail as a transport error.
type ClientEnv struct {
	APIBaseURL string `envconfig:"API_BASE_URL"`
	APIKey     string `envconfig:"API_KEY"`
}

// UIEnv configures the landing screen and the diagnostic log.
type UIEnv struct {
	Profile  string `envconfig:"PROFILE"`
	LogFile  string `envconfig:"LOG_FILE"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
}

// ServerEnv configures the local catalog server.
type ServerEnv struct {
	DB   string `envconfig:"DB"`
	Addr string `envconfig:"ADDR" default:":8787"`
}

// Config is the full set of settings.
type Config struct {
	ClientEnv
	UIEnv
	ServerEnv
}

// Load reads an optional .env file from the working directory and then the
// FOLIO_* environment variables. Variables already set in the environment
// win over the file.
func Load() (*Config, error) {
	return LoadFrom(".env")
}

// LoadFrom is Load with an explicit dotenv path. A missing file is not an
// error.
func LoadFrom(dotenv string) (*Config, error) {
	if dotenv != "" {
		if err := godotenv.Load(dotenv); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("reading %s: %w", dotenv, err)
		}
	}

	var cfg Config
	if err := envconfig.Process(namespace, &cfg); err != nil {
		return nil, fmt.Errorf("loading env: %w", err)
	}
	cfg.APIKey = strings.TrimSpace(cfg.APIKey)
	cfg.APIBaseURL = strings.TrimSpace(cfg.APIBaseURL)

	if err := cfg.resolvePaths(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the settings the client needs. A missing API key is
// reported as catalog.ErrMissingAPIKey; callers treat it as a warning since
// the screens render that error themselves.
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return catalog.ErrMissingAPIKey
	}
	return nil
}

// Client returns the catalog client configuration.
func (c *Config) Client() catalog.ClientConfig {
	return catalog.ClientConfig{BaseURL: c.APIBaseURL, APIKey: c.APIKey}
}

func (c *Config) resolvePaths() error {
	if c.LogFile != "" && c.DB != "" {
		return nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("finding home directory: %w", err)
	}
	if c.LogFile == "" {
		c.LogFile = filepath.Join(home, ".folio", "folio.log")
	}
	if c.DB == "" {
		c.DB = filepath.Join(home, ".folio", "catalog.db")
	}
	return nil
}

// Usage writes a table of the recognised variables to out.
func Usage(out io.Writer) error {
	return envconfig.Usagef(namespace, &Config{}, out, envconfig.DefaultTableFormat)
}
