package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseURL     string
	DefaultLangcode string
	// TranslatableTypes lists the entity-type IDs with content
	// translation enabled.
	TranslatableTypes []string
	MigrationsPath    string
}

// Load reads the configuration from environment variables and
// validates it.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		// .env is optional when the variables come from the environment
		// itself (Docker, CI, etc.).
	}

	cfg := &Config{
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		DefaultLangcode: os.Getenv("DEFAULT_LANGCODE"),
		MigrationsPath:  os.Getenv("MIGRATIONS_PATH"),
	}
	if raw := strings.TrimSpace(os.Getenv("TRANSLATABLE_ENTITY_TYPES")); raw != "" {
		for _, id := range strings.Split(raw, ",") {
			if id = strings.TrimSpace(id); id != "" {
				cfg.TranslatableTypes = append(cfg.TranslatableTypes, id)
			}
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate applies defaults and sanity checks to the loaded values.
func (c *Config) validate() error {
	if strings.TrimSpace(c.DatabaseURL) == "" {
		// Useful local default when DATABASE_URL is not provided.
		c.DatabaseURL = "postgres://localhost:5432/langtoken?sslmode=disable"
	}

	parsed, err := url.Parse(c.DatabaseURL)
	if err != nil {
		return fmt.Errorf("config: invalid DATABASE_URL (%q): %w", c.DatabaseURL, err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("config: invalid DATABASE_URL (%q): missing scheme or host", c.DatabaseURL)
	}

	if strings.TrimSpace(c.DefaultLangcode) == "" {
		c.DefaultLangcode = "en"
	}
	if c.DefaultLangcode != strings.ToLower(c.DefaultLangcode) {
		return fmt.Errorf("config: DEFAULT_LANGCODE must be lowercase (got %q)", c.DefaultLangcode)
	}

	if len(c.TranslatableTypes) == 0 {
		c.TranslatableTypes = []string{"node"}
	}

	if strings.TrimSpace(c.MigrationsPath) == "" {
		c.MigrationsPath = "migrations"
	}

	return nil
}
