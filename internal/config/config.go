// Package config loads storefront configuration from an optional YAML file
// with environment-variable overrides.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// Defaults applied when neither file nor environment provides a value.
const (
	DefaultAPIBase   = "http://localhost:4001"
	DefaultDBPath    = "storefront.db"
	DefaultPageLimit = 30
)

// Config holds the client's runtime settings.
type Config struct {
	// APIBase is the remote catalog base URL.
	APIBase string `yaml:"api_base"`
	// UserID scopes the personal collections. Generated when absent.
	UserID string `yaml:"user_id"`
	// DBPath is the SQLite file backing the persisted collections.
	DBPath string `yaml:"db_path"`
	// PageLimit is the catalog page size.
	PageLimit int `yaml:"page_limit"`
}

// Load builds the effective configuration: defaults, then the YAML file at
// path (when non-empty and present), then environment overrides. A missing
// file is not an error; a malformed one is.
func Load(path string) (Config, error) {
	cfg := Config{
		APIBase:   DefaultAPIBase,
		DBPath:    DefaultDBPath,
		PageLimit: DefaultPageLimit,
	}

	if path != "" {
		raw, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// fall through to env
		case err != nil:
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(raw, &cfg); err != nil {
				return Config{}, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}

	if v := os.Getenv("STOREFRONT_API_BASE"); v != "" {
		cfg.APIBase = v
	}
	if v := os.Getenv("STOREFRONT_USER_ID"); v != "" {
		cfg.UserID = v
	}
	if v := os.Getenv("STOREFRONT_DB"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("STOREFRONT_PAGE_LIMIT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return Config{}, fmt.Errorf("invalid STOREFRONT_PAGE_LIMIT %q", v)
		}
		cfg.PageLimit = n
	}

	if cfg.PageLimit <= 0 {
		cfg.PageLimit = DefaultPageLimit
	}
	if cfg.UserID == "" {
		cfg.UserID = uuid.NewString()
	}
	return cfg, nil
}
