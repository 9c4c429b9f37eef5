package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Load reads and parses the configuration file. The defaults apply to
// every field the file leaves unset.
func Load(path string) (*Config, error) {
	expandedPath, err := expandPath(path)
	if err != nil {
		return nil, fmt.Errorf("failed to expand config path: %w", err)
	}

	data, err := os.ReadFile(expandedPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("config file not found: %s", expandedPath)
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.expandPaths(); err != nil {
		return nil, fmt.Errorf("failed to expand paths: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// expandPath expands ~ to the home directory.
func expandPath(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, path[1:]), nil
}

// expandPaths expands ~ in all path fields.
func (c *Config) expandPaths() error {
	var err error

	c.Catalog.SnapshotPath, err = expandPath(c.Catalog.SnapshotPath)
	if err != nil {
		return err
	}

	c.Catalog.StorePath, err = expandPath(c.Catalog.StorePath)
	if err != nil {
		return err
	}

	c.Data.MentorsPath, err = expandPath(c.Data.MentorsPath)
	if err != nil {
		return err
	}

	c.Data.AdmissionsPath, err = expandPath(c.Data.AdmissionsPath)
	if err != nil {
		return err
	}

	return nil
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	var errs []error

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		errs = append(errs, errors.New("server.port must be between 1 and 65535"))
	}

	if c.Catalog.SnapshotPath == "" && c.Catalog.StorePath == "" && !c.Catalog.InMemory {
		errs = append(errs, errors.New("catalog.snapshot_path or catalog.store_path is required"))
	}

	if c.Match.PoolSize < 0 {
		errs = append(errs, errors.New("match.pool_size must not be negative"))
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Logging.Level] {
		errs = append(errs, fmt.Errorf("logging.level must be debug, info, warn or error, got %q", c.Logging.Level))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	return nil
}
