// Copyright 2025 LinkU Labs
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


// Package config holds the TOML application configuration with defaults
// and validation.
package config

import "strconv"

// Config represents the application configuration.
type Config struct {
	Server  ServerConfig  `toml:"server"`
	Catalog CatalogConfig `toml:"catalog"`
	Data    DataConfig    `toml:"data"`
	Match   MatchConfig   `toml:"match"`
	Logging LoggingConfig `toml:"logging"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Host string `toml:"host"`
	Port int    `toml:"port"`
}

// CatalogConfig contains the program catalog store settings.
type CatalogConfig struct {
	// Path to the program_profiles.json snapshot.
	SnapshotPath string `toml:"snapshot_path"`
	// Path to the Badger store directory.
	StorePath string `toml:"store_path"`
	// When true the Badger store is kept in memory.
	InMemory bool `toml:"in_memory"`
}

// DataConfig contains paths to the auxiliary data files.
type DataConfig struct {
	MentorsPath    string `toml:"mentors_path"`
	AdmissionsPath string `toml:"admissions_path"`
}

// MatchConfig contains scoring engine settings.
type MatchConfig struct {
	// PoolSize is the number of scoring workers. Zero means half the
	// available CPUs.
	PoolSize int `toml:"pool_size"`
}

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	Level string `toml:"level"`
}

// Default returns the configuration defaults. Path defaults come back
// already expanded, so a run without a config file never passes a
// literal "~" to the filesystem.
func Default() *Config {
	cfg := &Config{
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 5001,
		},
		Catalog: CatalogConfig{
			SnapshotPath: "program_profiles.json",
			StorePath:    "~/.unime/catalog",
		},
		Data: DataConfig{
			MentorsPath:    "mentors.json",
			AdmissionsPath: "admissionsData.csv",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
	// Expansion only fails when the home directory is unknown; the "~"
	// path is left as-is then and Badger reports the unusable path.
	_ = cfg.expandPaths()
	return cfg
}

// Addr returns the host:port address for the HTTP server.
func (s ServerConfig) Addr() string {
	return s.Host + ":" + strconv.Itoa(s.Port)
}
