// Package config provides configuration management for go-matal.
package config

import (
	"log"
	"os"
	"strconv"
)

var AppVersion = "-unset-" // will be set at build time

const (
	// Default web interface settings
	DefaultListenPort = 11980

	// Default backing file for the proverb store
	DefaultDataFile = "data/proverbs.json"
)

// MainConfig holds the main configuration for go-matal
type MainConfig struct {
	// Web interface settings
	Web WebConfig `json:"web"`

	// Proverb store settings
	Store StoreConfig `json:"store"`

	AppVersion string `json:"app_version"` // Application version, set at build time
}

// WebConfig holds web interface configuration
type WebConfig struct {
	ListenPort int    `json:"listen_port"`
	SSL        bool   `json:"ssl"`
	CertFile   string `json:"cert_file,omitempty"`
	KeyFile    string `json:"key_file,omitempty"`
	Debug      bool   `json:"debug"` // Enable debug logging for request handling
}

// StoreConfig holds proverb store configuration
type StoreConfig struct {
	DataFile string `json:"data_file"` // Path to the JSON file holding the collection
}

// NewDefaultConfig returns a configuration with sensible defaults
func NewDefaultConfig() *MainConfig {
	return &MainConfig{
		AppVersion: AppVersion,
		Web: WebConfig{
			ListenPort: DefaultListenPort,
			SSL:        false,
		},
		Store: StoreConfig{
			DataFile: DefaultDataFile,
		},
	}
}

// ApplyEnv overrides defaults with MATAL_* environment variables.
// Command-line flags are applied after this in cmd/web and win over both.
func (cfg *MainConfig) ApplyEnv() {
	if portStr := os.Getenv("MATAL_PORT"); portStr != "" {
		if port, err := strconv.Atoi(portStr); err == nil && port > 0 {
			cfg.Web.ListenPort = port
		} else {
			log.Printf("[CONFIG]: Ignoring invalid MATAL_PORT=%q", portStr)
		}
	}
	if dataFile := os.Getenv("MATAL_DATA_FILE"); dataFile != "" {
		cfg.Store.DataFile = dataFile
	}
	if debug := os.Getenv("MATAL_DEBUG"); debug == "1" || debug == "true" {
		cfg.Web.Debug = true
	}
}
