// ABOUTME: Configuration for the hosted data API.
// ABOUTME: Env vars win; a JSON file under XDG config is the fallback.

package rest

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
)

const (
	// EnvBaseURL and EnvAPIKey override any file config.
	EnvBaseURL = "BENCH_SUPABASE_URL"
	EnvAPIKey  = "BENCH_SUPABASE_KEY"
)

var ErrMissingCredentials = errors.New("missing API credentials: set " +
	EnvBaseURL + " and " + EnvAPIKey + " or write " + "remote.json")

// Config holds the base URL and static API key for the data API.
type Config struct {
	BaseURL string `json:"base_url"`
	APIKey  string `json:"api_key"`
}

func (c *Config) Validate() error {
	if c == nil || c.BaseURL == "" || c.APIKey == "" {
		return ErrMissingCredentials
	}
	return nil
}

// ConfigDir returns the configuration directory path.
func ConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "bench")
}

// ConfigPath returns the path to the remote config file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "remote.json")
}

// LoadConfig reads config from the environment, then the config file.
// It does not validate; callers decide whether credentials are required.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		BaseURL: os.Getenv(EnvBaseURL),
		APIKey:  os.Getenv(EnvAPIKey),
	}
	if cfg.BaseURL != "" && cfg.APIKey != "" {
		return cfg, nil
	}

	data, err := os.ReadFile(ConfigPath())
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, err
	}

	var file Config
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, err
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = file.BaseURL
	}
	if cfg.APIKey == "" {
		cfg.APIKey = file.APIKey
	}
	return cfg, nil
}

// SaveConfig writes the remote config file.
func SaveConfig(cfg *Config) error {
	if err := os.MkdirAll(ConfigDir(), 0750); err != nil {
		return err
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(ConfigPath(), data, 0600)
}
