package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/evcraddock/movie-notes/internal/movie"
)

const (
	defaultServerURL = "http://localhost:8080"
	defaultPort      = 8080
)

// Config holds settings read from ~/.config/mn/config.yaml.
type Config struct {
	ServerURL string `yaml:"server_url,omitempty"`
	MovieURL  string `yaml:"movie_url,omitempty"`
	Port      int    `yaml:"port,omitempty"`
}

// configPath returns the path to the config file.
func configPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, ".config", "mn", "config.yaml"), nil
}

// loadConfig reads the config from disk.
// Returns a zero-value config if the file doesn't exist.
func loadConfig() (Config, error) {
	path, err := configPath()
	if err != nil {
		return Config{}, err
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Config{}, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// saveConfig writes the config to disk.
func saveConfig(cfg Config) error {
	path, err := configPath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}

// getServerURL returns the server URL from env var, config, or default.
func getServerURL() string {
	if v := os.Getenv("MN_SERVER_URL"); v != "" {
		return v
	}
	cfg, err := loadConfig()
	if err == nil && cfg.ServerURL != "" {
		return cfg.ServerURL
	}
	return defaultServerURL
}

// getMovieURL returns the movie API URL from env var, config, or default.
func getMovieURL() string {
	if v := os.Getenv("MN_MOVIE_URL"); v != "" {
		return v
	}
	cfg, err := loadConfig()
	if err == nil && cfg.MovieURL != "" {
		return cfg.MovieURL
	}
	return movie.DefaultURL
}

// getPort returns the listen port from env var, config, or default.
func getPort() (int, error) {
	if v := os.Getenv("MN_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return 0, fmt.Errorf("invalid MN_PORT %q: %w", v, err)
		}
		return port, nil
	}
	cfg, err := loadConfig()
	if err == nil && cfg.Port != 0 {
		return cfg.Port, nil
	}
	return defaultPort, nil
}
