package config

import (
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

// AuditConfig holds audit logging settings.
type AuditConfig struct {
	Enabled  bool   `yaml:"enabled"`
	FilePath string `yaml:"file_path,omitempty"`
}

// Config holds the persisted application configuration.
type Config struct {
	RecentProjects []string    `yaml:"recent_projects"`
	Audit          AuditConfig `yaml:"audit"`
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		RecentProjects: []string{},
		Audit: AuditConfig{
			Enabled: true,
		},
	}
}

// GetConfigPath returns the path to the config file based on OS.
func GetConfigPath() (string, error) {
	var configDir string

	switch runtime.GOOS {
	case "windows":
		configDir = os.Getenv("APPDATA")
		if configDir == "" {
			configDir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		configDir = filepath.Join(home, "Library", "Application Support")
	default: // linux and others
		configDir = os.Getenv("XDG_CONFIG_HOME")
		if configDir == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", err
			}
			configDir = filepath.Join(home, ".config")
		}
	}

	appDir := filepath.Join(configDir, "gsm-tui")
	if err := os.MkdirAll(appDir, 0755); err != nil {
		return "", err
	}

	return filepath.Join(appDir, "config.yaml"), nil
}

// Load reads the config from disk or returns defaults.
func Load() (*Config, error) {
	configPath, err := GetConfigPath()
	if err != nil {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, err
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes the config to disk.
func (c *Config) Save() error {
	configPath, err := GetConfigPath()
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0644)
}

// AddRecentProject records a project switch. Projects are kept most recent
// first and deduplicated.
func (c *Config) AddRecentProject(projectID string) {
	if projectID == "" {
		return
	}

	filtered := make([]string, 0, len(c.RecentProjects))
	for _, p := range c.RecentProjects {
		if p != projectID {
			filtered = append(filtered, p)
		}
	}

	c.RecentProjects = append([]string{projectID}, filtered...)
}
