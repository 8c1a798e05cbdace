package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// ModelConfig points the completion engine at a locally hosted
// OpenAI-compatible server (llama.cpp, ollama, LM Studio...).
type ModelConfig struct {
	BaseURL string `json:"base_url"`
	Model   string `json:"model"`
	APIKey  string `json:"api_key,omitempty"`
}

type Config struct {
	KnowledgePath  string      `json:"knowledge_path"`
	ShortcutsPath  string      `json:"shortcuts_path"`
	FavoritesPath  string      `json:"favorites_path"`
	Model          ModelConfig `json:"model"`
	PollIntervalMS int         `json:"poll_interval_ms"`
	CooldownMS     int         `json:"completion_cooldown_ms"`
	Modifier       string      `json:"modifier"` // Key that flips to shortcuts mode
	WatchFiles     bool        `json:"watch_files"`
	Debug          bool        `json:"debug"`
}

func (c *Config) PollInterval() time.Duration {
	return time.Duration(c.PollIntervalMS) * time.Millisecond
}

func (c *Config) Cooldown() time.Duration {
	return time.Duration(c.CooldownMS) * time.Millisecond
}

// IsModelConfigured reports whether the completion engine has a usable
// endpoint. The overlay runs fine without one; AI features stay off.
func (c *Config) IsModelConfigured() bool {
	return c.Model.BaseURL != "" && c.Model.Model != ""
}

// LogDir returns the directory for log files, next to the config file.
func LogDir() string {
	dir, err := configDir()
	if err != nil {
		return "."
	}
	return filepath.Join(dir, "logs")
}

func LoadConfig() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		return nil, fmt.Errorf("failed to get config path: %w", err)
	}

	if err := ensureConfigDir(configPath); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	config, err := loadConfigFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	config.applyDefaults()
	return config, nil
}

func configDir() (string, error) {
	// Use ULTIMATE_OVERLAY_HOME if set, otherwise the user's home directory
	if overlayHome := os.Getenv("ULTIMATE_OVERLAY_HOME"); overlayHome != "" {
		return filepath.Join(overlayHome, ".ultimate-overlay"), nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".ultimate-overlay"), nil
}

func getConfigPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

func ensureConfigDir(configPath string) error {
	return os.MkdirAll(filepath.Dir(configPath), 0755)
}

func loadConfigFile(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return createDefaultConfig(configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	return &config, nil
}

func createDefaultConfig(configPath string) (*Config, error) {
	dir := filepath.Dir(configPath)
	config := &Config{
		KnowledgePath: filepath.Join(dir, "knowledge.json"),
		ShortcutsPath: filepath.Join(dir, "shortcuts.json"),
		FavoritesPath: filepath.Join(dir, "favorites.json"),
		Model: ModelConfig{
			BaseURL: "http://localhost:11434/v1",
			Model:   "",
		},
		PollIntervalMS: 150,
		CooldownMS:     500,
		Modifier:       "ctrl",
		WatchFiles:     true,
	}

	if err := saveConfig(config, configPath); err != nil {
		return nil, err
	}

	return config, nil
}

func (c *Config) applyDefaults() {
	dir, err := configDir()
	if err != nil {
		dir = "."
	}
	if c.KnowledgePath == "" {
		c.KnowledgePath = filepath.Join(dir, "knowledge.json")
	}
	if c.ShortcutsPath == "" {
		c.ShortcutsPath = filepath.Join(dir, "shortcuts.json")
	}
	if c.FavoritesPath == "" {
		c.FavoritesPath = filepath.Join(dir, "favorites.json")
	}
	if c.PollIntervalMS <= 0 {
		c.PollIntervalMS = 150
	}
	if c.CooldownMS <= 0 {
		c.CooldownMS = 500
	}
	if c.Modifier == "" {
		c.Modifier = "ctrl"
	}
}

func saveConfig(config *Config, configPath string) error {
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0600)
}

func (c *Config) Save() error {
	configPath, err := getConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}

	return saveConfig(c, configPath)
}
