package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"sort"

	"github.com/joho/godotenv"
)

const (
	DefaultProfile    = "default"
	DefaultBackendURL = "http://127.0.0.1:8000"

	envHome    = "AIPROS_HOME"
	envBackend = "AIPROS_BACKEND_URL"
)

// DefaultQuickCommands are seeded into new profiles.
var DefaultQuickCommands = []string{
	"📂 Open Downloads",
	"🧮 Open Calculator",
	"🌐 Search the web for today's news",
	"🎵 Play lofi music on YouTube",
}

type Profile struct {
	BaseURL       string   `json:"base_url"`
	QuickCommands []string `json:"quick_commands,omitempty"`
}

type Config struct {
	Profiles       map[string]Profile `json:"profiles"`
	ActiveProfile  string             `json:"active_profile"`
	currentProfile *Profile
	backendEnv     string
	path           string
}

// LoadConfig reads the config file, creating a default one when missing.
// A .env file in the working directory is applied to the environment first.
func LoadConfig() (*Config, error) {
	// Missing .env is the normal case.
	_ = godotenv.Load()

	configPath, err := getConfigPath()
	if err != nil {
		return nil, fmt.Errorf("failed to get config path: %w", err)
	}

	// Ensure config directory exists
	if err := ensureConfigDir(configPath); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	// Load existing config or create default
	config, err := loadConfigFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	config.path = configPath
	config.backendEnv = os.Getenv(envBackend)

	// Validate and set current profile
	if err := config.setCurrentProfile(); err != nil {
		return nil, fmt.Errorf("failed to set current profile: %w", err)
	}

	return config, nil
}

func (c *Config) IsValid() bool {
	return ValidateBaseURL(c.GetBaseURL()) == nil
}

// GetBaseURL returns the backend URL: AIPROS_BACKEND_URL if set, else the
// active profile's.
func (c *Config) GetBaseURL() string {
	if c.backendEnv != "" {
		return c.backendEnv
	}
	if c.currentProfile == nil || c.currentProfile.BaseURL == "" {
		return DefaultBackendURL
	}
	return c.currentProfile.BaseURL
}

func (c *Config) GetQuickCommands() []string {
	if c.currentProfile == nil {
		return nil
	}
	return c.currentProfile.QuickCommands
}

// Dir is the directory holding config.json and the log file.
func (c *Config) Dir() string {
	return filepath.Dir(c.path)
}

// ProfileNames returns profile names in sorted order.
func (c *Config) ProfileNames() []string {
	names := make([]string, 0, len(c.Profiles))
	for name := range c.Profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Use makes name the active profile.
func (c *Config) Use(name string) error {
	profile, exists := c.Profiles[name]
	if !exists {
		return fmt.Errorf("profile '%s' does not exist", name)
	}
	c.ActiveProfile = name
	c.currentProfile = &profile
	return nil
}

// ValidateBaseURL accepts absolute http(s) URLs.
func ValidateBaseURL(raw string) error {
	if raw == "" {
		return errors.New("base URL is empty")
	}
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid base URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("base URL must use http or https, got %q", u.Scheme)
	}
	if u.Host == "" {
		return errors.New("base URL has no host")
	}
	return nil
}

func getConfigPath() (string, error) {
	var configDir string

	// Use AIPROS_HOME if set, otherwise use user's home directory
	if home := os.Getenv(envHome); home != "" {
		configDir = home
	} else {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		configDir = homeDir
	}

	return filepath.Join(configDir, ".aipros", "config.json"), nil
}

func ensureConfigDir(configPath string) error {
	configDir := filepath.Dir(configPath)
	return os.MkdirAll(configDir, 0755)
}

func loadConfigFile(configPath string) (*Config, error) {
	// If config file doesn't exist, create default
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

func NewDefaultProfile() Profile {
	quick := make([]string, len(DefaultQuickCommands))
	copy(quick, DefaultQuickCommands)
	return Profile{
		BaseURL:       DefaultBackendURL,
		QuickCommands: quick,
	}
}

func createDefaultConfig(configPath string) (*Config, error) {
	config := &Config{
		Profiles: map[string]Profile{
			DefaultProfile: NewDefaultProfile(),
		},
		ActiveProfile: DefaultProfile,
	}

	if err := saveConfig(config, configPath); err != nil {
		return nil, err
	}

	return config, nil
}

func saveConfig(config *Config, configPath string) error {
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0600)
}

func (c *Config) Save() error {
	if c.path == "" {
		configPath, err := getConfigPath()
		if err != nil {
			return fmt.Errorf("failed to get config path: %w", err)
		}
		c.path = configPath
	}

	return saveConfig(c, c.path)
}

func (c *Config) setCurrentProfile() error {
	if len(c.Profiles) == 0 {
		return fmt.Errorf("no profiles defined")
	}

	profile, exists := c.Profiles[c.ActiveProfile]
	if !exists {
		// Fall back to the first profile by name
		name := c.ProfileNames()[0]
		c.ActiveProfile = name
		profile = c.Profiles[name]
	}

	c.currentProfile = &profile
	return nil
}
