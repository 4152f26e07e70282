package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Generation identifies which hardware generation a profile drives
type Generation string

const (
	GenerationMk1 Generation = "mk1" // Launchpad, Launchpad S, Launchpad Mini
	GenerationMk2 Generation = "mk2" // Launchpad MK2
)

// Valid reports whether g names a known generation
func (g Generation) Valid() bool {
	return g == GenerationMk1 || g == GenerationMk2
}

// Profile describes one device the tool can connect to
type Profile struct {
	ID         string     `json:"id"`         // Unique identifier
	Name       string     `json:"name"`       // User-friendly name
	Match      string     `json:"match"`      // Port name substring, case-sensitive
	Generation Generation `json:"generation"` // Which generation the ports speak
}

// NewProfile creates a profile with a generated ID
func NewProfile(name, match string, gen Generation) Profile {
	return Profile{
		ID:         uuid.New().String(),
		Name:       name,
		Match:      match,
		Generation: gen,
	}
}

// Config holds the tool configuration
type Config struct {
	DefaultProfileID string    `json:"default_profile_id"`
	Profiles         []Profile `json:"profiles"`
}

// Default returns a config carrying one profile per supported generation,
// with the MK2 selected
func Default() *Config {
	mk1 := NewProfile("Launchpad Mini", "Launchpad Mini", GenerationMk1)
	mk2 := NewProfile("Launchpad MK2", "Launchpad MK2", GenerationMk2)
	return &Config{
		DefaultProfileID: mk2.ID,
		Profiles:         []Profile{mk1, mk2},
	}
}

// configDir returns the platform-appropriate config directory
func configDir() (string, error) {
	configHome, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configHome, "lpdemo"), nil
}

// ConfigPath returns the full path to the config file
func ConfigPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads the config from the default path, returning defaults if the
// file does not exist yet
func Load() (*Config, error) {
	configPath, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFrom(configPath)
}

// LoadFrom reads the config from an explicit path, returning defaults if
// the file does not exist yet
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	// Ensure there is always at least one profile to connect with
	if len(cfg.Profiles) == 0 {
		def := Default()
		cfg.Profiles = def.Profiles
		cfg.DefaultProfileID = def.DefaultProfileID
	}

	return &cfg, nil
}

// Save writes the config to the default path
func (c *Config) Save() error {
	configPath, err := ConfigPath()
	if err != nil {
		return err
	}
	return c.SaveTo(configPath)
}

// SaveTo writes the config to an explicit path, creating the directory if
// needed
func (c *Config) SaveTo(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// GetProfile returns a profile by ID, or nil if not found
func (c *Config) GetProfile(id string) *Profile {
	for i := range c.Profiles {
		if c.Profiles[i].ID == id {
			return &c.Profiles[i]
		}
	}
	return nil
}

// FindProfile returns a profile by name, or nil if not found
func (c *Config) FindProfile(name string) *Profile {
	for i := range c.Profiles {
		if c.Profiles[i].Name == name {
			return &c.Profiles[i]
		}
	}
	return nil
}

// DefaultProfile returns the configured default profile, falling back to
// the first one
func (c *Config) DefaultProfile() *Profile {
	if p := c.GetProfile(c.DefaultProfileID); p != nil {
		return p
	}
	if len(c.Profiles) > 0 {
		return &c.Profiles[0]
	}
	return nil
}

// AddProfile adds a profile to the config
func (c *Config) AddProfile(p Profile) {
	c.Profiles = append(c.Profiles, p)
}

// RemoveProfile removes a profile by ID
func (c *Config) RemoveProfile(id string) {
	for i, p := range c.Profiles {
		if p.ID == id {
			c.Profiles = append(c.Profiles[:i], c.Profiles[i+1:]...)
			return
		}
	}
}

// UpdateProfile updates an existing profile by ID
func (c *Config) UpdateProfile(p Profile) {
	for i, existing := range c.Profiles {
		if existing.ID == p.ID {
			c.Profiles[i] = p
			return
		}
	}
}
