package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// Config holds all application configuration
type Config struct {
	// Main window settings
	Window WindowConfig `json:"window"`

	// Make the window click-through while it does not have focus
	ClickThroughOnBlur bool `json:"click_through_on_blur"`

	// One of trace, debug, info, warn, error
	LogLevel string `json:"log_level"`
}

// WindowConfig holds main window settings
type WindowConfig struct {
	Title       string `json:"title"`
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	Frameless   bool   `json:"frameless"`
	AlwaysOnTop bool   `json:"always_on_top"`
	Translucent bool   `json:"translucent"`
	StartHidden bool   `json:"start_hidden"`
}

var validLogLevels = map[string]bool{
	"trace": true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// Service manages configuration persistence
type Service struct {
	config   *Config
	filePath string
}

// New creates a new config service backed by ~/.focus-overlay/config.json
func New() (*Service, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get home directory")
	}

	return NewAt(filepath.Join(homeDir, ".focus-overlay", "config.json"))
}

// NewAt creates a config service backed by the given file, writing defaults
// when the file does not exist yet.
func NewAt(configPath string) (*Service, error) {
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return nil, errors.Wrap(err, "failed to create config directory")
	}

	service := &Service{
		filePath: configPath,
		config:   getDefaultConfig(),
	}

	if _, err := os.Stat(configPath); err == nil {
		if err := service.Load(); err != nil {
			return nil, errors.Wrap(err, "failed to load config")
		}
	} else {
		if err := service.Save(); err != nil {
			return nil, errors.Wrap(err, "failed to create default config")
		}
	}

	if err := service.config.Validate(); err != nil {
		return nil, errors.Wrapf(err, "invalid config %s", configPath)
	}

	return service, nil
}

// getDefaultConfig returns the default configuration
func getDefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{
			Title:       "Focus Overlay",
			Width:       400,
			Height:      200,
			Frameless:   true,
			AlwaysOnTop: true,
			Translucent: true,
		},
		ClickThroughOnBlur: true,
		LogLevel:           "info",
	}
}

// Validate checks the configuration for values the window host cannot use
func (c *Config) Validate() error {
	if c.Window.Title == "" {
		return errors.New("window title must not be empty")
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return errors.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	}
	if !validLogLevels[c.LogLevel] {
		return errors.Errorf("unknown log level %q", c.LogLevel)
	}
	return nil
}

// Get returns the current configuration
func (s *Service) Get() *Config {
	return s.config
}

// Load loads configuration from file
func (s *Service) Load() error {
	data, err := os.ReadFile(s.filePath)
	if err != nil {
		return err
	}

	return json.Unmarshal(data, s.config)
}

// Save saves configuration to file
func (s *Service) Save() error {
	data, err := json.MarshalIndent(s.config, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(s.filePath, data, 0644)
}

// Path returns the full path to the configuration file
func (s *Service) Path() string {
	return s.filePath
}

// UpdateWindow updates window configuration
func (s *Service) UpdateWindow(window WindowConfig) error {
	next := *s.config
	next.Window = window
	if err := next.Validate(); err != nil {
		return err
	}

	s.config.Window = window
	return s.Save()
}
