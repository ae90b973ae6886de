package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Server  ServerConfig `yaml:"server"`
	MongoDB MongoConfig  `yaml:"mongodb"`
	Debug   DebugConfig  `yaml:"debug"`
	Log     LogConfig    `yaml:"log"`
}

// ServerConfig represents the HTTP listener configuration
type ServerConfig struct {
	Host       string `yaml:"host"`
	Port       string `yaml:"port"`
	StaticDir  string `yaml:"static_dir"`
	CORSOrigin string `yaml:"cors_origin,omitempty"`
}

// MongoConfig represents the shared MongoDB connection configuration.
// Enabled and Port are kept as strings: the settings contract is
// string-valued, and only the literal "true" turns the subsystem on.
type MongoConfig struct {
	Enabled  string `yaml:"enabled"`
	URL      string `yaml:"url"`
	Port     string `yaml:"port"`
	Database string `yaml:"database"`
}

// DebugConfig toggles development-only behavior
type DebugConfig struct {
	Toolbar string `yaml:"toolbar,omitempty"`
}

// LogConfig represents logging configuration
type LogConfig struct {
	Level string `yaml:"level,omitempty"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:       "0.0.0.0",
			Port:       "6543",
			StaticDir:  "static",
			CORSOrigin: "*",
		},
		MongoDB: MongoConfig{
			Enabled:  "false",
			URL:      "mongodb://localhost",
			Port:     "27017",
			Database: "moe",
		},
		Log: LogConfig{
			Level: "INFO",
		},
	}
}

// Load loads configuration from file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Save saves configuration to file
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks that every setting the process needs is present and
// well formed. Called once at startup; any error here is fatal.
func (c *Config) Validate() error {
	if c.Server.Port != "" {
		if _, err := strconv.Atoi(c.Server.Port); err != nil {
			return fmt.Errorf("invalid server port %q: %w", c.Server.Port, err)
		}
	}

	if !c.MongoDB.UseMongo() {
		return nil
	}

	if c.MongoDB.URL == "" {
		return fmt.Errorf("mongodb.url is required when mongodb is enabled")
	}
	if c.MongoDB.Database == "" {
		return fmt.Errorf("mongodb.database is required when mongodb is enabled")
	}
	if _, err := c.MongoDB.URI(); err != nil {
		return err
	}
	return nil
}

// UseMongo reports whether the database binding subsystem is enabled.
// Only the exact string "true" enables it.
func (m MongoConfig) UseMongo() bool {
	return m.Enabled == "true"
}

// PortNumber parses the numeric port setting
func (m MongoConfig) PortNumber() (int, error) {
	port, err := strconv.Atoi(m.Port)
	if err != nil {
		return 0, fmt.Errorf("invalid mongodb port %q: %w", m.Port, err)
	}
	return port, nil
}

// URI joins the endpoint URL and the port setting into a connection URI
// understood by the driver, e.g. "mongodb://h" + "27017" -> "mongodb://h:27017".
func (m MongoConfig) URI() (string, error) {
	port, err := m.PortNumber()
	if err != nil {
		return "", err
	}

	raw := m.URL
	if !strings.Contains(raw, "://") {
		raw = "mongodb://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("invalid mongodb url %q: %w", m.URL, err)
	}
	if u.Host == "" {
		return "", fmt.Errorf("invalid mongodb url %q: missing host", m.URL)
	}
	if u.Port() == "" {
		u.Host = fmt.Sprintf("%s:%d", u.Hostname(), port)
	}
	return u.String(), nil
}

// ToolbarEnabled reports whether the debug toolbar is active. The
// connection factory uses this to pick the displayable variant.
func (d DebugConfig) ToolbarEnabled() bool {
	return d.Toolbar == "true"
}

// Address returns the host:port the HTTP server binds to
func (s ServerConfig) Address() string {
	return fmt.Sprintf("%s:%s", s.Host, s.Port)
}

// GetConfigPath returns the default config file path
func GetConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".moe/config.yaml"
	}
	return filepath.Join(home, ".moe", "config.yaml")
}

// Exists checks if config file exists
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
