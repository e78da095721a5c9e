// Package config loads xmlsp call settings from a YAML file, a .env file and
// the process environment.
package config

import (
	"errors"
	"os"

	"github.com/ignaciocaff/xmlsp/internal/core"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

const (
	DefaultFileName = "xmlsp.yaml"
	DefaultEnvFile  = ".env"
	DefaultDriver   = "odbc"
)

// Environment variables that override file values.
const (
	EnvDriver   = "XMLSP_DRIVER"
	EnvDatabase = "XMLSP_DATABASE"
	EnvUsername = "XMLSP_USERNAME"
	EnvPassword = "XMLSP_PASSWORD"
	EnvXSLib    = "XMLSP_XSLIB"
)

type FileConfig struct {
	Driver   string `yaml:"driver"`
	Database string `yaml:"database"`
	Username string `yaml:"username,omitempty"`
	Password string `yaml:"password,omitempty"`
	IPC      string `yaml:"ipc"`
	CTL      string `yaml:"ctl"`
	XSLib    string `yaml:"xslib"`
	Verbose  bool   `yaml:"verbose,omitempty"`
}

// Load reads the YAML file at path. An empty path yields an empty config.
func Load(path string) (*FileConfig, error) {
	var cfg FileConfig
	if path == "" {
		return &cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadEnvFile loads KEY=VALUE pairs from path into the process environment
// without overriding variables that are already set. A missing file is not
// an error.
func LoadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	return godotenv.Load(path)
}

// ApplyEnv overrides file values with non-empty environment variables.
func (c *FileConfig) ApplyEnv() {
	override := func(dst *string, key string) {
		if v := os.Getenv(key); v != "" {
			*dst = v
		}
	}
	override(&c.Driver, EnvDriver)
	override(&c.Database, EnvDatabase)
	override(&c.Username, EnvUsername)
	override(&c.Password, EnvPassword)
	override(&c.XSLib, EnvXSLib)
}

// DriverName returns the database/sql driver to use.
func (c *FileConfig) DriverName() string {
	if c.Driver == "" {
		return DefaultDriver
	}
	return c.Driver
}

// Invocation converts the file settings into a core.Config with defaults
// applied.
func (c *FileConfig) Invocation() core.Config {
	return core.Config{
		Database: c.Database,
		Username: c.Username,
		Password: c.Password,
		IPC:      c.IPC,
		CTL:      c.CTL,
		XSLib:    c.XSLib,
		Verbose:  c.Verbose,
	}.WithDefaults()
}
