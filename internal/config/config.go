package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// Config represents the application configuration.
type Config struct {
	Environments []Environment `mapstructure:"environments" yaml:"environments"`
	Preferences  Preferences   `mapstructure:"preferences" yaml:"preferences"`
}

// Environment represents a registered database environment.
// Passwords are never stored here; they live in the OS keyring keyed by ID.
type Environment struct {
	ID       string   `mapstructure:"id" yaml:"id"`
	Name     string   `mapstructure:"name" yaml:"name"`
	Driver   string   `mapstructure:"driver" yaml:"driver"`
	Host     string   `mapstructure:"host" yaml:"host"`
	Port     int      `mapstructure:"port" yaml:"port"`
	Database string   `mapstructure:"database" yaml:"database"`
	Username string   `mapstructure:"username" yaml:"username"`
	SSLMode  string   `mapstructure:"sslmode" yaml:"sslmode"`
	Tags     []string `mapstructure:"tags" yaml:"tags,omitempty"`
}

// Preferences holds user preferences.
type Preferences struct {
	Theme              string `mapstructure:"theme" yaml:"theme"`
	DefaultEnvironment string `mapstructure:"default_environment" yaml:"default_environment"`
	SortMode           string `mapstructure:"sort_mode" yaml:"sort_mode"`
}

// DSN builds a PostgreSQL connection string from the environment,
// optionally embedding a password resolved from the keyring.
func (e Environment) DSN(password string) string {
	dsn := "postgresql://"
	if e.Username != "" {
		dsn += url.User(e.Username).String()
		if password != "" {
			dsn += ":" + url.QueryEscape(password)
		}
		dsn += "@"
	}
	dsn += e.Host
	if e.Port > 0 {
		dsn += ":" + strconv.Itoa(e.Port)
	}
	dsn += "/" + e.Database
	if e.SSLMode != "" {
		dsn += "?sslmode=" + e.SSLMode
	}
	return dsn
}

// DisplayString returns a human-readable summary of the environment.
func (e Environment) DisplayString() string {
	s := e.Host
	if e.Port > 0 {
		s += ":" + strconv.Itoa(e.Port)
	}
	s += "/" + e.Database
	if e.Username != "" {
		s = e.Username + "@" + s
	}
	return s
}

// ParseDSN parses a PostgreSQL connection string into an Environment.
// The password, if present, is returned separately so the caller can hand
// it to the secrets store instead of the config file.
func ParseDSN(dsn string) (Environment, string, error) {
	u, err := url.Parse(dsn)
	if err != nil {
		return Environment{}, "", fmt.Errorf("invalid DSN: %w", err)
	}
	if u.Scheme != "postgres" && u.Scheme != "postgresql" {
		return Environment{}, "", fmt.Errorf("unsupported scheme %q", u.Scheme)
	}

	env := Environment{
		Driver:   "postgres",
		Host:     u.Hostname(),
		Database: strings.TrimPrefix(u.Path, "/"),
		SSLMode:  u.Query().Get("sslmode"),
	}

	var password string
	if u.User != nil {
		env.Username = u.User.Username()
		if p, ok := u.User.Password(); ok {
			password = p
		}
	}

	if portStr := u.Port(); portStr != "" {
		env.Port, _ = strconv.Atoi(portStr)
	}
	if env.Port == 0 {
		env.Port = 5432
	}

	// Auto-generate a name; the user can rename later.
	env.Name = fmt.Sprintf("%s-%d-%s", env.Host, env.Port, env.Database)

	return env, password, nil
}

// HasEnvironment checks if an environment with the given name already exists.
func (cfg *Config) HasEnvironment(name string) bool {
	for _, e := range cfg.Environments {
		if e.Name == name {
			return true
		}
	}
	return false
}

// FindEnvironment returns the environment with the given ID, or nil.
func (cfg *Config) FindEnvironment(id string) *Environment {
	for i := range cfg.Environments {
		if cfg.Environments[i].ID == id {
			return &cfg.Environments[i]
		}
	}
	return nil
}

// AddEnvironment appends an environment if its name isn't taken.
func (cfg *Config) AddEnvironment(env Environment) {
	if !cfg.HasEnvironment(env.Name) {
		cfg.Environments = append(cfg.Environments, env)
	}
}

// RemoveEnvironment drops the environment with the given ID.
// It reports whether anything was removed.
func (cfg *Config) RemoveEnvironment(id string) bool {
	for i := range cfg.Environments {
		if cfg.Environments[i].ID == id {
			cfg.Environments = append(cfg.Environments[:i], cfg.Environments[i+1:]...)
			if cfg.Preferences.DefaultEnvironment == id {
				cfg.Preferences.DefaultEnvironment = ""
			}
			return true
		}
	}
	return false
}
