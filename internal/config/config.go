// internal/config/config.go
//
// This package handles configuration and the .gemflow directory
// structure. Every directory the journey runs from gets a .gemflow/
// folder holding its config, state and logs.

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	// GemflowDir is the name of the directory we create per project.
	GemflowDir = ".gemflow"

	defaultModelName      = "llama3.1"
	defaultModelBaseURL   = "http://localhost:11434"
	defaultModelTimeout   = 300
	defaultJourneyBackend = "file"
	defaultRedisAddr      = "localhost:6379"
	defaultRedisPrefix    = "gemflow"
)

const defaultConfigYAML = `# gemflow configuration
version: 1

model:
  # Any model served by a local Ollama instance.
  name: llama3.1
  base_url: http://localhost:11434
  timeout_seconds: 300

journey:
  # Where journey state lives: file (default) or redis.
  backend: file
  redis:
    addr: localhost:6379
    prefix: gemflow
`

// ModelConfig declares which model answers gem conversations.
type ModelConfig struct {
	Name           string `yaml:"name"`
	BaseURL        string `yaml:"base_url"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

// Timeout returns the request timeout as a duration.
func (m ModelConfig) Timeout() time.Duration {
	return time.Duration(m.TimeoutSeconds) * time.Second
}

// RedisConfig locates the Redis server used for journey state.
type RedisConfig struct {
	Addr   string `yaml:"addr"`
	Prefix string `yaml:"prefix"`
}

// JourneyConfig selects the journey state backend.
type JourneyConfig struct {
	Backend string      `yaml:"backend"`
	Redis   RedisConfig `yaml:"redis"`
}

// ProjectConfig models .gemflow/config.yaml.
type ProjectConfig struct {
	Version int           `yaml:"version"`
	Model   ModelConfig   `yaml:"model"`
	Journey JourneyConfig `yaml:"journey"`
}

// Config holds the runtime configuration.
type Config struct {
	// ProjectDir is the directory where the user ran `gemflow` from.
	ProjectDir string

	// GemflowProjectDir is ProjectDir/.gemflow.
	GemflowProjectDir string

	Project ProjectConfig
}

// InitGemflowDir creates the .gemflow directory structure in the given
// project directory. Called on startup.
//
// Structure created:
// .gemflow/
// ├── logs/     <- Session logs
// └── state/    <- Journey state and backups
func InitGemflowDir(projectDir string) error {
	gemflowDir := filepath.Join(projectDir, GemflowDir)

	dirs := []string{
		filepath.Join(gemflowDir, "logs"),
		filepath.Join(gemflowDir, "state"),
	}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	return ensureConfig(filepath.Join(gemflowDir, "config.yaml"))
}

// NewConfig creates a Config populated from .gemflow/config.yaml, with
// defaults for anything the file leaves out.
func NewConfig(projectDir string) (*Config, error) {
	cfg := &Config{
		ProjectDir:        projectDir,
		GemflowProjectDir: filepath.Join(projectDir, GemflowDir),
		Project:           defaultProjectConfig(),
	}
	if err := cfg.loadProjectConfig(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LogsDir returns the path to the logs directory.
func (c *Config) LogsDir() string {
	return filepath.Join(c.GemflowProjectDir, "logs")
}

// StateDir returns the path to the state directory.
func (c *Config) StateDir() string {
	return filepath.Join(c.GemflowProjectDir, "state")
}

// JourneyStatePath returns the on-disk location of the journey
// document for the file backend.
func (c *Config) JourneyStatePath() string {
	return filepath.Join(c.StateDir(), "journey.json")
}

// ConfigPath returns the on-disk location for the config file.
func (c *Config) ConfigPath() string {
	return filepath.Join(c.GemflowProjectDir, "config.yaml")
}

func (c *Config) loadProjectConfig() error {
	path := c.ConfigPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("config: read %s: %w", path, err)
	}

	var parsed ProjectConfig
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}

	parsed.applyDefaults()
	parsed.normalize()
	if err := parsed.validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	c.Project = parsed
	return nil
}

func defaultProjectConfig() ProjectConfig {
	return ProjectConfig{
		Version: 1,
		Model: ModelConfig{
			Name:           defaultModelName,
			BaseURL:        defaultModelBaseURL,
			TimeoutSeconds: defaultModelTimeout,
		},
		Journey: JourneyConfig{
			Backend: defaultJourneyBackend,
			Redis: RedisConfig{
				Addr:   defaultRedisAddr,
				Prefix: defaultRedisPrefix,
			},
		},
	}
}

func (pc *ProjectConfig) applyDefaults() {
	if pc.Version == 0 {
		pc.Version = 1
	}
	if pc.Model.Name == "" {
		pc.Model.Name = defaultModelName
	}
	if pc.Model.BaseURL == "" {
		pc.Model.BaseURL = defaultModelBaseURL
	}
	if pc.Model.TimeoutSeconds <= 0 {
		pc.Model.TimeoutSeconds = defaultModelTimeout
	}
	if pc.Journey.Backend == "" {
		pc.Journey.Backend = defaultJourneyBackend
	}
	if pc.Journey.Redis.Addr == "" {
		pc.Journey.Redis.Addr = defaultRedisAddr
	}
	if pc.Journey.Redis.Prefix == "" {
		pc.Journey.Redis.Prefix = defaultRedisPrefix
	}
}

func (pc *ProjectConfig) normalize() {
	pc.Model.Name = strings.TrimSpace(pc.Model.Name)
	pc.Model.BaseURL = strings.TrimRight(strings.TrimSpace(pc.Model.BaseURL), "/")
	pc.Journey.Backend = strings.ToLower(strings.TrimSpace(pc.Journey.Backend))
	pc.Journey.Redis.Addr = strings.TrimSpace(pc.Journey.Redis.Addr)
	pc.Journey.Redis.Prefix = strings.TrimSpace(pc.Journey.Redis.Prefix)
}

func (pc *ProjectConfig) validate() error {
	if pc.Version < 1 {
		return fmt.Errorf("config version must be >= 1")
	}
	if pc.Model.Name == "" {
		return fmt.Errorf("model.name is required")
	}
	switch pc.Journey.Backend {
	case "file":
	case "redis":
		if pc.Journey.Redis.Addr == "" {
			return fmt.Errorf("journey.redis.addr is required for the redis backend")
		}
	default:
		return fmt.Errorf("journey.backend must be 'file' or 'redis'")
	}
	return nil
}

func ensureConfig(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return os.WriteFile(path, []byte(defaultConfigYAML), 0644)
}
