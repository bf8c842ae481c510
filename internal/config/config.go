package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"

	"vkarpe.dev/internal/content"
	"vkarpe.dev/internal/models"
)

// Config holds all application configuration
type Config struct {
	ServerAddr      string        `env:"SERVER_ADDR" envDefault:":8080"`
	DataPath        string        `env:"DATA_PATH" envDefault:"data"`
	ContentFile     string        `env:"CONTENT_FILE"`
	StaticDir       string        `env:"STATIC_DIR" envDefault:"static"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat       string        `env:"LOG_FORMAT" envDefault:"console"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"5s"`

	Content models.Content `env:"-"`
}

// Load reads the environment and resolves the page content
func Load() (*Config, error) {
	cfg, err := LoadEnv()
	if err != nil {
		return nil, err
	}
	if err := cfg.LoadContent(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadEnv reads the environment only. Content stays empty until LoadContent,
// so callers can override ContentFile first.
func LoadEnv() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// LoadContent resolves Content from ContentFile, or the compiled-in content
// when no file is configured
func (c *Config) LoadContent() error {
	if c.ContentFile == "" {
		c.Content = content.Default()
		return nil
	}

	loaded, err := loadContentFile(c.ContentPath())
	if err != nil {
		return err
	}
	c.Content = loaded
	return nil
}

// ContentPath returns the content file location. Relative names always
// resolve under DataPath.
func (c *Config) ContentPath() string {
	if c.ContentFile == "" || filepath.IsAbs(c.ContentFile) {
		return c.ContentFile
	}
	return filepath.Join(c.DataPath, c.ContentFile)
}

// loadContentFile reads and parses a YAML content file
func loadContentFile(path string) (models.Content, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return models.Content{}, fmt.Errorf("failed to read %s: %w", path, err)
	}

	c, err := content.Parse(data)
	if err != nil {
		return models.Content{}, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return c, nil
}
