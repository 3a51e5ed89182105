// Package config loads server configuration from the environment
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App     AppConfig
	Server  ServerConfig
	Render  RenderConfig
	Library LibraryConfig
}

type AppConfig struct {
	Name string
	Env  string
}

type ServerConfig struct {
	Host string
	Port int
}

type RenderConfig struct {
	PaperWidth   string // 58mm, 80mm, 112mm
	PreviewWidth int    // characters per preview line
}

type LibraryConfig struct {
	Path string // design library JSON file
}

// Load reads configuration from the environment, with an optional .env file
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		App: AppConfig{
			Name: getEnv("APP_NAME", "receipt-craft"),
			Env:  getEnv("APP_ENV", "development"),
		},
		Server: ServerConfig{
			Host: getEnv("HTTP_HOST", "0.0.0.0"),
			Port: getEnvAsInt("HTTP_PORT", 12212),
		},
		Render: RenderConfig{
			PaperWidth:   getEnv("PAPER_WIDTH", "80mm"),
			PreviewWidth: getEnvAsInt("PREVIEW_WIDTH", 48),
		},
		Library: LibraryConfig{
			Path: getEnv("DESIGN_LIBRARY", "designs.json"),
		},
	}

	return cfg, cfg.validate()
}

func (s ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

func (c *Config) validate() error {
	if c.Server.Port <= 0 {
		return fmt.Errorf("HTTP_PORT is invalid")
	}

	switch c.Render.PaperWidth {
	case "58mm", "80mm", "112mm":
	default:
		return fmt.Errorf("PAPER_WIDTH must be 58mm, 80mm, or 112mm")
	}

	if c.Render.PreviewWidth <= 0 {
		return fmt.Errorf("PREVIEW_WIDTH is invalid")
	}

	if c.Library.Path == "" {
		return fmt.Errorf("DESIGN_LIBRARY is invalid")
	}

	return nil
}

func getEnv(key, defaultVal string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) int {
	if v, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultVal
}
