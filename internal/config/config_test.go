package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "receipt-craft", cfg.App.Name)
	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, 12212, cfg.Server.Port)
	assert.Equal(t, "80mm", cfg.Render.PaperWidth)
	assert.Equal(t, 48, cfg.Render.PreviewWidth)
	assert.Equal(t, "designs.json", cfg.Library.Path)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("HTTP_PORT", "8080")
	t.Setenv("PAPER_WIDTH", "58mm")
	t.Setenv("PREVIEW_WIDTH", "32")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "production", cfg.App.Env)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "58mm", cfg.Render.PaperWidth)
	assert.Equal(t, 32, cfg.Render.PreviewWidth)
}

func TestLoad_InvalidPaperWidth(t *testing.T) {
	t.Setenv("PAPER_WIDTH", "a4")

	_, err := Load()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "PAPER_WIDTH")
}

func TestLoad_BadPortFallsBackToDefault(t *testing.T) {
	t.Setenv("HTTP_PORT", "not-a-number")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, 12212, cfg.Server.Port)
}

func TestAddress(t *testing.T) {
	s := ServerConfig{Host: "127.0.0.1", Port: 9000}
	assert.Equal(t, "127.0.0.1:9000", s.Address())
}
