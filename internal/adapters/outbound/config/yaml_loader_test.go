package config_test

import (
	"os"
	"path/filepath"
	"testing"

	appconfig "github.com/playbill/playbill/internal/adapters/outbound/config"
	"github.com/playbill/playbill/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".playbill.yaml"), []byte(content), 0644))
}

func TestYAMLLoader_MissingFileReturnsDefaults(t *testing.T) {
	dir := t.TempDir()
	loader := appconfig.New()

	cfg, err := loader.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultConfig(), cfg)
}

func TestYAMLLoader_ValidYAML(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
format: html
on_error: skip
parallel: true
plays: data/plays.yaml
`)
	loader := appconfig.New()

	cfg, err := loader.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "html", cfg.Format)
	assert.Equal(t, domain.ErrorPolicySkip, cfg.OnError)
	assert.True(t, cfg.Parallel)
	assert.Equal(t, "data/plays.yaml", cfg.Plays)
}

func TestYAMLLoader_UnsetFieldsKeepDefaults(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `format: json`)

	cfg, err := appconfig.New().Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Format)
	assert.Equal(t, domain.ErrorPolicyHalt, cfg.OnError)
	assert.Equal(t, "invoices.json", cfg.Invoices)
	assert.Equal(t, ".", cfg.ExportDir)
}

func TestYAMLLoader_EmptyFileReturnsDefaults(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "")

	cfg, err := appconfig.New().Load(dir)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultConfig(), cfg)
}

func TestYAMLLoader_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "format: [text\n")

	_, err := appconfig.New().Load(dir)
	assert.ErrorContains(t, err, "parsing .playbill.yaml")
}

func TestYAMLLoader_InvalidValues(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "on_error: retry\n")

	_, err := appconfig.New().Load(dir)
	assert.ErrorContains(t, err, "invalid .playbill.yaml")
	assert.ErrorContains(t, err, `unknown on_error "retry"`)
}
