/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this package for license terms
 */
package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err, "explicit missing config file should fail")

	cfg, err = LoadConfig("")
	assert.NoError(t, err)
	assert.Equal(t, 3, cfg.PageSize)
	assert.Equal(t, 0, cfg.RetryLimit)
	assert.False(t, cfg.ClearScreen)
}

func TestLoadConfigFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "simple-cli.toml")
	content := "page_size = 5\nretry_limit = 2\nclear_screen = true\n"
	err := os.WriteFile(path, []byte(content), 0600)
	assert.NoError(t, err)

	cfg, err := LoadConfig(path)
	assert.NoError(t, err)
	assert.Equal(t, 5, cfg.PageSize)
	assert.Equal(t, 2, cfg.RetryLimit)
	assert.True(t, cfg.ClearScreen)
}

func TestLoadConfigEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "simple-cli.toml")
	err := os.WriteFile(path, []byte("page_size = 5\n"), 0600)
	assert.NoError(t, err)

	t.Setenv("SIMPLECLI_PAGE_SIZE", "7")

	cfg, err := LoadConfig(path)
	assert.NoError(t, err)
	assert.Equal(t, 7, cfg.PageSize)
}

func TestLoadConfigRejectsBadPageSize(t *testing.T) {
	t.Setenv("SIMPLECLI_PAGE_SIZE", "0")

	_, err := LoadConfig("")
	assert.Error(t, err)
}
