// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package drawable

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/scenery"
	"github.com/gogpu/scenery/node"
)

const sampleConfig = `
[markup]
max_size = 8
retain_resources = false

[buffer]
retain_resources = true

[overrides."markup/text"]
max_size = 2
retain_resources = true
`

func TestDecodeConfig(t *testing.T) {
	cfg, err := DecodeConfig(strings.NewReader(sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, PoolConfig{MaxSize: 8}, cfg.For(node.KindCircle, scenery.RendererMarkup))
	assert.Equal(t, PoolConfig{MaxSize: 2, RetainResources: true}, cfg.For(node.KindText, scenery.RendererMarkup))
	assert.Equal(t, DefaultConfig().Element, cfg.For(node.KindText, scenery.RendererElement), "defaults kept")
	assert.False(t, cfg.For(node.KindRectangle, scenery.RendererBuffer).RetainResources,
		"buffer regions are never retained")
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"negative size", "[raster]\nmax_size = -1\n"},
		{"bad key", "[overrides.circle]\nmax_size = 1\n"},
		{"unknown renderer", "[overrides.\"vector/circle\"]\nmax_size = 1\n"},
		{"unknown kind", "[overrides.\"markup/star\"]\nmax_size = 1\n"},
		{"negative override", "[overrides.\"markup/circle\"]\nmax_size = -2\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeConfig(strings.NewReader(tt.doc))
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}

	_, err := DecodeConfig(strings.NewReader("[markup\n"))
	assert.Error(t, err)
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pools.toml")
	require.NoError(t, os.WriteFile(path, []byte(sampleConfig), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.Markup.MaxSize)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
