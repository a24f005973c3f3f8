// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package drawable

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/gogpu/scenery"
	"github.com/gogpu/scenery/node"
)

// DefaultPoolSize is the free-list bound used by DefaultConfig.
const DefaultPoolSize = 64

// PoolConfig is the retention policy of one drawable type.
type PoolConfig struct {
	// MaxSize bounds the free list; 0 means unbounded.
	MaxSize int `toml:"max_size"`

	// RetainResources keeps the backend resource (markup or platform
	// element) of a released drawable for the next occupant. Buffer regions
	// are never retained.
	RetainResources bool `toml:"retain_resources"`
}

// Config is the retention policy for all pools. Overrides are keyed
// "<renderer>/<kind>", e.g. "markup/text".
type Config struct {
	Raster    PoolConfig            `toml:"raster"`
	Markup    PoolConfig            `toml:"markup"`
	Element   PoolConfig            `toml:"element"`
	Buffer    PoolConfig            `toml:"buffer"`
	Overrides map[string]PoolConfig `toml:"overrides"`
}

// DefaultConfig retains markup and platform elements and bounds every
// free list by DefaultPoolSize.
func DefaultConfig() Config {
	return Config{
		Raster:  PoolConfig{MaxSize: DefaultPoolSize},
		Markup:  PoolConfig{MaxSize: DefaultPoolSize, RetainResources: true},
		Element: PoolConfig{MaxSize: DefaultPoolSize, RetainResources: true},
		Buffer:  PoolConfig{MaxSize: DefaultPoolSize},
	}
}

// For returns the policy for drawables of kind k displayed by r.
func (c Config) For(k node.Kind, r scenery.Renderer) PoolConfig {
	pc, ok := c.Overrides[r.String()+"/"+k.String()]
	if !ok {
		switch r {
		case scenery.RendererRaster:
			pc = c.Raster
		case scenery.RendererMarkup:
			pc = c.Markup
		case scenery.RendererElement:
			pc = c.Element
		case scenery.RendererBuffer:
			pc = c.Buffer
		}
	}
	if r == scenery.RendererBuffer {
		pc.RetainResources = false
	}
	return pc
}

// Validate checks sizes and override keys.
func (c Config) Validate() error {
	for name, pc := range map[string]PoolConfig{
		"raster": c.Raster, "markup": c.Markup, "element": c.Element, "buffer": c.Buffer,
	} {
		if pc.MaxSize < 0 {
			return fmt.Errorf("%w: %s max_size %d", ErrInvalidConfig, name, pc.MaxSize)
		}
	}
	for key, pc := range c.Overrides {
		if pc.MaxSize < 0 {
			return fmt.Errorf("%w: %s max_size %d", ErrInvalidConfig, key, pc.MaxSize)
		}
		if err := validateOverrideKey(key); err != nil {
			return err
		}
	}
	return nil
}

func validateOverrideKey(key string) error {
	rname, kname, ok := strings.Cut(key, "/")
	if !ok {
		return fmt.Errorf("%w: override %q is not <renderer>/<kind>", ErrInvalidConfig, key)
	}
	r, err := scenery.ParseRenderer(rname)
	if err != nil || !r.Single() {
		return fmt.Errorf("%w: override %q names no single renderer", ErrInvalidConfig, key)
	}
	for _, k := range node.Kinds {
		if k.String() == kname {
			return nil
		}
	}
	return fmt.Errorf("%w: override %q names unknown kind %q", ErrInvalidConfig, key, kname)
}

// DecodeConfig reads a TOML policy on top of DefaultConfig.
func DecodeConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	md, err := toml.NewDecoder(r).Decode(&cfg)
	if err != nil {
		return Config{}, fmt.Errorf("drawable: decode config: %w", err)
	}
	if undec := md.Undecoded(); len(undec) > 0 {
		scenery.Logger().Warn("drawable: unknown config keys", "keys", fmt.Sprint(undec))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfig reads a TOML policy file.
func LoadConfig(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("drawable: load config: %w", err)
	}
	defer f.Close()
	return DecodeConfig(f)
}
