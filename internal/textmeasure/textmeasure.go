// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package textmeasure measures single-line text with HarfBuzz shaping over
// the Go Regular font and detects the base direction of a string.
package textmeasure

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/unicode/bidi"

	"github.com/gogpu/scenery/internal/cache"
)

// Metrics is the measured extent of a line, in pixels.
type Metrics struct {
	Width   float64
	Ascent  float64
	Descent float64
}

// Height returns Ascent + Descent.
func (m Metrics) Height() float64 { return m.Ascent + m.Descent }

type key struct {
	text string
	size float64
}

// Measurer shapes text and caches the results. It is safe for concurrent
// use.
type Measurer struct {
	mu     sync.Mutex
	face   *font.Face
	shaper shaping.HarfbuzzShaper
	cache  *cache.Cache[key, Metrics]
}

// New parses the Go Regular font and returns a measurer caching up to
// capacity results.
func New(capacity int) (*Measurer, error) {
	face, err := font.ParseTTF(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("textmeasure: parse font: %w", err)
	}
	return &Measurer{face: face, cache: cache.New[key, Metrics](capacity)}, nil
}

var (
	defaultOnce     sync.Once
	defaultMeasurer *Measurer
)

// Default returns a shared measurer. It panics if the embedded font cannot
// be parsed, which only happens on a corrupt build.
func Default() *Measurer {
	defaultOnce.Do(func() {
		m, err := New(1024)
		if err != nil {
			panic(err)
		}
		defaultMeasurer = m
	})
	return defaultMeasurer
}

// Measure returns the metrics of text drawn at size pixels.
func (m *Measurer) Measure(text string, size float64) Metrics {
	return m.cache.GetOrCreate(key{text, size}, func() Metrics {
		return m.shape(text, size)
	})
}

// Width returns the advance width of text drawn at size pixels.
func (m *Measurer) Width(text string, size float64) float64 {
	return m.Measure(text, size).Width
}

func (m *Measurer) shape(text string, size float64) Metrics {
	runes := []rune(text)
	m.mu.Lock()
	defer m.mu.Unlock()
	out := m.shaper.Shape(shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      m.face,
		Size:      fixed.Int26_6(size * 64),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	})
	return Metrics{
		Width:   fixedToFloat(out.Advance),
		Ascent:  fixedToFloat(out.LineBounds.Ascent),
		Descent: -fixedToFloat(out.LineBounds.Descent),
	}
}

func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r != ' ' && r != '\t' {
			return language.LookupScript(r)
		}
	}
	return language.Latin
}

func fixedToFloat(v fixed.Int26_6) float64 { return float64(v) / 64 }

// Direction returns "rtl" when the first strong character of text is
// right-to-left and "ltr" otherwise.
func Direction(text string) string {
	for i := 0; i < len(text); {
		props, size := bidi.LookupString(text[i:])
		if size == 0 {
			break
		}
		switch props.Class() {
		case bidi.R, bidi.AL:
			return "rtl"
		case bidi.L:
			return "ltr"
		}
		i += size
	}
	return "ltr"
}
