// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package scenery

import "testing"

func TestRendererString(t *testing.T) {
	tests := []struct {
		r    Renderer
		want string
	}{
		{RendererNone, "none"},
		{RendererRaster, "raster"},
		{RendererBuffer | RendererMarkup, "markup|buffer"},
		{RendererAll, "markup|raster|element|buffer"},
	}
	for _, tt := range tests {
		if got := tt.r.String(); got != tt.want {
			t.Errorf("Renderer(%d).String() = %q, want %q", tt.r, got, tt.want)
		}
	}
}

func TestRendererFirst(t *testing.T) {
	if got := RendererAll.First(); got != RendererMarkup {
		t.Errorf("All.First() = %v, want markup", got)
	}
	if got := (RendererBuffer | RendererElement).First(); got != RendererElement {
		t.Errorf("First() = %v, want element", got)
	}
	if got := RendererNone.First(); got != RendererNone {
		t.Errorf("None.First() = %v", got)
	}
}

func TestRendererPredicates(t *testing.T) {
	if !RendererRaster.Single() || RendererAll.Single() || RendererNone.Single() {
		t.Error("Single() mismatch")
	}
	if !RendererAll.Has(RendererBuffer) || RendererRaster.Has(RendererBuffer) || RendererAll.Has(RendererNone) {
		t.Error("Has() mismatch")
	}
}

func TestParseRenderer(t *testing.T) {
	tests := []struct {
		in      string
		want    Renderer
		wantErr bool
	}{
		{"raster", RendererRaster, false},
		{"markup|buffer", RendererMarkup | RendererBuffer, false},
		{" Element , raster ", RendererElement | RendererRaster, false},
		{"all", RendererAll, false},
		{"none", RendererNone, false},
		{"webgl", RendererNone, true},
	}
	for _, tt := range tests {
		got, err := ParseRenderer(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseRenderer(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseRenderer(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
