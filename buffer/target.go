// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package buffer

import (
	"errors"
	"slices"
)

const (
	// FloatsPerVertex is the vertex stride: x, y, r, g, b, a, slot.
	FloatsPerVertex = 7

	// FloatsPerTransform is the slot stride: a, b, c, 0, d, e, f, 0.
	FloatsPerTransform = 8
)

var (
	// ErrTargetReleased is returned by a target used after Release.
	ErrTargetReleased = errors.New("buffer: target released")

	// ErrContextLost is returned by a target whose device went away.
	// The block treats it as a context loss.
	ErrContextLost = errors.New("buffer: GPU context lost")
)

// Target receives a block's arrays and issues draws.
type Target interface {
	// Upload replaces the target's copy of the vertex and transform arrays.
	Upload(vertices, transforms []float32) error

	// Draw draws the given vertex ranges, in order, from the last upload.
	Draw(ranges []Range) error

	// Release frees the target's resources. A released target may be
	// uploaded to again.
	Release()
}

// RecordingTarget keeps uploads in memory and records draws.
type RecordingTarget struct {
	Vertices   []float32
	Transforms []float32
	Uploads    int
	Draws      [][]Range
	Releases   int

	// Fail, when set, is returned by the next Upload or Draw and cleared.
	Fail error
}

// Upload implements Target.
func (t *RecordingTarget) Upload(vertices, transforms []float32) error {
	if err := t.takeFail(); err != nil {
		return err
	}
	t.Vertices = slices.Clone(vertices)
	t.Transforms = slices.Clone(transforms)
	t.Uploads++
	return nil
}

// Draw implements Target.
func (t *RecordingTarget) Draw(ranges []Range) error {
	if err := t.takeFail(); err != nil {
		return err
	}
	t.Draws = append(t.Draws, slices.Clone(ranges))
	return nil
}

// Release implements Target.
func (t *RecordingTarget) Release() {
	t.Vertices = nil
	t.Transforms = nil
	t.Releases++
}

func (t *RecordingTarget) takeFail() error {
	err := t.Fail
	t.Fail = nil
	return err
}

// LastDraw returns the ranges of the most recent draw.
func (t *RecordingTarget) LastDraw() []Range {
	if len(t.Draws) == 0 {
		return nil
	}
	return t.Draws[len(t.Draws)-1]
}
