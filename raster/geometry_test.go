// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package raster

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gogpu/scenery"
	"github.com/gogpu/scenery/node"
)

func TestDash(t *testing.T) {
	line := []scenery.Point{scenery.Pt(0, 0), scenery.Pt(40, 0)}

	runs := Dash(line, []float64{10, 5})
	if assert.Len(t, runs, 3) {
		assert.Equal(t, []scenery.Point{scenery.Pt(0, 0), scenery.Pt(10, 0)}, runs[0])
		assert.Equal(t, []scenery.Point{scenery.Pt(15, 0), scenery.Pt(25, 0)}, runs[1])
	}

	assert.Nil(t, Dash(line, nil))
	assert.Nil(t, Dash(line, []float64{0, 0}))
	assert.Nil(t, Dash(line, []float64{4, -1}))

	// Odd patterns repeat: 5 on, 5 off, 5 on ...
	assert.Len(t, Dash(line, []float64{5}), 4)
}

func TestDashAcrossCorner(t *testing.T) {
	pts := []scenery.Point{scenery.Pt(0, 0), scenery.Pt(4, 0), scenery.Pt(4, 4)}
	runs := Dash(pts, []float64{6, 100})
	if assert.Len(t, runs, 1) {
		assert.Equal(t, []scenery.Point{scenery.Pt(0, 0), scenery.Pt(4, 0), scenery.Pt(4, 2)}, runs[0])
	}
}

func TestStroke(t *testing.T) {
	pts := []scenery.Point{scenery.Pt(0, 0), scenery.Pt(10, 0), scenery.Pt(10, 10)}
	assert.Nil(t, Stroke(pts, false, StrokeStyle{Width: 0}, 1))

	butt := Stroke(pts, false, StrokeStyle{Width: 2, Join: node.JoinBevel}, 1)
	assert.Len(t, butt, 2+2, "two segments and a two-sided bevel join")

	miter := Stroke(pts, false, StrokeStyle{Width: 2}, 1)
	assert.Len(t, miter, 2+1, "right angle stays under the miter limit")

	round := Stroke(pts, false, StrokeStyle{Width: 2, Cap: node.CapRound, Join: node.JoinRound}, 1)
	assert.Len(t, round, 2+1+2)

	closed := Stroke(pts, true, StrokeStyle{Width: 2, Join: node.JoinMiter}, 1)
	assert.Len(t, closed, 3+3, "three segments and three joins")
}

func TestNormalizedWinding(t *testing.T) {
	cw := Polygon{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 0}}
	assert.Less(t, cw.signedArea(), 0.0)
	assert.GreaterOrEqual(t, cw.normalized().signedArea(), 0.0)

	ccw := cw.normalized()
	assert.Equal(t, ccw, ccw.normalized())
}

func TestRoundRectClampsRadius(t *testing.T) {
	sharp := RoundRect(0, 0, 10, 4, 0, 1)
	assert.Len(t, sharp, 4)
	rounded := RoundRect(0, 0, 10, 4, 50, 1)
	for _, p := range rounded {
		assert.True(t, p.X >= -1e-9 && p.X <= 10+1e-9 && p.Y >= -1e-9 && p.Y <= 4+1e-9, "%v outside", p)
	}
}
