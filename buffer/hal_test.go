// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

//go:build !nogpu

package buffer

import (
	"testing"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
	"github.com/gogpu/wgpu/hal/noop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/scenery"
	"github.com/gogpu/scenery/drawable"
	"github.com/gogpu/scenery/node"
)

func createNoopDevice(t *testing.T) (hal.Device, hal.Queue, func()) {
	t.Helper()
	instance, err := noop.API{}.CreateInstance(nil)
	require.NoError(t, err)
	adapters := instance.EnumerateAdapters(nil)
	require.NotEmpty(t, adapters)
	openDev, err := adapters[0].Adapter.Open(0, gputypes.DefaultLimits())
	if err != nil {
		instance.Destroy()
		t.Fatalf("Open failed: %v", err)
	}
	return openDev.Device, openDev.Queue, func() {
		openDev.Device.Destroy()
		instance.Destroy()
	}
}

func TestHALTargetOnNoopDevice(t *testing.T) {
	device, queue, cleanup := createNoopDevice(t)
	defer cleanup()

	target, err := NewHALTargetForDevice(device, queue, 64, 64)
	if err != nil {
		t.Skipf("HAL target unavailable: %v", err)
	}
	defer target.Release()

	pools := drawable.NewPools(drawable.DefaultConfig())
	blk := NewBlock(WithTarget(target))
	_, err = drawable.NewInstance(node.NewRectangle(4, 4, 16, 16), pools,
		drawable.Blocks{scenery.RendererBuffer: blk})
	require.NoError(t, err)

	res := blk.Draw()
	if blk.Stats().ContextLosses > 0 {
		t.Skip("noop fence reported a lost device")
	}
	assert.Equal(t, PaintedSomething, res)
	assert.Equal(t, Stats{Uploads: 1, Draws: 1}, blk.Stats())

	target.Release()
	require.NoError(t, target.Upload(make([]float32, FloatsPerVertex*3), make([]float32, FloatsPerTransform)),
		"a released target accepts uploads again")
}
