// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

//go:build !nogpu

package buffer

import (
	_ "embed"
	"encoding/binary"
	"fmt"
	"math"
	"time"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/naga"
	"github.com/gogpu/wgpu/hal"
)

//go:embed shaders/buffer.wgsl
var shaderSource string

const (
	vertexStride    = FloatsPerVertex * 4
	transformStride = FloatsPerTransform * 4
	viewportSize    = 16
	submitTimeout   = 5 * time.Second
)

// HALTarget draws into an offscreen RGBA texture on a wgpu HAL device.
type HALTarget struct {
	device hal.Device
	queue  hal.Queue
	width  uint32
	height uint32

	shader     hal.ShaderModule
	bindLayout hal.BindGroupLayout
	pipeLayout hal.PipelineLayout
	pipeline   hal.RenderPipeline
	texture    hal.Texture
	view       hal.TextureView

	vertBuf     hal.Buffer
	vertCap     uint64
	xformBuf    hal.Buffer
	xformCap    uint64
	viewportBuf hal.Buffer
	bindGroup   hal.BindGroup

	vertexCount int
	staging     []byte
}

// NewHALTarget creates a target on the device shared by provider. The
// provider must also expose its HAL device and queue through
// HalDevice() any and HalQueue() any.
func NewHALTarget(provider gpucontext.DeviceProvider, width, height int) (*HALTarget, error) {
	type halProvider interface {
		HalDevice() any
		HalQueue() any
	}
	hp, ok := provider.(halProvider)
	if !ok {
		return nil, fmt.Errorf("buffer: provider does not expose HAL types")
	}
	device, ok := hp.HalDevice().(hal.Device)
	if !ok || device == nil {
		return nil, fmt.Errorf("buffer: provider HalDevice is not hal.Device")
	}
	queue, ok := hp.HalQueue().(hal.Queue)
	if !ok || queue == nil {
		return nil, fmt.Errorf("buffer: provider HalQueue is not hal.Queue")
	}
	return NewHALTargetForDevice(device, queue, width, height)
}

// NewHALTargetForDevice creates a target drawing with device and queue.
func NewHALTargetForDevice(device hal.Device, queue hal.Queue, width, height int) (*HALTarget, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("buffer: invalid target size %dx%d", width, height)
	}
	t := &HALTarget{
		device: device,
		queue:  queue,
		width:  uint32(width),  //nolint:gosec // checked positive
		height: uint32(height), //nolint:gosec // checked positive
	}
	if err := t.createPipeline(); err != nil {
		t.Release()
		return nil, err
	}
	return t, nil
}

// compileShader compiles WGSL to SPIR-V words.
func compileShader(src string) ([]uint32, error) {
	spirv, err := naga.Compile(src)
	if err != nil {
		return nil, fmt.Errorf("buffer: compile shader: %w", err)
	}
	words := make([]uint32, len(spirv)/4)
	for i := range words {
		words[i] = binary.LittleEndian.Uint32(spirv[i*4:])
	}
	return words, nil
}

func (t *HALTarget) createPipeline() error {
	code, err := compileShader(shaderSource)
	if err != nil {
		return err
	}
	t.shader, err = t.device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label:  "buffer_shader",
		Source: hal.ShaderSource{SPIRV: code},
	})
	if err != nil {
		return fmt.Errorf("buffer: create shader module: %w", err)
	}

	t.bindLayout, err = t.device.CreateBindGroupLayout(&hal.BindGroupLayoutDescriptor{
		Label: "buffer_bind_layout",
		Entries: []gputypes.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: gputypes.ShaderStageVertex,
				Buffer:     &gputypes.BufferBindingLayout{Type: gputypes.BufferBindingTypeUniform},
			},
			{
				Binding:    1,
				Visibility: gputypes.ShaderStageVertex,
				Buffer:     &gputypes.BufferBindingLayout{Type: gputypes.BufferBindingTypeReadOnlyStorage},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("buffer: create bind group layout: %w", err)
	}

	t.pipeLayout, err = t.device.CreatePipelineLayout(&hal.PipelineLayoutDescriptor{
		Label:            "buffer_pipe_layout",
		BindGroupLayouts: []hal.BindGroupLayout{t.bindLayout},
	})
	if err != nil {
		return fmt.Errorf("buffer: create pipeline layout: %w", err)
	}

	blend := gputypes.BlendStatePremultiplied()
	t.pipeline, err = t.device.CreateRenderPipeline(&hal.RenderPipelineDescriptor{
		Label:  "buffer_pipeline",
		Layout: t.pipeLayout,
		Vertex: hal.VertexState{
			Module:     t.shader,
			EntryPoint: "vs_main",
			Buffers:    vertexLayout(),
		},
		Fragment: &hal.FragmentState{
			Module:     t.shader,
			EntryPoint: "fs_main",
			Targets: []gputypes.ColorTargetState{{
				Format:    gputypes.TextureFormatRGBA8Unorm,
				Blend:     &blend,
				WriteMask: gputypes.ColorWriteMaskAll,
			}},
		},
		Primitive: gputypes.PrimitiveState{
			Topology: gputypes.PrimitiveTopologyTriangleList,
			CullMode: gputypes.CullModeNone,
		},
		Multisample: gputypes.MultisampleState{Count: 1, Mask: 0xFFFFFFFF},
	})
	if err != nil {
		return fmt.Errorf("buffer: create pipeline: %w", err)
	}

	t.texture, err = t.device.CreateTexture(&hal.TextureDescriptor{
		Label:         "buffer_target",
		Size:          hal.Extent3D{Width: t.width, Height: t.height, DepthOrArrayLayers: 1},
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     gputypes.TextureDimension2D,
		Format:        gputypes.TextureFormatRGBA8Unorm,
		Usage:         gputypes.TextureUsageRenderAttachment | gputypes.TextureUsageCopySrc,
	})
	if err != nil {
		return fmt.Errorf("buffer: create target texture: %w", err)
	}
	t.view, err = t.device.CreateTextureView(t.texture, &hal.TextureViewDescriptor{
		Label: "buffer_target_view",
	})
	if err != nil {
		return fmt.Errorf("buffer: create target view: %w", err)
	}

	t.viewportBuf, err = t.device.CreateBuffer(&hal.BufferDescriptor{
		Label: "buffer_viewport",
		Size:  viewportSize,
		Usage: gputypes.BufferUsageUniform | gputypes.BufferUsageCopyDst,
	})
	if err != nil {
		return fmt.Errorf("buffer: create viewport buffer: %w", err)
	}
	vp := make([]byte, viewportSize)
	binary.LittleEndian.PutUint32(vp[0:], math.Float32bits(2/float32(t.width)))
	binary.LittleEndian.PutUint32(vp[4:], math.Float32bits(2/float32(t.height)))
	t.queue.WriteBuffer(t.viewportBuf, 0, vp)
	return nil
}

func vertexLayout() []gputypes.VertexBufferLayout {
	return []gputypes.VertexBufferLayout{{
		ArrayStride: vertexStride,
		StepMode:    gputypes.VertexStepModeVertex,
		Attributes: []gputypes.VertexAttribute{
			{Format: gputypes.VertexFormatFloat32x2, Offset: 0, ShaderLocation: 0}, // position
			{Format: gputypes.VertexFormatFloat32x4, Offset: 8, ShaderLocation: 1}, // color
			{Format: gputypes.VertexFormatFloat32, Offset: 24, ShaderLocation: 2},  // slot
		},
	}}
}

// ensureBuffer grows *buf to hold size bytes, rounding up to a power of two.
// It reports whether the buffer was replaced.
func (t *HALTarget) ensureBuffer(buf *hal.Buffer, capacity *uint64, size uint64, label string,
	usage gputypes.BufferUsage) (bool, error) {
	if *buf != nil && *capacity >= size {
		return false, nil
	}
	newCap := uint64(256)
	for newCap < size {
		newCap *= 2
	}
	b, err := t.device.CreateBuffer(&hal.BufferDescriptor{Label: label, Size: newCap, Usage: usage})
	if err != nil {
		return false, fmt.Errorf("buffer: create %s: %w", label, err)
	}
	if *buf != nil {
		t.device.DestroyBuffer(*buf)
	}
	*buf = b
	*capacity = newCap
	return true, nil
}

// Upload implements Target.
func (t *HALTarget) Upload(vertices, transforms []float32) error {
	if t.pipeline == nil {
		if err := t.createPipeline(); err != nil {
			return err
		}
	}
	grewV, err := t.ensureBuffer(&t.vertBuf, &t.vertCap, uint64(len(vertices))*4, "buffer_vertices",
		gputypes.BufferUsageVertex|gputypes.BufferUsageCopyDst)
	if err != nil {
		return err
	}
	grewT, err := t.ensureBuffer(&t.xformBuf, &t.xformCap, uint64(max(len(transforms), FloatsPerTransform))*4,
		"buffer_transforms", gputypes.BufferUsageStorage|gputypes.BufferUsageCopyDst)
	if err != nil {
		return err
	}
	if len(vertices) > 0 {
		t.queue.WriteBuffer(t.vertBuf, 0, t.bytes(vertices))
	}
	if len(transforms) > 0 {
		t.queue.WriteBuffer(t.xformBuf, 0, t.bytes(transforms))
	}
	t.vertexCount = len(vertices) / FloatsPerVertex
	if grewV || grewT || t.bindGroup == nil {
		return t.rebind()
	}
	return nil
}

func (t *HALTarget) bytes(data []float32) []byte {
	n := len(data) * 4
	if cap(t.staging) < n {
		t.staging = make([]byte, n)
	}
	out := t.staging[:n]
	for i, v := range data {
		binary.LittleEndian.PutUint32(out[i*4:], math.Float32bits(v))
	}
	return out
}

func (t *HALTarget) rebind() error {
	if t.bindGroup != nil {
		t.device.DestroyBindGroup(t.bindGroup)
		t.bindGroup = nil
	}
	bg, err := t.device.CreateBindGroup(&hal.BindGroupDescriptor{
		Label:  "buffer_bind",
		Layout: t.bindLayout,
		Entries: []gputypes.BindGroupEntry{
			{Binding: 0, Resource: gputypes.BufferBinding{
				Buffer: t.viewportBuf.NativeHandle(), Offset: 0, Size: viewportSize,
			}},
			{Binding: 1, Resource: gputypes.BufferBinding{
				Buffer: t.xformBuf.NativeHandle(), Offset: 0, Size: t.xformCap,
			}},
		},
	})
	if err != nil {
		return fmt.Errorf("buffer: create bind group: %w", err)
	}
	t.bindGroup = bg
	return nil
}

// Draw implements Target.
func (t *HALTarget) Draw(ranges []Range) error {
	if t.pipeline == nil || t.bindGroup == nil {
		return ErrTargetReleased
	}
	encoder, err := t.device.CreateCommandEncoder(&hal.CommandEncoderDescriptor{Label: "buffer_encoder"})
	if err != nil {
		return fmt.Errorf("buffer: create command encoder: %w", err)
	}
	if err := encoder.BeginEncoding("buffer_frame"); err != nil {
		return fmt.Errorf("buffer: begin encoding: %w", err)
	}
	rp := encoder.BeginRenderPass(&hal.RenderPassDescriptor{
		Label: "buffer_pass",
		ColorAttachments: []hal.RenderPassColorAttachment{{
			View:       t.view,
			LoadOp:     gputypes.LoadOpClear,
			StoreOp:    gputypes.StoreOpStore,
			ClearValue: gputypes.Color{R: 0, G: 0, B: 0, A: 0},
		}},
	})
	rp.SetPipeline(t.pipeline)
	rp.SetBindGroup(0, t.bindGroup, nil)
	rp.SetVertexBuffer(0, t.vertBuf, 0)
	for _, r := range ranges {
		if r.Count == 0 || r.End() > t.vertexCount {
			continue
		}
		rp.Draw(uint32(r.Count), 1, uint32(r.Start), 0) //nolint:gosec // bounded by vertexCount
	}
	rp.End()

	cmdBuf, err := encoder.EndEncoding()
	if err != nil {
		return fmt.Errorf("buffer: end encoding: %w", err)
	}
	defer t.device.FreeCommandBuffer(cmdBuf)

	fence, err := t.device.CreateFence()
	if err != nil {
		return fmt.Errorf("buffer: create fence: %w", err)
	}
	defer t.device.DestroyFence(fence)
	if err := t.queue.Submit([]hal.CommandBuffer{cmdBuf}, fence, 1); err != nil {
		return fmt.Errorf("buffer: submit: %w", err)
	}
	ok, err := t.device.Wait(fence, 1, submitTimeout)
	if err != nil {
		return fmt.Errorf("buffer: wait: %w", err)
	}
	if !ok {
		return ErrContextLost
	}
	return nil
}

// Release implements Target. The device itself is not destroyed.
func (t *HALTarget) Release() {
	if t.device == nil {
		return
	}
	if t.bindGroup != nil {
		t.device.DestroyBindGroup(t.bindGroup)
		t.bindGroup = nil
	}
	for _, b := range []*hal.Buffer{&t.vertBuf, &t.xformBuf, &t.viewportBuf} {
		if *b != nil {
			t.device.DestroyBuffer(*b)
			*b = nil
		}
	}
	t.vertCap, t.xformCap, t.vertexCount = 0, 0, 0
	if t.view != nil {
		t.device.DestroyTextureView(t.view)
		t.view = nil
	}
	if t.texture != nil {
		t.device.DestroyTexture(t.texture)
		t.texture = nil
	}
	if t.pipeline != nil {
		t.device.DestroyRenderPipeline(t.pipeline)
		t.pipeline = nil
	}
	if t.pipeLayout != nil {
		t.device.DestroyPipelineLayout(t.pipeLayout)
		t.pipeLayout = nil
	}
	if t.bindLayout != nil {
		t.device.DestroyBindGroupLayout(t.bindLayout)
		t.bindLayout = nil
	}
	if t.shader != nil {
		t.device.DestroyShaderModule(t.shader)
		t.shader = nil
	}
}
