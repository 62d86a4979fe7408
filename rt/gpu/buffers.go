package gpu

import (
	"fmt"

	"github.com/gekko3d/phonglight/rt/core"
	"github.com/gekko3d/phonglight/rt/geometry"

	"github.com/cogentcore/webgpu/wgpu"
)

// MeshBuffers are the GPU copies of a mesh's position and normal streams.
type MeshBuffers struct {
	Positions   *wgpu.Buffer
	Normals     *wgpu.Buffer
	VertexCount uint32
}

func NewMeshBuffers(device *wgpu.Device, mesh geometry.Mesh) (*MeshBuffers, error) {
	if err := mesh.Validate(); err != nil {
		return nil, err
	}

	positions, err := device.CreateBufferInit(&wgpu.BufferInitDescriptor{
		Label:    "Position Buffer",
		Contents: wgpu.ToBytes(mesh.Positions),
		Usage:    wgpu.BufferUsageVertex | wgpu.BufferUsageCopyDst,
	})
	if err != nil {
		return nil, fmt.Errorf("create position buffer: %w", err)
	}
	normals, err := device.CreateBufferInit(&wgpu.BufferInitDescriptor{
		Label:    "Normal Buffer",
		Contents: wgpu.ToBytes(mesh.Normals),
		Usage:    wgpu.BufferUsageVertex | wgpu.BufferUsageCopyDst,
	})
	if err != nil {
		positions.Release()
		return nil, fmt.Errorf("create normal buffer: %w", err)
	}

	return &MeshBuffers{
		Positions:   positions,
		Normals:     normals,
		VertexCount: mesh.VertexCount(),
	}, nil
}

func (m *MeshBuffers) Release() {
	m.Positions.Release()
	m.Normals.Release()
}

// UniformBuffers are the three fixed size uniform buffers and the bind group
// exposing them to the shader.
type UniformBuffers struct {
	Vertex    *wgpu.Buffer
	Fragment  *wgpu.Buffer
	Light     *wgpu.Buffer
	BindGroup *wgpu.BindGroup
}

func NewUniformBuffers(device *wgpu.Device, pipeline *wgpu.RenderPipeline) (*UniformBuffers, error) {
	u := &UniformBuffers{}

	create := func(label string, size uint64) (*wgpu.Buffer, error) {
		buf, err := device.CreateBuffer(&wgpu.BufferDescriptor{
			Label: label,
			Size:  size,
			Usage: wgpu.BufferUsageUniform | wgpu.BufferUsageCopyDst,
		})
		if err != nil {
			return nil, fmt.Errorf("create %s: %w", label, err)
		}
		return buf, nil
	}

	var err error
	if u.Vertex, err = create("Vertex UB", core.VertexUniformSize); err != nil {
		return nil, err
	}
	if u.Fragment, err = create("Fragment UB", core.FragmentUniformSize); err != nil {
		u.Release()
		return nil, err
	}
	if u.Light, err = create("Light UB", core.LightUniformSize); err != nil {
		u.Release()
		return nil, err
	}

	layout := pipeline.GetBindGroupLayout(0)
	defer layout.Release()

	u.BindGroup, err = device.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Label:   "Uniform BG",
		Layout:  layout,
		Entries: UniformBindGroupEntries(u.Vertex, u.Fragment, u.Light),
	})
	if err != nil {
		u.Release()
		return nil, fmt.Errorf("create uniform bind group: %w", err)
	}
	return u, nil
}

// Sync uploads every range written to the CPU mirrors since the last Sync.
// Ranges that fail to upload stay dirty and are retried on the next Sync.
func (u *UniformBuffers) Sync(queue *wgpu.Queue, mirrors *core.Uniforms) error {
	return SyncUniforms(mirrors, func(slot int, offset uint64, data []byte) error {
		return queue.WriteBuffer(u.buffer(slot), offset, data)
	})
}

func (u *UniformBuffers) buffer(slot int) *wgpu.Buffer {
	switch slot {
	case 0:
		return u.Vertex
	case 1:
		return u.Fragment
	default:
		return u.Light
	}
}

// SyncUniforms flushes the three mirrors through write, tagging each range
// with its binding slot. Every block is flushed even after a failure; the
// first error is returned.
func SyncUniforms(mirrors *core.Uniforms, write func(slot int, offset uint64, data []byte) error) error {
	var firstErr error
	for slot, block := range []*core.UniformBlock{mirrors.Vertex, mirrors.Fragment, mirrors.Light} {
		err := block.Flush(func(offset uint64, data []byte) error {
			if err := write(slot, offset, data); err != nil {
				return fmt.Errorf("write uniforms %d at %d: %w", slot, offset, err)
			}
			return nil
		})
		if err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func (u *UniformBuffers) Release() {
	if u.BindGroup != nil {
		u.BindGroup.Release()
	}
	for _, b := range []*wgpu.Buffer{u.Vertex, u.Fragment, u.Light} {
		if b != nil {
			b.Release()
		}
	}
}

// DepthTarget is the depth attachment matching the surface size.
type DepthTarget struct {
	Texture *wgpu.Texture
	View    *wgpu.TextureView
}

func NewDepthTarget(device *wgpu.Device, width, height uint32) (*DepthTarget, error) {
	tex, err := device.CreateTexture(&wgpu.TextureDescriptor{
		Label:         "Depth Texture",
		Size:          wgpu.Extent3D{Width: width, Height: height, DepthOrArrayLayers: 1},
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     wgpu.TextureDimension2D,
		Format:        DepthFormat,
		Usage:         wgpu.TextureUsageRenderAttachment,
	})
	if err != nil {
		return nil, fmt.Errorf("create depth texture: %w", err)
	}
	view, err := tex.CreateView(nil)
	if err != nil {
		tex.Release()
		return nil, fmt.Errorf("create depth view: %w", err)
	}
	return &DepthTarget{Texture: tex, View: view}, nil
}

func (d *DepthTarget) Release() {
	d.View.Release()
	d.Texture.Release()
}
