package gpu

import (
	"fmt"

	"github.com/gekko3d/phonglight/rt/core"
	"github.com/gekko3d/phonglight/rt/geometry"

	"github.com/cogentcore/webgpu/wgpu"
)

// ClearColor is the background behind the shape.
var ClearColor = wgpu.Color{R: 0.2, G: 0.247, B: 0.314, A: 1.0}

// ShapeRenderPass owns every GPU resource needed to draw the lit shape.
type ShapeRenderPass struct {
	Device   *wgpu.Device
	Pipeline *wgpu.RenderPipeline
	Mesh     *MeshBuffers
	Uniforms *UniformBuffers
	Depth    *DepthTarget
}

func NewShapeRenderPass(device *wgpu.Device, format wgpu.TextureFormat, mesh geometry.Mesh, width, height uint32) (*ShapeRenderPass, error) {
	p := &ShapeRenderPass{Device: device}

	var err error
	p.Mesh, err = NewMeshBuffers(device, mesh)
	if err != nil {
		return nil, fmt.Errorf("upload mesh: %w", err)
	}

	p.Pipeline, err = NewShapePipeline(device, format)
	if err != nil {
		p.Release()
		return nil, err
	}

	p.Uniforms, err = NewUniformBuffers(device, p.Pipeline)
	if err != nil {
		p.Release()
		return nil, err
	}

	p.Depth, err = NewDepthTarget(device, width, height)
	if err != nil {
		p.Release()
		return nil, err
	}
	return p, nil
}

// Resize replaces the depth target with one of the new surface size.
func (p *ShapeRenderPass) Resize(width, height uint32) error {
	depth, err := NewDepthTarget(p.Device, width, height)
	if err != nil {
		return err
	}
	if p.Depth != nil {
		p.Depth.Release()
	}
	p.Depth = depth
	return nil
}

// Sync uploads the uniform ranges the scene wrote this frame.
func (p *ShapeRenderPass) Sync(queue *wgpu.Queue, mirrors *core.Uniforms) error {
	return p.Uniforms.Sync(queue, mirrors)
}

// RenderPassDescriptor clears color to ClearColor and depth to 1.0.
func RenderPassDescriptor(color, depth *wgpu.TextureView) *wgpu.RenderPassDescriptor {
	return &wgpu.RenderPassDescriptor{
		Label: "Shape Pass",
		ColorAttachments: []wgpu.RenderPassColorAttachment{{
			View:       color,
			LoadOp:     wgpu.LoadOpClear,
			StoreOp:    wgpu.StoreOpStore,
			ClearValue: ClearColor,
		}},
		DepthStencilAttachment: &wgpu.RenderPassDepthStencilAttachment{
			View:            depth,
			DepthLoadOp:     wgpu.LoadOpClear,
			DepthStoreOp:    wgpu.StoreOpStore,
			DepthClearValue: 1.0,
		},
	}
}

// Encode records the single draw of the shape into encoder, targeting view.
func (p *ShapeRenderPass) Encode(encoder *wgpu.CommandEncoder, view *wgpu.TextureView) error {
	pass := encoder.BeginRenderPass(RenderPassDescriptor(view, p.Depth.View))

	pass.SetPipeline(p.Pipeline)
	pass.SetVertexBuffer(0, p.Mesh.Positions, 0, wgpu.WholeSize)
	pass.SetVertexBuffer(1, p.Mesh.Normals, 0, wgpu.WholeSize)
	pass.SetBindGroup(0, p.Uniforms.BindGroup, nil)
	pass.Draw(p.Mesh.VertexCount, 1, 0, 0)

	if err := pass.End(); err != nil {
		return fmt.Errorf("end shape pass: %w", err)
	}
	return nil
}

func (p *ShapeRenderPass) Release() {
	if p.Depth != nil {
		p.Depth.Release()
	}
	if p.Uniforms != nil {
		p.Uniforms.Release()
	}
	if p.Pipeline != nil {
		p.Pipeline.Release()
	}
	if p.Mesh != nil {
		p.Mesh.Release()
	}
}
