package gpu

import (
	"fmt"

	"github.com/gekko3d/phonglight/rt/core"
	"github.com/gekko3d/phonglight/rt/shaders"

	"github.com/cogentcore/webgpu/wgpu"
)

const (
	DepthFormat = wgpu.TextureFormatDepth24Plus

	// one float32x3 per vertex in each stream
	vertexStride = 3 * 4
)

// ShapeVertexLayouts describes the two vertex streams: positions at
// location 0 in buffer 0 and normals at location 1 in buffer 1.
func ShapeVertexLayouts() []wgpu.VertexBufferLayout {
	return []wgpu.VertexBufferLayout{
		{
			ArrayStride: vertexStride,
			StepMode:    wgpu.VertexStepModeVertex,
			Attributes: []wgpu.VertexAttribute{
				{Format: wgpu.VertexFormatFloat32x3, Offset: 0, ShaderLocation: 0},
			},
		},
		{
			ArrayStride: vertexStride,
			StepMode:    wgpu.VertexStepModeVertex,
			Attributes: []wgpu.VertexAttribute{
				{Format: wgpu.VertexFormatFloat32x3, Offset: 0, ShaderLocation: 1},
			},
		},
	}
}

// ShapePipelineDescriptor builds the descriptor for the lit shape: auto layout,
// triangle list, depth tested with "less" and depth writes on.
func ShapePipelineDescriptor(module *wgpu.ShaderModule, format wgpu.TextureFormat) *wgpu.RenderPipelineDescriptor {
	return &wgpu.RenderPipelineDescriptor{
		Label: "Shape Pipeline",
		Vertex: wgpu.VertexState{
			Module:     module,
			EntryPoint: "vs_main",
			Buffers:    ShapeVertexLayouts(),
		},
		Fragment: &wgpu.FragmentState{
			Module:     module,
			EntryPoint: "fs_main",
			Targets: []wgpu.ColorTargetState{{
				Format:    format,
				WriteMask: wgpu.ColorWriteMaskAll,
			}},
		},
		Primitive: wgpu.PrimitiveState{
			Topology:  wgpu.PrimitiveTopologyTriangleList,
			FrontFace: wgpu.FrontFaceCCW,
			CullMode:  wgpu.CullModeNone,
		},
		DepthStencil: &wgpu.DepthStencilState{
			Format:            DepthFormat,
			DepthWriteEnabled: true,
			DepthCompare:      wgpu.CompareFunctionLess,
			StencilFront: wgpu.StencilFaceState{
				Compare: wgpu.CompareFunctionAlways,
			},
			StencilBack: wgpu.StencilFaceState{
				Compare: wgpu.CompareFunctionAlways,
			},
		},
		Multisample: wgpu.MultisampleState{
			Count: 1,
			Mask:  0xFFFFFFFF,
		},
	}
}

// NewShapePipeline compiles the light shader and builds the render pipeline.
func NewShapePipeline(device *wgpu.Device, format wgpu.TextureFormat) (*wgpu.RenderPipeline, error) {
	module, err := device.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label:          "Light Shader",
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{Code: shaders.LightWGSL},
	})
	if err != nil {
		return nil, fmt.Errorf("create shader module: %w", err)
	}
	defer module.Release()

	pipeline, err := device.CreateRenderPipeline(ShapePipelineDescriptor(module, format))
	if err != nil {
		return nil, fmt.Errorf("create render pipeline: %w", err)
	}
	return pipeline, nil
}

// UniformBindGroupEntries binds the three uniform buffers at slots 0, 1 and 2.
func UniformBindGroupEntries(vertex, fragment, light *wgpu.Buffer) []wgpu.BindGroupEntry {
	return []wgpu.BindGroupEntry{
		{Binding: 0, Buffer: vertex, Offset: 0, Size: core.VertexUniformSize},
		{Binding: 1, Buffer: fragment, Offset: 0, Size: core.FragmentUniformSize},
		{Binding: 2, Buffer: light, Offset: 0, Size: core.LightUniformSize},
	}
}
