package gpu

import (
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShapeVertexLayouts(t *testing.T) {
	layouts := ShapeVertexLayouts()
	require.Len(t, layouts, 2)

	for i, l := range layouts {
		assert.Equal(t, uint64(12), l.ArrayStride)
		assert.Equal(t, wgpu.VertexStepModeVertex, l.StepMode)
		require.Len(t, l.Attributes, 1)
		assert.Equal(t, wgpu.VertexFormatFloat32x3, l.Attributes[0].Format)
		assert.Equal(t, uint64(0), l.Attributes[0].Offset)
		assert.Equal(t, uint32(i), l.Attributes[0].ShaderLocation)
	}
}

func TestShapePipelineDescriptor(t *testing.T) {
	desc := ShapePipelineDescriptor(nil, wgpu.TextureFormatBGRA8Unorm)

	assert.Equal(t, "vs_main", desc.Vertex.EntryPoint)
	require.NotNil(t, desc.Fragment)
	assert.Equal(t, "fs_main", desc.Fragment.EntryPoint)
	require.Len(t, desc.Fragment.Targets, 1)
	assert.Equal(t, wgpu.TextureFormatBGRA8Unorm, desc.Fragment.Targets[0].Format)
	assert.Nil(t, desc.Layout, "layout is derived from the shader")

	assert.Equal(t, wgpu.PrimitiveTopologyTriangleList, desc.Primitive.Topology)

	require.NotNil(t, desc.DepthStencil)
	assert.Equal(t, wgpu.TextureFormatDepth24Plus, desc.DepthStencil.Format)
	assert.True(t, desc.DepthStencil.DepthWriteEnabled)
	assert.Equal(t, wgpu.CompareFunctionLess, desc.DepthStencil.DepthCompare)
}

func TestUniformBindGroupEntries(t *testing.T) {
	entries := UniformBindGroupEntries(nil, nil, nil)
	require.Len(t, entries, 3)

	wantSizes := []uint64{192, 32, 48}
	for i, e := range entries {
		assert.Equal(t, uint32(i), e.Binding)
		assert.Equal(t, uint64(0), e.Offset)
		assert.Equal(t, wantSizes[i], e.Size)
	}
}

func TestRenderPassDescriptor(t *testing.T) {
	desc := RenderPassDescriptor(nil, nil)

	require.Len(t, desc.ColorAttachments, 1)
	color := desc.ColorAttachments[0]
	assert.Equal(t, wgpu.LoadOpClear, color.LoadOp)
	assert.Equal(t, wgpu.StoreOpStore, color.StoreOp)
	assert.Equal(t, wgpu.Color{R: 0.2, G: 0.247, B: 0.314, A: 1.0}, color.ClearValue)

	require.NotNil(t, desc.DepthStencilAttachment)
	assert.Equal(t, wgpu.LoadOpClear, desc.DepthStencilAttachment.DepthLoadOp)
	assert.Equal(t, float32(1.0), desc.DepthStencilAttachment.DepthClearValue)
}
