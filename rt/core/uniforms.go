package core

import (
	"encoding/binary"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Uniform buffer sizes and field offsets, in bytes.
//
//	struct Uniforms {           -- binding 0, 192 bytes
//	  vp_matrix: mat4x4<f32>;   -- 0
//	  model_matrix: mat4x4<f32>;  -- 64
//	  normal_matrix: mat4x4<f32>; -- 128
//	}
//	struct FragUniforms {       -- binding 1, 32 bytes
//	  light_position: vec4<f32>;  -- 0
//	  eye_position: vec4<f32>;    -- 16
//	}
//	struct LightUniforms        -- binding 2, 48 bytes, see LightParams.Floats
const (
	VertexUniformSize   = 192
	FragmentUniformSize = 32
	LightUniformSize    = 48

	ViewProjectionOffset = 0
	ModelOffset          = 64
	NormalOffset         = 128

	LightPositionOffset = 0
	EyePositionOffset   = 16
)

// Range is a dirty byte range of a UniformBlock.
type Range struct {
	Offset uint64
	Size   uint64
}

// UniformBlock is the CPU mirror of one fixed size uniform buffer.
// Writes go to Data and are remembered until the next Flush.
type UniformBlock struct {
	Data  []byte
	dirty []Range
}

func NewUniformBlock(size int) *UniformBlock {
	return &UniformBlock{Data: make([]byte, size)}
}

func (b *UniformBlock) WriteFloats(offset uint64, values []float32) {
	end := offset + uint64(len(values))*4
	if end > uint64(len(b.Data)) {
		panic("uniform write out of range")
	}
	for i, v := range values {
		binary.LittleEndian.PutUint32(b.Data[offset+uint64(i)*4:], math.Float32bits(v))
	}
	b.dirty = append(b.dirty, Range{Offset: offset, Size: end - offset})
}

// WriteMat4 stores m in column-major order, which is what WGSL mat4x4 expects.
func (b *UniformBlock) WriteMat4(offset uint64, m mgl32.Mat4) {
	b.WriteFloats(offset, m[:])
}

// WriteVec3 stores v in the first 12 bytes of a vec4 slot.
func (b *UniformBlock) WriteVec3(offset uint64, v mgl32.Vec3) {
	b.WriteFloats(offset, v[:])
}

func (b *UniformBlock) Float(offset uint64) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(b.Data[offset:]))
}

func (b *UniformBlock) Mat4(offset uint64) mgl32.Mat4 {
	var m mgl32.Mat4
	for i := range m {
		m[i] = b.Float(offset + uint64(i)*4)
	}
	return m
}

func (b *UniformBlock) Vec3(offset uint64) mgl32.Vec3 {
	return mgl32.Vec3{b.Float(offset), b.Float(offset + 4), b.Float(offset + 8)}
}

// Dirty returns the ranges written since the last Flush.
func (b *UniformBlock) Dirty() []Range {
	return b.dirty
}

// Flush hands every dirty range to write, in write order. Ranges that write
// accepts are cleared; failed ranges stay dirty for the next Flush. The
// first error is returned.
func (b *UniformBlock) Flush(write func(offset uint64, data []byte) error) error {
	var firstErr error
	kept := b.dirty[:0]
	for _, r := range b.dirty {
		if err := write(r.Offset, b.Data[r.Offset:r.Offset+r.Size]); err != nil {
			kept = append(kept, r)
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	b.dirty = kept
	return firstErr
}

// Uniforms groups the three blocks bound at slots 0, 1 and 2.
type Uniforms struct {
	Vertex   *UniformBlock
	Fragment *UniformBlock
	Light    *UniformBlock
}

func NewUniforms() *Uniforms {
	return &Uniforms{
		Vertex:   NewUniformBlock(VertexUniformSize),
		Fragment: NewUniformBlock(FragmentUniformSize),
		Light:    NewUniformBlock(LightUniformSize),
	}
}

func (u *Uniforms) WriteLight(p LightParams) {
	f := p.Floats()
	u.Light.WriteFloats(0, f[:])
}

func (u *Uniforms) WriteViewProjection(vp mgl32.Mat4) {
	u.Vertex.WriteMat4(ViewProjectionOffset, vp)
}

func (u *Uniforms) WriteModel(model, normal mgl32.Mat4) {
	u.Vertex.WriteMat4(ModelOffset, model)
	u.Vertex.WriteMat4(NormalOffset, normal)
}

func (u *Uniforms) WritePositions(light, eye mgl32.Vec3) {
	u.Fragment.WriteVec3(LightPositionOffset, light)
	u.Fragment.WriteVec3(EyePositionOffset, eye)
}
