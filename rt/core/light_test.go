package core

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestLightInputs_DefaultsWhenUnset(t *testing.T) {
	p := LightInputs{}.Defaults()

	assert.Equal(t, mgl32.Vec3{1, 0, 0}, p.Color)
	assert.Equal(t, float32(0.2), p.AmbientIntensity)
	assert.Equal(t, float32(0.8), p.DiffuseIntensity)
	assert.Equal(t, float32(0.4), p.SpecularIntensity)
	assert.Equal(t, float32(30.0), p.Shininess)
	assert.Equal(t, mgl32.Vec3{1, 1, 1}, p.SpecularColor)
}

func TestLightInputs_KeepsSetFields(t *testing.T) {
	li := LightInputs{
		Color:     Color(0, 0, 1),
		Shininess: Float(64),
		// zero is a real value, not "unset"
		AmbientIntensity: Float(0),
	}
	p := li.Defaults()

	assert.Equal(t, mgl32.Vec3{0, 0, 1}, p.Color)
	assert.Equal(t, float32(64), p.Shininess)
	assert.Equal(t, float32(0), p.AmbientIntensity)
	assert.Equal(t, float32(0.8), p.DiffuseIntensity)
	assert.Equal(t, mgl32.Vec3{1, 1, 1}, p.SpecularColor)
}

func TestLightParams_FloatsOrder(t *testing.T) {
	p := LightParams{
		Color:             mgl32.Vec3{0.1, 0.2, 0.3},
		SpecularColor:     mgl32.Vec3{0.4, 0.5, 0.6},
		AmbientIntensity:  1,
		DiffuseIntensity:  2,
		SpecularIntensity: 3,
		Shininess:         4,
	}

	want := [12]float32{0.1, 0.2, 0.3, 1, 0.4, 0.5, 0.6, 1, 1, 2, 3, 4}
	assert.Equal(t, want, p.Floats())
}

func TestUniforms_WriteLightFillsWholeBlock(t *testing.T) {
	u := NewUniforms()
	u.WriteLight(LightInputs{}.Defaults())

	assert.Len(t, u.Light.Data, 48)
	assert.Equal(t, []Range{{Offset: 0, Size: 48}}, u.Light.Dirty())
	assert.Equal(t, float32(1), u.Light.Float(0))
	assert.Equal(t, float32(0), u.Light.Float(4))
	assert.Equal(t, float32(1), u.Light.Float(12))
	assert.Equal(t, float32(1), u.Light.Float(28))
	assert.Equal(t, float32(0.2), u.Light.Float(32))
	assert.Equal(t, float32(0.8), u.Light.Float(36))
	assert.Equal(t, float32(0.4), u.Light.Float(40))
	assert.Equal(t, float32(30), u.Light.Float(44))
}
