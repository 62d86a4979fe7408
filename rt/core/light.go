package core

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Default Phong parameters used for any LightInputs field left unset.
var (
	DefaultLightColor        = mgl32.Vec3{1, 0, 0}
	DefaultSpecularColor     = mgl32.Vec3{1, 1, 1}
	DefaultAmbientIntensity  = float32(0.2)
	DefaultDiffuseIntensity  = float32(0.8)
	DefaultSpecularIntensity = float32(0.4)
	DefaultShininess         = float32(30.0)
)

// LightInputs are the user supplied light and material parameters.
// A nil field means "not set" and is replaced by its default.
type LightInputs struct {
	Color             *mgl32.Vec3 `yaml:"color"`
	AmbientIntensity  *float32    `yaml:"ambient_intensity"`
	DiffuseIntensity  *float32    `yaml:"diffuse_intensity"`
	SpecularIntensity *float32    `yaml:"specular_intensity"`
	Shininess         *float32    `yaml:"shininess"`
	SpecularColor     *mgl32.Vec3 `yaml:"specular_color"`
}

// LightParams is the resolved, immutable set of lighting parameters of a session.
type LightParams struct {
	Color             mgl32.Vec3
	AmbientIntensity  float32
	DiffuseIntensity  float32
	SpecularIntensity float32
	Shininess         float32
	SpecularColor     mgl32.Vec3
}

// Float returns a pointer to v, for filling optional LightInputs fields.
func Float(v float32) *float32 {
	return &v
}

// Color returns a pointer to an RGB triple, for filling optional LightInputs fields.
func Color(r, g, b float32) *mgl32.Vec3 {
	c := mgl32.Vec3{r, g, b}
	return &c
}

// Defaults resolves every unset field to its default value.
func (li LightInputs) Defaults() LightParams {
	p := LightParams{
		Color:             DefaultLightColor,
		AmbientIntensity:  DefaultAmbientIntensity,
		DiffuseIntensity:  DefaultDiffuseIntensity,
		SpecularIntensity: DefaultSpecularIntensity,
		Shininess:         DefaultShininess,
		SpecularColor:     DefaultSpecularColor,
	}
	if li.Color != nil {
		p.Color = *li.Color
	}
	if li.AmbientIntensity != nil {
		p.AmbientIntensity = *li.AmbientIntensity
	}
	if li.DiffuseIntensity != nil {
		p.DiffuseIntensity = *li.DiffuseIntensity
	}
	if li.SpecularIntensity != nil {
		p.SpecularIntensity = *li.SpecularIntensity
	}
	if li.Shininess != nil {
		p.Shininess = *li.Shininess
	}
	if li.SpecularColor != nil {
		p.SpecularColor = *li.SpecularColor
	}
	return p
}

// Floats flattens the parameters in shader order:
//
//	struct LightUniforms {
//	  color: vec4<f32>;          -- rgb, 1.0
//	  specular_color: vec4<f32>; -- rgb, 1.0
//	  params: vec4<f32>;         -- ambient, diffuse, specular, shininess
//	}
func (p LightParams) Floats() [LightUniformSize / 4]float32 {
	return [LightUniformSize / 4]float32{
		p.Color[0], p.Color[1], p.Color[2], 1.0,
		p.SpecularColor[0], p.SpecularColor[1], p.SpecularColor[2], 1.0,
		p.AmbientIntensity, p.DiffuseIntensity, p.SpecularIntensity, p.Shininess,
	}
}
