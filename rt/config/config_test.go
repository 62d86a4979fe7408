package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Empty(t *testing.T) {
	cfg, err := Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestParse_Full(t *testing.T) {
	src := `
window:
  width: 800
  height: 600
  title: Torus
shape: torus
animate: false
debug: true
light:
  color: [0, 1, 0]
  ambient_intensity: 0.3
  shininess: 50
`
	cfg, err := Parse([]byte(src))
	require.NoError(t, err)

	assert.Equal(t, Window{Width: 800, Height: 600, Title: "Torus"}, cfg.Window)
	assert.Equal(t, "torus", cfg.Shape)
	assert.False(t, cfg.Animate)
	assert.True(t, cfg.Debug)

	require.NotNil(t, cfg.Light.Color)
	assert.Equal(t, mgl32.Vec3{0, 1, 0}, *cfg.Light.Color)
	require.NotNil(t, cfg.Light.AmbientIntensity)
	assert.Equal(t, float32(0.3), *cfg.Light.AmbientIntensity)
	assert.Nil(t, cfg.Light.DiffuseIntensity, "absent keys stay unset")
	assert.Nil(t, cfg.Light.SpecularColor)

	p := cfg.Light.Defaults()
	assert.Equal(t, float32(50), p.Shininess)
	assert.Equal(t, float32(0.8), p.DiffuseIntensity)
}

func TestParse_WindowDefaults(t *testing.T) {
	cfg, err := Parse([]byte("window: {width: 0, height: -5}\n"))
	require.NoError(t, err)
	assert.Equal(t, DefaultWidth, cfg.Window.Width)
	assert.Equal(t, DefaultHeight, cfg.Window.Height)
	assert.Equal(t, DefaultTitle, cfg.Window.Title)
}

func TestParse_Errors(t *testing.T) {
	_, err := Parse([]byte("shape: teapot\n"))
	assert.Error(t, err)

	_, err = Parse([]byte("colour: red\n"))
	assert.Error(t, err, "unknown keys are rejected")

	_, err = Parse([]byte("light:\n  color: [1, 0]\n"))
	assert.Error(t, err, "a color needs three components")
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "demo.yaml")
	require.NoError(t, os.WriteFile(path, []byte("shape: sphere\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "sphere", cfg.Shape)
	assert.True(t, cfg.Animate)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
