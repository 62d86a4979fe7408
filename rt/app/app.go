package app

import (
	"errors"
	"fmt"

	"github.com/gekko3d/phonglight/rt/core"
	"github.com/gekko3d/phonglight/rt/geometry"
	"github.com/gekko3d/phonglight/rt/gpu"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/cogentcore/webgpu/wgpuglfw"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Logger is the subset of the session logger the renderer needs.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

type App struct {
	Window   *glfw.Window
	Instance *wgpu.Instance
	Adapter  *wgpu.Adapter
	Device   *wgpu.Device
	Queue    *wgpu.Queue
	Surface  *wgpu.Surface
	Config   *wgpu.SurfaceConfiguration

	Shape *gpu.ShapeRenderPass
	Scene *core.Scene

	Mesh    geometry.Mesh
	Light   core.LightInputs
	Animate bool

	Profiler *Profiler
	Log      Logger
	Debug    bool

	// set while the framebuffer has zero size
	minimised bool
}

func NewApp(window *glfw.Window, mesh geometry.Mesh, light core.LightInputs, animate bool, log Logger) *App {
	return &App{
		Window:   window,
		Mesh:     mesh,
		Light:    light,
		Animate:  animate,
		Profiler: NewProfiler(),
		Log:      log,
	}
}

func (a *App) Init() error {
	a.Instance = wgpu.CreateInstance(nil)
	a.Surface = a.Instance.CreateSurface(wgpuglfw.GetSurfaceDescriptor(a.Window))

	adapter, err := a.Instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		CompatibleSurface: a.Surface,
		PowerPreference:   wgpu.PowerPreferenceHighPerformance,
	})
	if err != nil {
		return fmt.Errorf("request adapter: %w", err)
	}
	a.Adapter = adapter

	a.Device, err = adapter.RequestDevice(&wgpu.DeviceDescriptor{
		Label: "Main Device",
	})
	if err != nil {
		return fmt.Errorf("request device: %w", err)
	}
	a.Queue = a.Device.GetQueue()

	width, height := a.Window.GetFramebufferSize()
	caps := a.Surface.GetCapabilities(adapter)
	if len(caps.Formats) == 0 || len(caps.AlphaModes) == 0 {
		return errors.New("surface reports no supported formats")
	}
	format := caps.Formats[0]

	a.Config = &wgpu.SurfaceConfiguration{
		Usage:       wgpu.TextureUsageRenderAttachment,
		Format:      format,
		Width:       uint32(width),
		Height:      uint32(height),
		PresentMode: wgpu.PresentModeFifo,
		AlphaMode:   caps.AlphaModes[0],
	}
	a.Surface.Configure(adapter, a.Device, a.Config)
	a.minimised = width <= 0 || height <= 0
	a.Log.Infof("surface configured: %dx%d format=%v", width, height, format)

	a.Shape, err = gpu.NewShapeRenderPass(a.Device, format, a.Mesh, uint32(max(width, 1)), uint32(max(height, 1)))
	if err != nil {
		return err
	}
	a.Log.Infof("pipeline ready: %d vertices", a.Shape.Mesh.VertexCount)

	a.Scene = core.NewScene(a.Light, a.Shape.Mesh.VertexCount, a.aspect(), a.Animate)
	a.Log.Debugf("light: %+v", a.Scene.Light)

	a.Profiler.SetCount("vertices", int(a.Scene.VertexCount))
	a.Profiler.SetCount("draws", 1)
	return nil
}

func (a *App) aspect() float32 {
	if a.Config.Height == 0 {
		return 1.0
	}
	return float32(a.Config.Width) / float32(a.Config.Height)
}

// Camera returns the interactive camera, or nil when the shape is animated.
func (a *App) Camera() *core.OrbitCamera {
	if a.Scene == nil {
		return nil
	}
	return a.Scene.Camera
}

// Resize reconfigures the surface for the new framebuffer size. A zero size
// only marks the app minimised; the surface keeps its last configuration.
func (a *App) Resize(w, h int) {
	if w <= 0 || h <= 0 {
		if !a.minimised {
			a.Log.Debugf("minimised, rendering paused")
		}
		a.minimised = true
		return
	}
	a.minimised = false
	a.Config.Width = uint32(w)
	a.Config.Height = uint32(h)
	a.Surface.Configure(a.Adapter, a.Device, a.Config)

	if err := a.Shape.Resize(uint32(w), uint32(h)); err != nil {
		a.Log.Errorf("resize depth target: %v", err)
		return
	}
	a.Scene.Resize(a.aspect())
	a.Log.Debugf("resized to %dx%d", w, h)
}

func (a *App) Update() {
	a.Profiler.BeginScope("update")
	if a.Scene.Update() {
		a.Log.Debugf("camera moved: eye=%v", a.Scene.View.Eye)
	}
	a.Profiler.EndScope("update")
}

func (a *App) Render() {
	// Minimised windows have nothing to present to.
	if a.minimised {
		return
	}
	a.Profiler.BeginScope("render")
	defer a.Profiler.EndScope("render")

	if err := a.Shape.Sync(a.Queue, a.Scene.Uniforms); err != nil {
		a.Log.Errorf("%v", err)
	}

	nextTexture, err := a.Surface.GetCurrentTexture()
	if err != nil {
		a.Log.Errorf("GetCurrentTexture failed: %v", err)
		return
	}
	defer nextTexture.Release()

	view, err := nextTexture.CreateView(nil)
	if err != nil {
		a.Log.Errorf("CreateView failed: %v", err)
		return
	}
	defer view.Release()

	encoder, err := a.Device.CreateCommandEncoder(nil)
	if err != nil {
		a.Log.Errorf("CreateCommandEncoder failed: %v", err)
		return
	}
	defer encoder.Release()

	if err := a.Shape.Encode(encoder, view); err != nil {
		a.Log.Errorf("%v", err)
		return
	}

	cmd, err := encoder.Finish(nil)
	if err != nil {
		a.Log.Errorf("Encoder Finish failed: %v", err)
		return
	}
	defer cmd.Release()

	a.Queue.Submit(cmd)
	a.Surface.Present()

	if a.Profiler.FrameDone(glfw.GetTime()) && a.Debug {
		a.Log.Debugf("%s", a.Profiler)
	}
}

func (a *App) Release() {
	if a.Shape != nil {
		a.Shape.Release()
	}
	if a.Queue != nil {
		a.Queue.Release()
	}
	if a.Device != nil {
		a.Device.Release()
	}
	if a.Adapter != nil {
		a.Adapter.Release()
	}
	if a.Surface != nil {
		a.Surface.Release()
	}
	if a.Instance != nil {
		a.Instance.Release()
	}
}
