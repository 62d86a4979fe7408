// Package phonglight renders a single shape lit by a Phong light on WebGPU.
//
// CreateShapeWithLight owns the whole session: it opens a GLFW window,
// brings up the GPU pipeline and drives frames until the window closes.
package phonglight

import (
	"fmt"
	"runtime"

	"github.com/gekko3d/phonglight/rt/app"
	"github.com/gekko3d/phonglight/rt/core"
	"github.com/gekko3d/phonglight/rt/geometry"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/google/uuid"
)

// Options configure the window and logging of a session. Zero values are
// replaced by the defaults in withDefaults.
type Options struct {
	Width  int
	Height int
	Title  string
	Debug  bool
	Logger Logger
}

func (o Options) withDefaults() Options {
	if o.Width <= 0 {
		o.Width = 1280
	}
	if o.Height <= 0 {
		o.Height = 720
	}
	if o.Title == "" {
		o.Title = "Phong Light"
	}
	return o
}

// sessionPrefix tags every log line of one render session.
func sessionPrefix(id string) string {
	return "phonglight-" + id[:8]
}

// CreateShapeWithLight renders mesh with the given light until the window is
// closed. With isAnimation set the shape spins in front of a fixed camera;
// otherwise the shape is still and the camera orbits under mouse control.
// It must be called from the main goroutine.
func CreateShapeWithLight(mesh geometry.Mesh, light core.LightInputs, isAnimation bool, opts Options) error {
	opts = opts.withDefaults()

	if err := mesh.Validate(); err != nil {
		return fmt.Errorf("invalid mesh: %w", err)
	}

	log := opts.Logger
	if log == nil {
		log = NewDefaultLogger(sessionPrefix(uuid.NewString()), opts.Debug)
	}
	if d, ok := log.(*DefaultLogger); ok {
		defer d.Sync()
	}

	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)
	glfw.WindowHint(glfw.Resizable, glfw.True)
	window, err := glfw.CreateWindow(opts.Width, opts.Height, opts.Title, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	defer window.Destroy()

	application := app.NewApp(window, mesh, light, isAnimation, log)
	application.Debug = log.DebugEnabled()
	defer application.Release()
	if err := application.Init(); err != nil {
		return fmt.Errorf("init renderer: %w", err)
	}
	log.Infof("session started: %d vertices, animation=%v", mesh.VertexCount(), isAnimation)

	bindInput(window, application)

	for !window.ShouldClose() {
		glfw.PollEvents()
		application.Update()
		application.Render()
	}
	log.Infof("session closed")
	return nil
}

func bindInput(window *glfw.Window, application *app.App) {
	window.SetFramebufferSizeCallback(func(w *glfw.Window, width, height int) {
		application.Resize(width, height)
	})

	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		if key == glfw.KeyEscape && action == glfw.Press {
			w.SetShouldClose(true)
		}
	})

	// The camera only exists in interactive mode.
	camera := application.Camera()
	if camera == nil {
		return
	}

	window.SetCursorPosCallback(func(w *glfw.Window, xpos, ypos float64) {
		camera.MoveCursor(xpos, ypos)
	})

	window.SetMouseButtonCallback(func(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		var b core.MouseButton
		switch button {
		case glfw.MouseButtonLeft:
			b = core.MouseButtonLeft
		case glfw.MouseButtonRight:
			b = core.MouseButtonRight
		case glfw.MouseButtonMiddle:
			b = core.MouseButtonMiddle
		default:
			return
		}
		if action == glfw.Press {
			x, y := w.GetCursorPos()
			camera.MoveCursor(x, y)
		}
		camera.SetButton(b, action == glfw.Press)
	})

	window.SetScrollCallback(func(w *glfw.Window, xoff, yoff float64) {
		camera.Scroll(yoff)
	})
}
