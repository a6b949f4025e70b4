//go:build !js

package pane

import (
	"fmt"
	"os"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/oliverbestmann/webgpu/wgpu"
	"github.com/oliverbestmann/webgpu/wgpuglfw"
	"github.com/pkg/profile"
)

type glfwWindow struct {
	win  *glfw.Window
	prof interface{ Stop() }
}

func NewWindow(width, height int, title string) (Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("initialize glfw: %w", err)
	}

	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)

	window, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("create window: %w", err)
	}

	w := &glfwWindow{win: window}

	if os.Getenv("PANE_PROFILE") == "1" {
		w.prof = profile.Start(profile.CPUProfile)
	}

	return w, nil
}

func (g *glfwWindow) GetSize() (uint32, uint32) {
	// framebuffer size, GetSize reports screen coordinates which
	// differ on hidpi displays
	width, height := g.win.GetFramebufferSize()
	return uint32(width), uint32(height)
}

func (g *glfwWindow) SurfaceDescriptor() *wgpu.SurfaceDescriptor {
	return wgpuglfw.GetSurfaceDescriptor(g.win)
}

func (g *glfwWindow) Run(render func() error) error {
	for !g.win.ShouldClose() {
		glfw.PollEvents()

		if err := render(); err != nil {
			return err
		}
	}

	return nil
}

func (g *glfwWindow) Terminate() {
	if g.prof != nil {
		g.prof.Stop()
	}

	g.win.Destroy()
	glfw.Terminate()
}
