//go:build js

package pane

import (
	"log/slog"
	"syscall/js"

	"github.com/oliverbestmann/webgpu/wgpu"
)

type jsWindow struct {
	canvas js.Value
}

func NewWindow(width, height int, title string) (Window, error) {
	document := js.Global().Get("document")
	canvas := document.Call("createElement", "canvas")
	document.Get("body").Call("appendChild", canvas)

	document.Set("title", title)

	canvas.Set("style", "width:100vw; height:100vh")

	return &jsWindow{canvas: canvas}, nil
}

func (g *jsWindow) GetSize() (uint32, uint32) {
	ratio := js.Global().Get("devicePixelRatio").Float()

	vv := js.Global().Get("visualViewport")
	width := vv.Get("width").Float()
	height := vv.Get("height").Float()
	return uint32(width * ratio), uint32(height * ratio)
}

func (g *jsWindow) SurfaceDescriptor() *wgpu.SurfaceDescriptor {
	return &wgpu.SurfaceDescriptor{Canvas: g.canvas}
}

func (g *jsWindow) Run(render func() error) error {
	helper := js.Global().Call("eval", `({
        async run(runOnce) {
            while (runOnce()) {
                await new Promise(resolve => requestAnimationFrame(resolve))
            }
        }
	})`)

	renderWrapper := func(this js.Value, args []js.Value) any {
		resizeCanvas(g.canvas)

		if err := render(); err != nil {
			slog.Error("Stopping render loop", slog.Any("error", err))
			return false
		}

		return true
	}

	fn := js.FuncOf(renderWrapper)
	defer fn.Release()

	helper.Call("run", fn)

	// the browser owns the loop from here on
	select {}
}

func (g *jsWindow) Terminate() {
	// do nothing
}

func resizeCanvas(canvas js.Value) {
	vv := js.Global().Get("visualViewport")
	viewWidth := vv.Get("width").Float()
	viewHeight := vv.Get("height").Float()

	ratio := js.Global().Get("devicePixelRatio").Float()

	canvas.Set("width", viewWidth*ratio)
	canvas.Set("height", viewHeight*ratio)
}
