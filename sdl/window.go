// Package sdl displays a rendered field in a desktop window.
package sdl

import (
	"image"
	"unsafe"

	"github.com/pkg/errors"
	"github.com/veandco/go-sdl2/sdl"
)

// Window owns the SDL window, renderer and streaming texture used to
// show the finished image.
type Window struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture
}

// NewWindow initialises SDL and opens a window of the given size.
func NewWindow(title string, width, height int) (*Window, error) {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return nil, errors.Wrap(err, "initialising SDL")
	}
	window, err := sdl.CreateWindow(title,
		sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		int32(width), int32(height), sdl.WINDOW_SHOWN)
	if err != nil {
		return nil, errors.Wrap(err, "creating window")
	}
	renderer, err := sdl.CreateRenderer(window, -1,
		sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		return nil, errors.Wrap(err, "creating renderer")
	}
	texture, err := renderer.CreateTexture(uint32(sdl.PIXELFORMAT_RGBA32),
		sdl.TEXTUREACCESS_STREAMING, int32(width), int32(height))
	if err != nil {
		return nil, errors.Wrap(err, "creating texture")
	}
	return &Window{window: window, renderer: renderer, texture: texture}, nil
}

// Display uploads img to the texture and presents it.
func (w *Window) Display(img *image.RGBA) error {
	if err := w.texture.Update(nil, unsafe.Pointer(&img.Pix[0]), img.Stride); err != nil {
		return errors.Wrap(err, "updating texture")
	}
	if err := w.renderer.Copy(w.texture, nil, nil); err != nil {
		return errors.Wrap(err, "copying texture")
	}
	w.renderer.Present()
	return nil
}

// WaitForQuit blocks until the user closes the window or presses Escape.
func (w *Window) WaitForQuit() {
	for {
		event := sdl.WaitEvent()
		if event == nil {
			continue
		}
		switch e := event.(type) {
		case *sdl.QuitEvent:
			return
		case *sdl.KeyboardEvent:
			if e.Type == sdl.KEYDOWN && e.Keysym.Sym == sdl.K_ESCAPE {
				return
			}
		}
	}
}

// Destroy tears down the window and shuts SDL down.
func (w *Window) Destroy() {
	w.texture.Destroy()
	w.renderer.Destroy()
	w.window.Destroy()
	sdl.Quit()
}
