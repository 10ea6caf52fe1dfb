// Command mandelbrot computes a Mandelbrot escape-time field in parallel
// and displays it in a window, optionally writing it out as a PNG.
package main

import (
	"image/png"
	"log"
	"os"
	"runtime"
	"time"

	"github.com/spf13/pflag"

	"uk.ac.bris.cs/mandelbrot/escape"
	"uk.ac.bris.cs/mandelbrot/mandel"
	"uk.ac.bris.cs/mandelbrot/render"
	"uk.ac.bris.cs/mandelbrot/sdl"
)

func main() {
	var (
		size       = pflag.Int("size", 1024, "width and height of the grid in pixels")
		workers    = pflag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
		iterations = pflag.Int("iterations", escape.DefaultLimit, "iteration budget per point")
		centerR    = pflag.Float64("center-r", 0, "real coordinate of the view centre")
		centerI    = pflag.Float64("center-i", 0, "imaginary coordinate of the view centre")
		radius     = pflag.Float64("radius", 2, "half-width of the view square")
		density    = pflag.Int("density", 8, "colour density of the palette")
		out        = pflag.String("out", "", "write the rendered image to this PNG file")
		headless   = pflag.Bool("headless", false, "skip the display window")
	)
	pflag.Parse()

	p := mandel.Params{
		Workers:  *workers,
		GridSize: *size,
		CenterR:  *centerR,
		CenterI:  *centerI,
		Radius:   *radius,
	}

	events := make(chan mandel.Event)
	go func() {
		for event := range events {
			log.Print(event)
		}
	}()

	log.Printf("computing %dx%d field with %d workers", *size, *size, *workers)
	start := time.Now()
	field, err := mandel.Run(p, escape.Mandelbrot(*iterations), events)
	if err != nil {
		log.Fatalf("run failed: %v", err)
	}
	log.Printf("done in %v", time.Since(start))

	img := render.Image(field, render.MakePalette(), *density)

	if *out != "" {
		file, err := os.Create(*out)
		if err != nil {
			log.Fatal(err)
		}
		if err := png.Encode(file, img); err != nil {
			log.Fatal(err)
		}
		if err := file.Close(); err != nil {
			log.Fatal(err)
		}
		log.Printf("image written to %s", *out)
	}

	if *headless {
		return
	}
	window, err := sdl.NewWindow("Mandelbrot", *size, *size)
	if err != nil {
		log.Fatalf("opening window: %v", err)
	}
	defer window.Destroy()
	if err := window.Display(img); err != nil {
		log.Fatalf("displaying image: %v", err)
	}
	window.WaitForQuit()
}
