package main

import (
	"fmt"
	"testing"

	"uk.ac.bris.cs/mandelbrot/escape"
	"uk.ac.bris.cs/mandelbrot/mandel"
)

func Benchmark_128(b *testing.B) {

	for workers := 1; workers <= 16; workers++ {
		p := mandel.Params{Workers: workers, GridSize: 128}
		name := fmt.Sprintf("%dx%d-%d", p.GridSize, p.GridSize, workers)
		b.Run(name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if _, err := mandel.Run(p, escape.Mandelbrot(escape.DefaultLimit), nil); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func Benchmark_512(b *testing.B) {

	for workers := 1; workers <= 16; workers++ {
		p := mandel.Params{Workers: workers, GridSize: 512}
		name := fmt.Sprintf("%dx%d-%d", p.GridSize, p.GridSize, workers)
		b.Run(name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if _, err := mandel.Run(p, escape.Mandelbrot(escape.DefaultLimit), nil); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
