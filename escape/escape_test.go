package escape

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"uk.ac.bris.cs/mandelbrot/mandel"
)

func TestMandelbrot_KnownPoints(t *testing.T) {
	cellFn := Mandelbrot(DefaultLimit)

	// The origin and -1 are in the set.
	assert.False(t, cellFn(complex(0, 0)).Escaped())
	assert.False(t, cellFn(complex(-1, 0)).Escaped())

	// 3 diverges on the first iteration, 1+1i on the second.
	assert.Equal(t, mandel.EscapeTime(1), cellFn(complex(3, 0)))
	assert.Equal(t, mandel.EscapeTime(2), cellFn(complex(1, 1)))
}

func TestMandelbrot_EscapeTimeBelowLimit(t *testing.T) {
	limit := 50
	cellFn := Mandelbrot(limit)

	for _, c := range []complex128{
		complex(0.3, 0.5),
		complex(-0.5, 0.6),
		complex(0.25, 0.75),
	} {
		if escaped := cellFn(c); escaped.Escaped() {
			assert.Less(t, int(escaped), limit)
		}
	}
}

func TestMandelbrot_Deterministic(t *testing.T) {
	cellFn := Mandelbrot(DefaultLimit)

	for _, c := range []complex128{
		complex(0, 0),
		complex(-0.75, 0.1),
		complex(0.3, 0.5),
		complex(-2, -2),
		complex(2, 2),
	} {
		assert.Equal(t, cellFn(c), cellFn(c), "cell function must be pure at %v", c)
	}
}

func TestMandelbrot_TinyBudgetNeverEscapes(t *testing.T) {
	// A budget of 1 performs no iterations at all, so every point is
	// reported as bounded.
	cellFn := Mandelbrot(1)
	assert.False(t, cellFn(complex(3, 0)).Escaped())
}
