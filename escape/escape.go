// Package escape provides the Mandelbrot escape-time function in the
// shape the engine expects. The engine itself never depends on it; any
// pure cell function can be injected instead.
package escape

import "uk.ac.bris.cs/mandelbrot/mandel"

// DefaultLimit is the iteration budget used by the command.
const DefaultLimit = 500

// Mandelbrot returns a cell function iterating z = z*z + c from zero.
// It reports the 1-based iteration at which |z|^2 first exceeds 4, or
// zero when the point stays bounded through the whole budget.
func Mandelbrot(limit int) mandel.CellFunc {
	return func(c complex128) mandel.EscapeTime {
		var z complex128
		for i := 1; i < limit; i++ {
			z = z*z + c
			if real(z)*real(z)+imag(z)*imag(z) > 4 {
				return mandel.EscapeTime(i)
			}
		}
		return 0
	}
}
