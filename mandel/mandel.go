package mandel

import "github.com/pkg/errors"

// EscapeTime is the number of iterations a point of the plane took to
// diverge, counted from 1. The zero value means the point stayed bounded
// within the iteration budget.
type EscapeTime uint32

// Escaped reports whether the point diverged.
func (t EscapeTime) Escaped() bool { return t != 0 }

// CellFunc computes the escape time for a single point of the complex
// plane. It must be pure and deterministic: the engine assumes two calls
// with the same argument return the same result, and that every call
// terminates.
type CellFunc func(c complex128) EscapeTime

// Params provides the details of how to run the computation.
type Params struct {
	Workers  int
	GridSize int
	// View rectangle: a square of half-width Radius centred on
	// (CenterR, CenterI). A zero Radius means 2, covering [-2,2]x[-2,2].
	CenterR float64
	CenterI float64
	Radius  float64
}

func (p Params) radius() float64 {
	if p.Radius == 0 {
		return 2
	}
	return p.Radius
}

// point maps a grid index to its point on the complex plane.
func (p Params) point(x, y int) complex128 {
	side := 2 * p.radius() / float64(p.GridSize)
	return complex(
		p.CenterR-p.radius()+float64(x)*side,
		p.CenterI-p.radius()+float64(y)*side,
	)
}

// Run computes the full escape-time field for p, farming rows out to
// p.Workers worker goroutines. It blocks until every row is written and
// returns the finished field, which is read-only from then on.
//
// Events sent on events are advisory progress reports; pass nil to
// disable them. Run closes the channel before returning.
func Run(p Params, cellFn CellFunc, events chan<- Event) (*Field, error) {
	if events != nil {
		defer close(events)
	}
	if p.Workers < 1 {
		return nil, errors.Errorf("worker count must be at least 1, got %d", p.Workers)
	}
	if p.GridSize < 0 {
		return nil, errors.Errorf("grid size must be non-negative, got %d", p.GridSize)
	}
	if cellFn == nil {
		return nil, errors.New("nil cell function")
	}
	field := NewField(p.GridSize)
	if p.GridSize == 0 {
		return field, nil
	}
	if err := newDispatcher(p, cellFn, events).run(field); err != nil {
		return nil, err
	}
	return field, nil
}
