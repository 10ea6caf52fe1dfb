package mandel

import "github.com/pkg/errors"

// noMoreRows is the termination marker sent to a worker once the grid is
// exhausted. Closing the jobs channel instead would be indistinguishable
// from an abnormal shutdown, so termination is an explicit handshake.
const noMoreRows = -1

// worker is a single long-lived computation goroutine. It receives row
// indices on jobs, computes one full row per index and sends the buffer
// on results. Workers keep no state between rows, so any assignment
// order is valid.
type worker struct {
	id      int
	params  Params
	cellFn  CellFunc
	jobs    chan int
	results chan []EscapeTime
}

func newWorker(id int, p Params, cellFn CellFunc) *worker {
	// Capacity 1 on both channels: the dispatcher can hand over a row or
	// the termination marker without waiting on the worker, and the
	// worker can publish a finished row without waiting on the next
	// polling pass.
	return &worker{
		id:      id,
		params:  p,
		cellFn:  cellFn,
		jobs:    make(chan int, 1),
		results: make(chan []EscapeTime, 1),
	}
}

// run is the worker loop. The results channel is closed on the way out
// whatever the cause; after a clean termination handshake the dispatcher
// has stopped polling it, so the close is only ever observed when the
// worker dies early, which the dispatcher treats as fatal.
func (w *worker) run() (err error) {
	defer close(w.results)
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("worker %d: row computation panicked: %v", w.id, r)
		}
	}()
	for {
		y := <-w.jobs
		if y == noMoreRows {
			return nil
		}
		row := make([]EscapeTime, w.params.GridSize)
		for x := range row {
			row[x] = w.cellFn(w.params.point(x, y))
		}
		w.results <- row
	}
}
