package mandel

import (
	"runtime"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// ErrWorkerDisconnected reports a worker that stopped before the
// termination handshake. A dropped row would break the written-exactly-
// once guarantee, so the whole run is abandoned rather than patched up.
var ErrWorkerDisconnected = errors.New("worker disconnected mid-run")

const idle = -1

// assignment is the dispatcher's private bookkeeping for one worker.
type assignment struct {
	*worker
	working int  // row currently held, or idle
	retired bool // termination marker sent, excluded from polling
}

// dispatcher owns the worker pool for one run. It is the only writer of
// the field: workers hand back owned row buffers over their result
// channels and never touch the field themselves.
type dispatcher struct {
	params   Params
	events   chan<- Event
	field    *Field
	workers  []assignment
	window   completionWindow
	nextRow  int
	logEvery int
}

func newDispatcher(p Params, cellFn CellFunc, events chan<- Event) *dispatcher {
	d := &dispatcher{
		params:   p,
		events:   events,
		workers:  make([]assignment, p.Workers),
		logEvery: p.GridSize / 100,
	}
	if d.logEvery == 0 {
		d.logEvery = 1
	}
	for i := range d.workers {
		d.workers[i] = assignment{worker: newWorker(i, p, cellFn), working: idle}
	}
	return d
}

// run drives the whole computation: spawn the workers, then alternate
// between draining finished rows and assigning new ones until the
// watermark reaches the grid size.
func (d *dispatcher) run(field *Field) error {
	d.field = field
	d.send(StateChange{0, Executing})

	g := new(errgroup.Group)
	for i := range d.workers {
		w := d.workers[i].worker
		g.Go(w.run)
	}

	for d.window.watermark() != d.params.GridSize {
		if err := d.drain(); err != nil {
			d.stopAll()
			if werr := g.Wait(); werr != nil {
				// The worker's own failure explains the disconnect.
				return werr
			}
			return err
		}
		d.assign()
		// Yield between polling passes so workers are not starved when
		// GOMAXPROCS is small.
		runtime.Gosched()
	}

	d.stopAll()
	if err := g.Wait(); err != nil {
		return err
	}
	d.send(StateChange{d.params.GridSize, Quitting})
	return nil
}

// drain polls every working worker's result channel without blocking.
// A finished row is copied into the field, then the completion window
// collapses any contiguous completed run, advancing the watermark.
func (d *dispatcher) drain() error {
	for i := range d.workers {
		w := &d.workers[i]
		if w.retired || w.working == idle {
			continue
		}
		select {
		case row, ok := <-w.results:
			if !ok {
				return errors.Wrapf(ErrWorkerDisconnected, "worker %d holding row %d", w.id, w.working)
			}
			d.field.setRow(w.working, row)
			d.window.mark(w.working)
			w.working = idle
		default:
		}
	}
	return nil
}

// assign hands the next unclaimed row to every idle worker, in strictly
// increasing row order. Once rows run out, idle workers are sent the
// termination marker and retired from polling.
func (d *dispatcher) assign() {
	for i := range d.workers {
		w := &d.workers[i]
		if w.retired || w.working != idle {
			continue
		}
		if d.nextRow == d.params.GridSize {
			w.jobs <- noMoreRows
			w.retired = true
			continue
		}
		w.jobs <- d.nextRow
		w.working = d.nextRow
		d.nextRow++
		if d.nextRow%d.logEvery == 0 {
			d.send(Progress{d.nextRow, d.window.watermark(), d.params.GridSize})
		}
	}
}

// stopAll retires every worker that has not been handed the termination
// marker yet. The jobs channels are buffered, so this cannot block even
// if a worker already died.
func (d *dispatcher) stopAll() {
	for i := range d.workers {
		w := &d.workers[i]
		if !w.retired {
			w.jobs <- noMoreRows
			w.retired = true
		}
	}
}

func (d *dispatcher) send(e Event) {
	if d.events != nil {
		d.events <- e
	}
}
