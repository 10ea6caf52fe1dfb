package mandel

// completionWindow records which rows at or above the watermark have
// completed. Rows below base are guaranteed complete and their entries
// have been discarded, so the live window only spans rows still in
// flight or finished out of order, not the whole grid.
type completionWindow struct {
	base      int    // smallest row index not yet known complete
	completed []bool // completion flags for rows base, base+1, ...
}

// mark records row as complete, then collapses the contiguous completed
// run at the front of the window, advancing the watermark one row per
// popped entry.
func (w *completionWindow) mark(row int) {
	for row-w.base >= len(w.completed) {
		w.completed = append(w.completed, false)
	}
	w.completed[row-w.base] = true
	for len(w.completed) != 0 && w.completed[0] {
		w.completed = w.completed[1:]
		w.base++
	}
}

// watermark returns the smallest row index not yet complete. Every row
// below it has been written to the field.
func (w *completionWindow) watermark() int {
	return w.base
}
