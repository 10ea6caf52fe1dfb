package mandel

// Field is the full NxN grid of escape times. It is written only by the
// dispatcher while a run is in progress and becomes read-only once Run
// returns. A row slot is written at most once; an unwritten slot holds
// zero values, meaning no point in it has been computed yet.
type Field struct {
	size int
	rows [][]EscapeTime
}

// NewField makes a field with every row pending.
func NewField(size int) *Field {
	field := &Field{
		size: size,
		rows: make([][]EscapeTime, size),
	}
	backing := make([]EscapeTime, size*size)
	for y := 0; y != size; y++ {
		field.rows[y] = backing[0:size]
		backing = backing[size:]
	}
	return field
}

// Size returns the grid size N of the NxN field.
func (f *Field) Size() int { return f.size }

// At returns the escape time computed for grid point (x, y).
func (f *Field) At(x, y int) EscapeTime { return f.rows[y][x] }

// Row returns the y-th row. The caller must not modify it.
func (f *Field) Row(y int) []EscapeTime { return f.rows[y] }

// setRow copies a completed row buffer into its slot.
func (f *Field) setRow(y int, row []EscapeTime) {
	copy(f.rows[y], row)
}
