package mandel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestField_StartsPending(t *testing.T) {
	f := NewField(4)

	assert.Equal(t, 4, f.Size())
	for y := 0; y != 4; y++ {
		for x := 0; x != 4; x++ {
			assert.False(t, f.At(x, y).Escaped())
		}
	}
}

func TestField_SetRowCopiesBuffer(t *testing.T) {
	f := NewField(3)
	row := []EscapeTime{1, 2, 3}
	f.setRow(1, row)

	// Mutating the worker's buffer after hand-off must not leak into
	// the field.
	row[0] = 99

	assert.Equal(t, []EscapeTime{1, 2, 3}, f.Row(1))
	assert.Equal(t, EscapeTime(2), f.At(1, 1))
}

func TestField_EmptyField(t *testing.T) {
	f := NewField(0)
	assert.Equal(t, 0, f.Size())
}
