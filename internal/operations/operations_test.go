package operations

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJournalLIFO(t *testing.T) {
	var j Journal
	_, ok := j.Pop()
	assert.False(t, ok)

	j.Push(Operation{Action: InsertLine, Line: 0, Text: "a"})
	j.Push(Operation{Action: DeleteLine, Line: 3, Previous: "b"})
	assert.Equal(t, 2, j.Len())

	op, ok := j.Pop()
	assert.True(t, ok)
	assert.Equal(t, DeleteLine, op.Action)
	assert.Equal(t, "b", op.Previous)
	assert.Equal(t, 1, j.Len())
}
