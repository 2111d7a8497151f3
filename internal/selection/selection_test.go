package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmptySelection(t *testing.T) {
	s := Selection{}
	s.CleanSelection()
	assert.False(t, s.IsSelectionNonEmpty())
	assert.False(t, s.IsUnderSelection(0))
	assert.Nil(t, s.GetSelectedLines(5))
	assert.Equal(t, "", s.GetSelectionString([]string{"a"}))
}

func TestExtend(t *testing.T) {
	s := Selection{}
	s.CleanSelection()

	s.Extend(2, 3)
	s.Extend(3, 4)
	assert.Equal(t, 2, s.Anchor)
	assert.Equal(t, 4, s.Active)
	assert.Equal(t, []int{2, 3, 4}, s.GetSelectedLines(10))

	// moving back past the anchor flips the range
	s.Extend(4, 0)
	start, end := s.Bounds()
	assert.Equal(t, 0, start)
	assert.Equal(t, 2, end)
	assert.True(t, s.IsUnderSelection(1))
	assert.False(t, s.IsUnderSelection(3))
}

func TestSelectionString(t *testing.T) {
	content := []string{"a", "b", "c", "d"}
	s := Selection{}
	s.CleanSelection()
	s.Extend(1, 2)
	assert.Equal(t, "b\nc", s.GetSelectionString(content))

	// lines beyond the text are ignored
	s.Extend(2, 9)
	assert.Equal(t, "b\nc\nd", s.GetSelectionString(content))
}
