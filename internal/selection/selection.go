package selection

import "strings"

// Selection is a range of whole lines between an anchor and the line the
// cursor moved to. Both ends are inclusive and may be given in any order.
type Selection struct {
	Anchor     int  // line where the selection started
	Active     int  // line the cursor extended it to
	IsSelected bool // true if selection is active
}

func (this *Selection) CleanSelection() {
	this.IsSelected = false
	this.Anchor, this.Active = -1, -1
}

// Extend starts a selection at from when none is active and moves its
// active end to to.
func (this *Selection) Extend(from, to int) {
	if !this.IsSelected || this.Anchor < 0 {
		this.Anchor = from
		this.IsSelected = true
	}
	this.Active = to
}

func (this *Selection) IsSelectionNonEmpty() bool {
	return this.IsSelected && this.Anchor >= 0 && this.Active >= 0
}

// Bounds returns the first and last selected line.
func (this *Selection) Bounds() (start, end int) {
	start, end = this.Anchor, this.Active
	if start > end { start, end = end, start }
	return start, end
}

func (this *Selection) IsUnderSelection(line int) bool {
	if !this.IsSelectionNonEmpty() { return false }
	start, end := this.Bounds()
	return line >= start && line <= end
}

// GetSelectedLines returns the selected line numbers that exist in a text of
// size lines.
func (this *Selection) GetSelectedLines(size int) []int {
	if !this.IsSelectionNonEmpty() { return nil }
	start, end := this.Bounds()
	if end >= size { end = size - 1 }

	var lines []int
	for i := start; i <= end; i++ {
		lines = append(lines, i)
	}
	return lines
}

func (this *Selection) GetSelectionString(content []string) string {
	var selected []string
	for _, line := range this.GetSelectedLines(len(content)) {
		selected = append(selected, content[line])
	}
	return strings.Join(selected, "\n")
}
