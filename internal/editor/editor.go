// Package editor implements a line editor whose document is a
// sequence.Sequence of lines and whose cursor is a line rank.
package editor

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	. "seqedit/internal/logger"
	. "seqedit/internal/operations"
	"seqedit/internal/search"
	"seqedit/internal/sequence"

	"github.com/sanity-io/litter"
)

var (
	ErrOutOfRange    = sequence.ErrOutOfRange
	ErrNoMark        = errors.New("no such mark")
	ErrNothingToUndo = errors.New("nothing to undo")
	ErrNotFound      = errors.New("pattern not found")
)

// TextEditor holds lines of text and a cursor. The cursor starts at line -1,
// just before the first line. All methods are safe for concurrent use.
type TextEditor struct {
	mu       sync.Mutex
	lines    *sequence.Sequence[string]
	capacity int
	cursor   int
	marks    map[string]sequence.Position[string]
	undo     Journal
}

func New() *TextEditor { return NewWithCapacity(0) }

// NewWithCapacity sizes the line store up front; the store still grows.
func NewWithCapacity(capacity int) *TextEditor {
	return &TextEditor{
		lines:    sequence.NewWithCapacity[string](capacity),
		capacity: capacity,
		cursor:   -1,
		marks:    map[string]sequence.Position[string]{},
	}
}

// IsEmpty reports whether there is no text; the cursor is then at line -1.
func (e *TextEditor) IsEmpty() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.lines.IsEmpty()
}

func (e *TextEditor) Size() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.lines.Size()
}

// IsCursorAtLastLine is true on the last line and for an empty text.
func (e *TextEditor) IsCursorAtLastLine() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.atLastLine()
}

func (e *TextEditor) atLastLine() bool {
	return e.lines.IsEmpty() || e.cursor == e.lines.Size()-1
}

func (e *TextEditor) CursorLineNum() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.cursor
}

// CursorDown moves to the next line; it fails on the last line.
func (e *TextEditor) CursorDown() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.cursorDown()
}

func (e *TextEditor) cursorDown() error {
	if e.cursor >= e.lines.Size()-1 {
		return fmt.Errorf("cursor down from line %d of %d: %w", e.cursor, e.lines.Size(), ErrOutOfRange)
	}
	e.cursor++
	return nil
}

// CursorUp moves to the previous line; it fails on the first line.
func (e *TextEditor) CursorUp() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.cursorUp()
}

func (e *TextEditor) cursorUp() error {
	if e.cursor <= 0 {
		return fmt.Errorf("cursor up from line %d: %w", e.cursor, ErrOutOfRange)
	}
	e.cursor--
	return nil
}

// MoveCursorToLine places the cursor on line, which must be in [0, Size).
func (e *TextEditor) MoveCursorToLine(line int) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.moveCursorToLine(line)
}

func (e *TextEditor) moveCursorToLine(line int) error {
	if line < 0 || line >= e.lines.Size() {
		return fmt.Errorf("move cursor to line %d of %d: %w", line, e.lines.Size(), ErrOutOfRange)
	}
	e.cursor = line
	return nil
}

// InsertAfterCursor adds a line below the cursor and moves the cursor onto it.
func (e *TextEditor) InsertAfterCursor(text string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.insertAfterCursor(text)
}

func (e *TextEditor) insertAfterCursor(text string) error {
	var p sequence.Position[string]
	if e.cursor < 0 {
		p = e.lines.AddFirst(text)
	} else {
		at, err := e.lines.AtIndex(e.cursor)
		if err != nil { return err }
		if p, err = e.lines.AddAfter(at, text); err != nil { return err }
	}
	return e.landOn(p, Operation{Action: InsertLine, Text: text, Cursor: e.cursor})
}

// InsertBeforeCursor adds a line above the cursor and moves the cursor onto
// it. With the cursor at line -1 the line becomes the first one.
func (e *TextEditor) InsertBeforeCursor(text string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.insertBeforeCursor(text)
}

func (e *TextEditor) insertBeforeCursor(text string) error {
	var p sequence.Position[string]
	if e.cursor < 0 {
		p = e.lines.AddFirst(text)
	} else {
		at, err := e.lines.AtIndex(e.cursor)
		if err != nil { return err }
		if p, err = e.lines.AddBefore(at, text); err != nil { return err }
	}
	return e.landOn(p, Operation{Action: InsertLine, Text: text, Cursor: e.cursor})
}

// landOn moves the cursor to a freshly inserted line and journals the insert.
func (e *TextEditor) landOn(p sequence.Position[string], op Operation) error {
	rank, err := e.lines.IndexOf(p)
	if err != nil { return err }
	op.Line = rank
	e.undo.Push(op)
	e.cursor = rank
	return nil
}

// GetAtCursor returns the line under the cursor.
func (e *TextEditor) GetAtCursor() (string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.lines.Get(e.cursor)
}

// ReplaceAtCursor swaps the text of the cursor line; the cursor stays.
func (e *TextEditor) ReplaceAtCursor(text string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.replaceAtCursor(text)
}

func (e *TextEditor) replaceAtCursor(text string) error {
	p, err := e.lines.AtIndex(e.cursor)
	if err != nil { return err }
	previous, err := e.lines.SetPosition(p, text)
	if err != nil { return err }
	e.undo.Push(Operation{Action: ReplaceLine, Line: e.cursor, Text: text, Previous: previous, Cursor: e.cursor})
	return nil
}

// RemoveAtCursor deletes the cursor line. The cursor then sits on the line
// that followed, or on the new last line if the removed one was last.
func (e *TextEditor) RemoveAtCursor() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.removeAtCursor()
}

func (e *TextEditor) removeAtCursor() error {
	wasLast := e.cursor == e.lines.Size()-1
	previous, err := e.lines.Remove(e.cursor)
	if err != nil { return err }
	e.undo.Push(Operation{Action: DeleteLine, Line: e.cursor, Previous: previous, Cursor: e.cursor})
	if wasLast { e.cursor = e.lines.Size() - 1 }
	e.pruneMarks()
	return nil
}

// String joins the lines with newlines, trimming surrounding whitespace.
func (e *TextEditor) String() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return strings.TrimSpace(strings.Join(e.lines.Elements(), "\n"))
}

// Lines returns a copy of the document.
func (e *TextEditor) Lines() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.lines.Elements()
}

// Load replaces the whole document. The cursor keeps its line number,
// clamped to the new text; marks are dropped. Load can be undone.
func (e *TextEditor) Load(lines []string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.undo.Push(Operation{Action: Reload, Lines: e.lines.Elements(), Cursor: e.cursor})
	e.load(lines)
	Log.Info("loaded", fmt.Sprint(len(lines)), "lines")
}

func (e *TextEditor) load(lines []string) {
	capacity := e.capacity
	if len(lines) > capacity { capacity = len(lines) }
	e.lines = sequence.NewWithCapacity[string](capacity)
	for _, line := range lines {
		e.lines.AddLast(line)
	}
	if e.cursor > e.lines.Size()-1 { e.cursor = e.lines.Size() - 1 }
	e.marks = map[string]sequence.Position[string]{}
}

// SetMark remembers the cursor line under name. The mark follows the line
// through later inserts and removals elsewhere.
func (e *TextEditor) SetMark(name string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	p, err := e.lines.AtIndex(e.cursor)
	if err != nil { return err }
	e.marks[name] = p
	return nil
}

// JumpToMark moves the cursor to the current line number of a mark.
func (e *TextEditor) JumpToMark(name string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.jumpToMark(name)
}

func (e *TextEditor) jumpToMark(name string) error {
	p, ok := e.marks[name]
	if !ok { return fmt.Errorf("mark %q: %w", name, ErrNoMark) }
	rank, err := e.lines.IndexOf(p)
	if err != nil {
		delete(e.marks, name)
		return fmt.Errorf("mark %q: %w", name, err)
	}
	e.cursor = rank
	return nil
}

// MarkLine returns the current line number of a mark.
func (e *TextEditor) MarkLine(name string) (int, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	p, ok := e.marks[name]
	if !ok { return -1, fmt.Errorf("mark %q: %w", name, ErrNoMark) }
	return e.lines.IndexOf(p)
}

// pruneMarks forgets marks whose line has been removed.
func (e *TextEditor) pruneMarks() {
	for name, p := range e.marks {
		if _, err := e.lines.IndexOf(p); errors.Is(err, sequence.ErrInvalidHandle) {
			delete(e.marks, name)
		}
	}
}

// Undo reverts the most recent edit and restores the cursor it had.
func (e *TextEditor) Undo() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.undoLast()
}

func (e *TextEditor) undoLast() error {
	op, ok := e.undo.Pop()
	if !ok { return ErrNothingToUndo }

	var err error
	switch op.Action {
	case InsertLine:
		_, err = e.lines.Remove(op.Line)
		e.pruneMarks()
	case ReplaceLine:
		_, err = e.lines.Set(op.Line, op.Previous)
	case DeleteLine:
		err = e.lines.Add(op.Line, op.Previous)
	case Reload:
		e.load(op.Lines)
	}
	if err != nil { return fmt.Errorf("undo %s at line %d: %w", op.Action, op.Line, err) }

	e.cursor = op.Cursor
	Log.Info("undo", string(op.Action), fmt.Sprint(op.Line))
	return nil
}

func (e *TextEditor) UndoDepth() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.undo.Len()
}

// Find returns every match of pattern in the document.
func (e *TextEditor) Find(pattern string) []search.SearchResult {
	e.mu.Lock()
	defer e.mu.Unlock()
	return search.Search(e.lines.Elements(), pattern)
}

// FindNext moves the cursor to the next line below it containing pattern.
func (e *TextEditor) FindNext(pattern string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.findNext(pattern)
}

func (e *TextEditor) findNext(pattern string) error {
	line, _ := search.SearchDown(e.lines.Elements(), pattern, e.cursor+1, 0)
	if line == -1 { return fmt.Errorf("%q: %w", pattern, ErrNotFound) }
	e.cursor = line
	return nil
}

// Render shows the document as (rank,line) pairs, e.g. {(0,first),(1,second)}.
func (e *TextEditor) Render() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.lines.String()
}

// MarshalJSON encodes the document as the (rank, line) pairs of its sequence.
func (e *TextEditor) MarshalJSON() ([]byte, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.lines.MarshalJSON()
}

type dump struct {
	Cursor int
	Size   int
	Lines  []sequence.Entry[string]
	Marks  map[string]int
	Undo   int
}

// Dump renders the editor state for debugging.
func (e *TextEditor) Dump() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	marks := map[string]int{}
	for name, p := range e.marks {
		rank, _ := e.lines.IndexOf(p)
		marks[name] = rank
	}
	state := dump{Cursor: e.cursor, Size: e.lines.Size(), Lines: e.lines.Snapshot(), Marks: marks, Undo: e.undo.Len()}
	return litter.Options{StripPackageNames: true}.Sdump(state)
}
