package ui

import (
	. "seqedit/internal/logger"
	"seqedit/internal/search"

	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	. "github.com/gdamore/tcell"
)

func (e *Editor) HandleKeyboard(ev *EventKey) {
	e.Status = ""
	if e.IsCommand { e.HandleCommandKey(ev); return }

	if ev.Modifiers()&ModShift != 0 && (ev.Key() == KeyUp || ev.Key() == KeyDown) {
		e.OnSelect(ev.Key())
		return
	}
	if ev.Key() != KeyCtrlK && ev.Key() != KeyCtrlD { defer e.Selection.CleanSelection() }

	switch ev.Key() {
	case KeyCtrlQ: e.quit = true
	case KeyEscape: e.IsCommand = true; e.Command = e.Command[:0]
	case KeyUp: e.Doc.CursorUp()
	case KeyDown: e.Doc.CursorDown()
	case KeyPgUp: e.OnPage(-1)
	case KeyPgDn: e.OnPage(1)
	case KeyEnter: e.edit(e.Doc.InsertAfterCursor(""))
	case KeyCtrlD: e.OnDelete()
	case KeyCtrlZ: e.edit(e.Doc.Undo())
	case KeyCtrlK: e.OnCopy()
	case KeyCtrlS: e.OnSave()
	case KeyBackspace, KeyBackspace2: e.OnBackspace()
	case KeyRune: e.AddChar(ev.Rune())
	}
}

func (e *Editor) HandleCommandKey(ev *EventKey) {
	switch ev.Key() {
	case KeyEscape:
		e.IsCommand = false
	case KeyEnter:
		e.IsCommand = false
		command := strings.TrimSpace(string(e.Command))
		err := e.Doc.Apply(command)
		if err != nil { e.Status = err.Error(); return }
		Log.Info("command:", command)

		verb, arg, _ := strings.Cut(command, " ")
		switch verb {
		case "find":
			e.Matches = search.MatchedLines(e.Doc.Find(arg))
			e.Status = fmt.Sprintf("%d matching lines", e.Matches.Cardinality())
		case "goto", "down", "up", "mark", "jump", "":
		default:
			e.edit(nil)
		}
	case KeyBackspace, KeyBackspace2:
		if len(e.Command) > 0 { e.Command = e.Command[:len(e.Command)-1] }
	case KeyRune:
		e.Command = append(e.Command, ev.Rune())
	}
}

// AddChar appends ch to the cursor line, creating a line in an empty text.
func (e *Editor) AddChar(ch rune) {
	line, err := e.Doc.GetAtCursor()
	if err != nil { e.edit(e.Doc.InsertAfterCursor(string(ch))); return }
	e.edit(e.Doc.ReplaceAtCursor(line + string(ch)))
}

func (e *Editor) OnBackspace() {
	line, err := e.Doc.GetAtCursor()
	if err != nil { return }
	runes := []rune(line)
	if len(runes) == 0 { e.edit(e.Doc.RemoveAtCursor()); return }
	e.edit(e.Doc.ReplaceAtCursor(string(runes[:len(runes)-1])))
}

func (e *Editor) OnPage(direction int) {
	rows := e.ROWS - 1
	if rows < 1 { rows = 1 }
	target := e.Doc.CursorLineNum() + direction*rows
	if last := e.Doc.Size() - 1; target > last { target = last }
	if target < 0 { target = 0 }
	e.Doc.MoveCursorToLine(target)
}

// OnSelect moves the cursor one line and extends the line selection with it.
func (e *Editor) OnSelect(key Key) {
	from := e.Doc.CursorLineNum()
	if from < 0 { return }
	var err error
	if key == KeyUp { err = e.Doc.CursorUp() } else { err = e.Doc.CursorDown() }
	if err != nil && e.Selection.IsSelected { return }
	e.Selection.Extend(from, e.Doc.CursorLineNum())
}

// OnDelete removes the selected lines, or the cursor line without a selection.
func (e *Editor) OnDelete() {
	if !e.Selection.IsSelectionNonEmpty() { e.edit(e.Doc.RemoveAtCursor()); return }

	lines := e.Selection.GetSelectedLines(e.Doc.Size())
	e.Selection.CleanSelection()
	if len(lines) == 0 { return }
	if err := e.Doc.MoveCursorToLine(lines[0]); err != nil { e.Status = err.Error(); return }
	for range lines {
		e.edit(e.Doc.RemoveAtCursor())
	}
}

func (e *Editor) OnCopy() {
	text, err := e.Doc.GetAtCursor()
	if err != nil { return }
	if e.Selection.IsSelectionNonEmpty() { text = e.Selection.GetSelectionString(e.Doc.Lines()) }
	if err := clipboard.WriteAll(text); err != nil {
		e.Status = "clipboard: " + err.Error()
		return
	}
	e.Status = "copied"
}

func (e *Editor) OnSave() {
	if e.Filename == "" { e.Status = "no file name"; return }
	if err := e.Doc.Save(e.Filename); err != nil { e.Status = err.Error(); return }
	if e.Watcher != nil { e.Watcher.UpdateStats() }
	e.IsContentChanged = false
	e.Baseline = e.Doc.Lines()
	e.Status = "saved"
}

func (e *Editor) edit(err error) {
	if err != nil { e.Status = err.Error(); return }
	e.IsContentChanged = true
	e.Matches = nil
}
