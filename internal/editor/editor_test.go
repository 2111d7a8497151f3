package editor

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	seqio "seqedit/internal/io"
	"seqedit/internal/sequence"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEditor(t *testing.T, lines ...string) *TextEditor {
	t.Helper()
	e := New()
	for _, line := range lines {
		require.NoError(t, e.InsertAfterCursor(line))
	}
	return e
}

func getText(t *testing.T, name string) string {
	t.Helper()
	lines, err := seqio.ReadResource(os.DirFS("testdata"), name, seqio.DefaultScrub)
	require.NoError(t, err)
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

func TestEmptyEditor(t *testing.T) {
	e := New()
	assert.True(t, e.IsEmpty())
	assert.Equal(t, 0, e.Size())
	assert.Equal(t, -1, e.CursorLineNum())
	assert.True(t, e.IsCursorAtLastLine())

	_, err := e.GetAtCursor()
	assert.ErrorIs(t, err, ErrOutOfRange)
	assert.ErrorIs(t, e.RemoveAtCursor(), ErrOutOfRange)
	assert.ErrorIs(t, e.ReplaceAtCursor("x"), ErrOutOfRange)
	assert.ErrorIs(t, e.CursorDown(), ErrOutOfRange)
	assert.ErrorIs(t, e.CursorUp(), ErrOutOfRange)
}

func TestInsertAfterCursorMovesCursor(t *testing.T) {
	e := newEditor(t, "one", "two", "three")
	assert.Equal(t, 2, e.CursorLineNum())
	assert.True(t, e.IsCursorAtLastLine())

	require.NoError(t, e.MoveCursorToLine(0))
	require.NoError(t, e.InsertAfterCursor("one and a half"))
	assert.Equal(t, 1, e.CursorLineNum())
	assert.Equal(t, []string{"one", "one and a half", "two", "three"}, e.Lines())
}

func TestInsertBeforeCursorLandsOnNewLine(t *testing.T) {
	e := New()
	require.NoError(t, e.InsertBeforeCursor("b"))
	assert.Equal(t, 0, e.CursorLineNum())

	require.NoError(t, e.InsertBeforeCursor("a"))
	assert.Equal(t, 0, e.CursorLineNum())
	got, err := e.GetAtCursor()
	require.NoError(t, err)
	assert.Equal(t, "a", got)

	require.NoError(t, e.MoveCursorToLine(1))
	require.NoError(t, e.InsertBeforeCursor("a2"))
	assert.Equal(t, 1, e.CursorLineNum())
	assert.Equal(t, []string{"a", "a2", "b"}, e.Lines())
}

func TestCursorMovement(t *testing.T) {
	e := newEditor(t, "a", "b", "c")

	assert.ErrorIs(t, e.CursorDown(), ErrOutOfRange)
	require.NoError(t, e.CursorUp())
	require.NoError(t, e.CursorUp())
	assert.Equal(t, 0, e.CursorLineNum())
	assert.ErrorIs(t, e.CursorUp(), ErrOutOfRange)

	assert.ErrorIs(t, e.MoveCursorToLine(3), ErrOutOfRange)
	assert.ErrorIs(t, e.MoveCursorToLine(-1), ErrOutOfRange)
	assert.Equal(t, 0, e.CursorLineNum())
}

func TestRemoveAtCursor(t *testing.T) {
	e := newEditor(t, "a", "b", "c")

	require.NoError(t, e.MoveCursorToLine(1))
	require.NoError(t, e.RemoveAtCursor())
	assert.Equal(t, 1, e.CursorLineNum(), "cursor moves onto the following line")
	got, _ := e.GetAtCursor()
	assert.Equal(t, "c", got)

	require.NoError(t, e.RemoveAtCursor())
	assert.Equal(t, 0, e.CursorLineNum(), "removing the last line moves to the new last line")

	require.NoError(t, e.RemoveAtCursor())
	assert.True(t, e.IsEmpty())
	assert.Equal(t, -1, e.CursorLineNum())
}

func TestReplaceAtCursor(t *testing.T) {
	e := newEditor(t, "a", "b")
	require.NoError(t, e.ReplaceAtCursor("B"))
	assert.Equal(t, 1, e.CursorLineNum())
	assert.Equal(t, "a\nB", e.String())
}

func TestEditorDocument(t *testing.T) {
	initial, err := seqio.ReadResource(os.DirFS("testdata"), "initial.txt", seqio.DefaultScrub)
	require.NoError(t, err)

	editor := New()
	for _, line := range initial {
		require.NoError(t, editor.InsertAfterCursor(line))
	}
	assert.Equal(t, getText(t, "initial.txt"), editor.String())

	applyMiddleState(t, editor)
	assert.Equal(t, getText(t, "middle.txt"), editor.String())

	applyFinalState(t, editor)
	assert.Equal(t, getText(t, "final.txt"), editor.String())
}

func applyMiddleState(t *testing.T, editor *TextEditor) {
	replacements := map[string]string{
		"where animals talk, where magical things happen,the world of wicked dragons": "where animals talk, where magical things happen, the world of wicked deans",
		"where anything can happen(and most oftan does).":                            "where anything can happen(and most oftan does).\n",
		"Narnia...where dwarfs are loyal and tough and strong-or are they?":          "Narnia... where dwarfs are loyal and tough and strong-or are they?",
		"where a prince is put under an evil spell.":                                 "where a prince is put under an evil spell.\n",
	}

	require.NoError(t, editor.MoveCursorToLine(0))
	require.NoError(t, editor.ReplaceAtCursor("Narnia... the land between the lamp-post and the castle of Cair Paravel,"))
	for !editor.IsCursorAtLastLine() {
		require.NoError(t, editor.CursorDown())
		line, err := editor.GetAtCursor()
		require.NoError(t, err)
		if replacement, ok := replacements[line]; ok {
			require.NoError(t, editor.ReplaceAtCursor(replacement))
		}
	}
}

func applyFinalState(t *testing.T, editor *TextEditor) {
	require.NoError(t, editor.MoveCursorToLine(0))
	for !editor.IsCursorAtLastLine() {
		require.NoError(t, editor.CursorDown())
		line, err := editor.GetAtCursor()
		require.NoError(t, err)
		switch line {
		case "Susan, Edmund, and Lucy. Narnia...where horses talk and hermits like company,":
			require.NoError(t, editor.ReplaceAtCursor("Susan, Edmund, and Lucy."))
			require.NoError(t, editor.InsertAfterCursor("\nNarnia... where horses talk and hermits like company,"))
		case "where anything can happen(and most oftan does).\n":
			require.NoError(t, editor.ReplaceAtCursor("where anything can happen (and most often does).\n"))
		case "Narnia... where dwarfs are loyal and tough and strong-or are they?":
			require.NoError(t, editor.ReplaceAtCursor("Narnia... where dwarfs are loyal and tough and strong---or are they really?"))
		}
	}
}

func TestMarksFollowTheirLine(t *testing.T) {
	e := newEditor(t, "a", "b", "c")
	require.NoError(t, e.MoveCursorToLine(1))
	require.NoError(t, e.SetMark("b"))

	require.NoError(t, e.MoveCursorToLine(0))
	require.NoError(t, e.InsertBeforeCursor("first"))
	line, err := e.MarkLine("b")
	require.NoError(t, err)
	assert.Equal(t, 2, line)

	require.NoError(t, e.JumpToMark("b"))
	assert.Equal(t, 2, e.CursorLineNum())
	got, _ := e.GetAtCursor()
	assert.Equal(t, "b", got)

	require.NoError(t, e.ReplaceAtCursor("bee"))
	require.NoError(t, e.MoveCursorToLine(0))
	require.NoError(t, e.JumpToMark("b"))
	got, _ = e.GetAtCursor()
	assert.Equal(t, "bee", got, "replacing a line keeps its mark")
}

func TestMarkDroppedWithItsLine(t *testing.T) {
	e := newEditor(t, "a", "b")
	require.NoError(t, e.SetMark("last"))
	require.NoError(t, e.RemoveAtCursor())

	assert.ErrorIs(t, e.JumpToMark("last"), ErrNoMark)
	assert.ErrorIs(t, e.JumpToMark("never"), ErrNoMark)
}

func TestUndo(t *testing.T) {
	e := newEditor(t, "a", "b", "c")
	require.NoError(t, e.MoveCursorToLine(1))
	require.NoError(t, e.ReplaceAtCursor("B"))
	require.NoError(t, e.RemoveAtCursor())
	require.NoError(t, e.InsertBeforeCursor("new"))
	assert.Equal(t, []string{"a", "new", "c"}, e.Lines())

	require.NoError(t, e.Undo())
	assert.Equal(t, []string{"a", "c"}, e.Lines())
	require.NoError(t, e.Undo())
	assert.Equal(t, []string{"a", "B", "c"}, e.Lines())
	assert.Equal(t, 1, e.CursorLineNum())
	require.NoError(t, e.Undo())
	assert.Equal(t, []string{"a", "b", "c"}, e.Lines())

	for e.UndoDepth() > 0 {
		require.NoError(t, e.Undo())
	}
	assert.True(t, e.IsEmpty())
	assert.Equal(t, -1, e.CursorLineNum())
	assert.ErrorIs(t, e.Undo(), ErrNothingToUndo)
}

func TestLoadAndUndoLoad(t *testing.T) {
	e := newEditor(t, "old 1", "old 2", "old 3")
	e.Load([]string{"new"})
	assert.Equal(t, []string{"new"}, e.Lines())
	assert.Equal(t, 0, e.CursorLineNum(), "cursor clamps to the new text")

	require.NoError(t, e.Undo())
	assert.Equal(t, []string{"old 1", "old 2", "old 3"}, e.Lines())
	assert.Equal(t, 2, e.CursorLineNum())
}

func TestFind(t *testing.T) {
	e := newEditor(t, "alpha", "beta", "alphabet")
	assert.Len(t, e.Find("alpha"), 2)

	require.NoError(t, e.MoveCursorToLine(0))
	require.NoError(t, e.FindNext("alpha"))
	assert.Equal(t, 2, e.CursorLineNum())
	assert.ErrorIs(t, e.FindNext("alpha"), ErrNotFound)
}

func TestApplyScript(t *testing.T) {
	e := newEditor(t, "a", "b", "c")

	script, err := os.Open(filepath.Join("testdata", "edit.script"))
	require.NoError(t, err)
	defer script.Close()

	require.NoError(t, e.ApplyScript(script))
	assert.Equal(t, []string{"inserted above", "tagged", "last words", "c"}, e.Lines())
	assert.Equal(t, 2, e.CursorLineNum())
}

func TestApplyErrors(t *testing.T) {
	e := newEditor(t, "a")
	assert.ErrorIs(t, e.Apply("explode"), ErrUnknownCommand)
	assert.Error(t, e.Apply("goto x"))
	assert.ErrorIs(t, e.Apply("goto 5"), ErrOutOfRange)
	assert.NoError(t, e.Apply("   "))
	assert.NoError(t, e.Apply("# comment"))

	err := e.ApplyScript(strings.NewReader("up\n"))
	assert.ErrorIs(t, err, ErrOutOfRange)
	assert.Contains(t, err.Error(), "script line 1")
}

func TestOpenSave(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "doc.txt")
	require.NoError(t, os.WriteFile(src, []byte(" x \ny\n"), 0644))

	e := New()
	require.NoError(t, e.Open(src, seqio.DefaultScrub))
	assert.Equal(t, []string{"x", "y"}, e.Lines())

	require.NoError(t, e.Apply("goto 1"))
	require.NoError(t, e.Apply("replace z"))
	dst := filepath.Join(dir, "out.txt")
	require.NoError(t, e.Save(dst))

	bytes, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "x\nz\n", string(bytes))

	assert.Error(t, e.Open(filepath.Join(dir, "missing.txt"), seqio.DefaultScrub))
}

func TestDump(t *testing.T) {
	e := newEditor(t, "a")
	require.NoError(t, e.SetMark("m"))
	out := e.Dump()
	assert.Contains(t, out, "Cursor: 0")
	assert.Contains(t, out, `"m": 0`)
	assert.Contains(t, out, `Element: "a"`)
}

func TestRender(t *testing.T) {
	e := newEditor(t, "A", "B")
	assert.Equal(t, "{(0,A),(1,B)}", e.Render())
	assert.Equal(t, "{}", New().Render())
}

func TestMarshalJSON(t *testing.T) {
	e := newEditor(t, "A", "B")
	data, err := json.Marshal(e)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"rank":0,"element":"A"},{"rank":1,"element":"B"}]`, string(data))

	data, err = json.Marshal(New())
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(data))
}

func TestErrorsMatchSequence(t *testing.T) {
	assert.Equal(t, sequence.ErrOutOfRange, ErrOutOfRange)
}
