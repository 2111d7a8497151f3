package ui

import (
	. "seqedit/internal/config"
	"seqedit/internal/diff"
	"seqedit/internal/editor"
	seqio "seqedit/internal/io"
	. "seqedit/internal/logger"
	"seqedit/internal/selection"

	"fmt"
	"strconv"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
	. "github.com/gdamore/tcell"
	"github.com/gdamore/tcell/encoding"
)

// Editor draws a TextEditor on a tcell screen and turns key presses into
// line edits.
type Editor struct {
	COLUMNS     int // terminal size columns
	ROWS        int // terminal size rows
	LINES_WIDTH int // draw file lines number

	Y int // row offset for scrolling

	Screen Screen            // Screen for drawing
	Doc    *editor.TextEditor // document and cursor
	Config Config            // theme, scrub and watch settings

	Filename         string // current file name, empty for a scratch buffer
	IsContentChanged bool   // shows * if file is changed
	IsCommand        bool   // true while typing into the command prompt
	Command          []rune // command prompt input
	Status           string // last message for the status line

	Selection selection.Selection // lines picked with shift+arrows
	Matches   mapset.Set[int]     // lines matched by the last find command

	Baseline []string        // document as last loaded or saved
	Added    mapset.Set[int] // 1-based lines added or changed since Baseline
	Removed  mapset.Set[int] // 1-based Baseline lines no longer present

	Watcher *seqio.FileWatcher
	quit    bool
}

func NewEditor(screen Screen, doc *editor.TextEditor, config Config, filename string) *Editor {
	e := &Editor{Screen: screen, Doc: doc, Config: config, Filename: filename}
	e.Selection.CleanSelection()
	e.Baseline = doc.Lines()
	return e
}

// Start initialises the screen and runs the draw/event loop until Ctrl-Q.
func (e *Editor) Start() error {
	encoding.Register()
	if err := e.Screen.Init(); err != nil { return fmt.Errorf("init screen: %w", err) }
	defer e.Screen.Fini()

	e.Screen.SetStyle(e.theme().text)
	e.COLUMNS, e.ROWS = e.Screen.Size()

	if e.Config.Watch && e.Filename != "" {
		e.Watcher = seqio.NewFileWatcher(e.Filename)
		err := e.Watcher.StartWatch(e.OnExternalChange)
		if err != nil { Log.Error(err.Error()) } else { defer e.Watcher.Stop() }
	}

	for !e.quit {
		e.Draw()
		e.Screen.Show()
		e.HandleEvents()
	}
	return nil
}

func (e *Editor) HandleEvents() {
	ev := e.Screen.PollEvent()
	switch ev := ev.(type) {
	case *EventResize:
		e.COLUMNS, e.ROWS = e.Screen.Size()
		e.Screen.Sync()
	case *EventKey:
		e.HandleKeyboard(ev)
	case *EventInterrupt:
		if _, ok := ev.Data().(externalChange); ok { e.OnReload() }
	case nil:
		e.quit = true
	}
}

// externalChange is posted by the file watcher when the document changed on disk.
type externalChange struct{}

// OnExternalChange runs on the watcher goroutine. It only queues the reload
// for the event loop, which owns every Editor field.
func (e *Editor) OnExternalChange() {
	if err := e.Screen.PostEvent(NewEventInterrupt(externalChange{})); err != nil {
		Log.Error("queue reload:", err.Error())
	}
}

// OnReload reopens the document unless it holds unsaved edits.
func (e *Editor) OnReload() {
	if e.IsContentChanged {
		e.Status = e.Filename + " changed on disk, unsaved edits kept"
		return
	}
	opts := seqio.ScrubOptions{Trim: e.Config.TrimLines(), StripANSI: e.Config.StripEscapes()}
	if err := e.Doc.Open(e.Filename, opts); err != nil { e.Status = err.Error(); return }
	e.Baseline = e.Doc.Lines()
	e.Matches = nil
	e.Status = "reloaded " + e.Filename
}

type theme struct {
	text, lineNumber, cursorLine, selection, match, added, status Style
}

func (e *Editor) theme() theme {
	if e.Config.Theme == "dark" {
		return theme{
			text:       StyleDefault.Background(ColorBlack).Foreground(ColorWhite),
			lineNumber: StyleDefault.Background(ColorBlack).Foreground(ColorDimGray),
			cursorLine: StyleDefault.Background(ColorDarkSlateGray).Foreground(ColorWhite),
			selection:  StyleDefault.Background(ColorSteelBlue).Foreground(ColorWhite),
			match:      StyleDefault.Background(ColorBlack).Foreground(ColorYellow).Bold(true),
			added:      StyleDefault.Background(ColorBlack).Foreground(ColorGreen),
			status:     StyleDefault.Background(ColorDimGray).Foreground(ColorWhite),
		}
	}
	return theme{
		text:       StyleDefault,
		lineNumber: StyleDefault.Foreground(ColorGray),
		cursorLine: StyleDefault.Reverse(true),
		selection:  StyleDefault.Underline(true),
		match:      StyleDefault.Bold(true),
		added:      StyleDefault.Foreground(ColorGreen),
		status:     StyleDefault.Foreground(ColorDimGray),
	}
}

func (e *Editor) Draw() {
	e.Screen.Clear()
	th := e.theme()
	lines := e.Doc.Lines()
	cursor := e.Doc.CursorLineNum()

	e.LINES_WIDTH = len(strconv.Itoa(len(lines))) + 2
	textRows := e.ROWS - 1
	if textRows < 1 { textRows = 1 }

	// keep the cursor line inside the visible rows
	if cursor < e.Y { e.Y = cursor }
	if cursor >= e.Y+textRows { e.Y = cursor - textRows + 1 }
	if e.Y < 0 { e.Y = 0 }

	e.Added, e.Removed = diff.Changes(joinLines(e.Baseline), joinLines(lines))

	for row := 0; row < textRows; row++ {
		ry := row + e.Y
		if ry >= len(lines) { break }
		number := PadLeft(strconv.Itoa(ry+1), e.LINES_WIDTH-1)
		e.DrawText(row, 0, number, th.lineNumber)
		if e.Added.Contains(ry + 1) { e.Screen.SetContent(e.LINES_WIDTH-1, row, '+', nil, th.added) }

		style := th.text
		if e.Matches != nil && e.Matches.Contains(ry) { style = th.match }
		if e.Selection.IsUnderSelection(ry) { style = th.selection }
		if ry == cursor { style = th.cursorLine }
		e.DrawText(row, e.LINES_WIDTH, lines[ry], style)
	}

	e.DrawStatus(cursor, len(lines), th.status)
}

func (e *Editor) DrawStatus(cursor, size int, style Style) {
	row := e.ROWS - 1
	if e.IsCommand {
		prompt := ":" + string(e.Command)
		e.DrawText(row, 0, prompt, StyleDefault)
		e.Screen.ShowCursor(len([]rune(prompt)), row)
		return
	}
	e.Screen.HideCursor()

	name := e.Filename
	if name == "" { name = "[scratch]" }
	if e.IsContentChanged { name += " *" }
	e.DrawText(row, 0, name, style)

	position := fmt.Sprintf("%d/%d", cursor+1, size)
	if e.Added != nil && (e.Added.Cardinality() > 0 || e.Removed.Cardinality() > 0) {
		position = fmt.Sprintf("+%d -%d  %s", e.Added.Cardinality(), e.Removed.Cardinality(), position)
	}
	if e.Status != "" { position = e.Status + "  " + position }
	e.DrawText(row, e.COLUMNS-len([]rune(position)), position, style)
}

// DrawText writes text from col on, expanding tabs to Config.TabWidth cells.
func (e *Editor) DrawText(row, col int, text string, style Style) {
	tabWidth := e.Config.TabWidth
	if tabWidth <= 0 { tabWidth = DefaultConfig.TabWidth }

	for _, ch := range text {
		width := 1
		if ch == '\t' { ch = ' '; width = tabWidth }
		for i := 0; i < width; i++ {
			if col >= e.COLUMNS { return }
			if col >= 0 { e.Screen.SetContent(col, row, ch, nil, style) }
			col++
		}
	}
}

// joinLines renders lines the way they are saved, one '\n' after each.
func joinLines(lines []string) string {
	if len(lines) == 0 { return "" }
	return strings.Join(lines, "\n") + "\n"
}

func PadLeft(str string, length int) string {
	return fmt.Sprintf("%*s", length, str)
}
