package editor

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

var ErrUnknownCommand = errors.New("unknown command")

// Apply runs one command line:
//
//	goto N | down | up | after TEXT | before TEXT | replace TEXT | remove
//	mark NAME | jump NAME | find TEXT | undo
//
// Blank lines and lines starting with '#' do nothing.
func (e *TextEditor) Apply(command string) error {
	command = strings.TrimLeft(command, " \t")
	if command == "" || strings.HasPrefix(command, "#") { return nil }
	verb, arg, _ := strings.Cut(command, " ")

	e.mu.Lock()
	defer e.mu.Unlock()

	switch verb {
	case "goto":
		line, err := strconv.Atoi(strings.TrimSpace(arg))
		if err != nil { return fmt.Errorf("goto %q: %w", arg, err) }
		return e.moveCursorToLine(line)
	case "down":
		return e.cursorDown()
	case "up":
		return e.cursorUp()
	case "after":
		return e.insertAfterCursor(arg)
	case "before":
		return e.insertBeforeCursor(arg)
	case "replace":
		return e.replaceAtCursor(arg)
	case "remove":
		return e.removeAtCursor()
	case "mark":
		p, err := e.lines.AtIndex(e.cursor)
		if err != nil { return err }
		e.marks[strings.TrimSpace(arg)] = p
		return nil
	case "jump":
		return e.jumpToMark(strings.TrimSpace(arg))
	case "find":
		return e.findNext(arg)
	case "undo":
		return e.undoLast()
	}
	return fmt.Errorf("%q: %w", verb, ErrUnknownCommand)
}

// ApplyScript runs every line of r through Apply and stops at the first failure.
func (e *TextEditor) ApplyScript(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		if err := e.Apply(scanner.Text()); err != nil {
			return fmt.Errorf("script line %d: %w", lineNum, err)
		}
	}
	return scanner.Err()
}
