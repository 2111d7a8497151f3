package editor

import (
	. "seqedit/internal/logger"
	seqio "seqedit/internal/io"
)

// Open loads a document from disk, replacing the current text.
func (e *TextEditor) Open(path string, opts seqio.ScrubOptions) error {
	lines, err := seqio.ReadLines(path, opts)
	if err != nil { Log.Error(err.Error()); return err }
	e.Load(lines)
	return nil
}

// Save writes the document to disk, one line per text line.
func (e *TextEditor) Save(path string) error {
	if err := seqio.WriteLines(path, e.Lines()); err != nil {
		Log.Error(err.Error())
		return err
	}
	Log.Info("saved", path)
	return nil
}
