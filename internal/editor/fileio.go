package editor

import (
	"bufio"
	"bytes"
	"os"

	"github.com/kobzarvs/ced/internal/logger"
)

// OpenFile loads a file into the row store. Trailing carriage returns
// are stripped per line; the buffer starts clean with empty undo
// history.
func (e *Editor) OpenFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	e.filename = path
	e.rows = nil

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)
	for sc.Scan() {
		line := bytes.TrimRight(sc.Bytes(), "\r")
		e.insertRow(len(e.rows), line)
	}
	if err := sc.Err(); err != nil {
		return err
	}

	e.selectSyntax()
	e.dirty = false
	e.undo = nil
	e.redo = nil
	logger.Info("file opened", "path", path, "lines", len(e.rows))
	return nil
}

// SetFilename names a buffer that has no backing file yet, as when the
// editor is started with a path that does not exist.
func (e *Editor) SetFilename(path string) {
	e.filename = path
	e.selectSyntax()
}

// contents serializes the row store with a newline after every row,
// including the last.
func (e *Editor) contents() []byte {
	var b bytes.Buffer
	for _, row := range e.rows {
		b.Write(row.raw)
		b.WriteByte('\n')
	}
	return b.Bytes()
}

// Save writes the buffer to its file, prompting for a name when the
// buffer has none. Truncate-then-write; the status bar reports the byte
// count or the error.
func (e *Editor) Save() {
	if e.filename == "" {
		name, ok := e.prompt("Save as: %s (ESC to cancel)", nil)
		if !ok {
			e.SetStatusMessage("Save aborted")
			return
		}
		e.filename = name
		e.selectSyntax()
	}

	data := e.contents()
	f, err := os.OpenFile(e.filename, os.O_RDWR|os.O_CREATE, 0o644)
	if err != nil {
		e.SetStatusMessage("Can't save! I/O error: %s", err)
		logger.Error("save failed", "path", e.filename, "error", err)
		return
	}
	defer f.Close()

	if err := f.Truncate(int64(len(data))); err != nil {
		e.SetStatusMessage("Can't save! I/O error: %s", err)
		logger.Error("save failed", "path", e.filename, "error", err)
		return
	}
	if _, err := f.Write(data); err != nil {
		e.SetStatusMessage("Can't save! I/O error: %s", err)
		logger.Error("save failed", "path", e.filename, "error", err)
		return
	}

	e.dirty = false
	e.SetStatusMessage("%d bytes written to disk", len(data))
	logger.Info("file saved", "path", e.filename, "bytes", len(data))
}
