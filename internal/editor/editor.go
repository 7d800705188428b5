// Package editor implements the document/render engine: the row store,
// the incremental syntax highlighter, edit operations with a bounded
// undo/redo log, search, and the escape-sequence renderer. The editor is
// single-threaded and synchronous: one key event is consumed, applied to
// completion, and one frame is emitted.
package editor

import (
	"fmt"
	"io"
	"time"

	"github.com/kobzarvs/ced/internal/config"
	"github.com/kobzarvs/ced/internal/logger"
	"github.com/kobzarvs/ced/internal/terminal"
)

// Version shows up in the welcome banner.
const Version = "0.1.0"

type Cursor struct {
	Row int
	Col int
}

// KeyReader supplies decoded key events. The terminal input satisfies it;
// tests feed scripted keys instead.
type KeyReader interface {
	ReadKey() (terminal.Key, error)
}

// Editor is the whole editing session: document, cursor, viewport, undo
// log and search state. All operations hang off it; there is no global
// state anywhere in the package.
type Editor struct {
	cfg   config.Config
	langs config.Languages

	rows   []*Row
	cursor Cursor
	rx     int // cursor column in render coordinates
	rowoff int
	coloff int

	screenRows int
	screenCols int

	filename string
	syntax   *config.Language
	dirty    bool

	statusmsg  string
	statusTime time.Time

	undo      []editOp
	redo      []editOp
	undoDepth int

	quitTimes int
	tabStop   int

	gitBranch string

	keys KeyReader
	out  io.Writer

	// search state, live only inside Find
	lastMatch  int
	searchDir  int
	savedHl    []byte
	savedHlRow int
}

func New(cfg config.Config, langs config.Languages, keys KeyReader, out io.Writer) *Editor {
	tabStop := cfg.Editor.TabStop
	if tabStop < 1 {
		tabStop = 1
	}
	undoDepth := cfg.Editor.UndoDepth
	if undoDepth < 1 {
		undoDepth = 1
	}
	return &Editor{
		cfg:       cfg,
		langs:     langs,
		tabStop:   tabStop,
		undoDepth: undoDepth,
		quitTimes: cfg.Editor.QuitTimes,
		keys:      keys,
		out:       out,
		lastMatch: -1,
		searchDir: 1,
	}
}

// SetSize tells the editor the full terminal size. Two rows are reserved
// for the status and message bars.
func (e *Editor) SetSize(rows, cols int) {
	e.screenRows = rows - 2
	if e.screenRows < 0 {
		e.screenRows = 0
	}
	e.screenCols = cols
}

func (e *Editor) SetGitBranch(branch string) {
	e.gitBranch = branch
}

// ReadKey pulls the next key event from the editor's input source.
func (e *Editor) ReadKey() (terminal.Key, error) {
	return e.keys.ReadKey()
}

func (e *Editor) Filename() string { return e.filename }
func (e *Editor) Dirty() bool      { return e.dirty }
func (e *Editor) LineCount() int   { return len(e.rows) }

func (e *Editor) CursorPos() (row, col int) {
	return e.cursor.Row, e.cursor.Col
}

func (e *Editor) Offsets() (rowoff, coloff int) {
	return e.rowoff, e.coloff
}

// RestoreView places the cursor and scroll offsets, clamped to the
// current document. Used for session restore.
func (e *Editor) RestoreView(row, col, rowoff, coloff int) {
	if row < 0 {
		row = 0
	}
	if row >= len(e.rows) {
		row = len(e.rows) - 1
		if row < 0 {
			row = 0
		}
	}
	e.cursor.Row = row
	e.cursor.Col = col
	e.clampCursorCol()
	if rowoff < 0 {
		rowoff = 0
	}
	if coloff < 0 {
		coloff = 0
	}
	e.rowoff = rowoff
	e.coloff = coloff
}

// SetStatusMessage formats a transient message for the message bar. It
// expires after the configured timeout, checked at render time.
func (e *Editor) SetStatusMessage(format string, args ...interface{}) {
	e.statusmsg = fmt.Sprintf(format, args...)
	e.statusTime = time.Now()
}

/*** editor operations ***/

// InsertChar inserts a byte at the cursor. At end of document an empty
// row is created first.
func (e *Editor) InsertChar(c byte) {
	if e.cursor.Row == len(e.rows) {
		e.insertRow(len(e.rows), nil)
	}
	e.rowInsertChar(e.cursor.Row, e.cursor.Col, c)
	e.pushUndo(editOp{kind: editInsert, row: e.cursor.Row, col: e.cursor.Col, text: []byte{c}})
	e.cursor.Col++
}

// InsertNewline splits the current row at the cursor; at column 0 it
// inserts a blank row above instead, which is the same split.
func (e *Editor) InsertNewline() {
	if e.cursor.Row == len(e.rows) {
		e.insertRow(len(e.rows), nil)
	}
	if e.cursor.Col == 0 {
		e.insertRow(e.cursor.Row, nil)
	} else {
		e.splitRow(e.cursor.Row, e.cursor.Col)
	}
	e.pushUndo(editOp{kind: editSplit, row: e.cursor.Row, col: e.cursor.Col})
	e.cursor.Row++
	e.cursor.Col = 0
}

// DeleteChar deletes the byte before the cursor. At column 0 the current
// row is joined onto the previous one; the join is undo-logged as its own
// entry.
func (e *Editor) DeleteChar() {
	if e.cursor.Row == len(e.rows) {
		return
	}
	if e.cursor.Col == 0 && e.cursor.Row == 0 {
		return
	}
	if e.cursor.Col > 0 {
		c := e.rows[e.cursor.Row].raw[e.cursor.Col-1]
		e.rowDeleteChar(e.cursor.Row, e.cursor.Col-1)
		e.pushUndo(editOp{kind: editDelete, row: e.cursor.Row, col: e.cursor.Col - 1, text: []byte{c}})
		e.cursor.Col--
	} else {
		prevLen := len(e.rows[e.cursor.Row-1].raw)
		e.pushUndo(editOp{kind: editJoin, row: e.cursor.Row - 1, col: prevLen})
		e.joinRow(e.cursor.Row - 1)
		e.cursor.Row--
		e.cursor.Col = prevLen
	}
}

/*** cursor movement ***/

func (e *Editor) currentRow() *Row {
	if e.cursor.Row < 0 || e.cursor.Row >= len(e.rows) {
		return nil
	}
	return e.rows[e.cursor.Row]
}

func (e *Editor) clampCursorCol() {
	rowLen := 0
	if row := e.currentRow(); row != nil {
		rowLen = len(row.raw)
	}
	if e.cursor.Col > rowLen {
		e.cursor.Col = rowLen
	}
	if e.cursor.Col < 0 {
		e.cursor.Col = 0
	}
}

func (e *Editor) moveCursor(k terminal.Key) {
	row := e.currentRow()

	switch k {
	case terminal.KeyArrowLeft:
		if e.cursor.Col != 0 {
			e.cursor.Col--
		} else if e.cursor.Row > 0 {
			e.cursor.Row--
			e.cursor.Col = len(e.rows[e.cursor.Row].raw)
		}
	case terminal.KeyArrowRight:
		if row != nil && e.cursor.Col < len(row.raw) {
			e.cursor.Col++
		} else if row != nil && e.cursor.Col == len(row.raw) && e.cursor.Row < len(e.rows)-1 {
			e.cursor.Row++
			e.cursor.Col = 0
		}
	case terminal.KeyArrowUp:
		if e.cursor.Row != 0 {
			e.cursor.Row--
		}
	case terminal.KeyArrowDown:
		if e.cursor.Row < len(e.rows)-1 {
			e.cursor.Row++
		}
	}

	e.clampCursorCol()
}

/*** key dispatch ***/

// HandleKey applies one key event and reports whether the editor should
// quit. Exactly one edit operation, undo push, or navigation action per
// event.
func (e *Editor) HandleKey(k terminal.Key) bool {
	switch k {
	case terminal.KeyEnter:
		e.InsertNewline()

	case terminal.Ctrl('q'):
		if e.dirty && e.quitTimes > 0 {
			e.SetStatusMessage("Warning! File has unsaved changes. "+
				"Press Ctrl-Q %d more times to quit.", e.quitTimes)
			e.quitTimes--
			return false
		}
		_, _ = io.WriteString(e.out, "\x1b[2J\x1b[H")
		return true

	case terminal.Ctrl('s'):
		e.Save()

	case terminal.Ctrl('f'):
		e.Find()

	case terminal.Ctrl('z'):
		e.Undo()

	case terminal.Ctrl('y'):
		e.Redo()

	case terminal.KeyHome:
		e.cursor.Col = 0

	case terminal.KeyEnd:
		if row := e.currentRow(); row != nil {
			e.cursor.Col = len(row.raw)
		}

	case terminal.KeyBackspace, terminal.Ctrl('h'):
		e.DeleteChar()

	case terminal.KeyDelete:
		e.moveCursor(terminal.KeyArrowRight)
		e.DeleteChar()

	case terminal.KeyPageUp, terminal.KeyPageDown:
		if k == terminal.KeyPageUp {
			e.cursor.Row = e.rowoff
		} else {
			e.cursor.Row = e.rowoff + e.screenRows - 1
			if e.cursor.Row > len(e.rows) {
				e.cursor.Row = len(e.rows)
			}
		}
		arrow := terminal.KeyArrowDown
		if k == terminal.KeyPageUp {
			arrow = terminal.KeyArrowUp
		}
		for times := e.screenRows; times > 0; times-- {
			e.moveCursor(arrow)
		}

	case terminal.KeyArrowUp, terminal.KeyArrowDown,
		terminal.KeyArrowLeft, terminal.KeyArrowRight:
		e.moveCursor(k)

	case terminal.Ctrl('l'), terminal.KeyEscape:
		// Ctrl-L forces a redraw, which happens every iteration anyway.

	default:
		if k == '\t' || (k >= 32 && k < 127) {
			e.InsertChar(byte(k))
		}
	}

	if k != terminal.Ctrl('q') {
		e.quitTimes = e.cfg.Editor.QuitTimes
	}
	return false
}

// selectSyntax picks the language for the current filename and
// recomputes all highlighting.
func (e *Editor) selectSyntax() {
	e.syntax = nil
	if e.filename != "" {
		e.syntax = e.langs.Match(e.filename)
	}
	e.rehighlightAll()
	if e.syntax != nil {
		logger.Debug("syntax selected", "language", e.syntax.Name, "file", e.filename)
	}
}
