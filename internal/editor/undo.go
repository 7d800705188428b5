package editor

import "github.com/kobzarvs/ced/internal/logger"

type editKind int

const (
	editInsert editKind = iota // text inserted at row/col
	editDelete                 // text deleted at row/col
	editSplit                  // row split at row/col into row and row+1
	editJoin                   // row+1 joined onto row; col is the join point
)

// editOp records one applied operation, with enough to replay it in
// either direction. text carries the affected bytes for insert/delete;
// delete entries always carry the deleted bytes.
type editOp struct {
	kind editKind
	row  int
	col  int
	text []byte
}

// pushUndo records an operation and invalidates the redo stack. When the
// undo stack is at capacity, recording silently stops; nothing is
// evicted. The overflow policy is documented on config.UndoDepth.
func (e *Editor) pushUndo(op editOp) {
	e.redo = e.redo[:0]
	if len(e.undo) >= e.undoDepth {
		return
	}
	e.undo = append(e.undo, op)
}

// Undo pops the newest entry, replays its inverse at the recorded
// position, and moves it to the redo stack. An empty stack is a no-op.
func (e *Editor) Undo() {
	if len(e.undo) == 0 {
		return
	}
	op := e.undo[len(e.undo)-1]
	e.undo = e.undo[:len(e.undo)-1]
	e.redo = append(e.redo, op)
	e.applyInverse(op)
	logger.Debug("undo", "kind", int(op.kind), "row", op.row, "col", op.col)
}

// Redo pops from the redo stack, replays the original operation, and
// moves the entry back onto the undo stack.
func (e *Editor) Redo() {
	if len(e.redo) == 0 {
		return
	}
	op := e.redo[len(e.redo)-1]
	e.redo = e.redo[:len(e.redo)-1]
	e.undo = append(e.undo, op)
	e.applyForward(op)
	logger.Debug("redo", "kind", int(op.kind), "row", op.row, "col", op.col)
}

func (e *Editor) applyInverse(op editOp) {
	switch op.kind {
	case editInsert:
		for range op.text {
			e.rowDeleteChar(op.row, op.col)
		}
		e.cursor = Cursor{Row: op.row, Col: op.col}
	case editDelete:
		e.replayInsert(op.row, op.col, op.text)
		e.cursor = Cursor{Row: op.row, Col: op.col + len(op.text)}
	case editSplit:
		e.joinRow(op.row)
		e.cursor = Cursor{Row: op.row, Col: op.col}
	case editJoin:
		e.splitRow(op.row, op.col)
		e.cursor = Cursor{Row: op.row + 1, Col: 0}
	}
	e.clampCursorCol()
}

func (e *Editor) applyForward(op editOp) {
	switch op.kind {
	case editInsert:
		e.replayInsert(op.row, op.col, op.text)
		e.cursor = Cursor{Row: op.row, Col: op.col + len(op.text)}
	case editDelete:
		for range op.text {
			e.rowDeleteChar(op.row, op.col)
		}
		e.cursor = Cursor{Row: op.row, Col: op.col}
	case editSplit:
		if op.col == 0 {
			e.insertRow(op.row, nil)
		} else {
			e.splitRow(op.row, op.col)
		}
		e.cursor = Cursor{Row: op.row + 1, Col: 0}
	case editJoin:
		e.joinRow(op.row)
		e.cursor = Cursor{Row: op.row, Col: op.col}
	}
	e.clampCursorCol()
}

// replayInsert mirrors InsertChar's end-of-document edge case: replaying
// an insertion on the row past the last line creates that row first, so
// row indices stay in sync with the original application.
func (e *Editor) replayInsert(row, col int, text []byte) {
	if row == len(e.rows) {
		e.insertRow(len(e.rows), nil)
	}
	for i, c := range text {
		e.rowInsertChar(row, col+i, c)
	}
}
