package editor

import (
	"bytes"

	"github.com/kobzarvs/ced/internal/logger"
	"github.com/kobzarvs/ced/internal/terminal"
)

// Find runs the incremental search prompt. Escape restores the cursor
// and viewport saved on entry; Enter leaves the cursor on the match.
func (e *Editor) Find() {
	savedCursor := e.cursor
	savedRowoff := e.rowoff
	savedColoff := e.coloff

	e.lastMatch = -1
	e.searchDir = 1

	query, ok := e.prompt("Search: %s (Use ESC/Arrows/Enter)", e.findCallback)
	if !ok {
		e.cursor = savedCursor
		e.rowoff = savedRowoff
		e.coloff = savedColoff
		return
	}
	logger.Debug("search accepted", "query", query)
}

// findCallback runs once per prompt keystroke. Arrow keys choose the scan
// direction; any other key resets the direction and the match anchor.
// The scan is a cyclic walk over lines starting after the last match,
// matching the query as a plain substring of the render form.
func (e *Editor) findCallback(query string, k terminal.Key) {
	// Undo the transient match markup from the previous keystroke before
	// anything else; permanent highlighting must survive search verbatim.
	if e.savedHl != nil {
		if e.savedHlRow < len(e.rows) {
			copy(e.rows[e.savedHlRow].hl, e.savedHl)
		}
		e.savedHl = nil
	}

	switch k {
	case terminal.KeyEnter, terminal.KeyEscape:
		e.lastMatch = -1
		e.searchDir = 1
		return
	case terminal.KeyArrowRight, terminal.KeyArrowDown:
		e.searchDir = 1
	case terminal.KeyArrowLeft, terminal.KeyArrowUp:
		e.searchDir = -1
	default:
		e.lastMatch = -1
		e.searchDir = 1
	}

	if query == "" {
		return
	}
	if e.lastMatch == -1 {
		e.searchDir = 1
	}

	current := e.lastMatch
	for range e.rows {
		current += e.searchDir
		if current == -1 {
			current = len(e.rows) - 1
		} else if current == len(e.rows) {
			current = 0
		}

		row := e.rows[current]
		idx := bytes.Index(row.render, []byte(query))
		if idx < 0 {
			continue
		}

		e.lastMatch = current
		e.cursor.Row = current
		e.cursor.Col = rxToCx(row.raw, idx, e.tabStop)
		// Push the row offset past the end so the next scroll pass snaps
		// the match row to the top of the viewport.
		e.rowoff = len(e.rows)

		e.savedHlRow = current
		e.savedHl = append([]byte(nil), row.hl...)
		for j := idx; j < idx+len(query) && j < len(row.hl); j++ {
			row.hl[j] = hlMatch
		}
		break
	}
}
