package editor

// Row is one document line. raw holds the bytes as typed or loaded; render
// is the tab-expanded display form; hl tags every render byte with a
// highlight class. render and hl are derived and regenerated on every raw
// mutation, never patched in place.
type Row struct {
	raw         []byte
	render      []byte
	hl          []byte
	openComment bool // unclosed multi-line comment at end of this row
}

// renderLine expands tabs to the next multiple of tabStop, space filled.
// Every other byte passes through unchanged.
func renderLine(raw []byte, tabStop int) []byte {
	out := make([]byte, 0, len(raw))
	for _, c := range raw {
		if c == '\t' {
			out = append(out, ' ')
			for len(out)%tabStop != 0 {
				out = append(out, ' ')
			}
		} else {
			out = append(out, c)
		}
	}
	return out
}

// cxToRx converts a raw-byte column to a render column using the same tab
// arithmetic as renderLine.
func cxToRx(raw []byte, cx, tabStop int) int {
	rx := 0
	for j := 0; j < cx && j < len(raw); j++ {
		if raw[j] == '\t' {
			rx += (tabStop - 1) - (rx % tabStop)
		}
		rx++
	}
	return rx
}

// rxToCx is the inverse of cxToRx. A render column inside a tab's fill
// maps to the tab itself.
func rxToCx(raw []byte, rx, tabStop int) int {
	curRx := 0
	cx := 0
	for ; cx < len(raw); cx++ {
		if raw[cx] == '\t' {
			curRx += (tabStop - 1) - (curRx % tabStop)
		}
		curRx++
		if curRx > rx {
			return cx
		}
	}
	return cx
}

// updateRow regenerates the render form of row at and re-runs the
// highlighter from it, propagating comment-carry changes forward.
func (e *Editor) updateRow(at int) {
	if at < 0 || at >= len(e.rows) {
		return
	}
	e.rows[at].render = renderLine(e.rows[at].raw, e.tabStop)
	e.rehighlightFrom(at)
}

// insertRow inserts a new row at the given index. raw is copied; rows own
// their buffers exclusively. Out-of-range indices are no-ops.
func (e *Editor) insertRow(at int, raw []byte) {
	if at < 0 || at > len(e.rows) {
		return
	}
	row := &Row{raw: append([]byte(nil), raw...)}
	e.rows = append(e.rows, nil)
	copy(e.rows[at+1:], e.rows[at:])
	e.rows[at] = row
	e.updateRow(at)
	e.dirty = true
}

// deleteRow removes the row at the given index. The next row inherits a
// new predecessor, so highlighting is recomputed from there.
func (e *Editor) deleteRow(at int) {
	if at < 0 || at >= len(e.rows) {
		return
	}
	copy(e.rows[at:], e.rows[at+1:])
	e.rows = e.rows[:len(e.rows)-1]
	if at < len(e.rows) {
		e.rehighlightFrom(at)
	}
	e.dirty = true
}

func (e *Editor) rowInsertChar(rowIdx, at int, c byte) {
	if rowIdx < 0 || rowIdx >= len(e.rows) {
		return
	}
	row := e.rows[rowIdx]
	if at < 0 || at > len(row.raw) {
		return
	}
	row.raw = append(row.raw, 0)
	copy(row.raw[at+1:], row.raw[at:])
	row.raw[at] = c
	e.updateRow(rowIdx)
	e.dirty = true
}

func (e *Editor) rowDeleteChar(rowIdx, at int) {
	if rowIdx < 0 || rowIdx >= len(e.rows) {
		return
	}
	row := e.rows[rowIdx]
	if at < 0 || at >= len(row.raw) {
		return
	}
	row.raw = append(row.raw[:at], row.raw[at+1:]...)
	e.updateRow(rowIdx)
	e.dirty = true
}

func (e *Editor) rowAppend(rowIdx int, b []byte) {
	if rowIdx < 0 || rowIdx >= len(e.rows) {
		return
	}
	row := e.rows[rowIdx]
	row.raw = append(row.raw, b...)
	e.updateRow(rowIdx)
	e.dirty = true
}

// splitRow breaks the row at the given raw column into two rows; the tail
// becomes a new row directly below.
func (e *Editor) splitRow(rowIdx, at int) {
	if rowIdx < 0 || rowIdx >= len(e.rows) {
		return
	}
	row := e.rows[rowIdx]
	if at < 0 || at > len(row.raw) {
		return
	}
	tail := append([]byte(nil), row.raw[at:]...)
	row.raw = row.raw[:at]
	e.insertRow(rowIdx+1, tail)
	e.updateRow(rowIdx)
	e.dirty = true
}

// joinRow appends the next row's content onto rowIdx and removes it.
func (e *Editor) joinRow(rowIdx int) {
	if rowIdx < 0 || rowIdx+1 >= len(e.rows) {
		return
	}
	e.rowAppend(rowIdx, e.rows[rowIdx+1].raw)
	e.deleteRow(rowIdx + 1)
}
