package editor

import (
	"bytes"
	"fmt"
	"path/filepath"
	"time"
)

// scroll keeps the cursor inside the viewport, adjusting the offsets
// after every key. The render column is recomputed first so tab
// expansion never leaves the cursor outside the visible columns.
func (e *Editor) scroll() {
	e.rx = 0
	if e.cursor.Row < len(e.rows) {
		e.rx = cxToRx(e.rows[e.cursor.Row].raw, e.cursor.Col, e.tabStop)
	}

	if e.cursor.Row < e.rowoff {
		e.rowoff = e.cursor.Row
	}
	if e.cursor.Row >= e.rowoff+e.screenRows {
		e.rowoff = e.cursor.Row - e.screenRows + 1
	}
	if e.rx < e.coloff {
		e.coloff = e.rx
	}
	if e.rx >= e.coloff+e.screenCols {
		e.coloff = e.rx - e.screenCols + 1
	}
}

// Render composes the full screen as one escape-sequence frame and
// writes it with a single Write call. The cursor is hidden for the
// duration of the update to avoid flicker.
func (e *Editor) Render() {
	e.scroll()

	var b bytes.Buffer
	b.WriteString("\x1b[?25l")
	b.WriteString("\x1b[H")

	e.drawRows(&b)
	e.drawStatusBar(&b)
	e.drawMessageBar(&b)

	fmt.Fprintf(&b, "\x1b[%d;%dH", e.cursor.Row-e.rowoff+1, e.rx-e.coloff+1)
	b.WriteString("\x1b[?25h")

	_, _ = e.out.Write(b.Bytes())
}

func (e *Editor) drawRows(b *bytes.Buffer) {
	for y := 0; y < e.screenRows; y++ {
		filerow := y + e.rowoff
		if filerow >= len(e.rows) {
			if len(e.rows) == 0 && y == e.screenRows/3 {
				welcome := fmt.Sprintf("ced editor -- version %s", Version)
				if len(welcome) > e.screenCols {
					welcome = welcome[:e.screenCols]
				}
				padding := (e.screenCols - len(welcome)) / 2
				if padding > 0 {
					b.WriteByte('~')
					padding--
				}
				for ; padding > 0; padding-- {
					b.WriteByte(' ')
				}
				b.WriteString(welcome)
			} else {
				b.WriteByte('~')
			}
		} else {
			e.drawRow(b, e.rows[filerow])
		}
		b.WriteString("\x1b[K")
		b.WriteString("\r\n")
	}
}

// drawRow writes the visible slice of one row, switching the SGR color
// only when the highlight class changes between adjacent bytes. Control
// bytes render inverted as printable stand-ins.
func (e *Editor) drawRow(b *bytes.Buffer, row *Row) {
	start := e.coloff
	if start > len(row.render) {
		start = len(row.render)
	}
	end := e.coloff + e.screenCols
	if end > len(row.render) {
		end = len(row.render)
	}

	currentColor := -1
	for j := start; j < end; j++ {
		c := row.render[j]
		hl := row.hl[j]

		if c < 32 || c == 127 {
			sym := byte('?')
			if c < 26 {
				sym = '@' + c
			}
			b.WriteString("\x1b[7m")
			b.WriteByte(sym)
			b.WriteString("\x1b[m")
			if currentColor != -1 {
				fmt.Fprintf(b, "\x1b[%dm", currentColor)
			}
			continue
		}

		if hl == hlNormal {
			if currentColor != -1 {
				b.WriteString("\x1b[39m")
				currentColor = -1
			}
			b.WriteByte(c)
			continue
		}

		color := e.colorFor(hl)
		if color != currentColor {
			currentColor = color
			fmt.Fprintf(b, "\x1b[%dm", color)
		}
		b.WriteByte(c)
	}
	b.WriteString("\x1b[39m")
}

func (e *Editor) drawStatusBar(b *bytes.Buffer) {
	b.WriteString("\x1b[7m")

	name := e.filename
	if name == "" {
		name = "[No Name]"
	} else {
		name = filepath.Base(name)
	}
	modified := ""
	if e.dirty {
		modified = "(modified)"
	}
	status := fmt.Sprintf("%.20s - %d lines %s", name, len(e.rows), modified)
	if e.gitBranch != "" {
		status += fmt.Sprintf(" %s%s", e.cfg.Editor.GitBranchSymbol, e.gitBranch)
	}

	filetype := "no ft"
	if e.syntax != nil {
		filetype = e.syntax.Name
	}
	rstatus := fmt.Sprintf("%s | %d/%d", filetype, e.cursor.Row+1, len(e.rows))

	if len(status) > e.screenCols {
		status = status[:e.screenCols]
	}
	b.WriteString(status)
	for col := len(status); col < e.screenCols; col++ {
		if e.screenCols-col == len(rstatus) {
			b.WriteString(rstatus)
			break
		}
		b.WriteByte(' ')
	}

	b.WriteString("\x1b[m")
	b.WriteString("\r\n")
}

func (e *Editor) drawMessageBar(b *bytes.Buffer) {
	b.WriteString("\x1b[K")
	timeout := time.Duration(e.cfg.Editor.MessageTimeout) * time.Second
	if e.statusmsg == "" || time.Since(e.statusTime) >= timeout {
		return
	}
	msg := e.statusmsg
	if len(msg) > e.screenCols {
		msg = msg[:e.screenCols]
	}
	b.WriteString(msg)
}

func (e *Editor) colorFor(hl byte) int {
	switch hl {
	case hlComment, hlMLComment:
		return e.cfg.Theme.Comment
	case hlKeyword1:
		return e.cfg.Theme.Keyword1
	case hlKeyword2:
		return e.cfg.Theme.Keyword2
	case hlString:
		return e.cfg.Theme.String
	case hlNumber:
		return e.cfg.Theme.Number
	case hlMatch:
		return e.cfg.Theme.Match
	default:
		return 37
	}
}
