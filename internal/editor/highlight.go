package editor

import (
	"bytes"
	"strings"
)

// Highlight classes, one tag per render byte.
const (
	hlNormal byte = iota
	hlComment
	hlMLComment
	hlKeyword1
	hlKeyword2
	hlString
	hlNumber
	hlMatch
)

const separatorSet = ",.()+-/*=~%<>[];"

func isSeparator(c byte) bool {
	return c == ' ' || c == '\t' || c == 0 || strings.IndexByte(separatorSet, c) >= 0
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// rehighlightFrom recomputes highlighting for the row at the given index
// and walks forward while the end-of-row comment carry keeps changing.
// A work-list walk rather than recursion: a single unterminated comment
// opening at the top of the file touches every following row.
func (e *Editor) rehighlightFrom(at int) {
	for i := at; i >= 0 && i < len(e.rows); i++ {
		if !e.highlightRow(i) {
			break
		}
	}
}

// rehighlightAll recomputes every row, used when the active language
// changes.
func (e *Editor) rehighlightAll() {
	for i := range e.rows {
		e.highlightRow(i)
	}
}

// highlightRow assigns a highlight class to every render byte of row i,
// consuming the predecessor's comment carry. Reports whether this row's
// own carry changed, which obliges the caller to recompute the next row.
//
// One left-to-right scan with mutually exclusive states, in priority
// order: single-line comment, multi-line comment, string literal, number,
// keyword, default. Unterminated constructs are not errors; they stay
// open at end of line and the carry does the rest.
func (e *Editor) highlightRow(i int) bool {
	row := e.rows[i]
	row.hl = make([]byte, len(row.render))

	if e.syntax == nil {
		changed := row.openComment
		row.openComment = false
		return changed
	}

	scs := e.syntax.SingleLineComment
	mcs := e.syntax.MultiLineCommentStart
	mce := e.syntax.MultiLineCommentEnd

	prevSep := true
	var inString byte
	inComment := i > 0 && e.rows[i-1].openComment

	j := 0
	for j < len(row.render) {
		c := row.render[j]
		prevHl := hlNormal
		if j > 0 {
			prevHl = row.hl[j-1]
		}

		if scs != "" && inString == 0 && !inComment {
			if bytes.HasPrefix(row.render[j:], []byte(scs)) {
				for k := j; k < len(row.render); k++ {
					row.hl[k] = hlComment
				}
				break
			}
		}

		if mcs != "" && mce != "" && inString == 0 {
			if inComment {
				row.hl[j] = hlMLComment
				if bytes.HasPrefix(row.render[j:], []byte(mce)) {
					for k := j; k < j+len(mce); k++ {
						row.hl[k] = hlMLComment
					}
					j += len(mce)
					inComment = false
					prevSep = true
					continue
				}
				j++
				continue
			} else if bytes.HasPrefix(row.render[j:], []byte(mcs)) {
				for k := j; k < j+len(mcs); k++ {
					row.hl[k] = hlMLComment
				}
				j += len(mcs)
				inComment = true
				continue
			}
		}

		if e.syntax.HighlightStrings {
			if inString != 0 {
				row.hl[j] = hlString
				if c == '\\' && j+1 < len(row.render) {
					row.hl[j+1] = hlString
					j += 2
					continue
				}
				if c == inString {
					inString = 0
				}
				j++
				prevSep = true
				continue
			} else if c == '"' || c == '\'' {
				inString = c
				row.hl[j] = hlString
				j++
				continue
			}
		}

		if e.syntax.HighlightNumbers {
			if (isDigit(c) && (prevSep || prevHl == hlNumber)) ||
				(c == '.' && prevHl == hlNumber) {
				row.hl[j] = hlNumber
				j++
				prevSep = false
				continue
			}
		}

		if prevSep {
			if klen, kw2 := e.matchKeyword(row.render[j:]); klen > 0 {
				class := hlKeyword1
				if kw2 {
					class = hlKeyword2
				}
				for k := j; k < j+klen; k++ {
					row.hl[k] = class
				}
				j += klen
				prevSep = false
				continue
			}
		}

		prevSep = isSeparator(c)
		j++
	}

	changed := row.openComment != inComment
	row.openComment = inComment
	return changed
}

// matchKeyword tries every configured keyword at the start of rest and
// returns the length and class of the longest one whose following byte is
// a separator (or end of line). A trailing '|' in the table marks the
// secondary class.
func (e *Editor) matchKeyword(rest []byte) (klen int, kw2 bool) {
	for _, kw := range e.syntax.Keywords {
		isKw2 := strings.HasSuffix(kw, "|")
		if isKw2 {
			kw = kw[:len(kw)-1]
		}
		if len(kw) <= klen || len(kw) > len(rest) {
			continue
		}
		if string(rest[:len(kw)]) != kw {
			continue
		}
		if len(rest) > len(kw) && !isSeparator(rest[len(kw)]) {
			continue
		}
		klen = len(kw)
		kw2 = isKw2
	}
	return klen, kw2
}
