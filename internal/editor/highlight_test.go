package editor

import "testing"

func newCEditor(lines ...string) *Editor {
	e := newTestEditor(lines...)
	e.filename = "test.c"
	e.selectSyntax()
	return e
}

func hlRange(row *Row, from, to int) []byte {
	return row.hl[from:to]
}

func allClass(hl []byte, class byte) bool {
	for _, h := range hl {
		if h != class {
			return false
		}
	}
	return true
}

func TestHighlightKeywords(t *testing.T) {
	e := newCEditor("if (x) return;")
	row := e.rows[0]
	if !allClass(hlRange(row, 0, 2), hlKeyword1) {
		t.Fatalf("if hl = %v, want keyword1", hlRange(row, 0, 2))
	}
	if !allClass(hlRange(row, 7, 13), hlKeyword1) {
		t.Fatalf("return hl = %v, want keyword1", hlRange(row, 7, 13))
	}
	if row.hl[4] != hlNormal {
		t.Fatalf("x hl = %d, want normal", row.hl[4])
	}
}

func TestHighlightKeywordClasses(t *testing.T) {
	e := newCEditor("int x = sizeof(y);")
	row := e.rows[0]
	if !allClass(hlRange(row, 0, 3), hlKeyword2) {
		t.Fatalf("int hl = %v, want keyword2", hlRange(row, 0, 3))
	}
	if !allClass(hlRange(row, 8, 14), hlKeyword1) {
		t.Fatalf("sizeof hl = %v, want keyword1", hlRange(row, 8, 14))
	}
}

func TestHighlightKeywordNeedsSeparatorBoundary(t *testing.T) {
	e := newCEditor("interior")
	if e.rows[0].hl[0] != hlNormal {
		t.Fatal("keyword prefix inside an identifier must stay normal")
	}
}

func TestHighlightNumbers(t *testing.T) {
	e := newCEditor("x = 3.14 + 42;")
	row := e.rows[0]
	if !allClass(hlRange(row, 4, 8), hlNumber) {
		t.Fatalf("3.14 hl = %v, want number", hlRange(row, 4, 8))
	}
	if !allClass(hlRange(row, 11, 13), hlNumber) {
		t.Fatalf("42 hl = %v, want number", hlRange(row, 11, 13))
	}
}

func TestHighlightNumberNeedsSeparator(t *testing.T) {
	e := newCEditor("x3")
	if e.rows[0].hl[1] != hlNormal {
		t.Fatal("digit glued to an identifier must stay normal")
	}
}

func TestHighlightStringWithEscapes(t *testing.T) {
	e := newCEditor(`s = "a\"b";`)
	row := e.rows[0]
	if !allClass(hlRange(row, 4, 10), hlString) {
		t.Fatalf("string hl = %v, want string", hlRange(row, 4, 10))
	}
	if row.hl[10] != hlNormal {
		t.Fatalf("semicolon hl = %d, want normal", row.hl[10])
	}
}

func TestHighlightUnterminatedStringStaysOpen(t *testing.T) {
	e := newCEditor(`s = "never closed`)
	row := e.rows[0]
	if !allClass(hlRange(row, 4, len(row.hl)), hlString) {
		t.Fatal("unterminated string should color to end of line")
	}
}

func TestHighlightSingleLineComment(t *testing.T) {
	e := newCEditor("int x; // trailing")
	row := e.rows[0]
	if !allClass(hlRange(row, 7, len(row.hl)), hlComment) {
		t.Fatal("comment should run to end of line")
	}
	if !allClass(hlRange(row, 0, 3), hlKeyword2) {
		t.Fatal("code before the comment keeps its classes")
	}
}

func TestHighlightCommentCarryAcrossLines(t *testing.T) {
	e := newCEditor("/* open", "int x;", "more")
	if !e.rows[0].openComment {
		t.Fatal("row0 should carry an open comment")
	}
	if !allClass(e.rows[1].hl, hlMLComment) {
		t.Fatalf("row1 hl = %v, want all ml-comment", e.rows[1].hl)
	}
	if !allClass(e.rows[2].hl, hlMLComment) {
		t.Fatalf("row2 hl = %v, want all ml-comment", e.rows[2].hl)
	}
}

func TestHighlightClosingCommentReflowsFollowingRows(t *testing.T) {
	e := newCEditor("/* open", "int x;")
	if !allClass(e.rows[1].hl, hlMLComment) {
		t.Fatal("precondition: row1 inside comment")
	}

	e.rowAppend(0, []byte(" */"))

	if e.rows[0].openComment {
		t.Fatal("row0 comment should be closed")
	}
	if !allClass(hlRange(e.rows[1], 0, 3), hlKeyword2) {
		t.Fatalf("row1 hl = %v, want keyword2 after reflow", hlRange(e.rows[1], 0, 3))
	}
}

func TestHighlightReopeningCommentReflowsForward(t *testing.T) {
	e := newCEditor("int a;", "int b;", "int c;")
	e.rowInsertChar(0, 0, '*')
	e.rowInsertChar(0, 0, '/')

	for i := 0; i < 3; i++ {
		if !allClass(e.rows[i].hl, hlMLComment) {
			t.Fatalf("row%d hl = %v, want all ml-comment", i, e.rows[i].hl)
		}
	}
}

func TestHighlightCommentEndInsideString(t *testing.T) {
	e := newCEditor(`s = "/* not a comment */";`)
	row := e.rows[0]
	if !allClass(hlRange(row, 4, 25), hlString) {
		t.Fatalf("hl = %v, want string throughout", hlRange(row, 4, 25))
	}
	if row.openComment {
		t.Fatal("comment markers inside a string must not open a comment")
	}
}

func TestHighlightNoSyntaxLeavesNormal(t *testing.T) {
	e := newTestEditor("int x = 1; // hi")
	if !allClass(e.rows[0].hl, hlNormal) {
		t.Fatal("no language selected, everything stays normal")
	}
}

func TestIsSeparator(t *testing.T) {
	for _, c := range []byte(",.()+-/*=~%<>[]; \t") {
		if !isSeparator(c) {
			t.Fatalf("%q should be a separator", c)
		}
	}
	for _, c := range []byte("ab_9") {
		if isSeparator(c) {
			t.Fatalf("%q should not be a separator", c)
		}
	}
}
