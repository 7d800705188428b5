package editor

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/kobzarvs/ced/internal/config"
)

func renderToString(e *Editor) string {
	buf := &bytes.Buffer{}
	e.out = buf
	e.Render()
	return buf.String()
}

func TestRenderFrameEnvelope(t *testing.T) {
	e := newTestEditor("hello")
	out := renderToString(e)
	if !strings.HasPrefix(out, "\x1b[?25l\x1b[H") {
		t.Fatalf("frame prefix = %q", out[:12])
	}
	if !strings.HasSuffix(out, "\x1b[?25h") {
		t.Fatalf("frame suffix = %q", out[len(out)-8:])
	}
	if !strings.Contains(out, "hello") {
		t.Fatal("frame should contain the document text")
	}
}

func TestRenderWelcomeBannerOnEmptyDocument(t *testing.T) {
	e := newTestEditor()
	out := renderToString(e)
	want := fmt.Sprintf("ced editor -- version %s", Version)
	if !strings.Contains(out, want) {
		t.Fatalf("frame missing welcome banner %q", want)
	}
}

func TestRenderNoBannerWithContent(t *testing.T) {
	e := newTestEditor("x")
	out := renderToString(e)
	if strings.Contains(out, "ced editor") {
		t.Fatal("banner must not show once the document has rows")
	}
}

func TestRenderTildeFiller(t *testing.T) {
	e := newTestEditor("only line")
	out := renderToString(e)
	if strings.Count(out, "~") < e.screenRows-1 {
		t.Fatalf("tilde count = %d, want at least %d", strings.Count(out, "~"), e.screenRows-1)
	}
}

func TestRenderStatusBarContents(t *testing.T) {
	e := newTestEditor("a", "b")
	e.filename = "/tmp/demo.txt"
	out := renderToString(e)
	if !strings.Contains(out, "demo.txt") {
		t.Fatal("status bar should show the base filename")
	}
	if !strings.Contains(out, "2 lines") {
		t.Fatal("status bar should show the line count")
	}
	if !strings.Contains(out, "1/2") {
		t.Fatal("status bar should show cursor position")
	}
	if !strings.Contains(out, "no ft") {
		t.Fatal("status bar should show the filetype placeholder")
	}
}

func TestRenderStatusBarShowsModifiedAndBranch(t *testing.T) {
	e := newTestEditor("a")
	e.SetGitBranch("main")
	e.InsertChar('x')
	out := renderToString(e)
	if !strings.Contains(out, "(modified)") {
		t.Fatal("status bar should flag unsaved changes")
	}
	if !strings.Contains(out, "git:main") {
		t.Fatal("status bar should show the git branch")
	}
}

func TestRenderMessageBarShowsRecentMessage(t *testing.T) {
	e := newTestEditor("a")
	e.SetStatusMessage("HELP: Ctrl-S = save")
	out := renderToString(e)
	if !strings.Contains(out, "HELP: Ctrl-S = save") {
		t.Fatal("recent status message should be visible")
	}
}

func TestRenderSyntaxColors(t *testing.T) {
	e := newCEditor("if x")
	out := renderToString(e)
	want := fmt.Sprintf("\x1b[%dm", config.Default().Theme.Keyword1)
	if !strings.Contains(out, want) {
		t.Fatalf("frame missing keyword color %q", want)
	}
	if !strings.Contains(out, "\x1b[39m") {
		t.Fatal("frame should reset to the default foreground")
	}
}

func TestRenderControlByteInverted(t *testing.T) {
	e := newTestEditor("a\x01b")
	out := renderToString(e)
	if !strings.Contains(out, "\x1b[7mA\x1b[m") {
		t.Fatal("control byte should render inverted as a printable stand-in")
	}
}

func TestScrollClampsViewportToCursor(t *testing.T) {
	var lines []string
	for i := 0; i < 100; i++ {
		lines = append(lines, fmt.Sprintf("line %d", i))
	}
	e := newTestEditor(lines...)
	e.SetSize(22, 80) // 20 text rows
	e.cursor = Cursor{Row: 99, Col: 0}

	e.scroll()
	if e.rowoff != 80 {
		t.Fatalf("rowoff = %d, want 80", e.rowoff)
	}

	e.cursor.Row = 10
	e.scroll()
	if e.rowoff != 10 {
		t.Fatalf("rowoff = %d, want 10 after scrolling back", e.rowoff)
	}
}

func TestScrollHorizontalClamp(t *testing.T) {
	e := newTestEditor(strings.Repeat("x", 200))
	e.SetSize(24, 80)
	e.cursor = Cursor{Row: 0, Col: 150}
	e.scroll()
	if e.coloff != 150-80+1 {
		t.Fatalf("coloff = %d, want %d", e.coloff, 150-80+1)
	}
	e.cursor.Col = 5
	e.scroll()
	if e.coloff != 5 {
		t.Fatalf("coloff = %d, want 5", e.coloff)
	}
}

func TestScrollUsesRenderColumnForTabs(t *testing.T) {
	e := newTestEditor("\tabc")
	e.cursor = Cursor{Row: 0, Col: 1}
	e.scroll()
	if e.rx != 8 {
		t.Fatalf("rx = %d, want 8", e.rx)
	}
}

func TestRenderCursorPlacement(t *testing.T) {
	e := newTestEditor("hello")
	e.cursor = Cursor{Row: 0, Col: 3}
	out := renderToString(e)
	if !strings.Contains(out, "\x1b[1;4H") {
		t.Fatal("cursor escape should target row 1 col 4")
	}
}
