// Package app assembles the editor from its parts and drives the main
// loop: raw mode, key in, frame out, session state on the way down.
package app

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/kobzarvs/ced/internal/config"
	"github.com/kobzarvs/ced/internal/editor"
	"github.com/kobzarvs/ced/internal/gitinfo"
	"github.com/kobzarvs/ced/internal/logger"
	"github.com/kobzarvs/ced/internal/session"
	"github.com/kobzarvs/ced/internal/terminal"
)

type App struct {
	args []string
}

func New(args []string) *App {
	return &App{args: args}
}

// Run owns the terminal for its whole lifetime. Errors before raw mode
// is entered go to stderr via the caller; after that the screen belongs
// to the editor and problems surface in the status bar or the log file.
func (a *App) Run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	langs, err := config.LoadLanguages()
	if err != nil {
		return fmt.Errorf("load languages: %w", err)
	}

	if err := logger.Init(os.Getenv("CED_DEBUG") != ""); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Close()

	fd := int(os.Stdin.Fd())
	restore, err := terminal.EnableRawMode(fd)
	if err != nil {
		return err
	}
	defer restore()

	rows, cols, err := terminal.WindowSize(fd)
	if err != nil {
		return err
	}

	ed := editor.New(cfg, langs, terminal.NewInput(os.Stdin), os.Stdout)
	ed.SetSize(rows, cols)

	sess, err := session.NewManager()
	if err != nil {
		logger.Warn("session unavailable", "error", err)
		sess = nil
	}

	var absPath string
	if len(a.args) > 0 {
		path := a.args[0]
		if err := ed.OpenFile(path); err != nil {
			if !os.IsNotExist(err) {
				return fmt.Errorf("open %s: %w", path, err)
			}
			ed.SetFilename(path)
		}
		if p, err := filepath.Abs(path); err == nil {
			absPath = p
		}
		if sess != nil && absPath != "" {
			if state, ok := sess.FileState(absPath); ok {
				ed.RestoreView(state.CursorRow, state.CursorCol, state.RowOffset, state.ColOffset)
			}
		}
		ed.SetGitBranch(gitinfo.Branch(path))
	} else if cwd, err := os.Getwd(); err == nil {
		ed.SetGitBranch(gitinfo.Branch(cwd))
	}

	ed.SetStatusMessage("HELP: Ctrl-S = save | Ctrl-Q = quit | Ctrl-F = find")

	for {
		if r, c, err := terminal.WindowSize(fd); err == nil {
			ed.SetSize(r, c)
		}
		ed.Render()

		k, err := ed.ReadKey()
		if err != nil {
			break
		}
		if ed.HandleKey(k) {
			break
		}
	}

	if sess != nil && absPath != "" {
		row, col := ed.CursorPos()
		rowoff, coloff := ed.Offsets()
		sess.SetFileState(absPath, session.FileState{
			CursorRow: row,
			CursorCol: col,
			RowOffset: rowoff,
			ColOffset: coloff,
		})
		if err := sess.Save(); err != nil {
			logger.Warn("session save failed", "error", err)
		}
	}
	return nil
}
