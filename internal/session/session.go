// Package session remembers where you were: cursor and scroll offsets per
// file, persisted across editor runs. It deliberately does not persist
// the undo log or document contents.
package session

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

// FileState stores the remembered state of a single file.
type FileState struct {
	CursorRow int `json:"cursor_row"`
	CursorCol int `json:"cursor_col"`
	RowOffset int `json:"row_offset"`
	ColOffset int `json:"col_offset"`
}

// Session is the on-disk shape of the state file.
type Session struct {
	Files     map[string]FileState `json:"files"`
	LastSaved time.Time            `json:"last_saved"`
}

// Manager loads the session at startup and writes it back on exit. The
// editor is single-threaded, so there is no autosave loop and no locking;
// Save is called once, after the edit loop finishes.
type Manager struct {
	session Session
	path    string
	dirty   bool
}

func NewManager() (*Manager, error) {
	path, err := sessionPath()
	if err != nil {
		return nil, err
	}
	m := &Manager{
		session: Session{Files: make(map[string]FileState)},
		path:    path,
	}
	m.load()
	return m, nil
}

func sessionPath() (string, error) {
	stateDir := os.Getenv("XDG_STATE_HOME")
	if stateDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		stateDir = filepath.Join(home, ".local", "state")
	}
	dir := filepath.Join(stateDir, "ced")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return filepath.Join(dir, "session.json"), nil
}

func (m *Manager) load() {
	data, err := os.ReadFile(m.path)
	if err != nil {
		return // no existing session, start fresh
	}
	var session Session
	if err := json.Unmarshal(data, &session); err != nil {
		return
	}
	if session.Files == nil {
		session.Files = make(map[string]FileState)
	}
	m.session = session
}

// Save persists the session to disk if anything changed.
func (m *Manager) Save() error {
	if !m.dirty {
		return nil
	}
	m.session.LastSaved = time.Now()
	data, err := json.MarshalIndent(m.session, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(m.path, data, 0o644); err != nil {
		return err
	}
	m.dirty = false
	return nil
}

// FileState returns the saved state for a file, keyed by absolute path.
func (m *Manager) FileState(absPath string) (FileState, bool) {
	state, ok := m.session.Files[absPath]
	return state, ok
}

// SetFileState updates the state for a file.
func (m *Manager) SetFileState(absPath string, state FileState) {
	m.session.Files[absPath] = state
	m.dirty = true
}
