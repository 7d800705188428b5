package editor

import "github.com/kobzarvs/ced/internal/terminal"

// promptCallback is a prompt strategy: it sees the accumulated input and
// the key just pressed, once per keystroke. Search uses it to run the
// incremental scan; plain prompts pass nil.
type promptCallback func(input string, k terminal.Key)

// prompt runs an interactive status-bar prompt. format must contain one
// %s verb for the accumulated input. Escape cancels (ok=false), Enter
// accepts non-empty input. One full frame is rendered per keystroke.
func (e *Editor) prompt(format string, cb promptCallback) (string, bool) {
	var buf []byte
	for {
		e.SetStatusMessage(format, buf)
		e.Render()

		k, err := e.keys.ReadKey()
		if err != nil {
			e.SetStatusMessage("")
			return "", false
		}
		switch {
		case k == terminal.KeyDelete || k == terminal.Ctrl('h') || k == terminal.KeyBackspace:
			if len(buf) > 0 {
				buf = buf[:len(buf)-1]
			}
		case k == terminal.KeyEscape:
			e.SetStatusMessage("")
			if cb != nil {
				cb(string(buf), k)
			}
			return "", false
		case k == terminal.KeyEnter:
			if len(buf) != 0 {
				e.SetStatusMessage("")
				if cb != nil {
					cb(string(buf), k)
				}
				return string(buf), true
			}
		case k >= 32 && k < 127:
			buf = append(buf, byte(k))
		}
		if cb != nil {
			cb(string(buf), k)
		}
	}
}
