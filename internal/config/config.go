package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

type EditorOptions struct {
	// TabStop is the fixed tab-stop width used for render-form expansion
	// and all column arithmetic.
	TabStop int `toml:"tab-stop"`
	// QuitTimes is how many times an unsaved quit must be confirmed.
	QuitTimes int `toml:"quit-times"`
	// UndoDepth bounds both the undo and the redo stack. When the undo
	// stack is full, new entries are silently not recorded; nothing is
	// evicted.
	UndoDepth int `toml:"undo-depth"`
	// MessageTimeout is how long a status message stays visible, in
	// seconds.
	MessageTimeout  int    `toml:"message-timeout"`
	GitBranchSymbol string `toml:"git-branch-symbol"`
}

// Theme maps highlight classes to ANSI SGR foreground color codes.
type Theme struct {
	Comment  int `toml:"comment"`
	Keyword1 int `toml:"keyword1"`
	Keyword2 int `toml:"keyword2"`
	String   int `toml:"string"`
	Number   int `toml:"number"`
	Match    int `toml:"match"`
}

type Config struct {
	Editor EditorOptions `toml:"editor"`
	Theme  Theme         `toml:"theme"`
}

func Default() Config {
	return Config{
		Editor: EditorOptions{
			TabStop:         8,
			QuitTimes:       3,
			UndoDepth:       256,
			MessageTimeout:  5,
			GitBranchSymbol: "git:",
		},
		Theme: Theme{
			Comment:  36,
			Keyword1: 33,
			Keyword2: 32,
			String:   35,
			Number:   31,
			Match:    34,
		},
	}
}

func Load() (Config, error) {
	cfg := Default()
	path, err := ConfigPath()
	if err != nil {
		return cfg, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}

	var userCfg Config
	if _, err := toml.Decode(string(data), &userCfg); err != nil {
		return cfg, err
	}

	if userCfg.Editor.TabStop > 0 {
		cfg.Editor.TabStop = userCfg.Editor.TabStop
	}
	if userCfg.Editor.QuitTimes > 0 {
		cfg.Editor.QuitTimes = userCfg.Editor.QuitTimes
	}
	if userCfg.Editor.UndoDepth > 0 {
		cfg.Editor.UndoDepth = userCfg.Editor.UndoDepth
	}
	if userCfg.Editor.MessageTimeout > 0 {
		cfg.Editor.MessageTimeout = userCfg.Editor.MessageTimeout
	}
	if userCfg.Editor.GitBranchSymbol != "" {
		cfg.Editor.GitBranchSymbol = userCfg.Editor.GitBranchSymbol
	}
	if userCfg.Theme.Comment > 0 {
		cfg.Theme.Comment = userCfg.Theme.Comment
	}
	if userCfg.Theme.Keyword1 > 0 {
		cfg.Theme.Keyword1 = userCfg.Theme.Keyword1
	}
	if userCfg.Theme.Keyword2 > 0 {
		cfg.Theme.Keyword2 = userCfg.Theme.Keyword2
	}
	if userCfg.Theme.String > 0 {
		cfg.Theme.String = userCfg.Theme.String
	}
	if userCfg.Theme.Number > 0 {
		cfg.Theme.Number = userCfg.Theme.Number
	}
	if userCfg.Theme.Match > 0 {
		cfg.Theme.Match = userCfg.Theme.Match
	}

	return cfg, nil
}

func ConfigDir() (string, error) {
	if v := os.Getenv("CED_CONFIG_HOME"); v != "" {
		return filepath.Join(v), nil
	}
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return filepath.Join(v, "ced"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "ced"), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}
