package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Language describes one syntax-highlighting definition. Keywords ending
// in "|" belong to the secondary keyword class (types, mostly); the
// marker is stripped by the highlighter.
type Language struct {
	Name                  string   `toml:"name"`
	FileTypes             []string `toml:"file-types"`
	Keywords              []string `toml:"keywords"`
	SingleLineComment     string   `toml:"single-line-comment"`
	MultiLineCommentStart string   `toml:"multi-line-comment-start"`
	MultiLineCommentEnd   string   `toml:"multi-line-comment-end"`
	HighlightNumbers      bool     `toml:"highlight-numbers"`
	HighlightStrings      bool     `toml:"highlight-strings"`
}

type Languages struct {
	Languages []Language `toml:"language"`
}

// Match selects the language for a file path by extension or exact base
// name. A nil result means no highlighting.
func (l Languages) Match(path string) *Language {
	base := strings.ToLower(filepath.Base(path))
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(base), "."))
	for i := range l.Languages {
		lang := &l.Languages[i]
		for _, ft := range lang.FileTypes {
			ftLower := strings.ToLower(strings.TrimPrefix(ft, "."))
			if ftLower == ext || strings.ToLower(ft) == base {
				return lang
			}
		}
	}
	return nil
}

// Builtin returns the compiled-in language table.
func Builtin() Languages {
	return Languages{
		Languages: []Language{
			{
				Name:      "c",
				FileTypes: []string{"c", "h", "cpp", "hpp", "cc"},
				Keywords: []string{
					"auto", "break", "case", "continue", "default", "do",
					"else", "enum", "extern", "for", "goto", "if", "register",
					"return", "sizeof", "static", "struct", "switch",
					"typedef", "union", "volatile", "while", "NULL",
					"int|", "long|", "double|", "float|", "char|",
					"unsigned|", "signed|", "void|", "short|", "const|",
					"bool|",
				},
				SingleLineComment:     "//",
				MultiLineCommentStart: "/*",
				MultiLineCommentEnd:   "*/",
				HighlightNumbers:      true,
				HighlightStrings:      true,
			},
			{
				Name:      "go",
				FileTypes: []string{"go", "go.mod"},
				Keywords: []string{
					"break", "case", "chan", "const", "continue", "default",
					"defer", "else", "fallthrough", "for", "func", "go",
					"goto", "if", "import", "interface", "map", "package",
					"range", "return", "select", "struct", "switch", "type",
					"var", "nil", "true", "false", "iota",
					"bool|", "byte|", "complex64|", "complex128|", "error|",
					"float32|", "float64|", "int|", "int8|", "int16|",
					"int32|", "int64|", "rune|", "string|", "uint|",
					"uint8|", "uint16|", "uint32|", "uint64|", "uintptr|",
				},
				SingleLineComment:     "//",
				MultiLineCommentStart: "/*",
				MultiLineCommentEnd:   "*/",
				HighlightNumbers:      true,
				HighlightStrings:      true,
			},
		},
	}
}

// LoadLanguages merges user definitions from languages.toml over the
// built-in table. A user language with a built-in name replaces it;
// anything else is appended.
func LoadLanguages() (Languages, error) {
	langs := Builtin()
	path, err := LanguagesPath()
	if err != nil {
		return langs, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return langs, nil
		}
		return langs, err
	}

	var user Languages
	if _, err := toml.Decode(string(data), &user); err != nil {
		return langs, err
	}
	for _, ul := range user.Languages {
		replaced := false
		for i := range langs.Languages {
			if langs.Languages[i].Name == ul.Name {
				langs.Languages[i] = ul
				replaced = true
				break
			}
		}
		if !replaced {
			langs.Languages = append(langs.Languages, ul)
		}
	}
	return langs, nil
}

func LanguagesPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "languages.toml"), nil
}
