package config

import (
	"path/filepath"
	"testing"
)

func TestMatchByExtension(t *testing.T) {
	langs := Builtin()
	if l := langs.Match("/src/main.go"); l == nil || l.Name != "go" {
		t.Fatalf("Match(main.go) = %v, want go", l)
	}
	if l := langs.Match("kernel.C"); l == nil || l.Name != "c" {
		t.Fatalf("Match(kernel.C) = %v, want c (case-insensitive)", l)
	}
	if l := langs.Match("notes.txt"); l != nil {
		t.Fatalf("Match(notes.txt) = %v, want nil", l)
	}
	if l := langs.Match("README"); l != nil {
		t.Fatalf("Match(README) = %v, want nil", l)
	}
}

func TestMatchByBaseName(t *testing.T) {
	langs := Builtin()
	if l := langs.Match("/proj/go.mod"); l == nil || l.Name != "go" {
		t.Fatalf("Match(go.mod) = %v, want go", l)
	}
}

func TestBuiltinKeywordClasses(t *testing.T) {
	langs := Builtin()
	c := langs.Match("x.c")
	if c == nil {
		t.Fatal("no builtin c language")
	}
	var sawPrimary, sawSecondary bool
	for _, kw := range c.Keywords {
		if kw == "if" {
			sawPrimary = true
		}
		if kw == "int|" {
			sawSecondary = true
		}
	}
	if !sawPrimary || !sawSecondary {
		t.Fatalf("c keywords missing classes: primary=%v secondary=%v", sawPrimary, sawSecondary)
	}
}

func TestLoadLanguagesMergesUserFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("CED_CONFIG_HOME", dir)

	writeFile(t, filepath.Join(dir, "languages.toml"), `
[[language]]
name = "go"
file-types = ["go"]
keywords = ["func"]
highlight-numbers = false
highlight-strings = true

[[language]]
name = "python"
file-types = ["py"]
keywords = ["def", "class", "int|"]
single-line-comment = "#"
highlight-numbers = true
highlight-strings = true
`)

	langs, err := LoadLanguages()
	if err != nil {
		t.Fatalf("LoadLanguages error: %v", err)
	}

	goLang := langs.Match("main.go")
	if goLang == nil {
		t.Fatal("go language missing after merge")
	}
	if len(goLang.Keywords) != 1 || goLang.Keywords[0] != "func" {
		t.Fatalf("go keywords = %v, want user override", goLang.Keywords)
	}

	py := langs.Match("app.py")
	if py == nil || py.Name != "python" {
		t.Fatalf("Match(app.py) = %v, want python", py)
	}
	if py.SingleLineComment != "#" {
		t.Fatalf("python comment = %q, want #", py.SingleLineComment)
	}

	if langs.Match("x.c") == nil {
		t.Fatal("builtin c should survive the merge")
	}
}

func TestLoadLanguagesWithoutUserFile(t *testing.T) {
	t.Setenv("CED_CONFIG_HOME", t.TempDir())
	langs, err := LoadLanguages()
	if err != nil {
		t.Fatalf("LoadLanguages error: %v", err)
	}
	if len(langs.Languages) != len(Builtin().Languages) {
		t.Fatalf("languages = %d, want builtin count", len(langs.Languages))
	}
}
