package gitinfo

import (
	"os"
	"path/filepath"
	"testing"
)

func writeHead(t *testing.T, root, contents string) {
	t.Helper()
	gitDir := filepath.Join(root, ".git")
	if err := os.MkdirAll(gitDir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(gitDir, "HEAD"), []byte(contents), 0o644); err != nil {
		t.Fatalf("write HEAD: %v", err)
	}
}

func TestBranchFromRef(t *testing.T) {
	dir := t.TempDir()
	writeHead(t, dir, "ref: refs/heads/main\n")

	if got := Branch(dir); got != "main" {
		t.Fatalf("Branch = %q, want %q", got, "main")
	}
}

func TestBranchFromNestedPath(t *testing.T) {
	dir := t.TempDir()
	writeHead(t, dir, "ref: refs/heads/feature-x\n")

	sub := filepath.Join(dir, "a", "b")
	if err := os.MkdirAll(sub, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	file := filepath.Join(sub, "code.go")
	if err := os.WriteFile(file, nil, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	if got := Branch(file); got != "feature-x" {
		t.Fatalf("Branch = %q, want %q", got, "feature-x")
	}
}

func TestBranchDetachedHead(t *testing.T) {
	dir := t.TempDir()
	writeHead(t, dir, "1a2b3c4d5e6f7a8b9c0d1a2b3c4d5e6f7a8b9c0d\n")

	if got := Branch(dir); got != "detached:1a2b3c4" {
		t.Fatalf("Branch = %q, want %q", got, "detached:1a2b3c4")
	}
}

func TestBranchOutsideRepo(t *testing.T) {
	if got := Branch(t.TempDir()); got != "" {
		t.Fatalf("Branch = %q, want empty", got)
	}
}

func TestBranchGitdirPointerFile(t *testing.T) {
	dir := t.TempDir()
	realGit := filepath.Join(dir, "real-git")
	if err := os.MkdirAll(realGit, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(realGit, "HEAD"), []byte("ref: refs/heads/worktree\n"), 0o644); err != nil {
		t.Fatalf("write HEAD: %v", err)
	}

	wt := filepath.Join(dir, "wt")
	if err := os.MkdirAll(wt, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(wt, ".git"), []byte("gitdir: "+realGit+"\n"), 0o644); err != nil {
		t.Fatalf("write pointer: %v", err)
	}

	if got := Branch(wt); got != "worktree" {
		t.Fatalf("Branch = %q, want %q", got, "worktree")
	}
}
