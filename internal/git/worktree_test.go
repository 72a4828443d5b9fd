package git

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	gogit "github.com/go-git/go-git/v5"
)

func TestWorktreeChangeKind(t *testing.T) {
	tests := []struct {
		name     string
		staging  gogit.StatusCode
		worktree gogit.StatusCode
		expected ChangeKind
	}{
		{name: "Untracked", staging: gogit.Untracked, worktree: gogit.Untracked, expected: ChangeKindAdded},
		{name: "Staged addition", staging: gogit.Added, worktree: gogit.Unmodified, expected: ChangeKindAdded},
		{name: "Staged deletion", staging: gogit.Deleted, worktree: gogit.Unmodified, expected: ChangeKindDeleted},
		{name: "Unstaged deletion", staging: gogit.Unmodified, worktree: gogit.Deleted, expected: ChangeKindDeleted},
		{name: "Staged rename", staging: gogit.Renamed, worktree: gogit.Unmodified, expected: ChangeKindRenamed},
		{name: "Staged copy", staging: gogit.Copied, worktree: gogit.Unmodified, expected: ChangeKindCopied},
		{name: "Unstaged modification", staging: gogit.Unmodified, worktree: gogit.Modified, expected: ChangeKindModified},
		{name: "Staged modification", staging: gogit.Modified, worktree: gogit.Unmodified, expected: ChangeKindModified},
		{name: "Staging wins over worktree", staging: gogit.Added, worktree: gogit.Modified, expected: ChangeKindAdded},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := &gogit.FileStatus{Staging: tt.staging, Worktree: tt.worktree}
			if got := worktreeChangeKind(st); got != tt.expected {
				t.Errorf("worktreeChangeKind(%c, %c) = %v, expected %v",
					tt.staging, tt.worktree, got, tt.expected)
			}
		})
	}
}

func TestIsBinaryContent(t *testing.T) {
	tests := []struct {
		name     string
		data     []byte
		expected bool
	}{
		{name: "Empty", data: nil, expected: false},
		{name: "Plain text", data: []byte("hello\nworld\n"), expected: false},
		{name: "NUL byte", data: []byte("abc\x00def"), expected: true},
		{name: "NUL beyond sniff window", data: append([]byte(strings.Repeat("a", 9000)), 0), expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isBinaryContent(tt.data); got != tt.expected {
				t.Errorf("isBinaryContent = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestWorktreeReader_ReadRecords(t *testing.T) {
	root, repo := initTestRepo(t)

	writeTestFile(t, root, "src/a.txt", "one\ntwo\n")
	writeTestFile(t, root, "src/gone.txt", "bye\n")
	commitAll(t, repo, "initial")

	writeTestFile(t, root, "src/a.txt", "one\nthree\n")
	writeTestFile(t, root, "docs/new.md", "hello\n")
	if err := os.Remove(filepath.Join(root, "src", "gone.txt")); err != nil {
		t.Fatalf("remove src/gone.txt: %v", err)
	}

	reader, err := NewWorktreeReader(ReadOptions{RepoPath: root})
	if err != nil {
		t.Fatalf("NewWorktreeReader: %v", err)
	}

	records, err := reader.ReadRecords(context.Background())
	if err != nil {
		t.Fatalf("ReadRecords: %v", err)
	}

	if len(records) != 3 {
		t.Fatalf("got %d records, expected 3: %+v", len(records), records)
	}

	// Paths are sorted, so the order is deterministic.
	added := records[0]
	if added.NewPath != "docs/new.md" || added.Kind != ChangeKindAdded {
		t.Errorf("records[0] = %q %v, expected docs/new.md added", added.NewPath, added.Kind)
	}
	if added.OldPath != "" || added.OldContent != "" {
		t.Errorf("untracked file has old side: %q %q", added.OldPath, added.OldContent)
	}
	if added.NewContent != "hello\n" {
		t.Errorf("docs/new.md content = %q", added.NewContent)
	}

	modified := records[1]
	if modified.NewPath != "src/a.txt" || modified.Kind != ChangeKindModified {
		t.Errorf("records[1] = %q %v, expected src/a.txt modified", modified.NewPath, modified.Kind)
	}
	if modified.OldContent != "one\ntwo\n" || modified.NewContent != "one\nthree\n" {
		t.Errorf("src/a.txt contents = %q -> %q", modified.OldContent, modified.NewContent)
	}

	deleted := records[2]
	if deleted.OldPath != "src/gone.txt" || deleted.Kind != ChangeKindDeleted {
		t.Errorf("records[2] = %q %v, expected src/gone.txt deleted", deleted.OldPath, deleted.Kind)
	}
	if deleted.NewPath != "" || deleted.NewContent != "" {
		t.Errorf("deleted file has new side: %q %q", deleted.NewPath, deleted.NewContent)
	}
	if deleted.OldContent != "bye\n" {
		t.Errorf("src/gone.txt old content = %q", deleted.OldContent)
	}
}

func TestWorktreeReader_EmptyRepository(t *testing.T) {
	root, _ := initTestRepo(t)

	writeTestFile(t, root, "a.txt", "first\n")

	reader, err := NewWorktreeReader(ReadOptions{RepoPath: root})
	if err != nil {
		t.Fatalf("NewWorktreeReader: %v", err)
	}

	records, err := reader.ReadRecords(context.Background())
	if err != nil {
		t.Fatalf("ReadRecords: %v", err)
	}

	if len(records) != 1 {
		t.Fatalf("got %d records, expected 1", len(records))
	}
	if records[0].Kind != ChangeKindAdded || records[0].NewPath != "a.txt" {
		t.Errorf("record = %+v, expected a.txt added", records[0])
	}
}

func TestWorktreeReader_CleanWorktree(t *testing.T) {
	root, repo := initTestRepo(t)

	writeTestFile(t, root, "a.txt", "x\n")
	commitAll(t, repo, "initial")

	reader, err := NewWorktreeReader(ReadOptions{RepoPath: root})
	if err != nil {
		t.Fatalf("NewWorktreeReader: %v", err)
	}

	records, err := reader.ReadRecords(context.Background())
	if err != nil {
		t.Fatalf("ReadRecords: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("got %d records for a clean worktree, expected 0", len(records))
	}
}

func TestWorktreeReader_AppliesFilters(t *testing.T) {
	root, repo := initTestRepo(t)

	writeTestFile(t, root, "src/a.go", "package a\n")
	commitAll(t, repo, "initial")

	writeTestFile(t, root, "src/a.go", "package a // changed\n")
	writeTestFile(t, root, "notes.txt", "scratch\n")

	reader, err := NewWorktreeReader(ReadOptions{
		RepoPath: root,
		Include:  []string{"**/*.go"},
	})
	if err != nil {
		t.Fatalf("NewWorktreeReader: %v", err)
	}

	records, err := reader.ReadRecords(context.Background())
	if err != nil {
		t.Fatalf("ReadRecords: %v", err)
	}

	if len(records) != 1 {
		t.Fatalf("got %d records, expected only src/a.go", len(records))
	}
	if records[0].NewPath != "src/a.go" {
		t.Errorf("path = %q, expected src/a.go", records[0].NewPath)
	}
}
