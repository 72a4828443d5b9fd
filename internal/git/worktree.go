package git

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// WorktreeReader reads the uncommitted changes of a repository: staged and
// unstaged modifications plus untracked files, compared against HEAD.
type WorktreeReader struct {
	repo   *gogit.Repository
	opts   ReadOptions
	filter pathFilter
}

// NewWorktreeReader creates a reader for the working tree of the given
// repository.
func NewWorktreeReader(opts ReadOptions) (*WorktreeReader, error) {
	repo, err := gogit.PlainOpen(opts.RepoPath)
	if err != nil {
		return nil, fmt.Errorf("open repository: %w", err)
	}
	return &WorktreeReader{
		repo:   repo,
		opts:   opts,
		filter: pathFilter{include: opts.Include, exclude: opts.Exclude},
	}, nil
}

// ReadRecords reads one change record per modified path in the working tree.
func (r *WorktreeReader) ReadRecords(_ context.Context) ([]ChangeRecord, error) {
	wt, err := r.repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("open worktree: %w", err)
	}

	status, err := wt.Status()
	if err != nil {
		return nil, fmt.Errorf("read status: %w", err)
	}

	headTree, err := r.headTree()
	if err != nil {
		return nil, err
	}

	// Status is a map; sort paths so the output order is stable.
	paths := make([]string, 0, len(status))
	for path, st := range status {
		if st.Staging == gogit.Unmodified && st.Worktree == gogit.Unmodified {
			continue
		}
		if !r.filter.matches(path) {
			continue
		}
		paths = append(paths, path)
	}
	sort.Strings(paths)

	root := wt.Filesystem.Root()
	records := make([]ChangeRecord, 0, len(paths))
	for _, path := range paths {
		record, err := r.recordFromStatus(headTree, root, path, status[path])
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return records, nil
}

// headTree returns the tree of the HEAD commit, or nil for a repository
// without commits.
func (r *WorktreeReader) headTree() (*object.Tree, error) {
	ref, err := r.repo.Head()
	if err != nil {
		// Empty repository: every file is an addition against nothing.
		return nil, nil
	}
	commit, err := r.repo.CommitObject(ref.Hash())
	if err != nil {
		return nil, fmt.Errorf("load HEAD commit: %w", err)
	}
	tree, err := commit.Tree()
	if err != nil {
		return nil, fmt.Errorf("load HEAD tree: %w", err)
	}
	return tree, nil
}

// recordFromStatus converts one status entry into a ChangeRecord.
func (r *WorktreeReader) recordFromStatus(headTree *object.Tree, root, path string, st *gogit.FileStatus) (ChangeRecord, error) {
	record := ChangeRecord{
		OldPath: path,
		NewPath: path,
		Kind:    worktreeChangeKind(st),
	}

	switch record.Kind {
	case ChangeKindAdded:
		record.OldPath = ""
	case ChangeKindDeleted:
		record.NewPath = ""
	case ChangeKindRenamed, ChangeKindCopied:
		// Extra carries the original path for renames and copies.
		if st.Extra != "" {
			record.OldPath = st.Extra
		}
	}

	if record.OldPath != "" {
		content, err := headTreeContents(headTree, record.OldPath)
		if err != nil {
			return ChangeRecord{}, err
		}
		record.OldContent = content
	}

	if record.NewPath != "" {
		data, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(record.NewPath)))
		if err != nil {
			return ChangeRecord{}, fmt.Errorf("read %s: %w", record.NewPath, err)
		}
		if !isBinaryContent(data) {
			record.NewContent = string(data)
		}
	}

	return record, nil
}

// worktreeChangeKind maps a status entry to a ChangeKind. The staging code
// takes precedence over the worktree code.
func worktreeChangeKind(st *gogit.FileStatus) ChangeKind {
	codes := []gogit.StatusCode{st.Staging, st.Worktree}
	for _, code := range codes {
		switch code {
		case gogit.Untracked, gogit.Added:
			return ChangeKindAdded
		case gogit.Deleted:
			return ChangeKindDeleted
		case gogit.Renamed:
			return ChangeKindRenamed
		case gogit.Copied:
			return ChangeKindCopied
		}
	}
	return ChangeKindModified
}

// headTreeContents reads the text content of a path from the HEAD tree.
// Missing and binary files yield empty content.
func headTreeContents(headTree *object.Tree, path string) (string, error) {
	if headTree == nil {
		return "", nil
	}
	file, err := headTree.File(path)
	if err != nil {
		if errors.Is(err, object.ErrFileNotFound) {
			return "", nil
		}
		return "", fmt.Errorf("load %s from HEAD: %w", path, err)
	}
	return fileContents(file)
}

// isBinaryContent reports whether data looks binary (contains a NUL byte
// in its first 8000 bytes, matching git's heuristic).
func isBinaryContent(data []byte) bool {
	const sniffLen = 8000
	if len(data) > sniffLen {
		data = data[:sniffLen]
	}
	return bytes.IndexByte(data, 0) != -1
}
