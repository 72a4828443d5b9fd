package git

import (
	"context"
	"fmt"
	"strings"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// DiffReader reads the change records between two refs of a repository.
type DiffReader struct {
	repo   *gogit.Repository
	opts   ReadOptions
	filter pathFilter
}

// NewDiffReader creates a reader for the given repository and diff spec.
func NewDiffReader(opts ReadOptions) (*DiffReader, error) {
	repo, err := gogit.PlainOpen(opts.RepoPath)
	if err != nil {
		return nil, fmt.Errorf("open repository: %w", err)
	}
	return &DiffReader{
		repo:   repo,
		opts:   opts,
		filter: pathFilter{include: opts.Include, exclude: opts.Exclude},
	}, nil
}

// ParseDiffSpec splits a diff spec into base and head refs.
// Supports both "..." (three-dot, merge-base comparison) and ".." (two-dot)
// syntax. mergeBase reports whether the base should be replaced by the
// merge base of the two refs.
func ParseDiffSpec(spec string) (base, head string, mergeBase bool, err error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return "", "", false, fmt.Errorf("empty diff spec")
	}

	// Try three-dot first (merge-base comparison)
	if idx := strings.Index(spec, "..."); idx != -1 {
		base = spec[:idx]
		head = spec[idx+3:]
		mergeBase = true
	} else if idx := strings.Index(spec, ".."); idx != -1 {
		base = spec[:idx]
		head = spec[idx+2:]
	} else {
		return "", "", false, fmt.Errorf("invalid diff spec %q: expected 'base..head' or 'base...head'", spec)
	}

	if base == "" {
		return "", "", false, fmt.Errorf("invalid diff spec %q: missing base ref", spec)
	}
	if head == "" {
		head = "HEAD"
	}

	return base, head, mergeBase, nil
}

// ReadRecords reads the change records between the two refs of the diff spec.
func (r *DiffReader) ReadRecords(ctx context.Context) ([]ChangeRecord, error) {
	base, head, mergeBase, err := ParseDiffSpec(r.opts.DiffSpec)
	if err != nil {
		return nil, err
	}

	baseCommit, err := r.resolveCommit(base)
	if err != nil {
		return nil, err
	}
	headCommit, err := r.resolveCommit(head)
	if err != nil {
		return nil, err
	}

	if mergeBase {
		bases, err := baseCommit.MergeBase(headCommit)
		if err != nil {
			return nil, fmt.Errorf("find merge base of %s and %s: %w", base, head, err)
		}
		if len(bases) > 0 {
			baseCommit = bases[0]
		}
	}

	baseTree, err := baseCommit.Tree()
	if err != nil {
		return nil, err
	}
	headTree, err := headCommit.Tree()
	if err != nil {
		return nil, err
	}

	changes, err := object.DiffTreeWithOptions(ctx, baseTree, headTree, object.DefaultDiffTreeOptions)
	if err != nil {
		return nil, fmt.Errorf("diff trees: %w", err)
	}

	records := make([]ChangeRecord, 0, len(changes))
	for _, change := range changes {
		record, ok, err := r.recordFromChange(change)
		if err != nil {
			return nil, err
		}
		if ok {
			records = append(records, record)
		}
	}

	return records, nil
}

// resolveCommit resolves a revision string to its commit object.
func (r *DiffReader) resolveCommit(rev string) (*object.Commit, error) {
	hash, err := r.repo.ResolveRevision(plumbing.Revision(rev))
	if err != nil {
		return nil, fmt.Errorf("resolve revision %q: %w", rev, err)
	}
	commit, err := r.repo.CommitObject(*hash)
	if err != nil {
		return nil, fmt.Errorf("load commit %s: %w", hash, err)
	}
	return commit, nil
}

// recordFromChange converts a go-git tree change into a ChangeRecord.
// The second return value is false when the change is filtered out.
func (r *DiffReader) recordFromChange(change *object.Change) (ChangeRecord, bool, error) {
	from, to, err := change.Files()
	if err != nil {
		return ChangeRecord{}, false, fmt.Errorf("load change files: %w", err)
	}

	record := ChangeRecord{
		OldPath: change.From.Name,
		NewPath: change.To.Name,
	}

	switch {
	case from == nil && to != nil:
		record.Kind = ChangeKindAdded
	case from != nil && to == nil:
		record.Kind = ChangeKindDeleted
	case change.From.Name != change.To.Name:
		record.Kind = ChangeKindRenamed
	case change.From.TreeEntry.Hash == change.To.TreeEntry.Hash &&
		change.From.TreeEntry.Mode != change.To.TreeEntry.Mode:
		record.Kind = ChangeKindPermChanged
	default:
		record.Kind = ChangeKindModified
	}

	path := record.NewPath
	if path == "" {
		path = record.OldPath
	}
	if path == "" || !r.filter.matches(path) {
		return ChangeRecord{}, false, nil
	}

	// Permission-only changes have identical content on both sides;
	// skip loading it.
	if record.Kind != ChangeKindPermChanged {
		record.OldContent, err = fileContents(from)
		if err != nil {
			return ChangeRecord{}, false, err
		}
		record.NewContent, err = fileContents(to)
		if err != nil {
			return ChangeRecord{}, false, err
		}
	}

	return record, true, nil
}

// fileContents returns the text content of a file, or empty for nil and
// binary files. Binary files keep empty contents so their line stats
// degrade to zero.
func fileContents(f *object.File) (string, error) {
	if f == nil {
		return "", nil
	}
	binary, err := f.IsBinary()
	if err != nil {
		return "", fmt.Errorf("check binary %s: %w", f.Name, err)
	}
	if binary {
		return "", nil
	}
	content, err := f.Contents()
	if err != nil {
		return "", fmt.Errorf("read contents %s: %w", f.Name, err)
	}
	return content, nil
}
