package git

// ChangeRecord represents a single file change reported by a diff source.
// Old and new sides are both optional: added files carry no old path,
// deleted files carry no new path. Contents are empty for binary files and
// for sides that do not exist.
type ChangeRecord struct {
	OldPath    string
	NewPath    string
	Kind       ChangeKind
	OldContent string
	NewContent string
}

// ChangeKind represents the type of change.
type ChangeKind int

const (
	ChangeKindAdded ChangeKind = iota
	ChangeKindModified
	ChangeKindDeleted
	ChangeKindRenamed
	ChangeKindCopied
	ChangeKindPermChanged
)

// String returns a string representation of the change kind.
func (k ChangeKind) String() string {
	switch k {
	case ChangeKindAdded:
		return "added"
	case ChangeKindModified:
		return "modified"
	case ChangeKindDeleted:
		return "deleted"
	case ChangeKindRenamed:
		return "renamed"
	case ChangeKindCopied:
		return "copied"
	case ChangeKindPermChanged:
		return "permission-changed"
	default:
		return "unknown"
	}
}

// Symbol returns the single-letter status marker used in console output.
func (k ChangeKind) Symbol() string {
	switch k {
	case ChangeKindAdded:
		return "A"
	case ChangeKindModified:
		return "M"
	case ChangeKindDeleted:
		return "D"
	case ChangeKindRenamed:
		return "R"
	case ChangeKindCopied:
		return "C"
	case ChangeKindPermChanged:
		return "T"
	default:
		return "?"
	}
}

// ReadOptions configures a change reader.
type ReadOptions struct {
	RepoPath string
	DiffSpec string   // e.g., "origin/main...HEAD"; empty means working tree vs HEAD
	Include  []string // Glob patterns to include
	Exclude  []string // Glob patterns to exclude
}
