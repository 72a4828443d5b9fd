package stats

import (
	"strconv"
	"strings"

	"github.com/masmgr/difftree-go/internal/git"
)

// FileStat is the normalized per-file statistic derived from a change
// record. ID anchors the file in the diff tree; Path is the ID with
// leading slashes stripped.
type FileStat struct {
	ID     string
	Path   string
	Change git.ChangeKind
	Add    int
	Del    int
}

// Churn returns total lines changed (added + deleted).
func (s FileStat) Churn() int {
	return s.Add + s.Del
}

// LineCount holds added/deleted line counts for one old/new content pair.
type LineCount struct {
	Add int
	Del int
}

// LineCounter computes line counts for an old/new content pair.
// Implementations may fail; callers decide how to degrade.
type LineCounter interface {
	CountLines(oldName, oldContent, newName, newContent string) (LineCount, error)
}

// Extractor maps change records to per-file statistics.
type Extractor struct {
	counter LineCounter
}

// NewExtractor creates an extractor backed by the given line counter.
func NewExtractor(counter LineCounter) *Extractor {
	return &Extractor{counter: counter}
}

// ToFileStats maps each record to a FileStat, one output per input, in
// input order. A record with neither path gets its list index as identity.
// A failing line counter degrades to zero counts; no error escapes.
func (e *Extractor) ToFileStats(records []git.ChangeRecord) []FileStat {
	result := make([]FileStat, len(records))

	for i, record := range records {
		id := record.NewPath
		if id == "" {
			id = record.OldPath
		}
		if id == "" {
			id = strconv.Itoa(i)
		}

		stat := FileStat{
			ID:     id,
			Path:   normalizePath(id),
			Change: record.Kind,
		}

		count, err := e.counter.CountLines(record.OldPath, record.OldContent, record.NewPath, record.NewContent)
		if err == nil {
			stat.Add = count.Add
			stat.Del = count.Del
		}

		result[i] = stat
	}

	return result
}

// normalizePath strips leading slashes from a path.
func normalizePath(path string) string {
	return strings.TrimLeft(path, "/")
}
