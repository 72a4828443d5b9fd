package stats

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// DefaultDiffTimeout bounds a single diff computation.
const DefaultDiffTimeout = time.Second

// DiffLineCounter computes added/deleted line counts with a line-level
// diff. Each line is mapped to a rune before diffing, so insert/delete
// edit lengths are line counts.
type DiffLineCounter struct {
	IgnoreWhitespace bool
	Timeout          time.Duration
}

// NewDiffLineCounter creates a counter with the default timeout.
func NewDiffLineCounter() *DiffLineCounter {
	return &DiffLineCounter{Timeout: DefaultDiffTimeout}
}

// CountLines diffs the old and new content and returns the number of added
// and deleted lines. It fails on binary content.
func (c *DiffLineCounter) CountLines(oldName, oldContent, newName, newContent string) (LineCount, error) {
	if strings.ContainsRune(oldContent, 0) {
		return LineCount{}, fmt.Errorf("binary content: %s", nameOrPlaceholder(oldName))
	}
	if strings.ContainsRune(newContent, 0) {
		return LineCount{}, fmt.Errorf("binary content: %s", nameOrPlaceholder(newName))
	}

	dmp := diffmatchpatch.New()
	dmp.DiffTimeout = c.Timeout

	src, dst, _ := dmp.DiffLinesToRunes(
		stripWhitespace(oldContent, c.IgnoreWhitespace),
		stripWhitespace(newContent, c.IgnoreWhitespace),
	)
	diffs := dmp.DiffMainRunes(src, dst, false)

	var count LineCount
	for _, edit := range diffs {
		switch edit.Type {
		case diffmatchpatch.DiffInsert:
			count.Add += utf8.RuneCountInString(edit.Text)
		case diffmatchpatch.DiffDelete:
			count.Del += utf8.RuneCountInString(edit.Text)
		}
	}

	return count, nil
}

func stripWhitespace(str string, ignoreWhitespace bool) string {
	if ignoreWhitespace {
		return strings.ReplaceAll(str, " ", "")
	}
	return str
}

func nameOrPlaceholder(name string) string {
	if name == "" {
		return "<unnamed>"
	}
	return name
}

// Compile-time interface conformance check.
var _ LineCounter = (*DiffLineCounter)(nil)
