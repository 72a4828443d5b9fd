package stats

import (
	"errors"
	"reflect"
	"testing"

	"github.com/masmgr/difftree-go/internal/git"
)

// stubCounter is a LineCounter returning fixed counts or a fixed error.
type stubCounter struct {
	count LineCount
	err   error
	calls int
}

func (s *stubCounter) CountLines(_, _, _, _ string) (LineCount, error) {
	s.calls++
	return s.count, s.err
}

func TestToFileStats_EmptyInput(t *testing.T) {
	extractor := NewExtractor(&stubCounter{})

	result := extractor.ToFileStats(nil)
	if len(result) != 0 {
		t.Fatalf("got %d stats, expected 0", len(result))
	}
}

func TestToFileStats_OrderPreservingOnePerRecord(t *testing.T) {
	extractor := NewExtractor(&stubCounter{count: LineCount{Add: 1, Del: 2}})

	records := []git.ChangeRecord{
		{NewPath: "b.go", Kind: git.ChangeKindAdded},
		{NewPath: "a.go", Kind: git.ChangeKindModified, OldPath: "a.go"},
		{OldPath: "z.go", Kind: git.ChangeKindDeleted},
	}

	result := extractor.ToFileStats(records)

	if len(result) != len(records) {
		t.Fatalf("got %d stats, expected %d", len(result), len(records))
	}
	wantIDs := []string{"b.go", "a.go", "z.go"}
	for i, want := range wantIDs {
		if result[i].ID != want {
			t.Errorf("stats[%d].ID = %q, expected %q", i, result[i].ID, want)
		}
	}
}

func TestToFileStats_IDPrecedence(t *testing.T) {
	tests := []struct {
		name     string
		record   git.ChangeRecord
		expected string
	}{
		{name: "New path wins", record: git.ChangeRecord{OldPath: "old.go", NewPath: "new.go"}, expected: "new.go"},
		{name: "Old path fallback", record: git.ChangeRecord{OldPath: "old.go"}, expected: "old.go"},
	}

	extractor := NewExtractor(&stubCounter{})
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := extractor.ToFileStats([]git.ChangeRecord{tt.record})
			if result[0].ID != tt.expected {
				t.Errorf("ID = %q, expected %q", result[0].ID, tt.expected)
			}
		})
	}
}

func TestToFileStats_PositionalFallbackID(t *testing.T) {
	extractor := NewExtractor(&stubCounter{})

	// A record with neither path at index 3 gets "3" as its identity.
	records := []git.ChangeRecord{
		{NewPath: "a.go"},
		{NewPath: "b.go"},
		{NewPath: "c.go"},
		{},
	}

	result := extractor.ToFileStats(records)

	if result[3].ID != "3" {
		t.Errorf("ID = %q, expected \"3\"", result[3].ID)
	}
	if result[3].Path != "3" {
		t.Errorf("Path = %q, expected \"3\"", result[3].Path)
	}
}

func TestToFileStats_NormalizesLeadingSlashes(t *testing.T) {
	extractor := NewExtractor(&stubCounter{})

	result := extractor.ToFileStats([]git.ChangeRecord{{NewPath: "/a/b.txt"}})

	if result[0].ID != "/a/b.txt" {
		t.Errorf("ID = %q, expected the raw path /a/b.txt", result[0].ID)
	}
	if result[0].Path != "a/b.txt" {
		t.Errorf("Path = %q, expected a/b.txt", result[0].Path)
	}
}

func TestToFileStats_CounterFailureDegradesToZero(t *testing.T) {
	counter := &stubCounter{count: LineCount{Add: 9, Del: 9}, err: errors.New("unsupported format")}
	extractor := NewExtractor(counter)

	result := extractor.ToFileStats([]git.ChangeRecord{{NewPath: "a.bin", Kind: git.ChangeKindAdded}})

	if result[0].Add != 0 || result[0].Del != 0 {
		t.Errorf("counts = +%d -%d, expected zeros on counter failure", result[0].Add, result[0].Del)
	}
	if counter.calls != 1 {
		t.Errorf("counter called %d times, expected 1", counter.calls)
	}
}

func TestToFileStats_CopiesChangeKind(t *testing.T) {
	extractor := NewExtractor(&stubCounter{})

	kinds := []git.ChangeKind{
		git.ChangeKindAdded,
		git.ChangeKindModified,
		git.ChangeKindDeleted,
		git.ChangeKindRenamed,
		git.ChangeKindCopied,
		git.ChangeKindPermChanged,
	}
	records := make([]git.ChangeRecord, len(kinds))
	for i, kind := range kinds {
		records[i] = git.ChangeRecord{NewPath: "f.go", Kind: kind}
	}

	result := extractor.ToFileStats(records)
	for i, kind := range kinds {
		if result[i].Change != kind {
			t.Errorf("stats[%d].Change = %v, expected %v", i, result[i].Change, kind)
		}
	}
}

func TestToFileStats_Deterministic(t *testing.T) {
	extractor := NewExtractor(&stubCounter{count: LineCount{Add: 3, Del: 1}})

	records := []git.ChangeRecord{
		{NewPath: "a.go", OldContent: "x\n", NewContent: "y\n"},
		{OldPath: "b.go"},
	}

	first := extractor.ToFileStats(records)
	second := extractor.ToFileStats(records)

	if !reflect.DeepEqual(first, second) {
		t.Error("two extractions of the same input differ")
	}
}

func TestFileStat_Churn(t *testing.T) {
	tests := []struct {
		name     string
		add      int
		del      int
		expected int
	}{
		{name: "Both set", add: 10, del: 5, expected: 15},
		{name: "Zero", add: 0, del: 0, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := FileStat{Add: tt.add, Del: tt.del}
			if s.Churn() != tt.expected {
				t.Errorf("Churn() = %d, expected %d", s.Churn(), tt.expected)
			}
		})
	}
}
