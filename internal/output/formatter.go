package output

import (
	"time"

	"github.com/masmgr/difftree-go/internal/stats"
	"github.com/masmgr/difftree-go/internal/tree"
)

// Compile-time interface conformance checks.
// These ensure that all writer types correctly implement their respective interfaces.
var (
	// TreeReportWriter implementations
	_ TreeReportWriter = (*ConsoleTreeWriter)(nil)
	_ TreeReportWriter = (*JSONTreeWriter)(nil)
	_ TreeReportWriter = (*MarkdownTreeWriter)(nil)
	_ TreeReportWriter = (*CSVTreeWriter)(nil)

	// StatReportWriter implementations
	_ StatReportWriter = (*ConsoleStatWriter)(nil)
	_ StatReportWriter = (*JSONStatWriter)(nil)
	_ StatReportWriter = (*MarkdownStatWriter)(nil)
	_ StatReportWriter = (*CSVStatWriter)(nil)
)

// OutputFormat represents the output format type.
type OutputFormat string

const (
	FormatConsole  OutputFormat = "console"
	FormatJSON     OutputFormat = "json"
	FormatMarkdown OutputFormat = "markdown"
	FormatCSV      OutputFormat = "csv"
)

// OutputOptions controls output behavior.
type OutputOptions struct {
	Format     OutputFormat
	OutputPath string
	// Expansion controls which directories the console tree descends
	// into. A nil state renders everything expanded.
	Expansion tree.ExpansionState
}

// DiffTreeReport holds a built diff forest together with its provenance.
type DiffTreeReport struct {
	RepoPath     string
	DiffSpec     string // empty when comparing the working tree
	GeneratedAt  time.Time
	Roots        []*tree.Node
	TotalFiles   int
	TotalAdded   int
	TotalDeleted int
}

// NewDiffTreeReport creates a report and computes its totals from the
// forest's file leaves.
func NewDiffTreeReport(repoPath, diffSpec string, roots []*tree.Node) *DiffTreeReport {
	report := &DiffTreeReport{
		RepoPath:    repoPath,
		DiffSpec:    diffSpec,
		GeneratedAt: time.Now(),
		Roots:       roots,
	}
	tree.Walk(roots, func(n *tree.Node, _ int) bool {
		if n.Kind == tree.NodeFile {
			report.TotalFiles++
			report.TotalAdded += n.Add
			report.TotalDeleted += n.Del
		}
		return true
	})
	return report
}

// FileStatReport holds flat per-file statistics.
type FileStatReport struct {
	RepoPath    string
	DiffSpec    string
	GeneratedAt time.Time
	Items       []stats.FileStat
}

// TreeReportWriter writes diff tree reports.
type TreeReportWriter interface {
	Write(report *DiffTreeReport, options OutputOptions) error
}

// StatReportWriter writes flat file statistic reports.
type StatReportWriter interface {
	Write(report *FileStatReport, options OutputOptions) error
}

// NewTreeReportWriter creates a tree report writer for the specified format.
func NewTreeReportWriter(format OutputFormat) TreeReportWriter {
	switch format {
	case FormatJSON:
		return &JSONTreeWriter{}
	case FormatMarkdown:
		return &MarkdownTreeWriter{}
	case FormatCSV:
		return &CSVTreeWriter{}
	default:
		return &ConsoleTreeWriter{}
	}
}

// NewStatReportWriter creates a stat report writer for the specified format.
func NewStatReportWriter(format OutputFormat) StatReportWriter {
	switch format {
	case FormatJSON:
		return &JSONStatWriter{}
	case FormatMarkdown:
		return &MarkdownStatWriter{}
	case FormatCSV:
		return &CSVStatWriter{}
	default:
		return &ConsoleStatWriter{}
	}
}
