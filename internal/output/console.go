package output

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/fatih/color"

	"github.com/masmgr/difftree-go/internal/git"
	"github.com/masmgr/difftree-go/internal/tree"
)

// ConsoleTreeWriter writes diff tree reports to the console as an indented
// tree with box-drawing connectors.
type ConsoleTreeWriter struct{}

// Write outputs the diff tree report to the console.
func (w *ConsoleTreeWriter) Write(report *DiffTreeReport, options OutputOptions) error {
	out, file, err := createWriter(options.OutputPath)
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}

	printer := newTreePrinter(file != nil)

	fmt.Fprintf(out, "%s\n", printer.header.Sprint("Diff Tree"))
	fmt.Fprintf(out, "Repository: %s\n", report.RepoPath)
	fmt.Fprintf(out, "Comparing: %s\n\n", diffSpecLabel(report.DiffSpec))

	printer.printForest(out, report.Roots, "", options.Expansion)

	fmt.Fprintf(out, "\n%d files changed, %s %s\n",
		report.TotalFiles,
		printer.add.Sprintf("+%d", report.TotalAdded),
		printer.del.Sprintf("-%d", report.TotalDeleted))

	return nil
}

// ConsoleStatWriter writes flat file statistics to the console.
type ConsoleStatWriter struct{}

// Write outputs the file statistic report to the console.
func (w *ConsoleStatWriter) Write(report *FileStatReport, options OutputOptions) error {
	out, file, err := createWriter(options.OutputPath)
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}

	printer := newTreePrinter(file != nil)

	fmt.Fprintf(out, "%s\n", printer.header.Sprint("File Change Statistics"))
	fmt.Fprintf(out, "Repository: %s\n", report.RepoPath)
	fmt.Fprintf(out, "Comparing: %s\n", diffSpecLabel(report.DiffSpec))
	fmt.Fprintf(out, "Total files changed: %d\n\n", len(report.Items))

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tPath\tChange\tAdded\tDeleted\tChurn")
	for i, item := range report.Items {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%d\t%d\t%d\n",
			i+1, item.Path, item.Change, item.Add, item.Del, item.Churn())
	}
	return tw.Flush()
}

// treePrinter renders forest nodes with per-element colors. Colors are
// disabled when output goes to a file.
type treePrinter struct {
	header *color.Color
	dir    *color.Color
	add    *color.Color
	del    *color.Color
	mod    *color.Color
}

func newTreePrinter(plain bool) *treePrinter {
	p := &treePrinter{
		header: color.New(color.FgGreen),
		dir:    color.New(color.FgCyan, color.Bold),
		add:    color.New(color.FgGreen),
		del:    color.New(color.FgRed),
		mod:    color.New(color.FgYellow),
	}
	if plain {
		for _, c := range []*color.Color{p.header, p.dir, p.add, p.del, p.mod} {
			c.DisableColor()
		}
	}
	return p
}

// printForest renders the sibling group with connectors, descending only
// into expanded directories.
func (p *treePrinter) printForest(out io.Writer, nodes []*tree.Node, prefix string, expansion tree.ExpansionState) {
	for i, n := range nodes {
		connector := "├── "
		childPrefix := prefix + "│   "
		if i == len(nodes)-1 {
			connector = "└── "
			childPrefix = prefix + "    "
		}

		fmt.Fprintf(out, "%s%s%s\n", prefix, connector, p.label(n, expansion))

		if n.IsDir() && expansion.IsExpanded(n.Path) {
			p.printForest(out, n.Children, childPrefix, expansion)
		}
	}
}

func (p *treePrinter) label(n *tree.Node, expansion tree.ExpansionState) string {
	counts := fmt.Sprintf("%s %s", p.add.Sprintf("+%d", n.Add), p.del.Sprintf("-%d", n.Del))

	if n.IsDir() {
		label := fmt.Sprintf("%s [%s]", p.dir.Sprint(n.Name+"/"), counts)
		if !expansion.IsExpanded(n.Path) {
			label += " (collapsed)"
		}
		return label
	}

	return fmt.Sprintf("%s %s [%s]", p.changeColor(n.Change).Sprint(n.Change.Symbol()), n.Name, counts)
}

func (p *treePrinter) changeColor(kind git.ChangeKind) *color.Color {
	switch kind {
	case git.ChangeKindAdded, git.ChangeKindCopied:
		return p.add
	case git.ChangeKindDeleted:
		return p.del
	default:
		return p.mod
	}
}
