package output

import (
	"fmt"
	"io"
)

// MarkdownTreeWriter writes diff tree reports as Markdown.
type MarkdownTreeWriter struct{}

// Write outputs the diff tree report as Markdown.
func (w *MarkdownTreeWriter) Write(report *DiffTreeReport, options OutputOptions) error {
	out, file, err := createWriter(options.OutputPath)
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}

	fmt.Fprintln(out, "# Diff Tree")
	fmt.Fprintln(out)
	fmt.Fprintf(out, "**Repository:** %s\n\n", report.RepoPath)
	fmt.Fprintf(out, "**Comparing:** %s\n\n", diffSpecLabel(report.DiffSpec))
	fmt.Fprintf(out, "**Files changed:** %d (+%d −%d)\n\n", report.TotalFiles, report.TotalAdded, report.TotalDeleted)

	fmt.Fprintln(out, "```")
	printer := newTreePrinter(true)
	printer.printForest(out, report.Roots, "", options.Expansion)
	fmt.Fprintln(out, "```")

	return nil
}

// MarkdownStatWriter writes file statistic reports as Markdown.
type MarkdownStatWriter struct{}

// Write outputs the file statistic report as a Markdown table.
func (w *MarkdownStatWriter) Write(report *FileStatReport, options OutputOptions) error {
	out, file, err := createWriter(options.OutputPath)
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}

	fmt.Fprintln(out, "# File Change Statistics")
	fmt.Fprintln(out)
	fmt.Fprintf(out, "**Repository:** %s\n\n", report.RepoPath)
	fmt.Fprintf(out, "**Comparing:** %s\n\n", diffSpecLabel(report.DiffSpec))
	fmt.Fprintf(out, "**Files changed:** %d\n\n", len(report.Items))

	writeStatTable(out, report)

	return nil
}

func writeStatTable(out io.Writer, report *FileStatReport) {
	fmt.Fprintln(out, "| # | Path | Change | Added | Deleted |")
	fmt.Fprintln(out, "|---|------|--------|-------|---------|")
	for i, item := range report.Items {
		fmt.Fprintf(out, "| %d | `%s` | %s | %d | %d |\n",
			i+1, escapeMarkdown(item.Path), item.Change, item.Add, item.Del)
	}
}
