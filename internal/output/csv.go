package output

import (
	"fmt"

	"github.com/masmgr/difftree-go/internal/tree"
)

// CSVTreeWriter writes diff tree reports as CSV, one row per node in
// depth-first order.
type CSVTreeWriter struct{}

// Write outputs the diff tree report as CSV.
func (w *CSVTreeWriter) Write(report *DiffTreeReport, options OutputOptions) error {
	writer, file, err := createCSVWriter(options.OutputPath)
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}

	headers := []string{"Path", "Kind", "Depth", "Change", "Added", "Deleted"}
	if err := writer.Write(headers); err != nil {
		return err
	}

	var writeErr error
	tree.Walk(report.Roots, func(n *tree.Node, depth int) bool {
		if writeErr != nil {
			return false
		}
		change := ""
		if n.Kind == tree.NodeFile {
			change = n.Change.String()
		}
		writeErr = writer.Write([]string{
			n.Path,
			n.Kind.String(),
			fmt.Sprintf("%d", depth),
			change,
			fmt.Sprintf("%d", n.Add),
			fmt.Sprintf("%d", n.Del),
		})
		return writeErr == nil
	})
	if writeErr != nil {
		return writeErr
	}

	writer.Flush()
	return writer.Error()
}

// CSVStatWriter writes file statistic reports as CSV.
type CSVStatWriter struct{}

// Write outputs the file statistic report as CSV.
func (w *CSVStatWriter) Write(report *FileStatReport, options OutputOptions) error {
	writer, file, err := createCSVWriter(options.OutputPath)
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}

	headers := []string{"ID", "Path", "Change", "Added", "Deleted", "Churn"}
	if err := writer.Write(headers); err != nil {
		return err
	}

	for _, item := range report.Items {
		row := []string{
			item.ID,
			item.Path,
			item.Change.String(),
			fmt.Sprintf("%d", item.Add),
			fmt.Sprintf("%d", item.Del),
			fmt.Sprintf("%d", item.Churn()),
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}
