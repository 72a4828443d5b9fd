package output

import (
	"encoding/json"

	"github.com/masmgr/difftree-go/internal/tree"
)

// JSONTreeWriter writes diff tree reports as JSON.
type JSONTreeWriter struct{}

// JSONTreeReport is the JSON output structure for a diff tree.
type JSONTreeReport struct {
	RepoPath     string         `json:"repo"`
	DiffSpec     string         `json:"diffSpec,omitempty"`
	GeneratedAt  string         `json:"generatedAt"`
	TotalFiles   int            `json:"totalFiles"`
	TotalAdded   int            `json:"totalAdded"`
	TotalDeleted int            `json:"totalDeleted"`
	Roots        []JSONTreeNode `json:"roots"`
}

// JSONTreeNode is the JSON output structure for a single tree node.
type JSONTreeNode struct {
	Kind     string         `json:"kind"`
	Name     string         `json:"name"`
	Path     string         `json:"path"`
	Added    int            `json:"added"`
	Deleted  int            `json:"deleted"`
	ID       string         `json:"id,omitempty"`
	Change   string         `json:"change,omitempty"`
	Children []JSONTreeNode `json:"children,omitempty"`
}

// Write outputs the diff tree report as JSON.
func (w *JSONTreeWriter) Write(report *DiffTreeReport, options OutputOptions) error {
	out, file, err := createWriter(options.OutputPath)
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}

	jsonReport := JSONTreeReport{
		RepoPath:     report.RepoPath,
		DiffSpec:     report.DiffSpec,
		GeneratedAt:  report.GeneratedAt.Format(reportDateTimeLayout),
		TotalFiles:   report.TotalFiles,
		TotalAdded:   report.TotalAdded,
		TotalDeleted: report.TotalDeleted,
		Roots:        jsonTreeNodes(report.Roots),
	}

	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(jsonReport)
}

func jsonTreeNodes(nodes []*tree.Node) []JSONTreeNode {
	result := make([]JSONTreeNode, len(nodes))
	for i, n := range nodes {
		jn := JSONTreeNode{
			Kind:    n.Kind.String(),
			Name:    n.Name,
			Path:    n.Path,
			Added:   n.Add,
			Deleted: n.Del,
		}
		if n.Kind == tree.NodeFile {
			jn.ID = n.ID
			jn.Change = n.Change.String()
		} else {
			jn.Children = jsonTreeNodes(n.Children)
		}
		result[i] = jn
	}
	return result
}

// JSONStatWriter writes file statistic reports as JSON.
type JSONStatWriter struct{}

// JSONStatReport is the JSON output structure for flat file statistics.
type JSONStatReport struct {
	RepoPath    string         `json:"repo"`
	DiffSpec    string         `json:"diffSpec,omitempty"`
	GeneratedAt string         `json:"generatedAt"`
	TotalFiles  int            `json:"totalFiles"`
	Items       []JSONStatItem `json:"items"`
}

// JSONStatItem is the JSON output structure for a single file statistic.
type JSONStatItem struct {
	ID      string `json:"id"`
	Path    string `json:"path"`
	Change  string `json:"change"`
	Added   int    `json:"added"`
	Deleted int    `json:"deleted"`
}

// Write outputs the file statistic report as JSON.
func (w *JSONStatWriter) Write(report *FileStatReport, options OutputOptions) error {
	out, file, err := createWriter(options.OutputPath)
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}

	items := make([]JSONStatItem, len(report.Items))
	for i, item := range report.Items {
		items[i] = JSONStatItem{
			ID:      item.ID,
			Path:    item.Path,
			Change:  item.Change.String(),
			Added:   item.Add,
			Deleted: item.Del,
		}
	}

	jsonReport := JSONStatReport{
		RepoPath:    report.RepoPath,
		DiffSpec:    report.DiffSpec,
		GeneratedAt: report.GeneratedAt.Format(reportDateTimeLayout),
		TotalFiles:  len(report.Items),
		Items:       items,
	}

	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(jsonReport)
}
