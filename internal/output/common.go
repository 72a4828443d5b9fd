package output

import (
	"encoding/csv"
	"io"
	"os"
	"strings"
)

const reportDateTimeLayout = "2006-01-02T15:04:05"

func createWriter(outputPath string) (io.Writer, *os.File, error) {
	if outputPath == "" {
		return os.Stdout, nil, nil
	}
	file, err := os.Create(outputPath)
	if err != nil {
		return nil, nil, err
	}
	return file, file, nil
}

func createCSVWriter(outputPath string) (*csv.Writer, *os.File, error) {
	out, file, err := createWriter(outputPath)
	if err != nil {
		return nil, nil, err
	}
	return csv.NewWriter(out), file, nil
}

// escapeMarkdown escapes characters with special meaning in Markdown tables.
func escapeMarkdown(s string) string {
	replacer := strings.NewReplacer(
		"|", "\\|",
		"*", "\\*",
		"_", "\\_",
		"`", "\\`",
	)
	return replacer.Replace(s)
}

// diffSpecLabel describes what the report compared.
func diffSpecLabel(diffSpec string) string {
	if diffSpec == "" {
		return "working tree vs HEAD"
	}
	return diffSpec
}
