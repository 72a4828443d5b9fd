package cmd

import (
	"time"

	"github.com/masmgr/difftree-go/internal/output"
	"github.com/urfave/cli/v2"
)

// StatsCmd creates the stats command.
func StatsCmd() *cli.Command {
	return &cli.Command{
		Name:   "stats",
		Usage:  "Show flat per-file change statistics",
		Flags:  commonFlags(),
		Action: runStats,
	}
}

func runStats(c *cli.Context) error {
	ctx, err := NewCommandContext(c)
	if err != nil {
		return err
	}

	if !ctx.HasChanges() {
		ctx.PrintNoChangesMessage()
		return nil
	}

	report := &output.FileStatReport{
		RepoPath:    ctx.RepoPath,
		DiffSpec:    ctx.DiffSpec,
		GeneratedAt: time.Now(),
		Items:       ctx.FileStats(),
	}

	options := OutputOptions(c, ctx.Config)
	writer := output.NewStatReportWriter(options.Format)
	return writer.Write(report, options)
}
