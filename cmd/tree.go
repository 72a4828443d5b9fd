package cmd

import (
	"github.com/masmgr/difftree-go/internal/output"
	"github.com/masmgr/difftree-go/internal/tree"
	"github.com/urfave/cli/v2"
)

// TreeCmd creates the tree command.
func TreeCmd() *cli.Command {
	return &cli.Command{
		Name:  "tree",
		Usage: "Show changed files as a directory tree with aggregated line counts",
		Flags: append(commonFlags(),
			&cli.StringSliceFlag{
				Name:  "collapse",
				Usage: "Directory paths to render collapsed (can be specified multiple times)",
			},
		),
		Action: runTree,
	}
}

func runTree(c *cli.Context) error {
	ctx, err := NewCommandContext(c)
	if err != nil {
		return err
	}

	if !ctx.HasChanges() {
		ctx.PrintNoChangesMessage()
		return nil
	}

	forest := tree.Build(ctx.FileStats())

	expansion := tree.NewExpansionState(forest)
	for _, path := range c.StringSlice("collapse") {
		expansion.Collapse(path)
	}

	report := output.NewDiffTreeReport(ctx.RepoPath, ctx.DiffSpec, forest)
	options := OutputOptions(c, ctx.Config)
	options.Expansion = expansion

	writer := output.NewTreeReportWriter(options.Format)
	return writer.Write(report, options)
}
