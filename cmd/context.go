package cmd

import (
	"fmt"
	"time"

	"github.com/masmgr/difftree-go/config"
	"github.com/masmgr/difftree-go/internal/git"
	"github.com/masmgr/difftree-go/internal/output"
	"github.com/masmgr/difftree-go/internal/stats"
	"github.com/urfave/cli/v2"
)

// CommandContext holds common state for command execution.
// It encapsulates the shared setup logic across commands.
type CommandContext struct {
	Config   *config.Config
	RepoPath string
	DiffSpec string
	Records  []git.ChangeRecord
}

// NewCommandContext creates a context from CLI flags.
// It performs configuration loading, repository opening, and change reading.
func NewCommandContext(c *cli.Context) (*CommandContext, error) {
	cfg, err := loadConfig(c)
	if err != nil {
		return nil, err
	}

	repoPath := c.String("repo")
	diffSpec := c.String("diff")

	opts := git.ReadOptions{
		RepoPath: repoPath,
		DiffSpec: diffSpec,
		Include:  cfg.Filters.Include,
		Exclude:  cfg.Filters.Exclude,
	}

	var reader git.RecordReader
	if diffSpec == "" {
		reader, err = git.NewWorktreeReader(opts)
	} else {
		reader, err = git.NewDiffReader(opts)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open repository: %w", err)
	}

	records, err := reader.ReadRecords(c.Context)
	if err != nil {
		return nil, fmt.Errorf("failed to read changes: %w", err)
	}

	return &CommandContext{
		Config:   cfg,
		RepoPath: repoPath,
		DiffSpec: diffSpec,
		Records:  records,
	}, nil
}

// FileStats runs the stat extractor over the change records.
func (ctx *CommandContext) FileStats() []stats.FileStat {
	counter := stats.NewDiffLineCounter()
	counter.IgnoreWhitespace = ctx.Config.Diff.IgnoreWhitespace
	if ctx.Config.Diff.TimeoutMs > 0 {
		counter.Timeout = time.Duration(ctx.Config.Diff.TimeoutMs) * time.Millisecond
	}
	return stats.NewExtractor(counter).ToFileStats(ctx.Records)
}

// HasChanges returns true if any change records were found.
func (ctx *CommandContext) HasChanges() bool {
	return len(ctx.Records) > 0
}

// PrintNoChangesMessage prints a message when no changes are found.
func (ctx *CommandContext) PrintNoChangesMessage() {
	fmt.Println("No changes found.")
}

// OutputOptions creates OutputOptions from CLI flags, falling back to the
// configured default format.
func OutputOptions(c *cli.Context, cfg *config.Config) output.OutputOptions {
	format := c.String("format")
	if format == "" {
		format = cfg.Output.Format
	}
	return output.OutputOptions{
		Format:     getOutputFormat(format),
		OutputPath: c.String("output"),
	}
}
