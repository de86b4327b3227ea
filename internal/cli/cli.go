// Package cli implements the paperbox command-line interface.
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/paperbox/pkg/buildinfo"
	errs "github.com/matzehuels/paperbox/pkg/errors"
)

// =============================================================================
// Constants
// =============================================================================

const appName = "paperbox"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
	LogWarn  = log.WarnLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds the streams and logger shared by the command.
type CLI struct {
	Logger *log.Logger
	Stdout io.Writer
	Stderr io.Writer
}

// New creates a CLI writing results to stdout and logs to stderr.
func New(stdout, stderr io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(stderr, level),
		Stdout: stdout,
		Stderr: stderr,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command.
func (c *CLI) RootCommand() *cobra.Command {
	root := c.boxCommand()
	root.Version = buildinfo.Version
	root.SetVersionTemplate(buildinfo.Template())
	root.SetOut(c.Stdout)
	root.SetErr(c.Stderr)
	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return errs.Wrap(errs.ErrCodeInvalidConfig, err, "invalid flag")
	})
	return root
}

// Run parses args and executes the command. Usage errors additionally print
// the usage text to stderr. The returned error is meant for [ExitCode].
func (c *CLI) Run(ctx context.Context, args []string) error {
	root := c.RootCommand()
	if err := negativeDimension(root.Flags(), args); err != nil {
		fmt.Fprint(c.Stderr, root.UsageString())
		return err
	}
	root.SetArgs(args)

	cmd, err := root.ExecuteContextC(ctx)
	if err != nil && errs.IsUsage(err) {
		if cmd == nil {
			cmd = root
		}
		fmt.Fprint(c.Stderr, cmd.UsageString())
	}
	return err
}
