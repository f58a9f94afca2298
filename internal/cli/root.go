// Package cli assembles the git-extra command surface.
//
// The same commands are exposed two ways: a git-extra binary with
// browse and quick-start sub-commands, and standalone git-browse /
// git-quick-start binaries so git discovers them as `git browse` and
// `git quick-start`.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/jlyonsmith/git-extra/internal/git"
	"github.com/jlyonsmith/git-extra/internal/log"
	"github.com/jlyonsmith/git-extra/internal/output"
	"github.com/jlyonsmith/git-extra/internal/quickstart"
)

var (
	// Global flags
	verbose bool
	quiet   bool
)

// NewRootCmd builds the git-extra root command with both sub-commands.
func NewRootCmd(version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "git-extra",
		Short: "Extra git commands: browse and quick-start",
		Long: `git-extra adds two commands to git.

browse opens the web page of the current repository's origin remote.
quick-start clones a template repository and runs its customization
script to set up a new project.

Install the git-browse and git-quick-start binaries on your PATH to use
them as "git browse" and "git quick-start".`,
		// Run is not set - shows help when no subcommand provided
	}
	root.AddCommand(newBrowseCmd())
	root.AddCommand(newQuickStartCmd())
	return configureRoot(root, version)
}

// NewBrowseRoot builds the standalone git-browse command.
func NewBrowseRoot(version string) *cobra.Command {
	return configureRoot(newBrowseCmd(), version)
}

// NewQuickStartRoot builds the standalone git-quick-start command.
func NewQuickStartRoot(version string) *cobra.Command {
	return configureRoot(newQuickStartCmd(), version)
}

// configureRoot applies the shared root-command behavior: global flags,
// version template, git availability check, and the context-carried
// logger and printer.
func configureRoot(root *cobra.Command, version string) *cobra.Command {
	root.SilenceUsage = true
	root.SilenceErrors = true
	root.SuggestionsMinimumDistance = 2
	root.Version = version
	root.SetVersionTemplate("{{.Version}}\n")

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show external commands being executed")
	root.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress all log output")
	root.MarkFlagsMutuallyExclusive("verbose", "quiet")

	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		// Skip git check for completion and help commands
		if cmd.Name() == "completion" || cmd.Name() == "__complete" || cmd.Name() == "help" {
			return nil
		}

		if err := git.CheckGit(); err != nil {
			return err
		}

		// Logger (stderr) and printer (stdout) are created here, after
		// flag parsing, so --verbose/--quiet are honored.
		ctx := log.WithLogger(cmd.Context(), log.New(os.Stderr, verbose, quiet))
		ctx = output.WithPrinter(ctx, os.Stdout)
		cmd.SetContext(ctx)
		return nil
	}

	return root
}

// Main runs a root command with a signal-aware context and maps errors
// to exit codes. A customizer's own exit code is propagated verbatim;
// every other failure exits 1.
func Main(root *cobra.Command) {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)

		var exitErr *quickstart.ExitError
		if errors.As(err, &exitErr) && exitErr.Code > 0 {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}
