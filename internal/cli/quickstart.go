package cli

import (
	"context"
	"errors"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	cmdexec "github.com/jlyonsmith/git-extra/internal/cmd"
	"github.com/jlyonsmith/git-extra/internal/config"
	"github.com/jlyonsmith/git-extra/internal/git"
	"github.com/jlyonsmith/git-extra/internal/log"
	"github.com/jlyonsmith/git-extra/internal/output"
	"github.com/jlyonsmith/git-extra/internal/quickstart"
	"github.com/jlyonsmith/git-extra/internal/ui"
)

// gitCloner adapts git.Clone to the quickstart.Cloner interface.
type gitCloner struct{}

func (gitCloner) Clone(ctx context.Context, originURL, targetDir string) error {
	return git.Clone(ctx, originURL, targetDir)
}

// scriptRunner runs the customizer with inherited standard streams.
type scriptRunner struct{}

func (scriptRunner) Execute(ctx context.Context, path, workDir string) (int, error) {
	return cmdexec.RunInteractive(ctx, workDir, path)
}

func newQuickStartCmd() *cobra.Command {
	var (
		customizer string
		listOnly   bool
	)

	cmd := &cobra.Command{
		Use:     "quick-start [name-or-url] [directory]",
		Aliases: []string{"qs"},
		Short:   "Clone a template repository and run its customizer",
		Args:    cobra.MaximumNArgs(2),
		Long: `Create a new project from a template repository.

The first argument is either a shortcut name from
~/.config/git-extra/repos.toml or a literal repository URL. The
repository is cloned (into the second argument, or a directory named
after the repository) and its customization script is run with the
clone as working directory.

With no arguments, an interactive shortcut picker opens when attached
to a terminal.

The customizer runs unsandboxed with your full permissions, exactly as
if you ran it yourself. BE CAREFUL with shortcuts pointing at
repositories you don't control.`,
		Example: `  git quick-start rust-cli               # clone the rust-cli shortcut
  git quick-start rust-cli my-project    # ...into ./my-project
  git quick-start git@github.com:acme/starter.git
  git quick-start -c setup.sh rust-cli   # override the customizer name
  git quick-start --list                 # list configured shortcuts`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			shortcuts, err := config.Load()
			if err != nil {
				return err
			}

			if listOnly {
				styled := isatty.IsTerminal(os.Stdout.Fd())
				output.FromContext(ctx).Print(ui.RenderShortcuts(shortcuts, styled))
				return nil
			}

			var nameOrURL string
			if len(args) > 0 {
				nameOrURL = args[0]
			} else {
				if !isatty.IsTerminal(os.Stdin.Fd()) || !isatty.IsTerminal(os.Stdout.Fd()) {
					return errors.New("a shortcut name or repository URL is required")
				}
				name, ok, err := ui.SelectShortcut(shortcuts)
				if err != nil {
					return err
				}
				if !ok {
					return nil
				}
				nameOrURL = name
			}

			dir := ""
			if len(args) > 1 {
				dir = args[1]
			}

			req, err := quickstart.Resolve(nameOrURL, shortcuts, dir, customizer)
			if err != nil {
				return err
			}

			return quickstart.Run(ctx, req, gitCloner{}, scriptRunner{})
		},
	}

	cmd.Flags().StringVarP(&customizer, "customizer", "c", "", "Customizer script name relative to the new project directory")
	cmd.Flags().BoolVarP(&listOnly, "list", "l", false, "List configured shortcuts and exit")

	cmd.AddCommand(newQuickStartInitCmd())

	return cmd
}

func newQuickStartInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a template repos.toml shortcut file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.Init(force)
			if err != nil {
				return err
			}
			log.FromContext(cmd.Context()).Printf("Created %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing repos file")

	return cmd
}
