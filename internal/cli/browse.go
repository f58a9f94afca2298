package cli

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/jlyonsmith/git-extra/internal/browse"
	"github.com/jlyonsmith/git-extra/internal/browser"
	"github.com/jlyonsmith/git-extra/internal/git"
	"github.com/jlyonsmith/git-extra/internal/log"
	"github.com/jlyonsmith/git-extra/internal/output"
)

func newBrowseCmd() *cobra.Command {
	var (
		originName string
		printOnly  bool
		copyURL    bool
	)

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Open the repository's web page in a browser",
		Args:  cobra.NoArgs,
		Long: `Open the web page for the current repository's hosting service.

The origin remote's URL is resolved to the provider's repository page
(GitHub, GitLab, Bitbucket, or a self-hosted Gitea instance) and opened
in the OS-default browser.`,
		Example: `  git browse                 # open origin's web page
  git browse --print         # print the URL instead of opening it
  git browse --copy          # copy the URL to the clipboard
  git browse --origin fork   # use the "fork" remote instead of origin`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			remotes, err := git.ListRemotes(ctx, "")
			if err != nil {
				return err
			}

			if printOnly || copyURL {
				url, err := browse.ResolveURL(remotes, originName)
				if err != nil {
					return err
				}
				if copyURL {
					if err := clipboard.WriteAll(url); err != nil {
						return fmt.Errorf("copy to clipboard: %w", err)
					}
					log.FromContext(ctx).Printf("Copied %s to clipboard\n", url)
				}
				if printOnly {
					output.FromContext(ctx).Println(url)
				}
				return nil
			}

			_, err = browse.Run(ctx, remotes, originName, browser.Opener{})
			return err
		},
	}

	cmd.Flags().StringVar(&originName, "origin", "origin", "Name of the remote to browse")
	cmd.Flags().BoolVarP(&printOnly, "print", "p", false, "Print the URL instead of opening a browser")
	cmd.Flags().BoolVarP(&copyURL, "copy", "c", false, "Copy the URL to the clipboard")

	return cmd
}
