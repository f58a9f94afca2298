package git

import (
	"context"
	"fmt"
)

// Clone clones originURL into targetDir with the git CLI. Using the CLI
// rather than a Go git library keeps SSH keys, credential helpers and
// other user git configuration working unchanged. Git itself refuses to
// clone into an existing non-empty directory; that error is surfaced
// verbatim.
func Clone(ctx context.Context, originURL, targetDir string) error {
	if err := runGit(ctx, "", "clone", originURL, targetDir); err != nil {
		return fmt.Errorf("git clone %q: %w", originURL, err)
	}
	return nil
}
