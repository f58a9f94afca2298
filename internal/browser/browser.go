// Package browser opens URLs in the OS-default browser.
package browser

import (
	"context"
	"fmt"
	"runtime"

	"github.com/jlyonsmith/git-extra/internal/cmd"
)

// Opener opens URLs with the platform's default handler.
// It implements the browse package's Opener interface.
type Opener struct{}

// Open launches the OS-default browser for url and waits for the
// launcher command to finish.
func (Opener) Open(ctx context.Context, url string) error {
	switch runtime.GOOS {
	case "darwin":
		return cmd.RunContext(ctx, "", "open", url)
	case "windows":
		return cmd.RunContext(ctx, "", "cmd", "/c", "start", "", url)
	case "linux", "freebsd", "openbsd", "netbsd":
		return cmd.RunContext(ctx, "", "xdg-open", url)
	default:
		return fmt.Errorf("unsupported platform: %s", runtime.GOOS)
	}
}
