// git-quick-start is the standalone binary behind `git quick-start`.
package main

import (
	"fmt"

	"github.com/jlyonsmith/git-extra/internal/cli"
)

// Version information - set by goreleaser
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cli.Main(cli.NewQuickStartRoot(versionString()))
}

func versionString() string {
	return fmt.Sprintf("git-quick-start %s (%s, %s)", version, commit[:min(7, len(commit))], date)
}
