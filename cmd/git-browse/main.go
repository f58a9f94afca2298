// git-browse is the standalone binary behind `git browse`.
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
	cli.Main(cli.NewBrowseRoot(versionString()))
}

func versionString() string {
	return fmt.Sprintf("git-browse %s (%s, %s)", version, commit[:min(7, len(commit))], date)
}
