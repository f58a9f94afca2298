package main

import (
	"fmt"
	"runtime"

	"github.com/jlyonsmith/git-extra/internal/cli"
)

// Version information - set by goreleaser
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cli.Main(cli.NewRootCmd(versionString()))
}

// versionString returns the version string.
func versionString() string {
	return fmt.Sprintf("git-extra %s (%s, %s, %s)", version, commit[:min(7, len(commit))], date, runtime.Version())
}
