package git

import (
	"context"
	"fmt"
	"strings"
)

// Direction distinguishes fetch and push remote entries.
type Direction string

const (
	DirectionFetch Direction = "fetch"
	DirectionPush  Direction = "push"
)

// Remote is one entry of `git remote -v` output.
type Remote struct {
	Name      string
	URL       string
	Direction Direction
}

// ListRemotes lists the remotes of the repository at dir (or the
// current directory when dir is empty), one Remote per fetch/push line.
func ListRemotes(ctx context.Context, dir string) ([]Remote, error) {
	out, err := outputGit(ctx, dir, "remote", "-v")
	if err != nil {
		return nil, fmt.Errorf("list remotes: %w", err)
	}
	return parseRemotes(string(out)), nil
}

// parseRemotes parses `git remote -v` output. Lines look like:
//
//	origin	git@github.com:owner/repo.git (fetch)
//	origin	git@github.com:owner/repo.git (push)
//
// Lines that don't match this shape are skipped.
func parseRemotes(out string) []Remote {
	var remotes []Remote
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 3 {
			continue
		}
		var dir Direction
		switch fields[len(fields)-1] {
		case "(fetch)":
			dir = DirectionFetch
		case "(push)":
			dir = DirectionPush
		default:
			continue
		}
		// The URL may contain spaces (file paths); rejoin everything
		// between the name and the direction annotation.
		url := strings.Join(fields[1:len(fields)-1], " ")
		remotes = append(remotes, Remote{Name: fields[0], URL: url, Direction: dir})
	}
	return remotes
}
