// Package browse resolves a repository's remote to the hosting
// provider's web page and hands the URL to a browser opener.
package browse

import (
	"context"
	"errors"
	"fmt"

	"github.com/jlyonsmith/git-extra/internal/forge"
	"github.com/jlyonsmith/git-extra/internal/git"
	"github.com/jlyonsmith/git-extra/internal/log"
	"github.com/jlyonsmith/git-extra/internal/remote"
)

// Opener launches the OS-default handler for a URL.
type Opener interface {
	Open(ctx context.Context, url string) error
}

// ErrNoOriginRemote indicates the remote listing contained no entry
// with the requested name.
var ErrNoOriginRemote = errors.New("remote not found")

// ResolveURL selects the fetch entry for remoteName (conventionally
// "origin") from remotes and resolves it to the provider's web URL.
// Pure apart from the inputs; all failures are terminal.
func ResolveURL(remotes []git.Remote, remoteName string) (string, error) {
	var raw string
	found := false
	for _, r := range remotes {
		if r.Name == remoteName && r.Direction == git.DirectionFetch {
			raw = r.URL
			found = true
			break
		}
	}
	if !found {
		return "", fmt.Errorf("%w: no remote named %q", ErrNoOriginRemote, remoteName)
	}

	u, err := remote.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("remote %q: %w", remoteName, err)
	}

	provider := forge.Classify(u.Host)
	url, err := forge.BrowseURL(provider, u.Host, u.Owner(), u.Repo())
	if err != nil {
		return "", fmt.Errorf("remote %q (%s): %w", remoteName, u.Raw, err)
	}
	return url, nil
}

// Run resolves the web URL for remoteName and opens it with opener.
// Returns the opened URL.
func Run(ctx context.Context, remotes []git.Remote, remoteName string, opener Opener) (string, error) {
	url, err := ResolveURL(remotes, remoteName)
	if err != nil {
		return "", err
	}
	log.FromContext(ctx).Printf("Opening %s\n", url)
	if err := opener.Open(ctx, url); err != nil {
		return "", fmt.Errorf("open browser: %w", err)
	}
	return url, nil
}
