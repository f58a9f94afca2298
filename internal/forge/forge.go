// Package forge classifies git hosting services by host name and builds
// the web URL for a repository's page.
//
// Known hosts are matched against fixed literals. Any other non-empty
// host is assumed to be a self-hosted Gitea instance, which shares the
// /owner/repo page layout with GitHub and GitLab. That assumption is a
// deliberate heuristic carried over from the tool's documented behavior:
// it is not verified against the server and may be wrong for, say, a
// private GitLab behind a custom domain. Do not "fix" it — changing the
// fallback changes observable output.
package forge

import (
	"errors"
	"fmt"
	"strings"
)

// Provider is the classification of a git hosting service.
type Provider int

const (
	Unknown Provider = iota
	GitHub
	GitLab
	Bitbucket
	Gitea
)

// String returns the provider name.
func (p Provider) String() string {
	switch p {
	case GitHub:
		return "GitHub"
	case GitLab:
		return "GitLab"
	case Bitbucket:
		return "Bitbucket"
	case Gitea:
		return "Gitea"
	default:
		return "unknown"
	}
}

// ErrUnsupportedProvider indicates there is no web page for the remote,
// e.g. a local file transport.
var ErrUnsupportedProvider = errors.New("no web page exists for this remote")

// Classify maps a host name to a Provider. Matching is case-insensitive.
// An empty host (file transport) yields Unknown; any unrecognized host
// yields Gitea (see the package comment).
func Classify(host string) Provider {
	switch strings.ToLower(host) {
	case "":
		return Unknown
	case "github.com":
		return GitHub
	case "gitlab.com":
		return GitLab
	case "bitbucket.org":
		return Bitbucket
	default:
		return Gitea
	}
}

// BrowseURL builds the web URL for a repository page. All supported
// providers share the https://host/owner/repo shape; the switch is
// exhaustive so adding a provider is a compile-time-checked change.
func BrowseURL(p Provider, host, owner, repo string) (string, error) {
	switch p {
	case GitHub, GitLab, Bitbucket, Gitea:
		return fmt.Sprintf("https://%s/%s/%s", host, owner, repo), nil
	case Unknown:
		return "", fmt.Errorf("%w: host %q", ErrUnsupportedProvider, host)
	default:
		return "", fmt.Errorf("%w: host %q", ErrUnsupportedProvider, host)
	}
}
