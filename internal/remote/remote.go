// Package remote parses git remote URLs into a structured form.
//
// Git accepts several transport syntaxes for the same repository:
//
//	git@github.com:owner/repo.git        (SSH shorthand)
//	ssh://git@github.com/owner/repo.git
//	https://github.com/owner/repo.git
//	git://github.com/owner/repo.git
//	file:///path/to/repo
//
// Parse normalizes all of them into host + path segments so callers
// never have to care which syntax the remote was configured with.
package remote

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

// Transport identifies the syntax a remote URL was written in.
type Transport string

const (
	TransportSSHShorthand Transport = "ssh-shorthand"
	TransportSSH          Transport = "ssh"
	TransportHTTPS        Transport = "https"
	TransportGit          Transport = "git"
	TransportFile         Transport = "file"
)

// URL is one git remote URL in structured form.
// Host is empty for the file transport. Path holds the non-empty path
// segments with a trailing ".git" stripped; it always has at least one
// entry. Raw retains the original string for error messages.
type URL struct {
	Transport Transport
	Host      string
	Path      []string
	Raw       string
}

// Owner returns the first path segment.
func (u URL) Owner() string {
	return u.Path[0]
}

// Repo returns the last path segment, the repository name.
func (u URL) Repo() string {
	return u.Path[len(u.Path)-1]
}

// ParseError indicates a remote URL that matched no supported transport
// syntax, or one with no usable path.
type ParseError struct {
	Raw    string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("malformed remote URL %q: %s", e.Raw, e.Reason)
}

// sshShorthand matches user@host:path. Anything with an explicit scheme
// is excluded by trying schemes only when this pattern does not match,
// and by forbidding "/" before the colon.
var sshShorthand = regexp.MustCompile(`^(?P<user>[^@/\s]+)@(?P<host>[^:/\s]+):(?P<path>.+)$`)

// Parse parses a single remote URL string, trying transport syntaxes in
// a fixed priority order: SSH shorthand first, then scheme-qualified
// forms. It is a pure function.
func Parse(raw string) (URL, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return URL{}, &ParseError{Raw: raw, Reason: "empty"}
	}

	if m := sshShorthand.FindStringSubmatch(s); m != nil && !strings.Contains(s, "://") {
		segments := splitPath(m[3])
		if len(segments) == 0 {
			return URL{}, &ParseError{Raw: raw, Reason: "no repository path"}
		}
		return URL{Transport: TransportSSHShorthand, Host: m[2], Path: segments, Raw: raw}, nil
	}

	switch {
	case strings.HasPrefix(s, "ssh://"):
		return parseScheme(raw, s, TransportSSH)
	case strings.HasPrefix(s, "https://"), strings.HasPrefix(s, "http://"):
		return parseScheme(raw, s, TransportHTTPS)
	case strings.HasPrefix(s, "git://"):
		return parseScheme(raw, s, TransportGit)
	case strings.HasPrefix(s, "file://"):
		return parseFile(raw, strings.TrimPrefix(s, "file://"))
	case strings.HasPrefix(s, "file:"):
		return parseFile(raw, strings.TrimPrefix(s, "file:"))
	}

	return URL{}, &ParseError{Raw: raw, Reason: "unrecognized transport"}
}

// parseScheme handles ssh://, https://, http:// and git:// URLs.
func parseScheme(raw, s string, transport Transport) (URL, error) {
	u, err := url.Parse(s)
	if err != nil {
		return URL{}, &ParseError{Raw: raw, Reason: err.Error()}
	}
	host := u.Hostname()
	if host == "" {
		return URL{}, &ParseError{Raw: raw, Reason: "missing host"}
	}
	segments := splitPath(u.Path)
	if len(segments) == 0 {
		return URL{}, &ParseError{Raw: raw, Reason: "no repository path"}
	}
	return URL{Transport: transport, Host: host, Path: segments, Raw: raw}, nil
}

// parseFile handles file:// and file: URLs. The host is empty; the
// local path becomes the segment list.
func parseFile(raw, path string) (URL, error) {
	segments := splitPath(path)
	if len(segments) == 0 {
		return URL{}, &ParseError{Raw: raw, Reason: "no repository path"}
	}
	return URL{Transport: TransportFile, Path: segments, Raw: raw}, nil
}

// splitPath splits a path on "/", discarding empty segments and a
// trailing ".git" suffix.
func splitPath(p string) []string {
	p = strings.TrimSuffix(p, ".git")
	var segments []string
	for _, seg := range strings.Split(p, "/") {
		if seg != "" {
			segments = append(segments, seg)
		}
	}
	return segments
}
