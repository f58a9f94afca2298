package quickstart

import (
	"fmt"
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/jlyonsmith/git-extra/internal/config"
	"github.com/jlyonsmith/git-extra/internal/remote"
)

// Request holds the resolved parameters of one quick-start invocation.
type Request struct {
	Origin     string // URL to clone
	TargetDir  string // directory to clone into
	Customizer string // script name relative to TargetDir
}

// ResolveError indicates the argument named no configured shortcut and
// did not look like a URL.
type ResolveError struct {
	Name        string
	Suggestions []string
}

func (e *ResolveError) Error() string {
	msg := fmt.Sprintf("%q is not a configured shortcut and does not look like a repository URL", e.Name)
	if len(e.Suggestions) > 0 {
		msg += fmt.Sprintf(" (did you mean %s?)", strings.Join(e.Suggestions, ", "))
	}
	return msg
}

// Resolve turns a shortcut name or literal URL into a Request.
// Explicit dir and customizer values from the command line override the
// shortcut entry; the customizer falls back to config.DefaultCustomizer
// and the target directory to the repository name from the origin URL.
func Resolve(nameOrURL string, shortcuts map[string]config.Shortcut, dir, customizer string) (Request, error) {
	var origin string

	if sc, ok := shortcuts[nameOrURL]; ok {
		origin = sc.Origin
		if customizer == "" {
			customizer = sc.Customizer
		}
	} else if looksLikeURL(nameOrURL) {
		origin = nameOrURL
	} else {
		return Request{}, &ResolveError{Name: nameOrURL, Suggestions: suggest(nameOrURL, shortcuts)}
	}

	if customizer == "" {
		customizer = config.DefaultCustomizer
	}

	if dir == "" {
		name, err := repoName(origin)
		if err != nil {
			return Request{}, fmt.Errorf("cannot derive a target directory from %q: %w", origin, err)
		}
		dir = name
	}

	return Request{Origin: origin, TargetDir: dir, Customizer: customizer}, nil
}

// looksLikeURL is a heuristic transport check, not RFC validation: a
// scheme separator, or the user@host:path shorthand shape, is enough.
func looksLikeURL(s string) bool {
	if strings.Contains(s, "://") {
		return true
	}
	return strings.Contains(s, "@") && strings.Contains(s, ":")
}

// repoName derives the default target directory from the last non-empty
// path segment of the origin URL, with a trailing ".git" stripped.
func repoName(origin string) (string, error) {
	u, err := remote.Parse(origin)
	if err != nil {
		return "", err
	}
	return u.Repo(), nil
}

// suggest returns up to three shortcut names resembling the input.
func suggest(input string, shortcuts map[string]config.Shortcut) []string {
	names := config.Names(shortcuts)
	matches := fuzzy.Find(input, names)
	var suggestions []string
	for i, m := range matches {
		if i == 3 {
			break
		}
		suggestions = append(suggestions, m.Str)
	}
	return suggestions
}
