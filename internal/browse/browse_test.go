package browse

import (
	"context"
	"errors"
	"testing"

	"github.com/jlyonsmith/git-extra/internal/forge"
	"github.com/jlyonsmith/git-extra/internal/git"
	"github.com/jlyonsmith/git-extra/internal/remote"
)

// fakeOpener records opened URLs.
type fakeOpener struct {
	opened []string
	err    error
}

func (f *fakeOpener) Open(_ context.Context, url string) error {
	f.opened = append(f.opened, url)
	return f.err
}

func originFetch(url string) []git.Remote {
	return []git.Remote{
		{Name: "origin", URL: url, Direction: git.DirectionFetch},
		{Name: "origin", URL: url, Direction: git.DirectionPush},
	}
}

func TestResolveURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		remotes []git.Remote
		want    string
	}{
		{
			name:    "https github round trip",
			remotes: originFetch("https://github.com/acme/widgets.git"),
			want:    "https://github.com/acme/widgets",
		},
		{
			name:    "ssh shorthand gitlab",
			remotes: originFetch("git@gitlab.com:acme/widgets.git"),
			want:    "https://gitlab.com/acme/widgets",
		},
		{
			name:    "self-hosted host treated as gitea",
			remotes: originFetch("git@git.example.com:acme/widgets.git"),
			want:    "https://git.example.com/acme/widgets",
		},
		{
			name: "origin picked among other remotes",
			remotes: append(
				[]git.Remote{{Name: "upstream", URL: "git@github.com:other/widgets.git", Direction: git.DirectionFetch}},
				originFetch("git@github.com:acme/widgets.git")...,
			),
			want: "https://github.com/acme/widgets",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := ResolveURL(tt.remotes, "origin")
			if err != nil {
				t.Fatalf("ResolveURL() error = %v, want nil", err)
			}
			if got != tt.want {
				t.Errorf("ResolveURL() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestResolveURL_NoOrigin(t *testing.T) {
	t.Parallel()

	remotes := []git.Remote{
		{Name: "upstream", URL: "git@github.com:acme/widgets.git", Direction: git.DirectionFetch},
	}

	_, err := ResolveURL(remotes, "origin")
	if !errors.Is(err, ErrNoOriginRemote) {
		t.Errorf("ResolveURL() error = %v, want ErrNoOriginRemote", err)
	}
}

func TestResolveURL_CustomRemoteName(t *testing.T) {
	t.Parallel()

	remotes := []git.Remote{
		{Name: "fork", URL: "git@github.com:me/widgets.git", Direction: git.DirectionFetch},
	}

	got, err := ResolveURL(remotes, "fork")
	if err != nil {
		t.Fatalf("ResolveURL() error = %v, want nil", err)
	}
	if want := "https://github.com/me/widgets"; got != want {
		t.Errorf("ResolveURL() = %q, want %q", got, want)
	}
}

func TestResolveURL_MalformedRemote(t *testing.T) {
	t.Parallel()

	_, err := ResolveURL(originFetch("not a url at all"), "origin")
	var parseErr *remote.ParseError
	if !errors.As(err, &parseErr) {
		t.Errorf("ResolveURL() error = %v, want wrapped *remote.ParseError", err)
	}
}

func TestResolveURL_FileRemote(t *testing.T) {
	t.Parallel()

	// A local file remote has no web page.
	_, err := ResolveURL(originFetch("file:///srv/git/widgets.git"), "origin")
	if !errors.Is(err, forge.ErrUnsupportedProvider) {
		t.Errorf("ResolveURL() error = %v, want ErrUnsupportedProvider", err)
	}
}

func TestRun(t *testing.T) {
	t.Parallel()

	opener := &fakeOpener{}
	url, err := Run(context.Background(), originFetch("https://github.com/acme/widgets.git"), "origin", opener)
	if err != nil {
		t.Fatalf("Run() error = %v, want nil", err)
	}
	if want := "https://github.com/acme/widgets"; url != want {
		t.Errorf("Run() url = %q, want %q", url, want)
	}
	if len(opener.opened) != 1 || opener.opened[0] != url {
		t.Errorf("opener.opened = %v, want [%q]", opener.opened, url)
	}
}

func TestRun_NoOriginNeverOpens(t *testing.T) {
	t.Parallel()

	opener := &fakeOpener{}
	_, err := Run(context.Background(), nil, "origin", opener)
	if !errors.Is(err, ErrNoOriginRemote) {
		t.Fatalf("Run() error = %v, want ErrNoOriginRemote", err)
	}
	if len(opener.opened) != 0 {
		t.Errorf("opener was called %d times, want 0", len(opener.opened))
	}
}

func TestRun_OpenerFailure(t *testing.T) {
	t.Parallel()

	opener := &fakeOpener{err: errors.New("no display")}
	_, err := Run(context.Background(), originFetch("https://github.com/acme/widgets.git"), "origin", opener)
	if err == nil {
		t.Fatal("Run() = nil error, want opener failure")
	}
}
