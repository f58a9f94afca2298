package forge

import (
	"errors"
	"testing"
)

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		host string
		want Provider
	}{
		{"github.com", GitHub},
		{"gitlab.com", GitLab},
		{"bitbucket.org", Bitbucket},
		// case insensitivity
		{"GitHub.com", GitHub},
		{"GITLAB.COM", GitLab},
		{"BitBucket.org", Bitbucket},
		// any other host is assumed to be self-hosted Gitea
		{"git.example.com", Gitea},
		{"gitea.internal", Gitea},
		{"gitlab.mycompany.com", Gitea},
		// empty host (file transport) has no provider
		{"", Unknown},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.host, func(t *testing.T) {
			t.Parallel()
			if got := Classify(tt.host); got != tt.want {
				t.Errorf("Classify(%q) = %v, want %v", tt.host, got, tt.want)
			}
		})
	}
}

func TestBrowseURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		provider Provider
		host     string
		want     string
	}{
		{"github", GitHub, "github.com", "https://github.com/acme/widgets"},
		{"gitlab", GitLab, "gitlab.com", "https://gitlab.com/acme/widgets"},
		{"bitbucket", Bitbucket, "bitbucket.org", "https://bitbucket.org/acme/widgets"},
		{"gitea", Gitea, "git.example.com", "https://git.example.com/acme/widgets"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := BrowseURL(tt.provider, tt.host, "acme", "widgets")
			if err != nil {
				t.Fatalf("BrowseURL() error = %v, want nil", err)
			}
			if got != tt.want {
				t.Errorf("BrowseURL() = %q, want %q", got, tt.want)
			}

			// same inputs, same output
			again, err := BrowseURL(tt.provider, tt.host, "acme", "widgets")
			if err != nil || again != got {
				t.Errorf("BrowseURL() second call = %q, %v; want %q, nil", again, err, got)
			}
		})
	}
}

func TestBrowseURL_Unknown(t *testing.T) {
	t.Parallel()

	_, err := BrowseURL(Unknown, "", "acme", "widgets")
	if !errors.Is(err, ErrUnsupportedProvider) {
		t.Errorf("BrowseURL(Unknown) error = %v, want ErrUnsupportedProvider", err)
	}
}

func TestProvider_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		provider Provider
		want     string
	}{
		{GitHub, "GitHub"},
		{GitLab, "GitLab"},
		{Bitbucket, "Bitbucket"},
		{Gitea, "Gitea"},
		{Unknown, "unknown"},
	}

	for _, tt := range tests {
		if got := tt.provider.String(); got != tt.want {
			t.Errorf("Provider(%d).String() = %q, want %q", tt.provider, got, tt.want)
		}
	}
}
