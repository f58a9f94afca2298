// Package config loads the quick-start shortcut configuration.
//
// Shortcuts are read from ~/.config/git-extra/repos.toml, overridable
// via the GIT_EXTRA_REPOS_FILE environment variable. The file maps a
// shortcut name to an origin URL, an optional description, and an
// optional customizer script name:
//
//	[rust-cli]
//	description = "Rust CLI starter project"
//	origin = "git@github.com:acme/rust-cli-quickstart.git"
//	customizer = "customize"
//
// The mapping is loaded once per invocation and passed explicitly to
// the resolver; nothing in this package is ever written back except by
// the explicit Init operation.
package config
