// Package git provides git operations via shell commands.
//
// All operations use [os/exec] to call the git CLI directly rather than
// a Go git library. This is simpler and ensures compatibility with user
// configuration (SSH keys, credential helpers, aliases).
//
//   - [ListRemotes]: list configured remotes with their URLs
//   - [Clone]: clone a repository into a target directory
//   - [CheckGit]: verify git is installed
package git
