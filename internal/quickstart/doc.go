// Package quickstart creates new projects from template repositories.
//
// A quick-start is two steps: clone a repository (named by a configured
// shortcut or a literal URL), then run a customization script inside
// the clone to turn the template into a real project. Resolution is
// pure; the clone and the script execution are the only side effects,
// performed through the Cloner and Runner collaborator interfaces so
// they can be faked in tests.
package quickstart
