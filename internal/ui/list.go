// Package ui renders the shortcut listing and the interactive picker.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jlyonsmith/git-extra/internal/config"
)

var (
	nameStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("78")).Bold(true)
	originStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// RenderShortcuts renders the shortcut mapping sorted by name, one
// entry per line with the description dimmed underneath. An empty
// mapping renders as an empty string; that is a valid, successful
// listing, not an error. Styling is disabled when styled is false
// (stdout not a terminal).
func RenderShortcuts(shortcuts map[string]config.Shortcut, styled bool) string {
	names := config.Names(shortcuts)
	if len(names) == 0 {
		return ""
	}

	width := 0
	for _, name := range names {
		if len(name) > width {
			width = len(name)
		}
	}
	width += 3

	var b strings.Builder
	for _, name := range names {
		sc := shortcuts[name]
		padded := fmt.Sprintf("%-*s", width, name)
		if styled {
			b.WriteString(nameStyle.Render(padded) + originStyle.Render(sc.Origin) + "\n")
		} else {
			b.WriteString(padded + sc.Origin + "\n")
		}
		if sc.Description != "" {
			desc := fmt.Sprintf("%-*s", width, "") + sc.Description
			if styled {
				desc = dimStyle.Render(desc)
			}
			b.WriteString(desc + "\n")
		}
	}
	return b.String()
}
