// Package tui renders flow scenes for the interactive demo.
package tui

import (
	"github.com/charmbracelet/glamour"
	"github.com/muesli/termenv"
)

// NewRenderer returns a function that renders markdown for the terminal.
// When interactive is false (piped output, --plain) it passes text through
// untouched so the output stays scriptable.
func NewRenderer(interactive bool) func(string) string {
	if !interactive || termenv.EnvNoColor() {
		return func(markdown string) string { return markdown }
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(), // detect light/dark background
	)
	if err != nil {
		return func(markdown string) string { return markdown }
	}

	return func(markdown string) string {
		out, err := r.Render(markdown)
		if err != nil {
			return markdown
		}
		return out
	}
}
