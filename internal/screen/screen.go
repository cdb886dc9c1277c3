// Package screen defines what the router and the app frame need from a
// screen.
package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/flashdeck/internal/ui/layout"
)

// Screen is one page of the TUI. View renders the body only; the app frame
// draws the header and footer around it.
type Screen interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (Screen, tea.Cmd)
	View(width, height int) string
	Title() string
}

// KeyHintProvider screens replace the default footer hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// CountsProvider screens report the due and new counts shown in the header.
type CountsProvider interface {
	Counts() layout.Counts
}

// Resumer screens are told when they become active again after the screen
// above them closes.
type Resumer interface {
	Resume() tea.Cmd
}
