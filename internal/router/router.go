// Package router keeps the stack of TUI screens: deck list at the bottom,
// review and summary screens on top.
package router

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/flashdeck/internal/screen"
)

// PushScreenMsg opens a screen above the active one.
type PushScreenMsg struct {
	Screen screen.Screen
}

// PopScreenMsg closes the active screen and resumes the one below.
type PopScreenMsg struct{}

// ReplaceScreenMsg swaps the active screen, e.g. a finished review for its
// summary, so that closing the summary returns straight to the deck list.
type ReplaceScreenMsg struct {
	Screen screen.Screen
}

// Router owns the screen stack. The bottom screen is never popped.
type Router struct {
	stack []screen.Screen
}

func New(root screen.Screen) *Router {
	return &Router{stack: []screen.Screen{root}}
}

// Push opens s and returns its Init command.
func (r *Router) Push(s screen.Screen) tea.Cmd {
	r.stack = append(r.stack, s)
	return s.Init()
}

// Pop closes the active screen. The newly active screen is resumed if it
// implements screen.Resumer.
func (r *Router) Pop() tea.Cmd {
	if len(r.stack) == 1 {
		return nil
	}
	r.stack[len(r.stack)-1] = nil
	r.stack = r.stack[:len(r.stack)-1]
	if res, ok := r.top().(screen.Resumer); ok {
		return res.Resume()
	}
	return nil
}

// Replace swaps the active screen for s and returns its Init command.
func (r *Router) Replace(s screen.Screen) tea.Cmd {
	r.stack[len(r.stack)-1] = s
	return s.Init()
}

func (r *Router) Active() screen.Screen { return r.top() }
func (r *Router) Depth() int            { return len(r.stack) }

func (r *Router) top() screen.Screen {
	return r.stack[len(r.stack)-1]
}

// Update handles navigation messages and forwards everything else to the
// active screen.
func (r *Router) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case PushScreenMsg:
		return r.Push(msg.Screen)
	case PopScreenMsg:
		return r.Pop()
	case ReplaceScreenMsg:
		return r.Replace(msg.Screen)
	}

	next, cmd := r.top().Update(msg)
	r.stack[len(r.stack)-1] = next
	return cmd
}

func (r *Router) View(width, height int) string {
	return r.top().View(width, height)
}
