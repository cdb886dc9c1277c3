// Package decks implements the deck list screen.
package decks

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/flashdeck/internal/deck"
	"github.com/abhisek/flashdeck/internal/router"
	"github.com/abhisek/flashdeck/internal/screen"
	"github.com/abhisek/flashdeck/internal/screens/review"
	"github.com/abhisek/flashdeck/internal/session"
	"github.com/abhisek/flashdeck/internal/ui/components"
	"github.com/abhisek/flashdeck/internal/ui/layout"
	"github.com/abhisek/flashdeck/internal/ui/theme"
)

type entry struct {
	path  deck.TopicPath
	depth int
}

// DeckListScreen lists every deck with its due, new and total counts.
type DeckListScreen struct {
	ctx       context.Context
	seq       *session.Sequencer
	entries   []entry
	menu      components.Menu
	showHints bool
	notice    string
}

var _ screen.Screen = (*DeckListScreen)(nil)
var _ screen.KeyHintProvider = (*DeckListScreen)(nil)
var _ screen.CountsProvider = (*DeckListScreen)(nil)
var _ screen.Resumer = (*DeckListScreen)(nil)

// New creates the deck list for the decks of full.
func New(ctx context.Context, seq *session.Sequencer, full *deck.Deck, showHints bool) *DeckListScreen {
	s := &DeckListScreen{ctx: ctx, seq: seq, showHints: showHints}

	full.Walk(func(d *deck.Deck) bool {
		path := d.TopicPath()
		s.entries = append(s.entries, entry{path: path, depth: len(path)})
		return true
	})

	items := make([]components.MenuItem, len(s.entries))
	for i, e := range s.entries {
		name := session.RootDeckName
		if !e.path.IsEmpty() {
			name = e.path[len(e.path)-1]
		}
		items[i] = components.MenuItem{
			Label:  strings.Repeat("  ", e.depth) + name,
			Action: s.open(e.path),
		}
	}
	s.menu = components.NewMenu(items)
	return s
}

func (s *DeckListScreen) Init() tea.Cmd {
	return nil
}

// Resume runs when a review closes. The notice says whether the deck under
// the cursor still has cards.
func (s *DeckListScreen) Resume() tea.Cmd {
	path := s.entries[s.menu.Selected].path
	st := s.seq.DeckStats(path)
	if st.Due+st.New == 0 {
		s.notice = "Deck finished. Pick another one or press q to quit."
	} else {
		s.notice = ""
	}
	return nil
}

func (s *DeckListScreen) Title() string {
	if s.seq.Mode() == session.Cram {
		return "Decks (cram)"
	}
	return "Decks"
}

func (s *DeckListScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Study"},
		{Key: "q", Description: "Quit"},
	}
}

func (s *DeckListScreen) Counts() layout.Counts {
	st := s.seq.DeckStats(nil)
	return layout.Counts{Due: st.Due, New: st.New}
}

func (s *DeckListScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "q":
			return s, tea.Quit
		}
		s.notice = ""
	}
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

// open returns the menu action that starts studying the deck at path.
func (s *DeckListScreen) open(path deck.TopicPath) func() tea.Cmd {
	return func() tea.Cmd {
		if !s.seq.SetCurrentDeck(path) {
			s.notice = "Nothing to study in this deck right now."
			return nil
		}
		scr := review.New(s.ctx, s.seq, path, s.showHints)
		return func() tea.Msg { return router.PushScreenMsg{Screen: scr} }
	}
}

func (s *DeckListScreen) View(width, height int) string {
	for i, e := range s.entries {
		st := s.seq.DeckStats(e.path)
		s.menu.Items[i].Detail = formatStats(st)
	}

	var b strings.Builder
	b.WriteString("\n")
	header := fmt.Sprintf("%*s", width-4, "due   new  total")
	b.WriteString(theme.Hint.Render(header))
	b.WriteString("\n")
	b.WriteString(s.menu.View(width - 2))
	if s.notice != "" {
		b.WriteString("\n")
		b.WriteString(layout.Centered(theme.Subtitle, width, s.notice))
	}
	return b.String()
}

func formatStats(st session.Stats) string {
	return theme.DueCount.Render(fmt.Sprintf("%5d", st.Due)) + " " +
		theme.NewCount.Render(fmt.Sprintf("%5d", st.New)) + " " +
		theme.TotalCount.Render(fmt.Sprintf("%6d", st.Total))
}
