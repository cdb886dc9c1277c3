package router

import (
	"slices"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/flashdeck/internal/screen"
)

// recorder logs lifecycle calls of every screen it backs.
type recorder struct {
	calls []string
}

type fakeScreen struct {
	name string
	rec  *recorder
}

func (s *fakeScreen) Init() tea.Cmd {
	s.rec.calls = append(s.rec.calls, "init "+s.name)
	return nil
}

func (s *fakeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	s.rec.calls = append(s.rec.calls, "update "+s.name)
	return s, nil
}

func (s *fakeScreen) View(int, int) string { return s.name }
func (s *fakeScreen) Title() string        { return s.name }

// resumingScreen also implements screen.Resumer.
type resumingScreen struct {
	fakeScreen
}

func (s *resumingScreen) Resume() tea.Cmd {
	s.rec.calls = append(s.rec.calls, "resume "+s.name)
	return nil
}

func TestNavigation(t *testing.T) {
	tests := []struct {
		name      string
		msgs      func(mk func(string) screen.Screen) []tea.Msg
		wantTop   string
		wantDepth int
		wantCalls []string
	}{
		{
			name: "push opens review above decks",
			msgs: func(mk func(string) screen.Screen) []tea.Msg {
				return []tea.Msg{PushScreenMsg{Screen: mk("review")}}
			},
			wantTop:   "review",
			wantDepth: 2,
			wantCalls: []string{"init review"},
		},
		{
			name: "pop resumes the deck list",
			msgs: func(mk func(string) screen.Screen) []tea.Msg {
				return []tea.Msg{PushScreenMsg{Screen: mk("review")}, PopScreenMsg{}}
			},
			wantTop:   "decks",
			wantDepth: 1,
			wantCalls: []string{"init review", "resume decks"},
		},
		{
			name: "pop keeps the bottom screen",
			msgs: func(mk func(string) screen.Screen) []tea.Msg {
				return []tea.Msg{PopScreenMsg{}, PopScreenMsg{}}
			},
			wantTop:   "decks",
			wantDepth: 1,
		},
		{
			name: "summary replaces review",
			msgs: func(mk func(string) screen.Screen) []tea.Msg {
				return []tea.Msg{
					PushScreenMsg{Screen: mk("review")},
					ReplaceScreenMsg{Screen: mk("summary")},
				}
			},
			wantTop:   "summary",
			wantDepth: 2,
			wantCalls: []string{"init review", "init summary"},
		},
		{
			name: "closing the summary lands on the deck list",
			msgs: func(mk func(string) screen.Screen) []tea.Msg {
				return []tea.Msg{
					PushScreenMsg{Screen: mk("review")},
					ReplaceScreenMsg{Screen: mk("summary")},
					PopScreenMsg{},
				}
			},
			wantTop:   "decks",
			wantDepth: 1,
			wantCalls: []string{"init review", "init summary", "resume decks"},
		},
		{
			name: "other messages go to the active screen only",
			msgs: func(mk func(string) screen.Screen) []tea.Msg {
				return []tea.Msg{PushScreenMsg{Screen: mk("review")}, tea.KeyPressMsg{Code: ' '}}
			},
			wantTop:   "review",
			wantDepth: 2,
			wantCalls: []string{"init review", "update review"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &recorder{}
			mk := func(name string) screen.Screen { return &fakeScreen{name: name, rec: rec} }
			r := New(&resumingScreen{fakeScreen{name: "decks", rec: rec}})

			for _, msg := range tt.msgs(mk) {
				r.Update(msg)
			}

			if got := r.Active().Title(); got != tt.wantTop {
				t.Errorf("active = %q, want %q", got, tt.wantTop)
			}
			if r.Depth() != tt.wantDepth {
				t.Errorf("depth = %d, want %d", r.Depth(), tt.wantDepth)
			}
			if !slices.Equal(rec.calls, tt.wantCalls) {
				t.Errorf("calls = %v, want %v", rec.calls, tt.wantCalls)
			}
			if got := r.View(80, 24); got != tt.wantTop {
				t.Errorf("view = %q, want %q", got, tt.wantTop)
			}
		})
	}
}
