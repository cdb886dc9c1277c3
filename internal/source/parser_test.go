package source

import (
	"testing"

	"github.com/abhisek/flashdeck/internal/deck"
)

func TestParseQuestions(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		want  int
		faces [][]deck.Face
	}{
		{
			name:  "basic",
			text:  "What is 2+2?::4",
			want:  1,
			faces: [][]deck.Face{{{Front: "What is 2+2?", Back: "4"}}},
		},
		{
			name: "reversed",
			text: "cat:::gato",
			want: 1,
			faces: [][]deck.Face{{
				{Front: "cat", Back: "gato"},
				{Front: "gato", Back: "cat"},
			}},
		},
		{
			name:  "multi-line",
			text:  "Name the planets\nclosest to the sun\n?\nMercury\nVenus",
			want:  1,
			faces: [][]deck.Face{{{Front: "Name the planets\nclosest to the sun", Back: "Mercury\nVenus"}}},
		},
		{
			name: "multi-line reversed",
			text: "front\n??\nback",
			want: 1,
			faces: [][]deck.Face{{
				{Front: "front", Back: "back"},
				{Front: "back", Back: "front"},
			}},
		},
		{
			name: "cloze",
			text: "{{Paris}} is the capital of {{France}}",
			want: 1,
			faces: [][]deck.Face{{
				{Front: "[...] is the capital of France", Back: "Paris is the capital of France"},
				{Front: "Paris is the capital of [...]", Back: "Paris is the capital of France"},
			}},
		},
		{
			name: "two blocks",
			text: "a::b\n\n\nc::d\n",
			want: 2,
			faces: [][]deck.Face{
				{{Front: "a", Back: "b"}},
				{{Front: "c", Back: "d"}},
			},
		},
		{
			name: "plain prose ignored",
			text: "just some notes",
			want: 0,
		},
		{
			name: "empty side ignored",
			text: "front::",
			want: 0,
		},
		{
			name: "empty",
			text: "  \n\n ",
			want: 0,
		},
	}

	var p Parser
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := p.ParseQuestions(tt.text)
			if err != nil {
				t.Fatalf("ParseQuestions: %v", err)
			}
			if len(got) != tt.want {
				t.Fatalf("got %d questions, want %d", len(got), tt.want)
			}
			for i, faces := range tt.faces {
				if len(got[i].Faces) != len(faces) {
					t.Fatalf("question %d: got %d faces, want %d", i, len(got[i].Faces), len(faces))
				}
				for j, f := range faces {
					if got[i].Faces[j] != f {
						t.Errorf("question %d face %d = %+v, want %+v", i, j, got[i].Faces[j], f)
					}
				}
			}
		})
	}
}

func TestParseQuestionsKeepsText(t *testing.T) {
	var p Parser
	got, _ := p.ParseQuestions("\n  a::b  \n")
	if len(got) != 1 || got[0].Text != "a::b" {
		t.Fatalf("got %+v", got)
	}
}
