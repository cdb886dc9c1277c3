package source

import (
	"regexp"
	"strings"

	"github.com/abhisek/flashdeck/internal/deck"
)

const (
	singleLineSeparator         = "::"
	singleLineReversedSeparator = ":::"
	multiLineSeparator          = "?"
	multiLineReversedSeparator  = "??"
	clozeHidden                 = "[...]"
)

var clozePattern = regexp.MustCompile(`\{\{(.+?)\}\}`)

// Parser turns question text into cards. Supported forms:
//
//	front::back          one card
//	front:::back         two cards, one per direction
//	front\n?\nback       one multi-line card
//	front\n??\nback      two multi-line cards
//	text with {{cloze}}  one card per deletion
//
// Questions are separated by blank lines. Blocks that match none of the
// forms are ignored.
type Parser struct{}

// ParseQuestions returns every question found in text.
func (Parser) ParseQuestions(text string) ([]deck.ParsedQuestion, error) {
	var out []deck.ParsedQuestion
	for _, block := range splitBlocks(text) {
		if faces := parseBlock(block); len(faces) > 0 {
			out = append(out, deck.ParsedQuestion{Text: block, Faces: faces})
		}
	}
	return out, nil
}

func splitBlocks(text string) []string {
	var blocks []string
	var cur []string
	flush := func() {
		if b := strings.TrimSpace(strings.Join(cur, "\n")); b != "" {
			blocks = append(blocks, b)
		}
		cur = cur[:0]
	}
	for line := range strings.SplitSeq(strings.ReplaceAll(text, "\r\n", "\n"), "\n") {
		if strings.TrimSpace(line) == "" {
			flush()
			continue
		}
		cur = append(cur, line)
	}
	flush()
	return blocks
}

func parseBlock(block string) []deck.Face {
	lines := strings.Split(block, "\n")

	for i, line := range lines {
		switch strings.TrimSpace(line) {
		case multiLineReversedSeparator:
			front, back := joinTrim(lines[:i]), joinTrim(lines[i+1:])
			return reversed(front, back)
		case multiLineSeparator:
			front, back := joinTrim(lines[:i]), joinTrim(lines[i+1:])
			return basic(front, back)
		}
	}

	if len(lines) == 1 {
		if front, back, ok := strings.Cut(block, singleLineReversedSeparator); ok {
			return reversed(strings.TrimSpace(front), strings.TrimSpace(back))
		}
		if front, back, ok := strings.Cut(block, singleLineSeparator); ok {
			return basic(strings.TrimSpace(front), strings.TrimSpace(back))
		}
	}

	return cloze(block)
}

func basic(front, back string) []deck.Face {
	if front == "" || back == "" {
		return nil
	}
	return []deck.Face{{Front: front, Back: back}}
}

func reversed(front, back string) []deck.Face {
	if front == "" || back == "" {
		return nil
	}
	return []deck.Face{{Front: front, Back: back}, {Front: back, Back: front}}
}

func cloze(block string) []deck.Face {
	matches := clozePattern.FindAllStringSubmatchIndex(block, -1)
	faces := make([]deck.Face, 0, len(matches))
	for hide := range matches {
		var front, back strings.Builder
		last := 0
		for i, m := range matches {
			front.WriteString(block[last:m[0]])
			back.WriteString(block[last:m[0]])
			answer := block[m[2]:m[3]]
			if i == hide {
				front.WriteString(clozeHidden)
			} else {
				front.WriteString(answer)
			}
			back.WriteString(answer)
			last = m[1]
		}
		front.WriteString(block[last:])
		back.WriteString(block[last:])
		faces = append(faces, deck.Face{Front: front.String(), Back: back.String()})
	}
	return faces
}

func joinTrim(lines []string) string {
	return strings.TrimSpace(strings.Join(lines, "\n"))
}
