package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/abhisek/flashdeck/internal/schedule"
	"github.com/abhisek/flashdeck/internal/session"
	"github.com/abhisek/flashdeck/internal/source"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleDeck = `{
  "deck": "lang",
  "questions": [
    {"id": "hello", "text": "hello::world"},
    {"id": "go", "text": "goroutine:::lightweight thread", "topic": "lang/go",
     "schedules": ["!2024-01-01,3,250", "!2099-01-01,40,250"]}
  ]
}`

func TestPrintDeckTree(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "lang.json"), []byte(sampleDeck), 0o644))

	now := func() time.Time { return time.Date(2024, 1, 2, 9, 0, 0, 0, time.UTC) }
	questions, err := source.NewLoader(nil, now, nil).LoadDir(context.Background(), dir)
	require.NoError(t, err)
	require.Len(t, questions, 2)

	var buf bytes.Buffer
	require.NoError(t, printDeckTree(&buf, session.FullTree(questions), nil, schedule.Day(now())))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, []string{"DECK", "DUE", "NEW", "TOTAL"}, strings.Fields(lines[0]))
	assert.Equal(t, []string{"All", "decks", "1", "1", "3"}, strings.Fields(lines[1]))
	assert.Equal(t, []string{"lang", "1", "1", "3"}, strings.Fields(lines[2]))
	assert.Equal(t, []string{"go", "1", "0", "2"}, strings.Fields(lines[3]))
	assert.True(t, strings.HasPrefix(lines[3], "    go"), "subdeck should be indented: %q", lines[3])
}

func TestPrintResponseCounts(t *testing.T) {
	var buf bytes.Buffer
	printResponseCounts(&buf, map[string]int{schedule.Good.String(): 4, schedule.Hard.String(): 1})

	out := buf.String()
	for _, r := range schedule.Responses {
		assert.Contains(t, out, r.String())
	}
	assert.Contains(t, out, schedule.Good.String()+"   4")
}
