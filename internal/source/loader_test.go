package source

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/flashdeck/internal/deck"
	"github.com/abhisek/flashdeck/internal/schedule"
)

var testNow = time.Date(2023, 7, 1, 10, 0, 0, 0, time.UTC)

type fakeSchedules struct {
	infos map[string]schedule.Info
	texts map[string]string
}

func (f *fakeSchedules) Get(_ context.Context, key string) (schedule.Info, bool, error) {
	info, ok := f.infos[key]
	return info, ok, nil
}

func (f *fakeSchedules) QuestionText(_ context.Context, key string) (string, bool, error) {
	text, ok := f.texts[key]
	return text, ok, nil
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func newTestLoader(s ScheduleSource) *Loader {
	return NewLoader(s, func() time.Time { return testNow }, nil)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "spanish.json", `{
		"deck": "lang/spanish",
		"questions": [
			{"id": "q1", "text": "cat:::gato", "schedules": ["!2023-07-03,5,250"]},
			{"id": "q2", "text": "dog::perro", "topic": "lang/spanish/animals"},
			{"id": "q3", "text": "later::maybe", "editLater": true}
		]
	}`)

	qs, err := newTestLoader(nil).LoadFile(context.Background(), path, "spanish.json")
	require.NoError(t, err)
	require.Len(t, qs, 3)

	q1 := qs[0]
	assert.Equal(t, "spanish.json#q1", q1.Key())
	assert.Equal(t, deck.TopicPath{"lang", "spanish"}, q1.TopicPath)
	require.Len(t, q1.Cards, 2)
	assert.Equal(t, "spanish.json#q1/0", q1.Cards[0].Key)
	require.NotNil(t, q1.Cards[0].Schedule)
	assert.Equal(t, 5, q1.Cards[0].Schedule.IntervalDays())
	assert.Equal(t, 2, q1.Cards[0].Schedule.DueInDays(testNow))
	assert.True(t, q1.Cards[1].IsNew())

	assert.Equal(t, deck.TopicPath{"lang", "spanish", "animals"}, qs[1].TopicPath)
	assert.True(t, qs[2].EditLater)
}

func TestLoadFilePrefersStore(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "d.json", `{"questions": [
		{"id": "q1", "text": "a::b", "schedules": ["!2023-07-03,5,250"]}
	]}`)
	due := time.Date(2023, 6, 28, 0, 0, 0, 0, time.UTC)
	store := &fakeSchedules{
		infos: map[string]schedule.Info{"d.json#q1/0": {DueDate: due, Interval: 10, Ease: 270}},
		texts: map[string]string{"d.json#q1": "edited::text"},
	}

	qs, err := newTestLoader(store).LoadFile(context.Background(), path, "d.json")
	require.NoError(t, err)
	require.Len(t, qs, 1)

	c := qs[0].Cards[0]
	assert.Equal(t, "edited", c.Front)
	assert.Equal(t, 270, c.Schedule.Ease)
	assert.Equal(t, 3*24*time.Hour, c.Schedule.Delay)
	assert.Equal(t, deck.TopicPath{"d"}, qs[0].TopicPath)
}

func TestLoadFileSkipsNonQuestions(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "d.json", `{"deck": "x", "questions": [
		{"id": "prose", "text": "no separator here"},
		{"id": "two", "text": "a::b\n\nc::d"},
		{"id": "ok", "text": "a::b"}
	]}`)

	qs, err := newTestLoader(nil).LoadFile(context.Background(), path, "d.json")
	require.NoError(t, err)
	require.Len(t, qs, 1)
	assert.Equal(t, "ok", qs[0].ID)
}

type failingParser struct{ err error }

func (p failingParser) ParseQuestions(string) ([]deck.ParsedQuestion, error) {
	return nil, p.err
}

func TestLoadFileLogsParseError(t *testing.T) {
	path := writeFile(t, t.TempDir(), "d.json", `{"deck": "x", "questions": [{"id": "q", "text": "a::b"}]}`)

	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))
	loader := NewLoader(nil, func() time.Time { return testNow }, logger).
		WithParser(failingParser{err: errors.New("unbalanced cloze")})

	qs, err := loader.LoadFile(context.Background(), path, "d.json")
	require.NoError(t, err)
	assert.Empty(t, qs)
	assert.Contains(t, logs.String(), "skipping question")
	assert.Contains(t, logs.String(), `error="unbalanced cloze"`)
}

func TestLoadFileInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"not json", `{`},
		{"missing questions", `{"deck": "x"}`},
		{"missing id", `{"questions": [{"text": "a::b"}]}`},
		{"bad id", `{"questions": [{"id": "a#b", "text": "a::b"}]}`},
		{"unknown field", `{"questions": [], "extra": 1}`},
		{"bad schedule", `{"questions": [{"id": "q", "text": "a::b", "schedules": ["tomorrow"]}]}`},
		{"duplicate id", `{"questions": [{"id": "q", "text": "a::b"}, {"id": "q", "text": "c::d"}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, t.TempDir(), "d.json", tt.content)
			_, err := newTestLoader(nil).LoadFile(context.Background(), path, "d.json")
			assert.ErrorIs(t, err, ErrInvalidDeck)
		})
	}
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b.json", `{"deck": "b", "questions": [{"id": "1", "text": "b::1"}]}`)
	writeFile(t, dir, "sub/a.json", `{"deck": "a", "questions": [{"id": "1", "text": "a::1"}]}`)
	writeFile(t, dir, "notes.md", `ignored`)
	writeFile(t, dir, ".hidden/c.json", `{`)

	qs, err := newTestLoader(nil).LoadDir(context.Background(), dir)
	require.NoError(t, err)
	require.Len(t, qs, 2)
	assert.Equal(t, "b.json#1", qs[0].Key())
	assert.Equal(t, "sub/a.json#1", qs[1].Key())
}
