// Package source loads questions from JSON deck files.
package source

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/abhisek/flashdeck/internal/deck"
	"github.com/abhisek/flashdeck/internal/schedule"
)

// ErrInvalidDeck is returned for deck files that fail validation.
var ErrInvalidDeck = errors.New("source: invalid deck file")

// File is the on-disk layout of a deck file.
type File struct {
	Deck      string         `json:"deck"`
	Questions []FileQuestion `json:"questions"`
}

// FileQuestion is one question entry in a deck file.
type FileQuestion struct {
	ID        string   `json:"id"`
	Text      string   `json:"text"`
	Topic     string   `json:"topic,omitempty"`
	EditLater bool     `json:"editLater,omitempty"`
	Schedules []string `json:"schedules,omitempty"`
}

// ScheduleSource supplies stored schedules and edited question text. The
// store's ScheduleRepo satisfies it.
type ScheduleSource interface {
	Get(ctx context.Context, cardKey string) (schedule.Info, bool, error)
	QuestionText(ctx context.Context, questionKey string) (string, bool, error)
}

// QuestionParser turns question text into parsed questions. Parser is the
// default.
type QuestionParser interface {
	ParseQuestions(text string) ([]deck.ParsedQuestion, error)
}

// Loader reads deck files into questions.
type Loader struct {
	parser    QuestionParser
	schedules ScheduleSource
	now       func() time.Time
	logger    *slog.Logger
}

// NewLoader returns a loader. schedules may be nil, in which case only the
// schedules embedded in deck files are used.
func NewLoader(schedules ScheduleSource, now func() time.Time, logger *slog.Logger) *Loader {
	if now == nil {
		now = time.Now
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{parser: Parser{}, schedules: schedules, now: now, logger: logger}
}

// WithParser replaces the question parser and returns l.
func (l *Loader) WithParser(p QuestionParser) *Loader {
	l.parser = p
	return l
}

// LoadDir loads every *.json file under dir in lexical order.
func (l *Loader) LoadDir(ctx context.Context, dir string) ([]*deck.Question, error) {
	var paths []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != dir && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.EqualFold(filepath.Ext(path), ".json") {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", dir, err)
	}
	slices.Sort(paths)

	var out []*deck.Question
	for _, p := range paths {
		rel, err := filepath.Rel(dir, p)
		if err != nil {
			rel = p
		}
		qs, err := l.LoadFile(ctx, p, filepath.ToSlash(rel))
		if err != nil {
			return nil, err
		}
		out = append(out, qs...)
	}
	l.logger.Debug("decks loaded", "dir", dir, "files", len(paths), "questions", len(out))
	return out, nil
}

// LoadFile loads one deck file. notePath names the file in card keys.
func (l *Loader) LoadFile(ctx context.Context, path, notePath string) ([]*deck.Question, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if err := validate(raw); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	var f File
	if err := json.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("%s: %w: %w", path, ErrInvalidDeck, err)
	}

	defaultTopic := deck.ParseTopicPath(f.Deck)
	if defaultTopic.IsEmpty() {
		defaultTopic = deck.ParseTopicPath(strings.TrimSuffix(notePath, filepath.Ext(notePath)))
	}

	seen := make(map[string]bool, len(f.Questions))
	out := make([]*deck.Question, 0, len(f.Questions))
	for _, fq := range f.Questions {
		if seen[fq.ID] {
			return nil, fmt.Errorf("%s: %w: duplicate question id %q", path, ErrInvalidDeck, fq.ID)
		}
		seen[fq.ID] = true

		q, err := l.question(ctx, notePath, defaultTopic, fq)
		if err != nil {
			return nil, err
		}
		if q == nil {
			continue
		}
		out = append(out, q)
	}
	return out, nil
}

func (l *Loader) question(ctx context.Context, notePath string, topic deck.TopicPath, fq FileQuestion) (*deck.Question, error) {
	if fq.Topic != "" {
		topic = deck.ParseTopicPath(fq.Topic)
	}
	ref := &deck.Question{ID: fq.ID, NotePath: notePath}

	text := fq.Text
	if l.schedules != nil {
		edited, ok, err := l.schedules.QuestionText(ctx, ref.Key())
		if err != nil {
			return nil, fmt.Errorf("load text %s: %w", ref.Key(), err)
		}
		if ok {
			text = edited
		}
	}

	parsed, err := l.parser.ParseQuestions(text)
	if err != nil || len(parsed) != 1 {
		l.logger.Warn("skipping question", "key", ref.Key(), "questions", len(parsed), "error", err)
		return nil, nil
	}

	q := deck.NewQuestion(fq.ID, notePath, topic, parsed[0].Text, parsed[0].Faces)
	q.EditLater = fq.EditLater

	today := schedule.Day(l.now())
	for i, c := range q.Cards {
		info, err := l.cardSchedule(ctx, c.Key, fq.Schedules, i, today)
		if err != nil {
			return nil, err
		}
		c.Schedule = info
	}
	return q, nil
}

// cardSchedule prefers the stored schedule over the one embedded in the
// deck file.
func (l *Loader) cardSchedule(ctx context.Context, key string, embedded []string, index int, today time.Time) (*schedule.Info, error) {
	if l.schedules != nil {
		info, ok, err := l.schedules.Get(ctx, key)
		if err != nil {
			return nil, fmt.Errorf("load schedule %s: %w", key, err)
		}
		if ok {
			info = info.AsOf(today)
			return &info, nil
		}
	}
	if index >= len(embedded) {
		return nil, nil
	}
	info, err := schedule.Parse(embedded[index], today)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", key, err)
	}
	if info.IsNew() {
		return nil, nil
	}
	return &info, nil
}
