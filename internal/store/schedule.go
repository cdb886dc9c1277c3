package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"

	"github.com/abhisek/flashdeck/internal/schedule"
)

// execQuerier is satisfied by *sql.DB and *sql.Tx.
type execQuerier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// scheduleRepo implements ScheduleRepo with ent's SQL builder.
type scheduleRepo struct {
	db  *sql.DB
	now func() time.Time
}

func builder() *entsql.DialectBuilder {
	return entsql.Dialect(dialect.SQLite)
}

func (r *scheduleRepo) Get(ctx context.Context, cardKey string) (schedule.Info, bool, error) {
	query, args := builder().
		Select("due_date", "interval_days", "ease").
		From(entsql.Table(tableCardSchedules)).
		Where(entsql.EQ("card_key", cardKey)).
		Query()

	var due string
	var interval, ease int
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&due, &interval, &ease)
	if errors.Is(err, sql.ErrNoRows) {
		return schedule.Info{}, false, nil
	}
	if err != nil {
		return schedule.Info{}, false, fmt.Errorf("query schedule %s: %w", cardKey, err)
	}

	info, err := scanInfo(due, interval, ease)
	if err != nil {
		return schedule.Info{}, false, fmt.Errorf("schedule %s: %w", cardKey, err)
	}
	return info, true, nil
}

func (r *scheduleRepo) All(ctx context.Context) (map[string]schedule.Info, error) {
	query, args := builder().
		Select("card_key", "due_date", "interval_days", "ease").
		From(entsql.Table(tableCardSchedules)).
		Query()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query schedules: %w", err)
	}
	defer rows.Close()

	out := make(map[string]schedule.Info)
	for rows.Next() {
		var key, due string
		var interval, ease int
		if err := rows.Scan(&key, &due, &interval, &ease); err != nil {
			return nil, fmt.Errorf("scan schedule: %w", err)
		}
		info, err := scanInfo(due, interval, ease)
		if err != nil {
			return nil, fmt.Errorf("schedule %s: %w", key, err)
		}
		out[key] = info
	}
	return out, rows.Err()
}

func (r *scheduleRepo) Save(ctx context.Context, cardKey string, info schedule.Info) error {
	return saveSchedule(ctx, r.db, cardKey, info, r.now())
}

func (r *scheduleRepo) SaveQuestion(ctx context.Context, q QuestionData) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	now := r.now()
	query, args := builder().
		Insert(tableQuestionTexts).
		Columns("question_key", "text", "updated_at").
		Values(q.Key, q.Text, formatTime(now)).
		OnConflict(entsql.ConflictColumns("question_key"), entsql.ResolveWithNewValues()).
		Query()
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("save question text %s: %w", q.Key, err)
	}

	keep := make([]any, 0, len(q.Cards))
	for _, c := range q.Cards {
		info := schedule.Info{}
		if c.Schedule != nil {
			info = *c.Schedule
		}
		if err := saveSchedule(ctx, tx, c.Key, info, now); err != nil {
			return err
		}
		keep = append(keep, c.Key)
	}

	del := builder().Delete(tableCardSchedules).
		Where(entsql.HasPrefix("card_key", q.Key+"/"))
	if len(keep) > 0 {
		del = del.Where(entsql.NotIn("card_key", keep...))
	}
	query, args = del.Query()
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("drop stale schedules %s: %w", q.Key, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit question %s: %w", q.Key, err)
	}
	return nil
}

func (r *scheduleRepo) QuestionText(ctx context.Context, questionKey string) (string, bool, error) {
	query, args := builder().
		Select("text").
		From(entsql.Table(tableQuestionTexts)).
		Where(entsql.EQ("question_key", questionKey)).
		Query()

	var text string
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&text)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("query question text %s: %w", questionKey, err)
	}
	return text, true, nil
}

func saveSchedule(ctx context.Context, db execQuerier, cardKey string, info schedule.Info, now time.Time) error {
	if info.IsNew() {
		query, args := builder().
			Delete(tableCardSchedules).
			Where(entsql.EQ("card_key", cardKey)).
			Query()
		if _, err := db.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("delete schedule %s: %w", cardKey, err)
		}
		return nil
	}

	query, args := builder().
		Insert(tableCardSchedules).
		Columns("card_key", "due_date", "interval_days", "ease", "updated_at").
		Values(cardKey, info.DueDate.Format(schedule.DateLayout), info.IntervalDays(), info.Ease, formatTime(now)).
		OnConflict(entsql.ConflictColumns("card_key"), entsql.ResolveWithNewValues()).
		Query()
	if _, err := db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("save schedule %s: %w", cardKey, err)
	}
	return nil
}

func scanInfo(due string, interval, ease int) (schedule.Info, error) {
	d, err := time.ParseInLocation(schedule.DateLayout, due, time.Local)
	if err != nil {
		return schedule.Info{}, fmt.Errorf("%w: due date %q", schedule.ErrInvalidSchedule, due)
	}
	return schedule.Info{DueDate: d, Interval: float64(interval), Ease: ease}, nil
}
