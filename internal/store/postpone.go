package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"

	"github.com/abhisek/flashdeck/internal/schedule"
)

// postponementRepo implements PostponementRepo.
type postponementRepo struct {
	db *sql.DB
}

func (r *postponementRepo) Load(ctx context.Context, day time.Time) ([]string, error) {
	today := day.Format(schedule.DateLayout)

	query, args := builder().
		Delete(tablePostponed).
		Where(entsql.NEQ("day", today)).
		Query()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return nil, fmt.Errorf("expire postponements: %w", err)
	}

	query, args = builder().
		Select("question_key").
		From(entsql.Table(tablePostponed)).
		OrderBy("question_key").
		Query()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query postponements: %w", err)
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, fmt.Errorf("scan postponement: %w", err)
		}
		keys = append(keys, k)
	}
	return keys, rows.Err()
}

func (r *postponementRepo) Add(ctx context.Context, day time.Time, questionKey string) error {
	query, args := builder().
		Insert(tablePostponed).
		Columns("question_key", "day").
		Values(questionKey, day.Format(schedule.DateLayout)).
		OnConflict(entsql.ConflictColumns("question_key"), entsql.ResolveWithNewValues()).
		Query()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("postpone %s: %w", questionKey, err)
	}
	return nil
}

func (r *postponementRepo) Clear(ctx context.Context) error {
	query, args := builder().Delete(tablePostponed).Query()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("clear postponements: %w", err)
	}
	return nil
}
