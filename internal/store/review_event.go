package store

import (
	"context"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

func (r *eventRepo) AppendReviewEvent(ctx context.Context, data ReviewEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	query, args := builder().
		Insert(tableReviewEvents).
		Columns(
			"sequence", "event_id", "session_id", "card_key", "mode", "response",
			"prev_interval", "prev_ease", "interval_days", "ease", "due_date", "created_at",
		).
		Values(
			seqNum, uuid.NewString(), data.SessionID, data.CardKey, data.Mode, data.Response,
			data.PrevInterval, data.PrevEase, data.Interval, data.Ease, data.DueDate, formatTime(r.now()),
		).
		Query()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("save review event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryReviewEvents(ctx context.Context, opts QueryOpts) ([]ReviewEventRecord, error) {
	sel := builder().
		Select(
			"sequence", "event_id", "session_id", "card_key", "mode", "response",
			"prev_interval", "prev_ease", "interval_days", "ease", "due_date", "created_at",
		).
		From(entsql.Table(tableReviewEvents)).
		OrderBy(entsql.Desc("sequence"))
	applyQueryOpts(sel, opts)

	query, args := sel.Query()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query review events: %w", err)
	}
	defer rows.Close()

	var records []ReviewEventRecord
	for rows.Next() {
		var rec ReviewEventRecord
		var created string
		if err := rows.Scan(
			&rec.Sequence, &rec.EventID, &rec.SessionID, &rec.CardKey, &rec.Mode, &rec.Response,
			&rec.PrevInterval, &rec.PrevEase, &rec.Interval, &rec.Ease, &rec.DueDate, &created,
		); err != nil {
			return nil, fmt.Errorf("scan review event: %w", err)
		}
		rec.Timestamp = parseTime(created)
		records = append(records, rec)
	}
	return records, rows.Err()
}

func (r *eventRepo) ResponseCounts(ctx context.Context, from time.Time) (map[string]int, error) {
	sel := builder().
		Select("response", entsql.Count("*")).
		From(entsql.Table(tableReviewEvents)).
		GroupBy("response")
	if !from.IsZero() {
		sel = sel.Where(entsql.GTE("created_at", formatTime(from)))
	}

	query, args := sel.Query()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query response counts: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var resp string
		var n int
		if err := rows.Scan(&resp, &n); err != nil {
			return nil, fmt.Errorf("scan response count: %w", err)
		}
		counts[resp] = n
	}
	return counts, rows.Err()
}

// applyQueryOpts adds the sequence, time and limit filters to sel.
func applyQueryOpts(sel *entsql.Selector, opts QueryOpts) {
	if opts.Limit > 0 {
		sel.Limit(opts.Limit)
	}
	if opts.After > 0 {
		sel.Where(entsql.GT("sequence", opts.After))
	}
	if opts.Before > 0 {
		sel.Where(entsql.LT("sequence", opts.Before))
	}
	if !opts.From.IsZero() {
		sel.Where(entsql.GTE("created_at", formatTime(opts.From)))
	}
	if !opts.To.IsZero() {
		sel.Where(entsql.LTE("created_at", formatTime(opts.To)))
	}
}
