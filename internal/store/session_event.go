package store

import (
	"context"
	"fmt"

	entsql "entgo.io/ent/dialect/sql"
)

func (r *eventRepo) AppendSessionEvent(ctx context.Context, data SessionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	query, args := builder().
		Insert(tableSessionEvents).
		Columns("sequence", "session_id", "action", "mode", "deck", "cards_reviewed", "duration_secs", "created_at").
		Values(seqNum, data.SessionID, data.Action, data.Mode, data.Deck, data.CardsReviewed, data.DurationSecs, formatTime(r.now())).
		Query()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("save session event: %w", err)
	}
	return nil
}

func (r *eventRepo) QuerySessionSummaries(ctx context.Context, opts QueryOpts) ([]SessionSummaryRecord, error) {
	sel := builder().
		Select("session_id", "created_at", "mode", "deck", "cards_reviewed", "duration_secs").
		From(entsql.Table(tableSessionEvents)).
		Where(entsql.EQ("action", "end")).
		OrderBy(entsql.Desc("sequence"))
	applyQueryOpts(sel, opts)

	query, args := sel.Query()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query session summaries: %w", err)
	}
	defer rows.Close()

	var records []SessionSummaryRecord
	for rows.Next() {
		var rec SessionSummaryRecord
		var created string
		if err := rows.Scan(&rec.SessionID, &created, &rec.Mode, &rec.Deck, &rec.CardsReviewed, &rec.DurationSecs); err != nil {
			return nil, fmt.Errorf("scan session summary: %w", err)
		}
		rec.Timestamp = parseTime(created)
		records = append(records, rec)
	}
	return records, rows.Err()
}
