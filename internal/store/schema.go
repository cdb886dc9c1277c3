package store

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

const (
	tableCardSchedules = "card_schedules"
	tableQuestionTexts = "question_texts"
	tableReviewEvents  = "review_events"
	tableSessionEvents = "session_events"
	tablePostponed     = "postponed_questions"
)

var (
	cardSchedulesColumns = []*schema.Column{
		{Name: "card_key", Type: field.TypeString},
		{Name: "due_date", Type: field.TypeString},
		{Name: "interval_days", Type: field.TypeInt},
		{Name: "ease", Type: field.TypeInt},
		{Name: "updated_at", Type: field.TypeString},
	}
	cardSchedulesTable = &schema.Table{
		Name:       tableCardSchedules,
		Columns:    cardSchedulesColumns,
		PrimaryKey: []*schema.Column{cardSchedulesColumns[0]},
	}

	questionTextsColumns = []*schema.Column{
		{Name: "question_key", Type: field.TypeString},
		{Name: "text", Type: field.TypeString},
		{Name: "updated_at", Type: field.TypeString},
	}
	questionTextsTable = &schema.Table{
		Name:       tableQuestionTexts,
		Columns:    questionTextsColumns,
		PrimaryKey: []*schema.Column{questionTextsColumns[0]},
	}

	reviewEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "event_id", Type: field.TypeString, Unique: true},
		{Name: "session_id", Type: field.TypeString},
		{Name: "card_key", Type: field.TypeString},
		{Name: "mode", Type: field.TypeString},
		{Name: "response", Type: field.TypeString},
		{Name: "prev_interval", Type: field.TypeInt},
		{Name: "prev_ease", Type: field.TypeInt},
		{Name: "interval_days", Type: field.TypeInt},
		{Name: "ease", Type: field.TypeInt},
		{Name: "due_date", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeString},
	}
	reviewEventsTable = &schema.Table{
		Name:       tableReviewEvents,
		Columns:    reviewEventsColumns,
		PrimaryKey: []*schema.Column{reviewEventsColumns[0]},
		Indexes: []*schema.Index{
			{Name: "reviewevent_card_key", Columns: []*schema.Column{reviewEventsColumns[4]}},
			{Name: "reviewevent_session_id", Columns: []*schema.Column{reviewEventsColumns[3]}},
		},
	}

	sessionEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "session_id", Type: field.TypeString},
		{Name: "action", Type: field.TypeString},
		{Name: "mode", Type: field.TypeString},
		{Name: "deck", Type: field.TypeString},
		{Name: "cards_reviewed", Type: field.TypeInt},
		{Name: "duration_secs", Type: field.TypeInt},
		{Name: "created_at", Type: field.TypeString},
	}
	sessionEventsTable = &schema.Table{
		Name:       tableSessionEvents,
		Columns:    sessionEventsColumns,
		PrimaryKey: []*schema.Column{sessionEventsColumns[0]},
	}

	postponedColumns = []*schema.Column{
		{Name: "question_key", Type: field.TypeString},
		{Name: "day", Type: field.TypeString},
	}
	postponedTable = &schema.Table{
		Name:       tablePostponed,
		Columns:    postponedColumns,
		PrimaryKey: []*schema.Column{postponedColumns[0]},
	}

	tables = []*schema.Table{
		cardSchedulesTable,
		questionTextsTable,
		reviewEventsTable,
		sessionEventsTable,
		postponedTable,
	}
)

func migrate(ctx context.Context, drv dialect.Driver) error {
	m, err := schema.NewMigrate(drv)
	if err != nil {
		return fmt.Errorf("create migrator: %w", err)
	}
	if err := m.Create(ctx, tables...); err != nil {
		return fmt.Errorf("create tables: %w", err)
	}
	return nil
}
