package cmd

import (
	"fmt"

	"github.com/abhisek/flashdeck/internal/app"
	"github.com/abhisek/flashdeck/internal/iterator"
	"github.com/abhisek/flashdeck/internal/schedule"
	"github.com/abhisek/flashdeck/internal/screens/decks"
	"github.com/abhisek/flashdeck/internal/session"
	"github.com/abhisek/flashdeck/internal/source"
	"github.com/spf13/cobra"
)

var reviewCmd = &cobra.Command{
	Use:   "review",
	Short: "Review new and due cards",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSession(cmd, session.Review)
	},
}

var cramCmd = &cobra.Command{
	Use:   "cram",
	Short: "Practise every card without changing schedules",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSession(cmd, session.Cram)
	},
}

func runSession(cmd *cobra.Command, mode session.Mode) error {
	e, err := setup(cmd, true)
	if err != nil {
		return err
	}
	defer e.Close()

	ctx := cmd.Context()
	today := e.today()

	full, err := e.loadTree(ctx)
	if err != nil {
		return err
	}
	postponed, err := session.LoadPostponements(ctx, e.store.PostponementRepo(), today)
	if err != nil {
		return fmt.Errorf("load postponed questions: %w", err)
	}
	working := session.WorkingTree(full, mode, today, postponed)

	alg, err := schedule.New(e.cfg.SRS.Settings(), e.now)
	if err != nil {
		return err
	}
	order, err := e.cfg.Review.Order()
	if err != nil {
		return err
	}

	seq, err := session.New(session.Options{
		Mode:         mode,
		Iterator:     iterator.New(order, nil),
		Algorithm:    alg,
		Histogram:    session.BuildHistogram(full, today),
		Schedules:    e.store.ScheduleRepo(),
		Events:       e.store.EventRepo(),
		Parser:       source.Parser{},
		Postponed:    postponed,
		BurySiblings: e.cfg.Review.BurySiblings,
		Now:          e.now,
		Logger:       e.logger,
	})
	if err != nil {
		return err
	}
	seq.SetDeckTree(full, working)

	e.logger.Info("session starting", "mode", mode, "session", seq.SessionID(), "cards", seq.Remaining())
	return app.Run(ctx, decks.New(ctx, seq, full, e.cfg.Review.ShowInterval))
}
