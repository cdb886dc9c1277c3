package cmd

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/abhisek/flashdeck/internal/deck"
	"github.com/abhisek/flashdeck/internal/session"
	"github.com/spf13/cobra"
)

var decksCmd = &cobra.Command{
	Use:   "decks",
	Short: "List decks with due, new and total card counts",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setup(cmd, false)
		if err != nil {
			return err
		}
		defer e.Close()

		ctx := cmd.Context()
		full, err := e.loadTree(ctx)
		if err != nil {
			return err
		}
		postponed, err := session.LoadPostponements(ctx, e.store.PostponementRepo(), e.today())
		if err != nil {
			return fmt.Errorf("load postponed questions: %w", err)
		}
		return printDeckTree(cmd.OutOrStdout(), full, postponed, e.today())
	},
}

// printDeckTree writes one row per deck, indented by depth. Due and new
// counts come from the review tree, totals from the full tree.
func printDeckTree(w io.Writer, full *deck.Deck, postponed *session.PostponementList, today time.Time) error {
	working := session.WorkingTree(full, session.Review, today, postponed)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "DECK\tDUE\tNEW\tTOTAL")
	full.Walk(func(d *deck.Deck) bool {
		path := d.TopicPath()
		name := session.RootDeckName
		if !path.IsEmpty() {
			name = strings.Repeat("  ", len(path)) + d.Name
		}
		var due, fresh int
		if wd := working.Deck(path); wd != nil {
			due = wd.CardCount(deck.DueCards, true)
			fresh = wd.CardCount(deck.NewCards, true)
		}
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\n", name, due, fresh, d.CardCount(deck.AllCards, true))
		return true
	})
	return tw.Flush()
}
