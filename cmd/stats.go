package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/abhisek/flashdeck/internal/deck"
	"github.com/abhisek/flashdeck/internal/schedule"
	"github.com/abhisek/flashdeck/internal/store"
	"github.com/spf13/cobra"
)

// statsWindow is how far back answer counts reach.
const statsWindow = 30 * 24 * time.Hour

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show scheduling and review statistics",
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

		events := e.store.EventRepo()
		counts, err := events.ResponseCounts(ctx, e.now().Add(-statsWindow))
		if err != nil {
			return err
		}
		limit, _ := cmd.Flags().GetInt("sessions")
		sessions, err := events.QuerySessionSummaries(ctx, store.QueryOpts{Limit: limit})
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		printCardStats(out, deck.CalculateStats(full, e.today()))
		printResponseCounts(out, counts)
		printSessions(out, sessions)
		return nil
	},
}

func init() {
	statsCmd.Flags().Int("sessions", 5, "Number of recent sessions to show")
}

func printCardStats(w io.Writer, st *deck.Stats) {
	fmt.Fprintf(w, "Cards: %d (new %d, young %d, mature %d)\n", st.Total(), st.NewCount, st.YoungCount, st.MatureCount)
	fmt.Fprintf(w, "Due today: %d\n", st.DueToday)

	for _, d := range st.DueDates.Days() {
		if d < 1 || d > 7 {
			continue
		}
		ivl := float64(d)
		fmt.Fprintf(w, "  due in %s: %d\n", schedule.TextInterval(&ivl, false), st.DueDates.Get(d))
	}
}

func printResponseCounts(w io.Writer, counts map[string]int) {
	fmt.Fprintln(w, "\nAnswers in the last 30 days:")
	for _, r := range schedule.Responses {
		fmt.Fprintf(w, "  %-6s %d\n", r, counts[r.String()])
	}
}

func printSessions(w io.Writer, sessions []store.SessionSummaryRecord) {
	if len(sessions) == 0 {
		return
	}
	fmt.Fprintln(w, "\nRecent sessions:")
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, s := range sessions {
		fmt.Fprintf(tw, "  %s\t%s\t%s\t%d cards\t%s\n",
			s.Timestamp.Local().Format("2006-01-02 15:04"), s.Mode, s.Deck, s.CardsReviewed,
			time.Duration(s.DurationSecs)*time.Second)
	}
	tw.Flush()
}
