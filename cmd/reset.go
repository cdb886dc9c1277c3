package cmd

import (
	"fmt"

	"github.com/abhisek/flashdeck/internal/schedule"
	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Clear buried questions or reset a card to new",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setup(cmd, false)
		if err != nil {
			return err
		}
		defer e.Close()

		ctx := cmd.Context()
		out := cmd.OutOrStdout()

		if key, _ := cmd.Flags().GetString("card"); key != "" {
			if err := e.store.ScheduleRepo().Save(ctx, key, schedule.Info{}); err != nil {
				return fmt.Errorf("reset card %s: %w", key, err)
			}
			e.logger.Info("card reset", "card", key)
			fmt.Fprintf(out, "Card %s is new again.\n", key)
			return nil
		}

		if err := e.store.PostponementRepo().Clear(ctx); err != nil {
			return fmt.Errorf("clear postponed questions: %w", err)
		}
		fmt.Fprintln(out, "Buried questions are back in today's reviews.")
		return nil
	},
}

func init() {
	resetCmd.Flags().String("card", "", "Card key to reset to new (<file>#<question id>/<card index>)")
}
