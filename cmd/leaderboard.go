package cmd

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
)

var leaderboardCmd = &cobra.Command{
	Use:   "leaderboard",
	Short: "Rank learners by points",
	RunE: func(cmd *cobra.Command, args []string) error {
		period, _ := cmd.Flags().GetString("period")
		limit, _ := cmd.Flags().GetInt("limit")

		ctx := context.Background()
		eng, s, err := openEngine(ctx, cmd, false)
		if err != nil {
			return err
		}
		defer s.Close()

		entries, err := eng.Leaderboard(ctx, period, limit, time.Now())
		if err != nil {
			return err
		}
		if len(entries) == 0 {
			fmt.Println("No scores yet.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "RANK\tNAME\tPOINTS\tLEVEL\tSTREAK")
		for _, e := range entries {
			fmt.Fprintf(w, "%d\t%s\t%d\t%d\t%d\n", e.Rank, e.DisplayName, e.Points, e.Level, e.Streak)
		}
		return w.Flush()
	},
}

func init() {
	leaderboardCmd.Flags().String("period", "all_time", "Ranking window: all_time, weekly, or monthly")
	leaderboardCmd.Flags().Int("limit", 10, "Number of entries (1-100)")
}
