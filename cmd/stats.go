package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show a learner's progress snapshot",
	RunE: func(cmd *cobra.Command, args []string) error {
		owner, err := ownerFlag(cmd)
		if err != nil {
			return err
		}

		ctx := context.Background()
		eng, s, err := openEngine(ctx, cmd, false)
		if err != nil {
			return err
		}
		defer s.Close()

		st, err := eng.Stats(ctx, owner, time.Now())
		if err != nil {
			return err
		}

		fmt.Printf("Level %d  (%d points, %d to next level)\n", st.Level, st.TotalPoints, st.NextLevelPoints)
		fmt.Printf("Streak: %d day(s)\n", st.Streak)
		fmt.Printf("Daily goal: %.0f%%\n", st.DailyGoalProgress)
		fmt.Printf("This week: %.2f hours\n", st.WeeklyStudyHours)

		if len(st.Achievements) > 0 {
			fmt.Printf("\nAchievements (%d):\n", len(st.Achievements))
			for _, a := range st.Achievements {
				fmt.Printf("  %s %s — %s (%s)\n", a.Icon, a.Title, a.Description, a.Rarity)
			}
		}
		return nil
	},
}

func init() {
	statsCmd.Flags().String("owner", "", "Owner id (required)")
}
