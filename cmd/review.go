package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var reviewCmd = &cobra.Command{
	Use:   "review",
	Short: "Review flashcards on their spaced-repetition schedule",
}

var reviewDueCmd = &cobra.Command{
	Use:   "due",
	Short: "List flashcards due for review",
	RunE: func(cmd *cobra.Command, args []string) error {
		owner, err := ownerFlag(cmd)
		if err != nil {
			return err
		}
		limit, _ := cmd.Flags().GetInt("limit")

		ctx := context.Background()
		eng, s, err := openEngine(ctx, cmd, false)
		if err != nil {
			return err
		}
		defer s.Close()

		due, err := eng.DueReviews(ctx, owner, time.Now(), limit)
		if err != nil {
			return err
		}
		if len(due) == 0 {
			fmt.Println("Nothing due. Come back tomorrow.")
			return nil
		}

		fmt.Printf("%d cards due:\n", len(due))
		for _, item := range due {
			fmt.Printf("  %s  [%s, interval %dd]\n    %s\n", item.ItemID, item.Difficulty, item.IntervalDays, item.Question)
		}
		return nil
	},
}

var reviewRateCmd = &cobra.Command{
	Use:   "rate <item-id> <again|hard|good|easy>",
	Short: "Record a review outcome for a flashcard",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		eng, s, err := openEngine(ctx, cmd, false)
		if err != nil {
			return err
		}
		defer s.Close()

		now := time.Now()
		result, err := eng.ScheduleReview(ctx, args[0], args[1], now)
		if err != nil {
			return err
		}

		fmt.Printf("Next review in %d days (%s), +%d points\n",
			result.NewIntervalDays,
			result.NextReviewAt.Format("2006-01-02"),
			result.Rating.Points(),
		)

		printUnlocks(ctx, eng, result.OwnerID, now)
		return nil
	},
}

func init() {
	reviewDueCmd.Flags().String("owner", "", "Owner id (required)")
	reviewDueCmd.Flags().Int("limit", 20, "Max cards to list (0 = all)")

	reviewCmd.AddCommand(reviewDueCmd)
	reviewCmd.AddCommand(reviewRateCmd)
}
