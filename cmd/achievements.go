package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/prepmate/engine/internal/engine"
)

var achievementsCmd = &cobra.Command{
	Use:   "achievements",
	Short: "Evaluate and list achievements",
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

		now := time.Now()
		unlocked, err := eng.EvaluateAchievements(ctx, owner, now)
		if err != nil {
			return err
		}
		for _, u := range unlocked {
			fmt.Printf("Unlocked: %s %s — %s (+%d points)\n", u.Icon, u.Title, u.Description, u.Bonus)
		}

		st, err := eng.Stats(ctx, owner, now)
		if err != nil {
			return err
		}
		if len(st.Achievements) == 0 {
			fmt.Println("No achievements yet. Keep studying.")
			return nil
		}

		fmt.Printf("Achievements (%d):\n", len(st.Achievements))
		for _, a := range st.Achievements {
			fmt.Printf("  %s %s — %s [%s] %s\n",
				a.Icon, a.Title, a.Description, a.Rarity, a.UnlockedAt.Format("2006-01-02"))
		}
		return nil
	},
}

// printUnlocks re-runs the achievement catalog after an action and
// announces anything new. Evaluation failures only warn; the action
// itself already succeeded.
func printUnlocks(ctx context.Context, eng *engine.Engine, ownerID string, now time.Time) {
	unlocked, err := eng.EvaluateAchievements(ctx, ownerID, now)
	if err != nil {
		warnf("achievement check failed: %v", err)
		return
	}
	for _, u := range unlocked {
		fmt.Printf("\nAchievement unlocked: %s %s (+%d points)\n", u.Icon, u.Title, u.Bonus)
	}
}

func init() {
	achievementsCmd.Flags().String("owner", "", "Owner id (required)")
}
