package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Track study sessions",
}

var sessionStartCmd = &cobra.Command{
	Use:   "start",
	Short: "Open a study session",
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

		id, err := eng.StartSession(ctx, owner, time.Now())
		if err != nil {
			return err
		}
		fmt.Printf("Session started: %s\n", id)
		return nil
	},
}

var sessionEndCmd = &cobra.Command{
	Use:   "end <session-id>",
	Short: "Close a study session",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		eng, s, err := openEngine(ctx, cmd, false)
		if err != nil {
			return err
		}
		defer s.Close()

		now := time.Now()
		rec, err := eng.EndSession(ctx, args[0], now)
		if err != nil {
			return err
		}

		d := time.Duration(rec.DurationSecs) * time.Second
		fmt.Printf("Session closed after %s (+10 points)\n", d)

		printUnlocks(ctx, eng, rec.OwnerID, now)
		return nil
	},
}

func init() {
	sessionStartCmd.Flags().String("owner", "", "Owner id (required)")

	sessionCmd.AddCommand(sessionStartCmd)
	sessionCmd.AddCommand(sessionEndCmd)
}
