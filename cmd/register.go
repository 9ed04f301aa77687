package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var registerCmd = &cobra.Command{
	Use:   "register <owner-id>",
	Short: "Register a learner account",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name, _ := cmd.Flags().GetString("name")
		if name == "" {
			name = args[0]
		}

		ctx := context.Background()
		eng, s, err := openEngine(ctx, cmd, false)
		if err != nil {
			return err
		}
		defer s.Close()

		if err := eng.RegisterOwner(ctx, args[0], name); err != nil {
			return err
		}
		fmt.Printf("Registered %s (%s)\n", args[0], name)
		return nil
	},
}

func init() {
	registerCmd.Flags().String("name", "", "Display name shown on the leaderboard")
}
