package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var noteCmd = &cobra.Command{
	Use:   "note",
	Short: "Manage study notes",
}

var noteAddCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Create a study note",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		owner, err := ownerFlag(cmd)
		if err != nil {
			return err
		}
		content, _ := cmd.Flags().GetString("content")

		ctx := context.Background()
		eng, s, err := openEngine(ctx, cmd, false)
		if err != nil {
			return err
		}
		defer s.Close()

		if err := eng.CreateNote(ctx, owner, args[0], content); err != nil {
			return err
		}
		fmt.Printf("Note %q saved\n", args[0])

		printUnlocks(ctx, eng, owner, time.Now())
		return nil
	},
}

func init() {
	noteAddCmd.Flags().String("owner", "", "Owner id (required)")
	noteAddCmd.Flags().String("content", "", "Note body")
	noteCmd.AddCommand(noteAddCmd)
}
