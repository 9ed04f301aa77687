package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var answerCmd = &cobra.Command{
	Use:   "answer <question-id> <answer-text>",
	Short: "Submit an answer for AI evaluation",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		owner, err := ownerFlag(cmd)
		if err != nil {
			return err
		}
		questionText, _ := cmd.Flags().GetString("question")
		subject, _ := cmd.Flags().GetString("subject")
		marks, _ := cmd.Flags().GetInt("marks")

		ctx := context.Background()
		eng, s, err := openEngine(ctx, cmd, true)
		if err != nil {
			return err
		}
		defer s.Close()

		now := time.Now()
		sub, err := eng.SubmitAnswer(ctx, owner, args[0], questionText, args[1], subject, marks)
		if err != nil {
			return err
		}

		ev := sub.Evaluation
		fmt.Printf("Score: %.1f/%.0f (+%d points)\n\n%s\n", ev.Score, ev.MaxScore, sub.PointsAwarded, ev.Feedback)
		printList("Strengths", ev.Strengths)
		printList("Improvements", ev.Improvements)
		printList("Missing concepts", ev.MissingConcepts)
		printList("Exam tips", ev.ExamTips)

		printUnlocks(ctx, eng, owner, now)
		return nil
	},
}

func printList(header string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Printf("\n%s:\n", header)
	for _, it := range items {
		fmt.Printf("  - %s\n", it)
	}
}

func init() {
	answerCmd.Flags().String("owner", "", "Owner id (required)")
	answerCmd.Flags().String("question", "", "Full question text being answered")
	answerCmd.Flags().String("subject", "General", "Subject the question belongs to")
	answerCmd.Flags().Int("marks", 10, "Maximum marks for the question")
}
