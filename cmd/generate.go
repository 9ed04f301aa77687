package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/prepmate/engine/internal/flashcards"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate study material with AI",
}

var generateFlashcardsCmd = &cobra.Command{
	Use:   "flashcards [content]",
	Short: "Generate flashcards from content (argument or stdin)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		owner, err := ownerFlag(cmd)
		if err != nil {
			return err
		}
		count, _ := cmd.Flags().GetInt("count")
		difficulty, _ := cmd.Flags().GetString("difficulty")
		title, _ := cmd.Flags().GetString("title")

		content, err := contentArg(args)
		if err != nil {
			return err
		}

		ctx := context.Background()
		eng, s, err := openEngine(ctx, cmd, true)
		if err != nil {
			return err
		}
		defer s.Close()

		now := time.Now()
		var batch *flashcards.Batch
		if title != "" {
			batch, err = eng.GenerateFlashcardsFromNote(ctx, owner, title, content, count, now)
		} else {
			batch, err = eng.GenerateFlashcards(ctx, owner, content, count, difficulty, now)
		}
		if err != nil {
			return err
		}

		if batch.Fallback {
			warnf("generator output was unusable; cards extracted heuristically")
		}
		fmt.Printf("Generated %d flashcards (+%d points)\n", len(batch.Cards), batch.PointsAwarded)
		for i, card := range batch.Cards {
			fmt.Printf("  %d. %s\n     → %s\n", i+1, card.Question, card.Answer)
		}

		printUnlocks(ctx, eng, owner, now)
		return nil
	},
}

var generateQuestionsCmd = &cobra.Command{
	Use:   "questions",
	Short: "Generate exam-style practice questions",
	RunE: func(cmd *cobra.Command, args []string) error {
		subject, _ := cmd.Flags().GetString("subject")
		topic, _ := cmd.Flags().GetString("topic")
		difficulty, _ := cmd.Flags().GetString("difficulty")
		count, _ := cmd.Flags().GetInt("count")

		ctx := context.Background()
		eng, s, err := openEngine(ctx, cmd, true)
		if err != nil {
			return err
		}
		defer s.Close()

		qs, err := eng.GenerateQuestions(ctx, subject, topic, difficulty, count)
		if err != nil {
			return err
		}

		fmt.Printf("Generated %d questions for %s / %s\n", len(qs), subject, topic)
		for _, q := range qs {
			fmt.Printf("\n[%s] (%d marks, %s)\n%s\n", q.ID, q.Marks, q.Difficulty, q.Question)
			for _, kp := range q.KeyPoints {
				fmt.Printf("  - %s\n", kp)
			}
		}
		return nil
	},
}

// contentArg takes generation content from the argument or, when
// absent, from stdin.
func contentArg(args []string) (string, error) {
	if len(args) == 1 && strings.TrimSpace(args[0]) != "" {
		return args[0], nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(data), nil
}

func init() {
	generateFlashcardsCmd.Flags().String("owner", "", "Owner id (required)")
	generateFlashcardsCmd.Flags().Int("count", 5, "Number of cards to generate")
	generateFlashcardsCmd.Flags().String("difficulty", "medium", "Card difficulty (easy, medium, hard)")
	generateFlashcardsCmd.Flags().String("title", "", "Treat the content as a note with this title")

	generateQuestionsCmd.Flags().String("subject", "General", "Subject (DSA, OS, DBMS, ...)")
	generateQuestionsCmd.Flags().String("topic", "", "Topic within the subject")
	generateQuestionsCmd.Flags().String("difficulty", "medium", "Question difficulty")
	generateQuestionsCmd.Flags().Int("count", 10, "Number of questions")

	generateCmd.AddCommand(generateFlashcardsCmd)
	generateCmd.AddCommand(generateQuestionsCmd)
}
