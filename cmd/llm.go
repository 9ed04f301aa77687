package cmd

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/prepmate/engine/internal/store"
)

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "Inspect generator API usage",
}

var llmListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent generation requests",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := context.Background()
		recs, err := s.LLMEvents().QueryLLMRequests(ctx, store.QueryOpts{Limit: limit})
		if err != nil {
			return err
		}
		if len(recs) == 0 {
			fmt.Println("No generation requests recorded.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "TIME\tPROVIDER\tMODEL\tPURPOSE\tIN\tOUT\tMS\tOK")
		for _, r := range recs {
			ok := "yes"
			if !r.Success {
				ok = "no"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%d\t%d\t%s\n",
				r.Timestamp.Format("2006-01-02 15:04"),
				r.Provider, r.Model, r.Purpose,
				r.InputTokens, r.OutputTokens, r.LatencyMs, ok)
		}
		return w.Flush()
	},
}

func init() {
	llmListCmd.Flags().Int("limit", 20, "Max requests to show (0 = all)")
	llmCmd.AddCommand(llmListCmd)
}
