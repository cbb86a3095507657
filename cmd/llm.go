package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yojanabuddy/teachme/internal/llm"
	"github.com/yojanabuddy/teachme/internal/store"
)

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "Inspect oracle request/response events",
}

var llmListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent oracle events",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		purpose, _ := cmd.Flags().GetString("purpose")
		failed, _ := cmd.Flags().GetBool("failed")

		s, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		events, err := s.LLMEvents().Query(context.Background(), store.QueryOpts{
			Limit:   limit,
			Purpose: purpose,
			Failed:  failed,
		})
		if err != nil {
			return fmt.Errorf("query events: %w", err)
		}

		if len(events) == 0 {
			fmt.Println("No oracle events found.")
			return nil
		}

		fmt.Printf("%-5s  %-19s  %-22s  %-28s  %-6s  %-6s  %-7s  %s\n",
			"Seq", "Timestamp", "Purpose", "Model", "In", "Out", "Ms", "OK")
		fmt.Println(strings.Repeat("─", 110))

		for _, e := range events {
			ok := "✓"
			if !e.Success {
				ok = "✗"
			}
			fmt.Printf("%-5d  %-19s  %-22s  %-28s  %-6d  %-6d  %-7d  %s\n",
				e.Sequence,
				e.Timestamp.Format("2006-01-02 15:04:05"),
				truncate(e.Purpose, 22),
				truncate(e.Model, 28),
				e.InputTokens, e.OutputTokens, e.LatencyMs, ok)
		}
		return nil
	},
}

var llmStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Summarize oracle usage and estimated cost",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		events, err := s.LLMEvents().Query(context.Background(), store.QueryOpts{})
		if err != nil {
			return fmt.Errorf("query events: %w", err)
		}
		if len(events) == 0 {
			fmt.Println("No oracle events found.")
			return nil
		}

		type agg struct {
			calls, failed, inTok, outTok int
			cost                         float64
		}
		byModel := map[string]*agg{}
		for _, e := range events {
			a := byModel[e.Model]
			if a == nil {
				a = &agg{}
				byModel[e.Model] = a
			}
			a.calls++
			if !e.Success {
				a.failed++
			}
			a.inTok += e.InputTokens
			a.outTok += e.OutputTokens
			if c := llm.LookupCost(e.Model); c != nil {
				a.cost += c.Cost(e.InputTokens, e.OutputTokens)
			}
		}

		fmt.Printf("%-30s  %-7s  %-7s  %-10s  %-10s  %s\n",
			"Model", "Calls", "Failed", "In tok", "Out tok", "Est. cost")
		fmt.Println(strings.Repeat("─", 85))
		var total float64
		for model, a := range byModel {
			fmt.Printf("%-30s  %-7d  %-7d  %-10d  %-10d  $%.4f\n",
				truncate(model, 30), a.calls, a.failed, a.inTok, a.outTok, a.cost)
			total += a.cost
		}
		fmt.Printf("\nTotal estimated cost: $%.4f across %d calls\n", total, len(events))
		return nil
	},
}

func init() {
	llmListCmd.Flags().Int("limit", 50, "Max events to show")
	llmListCmd.Flags().String("purpose", "", "Filter by purpose label")
	llmListCmd.Flags().Bool("failed", false, "Only failed requests")

	llmCmd.AddCommand(llmListCmd)
	llmCmd.AddCommand(llmStatsCmd)
}
