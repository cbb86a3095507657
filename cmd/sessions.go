package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "Inspect stored tutoring sessions",
}

var sessionsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List a user's sessions",
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, _ := cmd.Flags().GetString("user")
		limit, _ := cmd.Flags().GetInt("limit")
		if userID == "" {
			return fmt.Errorf("--user is required")
		}

		s, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		list, err := s.SessionRepo().ListByUser(context.Background(), userID, limit)
		if err != nil {
			return fmt.Errorf("list sessions: %w", err)
		}
		if len(list) == 0 {
			fmt.Println("No sessions found.")
			return nil
		}

		fmt.Printf("%-36s  %-8s  %-9s  %-8s  %-8s  %s\n", "ID", "Mode", "Mastered", "Steps", "Correct", "Done")
		for _, sess := range list {
			done := ""
			if sess.IsCompleted {
				done = "✓"
			}
			fmt.Printf("%-36s  %-8s  %d/%-7d  %-8d  %-8d  %s\n",
				sess.ID, sess.Mode, sess.ConceptsMastered, len(sess.Concepts),
				sess.TotalSteps, sess.CorrectAnswers, done)
		}
		return nil
	},
}

func init() {
	sessionsListCmd.Flags().String("user", "", "User id to list sessions for")
	sessionsListCmd.Flags().Int("limit", 20, "Max sessions to show")

	sessionsCmd.AddCommand(sessionsListCmd)
}
