package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/yojanabuddy/teachme/internal/notes"
)

var notesCmd = &cobra.Command{
	Use:   "notes",
	Short: "Manage study notes (seed and dev tooling)",
}

var notesAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a note from a JSON file",
	RunE: func(cmd *cobra.Command, args []string) error {
		file, _ := cmd.Flags().GetString("file")
		userID, _ := cmd.Flags().GetString("user")
		if file == "" || userID == "" {
			return fmt.Errorf("--file and --user are required")
		}

		raw, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("read note file: %w", err)
		}

		var n notes.Note
		if err := json.Unmarshal(raw, &n); err != nil {
			return fmt.Errorf("parse note file: %w", err)
		}
		if n.ID == "" {
			n.ID = uuid.NewString()
		}
		n.UserID = userID
		if n.CreatedAt.IsZero() {
			n.CreatedAt = time.Now().UTC()
		}
		if len(n.UsableConcepts()) == 0 {
			return fmt.Errorf("note has no usable concepts")
		}

		s, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		if err := s.NoteRepo().Put(context.Background(), &n); err != nil {
			return fmt.Errorf("store note: %w", err)
		}

		fmt.Printf("Added note %s (%d concepts)\n", n.ID, len(n.Concepts))
		return nil
	},
}

var notesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List a user's notes",
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, _ := cmd.Flags().GetString("user")
		if userID == "" {
			return fmt.Errorf("--user is required")
		}

		s, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		list, err := s.NoteRepo().ListByUser(context.Background(), userID)
		if err != nil {
			return fmt.Errorf("list notes: %w", err)
		}
		if len(list) == 0 {
			fmt.Println("No notes found.")
			return nil
		}

		fmt.Printf("%-36s  %-30s  %-16s  %s\n", "ID", "Title", "Subject", "Concepts")
		for _, n := range list {
			fmt.Printf("%-36s  %-30s  %-16s  %d\n", n.ID, truncate(n.Title, 30), truncate(n.Subject, 16), len(n.Concepts))
		}
		return nil
	},
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-1] + "…"
}

func init() {
	notesAddCmd.Flags().String("file", "", "Path to a JSON note file")
	notesAddCmd.Flags().String("user", "", "Owning user id")
	notesListCmd.Flags().String("user", "", "User id to list notes for")

	notesCmd.AddCommand(notesAddCmd)
	notesCmd.AddCommand(notesListCmd)
}
