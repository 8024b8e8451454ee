package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete a student's persisted memory and preferences",
	RunE: func(cmd *cobra.Command, args []string) error {
		student, _ := cmd.Flags().GetString("student")
		if student == "" {
			return fmt.Errorf("--student is required")
		}

		s, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		if err := s.Docs().DeleteDocs(context.Background(), student); err != nil {
			return fmt.Errorf("delete documents: %w", err)
		}

		fmt.Printf("Removed memory and preference documents for %s.\n", student)
		return nil
	},
}

func init() {
	resetCmd.Flags().String("student", "", "Student whose documents to delete")
}
