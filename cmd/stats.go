package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show tutoring session statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		student, _ := cmd.Flags().GetString("student")

		s, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := context.Background()
		events := s.Events()

		sessions, err := events.SessionCount(ctx, student)
		if err != nil {
			return fmt.Errorf("count sessions: %w", err)
		}
		nudges, err := events.NudgeStats(ctx, student)
		if err != nil {
			return fmt.Errorf("nudge stats: %w", err)
		}

		scope := "all students"
		if student != "" {
			scope = student
		}
		fmt.Printf("Sessions (%s): %d\n", scope, sessions)
		fmt.Printf("Nudges: %d offered, %d accepted, %d dismissed\n",
			nudges.Offered, nudges.Accepted, nudges.Dismissed)
		if nudges.Offered > 0 {
			fmt.Printf("Dismiss rate: %.0f%%\n",
				100*float64(nudges.Dismissed)/float64(nudges.Offered))
		}

		usage, err := events.LLMUsage(ctx)
		if err != nil {
			return fmt.Errorf("LLM usage: %w", err)
		}
		if len(usage) == 0 {
			return nil
		}

		fmt.Println()
		fmt.Printf("%-12s  %-8s  %-8s  %-10s  %s\n", "Provider", "Calls", "Failed", "Tokens", "Latency")
		fmt.Println(strings.Repeat("─", 54))
		for _, u := range usage {
			fmt.Printf("%-12s  %-8d  %-8d  %-10d  %s\n",
				u.Provider, u.Requests, u.Failures, u.OutputTokens, u.TotalLatency)
		}
		return nil
	},
}

func init() {
	statsCmd.Flags().String("student", "", "Limit stats to one student")
}
