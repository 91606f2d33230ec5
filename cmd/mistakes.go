package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var mistakesCmd = &cobra.Command{
	Use:   "mistakes",
	Short: "Inspect recorded mistakes",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		records := a.Ledger.Records()
		if len(records) == 0 {
			fmt.Println("No mistakes recorded yet.")
			return nil
		}

		fmt.Printf("%-40s  %-12s  %-10s  %-7s  %s\n", "Question", "Topic", "Focus", "Reviews", "State")
		fmt.Println(strings.Repeat("─", 84))
		for _, r := range records {
			state := "learning"
			if r.IsMastered() {
				state = "mastered"
			}
			q := r.Question
			if len(q) > 40 {
				q = q[:37] + "..."
			}
			fmt.Printf("%-40s  %-12s  %-10s  %-7d  %s\n", q, r.Topic, r.Focus, r.ReviewCount, state)
		}
		return nil
	},
}

var mistakesClearCmd = &cobra.Command{
	Use:   "clear-mastered",
	Short: "Remove all mastered mistakes",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		removed, err := a.Ledger.ClearMastered(context.Background())
		if err != nil {
			return fmt.Errorf("clear mastered: %w", err)
		}
		fmt.Printf("Removed %d mastered record(s).\n", removed)
		return nil
	},
}

func init() {
	mistakesCmd.AddCommand(mistakesClearCmd)
}
