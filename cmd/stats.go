package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nehal/linguo/internal/ledger"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learning statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		records := a.Ledger.Records()
		pending := a.Ledger.PendingReview()
		mastered := a.Ledger.MasteredRecords()

		fmt.Println("Mistake Ledger")
		fmt.Println(strings.Repeat("─", 40))
		fmt.Printf("Tracked:    %d\n", len(records))
		fmt.Printf("Due now:    %d\n", len(pending))
		fmt.Printf("Mastered:   %d\n", len(mastered))

		if len(records) == 0 {
			return nil
		}

		byFocus := map[ledger.Focus]int{}
		for _, r := range records {
			if !r.IsMastered() {
				byFocus[r.Focus]++
			}
		}
		if len(byFocus) > 0 {
			fmt.Println()
			fmt.Println("Open mistakes by focus")
			fmt.Println(strings.Repeat("─", 40))
			for _, f := range []ledger.Focus{
				ledger.FocusVocabulary, ledger.FocusGrammar, ledger.FocusListening,
				ledger.FocusReading, ledger.FocusWriting, ledger.FocusSpeaking,
			} {
				if n := byFocus[f]; n > 0 {
					fmt.Printf("%-12s %d\n", f, n)
				}
			}
		}
		return nil
	},
}
