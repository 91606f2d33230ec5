package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nehal/linguo/internal/contentgen"
	"github.com/nehal/linguo/internal/ops"
)

var reviewCmd = &cobra.Command{
	Use:   "review",
	Short: "Review mistakes that are due",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		ctx := context.Background()
		profile := profileFromFlags(cmd)
		pending := a.Ledger.PendingReview()

		quiz, err := ops.RunValue(ctx, a.Ops, ops.ContextMistakeQuizGeneration, "",
			func(runCtx context.Context) (*contentgen.Quiz, error) {
				return a.Pipeline.GenerateMistakeQuiz(runCtx, profile, pending)
			})
		if errors.Is(err, contentgen.ErrNoMistakes) {
			fmt.Println("Nothing to review. Take a quiz to collect material!")
			return nil
		}
		if err != nil {
			return fmt.Errorf("build review quiz: %w", err)
		}

		return runQuizLoop(ctx, a, quiz, quiz.SourceMistakeIDs)
	},
}

func init() {
	addProfileFlags(reviewCmd)
}
