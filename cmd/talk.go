package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nehal/linguo/internal/contentgen"
	"github.com/nehal/linguo/internal/ledger"
	"github.com/nehal/linguo/internal/ops"
)

var talkCmd = &cobra.Command{
	Use:   "talk",
	Short: "Study a generated dialogue",
	RunE: func(cmd *cobra.Command, args []string) error {
		topic, _ := cmd.Flags().GetString("topic")
		scenario, _ := cmd.Flags().GetString("scenario")
		showTranslations, _ := cmd.Flags().GetBool("translations")

		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		ctx := context.Background()
		profile := profileFromFlags(cmd)

		// Dialogue generation runs in the quiz-generation lane: same kind
		// of work, same priority, and never concurrent with a quiz.
		conv, err := ops.RunValue(ctx, a.Ops, ops.ContextQuizGeneration, "Writing your dialogue...",
			func(runCtx context.Context) (*contentgen.Conversation, error) {
				return a.Pipeline.GenerateConversation(runCtx, profile, ledger.Topic(topic), scenario)
			})
		if err != nil {
			return fmt.Errorf("generate conversation: %w", err)
		}

		fmt.Printf("\n%s\n%s\n\n", conv.Title, conv.Scenario)
		for _, line := range conv.Lines {
			fmt.Printf("%s: %s\n", line.Speaker, line.Text)
			if showTranslations && line.Translation != "" {
				fmt.Printf("      (%s)\n", line.Translation)
			}
		}
		fmt.Println()

		if len(conv.Questions) == 0 {
			return nil
		}
		quiz := &contentgen.Quiz{
			Title:     "Did you follow?",
			Questions: conv.Questions,
			Topic:     conv.Topic,
		}
		return runQuizLoop(ctx, a, quiz, nil)
	},
}

func init() {
	talkCmd.Flags().StringP("topic", "t", string(ledger.TopicDailyLife), "Dialogue topic")
	talkCmd.Flags().StringP("scenario", "s", "", "Optional scenario, e.g. 'checking into a hotel'")
	talkCmd.Flags().Bool("translations", false, "Show native-language translations")
	addProfileFlags(talkCmd)
}
