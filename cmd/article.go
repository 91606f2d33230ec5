package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nehal/linguo/internal/contentgen"
	"github.com/nehal/linguo/internal/ledger"
	"github.com/nehal/linguo/internal/ops"
)

var articleCmd = &cobra.Command{
	Use:   "article",
	Short: "Read a generated article and answer comprehension questions",
	RunE: func(cmd *cobra.Command, args []string) error {
		topic, _ := cmd.Flags().GetString("topic")
		focus, _ := cmd.Flags().GetString("focus")
		words, _ := cmd.Flags().GetInt("words")

		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		ctx := context.Background()
		profile := profileFromFlags(cmd)

		// Article generation runs in the quiz-generation lane: same kind
		// of work, same priority, and never concurrent with a quiz.
		article, err := ops.RunValue(ctx, a.Ops, ops.ContextQuizGeneration, "Writing your article...",
			func(runCtx context.Context) (*contentgen.Article, error) {
				return a.Pipeline.GenerateArticle(runCtx, profile, ledger.Topic(topic), ledger.Focus(focus), words)
			})
		if err != nil {
			return fmt.Errorf("generate article: %w", err)
		}

		fmt.Printf("\n%s\n", article.Title)
		fmt.Printf("(%d words, %s)\n\n", article.WordCount, article.Difficulty)
		fmt.Println(article.Body)

		quiz := &contentgen.Quiz{
			Title:      "Comprehension check",
			Questions:  article.Questions,
			Topic:      article.Topic,
			Difficulty: article.Difficulty,
		}
		return runQuizLoop(ctx, a, quiz, nil)
	},
}

func init() {
	articleCmd.Flags().StringP("topic", "t", string(ledger.TopicCulture), "Article topic")
	articleCmd.Flags().StringP("focus", "f", string(ledger.FocusReading), "Skill focus")
	articleCmd.Flags().IntP("words", "w", 250, "Minimum word count")
	addProfileFlags(articleCmd)
}
