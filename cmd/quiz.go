package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nehal/linguo/internal/app"
	"github.com/nehal/linguo/internal/contentgen"
	"github.com/nehal/linguo/internal/ledger"
	"github.com/nehal/linguo/internal/ops"
)

var quizCmd = &cobra.Command{
	Use:   "quiz",
	Short: "Take a practice quiz",
	RunE: func(cmd *cobra.Command, args []string) error {
		topic, _ := cmd.Flags().GetString("topic")
		focus, _ := cmd.Flags().GetString("focus")
		count, _ := cmd.Flags().GetInt("count")

		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		ctx := context.Background()
		profile := profileFromFlags(cmd)

		quiz, err := ops.RunValue(ctx, a.Ops, ops.ContextQuizGeneration, "",
			func(runCtx context.Context) (*contentgen.Quiz, error) {
				return a.Pipeline.GenerateQuiz(runCtx, profile, ledger.Topic(topic), ledger.Focus(focus), count)
			})
		if err != nil {
			return fmt.Errorf("generate quiz: %w", err)
		}

		return runQuizLoop(ctx, a, quiz, nil)
	},
}

func init() {
	quizCmd.Flags().StringP("topic", "t", string(ledger.TopicDailyLife), "Quiz topic (daily_life, travel, business, food, culture, technology, health, education)")
	quizCmd.Flags().StringP("focus", "f", string(ledger.FocusVocabulary), "Skill focus (vocabulary, grammar, listening, reading, writing, speaking)")
	quizCmd.Flags().IntP("count", "n", 5, "Number of questions")
	addProfileFlags(quizCmd)
}

// addProfileFlags registers the learner-profile flags shared by the
// content commands.
func addProfileFlags(cmd *cobra.Command) {
	cmd.Flags().String("native", "English", "Your native language")
	cmd.Flags().String("target", "French", "The language you are learning")
	cmd.Flags().String("level", string(ledger.DifficultyBeginner), "Difficulty (beginner, intermediate, advanced)")
}

func profileFromFlags(cmd *cobra.Command) contentgen.LearnerProfile {
	native, _ := cmd.Flags().GetString("native")
	target, _ := cmd.Flags().GetString("target")
	level, _ := cmd.Flags().GetString("level")
	return contentgen.LearnerProfile{
		NativeLanguage: native,
		TargetLanguage: target,
		Difficulty:     ledger.Difficulty(level),
	}
}

// runQuizLoop plays a quiz on stdin/stdout. Wrong answers are recorded
// in the mistake ledger. When sourceIDs is non-nil, each answered
// question reports a review outcome for its source mistake record
// instead.
func runQuizLoop(ctx context.Context, a *app.App, quiz *contentgen.Quiz, sourceIDs []string) error {
	reader := bufio.NewReader(os.Stdin)
	correct := 0

	fmt.Printf("\n%s\n", quiz.Title)
	fmt.Printf("%d questions, about %s\n\n", len(quiz.Questions), quiz.EstimatedDuration)

	for i, q := range quiz.Questions {
		fmt.Printf("%d. %s\n", i+1, q.Question)
		for j, opt := range q.Options {
			fmt.Printf("   %c) %s\n", 'a'+j, opt)
		}
		fmt.Print("> ")

		line, err := reader.ReadString('\n')
		if err != nil {
			return fmt.Errorf("read answer: %w", err)
		}
		answer := resolveOptionAnswer(strings.TrimSpace(line), q.Options)

		verification, err := ops.RunValue(ctx, a.Ops, ops.ContextAnswerVerification, "",
			func(runCtx context.Context) (*contentgen.Verification, error) {
				return a.Pipeline.VerifyAnswer(runCtx, q.Question, q.CorrectAnswer, answer, q.Type)
			})
		if err != nil {
			return fmt.Errorf("verify answer: %w", err)
		}

		if verification.IsCorrect {
			correct++
			fmt.Printf("✓ %s\n\n", verification.Feedback)
		} else {
			fmt.Printf("✗ %s\n", verification.Feedback)
			fmt.Printf("  %s\n\n", verification.Explanation)
		}

		if sourceIDs != nil && i < len(sourceIDs) {
			if err := a.Ledger.MarkReviewed(ctx, sourceIDs[i], verification.IsCorrect); err != nil {
				return fmt.Errorf("record review: %w", err)
			}
		} else if !verification.IsCorrect {
			if _, err := a.Ledger.Record(ctx, ledger.NewMistake{
				Question:      q.Question,
				CorrectAnswer: q.CorrectAnswer,
				UserAnswer:    answer,
				Explanation:   q.Explanation,
				Feedback:      verification.Feedback,
				Type:          q.Type,
				Difficulty:    q.Difficulty,
				Topic:         q.Topic,
				Focus:         q.Focus,
				Options:       q.Options,
			}); err != nil {
				return fmt.Errorf("record mistake: %w", err)
			}
		}
	}

	fmt.Printf("Score: %d/%d\n", correct, len(quiz.Questions))
	return nil
}

// resolveOptionAnswer maps a single-letter reply onto the matching
// option text; any other input is taken verbatim.
func resolveOptionAnswer(input string, options []string) string {
	if len(input) == 1 && len(options) > 0 {
		idx := int(input[0] - 'a')
		if idx < 0 {
			idx = int(input[0] - 'A')
		}
		if idx >= 0 && idx < len(options) {
			return options[idx]
		}
	}
	return input
}
